package routers

import (
	"mediplan-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, prescriptionController *controllers.PrescriptionController) {
	router.Post("/", prescriptionController.StorePrescription)
	router.Get("/{prescription_id}/schedule", prescriptionController.FindPrescriptionSchedule)
}
