package routers

import (
	"mediplan-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, scheduleController *controllers.ScheduleController) {
	router.Post("/generate", scheduleController.GenerateSchedule)
}
