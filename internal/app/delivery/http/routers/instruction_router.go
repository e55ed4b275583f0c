package routers

import (
	"mediplan-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachInstructionRoutes(router chi.Router, instructionController *controllers.InstructionController) {
	router.Post("/parse", instructionController.ParseInstruction)
}
