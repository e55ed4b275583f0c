package routers

import (
	"time"

	"mediplan-service/internal/app/config"
	"mediplan-service/internal/app/delivery/http/controllers"
	"mediplan-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	scheduleController *controllers.ScheduleController,
	prescriptionController *controllers.PrescriptionController,
	instructionController *controllers.InstructionController,
	documentController *controllers.DocumentController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestBodyLimit)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/schedules", func(r chi.Router) {
			attachScheduleRoutes(r, scheduleController)
		})

		r.Route("/prescriptions", func(r chi.Router) {
			attachPrescriptionRoutes(r, prescriptionController)
		})

		r.Route("/instructions", func(r chi.Router) {
			attachInstructionRoutes(r, instructionController)
		})

		r.Route("/documents", func(r chi.Router) {
			attachDocumentRoutes(r, documentController)
		})
	})
}
