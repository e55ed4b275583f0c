package contracts

import (
	"context"
	"mediplan-service/internal/app/models"
	"mediplan-service/internal/pkg/dto/requests"
	"mediplan-service/internal/pkg/dto/responses"
)

type PrescriptionUsecase interface {
	StorePrescription(ctx context.Context, request *requests.StorePrescription) (*responses.StorePrescription, error)
	FindPrescriptionSchedule(ctx context.Context, prescriptionID string) (*responses.PrescriptionSchedule, error)
}

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) error
	CreateParsedInstruction(ctx context.Context, instruction *models.StoredParsedInstruction) error
	CreateScheduleEvents(ctx context.Context, events []models.StoredScheduleEvent) error
	FindPrescriptionByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	FindScheduleEventsByPrescriptionID(ctx context.Context, prescriptionID string) ([]models.StoredScheduleEvent, error)
}
