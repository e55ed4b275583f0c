package contracts

import (
	"context"
	"mediplan-service/internal/app/models"
)

type ScheduleUsecase interface {
	// GenerateSchedule expands a parsed instruction into the full dated event
	// list. Pure: identical inputs always produce identical results.
	GenerateSchedule(ctx context.Context, instruction models.ParsedInstruction, startDate string) (*models.ScheduleResult, error)
}
