package contracts

import (
	"context"
	"mediplan-service/internal/app/models"
)

// ReminderQueueService hands stored schedules to the downstream reminder
// worker. Publishing is best-effort: a failure never rolls back the store.
type ReminderQueueService interface {
	PublishScheduleReminders(ctx context.Context, prescription *models.Prescription, events []models.CalendarEvent) error
}
