package responses

import "mediplan-service/internal/app/models"

// GenerateSchedule keeps events at the top level of the reply, next to the
// success flag, matching the calendar UI contract.
type GenerateSchedule struct {
	Success      bool                              `json:"success"`
	Events       []models.CalendarEvent            `json:"events"`
	EventsByDate map[string][]models.CalendarEvent `json:"eventsByDate"`
	Summary      models.ScheduleSummary            `json:"summary"`
}
