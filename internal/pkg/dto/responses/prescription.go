package responses

import "mediplan-service/internal/app/models"

type StorePrescription struct {
	PrescriptionID string                    `json:"prescriptionId"`
	Metadata       StorePrescriptionMetadata `json:"metadata"`
}

type StorePrescriptionMetadata struct {
	MedicationsCount    int    `json:"medicationsCount"`
	ActivitiesCount     int    `json:"activitiesCount"`
	ScheduleEventsCount int    `json:"scheduleEventsCount"`
	Provider            string `json:"provider"`
	Timestamp           string `json:"timestamp"`
}

type PrescriptionSchedule struct {
	PrescriptionID string                 `json:"prescriptionId"`
	Status         string                 `json:"status"`
	StartDate      string                 `json:"startDate"`
	Events         []models.CalendarEvent `json:"events"`
}
