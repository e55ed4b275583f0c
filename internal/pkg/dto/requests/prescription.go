package requests

type StorePrescription struct {
	ParsedInstruction   ParsedInstruction `json:"parsedInstruction" validate:"required"`
	ScheduleEvents      []CalendarEvent   `json:"scheduleEvents" validate:"required,dive"`
	OriginalInstruction string            `json:"originalInstruction" validate:"required"`
	StartDate           string            `json:"startDate" validate:"required,datetime=2006-01-02"`
	Provider            string            `json:"provider" validate:"required,ai_provider"`
	PatientID           string            `json:"patientId,omitempty" validate:"omitempty,uuid"`
	DoctorID            string            `json:"doctorId,omitempty" validate:"omitempty,uuid"`
}

type CalendarEvent struct {
	ID          string        `json:"id" validate:"required"`
	Title       string        `json:"title" validate:"required"`
	Date        string        `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string        `json:"time" validate:"required,datetime=15:04"`
	Type        string        `json:"type" validate:"required,event_type"`
	Description string        `json:"description"`
	Metadata    EventMetadata `json:"metadata"`
}

type EventMetadata struct {
	Dosage       *string `json:"dosage,omitempty"`
	Frequency    *string `json:"frequency,omitempty"`
	Duration     *string `json:"duration,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
}

type FindPrescriptionSchedule struct {
	PrescriptionID string `validate:"required,uuid"`
}
