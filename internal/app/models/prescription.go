package models

type Prescription struct {
	ID                   string `json:"id" bson:"_id"`
	PatientID            string `json:"patientId,omitempty" bson:"patientId,omitempty"`
	DoctorID             string `json:"doctorId,omitempty" bson:"doctorId,omitempty"`
	OriginalInstructions string `json:"originalInstructions" bson:"originalInstructions"`
	Provider             string `json:"provider" bson:"provider"`
	Status               string `json:"status" bson:"status"`
	StartDate            string `json:"startDate" bson:"startDate"`
	TimeModel            `bson:",inline"`
}

type StoredParsedInstruction struct {
	ID                string `json:"id" bson:"_id,omitempty"`
	PrescriptionID    string `json:"prescriptionId" bson:"prescriptionId"`
	ParsedInstruction `bson:",inline"`
	TimeModel         `bson:",inline"`
}

type StoredScheduleEvent struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	PrescriptionID string `json:"prescriptionId" bson:"prescriptionId"`
	CalendarEvent  `bson:",inline"`
	Status         string `json:"status" bson:"status"`
	TimeModel      `bson:",inline"`
}

const (
	PrescriptionStatusDraft  = "draft"
	PrescriptionStatusActive = "active"

	ScheduleEventStatusActive = "active"
)
