package requests

type ParseInstruction struct {
	Instruction string `json:"instruction" validate:"required,min=1"`
	Provider    string `json:"provider,omitempty" validate:"omitempty,ai_provider"`
	Language    string `json:"language,omitempty" validate:"omitempty,oneof=en ms"`
	PatientID   string `json:"patientId,omitempty" validate:"omitempty,uuid"`
	DoctorID    string `json:"doctorId,omitempty" validate:"omitempty,uuid"`
}
