package requests

// GenerateSchedule is the wire payload for schedule expansion. The nested
// free-text fields come from an upstream language model; validation checks
// presence only, never content.
type GenerateSchedule struct {
	ParsedInstruction ParsedInstruction `json:"parsedInstruction" validate:"required"`
	StartDate         string            `json:"startDate" validate:"required,datetime=2006-01-02"`
}

type ParsedInstruction struct {
	Medications  []Medication `json:"medications" validate:"dive"`
	Activities   []Activity   `json:"activities" validate:"dive"`
	FollowUpDate string       `json:"followUpDate,omitempty"`
	Notes        string       `json:"notes,omitempty"`
}

type Medication struct {
	Name         string `json:"name" validate:"required"`
	Dosage       string `json:"dosage" validate:"required"`
	Frequency    string `json:"frequency" validate:"required"`
	Duration     string `json:"duration" validate:"required"`
	Timing       string `json:"timing" validate:"required"`
	Instructions string `json:"instructions" validate:"required"`
}

type Activity struct {
	Name         string `json:"name" validate:"required"`
	Duration     string `json:"duration" validate:"required"`
	Frequency    string `json:"frequency" validate:"required"`
	Timing       string `json:"timing" validate:"required"`
	Instructions string `json:"instructions" validate:"required"`
}
