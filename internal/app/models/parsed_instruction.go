package models

// ParsedInstruction is the structured output of the upstream language-model
// parsing step. Every leaf field is unconstrained model text; the scheduler
// only relies on the shape, never on the content matching a known pattern.
type ParsedInstruction struct {
	Medications  []Medication `json:"medications" bson:"medications"`
	Activities   []Activity   `json:"activities" bson:"activities"`
	FollowUpDate string       `json:"followUpDate,omitempty" bson:"followUpDate,omitempty"`
	Notes        string       `json:"notes,omitempty" bson:"notes,omitempty"`
}

type Medication struct {
	Name         string `json:"name" bson:"name"`
	Dosage       string `json:"dosage" bson:"dosage"`
	Frequency    string `json:"frequency" bson:"frequency"`
	Duration     string `json:"duration" bson:"duration"`
	Timing       string `json:"timing" bson:"timing"`
	Instructions string `json:"instructions" bson:"instructions"`
}

type Activity struct {
	Name         string `json:"name" bson:"name"`
	Duration     string `json:"duration" bson:"duration"`
	Frequency    string `json:"frequency" bson:"frequency"`
	Timing       string `json:"timing" bson:"timing"`
	Instructions string `json:"instructions" bson:"instructions"`
}
