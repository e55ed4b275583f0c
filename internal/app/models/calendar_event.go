package models

// CalendarEvent is one dated, timed occurrence expanded from a parsed
// instruction. Constructed once, never mutated afterwards.
type CalendarEvent struct {
	ID          string        `json:"id" bson:"eventId"`
	Title       string        `json:"title" bson:"title"`
	Date        string        `json:"date" bson:"date"` // YYYY-MM-DD
	Time        string        `json:"time" bson:"time"` // HH:MM, 24-hour
	Type        string        `json:"type" bson:"type"`
	Description string        `json:"description" bson:"description"`
	Metadata    EventMetadata `json:"metadata" bson:"metadata"`
}

// EventMetadata carries the source-entry fields relevant to the event kind.
// Pointer fields distinguish absent-by-construction (activity events carry no
// dosage) from present-but-empty model text.
type EventMetadata struct {
	Dosage       *string `json:"dosage,omitempty" bson:"dosage,omitempty"`
	Frequency    *string `json:"frequency,omitempty" bson:"frequency,omitempty"`
	Duration     *string `json:"duration,omitempty" bson:"duration,omitempty"`
	Instructions *string `json:"instructions,omitempty" bson:"instructions,omitempty"`
}

type ScheduleResult struct {
	Events       []CalendarEvent            `json:"events"`
	EventsByDate map[string][]CalendarEvent `json:"eventsByDate"`
	Summary      ScheduleSummary            `json:"summary"`
}

type ScheduleSummary struct {
	TotalEvents      int       `json:"totalEvents"`
	MedicationEvents int       `json:"medicationEvents"`
	ActivityEvents   int       `json:"activityEvents"`
	FollowUpEvents   int       `json:"followUpEvents"`
	DateRange        DateRange `json:"dateRange"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
