package schedules

import (
	"context"
	"sort"
	"testing"

	"mediplan-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestUsecase() *scheduleUsecase {
	return &scheduleUsecase{Log: zap.NewNop()}
}

func amlodipineInstruction() models.ParsedInstruction {
	return models.ParsedInstruction{
		Medications: []models.Medication{
			{
				Name:         "Amlodipine",
				Dosage:       "5mg",
				Frequency:    "once daily",
				Duration:     "7 days",
				Timing:       "morning",
				Instructions: "Take 1 tablet",
			},
		},
		Activities: []models.Activity{},
	}
}

func TestGenerateScheduleSingleMedication(t *testing.T) {
	uc := newTestUsecase()

	result, err := uc.GenerateSchedule(context.Background(), amlodipineInstruction(), "2025-01-01")
	assert.NoError(t, err)

	assert.Len(t, result.Events, 8, "7-day duration expands to 8 inclusive daily events")
	assert.Equal(t, "2025-01-01", result.Events[0].Date)
	assert.Equal(t, "2025-01-08", result.Events[7].Date)
	for i, event := range result.Events {
		assert.Equal(t, "Amlodipine 5mg", event.Title)
		assert.Equal(t, "08:00", event.Time)
		assert.Equal(t, "medication", event.Type)
		assert.Equal(t, "Amlodipine 5mg - Take 1 tablet", event.Description)
		if assert.NotNil(t, event.Metadata.Dosage) {
			assert.Equal(t, "5mg", *event.Metadata.Dosage)
		}
		assert.Equal(t, i, sortedEventIndex(result.Events, event.ID))
	}
	assert.Equal(t, "med-0-0", result.Events[0].ID)
	assert.Equal(t, "med-0-7", result.Events[7].ID)

	assert.Equal(t, 8, result.Summary.TotalEvents)
	assert.Equal(t, 8, result.Summary.MedicationEvents)
	assert.Equal(t, models.DateRange{Start: "2025-01-01", End: "2025-01-08"}, result.Summary.DateRange)
}

func sortedEventIndex(events []models.CalendarEvent, id string) int {
	for i, event := range events {
		if event.ID == id {
			return i
		}
	}
	return -1
}

func TestGenerateScheduleTwiceDailyBeforeMeals(t *testing.T) {
	uc := newTestUsecase()
	instruction := models.ParsedInstruction{
		Medications: []models.Medication{
			{
				Name:         "Metformin",
				Dosage:       "500mg",
				Frequency:    "twice daily",
				Duration:     "3 days",
				Timing:       "before meals",
				Instructions: "Take with water",
			},
		},
	}

	result, err := uc.GenerateSchedule(context.Background(), instruction, "2025-01-01")
	assert.NoError(t, err)

	assert.Len(t, result.Events, 8, "4 inclusive days at 2 doses per day")
	for date, dayEvents := range result.EventsByDate {
		assert.Len(t, dayEvents, 2, "two doses expected on %s", date)
		assert.Equal(t, "07:30", dayEvents[0].Time)
		assert.Equal(t, "19:30", dayEvents[1].Time)
	}
}

func TestGenerateSchedulePRNMedication(t *testing.T) {
	uc := newTestUsecase()
	instruction := models.ParsedInstruction{
		Medications: []models.Medication{
			{
				Name:         "Paracetamol",
				Dosage:       "500mg",
				Frequency:    "as needed",
				Duration:     "ongoing",
				Timing:       "",
				Instructions: "Max 4 doses per day",
			},
		},
	}

	result, err := uc.GenerateSchedule(context.Background(), instruction, "2025-03-10")
	assert.NoError(t, err)

	assert.Len(t, result.Events, 1, "PRN yields exactly one event regardless of duration")
	event := result.Events[0]
	assert.Equal(t, "med-0-prn", event.ID)
	assert.Equal(t, "2025-03-10", event.Date)
	assert.Equal(t, "08:00", event.Time)
	assert.Equal(t, "Paracetamol 500mg - as needed", event.Description)
}

func TestGenerateScheduleActivity(t *testing.T) {
	uc := newTestUsecase()
	instruction := models.ParsedInstruction{
		Activities: []models.Activity{
			{
				Name:         "Walking",
				Duration:     "20 minutes",
				Frequency:    "daily",
				Timing:       "evening",
				Instructions: "Light pace",
			},
		},
	}

	result, err := uc.GenerateSchedule(context.Background(), instruction, "2025-01-01")
	assert.NoError(t, err)

	assert.Len(t, result.Events, 31, "activities expand over a fixed 30-day horizon")
	first := result.Events[0]
	assert.Equal(t, "act-0-0", first.ID)
	assert.Equal(t, "Walking", first.Title)
	assert.Equal(t, "20:00", first.Time)
	assert.Equal(t, "activity", first.Type)
	assert.Equal(t, "Walking - 20 minutes - Light pace", first.Description)
	assert.Nil(t, first.Metadata.Dosage, "activity events carry no dosage")
	if assert.NotNil(t, first.Metadata.Duration) {
		assert.Equal(t, "20 minutes", *first.Metadata.Duration)
	}
	assert.Equal(t, 31, result.Summary.ActivityEvents)
}

func TestGenerateScheduleAsNeededActivity(t *testing.T) {
	uc := newTestUsecase()
	instruction := models.ParsedInstruction{
		Activities: []models.Activity{
			{
				Name:         "Breathing exercises",
				Duration:     "5 minutes",
				Frequency:    "as needed",
				Timing:       "",
				Instructions: "When feeling anxious",
			},
		},
	}

	result, err := uc.GenerateSchedule(context.Background(), instruction, "2025-01-01")
	assert.NoError(t, err)

	assert.Empty(t, result.Events, "an as-needed activity yields no scheduled events")
	assert.Zero(t, result.Summary.ActivityEvents)
	assert.Zero(t, result.Summary.TotalEvents)
}

func TestGenerateScheduleWeeklyMedication(t *testing.T) {
	uc := newTestUsecase()
	instruction := models.ParsedInstruction{
		Medications: []models.Medication{
			{
				Name:         "Alendronate",
				Dosage:       "70mg",
				Frequency:    "weekly",
				Duration:     "4 weeks",
				Timing:       "morning",
				Instructions: "Take on empty stomach",
			},
		},
	}

	result, err := uc.GenerateSchedule(context.Background(), instruction, "2025-01-06")
	assert.NoError(t, err)

	dates := make([]string, 0, len(result.Events))
	for _, event := range result.Events {
		dates = append(dates, event.Date)
	}
	assert.Equal(t, []string{"2025-01-06", "2025-01-13", "2025-01-20", "2025-01-27", "2025-02-03"}, dates)
}

func TestGenerateScheduleFollowUpOnly(t *testing.T) {
	uc := newTestUsecase()
	instruction := models.ParsedInstruction{
		Medications:  []models.Medication{},
		Activities:   []models.Activity{},
		FollowUpDate: "2025-02-15",
	}

	result, err := uc.GenerateSchedule(context.Background(), instruction, "2025-01-20")
	assert.NoError(t, err)

	assert.Len(t, result.Events, 1)
	event := result.Events[0]
	assert.Equal(t, "followup-1", event.ID)
	assert.Equal(t, "2025-02-15", event.Date)
	assert.Equal(t, "09:00", event.Time)
	assert.Equal(t, "followup", event.Type)
	assert.Equal(t, "Follow-up Appointment", event.Title)
	if assert.NotNil(t, event.Metadata.Instructions) {
		assert.Equal(t, "Regular check-up", *event.Metadata.Instructions, "empty notes fall back to the default note")
	}

	assert.Equal(t, 1, result.Summary.TotalEvents)
	assert.Equal(t, 1, result.Summary.FollowUpEvents)
	assert.Equal(t, models.DateRange{Start: "2025-01-20", End: "2025-02-15"}, result.Summary.DateRange)
}

func TestGenerateScheduleFollowUpNotes(t *testing.T) {
	uc := newTestUsecase()
	instruction := models.ParsedInstruction{
		FollowUpDate: "2025-02-15",
		Notes:        "Bring blood pressure diary",
	}

	result, err := uc.GenerateSchedule(context.Background(), instruction, "2025-01-20")
	assert.NoError(t, err)

	assert.Len(t, result.Events, 1)
	if assert.NotNil(t, result.Events[0].Metadata.Instructions) {
		assert.Equal(t, "Bring blood pressure diary", *result.Events[0].Metadata.Instructions)
	}
}

func TestGenerateScheduleInvalidFollowUpDateSkipsSilently(t *testing.T) {
	uc := newTestUsecase()
	instruction := models.ParsedInstruction{
		FollowUpDate: "not-a-date",
	}

	result, err := uc.GenerateSchedule(context.Background(), instruction, "2025-01-01")
	assert.NoError(t, err, "an unparseable follow-up date is a data-quality issue, not an error")
	assert.Empty(t, result.Events)
	assert.Zero(t, result.Summary.FollowUpEvents)
}

func TestGenerateScheduleEmptyInstruction(t *testing.T) {
	uc := newTestUsecase()

	result, err := uc.GenerateSchedule(context.Background(), models.ParsedInstruction{}, "2025-01-01")
	assert.NoError(t, err)

	assert.Empty(t, result.Events)
	assert.NotNil(t, result.Events, "events serializes as an empty array, not null")
	assert.Empty(t, result.EventsByDate)
	assert.NotNil(t, result.EventsByDate)
	assert.Zero(t, result.Summary.TotalEvents)
	assert.Equal(t, models.DateRange{Start: "2025-01-01", End: "2025-01-01"}, result.Summary.DateRange)
}

func TestGenerateScheduleInvalidStartDate(t *testing.T) {
	uc := newTestUsecase()

	result, err := uc.GenerateSchedule(context.Background(), amlodipineInstruction(), "01/01/2025")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestGenerateScheduleOngoingDailyBound(t *testing.T) {
	uc := newTestUsecase()
	instruction := models.ParsedInstruction{
		Medications: []models.Medication{
			{
				Name:         "Lisinopril",
				Dosage:       "10mg",
				Frequency:    "once daily",
				Duration:     "ongoing",
				Timing:       "morning",
				Instructions: "Take as directed",
			},
		},
	}

	result, err := uc.GenerateSchedule(context.Background(), instruction, "2024-01-01")
	assert.NoError(t, err)
	assert.Len(t, result.Events, 183, "daily events from 2024-01-01 through 2024-07-01 inclusive")
}

func TestGenerateScheduleDeterminism(t *testing.T) {
	uc := newTestUsecase()
	instruction := models.ParsedInstruction{
		Medications: []models.Medication{
			{Name: "Metformin", Dosage: "500mg", Frequency: "twice daily", Duration: "5 days", Timing: "after meals", Instructions: "With food"},
			{Name: "Ibuprofen", Dosage: "200mg", Frequency: "as needed", Duration: "1 week", Timing: "", Instructions: "For pain"},
		},
		Activities: []models.Activity{
			{Name: "Stretching", Duration: "10 minutes", Frequency: "daily", Timing: "morning", Instructions: "Gently"},
		},
		FollowUpDate: "2025-02-01",
		Notes:        "Review dosage",
	}

	first, err := uc.GenerateSchedule(context.Background(), instruction, "2025-01-01")
	assert.NoError(t, err)
	second, err := uc.GenerateSchedule(context.Background(), instruction, "2025-01-01")
	assert.NoError(t, err)
	assert.Equal(t, first, second, "identical inputs must produce identical output")
}

func TestGenerateScheduleOrderingAndGrouping(t *testing.T) {
	uc := newTestUsecase()
	instruction := models.ParsedInstruction{
		Medications: []models.Medication{
			{Name: "Metformin", Dosage: "500mg", Frequency: "twice daily", Duration: "4 days", Timing: "after meals", Instructions: "With food"},
			{Name: "Amlodipine", Dosage: "5mg", Frequency: "once daily", Duration: "2 days", Timing: "morning", Instructions: "Take 1 tablet"},
		},
		Activities: []models.Activity{
			{Name: "Walking", Duration: "20 minutes", Frequency: "weekly", Timing: "evening", Instructions: "Light pace"},
		},
		FollowUpDate: "2025-01-03",
	}

	result, err := uc.GenerateSchedule(context.Background(), instruction, "2025-01-01")
	assert.NoError(t, err)

	for i := 1; i < len(result.Events); i++ {
		previous, current := result.Events[i-1], result.Events[i]
		if previous.Date == current.Date {
			assert.LessOrEqual(t, previous.Time, current.Time, "within a date events are ordered by time")
		} else {
			assert.Less(t, previous.Date, current.Date, "events are ordered by date")
		}
	}

	grouped := 0
	for _, dayEvents := range result.EventsByDate {
		grouped += len(dayEvents)
	}
	assert.Equal(t, len(result.Events), grouped, "grouping is a re-partition of the event list")

	dates := make([]string, 0, len(result.EventsByDate))
	for date := range result.EventsByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	flattened := make([]models.CalendarEvent, 0, len(result.Events))
	for _, date := range dates {
		flattened = append(flattened, result.EventsByDate[date]...)
	}
	assert.Equal(t, result.Events, flattened, "concatenating groups in date order reproduces the sorted list")

	assert.Equal(t, result.Summary.TotalEvents,
		result.Summary.MedicationEvents+result.Summary.ActivityEvents+result.Summary.FollowUpEvents)
}
