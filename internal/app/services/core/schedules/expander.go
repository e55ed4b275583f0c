package schedules

import (
	"errors"
	"fmt"
	"time"

	"mediplan-service/internal/app/models"
	"mediplan-service/internal/pkg/constvars"
	"mediplan-service/internal/pkg/exceptions"
)

func expandMedication(index int, medication models.Medication, start time.Time) ([]models.CalendarEvent, error) {
	freq := ParseFrequency(medication.Frequency)
	end := ResolveEndDate(medication.Duration, start)
	times := AssignTimes(medication.Timing, freq)

	title := fmt.Sprintf("%s %s", medication.Name, medication.Dosage)
	metadata := models.EventMetadata{
		Dosage:       &medication.Dosage,
		Frequency:    &medication.Frequency,
		Duration:     &medication.Duration,
		Instructions: &medication.Instructions,
	}

	if freq.OccurrencesPerPeriod == 0 {
		return []models.CalendarEvent{
			{
				ID:          fmt.Sprintf(constvars.EventIDMedicationPRN, index),
				Title:       title,
				Date:        start.Format(constvars.DateLayout),
				Time:        "08:00",
				Type:        constvars.EventTypeMedication,
				Description: fmt.Sprintf("%s - %s", title, medication.Frequency),
				Metadata:    metadata,
			},
		}, nil
	}

	var events []models.CalendarEvent
	seq := 0
	current := start
	for iterations := 0; !current.After(end); iterations++ {
		if iterations >= constvars.MaxExpansionIterations {
			return nil, exceptions.ErrScheduleExpansionCap(errors.New("medication expansion exceeded iteration cap"))
		}
		for _, slot := range times {
			events = append(events, models.CalendarEvent{
				ID:          fmt.Sprintf(constvars.EventIDMedicationFormat, index, seq),
				Title:       title,
				Date:        current.Format(constvars.DateLayout),
				Time:        slot,
				Type:        constvars.EventTypeMedication,
				Description: fmt.Sprintf("%s - %s", title, medication.Instructions),
				Metadata:    metadata,
			})
			seq++
		}
		current = addPeriod(current, freq.Period)
	}
	return events, nil
}

func expandActivity(index int, activity models.Activity, start time.Time) ([]models.CalendarEvent, error) {
	freq := ParseFrequency(activity.Frequency)
	end := ResolveEndDate(constvars.ActivityExpansionDuration, start)
	// An as-needed activity gets no time slots, so the loop below emits
	// nothing. Activities have no single-event path the way medications do.
	times := AssignTimes(activity.Timing, freq)

	metadata := models.EventMetadata{
		Frequency:    &activity.Frequency,
		Duration:     &activity.Duration,
		Instructions: &activity.Instructions,
	}

	var events []models.CalendarEvent
	seq := 0
	current := start
	for iterations := 0; !current.After(end); iterations++ {
		if iterations >= constvars.MaxExpansionIterations {
			return nil, exceptions.ErrScheduleExpansionCap(errors.New("activity expansion exceeded iteration cap"))
		}
		for _, slot := range times {
			events = append(events, models.CalendarEvent{
				ID:          fmt.Sprintf(constvars.EventIDActivityFormat, index, seq),
				Title:       activity.Name,
				Date:        current.Format(constvars.DateLayout),
				Time:        slot,
				Type:        constvars.EventTypeActivity,
				Description: fmt.Sprintf("%s - %s - %s", activity.Name, activity.Duration, activity.Instructions),
				Metadata:    metadata,
			})
			seq++
		}
		current = addPeriod(current, freq.Period)
	}
	return events, nil
}

// expandFollowUp returns nil when the follow-up date is absent or does not
// parse. A bad date from the language model is a data-quality issue, never a
// hard failure.
func expandFollowUp(followUpDate, notes string) *models.CalendarEvent {
	if followUpDate == "" {
		return nil
	}

	parsed, err := time.Parse(constvars.DateLayout, followUpDate)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, followUpDate)
		if err != nil {
			return nil
		}
	}

	instructions := notes
	if instructions == "" {
		instructions = constvars.FollowUpDefaultNote
	}

	return &models.CalendarEvent{
		ID:          constvars.EventIDFollowUp,
		Title:       constvars.FollowUpTitle,
		Date:        parsed.Format(constvars.DateLayout),
		Time:        constvars.FollowUpTime,
		Type:        constvars.EventTypeFollowUp,
		Description: constvars.FollowUpDescription,
		Metadata:    models.EventMetadata{Instructions: &instructions},
	}
}

func addPeriod(date time.Time, period Period) time.Time {
	switch period {
	case PeriodWeek:
		return date.AddDate(0, 0, 7)
	case PeriodMonth:
		return date.AddDate(0, 1, 0)
	default:
		return date.AddDate(0, 0, 1)
	}
}
