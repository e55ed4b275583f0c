package utils

import (
	"mediplan-service/internal/app/models"
	"mediplan-service/internal/pkg/dto/requests"
)

func MapParsedInstructionRequestToModel(request requests.ParsedInstruction) models.ParsedInstruction {
	instruction := models.ParsedInstruction{
		Medications:  make([]models.Medication, 0, len(request.Medications)),
		Activities:   make([]models.Activity, 0, len(request.Activities)),
		FollowUpDate: request.FollowUpDate,
		Notes:        request.Notes,
	}

	for _, medication := range request.Medications {
		instruction.Medications = append(instruction.Medications, models.Medication{
			Name:         medication.Name,
			Dosage:       medication.Dosage,
			Frequency:    medication.Frequency,
			Duration:     medication.Duration,
			Timing:       medication.Timing,
			Instructions: medication.Instructions,
		})
	}

	for _, activity := range request.Activities {
		instruction.Activities = append(instruction.Activities, models.Activity{
			Name:         activity.Name,
			Duration:     activity.Duration,
			Frequency:    activity.Frequency,
			Timing:       activity.Timing,
			Instructions: activity.Instructions,
		})
	}

	return instruction
}

func MapCalendarEventRequestsToModels(events []requests.CalendarEvent) []models.CalendarEvent {
	mapped := make([]models.CalendarEvent, 0, len(events))
	for _, event := range events {
		mapped = append(mapped, models.CalendarEvent{
			ID:          event.ID,
			Title:       event.Title,
			Date:        event.Date,
			Time:        event.Time,
			Type:        event.Type,
			Description: event.Description,
			Metadata: models.EventMetadata{
				Dosage:       event.Metadata.Dosage,
				Frequency:    event.Metadata.Frequency,
				Duration:     event.Metadata.Duration,
				Instructions: event.Metadata.Instructions,
			},
		})
	}
	return mapped
}
