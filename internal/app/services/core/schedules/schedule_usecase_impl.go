package schedules

import (
	"context"
	"sort"
	"sync"
	"time"

	"mediplan-service/internal/app/contracts"
	"mediplan-service/internal/app/models"
	"mediplan-service/internal/pkg/constvars"
	"mediplan-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var (
	scheduleUsecaseInstance contracts.ScheduleUsecase
	onceScheduleUsecase     sync.Once
)

type scheduleUsecase struct {
	Log *zap.Logger
}

func NewScheduleUsecase(logger *zap.Logger) contracts.ScheduleUsecase {
	onceScheduleUsecase.Do(func() {
		instance := &scheduleUsecase{
			Log: logger,
		}
		scheduleUsecaseInstance = instance
	})
	return scheduleUsecaseInstance
}

func (uc *scheduleUsecase) GenerateSchedule(ctx context.Context, instruction models.ParsedInstruction, startDate string) (*models.ScheduleResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GenerateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("medications", len(instruction.Medications)),
		zap.Int("activities", len(instruction.Activities)),
	)

	start, err := time.Parse(constvars.DateLayout, startDate)
	if err != nil {
		uc.Log.Error("scheduleUsecase.GenerateSchedule error parsing start date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseDate(err)
	}

	events := make([]models.CalendarEvent, 0)
	for i, medication := range instruction.Medications {
		medicationEvents, err := expandMedication(i, medication, start)
		if err != nil {
			uc.Log.Error("scheduleUsecase.GenerateSchedule error expanding medication",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		events = append(events, medicationEvents...)
	}
	for i, activity := range instruction.Activities {
		activityEvents, err := expandActivity(i, activity, start)
		if err != nil {
			uc.Log.Error("scheduleUsecase.GenerateSchedule error expanding activity",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		events = append(events, activityEvents...)
	}
	if followUp := expandFollowUp(instruction.FollowUpDate, instruction.Notes); followUp != nil {
		events = append(events, *followUp)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})

	eventsByDate := make(map[string][]models.CalendarEvent)
	for _, event := range events {
		eventsByDate[event.Date] = append(eventsByDate[event.Date], event)
	}

	summary := models.ScheduleSummary{
		TotalEvents: len(events),
		DateRange:   models.DateRange{Start: startDate, End: startDate},
	}
	for _, event := range events {
		switch event.Type {
		case constvars.EventTypeMedication:
			summary.MedicationEvents++
		case constvars.EventTypeActivity:
			summary.ActivityEvents++
		case constvars.EventTypeFollowUp:
			summary.FollowUpEvents++
		}
	}
	if len(events) > 0 {
		summary.DateRange.End = events[len(events)-1].Date
	}

	uc.Log.Info("scheduleUsecase.GenerateSchedule finished expanding events",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingEventCountKey, summary.TotalEvents),
	)

	return &models.ScheduleResult{
		Events:       events,
		EventsByDate: eventsByDate,
		Summary:      summary,
	}, nil
}
