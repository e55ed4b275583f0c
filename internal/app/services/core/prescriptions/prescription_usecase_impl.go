package prescriptions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"mediplan-service/internal/app/config"
	"mediplan-service/internal/app/contracts"
	"mediplan-service/internal/app/models"
	"mediplan-service/internal/pkg/constvars"
	"mediplan-service/internal/pkg/dto/requests"
	"mediplan-service/internal/pkg/dto/responses"
	"mediplan-service/internal/pkg/exceptions"
	"mediplan-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	RedisRepository        contracts.RedisRepository
	ReminderQueueService   contracts.ReminderQueueService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	redisRepository contracts.RedisRepository,
	reminderQueueService contracts.ReminderQueueService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		instance := &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			RedisRepository:        redisRepository,
			ReminderQueueService:   reminderQueueService,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
		prescriptionUsecaseInstance = instance
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) StorePrescription(ctx context.Context, request *requests.StorePrescription) (*responses.StorePrescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.StorePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderKey, request.Provider),
		zap.Int(constvars.LoggingEventCountKey, len(request.ScheduleEvents)),
	)

	now := time.Now().UTC()
	prescriptionID := utils.GeneratePrescriptionID()

	prescription := &models.Prescription{
		ID:                   prescriptionID,
		PatientID:            request.PatientID,
		DoctorID:             request.DoctorID,
		OriginalInstructions: request.OriginalInstruction,
		Provider:             request.Provider,
		Status:               models.PrescriptionStatusActive,
		StartDate:            request.StartDate,
		TimeModel:            models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if err := uc.PrescriptionRepository.CreatePrescription(ctx, prescription); err != nil {
		uc.Log.Error("prescriptionUsecase.StorePrescription error creating prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	instruction := utils.MapParsedInstructionRequestToModel(request.ParsedInstruction)
	storedInstruction := &models.StoredParsedInstruction{
		ID:                utils.GenerateStorageID(),
		PrescriptionID:    prescriptionID,
		ParsedInstruction: instruction,
		TimeModel:         models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if err := uc.PrescriptionRepository.CreateParsedInstruction(ctx, storedInstruction); err != nil {
		uc.Log.Error("prescriptionUsecase.StorePrescription error creating parsed instruction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	events := utils.MapCalendarEventRequestsToModels(request.ScheduleEvents)
	storedEvents := make([]models.StoredScheduleEvent, 0, len(events))
	for _, event := range events {
		storedEvents = append(storedEvents, models.StoredScheduleEvent{
			ID:             utils.GenerateStorageID(),
			PrescriptionID: prescriptionID,
			CalendarEvent:  event,
			Status:         models.ScheduleEventStatusActive,
			TimeModel:      models.TimeModel{CreatedAt: now, UpdatedAt: now},
		})
	}
	if err := uc.PrescriptionRepository.CreateScheduleEvents(ctx, storedEvents); err != nil {
		uc.Log.Error("prescriptionUsecase.StorePrescription error creating schedule events",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.cacheSchedule(ctx, requestID, &responses.PrescriptionSchedule{
		PrescriptionID: prescriptionID,
		Status:         prescription.Status,
		StartDate:      prescription.StartDate,
		Events:         events,
	})

	// Reminder fan-out is best-effort: the prescription is already stored.
	if err := uc.ReminderQueueService.PublishScheduleReminders(ctx, prescription, events); err != nil {
		uc.Log.Error("prescriptionUsecase.StorePrescription error publishing reminders",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
			zap.Error(err),
		)
	}

	return &responses.StorePrescription{
		PrescriptionID: prescriptionID,
		Metadata: responses.StorePrescriptionMetadata{
			MedicationsCount:    len(instruction.Medications),
			ActivitiesCount:     len(instruction.Activities),
			ScheduleEventsCount: len(events),
			Provider:            request.Provider,
			Timestamp:           now.Format(time.RFC3339),
		},
	}, nil
}

func (uc *prescriptionUsecase) FindPrescriptionSchedule(ctx context.Context, prescriptionID string) (*responses.PrescriptionSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.FindPrescriptionSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	cacheKey := fmt.Sprintf(constvars.RedisKeyScheduleFormat, prescriptionID)
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("prescriptionUsecase.FindPrescriptionSchedule error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if cached != "" {
		var schedule responses.PrescriptionSchedule
		if err := json.Unmarshal([]byte(cached), &schedule); err == nil {
			return &schedule, nil
		}
		uc.Log.Warn("prescriptionUsecase.FindPrescriptionSchedule discarding unreadable cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
		)
	}

	prescription, err := uc.PrescriptionRepository.FindPrescriptionByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrPrescriptionNotFound(errors.New("prescription not found"))
	}

	storedEvents, err := uc.PrescriptionRepository.FindScheduleEventsByPrescriptionID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}

	events := make([]models.CalendarEvent, 0, len(storedEvents))
	for _, stored := range storedEvents {
		events = append(events, stored.CalendarEvent)
	}

	schedule := &responses.PrescriptionSchedule{
		PrescriptionID: prescription.ID,
		Status:         prescription.Status,
		StartDate:      prescription.StartDate,
		Events:         events,
	}
	uc.cacheSchedule(ctx, requestID, schedule)

	return schedule, nil
}

func (uc *prescriptionUsecase) cacheSchedule(ctx context.Context, requestID string, schedule *responses.PrescriptionSchedule) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyScheduleFormat, schedule.PrescriptionID)
	ttl := time.Duration(uc.InternalConfig.App.ScheduleCacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, cacheKey, schedule, ttl); err != nil {
		uc.Log.Warn("prescriptionUsecase error caching schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrescriptionIDKey, schedule.PrescriptionID),
			zap.Error(err),
		)
	}
}
