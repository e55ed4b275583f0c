package prescriptions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"mediplan-service/internal/app/config"
	"mediplan-service/internal/app/models"
	"mediplan-service/internal/pkg/constvars"
	"mediplan-service/internal/pkg/dto/requests"
	"mediplan-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubPrescriptionRepository struct {
	prescriptions      []models.Prescription
	parsedInstructions []models.StoredParsedInstruction
	scheduleEvents     []models.StoredScheduleEvent
	findPrescription   *models.Prescription
	findEvents         []models.StoredScheduleEvent
	findCalls          int
}

func (s *stubPrescriptionRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) error {
	s.prescriptions = append(s.prescriptions, *prescription)
	return nil
}

func (s *stubPrescriptionRepository) CreateParsedInstruction(ctx context.Context, instruction *models.StoredParsedInstruction) error {
	s.parsedInstructions = append(s.parsedInstructions, *instruction)
	return nil
}

func (s *stubPrescriptionRepository) CreateScheduleEvents(ctx context.Context, events []models.StoredScheduleEvent) error {
	s.scheduleEvents = append(s.scheduleEvents, events...)
	return nil
}

func (s *stubPrescriptionRepository) FindPrescriptionByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	s.findCalls++
	return s.findPrescription, nil
}

func (s *stubPrescriptionRepository) FindScheduleEventsByPrescriptionID(ctx context.Context, prescriptionID string) ([]models.StoredScheduleEvent, error) {
	return s.findEvents, nil
}

type stubRedisRepository struct {
	store map[string]string
}

func newStubRedisRepository() *stubRedisRepository {
	return &stubRedisRepository{store: make(map[string]string)}
}

func (s *stubRedisRepository) Delete(ctx context.Context, key string) error {
	delete(s.store, key)
	return nil
}

func (s *stubRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.store[key] = string(data)
	return nil
}

func (s *stubRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return s.store[key], nil
}

type stubReminderQueue struct {
	published int
	err       error
}

func (s *stubReminderQueue) PublishScheduleReminders(ctx context.Context, prescription *models.Prescription, events []models.CalendarEvent) error {
	s.published++
	return s.err
}

func newTestPrescriptionUsecase(repo *stubPrescriptionRepository, cache *stubRedisRepository, queue *stubReminderQueue) *prescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: repo,
		RedisRepository:        cache,
		ReminderQueueService:   queue,
		InternalConfig:         &config.InternalConfig{App: config.App{ScheduleCacheTTLInMinutes: 30}},
		Log:                    zap.NewNop(),
	}
}

func storePrescriptionRequest() *requests.StorePrescription {
	return &requests.StorePrescription{
		ParsedInstruction: requests.ParsedInstruction{
			Medications: []requests.Medication{
				{Name: "Amlodipine", Dosage: "5mg", Frequency: "once daily", Duration: "7 days", Timing: "morning", Instructions: "Take 1 tablet"},
			},
		},
		ScheduleEvents: []requests.CalendarEvent{
			{ID: "med-0-0", Title: "Amlodipine 5mg", Date: "2025-01-01", Time: "08:00", Type: "medication"},
			{ID: "med-0-1", Title: "Amlodipine 5mg", Date: "2025-01-02", Time: "08:00", Type: "medication"},
		},
		OriginalInstruction: "Amlodipine 5mg once daily for 7 days",
		StartDate:           "2025-01-01",
		Provider:            "openai",
	}
}

func TestStorePrescription(t *testing.T) {
	t.Run("Stores All Records And Publishes Reminders", func(t *testing.T) {
		repo := &stubPrescriptionRepository{}
		cache := newStubRedisRepository()
		queue := &stubReminderQueue{}
		uc := newTestPrescriptionUsecase(repo, cache, queue)

		response, err := uc.StorePrescription(context.Background(), storePrescriptionRequest())
		assert.NoError(t, err)
		assert.NotEmpty(t, response.PrescriptionID)

		assert.Len(t, repo.prescriptions, 1)
		assert.Equal(t, models.PrescriptionStatusActive, repo.prescriptions[0].Status)
		assert.Equal(t, "2025-01-01", repo.prescriptions[0].StartDate)

		assert.Len(t, repo.parsedInstructions, 1)
		assert.Equal(t, response.PrescriptionID, repo.parsedInstructions[0].PrescriptionID)

		assert.Len(t, repo.scheduleEvents, 2)
		for _, event := range repo.scheduleEvents {
			assert.Equal(t, response.PrescriptionID, event.PrescriptionID)
			assert.Equal(t, models.ScheduleEventStatusActive, event.Status)
		}

		assert.Equal(t, 1, queue.published, "reminders should be published once per stored prescription")

		assert.Equal(t, 1, response.Metadata.MedicationsCount)
		assert.Equal(t, 0, response.Metadata.ActivitiesCount)
		assert.Equal(t, 2, response.Metadata.ScheduleEventsCount)
		assert.Equal(t, "openai", response.Metadata.Provider)

		cacheKey := fmt.Sprintf(constvars.RedisKeyScheduleFormat, response.PrescriptionID)
		assert.NotEmpty(t, cache.store[cacheKey], "the schedule should be cached on store")
	})

	t.Run("Reminder Publish Failure Does Not Fail The Store", func(t *testing.T) {
		repo := &stubPrescriptionRepository{}
		queue := &stubReminderQueue{err: errors.New("broker unavailable")}
		uc := newTestPrescriptionUsecase(repo, newStubRedisRepository(), queue)

		response, err := uc.StorePrescription(context.Background(), storePrescriptionRequest())
		assert.NoError(t, err, "publishing reminders is best-effort")
		assert.NotEmpty(t, response.PrescriptionID)
		assert.Len(t, repo.prescriptions, 1)
	})
}

func TestFindPrescriptionSchedule(t *testing.T) {
	t.Run("Cache Hit Skips The Database", func(t *testing.T) {
		repo := &stubPrescriptionRepository{}
		cache := newStubRedisRepository()
		uc := newTestPrescriptionUsecase(repo, cache, &stubReminderQueue{})

		cacheKey := fmt.Sprintf(constvars.RedisKeyScheduleFormat, "rx-1")
		cache.store[cacheKey] = `{"prescriptionId":"rx-1","status":"active","startDate":"2025-01-01","events":[]}`

		schedule, err := uc.FindPrescriptionSchedule(context.Background(), "rx-1")
		assert.NoError(t, err)
		assert.Equal(t, "rx-1", schedule.PrescriptionID)
		assert.Equal(t, "active", schedule.Status)
		assert.Zero(t, repo.findCalls, "a cache hit must not touch the repository")
	})

	t.Run("Cache Miss Loads From Database And Backfills Cache", func(t *testing.T) {
		repo := &stubPrescriptionRepository{
			findPrescription: &models.Prescription{
				ID:        "rx-2",
				Status:    models.PrescriptionStatusActive,
				StartDate: "2025-01-01",
			},
			findEvents: []models.StoredScheduleEvent{
				{
					PrescriptionID: "rx-2",
					CalendarEvent:  models.CalendarEvent{ID: "med-0-0", Date: "2025-01-01", Time: "08:00", Type: "medication"},
					Status:         models.ScheduleEventStatusActive,
				},
			},
		}
		cache := newStubRedisRepository()
		uc := newTestPrescriptionUsecase(repo, cache, &stubReminderQueue{})

		schedule, err := uc.FindPrescriptionSchedule(context.Background(), "rx-2")
		assert.NoError(t, err)
		assert.Equal(t, "rx-2", schedule.PrescriptionID)
		assert.Len(t, schedule.Events, 1)
		assert.Equal(t, "med-0-0", schedule.Events[0].ID)

		cacheKey := fmt.Sprintf(constvars.RedisKeyScheduleFormat, "rx-2")
		assert.NotEmpty(t, cache.store[cacheKey], "the schedule should be backfilled into the cache")
	})

	t.Run("Unknown Prescription Returns Not Found", func(t *testing.T) {
		uc := newTestPrescriptionUsecase(&stubPrescriptionRepository{}, newStubRedisRepository(), &stubReminderQueue{})

		schedule, err := uc.FindPrescriptionSchedule(context.Background(), "missing")
		assert.Nil(t, schedule)
		var customErr *exceptions.CustomError
		if assert.ErrorAs(t, err, &customErr) {
			assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		}
	})
}
