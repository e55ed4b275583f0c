package reminders

import (
	"context"
	"mediplan-service/internal/app/contracts"
	"mediplan-service/internal/app/models"
	"mediplan-service/internal/pkg/constvars"
	"mediplan-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type reminderQueueService struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

func NewReminderQueueService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.ReminderQueueService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	return &reminderQueueService{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

type reminderPayload struct {
	PrescriptionID string                 `json:"prescriptionId"`
	PatientID      string                 `json:"patientId,omitempty"`
	StartDate      string                 `json:"startDate"`
	Events         []models.CalendarEvent `json:"events"`
}

func (s *reminderQueueService) PublishScheduleReminders(ctx context.Context, prescription *models.Prescription, events []models.CalendarEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("reminderQueueService.PublishScheduleReminders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
		zap.Int(constvars.LoggingEventCountKey, len(events)),
	)

	body, err := json.Marshal(reminderPayload{
		PrescriptionID: prescription.ID,
		PatientID:      prescription.PatientID,
		StartDate:      prescription.StartDate,
		Events:         events,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrQueuePublish(err, s.Queue)
	}

	return nil
}
