package notification

import (
	"context"
	"encoding/json"
	"time"

	"doctorsportal/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeAppointmentEmail = "email:appointment"
	TypeReceiptEmail     = "email:receipt"

	EmailQueue = "emails"
)

// Enqueuer is the part of *asynq.Client the notifier uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier hands notifications to the background email worker.
type QueueNotifier struct {
	Client Enqueuer
	Logger *zap.Logger
}

// NewQueueNotifier creates a notifier that enqueues email tasks.
func NewQueueNotifier(client Enqueuer, logger *zap.Logger) *QueueNotifier {
	return &QueueNotifier{Client: client, Logger: logger}
}

// AppointmentConfirmed queues the booking confirmation email.
func (n *QueueNotifier) AppointmentConfirmed(ctx context.Context, b models.Booking) {
	n.enqueue(ctx, TypeAppointmentEmail, models.AppointmentEmailPayload{Booking: b}, b)
}

// PaymentReceived queues the payment receipt email.
func (n *QueueNotifier) PaymentReceived(ctx context.Context, b models.Booking, p models.Payment) {
	n.enqueue(ctx, TypeReceiptEmail, models.ReceiptEmailPayload{Booking: b, Payment: p}, b)
}

func (n *QueueNotifier) enqueue(ctx context.Context, taskType string, payload interface{}, b models.Booking) {
	data, err := json.Marshal(payload)
	if err != nil {
		n.Logger.Error("failed to encode email task", zap.String("type", taskType), zap.Error(err))
		return
	}

	// The request may finish before Redis answers; the enqueue must still complete.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()

	task := asynq.NewTask(taskType, data)
	info, err := n.Client.EnqueueContext(ctx, task,
		asynq.Queue(EmailQueue),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		n.Logger.Error("failed to enqueue email",
			zap.String("type", taskType),
			zap.String("bookingID", b.ID.Hex()),
			zap.Error(err))
		return
	}
	n.Logger.Debug("email queued", zap.String("type", taskType), zap.String("taskID", info.ID))
}
