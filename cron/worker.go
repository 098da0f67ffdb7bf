package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"doctorsportal/models"
	"doctorsportal/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AppointmentSender is what the email worker needs to deliver queued emails.
type AppointmentSender interface {
	SendAppointmentConfirmation(ctx context.Context, b models.Booking) error
	SendPaymentReceipt(ctx context.Context, b models.Booking, p models.Payment) error
}

// EmailWorker consumes the email queue in the background.
type EmailWorker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

// NewEmailWorker builds the worker and registers the email task handlers.
func NewEmailWorker(redisOpts asynq.RedisClientOpt, sender AppointmentSender, logger *zap.Logger) *EmailWorker {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				notification.EmailQueue: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeAppointmentEmail, handleAppointmentEmail(sender, logger))
	mux.HandleFunc(notification.TypeReceiptEmail, handleReceiptEmail(sender, logger))

	return &EmailWorker{srv: srv, mux: mux, logger: logger}
}

// Start runs the worker with retry, then returns. Processing continues in background goroutines.
func (w *EmailWorker) Start() {
	go func() {
		w.logger.Info("[EmailWorker] starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.srv.Start(w.mux)
			if err == nil {
				return
			}
			w.logger.Warn("[EmailWorker] failed to start worker",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				w.logger.Error("[EmailWorker] max retry attempts reached, emails will stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// Shutdown stops pulling new tasks and waits for in-flight ones.
func (w *EmailWorker) Shutdown() {
	w.srv.Shutdown()
}

func handleAppointmentEmail(sender AppointmentSender, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.AppointmentEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("[EmailWorker] invalid appointment payload", zap.Error(err))
			return fmt.Errorf("decode appointment payload: %v: %w", err, asynq.SkipRetry)
		}
		if err := sender.SendAppointmentConfirmation(ctx, p.Booking); err != nil {
			logger.Warn("[EmailWorker] appointment email failed",
				zap.String("bookingID", p.Booking.ID.Hex()),
				zap.Error(err))
			return err
		}
		logger.Info("[EmailWorker] appointment email sent", zap.String("bookingID", p.Booking.ID.Hex()))
		return nil
	}
}

func handleReceiptEmail(sender AppointmentSender, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReceiptEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("[EmailWorker] invalid receipt payload", zap.Error(err))
			return fmt.Errorf("decode receipt payload: %v: %w", err, asynq.SkipRetry)
		}
		if err := sender.SendPaymentReceipt(ctx, p.Booking, p.Payment); err != nil {
			logger.Warn("[EmailWorker] receipt email failed",
				zap.String("bookingID", p.Booking.ID.Hex()),
				zap.String("receiptNo", p.Payment.ReceiptNo),
				zap.Error(err))
			return err
		}
		logger.Info("[EmailWorker] receipt email sent", zap.String("receiptNo", p.Payment.ReceiptNo))
		return nil
	}
}

// MonitorRedisConnection pings the queue's Redis periodically to detect failures at runtime.
func MonitorRedisConnection(ctx context.Context, client *redis.Client, logger *zap.Logger) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("[EmailWorker] Redis connection lost", zap.Error(err))
			}
		}
	}
}
