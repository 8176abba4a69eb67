package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"field-booking/pkg/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Worker consumes queued booking events and delivers them through the
// underlying notifier. Failed deliveries are retried by the queue with
// backoff up to the task's MaxRetry.
type Worker struct {
	server   *asynq.Server
	notifier Notifier
	log      *zap.Logger
}

func NewWorker(redis utils.RedisConfig, notifier Notifier, log *zap.Logger) *Worker {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     redis.Addr,
			Password: redis.Password,
			DB:       redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	return &Worker{
		server:   srv,
		notifier: notifier,
		log:      log.With(zap.String("worker", "notify")),
	}
}

// Start runs the worker in the background. A worker that cannot reach redis
// keeps retrying internally; delivery falls back to the dispatcher's direct
// path in the meantime.
func (w *Worker) Start() {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingEvent, w.handleBookingEvent)

	go func() {
		w.log.Info("Starting notification worker")
		if err := w.server.Run(mux); err != nil {
			w.log.Error("Notification worker stopped", zap.Error(err))
		}
	}()
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) handleBookingEvent(ctx context.Context, task *asynq.Task) error {
	var event Event
	if err := json.Unmarshal(task.Payload(), &event); err != nil {
		w.log.Error("Invalid event payload, dropping task", zap.Error(err))
		// Returning the error would retry a payload that can never parse.
		return nil
	}

	if err := w.notifier.Notify(ctx, event); err != nil {
		w.log.Warn("Event delivery failed, will retry",
			zap.String("event_type", string(event.Type)),
			zap.String("booking_id", event.Booking.ID),
			zap.Error(err),
		)
		return fmt.Errorf("deliver event %s: %w", event.Type, err)
	}

	return nil
}
