package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"field-booking/pkg/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeBookingEvent = "booking:event"

// QueueDispatcher pushes events onto the redis-backed queue so webhook
// delivery (with retries) happens outside the request path. When the queue is
// unreachable it falls back to a one-shot direct delivery so events are not
// silently dropped.
type QueueDispatcher struct {
	client *asynq.Client
	direct Notifier
	log    *zap.Logger
}

func NewQueueDispatcher(redis utils.RedisConfig, direct Notifier, log *zap.Logger) *QueueDispatcher {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redis.Addr,
		Password: redis.Password,
		DB:       redis.DB,
	})

	return &QueueDispatcher{
		client: client,
		direct: direct,
		log:    log.With(zap.String("notifier", "queue")),
	}
}

func (d *QueueDispatcher) Notify(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Type, err)
	}

	task := asynq.NewTask(TypeBookingEvent, payload)
	if _, err := d.client.EnqueueContext(ctx, task,
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	); err != nil {
		d.log.Warn("Failed to enqueue event, delivering directly",
			zap.String("event_type", string(event.Type)),
			zap.String("booking_id", event.Booking.ID),
			zap.Error(err),
		)

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := d.direct.Notify(ctx, event); err != nil {
				d.log.Error("Direct delivery failed",
					zap.String("event_type", string(event.Type)),
					zap.String("booking_id", event.Booking.ID),
					zap.Error(err),
				)
			}
		}()

		return nil
	}

	d.log.Debug("Event enqueued",
		zap.String("event_type", string(event.Type)),
		zap.String("booking_id", event.Booking.ID),
	)

	return nil
}

func (d *QueueDispatcher) Close() error {
	return d.client.Close()
}
