package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"field-booking/internal/data/entity"

	"go.uber.org/zap"
)

// WebhookSource resolves a webhook URL for a settings key. Resolution happens
// at dispatch time, so an operator can repoint the endpoint without a
// restart.
type WebhookSource interface {
	FindValue(ctx context.Context, key string) (string, error)
}

type WebhookNotifier struct {
	settings WebhookSource
	client   *http.Client
	log      *zap.Logger
}

func NewWebhookNotifier(settings WebhookSource, log *zap.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		settings: settings,
		client:   &http.Client{Timeout: 5 * time.Second},
		log:      log.With(zap.String("notifier", "webhook")),
	}
}

// settingKey picks the endpoint for the event: payment confirmations go to
// the payment webhook, everything else to the booking webhook.
func settingKey(event Event) string {
	if event.Type == EventStatusChanged && event.Status == string(entity.BookingStatusPaid) {
		return entity.SettingWebhookPayment
	}
	return entity.SettingWebhookBooking
}

func (n *WebhookNotifier) Notify(ctx context.Context, event Event) error {
	key := settingKey(event)

	url, err := n.settings.FindValue(ctx, key)
	if err != nil {
		return fmt.Errorf("resolve webhook %s: %w", key, err)
	}
	if url == "" {
		n.log.Debug("No webhook configured, skipping event",
			zap.String("event_type", string(event.Type)),
			zap.String("setting_key", key),
		)
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Type, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post event %s to %s: %w", event.Type, key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook %s responded %d", key, resp.StatusCode)
	}

	n.log.Info("Event delivered",
		zap.String("event_type", string(event.Type)),
		zap.String("booking_id", event.Booking.ID),
		zap.String("setting_key", key),
	)

	return nil
}
