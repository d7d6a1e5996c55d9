package notifications

import (
	"context"
	"fmt"

	"github.com/ViBiOh/httputils/v4/pkg/request"
)

var _ NotificationChannel = (*WebhookChannel)(nil)

// WebhookChannel posts each notification as JSON to a fixed URL.
type WebhookChannel struct {
	url string
}

func NewWebhookChannel(url string) *WebhookChannel {
	return &WebhookChannel{url: url}
}

func (c *WebhookChannel) Send(ctx context.Context, notification Notification) error {
	resp, err := request.Post(c.url).StreamJSON(ctx, notification)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}

	if err := request.DiscardBody(resp.Body); err != nil {
		return fmt.Errorf("discard: %w", err)
	}

	return nil
}
