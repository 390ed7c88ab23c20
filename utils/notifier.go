package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Notification is the body POSTed to the webhook for each lifecycle change.
type Notification struct {
	Event      string      `json:"event"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// Notifier delivers lifecycle notifications to an HTTP webhook.
// A Notifier without a URL drops every notification.
type Notifier struct {
	client *resty.Client
	url    string
}

// Notifications is the process-wide notifier, disabled until InitNotifier runs.
var Notifications = NewNotifier("")

func NewNotifier(url string) *Notifier {
	client := resty.New().
		SetTimeout(5*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Content-Type", "application/json")

	return &Notifier{client: client, url: url}
}

// InitNotifier installs a notifier for url as Notifications.
func InitNotifier(url string) *Notifier {
	Notifications = NewNotifier(url)
	if url == "" {
		Logger.Info("Lifecycle notifications disabled, NOTIFY_WEBHOOK_URL is empty")
	}
	return Notifications
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.url != ""
}

// Send posts one notification and waits for the webhook to answer.
func (n *Notifier) Send(ctx context.Context, event string, data interface{}) error {
	if !n.Enabled() {
		return nil
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(Notification{Event: event, OccurredAt: time.Now().UTC(), Data: data}).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("notify %s: %w", event, err)
	}
	if resp.IsError() {
		return fmt.Errorf("notify %s: webhook answered %d", event, resp.StatusCode())
	}
	return nil
}

// Notify sends in the background; failures are only logged.
func (n *Notifier) Notify(event string, data interface{}) {
	if !n.Enabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := n.Send(ctx, event, data); err != nil {
			Logger.Warn("Lifecycle notification failed", zap.String("event", event), zap.Error(err))
		}
	}()
}
