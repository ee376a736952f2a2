package push

import (
	"context"
	"log/slog"
)

// Payload is the title/body/data triple forwarded to the push
// provider for each device token.
type Payload struct {
	Title string
	Body  string
	Data  map[string]string
}

// Notifier delivers a payload to registered device tokens. Failures
// are reported once and never retried.
type Notifier interface {
	Send(ctx context.Context, token string, payload Payload) error
	SendMulticast(ctx context.Context, tokens []string, payload Payload) error
}

// LogNotifier is the fallback used when the push provider is not
// configured: it logs the payload and succeeds.
type LogNotifier struct{}

func (LogNotifier) Send(ctx context.Context, token string, payload Payload) error {
	slog.Default().Info("push notification (mock mode)",
		"token", token, "title", payload.Title, "body", payload.Body, "data", payload.Data)
	return nil
}

func (LogNotifier) SendMulticast(ctx context.Context, tokens []string, payload Payload) error {
	slog.Default().Info("push notifications (mock mode)",
		"token_count", len(tokens), "title", payload.Title, "body", payload.Body, "data", payload.Data)
	return nil
}
