package push

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMNotifier sends payloads through Firebase Cloud Messaging.
type FCMNotifier struct {
	client *messaging.Client
}

func NewFCMNotifier(ctx context.Context, projectID, credentialsFile string) (*FCMNotifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init fcm client: %w", err)
	}

	return &FCMNotifier{client: client}, nil
}

func (n *FCMNotifier) Send(ctx context.Context, token string, payload Payload) error {
	_, err := n.client.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
	})
	return err
}

func (n *FCMNotifier) SendMulticast(ctx context.Context, tokens []string, payload Payload) error {
	resp, err := n.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
	})
	if err != nil {
		return err
	}
	slog.Default().Info("fcm multicast sent",
		"success", resp.SuccessCount, "failure", resp.FailureCount)
	return nil
}
