// Package messaging implements the push-transport operations on Firebase
// Cloud Messaging.
package messaging

import (
	"context"
	"fmt"

	"gatepass/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type fcmService struct {
	client *messaging.Client
}

// NewFCMService creates a new FCM push service instance
func NewFCMService(ctx context.Context, projectID, credentialsPath string) (service.PushService, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmService{
		client: client,
	}, nil
}

// SubscribeToTopic adds a device token to the broadcast topic
func (s *fcmService) SubscribeToTopic(ctx context.Context, token, topic string) error {
	resp, err := s.client.SubscribeToTopic(ctx, []string{token}, topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", topic, err)
	}
	if resp.FailureCount > 0 {
		return fmt.Errorf("topic subscription rejected for %d token(s)", resp.FailureCount)
	}

	return nil
}

// UnsubscribeFromTopic removes a device token from the broadcast topic
func (s *fcmService) UnsubscribeFromTopic(ctx context.Context, token, topic string) error {
	resp, err := s.client.UnsubscribeFromTopic(ctx, []string{token}, topic)
	if err != nil {
		return fmt.Errorf("failed to unsubscribe from topic %s: %w", topic, err)
	}
	if resp.FailureCount > 0 {
		return fmt.Errorf("topic unsubscription rejected for %d token(s)", resp.FailureCount)
	}

	return nil
}

// SendToToken pushes a message directly to a single device token
func (s *fcmService) SendToToken(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
