package service

import "context"

// PushService defines the push-transport operations the subsystem consumes:
// topic membership management and direct sends to a device token.
type PushService interface {
	// SubscribeToTopic adds the device token to the broadcast topic.
	SubscribeToTopic(ctx context.Context, token, topic string) error

	// UnsubscribeFromTopic removes the device token from the broadcast topic.
	UnsubscribeFromTopic(ctx context.Context, token, topic string) error

	// SendToToken pushes a message directly to a single device token.
	SendToToken(ctx context.Context, token, title, body string, data map[string]string) error
}

// TokenSource hands out the device's current push token. Obtaining a token
// is asynchronous on real transports and may be slow or fail; callers must
// not block app start on it.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
