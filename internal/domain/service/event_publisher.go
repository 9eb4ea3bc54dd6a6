package service

import (
	"context"
	"time"
)

// BroadcastEvent is emitted after a broadcast record lands in the backend,
// for downstream audit and analytics consumers.
type BroadcastEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string    `json:"notification_id"`
	SenderID       string    `json:"sender_id"`
	TargetRole     string    `json:"target_role"`
	Route          string    `json:"route"`
	EventID        string    `json:"event_id,omitempty"`
	PublishedAt    time.Time `json:"published_at"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishBroadcastEvent publishes a broadcast audit event.
	PublishBroadcastEvent(ctx context.Context, event *BroadcastEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
