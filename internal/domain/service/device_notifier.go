package service

import (
	"context"

	"gatepass/internal/domain/entity"
)

// DeviceNotification is a single device-level notification ready to post.
// Each posted notification is independently dismissible; IDs must not
// collide across near-simultaneous posts.
type DeviceNotification struct {
	ID        int64
	ChannelID string
	Title     string
	Body      string
	Tap       entity.LaunchSignal
}

// DeviceNotifier is the OS notification surface. Implementations deliver the
// notification to the platform and, when the user taps it, invoke the
// registered tap handler with the attached launch signal and foreground the
// app with single-task semantics.
type DeviceNotifier interface {
	// EnsureChannel creates the notification channel if it does not exist
	// yet. Idempotent; tracked by the OS once created.
	EnsureChannel(ctx context.Context, channelID string) error

	// Post delivers the notification to the device.
	Post(ctx context.Context, notification DeviceNotification) error

	// SetTapHandler registers the callback invoked with the tap signal of a
	// tapped notification. Implementations may invoke it from any goroutine.
	SetTapHandler(handler func(entity.LaunchSignal))
}
