package usecase

import "context"

// PreferenceUsecase tracks the per-user notification opt-in flag, mirrors it
// to the backend and keeps the broadcast-topic subscription in step.
type PreferenceUsecase interface {
	// Fetch reads the stored flag (absent means enabled), updates local
	// state and synchronizes the topic subscription to match.
	Fetch(ctx context.Context, userID string) (bool, error)

	// SetEnabled optimistically updates local state, writes the backend and
	// rolls back on failure, leaving the topic subscription untouched. On
	// success the topic subscription is synchronized fire-and-forget.
	SetEnabled(ctx context.Context, userID string, enabled bool) error

	// Enabled reports the current local flag.
	Enabled() bool
}
