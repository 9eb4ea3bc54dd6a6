package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when a user record does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the operations touching a user's backend record.
// All writes are non-destructive partial merges; fields other than the one
// written must be left untouched.
type UserRepository interface {
	// UpdatePushToken merge-writes the fcmToken field on the user record.
	UpdatePushToken(ctx context.Context, userID, token string) error

	// SetNotificationsEnabled merge-writes the notificationsEnabled field.
	SetNotificationsEnabled(ctx context.Context, userID string, enabled bool) error

	// GetNotificationsEnabled reads the stored flag. A missing user record
	// or a missing field reports enabled (opt-in by default).
	GetNotificationsEnabled(ctx context.Context, userID string) (bool, error)
}
