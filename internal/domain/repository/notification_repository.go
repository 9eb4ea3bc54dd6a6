// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"gatepass/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for the notification feed.
var (
	// ErrStreamClosed is returned by Next after the stream has been stopped.
	ErrStreamClosed = errors.New("notification stream closed")
	// ErrPermissionDenied is returned when the backend rejects the live query.
	ErrPermissionDenied = errors.New("notification feed permission denied")
)

// NotificationStream is one live subscription against the notification
// collection. Next blocks until the backend delivers the next snapshot and
// returns the per-record changes in backend order. The first call reflects
// the existing backlog; callers are responsible for treating it as such.
type NotificationStream interface {
	Next(ctx context.Context) ([]entity.NotificationChange, error)

	// Stop releases the subscription. Safe to call more than once.
	Stop()
}

// NotificationRepository defines the operations on the backend notification
// collection.
type NotificationRepository interface {
	// CreateNotification persists a new record. The backend assigns the
	// creation timestamp; the record's ID is filled in on return.
	CreateNotification(ctx context.Context, record *entity.NotificationRecord) error

	// ListenByRole opens a live query filtered to targetRole IN {role, "all"},
	// ordered by creation time descending and capped at limit records.
	ListenByRole(ctx context.Context, role string, limit int) (NotificationStream, error)
}
