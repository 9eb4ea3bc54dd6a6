package usecase

import (
	"context"

	"gatepass/internal/domain/entity"
)

// BroadcastInput is the privileged broadcast form. All string fields are
// trimmed before validation.
type BroadcastInput struct {
	Title      string `json:"title" validate:"required"`
	Body       string `json:"body" validate:"required"`
	TargetRole string `json:"target_role" validate:"required"`
	Route      string `json:"route"`
	EventID    string `json:"event_id"`
	SenderID   string `json:"-"`
}

// BroadcastUsecase persists a new notification record for a role cohort.
// Delivery happens entirely through the backend fan-out; the sender never
// contacts a device directly.
type BroadcastUsecase interface {
	// Send validates, trims and persists the record with a server-assigned
	// timestamp. A second Send while one is in flight is rejected.
	Send(ctx context.Context, input BroadcastInput) (*entity.NotificationRecord, error)

	// InFlight reports whether a send is currently in progress, so callers
	// can disable duplicate submission.
	InFlight() bool
}
