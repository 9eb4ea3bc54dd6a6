package usecase

import (
	"context"

	"gatepass/internal/domain/entity"
)

// SubscriptionHandle controls one live listener session. Cancel releases the
// underlying subscription; it is idempotent and must be called when the
// owning role context is disposed (sign-out, role change, teardown).
type SubscriptionHandle interface {
	Cancel()
}

// IngestionUsecase maintains a live, ordered view of the most recent
// notification records visible to a role and surfaces only genuinely new
// ones: the first snapshot of a session never delivers, and afterwards only
// added, well-formed records reach onNew.
type IngestionUsecase interface {
	// Start opens a listener session for the role. Starting a role that
	// already has a session replaces it. onNew and onError are invoked
	// asynchronously, never on the caller's goroutine; onError is terminal
	// for the session and the owner decides whether to restart.
	Start(ctx context.Context, role string, onNew func(*entity.NotificationRecord), onError func(error)) (SubscriptionHandle, error)

	// CancelAll tears down every active session.
	CancelAll()
}
