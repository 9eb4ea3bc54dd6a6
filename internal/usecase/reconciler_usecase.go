package usecase

import "context"

// ReconcilerUsecase keeps the backend's record of where to push-deliver to a
// user in line with the device's current token. Invoked on app start and
// whenever sign-in state becomes known; must never block start.
type ReconcilerUsecase interface {
	// Reconcile obtains the fresh token from the push transport and applies
	// ReconcileToken. Transport failures are returned but non-fatal.
	Reconcile(ctx context.Context, userID string) error

	// ReconcileToken reconciles an explicitly observed token, as reported
	// by a token-refresh callback or the device endpoint. Blank tokens and
	// unchanged tokens produce no writes.
	ReconcileToken(ctx context.Context, userID, freshToken string) error
}
