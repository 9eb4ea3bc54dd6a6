package repository

import "context"

// TokenCache is the device-local store holding the last push token the
// reconciler confirmed, keyed by scope. The device scope (empty user ID)
// tracks tokens observed before sign-in; per-user scopes track the last
// token synced to that user's backend record.
type TokenCache interface {
	// LastToken returns the cached token for the scope, or "" when none
	// has been stored yet.
	LastToken(ctx context.Context, userID string) (string, error)

	// SaveToken stores the token for the scope, replacing any prior value.
	SaveToken(ctx context.Context, userID, token string) error

	// Close releases the underlying store.
	Close() error
}
