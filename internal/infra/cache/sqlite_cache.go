// Package cache implements the device-local key-value store on SQLite.
package cache

import (
	"context"
	"database/sql"

	"gatepass/internal/domain/repository"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS push_tokens (
	scope TEXT PRIMARY KEY,
	token TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// deviceScope keys tokens observed while no user is signed in.
const deviceScope = "device"

type sqliteTokenCache struct {
	db *sqlx.DB
}

// NewSQLiteTokenCache opens (creating if needed) the local cache database.
func NewSQLiteTokenCache(path string) (repository.TokenCache, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open token cache")
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "failed to create token cache schema")
	}

	return &sqliteTokenCache{db: db}, nil
}

func scopeKey(userID string) string {
	if userID == "" {
		return deviceScope
	}

	return "user:" + userID
}

// LastToken returns the cached token for the scope, or "" when none exists.
func (c *sqliteTokenCache) LastToken(ctx context.Context, userID string) (string, error) {
	var token string
	err := c.db.GetContext(ctx, &token,
		`SELECT token FROM push_tokens WHERE scope = ?`, scopeKey(userID))
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read cached token")
	}

	return token, nil
}

// SaveToken stores the token for the scope, replacing any prior value.
func (c *sqliteTokenCache) SaveToken(ctx context.Context, userID, token string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO push_tokens (scope, token, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(scope) DO UPDATE SET token = excluded.token, updated_at = CURRENT_TIMESTAMP`,
		scopeKey(userID), token)
	if err != nil {
		return errors.Wrap(err, "failed to save cached token")
	}

	return nil
}

// Close releases the underlying database handle.
func (c *sqliteTokenCache) Close() error {
	return errors.WithStack(c.db.Close())
}
