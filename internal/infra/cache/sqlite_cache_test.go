package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *sqliteTokenCache {
	path := filepath.Join(t.TempDir(), "tokens.db")

	tokenCache, err := NewSQLiteTokenCache(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, tokenCache.Close())
	})

	return tokenCache.(*sqliteTokenCache)
}

func TestSQLiteTokenCache_EmptyScope(t *testing.T) {
	tokenCache := openTestCache(t)

	token, err := tokenCache.LastToken(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSQLiteTokenCache_SaveAndLoad(t *testing.T) {
	tokenCache := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, tokenCache.SaveToken(ctx, "user-1", "token-a"))

	token, err := tokenCache.LastToken(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "token-a", token)
}

func TestSQLiteTokenCache_SaveReplacesPriorValue(t *testing.T) {
	tokenCache := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, tokenCache.SaveToken(ctx, "user-1", "token-a"))
	require.NoError(t, tokenCache.SaveToken(ctx, "user-1", "token-b"))

	token, err := tokenCache.LastToken(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "token-b", token)
}

func TestSQLiteTokenCache_ScopesAreIndependent(t *testing.T) {
	tokenCache := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, tokenCache.SaveToken(ctx, "", "device-token"))
	require.NoError(t, tokenCache.SaveToken(ctx, "user-1", "user-token"))

	deviceToken, err := tokenCache.LastToken(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "device-token", deviceToken)

	userToken, err := tokenCache.LastToken(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-token", userToken)
}

func TestSQLiteTokenCache_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.db")
	ctx := context.Background()

	first, err := NewSQLiteTokenCache(path)
	require.NoError(t, err)
	require.NoError(t, first.SaveToken(ctx, "user-1", "token-a"))
	require.NoError(t, first.Close())

	second, err := NewSQLiteTokenCache(path)
	require.NoError(t, err)
	defer second.Close()

	token, err := second.LastToken(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "token-a", token)
}
