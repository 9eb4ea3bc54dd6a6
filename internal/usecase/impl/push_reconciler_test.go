package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	mockRepo "gatepass/internal/mocks/repository"
	mockSvc "gatepass/internal/mocks/service"
	"gatepass/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPushReconciler(t *testing.T) (
	usecase.ReconcilerUsecase,
	*mockSvc.MockTokenSource,
	*mockRepo.MockTokenCache,
	*mockRepo.MockUserRepository,
) {
	tokenSource := mockSvc.NewMockTokenSource(t)
	tokenCache := mockRepo.NewMockTokenCache(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	reconciler := NewPushReconciler(tokenSource, tokenCache, userRepo, logger)

	return reconciler, tokenSource, tokenCache, userRepo
}

func TestPushReconciler_NewTokenWritesBackendAndCache(t *testing.T) {
	reconciler, _, tokenCache, userRepo := createTestPushReconciler(t)

	ctx := context.Background()

	tokenCache.EXPECT().LastToken(ctx, "user-1").Return("old-token", nil)
	userRepo.EXPECT().UpdatePushToken(ctx, "user-1", "new-token").Return(nil)
	tokenCache.EXPECT().SaveToken(ctx, "user-1", "new-token").Return(nil)

	err := reconciler.ReconcileToken(ctx, "user-1", "new-token")

	require.NoError(t, err)
}

func TestPushReconciler_UnchangedTokenIsNoOp(t *testing.T) {
	reconciler, _, tokenCache, _ := createTestPushReconciler(t)

	ctx := context.Background()

	tokenCache.EXPECT().LastToken(ctx, "user-1").Return("same-token", nil)

	err := reconciler.ReconcileToken(ctx, "user-1", "same-token")

	require.NoError(t, err)
}

func TestPushReconciler_TokenComparedAfterTrimming(t *testing.T) {
	reconciler, _, tokenCache, _ := createTestPushReconciler(t)

	ctx := context.Background()

	tokenCache.EXPECT().LastToken(ctx, "user-1").Return("same-token", nil)

	err := reconciler.ReconcileToken(ctx, "user-1", "  same-token  ")

	require.NoError(t, err, "whitespace variants of the same token must not trigger a write")
}

func TestPushReconciler_BlankTokenNeverOverwrites(t *testing.T) {
	reconciler, _, _, _ := createTestPushReconciler(t)

	ctx := context.Background()

	require.NoError(t, reconciler.ReconcileToken(ctx, "user-1", ""))
	require.NoError(t, reconciler.ReconcileToken(ctx, "user-1", "   "))
}

func TestPushReconciler_SignedOutCachesWithoutBackendWrite(t *testing.T) {
	reconciler, _, tokenCache, _ := createTestPushReconciler(t)

	ctx := context.Background()

	tokenCache.EXPECT().LastToken(ctx, "").Return("", nil)
	tokenCache.EXPECT().SaveToken(ctx, "", "device-token").Return(nil)

	err := reconciler.ReconcileToken(ctx, "", "device-token")

	require.NoError(t, err)
}

func TestPushReconciler_BackendFailureKeepsBaseline(t *testing.T) {
	reconciler, _, tokenCache, userRepo := createTestPushReconciler(t)

	ctx := context.Background()

	tokenCache.EXPECT().LastToken(ctx, "user-1").Return("old-token", nil)
	userRepo.EXPECT().
		UpdatePushToken(ctx, "user-1", "new-token").
		Return(errors.New("backend unavailable"))

	err := reconciler.ReconcileToken(ctx, "user-1", "new-token")

	// SaveToken never expected: a failed write must leave the cached
	// baseline untouched so the next run retries.
	assert.Error(t, err)
}

func TestPushReconciler_CacheReadFailure(t *testing.T) {
	reconciler, _, tokenCache, _ := createTestPushReconciler(t)

	ctx := context.Background()

	tokenCache.EXPECT().LastToken(ctx, "user-1").Return("", errors.New("cache corrupt"))

	err := reconciler.ReconcileToken(ctx, "user-1", "new-token")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read cached token")
}

func TestPushReconciler_ReconcilePullsTokenFromSource(t *testing.T) {
	reconciler, tokenSource, tokenCache, userRepo := createTestPushReconciler(t)

	ctx := context.Background()

	tokenSource.EXPECT().Token(ctx).Return("fresh-token", nil)
	tokenCache.EXPECT().LastToken(ctx, "user-1").Return("", nil)
	userRepo.EXPECT().UpdatePushToken(ctx, "user-1", "fresh-token").Return(nil)
	tokenCache.EXPECT().SaveToken(ctx, "user-1", "fresh-token").Return(nil)

	err := reconciler.Reconcile(ctx, "user-1")

	require.NoError(t, err)
}

func TestPushReconciler_ReconcileTokenSourceFailure(t *testing.T) {
	reconciler, tokenSource, _, _ := createTestPushReconciler(t)

	ctx := context.Background()

	tokenSource.EXPECT().Token(ctx).Return("", errors.New("transport not ready"))

	err := reconciler.Reconcile(ctx, "user-1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to obtain push token")
}
