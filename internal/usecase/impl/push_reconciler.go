package impl

import (
	"context"
	"log/slog"

	"gatepass/internal/domain/entity"
	"gatepass/internal/domain/repository"
	"gatepass/internal/domain/service"
	"gatepass/internal/usecase"

	"github.com/pkg/errors"
)

type pushReconciler struct {
	tokenSource service.TokenSource
	tokenCache  repository.TokenCache
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewPushReconciler creates the push identity reconciler.
func NewPushReconciler(
	tokenSource service.TokenSource,
	tokenCache repository.TokenCache,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ReconcilerUsecase {
	return &pushReconciler{
		tokenSource: tokenSource,
		tokenCache:  tokenCache,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Reconcile asks the push transport for the current token and reconciles it.
func (r *pushReconciler) Reconcile(ctx context.Context, userID string) error {
	token, err := r.tokenSource.Token(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to obtain push token")
	}

	return r.ReconcileToken(ctx, userID, token)
}

// ReconcileToken compares the observed token against the cached baseline and
// writes only on change. The baseline advances after the backend write
// succeeds, so a failed write is retried on the next start or token refresh
// instead of leaving the backend stale until the token changes again.
func (r *pushReconciler) ReconcileToken(ctx context.Context, userID, freshToken string) error {
	fresh := entity.NormalizeToken(freshToken)
	if fresh == "" {
		// A blank observed token never overwrites a prior valid one.
		return nil
	}

	last, err := r.tokenCache.LastToken(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to read cached token")
	}

	if fresh == entity.NormalizeToken(last) {
		return nil
	}

	if userID != "" {
		if err := r.userRepo.UpdatePushToken(ctx, userID, fresh); err != nil {
			// Non-fatal: the unchanged baseline makes the next run retry.
			r.logger.Warn("push token backend write failed",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)

			return errors.Wrap(err, "failed to write push token")
		}
	}

	if err := r.tokenCache.SaveToken(ctx, userID, fresh); err != nil {
		return errors.Wrap(err, "failed to cache push token")
	}

	r.logger.Info("push token reconciled",
		slog.String("user_id", userID),
	)

	return nil
}
