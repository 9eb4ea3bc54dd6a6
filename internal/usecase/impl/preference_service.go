package impl

import (
	"context"
	"log/slog"
	"sync"

	domainerrors "gatepass/internal/domain/errors"
	"gatepass/internal/domain/repository"
	"gatepass/internal/domain/service"
	"gatepass/internal/usecase"
)

// preferenceState is the explicit toggle state machine: Idle while no write
// is outstanding, Pending while the optimistic value awaits the backend,
// then Committed or RolledBack.
type preferenceState int

const (
	prefIdle preferenceState = iota
	prefPending
	prefCommitted
	prefRolledBack
)

type preferenceService struct {
	userRepo    repository.UserRepository
	pushSvc     service.PushService
	tokenSource service.TokenSource
	topic       string
	logger      *slog.Logger

	mu      sync.Mutex
	enabled bool
	state   preferenceState

	// syncCh serializes topic updates so toggles reach the topic API in
	// the order they committed, without callers blocking on the ack.
	syncCh   chan bool
	syncOnce sync.Once
}

// NewPreferenceService creates the notification preference service. Users
// start opted in until a stored flag says otherwise.
func NewPreferenceService(
	userRepo repository.UserRepository,
	pushSvc service.PushService,
	tokenSource service.TokenSource,
	topic string,
	logger *slog.Logger,
) usecase.PreferenceUsecase {
	return &preferenceService{
		userRepo:    userRepo,
		pushSvc:     pushSvc,
		tokenSource: tokenSource,
		topic:       topic,
		logger:      logger,
		enabled:     true,
		syncCh:      make(chan bool, 16),
	}
}

// Fetch reads the stored flag and brings the topic subscription in line.
func (s *preferenceService) Fetch(ctx context.Context, userID string) (bool, error) {
	enabled, err := s.userRepo.GetNotificationsEnabled(ctx, userID)
	if err != nil {
		return s.Enabled(), domainerrors.ErrPreferenceReadFailed.WrapMessage(err.Error())
	}

	s.mu.Lock()
	s.enabled = enabled
	s.state = prefIdle
	s.mu.Unlock()

	s.syncTopic(enabled)

	return enabled, nil
}

// SetEnabled applies the optimistic toggle. The backend write decides
// whether it commits or rolls back; the topic subscription only moves on
// commit.
func (s *preferenceService) SetEnabled(ctx context.Context, userID string, enabled bool) error {
	s.mu.Lock()
	previous := s.enabled
	s.enabled = enabled
	s.state = prefPending
	s.mu.Unlock()

	if err := s.userRepo.SetNotificationsEnabled(ctx, userID, enabled); err != nil {
		s.mu.Lock()
		s.enabled = previous
		s.state = prefRolledBack
		s.mu.Unlock()

		s.logger.Warn("preference write rolled back",
			slog.String("user_id", userID),
			slog.Bool("attempted", enabled),
			slog.Any("error", err),
		)

		return domainerrors.ErrPreferenceWriteFailed.WrapMessage(err.Error())
	}

	s.mu.Lock()
	s.state = prefCommitted
	s.mu.Unlock()

	s.syncTopic(enabled)

	return nil
}

// Enabled reports the current local flag.
func (s *preferenceService) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enabled
}

// syncTopic queues a topic update. Fire-and-forget from the caller's
// perspective; a single worker drains the queue in order.
func (s *preferenceService) syncTopic(enabled bool) {
	s.syncOnce.Do(func() {
		go s.runTopicSync()
	})

	select {
	case s.syncCh <- enabled:
	default:
		s.logger.Warn("topic sync queue full, dropping update",
			slog.Bool("enabled", enabled),
		)
	}
}

func (s *preferenceService) runTopicSync() {
	for enabled := range s.syncCh {
		ctx := context.Background()

		token, err := s.tokenSource.Token(ctx)
		if err != nil {
			s.logger.Warn("topic sync skipped, no push token",
				slog.Any("error", err),
			)

			continue
		}

		if enabled {
			err = s.pushSvc.SubscribeToTopic(ctx, token, s.topic)
		} else {
			err = s.pushSvc.UnsubscribeFromTopic(ctx, token, s.topic)
		}
		if err != nil {
			s.logger.Warn("topic sync failed",
				slog.Bool("enabled", enabled),
				slog.String("topic", s.topic),
				slog.Any("error", err),
			)

			continue
		}

		s.logger.Debug("topic subscription synchronized",
			slog.Bool("enabled", enabled),
			slog.String("topic", s.topic),
		)
	}
}
