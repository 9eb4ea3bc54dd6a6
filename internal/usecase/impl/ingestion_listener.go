package impl

import (
	"context"
	"log/slog"
	"sync"

	"gatepass/internal/domain/entity"
	"gatepass/internal/domain/repository"
	"gatepass/internal/usecase"

	"github.com/pkg/errors"
)

// ErrBlankRole is returned when a listener is started without a role.
var ErrBlankRole = errors.New("listener role must not be blank")

type ingestionListener struct {
	notificationRepo repository.NotificationRepository
	windowSize       int
	logger           *slog.Logger

	mu       sync.Mutex
	sessions map[string]*listenerSession
}

// listenerSession is the runtime state of one live subscription. The first
// snapshot of a session reflects the existing backlog and must deliver
// nothing; every later snapshot is diffed by change kind.
type listenerSession struct {
	role             string
	stream           repository.NotificationStream
	cancel           context.CancelFunc
	firstSnapshotSeen bool

	once sync.Once
}

// NewIngestionListener creates the listener registry. windowSize bounds the
// live query to the most recent records.
func NewIngestionListener(notificationRepo repository.NotificationRepository, windowSize int, logger *slog.Logger) usecase.IngestionUsecase {
	return &ingestionListener{
		notificationRepo: notificationRepo,
		windowSize:       windowSize,
		logger:           logger,
		sessions:         make(map[string]*listenerSession),
	}
}

// Start opens a subscription for the role, replacing any existing session
// for the same role. Callbacks run on a dedicated goroutine, never on the
// caller's.
func (l *ingestionListener) Start(ctx context.Context, role string, onNew func(*entity.NotificationRecord), onError func(error)) (usecase.SubscriptionHandle, error) {
	if role == "" {
		return nil, ErrBlankRole
	}

	sessionCtx, cancel := context.WithCancel(ctx)

	stream, err := l.notificationRepo.ListenByRole(sessionCtx, role, l.windowSize)
	if err != nil {
		cancel()

		return nil, errors.Wrap(err, "failed to open notification feed")
	}

	session := &listenerSession{
		role:   role,
		stream: stream,
		cancel: cancel,
	}

	l.mu.Lock()
	if prev, ok := l.sessions[role]; ok {
		prev.stop()
	}
	l.sessions[role] = session
	l.mu.Unlock()

	go l.run(sessionCtx, session, onNew, onError)

	return &subscriptionHandle{listener: l, session: session}, nil
}

// CancelAll tears down every active session.
func (l *ingestionListener) CancelAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for role, session := range l.sessions {
		session.stop()
		delete(l.sessions, role)
	}
}

func (l *ingestionListener) run(ctx context.Context, session *listenerSession, onNew func(*entity.NotificationRecord), onError func(error)) {
	defer l.recoverCallback(session.role)

	for {
		changes, err := session.stream.Next(ctx)
		if err != nil {
			l.remove(session)
			if errors.Is(err, repository.ErrStreamClosed) || ctx.Err() != nil {
				return
			}

			l.logger.Error("notification feed failed",
				slog.String("role", session.role),
				slog.Any("error", err),
			)
			// The session stays torn down; the owner decides whether to
			// start again.
			if onError != nil {
				onError(err)
			}

			return
		}

		if !session.firstSnapshotSeen {
			// The opening snapshot is the historical backlog, not new
			// arrivals. Deliver nothing, whatever it contains.
			session.firstSnapshotSeen = true
			l.logger.Debug("initial snapshot suppressed",
				slog.String("role", session.role),
				slog.Int("backlog", len(changes)),
			)

			continue
		}

		l.deliver(session.role, changes, onNew)
	}
}

// deliver forwards added, well-formed records in the order the backend
// returned them. Modified and removed changes never deliver.
func (l *ingestionListener) deliver(role string, changes []entity.NotificationChange, onNew func(*entity.NotificationRecord)) {
	for _, change := range changes {
		if change.Kind != entity.ChangeAdded {
			continue
		}

		record := change.Record
		if !record.Deliverable() {
			l.logger.Warn("dropping notification with blank title or body",
				slog.String("role", role),
				slog.String("notification_id", record.ID),
				slog.String("change", change.Kind.String()),
			)

			continue
		}

		onNew(record)
	}
}

func (l *ingestionListener) remove(session *listenerSession) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sessions[session.role] == session {
		delete(l.sessions, session.role)
	}
	session.stop()
}

// recoverCallback keeps a panicking callback from crashing the host process.
func (l *ingestionListener) recoverCallback(role string) {
	if r := recover(); r != nil {
		l.logger.Error("notification callback panicked",
			slog.String("role", role),
			slog.Any("panic", r),
		)
	}
}

func (s *listenerSession) stop() {
	s.once.Do(func() {
		s.cancel()
		s.stream.Stop()
	})
}

// subscriptionHandle cancels one session. Idempotent.
type subscriptionHandle struct {
	listener *ingestionListener
	session  *listenerSession
}

func (h *subscriptionHandle) Cancel() {
	h.listener.remove(h.session)
}
