package firestore

import (
	"context"
	"log/slog"
	"sync"

	"gatepass/config"
	"gatepass/internal/domain/entity"
	"gatepass/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type notificationRepository struct {
	client     *firestore.Client
	collection string
	logger     *slog.Logger
}

// NewNotificationRepository creates a Firestore-backed notification repository
func NewNotificationRepository(client *firestore.Client, cfg *config.Config, logger *slog.Logger) repository.NotificationRepository {
	return &notificationRepository{
		client:     client,
		collection: cfg.Notifications.Collection,
		logger:     logger,
	}
}

// CreateNotification persists a new record. The createdAt field carries the
// serverTimestamp tag, so the backend assigns the creation time.
func (r *notificationRepository) CreateNotification(ctx context.Context, record *entity.NotificationRecord) error {
	ref := r.client.Collection(r.collection).NewDoc()
	if _, err := ref.Create(ctx, record); err != nil {
		return errors.Wrap(err, "failed to create notification record")
	}
	record.ID = ref.ID

	return nil
}

// ListenByRole opens a snapshot listener on the role-filtered query window.
func (r *notificationRepository) ListenByRole(ctx context.Context, role string, limit int) (repository.NotificationStream, error) {
	query := r.client.Collection(r.collection).
		Where("targetRole", "in", []string{role, entity.RoleAll}).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)

	streamCtx, cancel := context.WithCancel(ctx)

	return &notificationStream{
		iter:   query.Snapshots(streamCtx),
		cancel: cancel,
		logger: r.logger,
	}, nil
}

// notificationStream adapts a Firestore query snapshot iterator to the
// domain stream contract.
type notificationStream struct {
	iter     *firestore.QuerySnapshotIterator
	cancel   context.CancelFunc
	stopOnce sync.Once
	logger   *slog.Logger
}

func (s *notificationStream) Next(ctx context.Context) ([]entity.NotificationChange, error) {
	snap, err := s.iter.Next()
	if err != nil {
		return nil, mapStreamError(err)
	}

	changes := make([]entity.NotificationChange, 0, len(snap.Changes))
	for _, change := range snap.Changes {
		record := new(entity.NotificationRecord)
		if err := change.Doc.DataTo(record); err != nil {
			// A record the schema cannot express is skipped, not fatal.
			s.logger.Warn("skipping undecodable notification record",
				slog.String("doc_id", change.Doc.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		record.ID = change.Doc.Ref.ID

		changes = append(changes, entity.NotificationChange{
			Kind:   mapChangeKind(change.Kind),
			Record: record,
		})
	}

	return changes, nil
}

func (s *notificationStream) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		s.iter.Stop()
	})
}

func mapChangeKind(kind firestore.DocumentChangeKind) entity.ChangeKind {
	switch kind {
	case firestore.DocumentAdded:
		return entity.ChangeAdded
	case firestore.DocumentModified:
		return entity.ChangeModified
	default:
		return entity.ChangeRemoved
	}
}

func mapStreamError(err error) error {
	switch status.Code(err) {
	case codes.Canceled:
		return repository.ErrStreamClosed
	case codes.PermissionDenied:
		return repository.ErrPermissionDenied
	default:
		return errors.Wrap(err, "notification stream failed")
	}
}
