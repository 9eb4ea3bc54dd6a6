package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	deliverycontext "gatepass/internal/delivery/context"
	"gatepass/internal/domain/constants"
	"gatepass/internal/domain/entity"
	domainerrors "gatepass/internal/domain/errors"
	"gatepass/internal/domain/repository"
	"gatepass/internal/domain/service"
	"gatepass/internal/usecase"

	"github.com/go-playground/validator/v10"
)

type broadcastSender struct {
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	validate         *validator.Validate
	logger           *slog.Logger

	inFlight atomic.Bool
}

// NewBroadcastSender creates the privileged broadcast sender.
func NewBroadcastSender(
	notificationRepo repository.NotificationRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.BroadcastUsecase {
	return &broadcastSender{
		notificationRepo: notificationRepo,
		publisher:        publisher,
		validate:         validator.New(),
		logger:           logger,
	}
}

// Send trims, validates and persists the record. Validation failures are
// rejected before any network call; the backend assigns the creation
// timestamp and fans the record out to every matching listener.
func (s *broadcastSender) Send(ctx context.Context, input usecase.BroadcastInput) (*entity.NotificationRecord, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Body = strings.TrimSpace(input.Body)
	input.TargetRole = strings.TrimSpace(input.TargetRole)
	input.Route = strings.TrimSpace(input.Route)
	input.EventID = strings.TrimSpace(input.EventID)

	if err := s.validate.Struct(&input); err != nil {
		return nil, domainerrors.ErrBroadcastInvalid.WithDetails(err.Error())
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, domainerrors.ErrBroadcastInFlight
	}
	defer s.inFlight.Store(false)

	route := input.Route
	if route == "" {
		route = constants.DefaultRoute
	}

	record := &entity.NotificationRecord{
		Title:      input.Title,
		Body:       input.Body,
		Route:      route,
		EventID:    input.EventID,
		TargetRole: input.TargetRole,
	}

	if err := s.notificationRepo.CreateNotification(ctx, record); err != nil {
		return nil, domainerrors.ErrBroadcastFailed.WrapMessage(err.Error())
	}

	s.logger.Info("broadcast persisted",
		slog.String("notification_id", record.ID),
		slog.String("target_role", record.TargetRole),
	)

	// Audit event for downstream consumers; delivery itself rides the
	// backend fan-out, so a publish failure is logged, not surfaced.
	event := &service.BroadcastEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: record.ID,
		SenderID:       input.SenderID,
		TargetRole:     record.TargetRole,
		Route:          record.Route,
		EventID:        record.EventID,
		PublishedAt:    time.Now().UTC(),
	}
	if err := s.publisher.PublishBroadcastEvent(ctx, event); err != nil {
		s.logger.Warn("broadcast audit event publish failed",
			slog.String("notification_id", record.ID),
			slog.Any("error", err),
		)
	}

	return record, nil
}

// InFlight reports whether a send is currently in progress.
func (s *broadcastSender) InFlight() bool {
	return s.inFlight.Load()
}
