package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"gatepass/internal/domain/constants"
	"gatepass/internal/domain/entity"
	"gatepass/internal/domain/service"
	"gatepass/internal/usecase"

	"github.com/pkg/errors"
)

type localNotifier struct {
	notifier      service.DeviceNotifier
	deepLinkStore usecase.DeepLinkStore
	logger        *slog.Logger

	channelOnce sync.Once
	channelErr  error

	// seq disambiguates IDs for posts landing within the same nanosecond.
	seq atomic.Int64
}

// NewLocalNotifier creates the notifier bridging ingested records and push
// payloads to the device notification surface. It registers itself as the
// tap handler so a tapped notification lands in the deep link store.
func NewLocalNotifier(notifier service.DeviceNotifier, deepLinkStore usecase.DeepLinkStore, logger *slog.Logger) usecase.NotifierUsecase {
	n := &localNotifier{
		notifier:      notifier,
		deepLinkStore: deepLinkStore,
		logger:        logger,
	}
	notifier.SetTapHandler(n.HandleTap)

	return n
}

// Show posts one independently dismissible notification. The channel is
// created on the first post only.
func (n *localNotifier) Show(ctx context.Context, title, body, route, eventID string) error {
	n.channelOnce.Do(func() {
		n.channelErr = n.notifier.EnsureChannel(ctx, constants.NotificationChannelID)
	})
	if n.channelErr != nil {
		return errors.Wrap(n.channelErr, "failed to ensure notification channel")
	}

	if strings.TrimSpace(route) == "" {
		route = constants.DefaultRoute
	}

	notification := service.DeviceNotification{
		ID:        time.Now().UnixNano() + n.seq.Add(1),
		ChannelID: constants.NotificationChannelID,
		Title:     title,
		Body:      body,
		Tap: entity.LaunchSignal{
			Route:   route,
			EventID: eventID,
		},
	}

	if err := n.notifier.Post(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to post device notification")
	}

	return nil
}

// ShowRecord posts a notification for an ingested record.
func (n *localNotifier) ShowRecord(ctx context.Context, record *entity.NotificationRecord) error {
	return n.Show(ctx, record.Title, record.Body, record.Route, record.EventID)
}

// HandlePushPayload converges the out-of-process push path onto Show,
// back-filling missing text from the data fields and fixed defaults.
func (n *localNotifier) HandlePushPayload(ctx context.Context, payload entity.PushPayload) error {
	title := strings.TrimSpace(payload.Title)
	if title == "" {
		title = strings.TrimSpace(payload.Data["title"])
	}
	if title == "" {
		title = constants.DefaultNotificationTitle
	}

	body := strings.TrimSpace(payload.Body)
	if body == "" {
		body = strings.TrimSpace(payload.Data["body"])
	}
	if body == "" {
		body = constants.DefaultNotificationBody
	}

	return n.Show(ctx, title, body, payload.Data["route"], payload.Data["eventId"])
}

// HandleTap records the tapped notification's target as the pending deep
// link. Invoked from the platform's callback context; the store's atomic
// slot makes this safe without further synchronization.
func (n *localNotifier) HandleTap(sig entity.LaunchSignal) {
	n.deepLinkStore.SetFromLaunchSignal(sig)
	n.logger.Debug("notification tapped",
		slog.String("route", sig.Route),
		slog.String("event_id", sig.EventID),
	)
}
