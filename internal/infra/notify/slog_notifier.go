// Package notify provides DeviceNotifier implementations. The OS-level
// surface is a platform port; the slog notifier stands in for it on
// headless runs, logging what the device would display.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"gatepass/internal/domain/entity"
	"gatepass/internal/domain/service"
)

type slogNotifier struct {
	logger *slog.Logger

	mu         sync.Mutex
	channels   map[string]struct{}
	tapHandler func(entity.LaunchSignal)
}

// NewSlogNotifier creates a logging device notifier.
func NewSlogNotifier(logger *slog.Logger) service.DeviceNotifier {
	return &slogNotifier{
		logger:   logger,
		channels: make(map[string]struct{}),
	}
}

func (n *slogNotifier) EnsureChannel(ctx context.Context, channelID string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.channels[channelID]; ok {
		return nil
	}
	n.channels[channelID] = struct{}{}
	n.logger.Info("notification channel created", slog.String("channel_id", channelID))

	return nil
}

func (n *slogNotifier) Post(ctx context.Context, notification service.DeviceNotification) error {
	n.logger.Info("device notification posted",
		slog.Int64("notification_id", notification.ID),
		slog.String("channel_id", notification.ChannelID),
		slog.String("title", notification.Title),
		slog.String("route", notification.Tap.Route),
		slog.String("event_id", notification.Tap.EventID),
	)

	return nil
}

func (n *slogNotifier) SetTapHandler(handler func(entity.LaunchSignal)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.tapHandler = handler
}

// SimulateTap invokes the registered tap handler as the platform would when
// the user taps a posted notification. Exposed for harness use.
func (n *slogNotifier) SimulateTap(sig entity.LaunchSignal) {
	n.mu.Lock()
	handler := n.tapHandler
	n.mu.Unlock()

	if handler != nil {
		handler(sig)
	}
}
