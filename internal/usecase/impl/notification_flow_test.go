package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gatepass/internal/domain/constants"
	"gatepass/internal/domain/entity"
	"gatepass/internal/domain/repository"
	"gatepass/internal/domain/service"
	mockRepo "gatepass/internal/mocks/repository"
	mockSvc "gatepass/internal/mocks/service"
	"gatepass/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestBroadcastToTapFlow walks the full path: an admin broadcast lands in the
// backend, the live listener picks it up, the notifier posts it, a tap stores
// the deep link, and routing consumes the link exactly once.
func TestBroadcastToTapFlow(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	deviceNotifier := mockSvc.NewMockDeviceNotifier(t)

	stream := newScriptedStream(repository.ErrStreamClosed)

	// The backend: a created record is echoed back through the stream the
	// way the real fan-out would deliver it.
	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, record *entity.NotificationRecord) error {
			record.ID = "n-100"
			stream.push(entity.NotificationChange{Kind: entity.ChangeAdded, Record: record})

			return nil
		})
	notificationRepo.EXPECT().
		ListenByRole(mock.Anything, "user", constants.ListenWindowSize).
		Return(stream, nil)
	publisher.EXPECT().PublishBroadcastEvent(ctx, mock.Anything).Return(nil)

	var tapHandler func(entity.LaunchSignal)
	deviceNotifier.EXPECT().
		SetTapHandler(mock.Anything).
		Run(func(handler func(entity.LaunchSignal)) {
			tapHandler = handler
		})
	deviceNotifier.EXPECT().EnsureChannel(mock.Anything, constants.NotificationChannelID).Return(nil)

	posted := make(chan service.DeviceNotification, 1)
	deviceNotifier.EXPECT().
		Post(mock.Anything, mock.Anything).
		Run(func(_ context.Context, notification service.DeviceNotification) {
			posted <- notification
		}).
		Return(nil)

	deepLinks := NewDeepLinkStore()
	notifier := NewLocalNotifier(deviceNotifier, deepLinks, logger)
	listener := NewIngestionListener(notificationRepo, constants.ListenWindowSize, logger)
	sender := NewBroadcastSender(notificationRepo, publisher, logger)

	handle, err := listener.Start(ctx, "user",
		func(record *entity.NotificationRecord) {
			require.NoError(t, notifier.ShowRecord(ctx, record))
		},
		nil,
	)
	require.NoError(t, err)
	defer handle.Cancel()

	stream.push() // empty initial snapshot opens the session

	record, err := sender.Send(ctx, usecase.BroadcastInput{
		Title:      "Show starts soon",
		Body:       "Gates close in 15 minutes",
		TargetRole: "user",
		EventID:    "evt-9",
		SenderID:   "admin-1",
	})
	require.NoError(t, err)
	require.Equal(t, "n-100", record.ID)

	var notification service.DeviceNotification
	select {
	case notification = <-posted:
	case <-time.After(time.Second):
		t.Fatal("the broadcast never reached the device surface")
	}

	assert.Equal(t, "Show starts soon", notification.Title)
	assert.Equal(t, constants.DefaultRoute, notification.Tap.Route)
	assert.Equal(t, "evt-9", notification.Tap.EventID)

	// The user taps the notification.
	require.NotNil(t, tapHandler)
	tapHandler(notification.Tap)

	link, ok := deepLinks.Consume()
	require.True(t, ok)
	assert.Equal(t, constants.DefaultRoute, link.Route)
	assert.Equal(t, "evt-9", link.EventID)

	_, ok = deepLinks.Consume()
	assert.False(t, ok, "the deep link is consumed exactly once")
}
