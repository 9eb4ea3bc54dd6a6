package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gatepass/internal/domain/constants"
	"gatepass/internal/domain/entity"
	domainerrors "gatepass/internal/domain/errors"
	"gatepass/internal/domain/service"
	mockRepo "gatepass/internal/mocks/repository"
	mockSvc "gatepass/internal/mocks/service"
	"gatepass/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBroadcastSender(t *testing.T) (
	usecase.BroadcastUsecase,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockEventPublisher,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sender := NewBroadcastSender(notificationRepo, publisher, logger)

	return sender, notificationRepo, publisher
}

func TestBroadcastSender_Send_Success(t *testing.T) {
	sender, notificationRepo, publisher := createTestBroadcastSender(t)

	ctx := context.Background()

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, record *entity.NotificationRecord) error {
			record.ID = "n-42"

			return nil
		})

	var event *service.BroadcastEvent
	publisher.EXPECT().
		PublishBroadcastEvent(ctx, mock.Anything).
		Run(func(_ context.Context, e *service.BroadcastEvent) {
			event = e
		}).
		Return(nil)

	record, err := sender.Send(ctx, usecase.BroadcastInput{
		Title:      "  Venue changed  ",
		Body:       "  New venue is Hall 3  ",
		TargetRole: " user ",
		EventID:    "evt-1",
		SenderID:   "admin-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "n-42", record.ID)
	assert.Equal(t, "Venue changed", record.Title)
	assert.Equal(t, "New venue is Hall 3", record.Body)
	assert.Equal(t, "user", record.TargetRole)
	assert.Equal(t, constants.DefaultRoute, record.Route, "blank route falls back to the default")

	require.NotNil(t, event)
	assert.Equal(t, "n-42", event.NotificationID)
	assert.Equal(t, "admin-1", event.SenderID)
	assert.Equal(t, "user", event.TargetRole)
}

func TestBroadcastSender_Send_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.BroadcastInput
	}{
		{name: "missing title", input: usecase.BroadcastInput{Body: "b", TargetRole: "user"}},
		{name: "missing body", input: usecase.BroadcastInput{Title: "t", TargetRole: "user"}},
		{name: "missing target role", input: usecase.BroadcastInput{Title: "t", Body: "b"}},
		{name: "whitespace only", input: usecase.BroadcastInput{Title: "   ", Body: "\t", TargetRole: "user"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, _, _ := createTestBroadcastSender(t)

			record, err := sender.Send(context.Background(), tt.input)

			// Rejected before any backend call; no repository expectations set.
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrBroadcastInvalid.ErrorCode(), appErr.ErrorCode())
			assert.Nil(t, record)
		})
	}
}

func TestBroadcastSender_Send_CreateFailure(t *testing.T) {
	sender, notificationRepo, _ := createTestBroadcastSender(t)

	ctx := context.Background()

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Return(errors.New("firestore unavailable"))

	record, err := sender.Send(ctx, usecase.BroadcastInput{
		Title:      "t",
		Body:       "b",
		TargetRole: "user",
	})

	assert.ErrorIs(t, err, domainerrors.ErrBroadcastFailed)
	assert.Nil(t, record)
	assert.False(t, sender.InFlight(), "the in-flight flag must clear after a failed send")
}

func TestBroadcastSender_Send_PublishFailureTolerated(t *testing.T) {
	sender, notificationRepo, publisher := createTestBroadcastSender(t)

	ctx := context.Background()

	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().
		PublishBroadcastEvent(ctx, mock.Anything).
		Return(errors.New("broker down"))

	record, err := sender.Send(ctx, usecase.BroadcastInput{
		Title:      "t",
		Body:       "b",
		TargetRole: "user",
	})

	require.NoError(t, err, "the audit event is best effort")
	assert.NotNil(t, record)
}

func TestBroadcastSender_Send_RejectsConcurrentSend(t *testing.T) {
	sender, notificationRepo, publisher := createTestBroadcastSender(t)

	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.NotificationRecord) error {
			close(entered)
			<-release

			return nil
		})
	publisher.EXPECT().PublishBroadcastEvent(ctx, mock.Anything).Return(nil)

	firstDone := make(chan error, 1)
	go func() {
		_, err := sender.Send(ctx, usecase.BroadcastInput{Title: "t", Body: "b", TargetRole: "user"})
		firstDone <- err
	}()

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("first send never reached the backend")
	}

	assert.True(t, sender.InFlight())

	_, err := sender.Send(ctx, usecase.BroadcastInput{Title: "t2", Body: "b2", TargetRole: "user"})
	assert.ErrorIs(t, err, domainerrors.ErrBroadcastInFlight)

	close(release)
	require.NoError(t, <-firstDone)
	assert.False(t, sender.InFlight())
}
