package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	domainerrors "gatepass/internal/domain/errors"
	mockRepo "gatepass/internal/mocks/repository"
	mockSvc "gatepass/internal/mocks/service"
	"gatepass/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTopic = "broadcast"

// topicRecorder captures topic calls in arrival order.
type topicRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *topicRecorder) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *topicRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.calls...)
}

func createTestPreferenceService(t *testing.T) (
	usecase.PreferenceUsecase,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPushService,
	*mockSvc.MockTokenSource,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	pushSvc := mockSvc.NewMockPushService(t)
	tokenSource := mockSvc.NewMockTokenSource(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewPreferenceService(userRepo, pushSvc, tokenSource, testTopic, logger)

	return service, userRepo, pushSvc, tokenSource
}

func TestPreferenceService_DefaultsToEnabled(t *testing.T) {
	service, _, _, _ := createTestPreferenceService(t)

	assert.True(t, service.Enabled())
}

func TestPreferenceService_FetchAppliesStoredFlag(t *testing.T) {
	service, userRepo, pushSvc, tokenSource := createTestPreferenceService(t)

	ctx := context.Background()

	userRepo.EXPECT().GetNotificationsEnabled(ctx, "user-1").Return(false, nil)
	tokenSource.EXPECT().Token(mock.Anything).Return("tok", nil).Maybe()
	pushSvc.EXPECT().UnsubscribeFromTopic(mock.Anything, "tok", testTopic).Return(nil).Maybe()

	enabled, err := service.Fetch(ctx, "user-1")

	require.NoError(t, err)
	assert.False(t, enabled)
	assert.False(t, service.Enabled())
}

func TestPreferenceService_FetchFailureKeepsLocalFlag(t *testing.T) {
	service, userRepo, _, _ := createTestPreferenceService(t)

	ctx := context.Background()

	userRepo.EXPECT().
		GetNotificationsEnabled(ctx, "user-1").
		Return(false, errors.New("backend down"))

	enabled, err := service.Fetch(ctx, "user-1")

	assert.Error(t, err)
	assert.True(t, enabled, "read failure falls back to the current local flag")
	assert.True(t, service.Enabled())
}

func TestPreferenceService_SetEnabledCommits(t *testing.T) {
	service, userRepo, pushSvc, tokenSource := createTestPreferenceService(t)

	ctx := context.Background()
	recorder := &topicRecorder{}

	userRepo.EXPECT().SetNotificationsEnabled(ctx, "user-1", false).Return(nil)
	tokenSource.EXPECT().Token(mock.Anything).Return("tok", nil)
	pushSvc.EXPECT().
		UnsubscribeFromTopic(mock.Anything, "tok", testTopic).
		Run(func(_ context.Context, _, _ string) {
			recorder.record("unsubscribe")
		}).
		Return(nil)

	err := service.SetEnabled(ctx, "user-1", false)

	require.NoError(t, err)
	assert.False(t, service.Enabled())

	require.Eventually(t, func() bool {
		return len(recorder.snapshot()) == 1
	}, time.Second, 10*time.Millisecond, "topic must follow the committed toggle")
}

func TestPreferenceService_SetEnabledRollsBackOnWriteFailure(t *testing.T) {
	service, userRepo, _, _ := createTestPreferenceService(t)

	ctx := context.Background()

	userRepo.EXPECT().
		SetNotificationsEnabled(ctx, "user-1", false).
		Return(errors.New("write failed"))

	err := service.SetEnabled(ctx, "user-1", false)

	require.Error(t, err)
	assert.True(t, service.Enabled(), "failed write must roll the flag back")

	assert.ErrorIs(t, err, domainerrors.ErrPreferenceWriteFailed)

	// No topic calls expected: the subscription stays where it was.
}

func TestPreferenceService_TopicCallsArriveInToggleOrder(t *testing.T) {
	service, userRepo, pushSvc, tokenSource := createTestPreferenceService(t)

	ctx := context.Background()
	recorder := &topicRecorder{}

	userRepo.EXPECT().SetNotificationsEnabled(ctx, "user-1", mock.Anything).Return(nil)
	tokenSource.EXPECT().Token(mock.Anything).Return("tok", nil)
	pushSvc.EXPECT().
		UnsubscribeFromTopic(mock.Anything, "tok", testTopic).
		Run(func(_ context.Context, _, _ string) {
			recorder.record("unsubscribe")
		}).
		Return(nil)
	pushSvc.EXPECT().
		SubscribeToTopic(mock.Anything, "tok", testTopic).
		Run(func(_ context.Context, _, _ string) {
			recorder.record("subscribe")
		}).
		Return(nil)

	require.NoError(t, service.SetEnabled(ctx, "user-1", false))
	require.NoError(t, service.SetEnabled(ctx, "user-1", true))

	require.Eventually(t, func() bool {
		return len(recorder.snapshot()) == 2
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, []string{"unsubscribe", "subscribe"}, recorder.snapshot(),
		"a disable followed by an enable must reach the topic API in that order")
}

func TestPreferenceService_TopicSyncSkippedWithoutToken(t *testing.T) {
	service, userRepo, _, tokenSource := createTestPreferenceService(t)

	ctx := context.Background()

	userRepo.EXPECT().SetNotificationsEnabled(ctx, "user-1", true).Return(nil)

	done := make(chan struct{})
	tokenSource.EXPECT().
		Token(mock.Anything).
		Run(func(_ context.Context) {
			close(done)
		}).
		Return("", errors.New("no token yet"))

	require.NoError(t, service.SetEnabled(ctx, "user-1", true))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("topic sync never consulted the token source")
	}
	// No topic expectations set: a missing token skips the update entirely.
}

func TestPreferenceService_TopicFailureDoesNotAffectFlag(t *testing.T) {
	service, userRepo, pushSvc, tokenSource := createTestPreferenceService(t)

	ctx := context.Background()

	userRepo.EXPECT().SetNotificationsEnabled(ctx, "user-1", true).Return(nil)
	tokenSource.EXPECT().Token(mock.Anything).Return("tok", nil)

	done := make(chan struct{})
	pushSvc.EXPECT().
		SubscribeToTopic(mock.Anything, "tok", testTopic).
		Run(func(_ context.Context, _, _ string) {
			close(done)
		}).
		Return(errors.New("fcm unavailable"))

	require.NoError(t, service.SetEnabled(ctx, "user-1", true))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("topic sync never ran")
	}

	assert.True(t, service.Enabled(), "topic sync is best effort and never moves the flag")
}
