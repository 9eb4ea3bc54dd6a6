package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gatepass/internal/domain/entity"
	mockRepo "gatepass/internal/mocks/repository"
	mockSvc "gatepass/internal/mocks/service"
	"gatepass/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBroadcastHandler(t *testing.T) (*BroadcastHandler, *mockRepo.MockNotificationRepository, *mockSvc.MockEventPublisher) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sender := impl.NewBroadcastSender(notificationRepo, publisher, logger)

	return NewBroadcastHandler(sender, logger), notificationRepo, publisher
}

func newBroadcastContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/broadcast", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", "admin-1")

	return c, rec
}

func TestBroadcastHandler_SendBroadcast_Integration(t *testing.T) {
	handler, notificationRepo, publisher := createTestBroadcastHandler(t)

	notificationRepo.EXPECT().
		CreateNotification(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, record *entity.NotificationRecord) error {
			record.ID = "n-1"

			return nil
		})
	publisher.EXPECT().PublishBroadcastEvent(mock.Anything, mock.Anything).Return(nil)

	c, rec := newBroadcastContext(t, `{"title":"Doors open","body":"See you at 18:00","target_role":"all"}`)

	require.NoError(t, handler.SendBroadcast(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"n-1"`)
	assert.Contains(t, rec.Body.String(), "Broadcast sent successfully")
}

func TestBroadcastHandler_SendBroadcast_ValidationError(t *testing.T) {
	handler, _, _ := createTestBroadcastHandler(t)

	c, rec := newBroadcastContext(t, `{"title":"","body":"b","target_role":"user"}`)

	require.NoError(t, handler.SendBroadcast(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BROADCAST_INVALID")
}

func TestBroadcastHandler_SendBroadcast_MissingUser(t *testing.T) {
	handler, _, _ := createTestBroadcastHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/broadcast", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.SendBroadcast(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBroadcastHandler_GetBroadcastStatus(t *testing.T) {
	handler, _, _ := createTestBroadcastHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/broadcast/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetBroadcastStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"in_flight":false`)
}
