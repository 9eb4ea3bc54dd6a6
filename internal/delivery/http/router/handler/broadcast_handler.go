package handler

import (
	"log/slog"
	"net/http"

	"gatepass/internal/delivery/http/response"
	domainerrors "gatepass/internal/domain/errors"
	"gatepass/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BroadcastHandler holds dependencies for broadcast-related handlers
type BroadcastHandler struct {
	uc     usecase.BroadcastUsecase
	logger *slog.Logger
}

// NewBroadcastHandler is the constructor for BroadcastHandler
func NewBroadcastHandler(uc usecase.BroadcastUsecase, logger *slog.Logger) *BroadcastHandler {
	return &BroadcastHandler{
		uc:     uc,
		logger: logger,
	}
}

// BroadcastRequest represents the request body for sending a broadcast
type BroadcastRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	TargetRole string `json:"target_role"`
	Route      string `json:"route,omitempty"`
	EventID    string `json:"event_id,omitempty"`
}

// SendBroadcast persists a notification record for a role cohort. The
// backend fan-out delivers it; this endpoint never pushes to devices.
func (h *BroadcastHandler) SendBroadcast(c echo.Context) error {
	senderID, err := h.getSenderID(c)
	if err != nil {
		return err
	}

	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}

	record, err := h.uc.Send(c.Request().Context(), usecase.BroadcastInput{
		Title:      req.Title,
		Body:       req.Body,
		TargetRole: req.TargetRole,
		Route:      req.Route,
		EventID:    req.EventID,
		SenderID:   senderID,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record, "Broadcast sent successfully")
}

// GetBroadcastStatus reports whether a send is in flight, so clients can
// disable duplicate submission.
func (h *BroadcastHandler) GetBroadcastStatus(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]bool{
		"in_flight": h.uc.InFlight(),
	}, "")
}

// getSenderID extracts the authenticated user ID from the context
func (h *BroadcastHandler) getSenderID(c echo.Context) (string, error) {
	userIDVal := c.Get("userID")
	senderID, ok := userIDVal.(string)
	if !ok || senderID == "" {
		return "", response.Unauthorized(c, "INVALID_TOKEN", "Invalid sender ID in token")
	}

	return senderID, nil
}

// handleAppError handles application errors
func (h *BroadcastHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
