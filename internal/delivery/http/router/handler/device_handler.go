package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"gatepass/internal/delivery/http/response"
	domainerrors "gatepass/internal/domain/errors"
	"gatepass/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DeviceHandler holds dependencies for device token reporting
type DeviceHandler struct {
	uc     usecase.ReconcilerUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(uc usecase.ReconcilerUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// ReportTokenRequest represents the request body for reporting a push token
type ReportTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// ReportToken reconciles an observed push token with the signed-in user's
// backend record. Reconciliation is idempotent; reporting an unchanged
// token writes nothing.
func (h *DeviceHandler) ReportToken(c echo.Context) error {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ReportTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}
	if strings.TrimSpace(req.Token) == "" {
		return response.BadRequest(c, domainerrors.ErrPushTokenInvalid.ErrorCode(), domainerrors.ErrPushTokenInvalid.Message())
	}

	if err := h.uc.ReconcileToken(c.Request().Context(), userID, req.Token); err != nil {
		// Reconciliation failures are eventual-consistency territory; the
		// next report retries. Surface them as accepted-with-warning.
		h.logger.Warn("push token reconciliation failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return response.Success(c, http.StatusAccepted, nil, "Token accepted, reconciliation pending")
	}

	return response.Success(c, http.StatusOK, nil, "Token reconciled")
}
