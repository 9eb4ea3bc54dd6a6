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

// PreferenceHandler holds dependencies for notification preference handlers
type PreferenceHandler struct {
	uc     usecase.PreferenceUsecase
	logger *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(uc usecase.PreferenceUsecase, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		uc:     uc,
		logger: logger,
	}
}

// PreferenceRequest represents the request body for updating the preference
type PreferenceRequest struct {
	Enabled *bool `json:"enabled"`
}

// GetPreference reads the stored notification preference
func (h *PreferenceHandler) GetPreference(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	enabled, err := h.uc.Fetch(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"enabled": enabled}, "")
}

// UpdatePreference toggles the notification preference. The local flag is
// already rolled back when the usecase reports a write failure.
func (h *PreferenceHandler) UpdatePreference(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req PreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}
	if req.Enabled == nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "enabled is required")
	}

	if err := h.uc.SetEnabled(c.Request().Context(), userID, *req.Enabled); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"enabled": *req.Enabled}, "Preference updated successfully")
}

// getUserID extracts the authenticated user ID from the context
func (h *PreferenceHandler) getUserID(c echo.Context) (string, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return "", response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *PreferenceHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
