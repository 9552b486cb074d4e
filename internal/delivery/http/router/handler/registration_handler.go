package handler

import (
	"log/slog"
	"net/http"

	"snsbridge/internal/delivery/http/middleware"
	"snsbridge/internal/delivery/http/response"
	"snsbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	Logger         *slog.Logger
}

// RegistrationHandler holds dependencies for device registration handlers
type RegistrationHandler struct {
	registrationUC usecase.RegistrationUsecase
	logger         *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUC: params.RegistrationUC,
		logger:         params.Logger,
	}
}

// SubscribeRequest represents the request body for registering a device token
type SubscribeRequest struct {
	Token           string `json:"token" validate:"required"`
	ApplicationName string `json:"application_name" validate:"required"`
	Platform        string `json:"platform" validate:"required"`
}

// DisableRequest represents the request body for disabling a registration
type DisableRequest struct {
	Token string `json:"token" validate:"required"`
}

// Subscribe registers a device token for the authenticated user and returns
// the resulting registration record.
func (h *RegistrationHandler) Subscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "invalid_access", "Invalid user ID in token")
	}

	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid_parameters", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "invalid_parameters", err.Error())
	}

	registration, err := h.registrationUC.Register(c.Request().Context(), userID, &usecase.RegistrationInfo{
		Token:           req.Token,
		ApplicationName: req.ApplicationName,
		Platform:        req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, registration)
}

// Disable marks the registration for the given token as disabled so it no
// longer receives pushes.
func (h *RegistrationHandler) Disable(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "invalid_access", "Invalid user ID in token")
	}

	var req DisableRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid_parameters", "Invalid disable input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "invalid_parameters", err.Error())
	}

	registration, err := h.registrationUC.Disable(c.Request().Context(), req.Token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, registration)
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
