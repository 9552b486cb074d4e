package handler

import (
	"log/slog"
	"net/http"

	"snsbridge/internal/delivery/http/response"
	"snsbridge/internal/domain/entity"
	"snsbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	EventBridgeUC usecase.EventBridgeUsecase
	Logger        *slog.Logger
}

// NotificationHandler accepts notification events from the host application
// and schedules their push delivery.
type NotificationHandler struct {
	eventBridgeUC usecase.EventBridgeUsecase
	logger        *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		eventBridgeUC: params.EventBridgeUC,
		logger:        params.Logger,
	}
}

// NotifyRequest represents a notification event emitted by the host application
type NotifyRequest struct {
	UserID          uuid.UUID `json:"user_id" validate:"required"`
	Username        string    `json:"username"`
	Excerpt         string    `json:"excerpt"`
	PostURL         string    `json:"post_url"`
	TopicTitle      string    `json:"topic_title"`
	TranslatedTitle string    `json:"translated_title"`
	UseTitleAndBody bool      `json:"use_title_and_body"`
	Title           string    `json:"title"`
	Body            string    `json:"body"`
}

// Notify enqueues push delivery for the event's target user. Users without
// registered devices are skipped without error.
func (h *NotificationHandler) Notify(c echo.Context) error {
	var req NotifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid_parameters", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "invalid_parameters", err.Error())
	}

	payload := entity.PushPayload{
		Username:        req.Username,
		Excerpt:         req.Excerpt,
		PostURL:         req.PostURL,
		TopicTitle:      req.TopicTitle,
		TranslatedTitle: req.TranslatedTitle,
		UseTitleAndBody: req.UseTitleAndBody,
		Title:           req.Title,
		Body:            req.Body,
	}

	if err := h.eventBridgeUC.NotifyUser(c.Request().Context(), req.UserID, &payload); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusAccepted, map[string]string{"status": "accepted"})
}
