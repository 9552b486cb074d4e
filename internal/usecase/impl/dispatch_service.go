package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "snsbridge/internal/delivery/context"
	"snsbridge/internal/domain/entity"
	"snsbridge/internal/domain/repository"
	"snsbridge/internal/domain/service"
	"snsbridge/internal/usecase"

	"github.com/google/uuid"
)

type dispatchService struct {
	registrationRepo repository.RegistrationRepository
	broker           service.PushBroker
	baseURL          string
	logger           *slog.Logger
}

// NewDispatchService creates a new notification dispatcher instance.
// baseURL prefixes the deep-link URLs embedded in push payloads.
func NewDispatchService(
	registrationRepo repository.RegistrationRepository,
	broker service.PushBroker,
	baseURL string,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return &dispatchService{
		registrationRepo: registrationRepo,
		broker:           broker,
		baseURL:          baseURL,
		logger:           logger,
	}
}

// Dispatch fans one notification out to the user's enabled registrations.
// Delivery is fire-and-forget: publish failures are handled per registration
// and never surfaced to the caller, except for the initial store read.
func (s *dispatchService) Dispatch(ctx context.Context, userID uuid.UUID, payload *entity.PushPayload, unread int) error {
	registrations, err := s.registrationRepo.FindEnabledByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find enabled registrations: %w", err)
	}

	for _, registration := range registrations {
		s.dispatchOne(ctx, registration, payload, unread)
	}

	return nil
}

// dispatchOne publishes to a single registration and self-heals local state
// from the broker-reported failures that indicate a dead endpoint.
func (s *dispatchService) dispatchOne(ctx context.Context, registration *entity.Registration, payload *entity.PushPayload, unread int) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	message, err := buildMessage(registration.Platform, payload, unread, s.baseURL)
	if err != nil {
		logger.Error("[Dispatch] Failed to build payload",
			slog.String("registration_id", registration.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	err = s.broker.Publish(ctx, registration.EndpointARN, message)
	switch {
	case err == nil:
		logger.Debug("[Dispatch] Notification published",
			slog.String("registration_id", registration.ID.String()),
			slog.String("platform", string(registration.Platform)),
		)

	case errors.Is(err, service.ErrEndpointDisabled):
		// The app will detect the disabled state on next launch and
		// re-register, producing a fresh endpoint.
		s.disableRegistration(ctx, registration)

	case errors.Is(err, service.ErrInvalidTarget):
		// The stored ARN no longer resolves to anything at the broker;
		// there is no remote endpoint to clean up.
		s.destroyRegistration(ctx, registration)

	default:
		// Best-effort delivery: the notification is dropped for this one
		// registration.
		logger.Warn("[Dispatch] Dropping notification after broker error",
			slog.String("registration_id", registration.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *dispatchService) disableRegistration(ctx context.Context, registration *entity.Registration) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if err := s.registrationRepo.DisableByEndpointARN(ctx, registration.EndpointARN, time.Now()); err != nil {
		logger.Error("[Dispatch] Failed to disable registration",
			slog.String("endpoint_arn", registration.EndpointARN),
			slog.Any("error", err),
		)
	}
	if err := s.broker.DeleteEndpoint(ctx, registration.EndpointARN); err != nil {
		logger.Warn("[Dispatch] Failed to delete disabled endpoint",
			slog.String("endpoint_arn", registration.EndpointARN),
			slog.Any("error", err),
		)
	}
}

func (s *dispatchService) destroyRegistration(ctx context.Context, registration *entity.Registration) {
	if err := s.registrationRepo.DeleteByEndpointARN(ctx, registration.EndpointARN); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("[Dispatch] Failed to delete registration for invalid target",
			slog.String("endpoint_arn", registration.EndpointARN),
			slog.Any("error", err),
		)
	}
}
