package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"snsbridge/internal/domain/entity"
	domainerrors "snsbridge/internal/domain/errors"
	"snsbridge/internal/domain/repository"
	"snsbridge/internal/domain/service"
	"snsbridge/internal/usecase"

	"github.com/google/uuid"
)

type registrationService struct {
	registrationRepo repository.RegistrationRepository
	broker           service.PushBroker
}

// NewRegistrationService creates a new registration reconciler instance
func NewRegistrationService(
	registrationRepo repository.RegistrationRepository,
	broker service.PushBroker,
) usecase.RegistrationUsecase {
	return &registrationService{
		registrationRepo: registrationRepo,
		broker:           broker,
	}
}

// Register reconciles a device-token registration: reuse the cached endpoint
// when the broker still reports it enabled, otherwise tear it down and create
// a fresh one. Re-registration is idempotent and self-healing.
func (s *registrationService) Register(ctx context.Context, userID uuid.UUID, info *usecase.RegistrationInfo) (*entity.Registration, error) {
	platform := entity.Platform(info.Platform)
	if !platform.Valid() {
		return nil, domainerrors.ErrInvalidPlatform
	}

	existing, err := s.registrationRepo.FindByDeviceToken(ctx, info.Token)
	if err != nil && !errors.Is(err, repository.ErrRegistrationNotFound) {
		return nil, fmt.Errorf("failed to find registration by device token: %w", err)
	}

	if existing != nil {
		// The stored ARN is a cache of broker state; revalidate before reuse.
		// Any attribute-fetch failure counts as "not reusable" so a broker
		// outage degrades to endpoint recreation, not a blocked user.
		attrs, attrErr := s.broker.GetEndpointAttributes(ctx, existing.EndpointARN)
		if attrErr == nil && attrs.Enabled() {
			return s.reuseRegistration(ctx, existing, userID)
		}

		// Stale endpoint: best-effort remote cleanup, then drop the local row
		// and fall through to creation.
		_ = s.broker.DeleteEndpoint(ctx, existing.EndpointARN)
		if err := s.registrationRepo.Delete(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to delete stale registration: %w", err)
		}
	}

	endpointARN, err := s.broker.CreateEndpoint(ctx, info.Token, platform)
	if err != nil || endpointARN == "" {
		return nil, domainerrors.ErrEndpointCreationFailed
	}

	now := time.Now()
	registration := &entity.Registration{
		ID:              uuid.New(),
		UserID:          userID,
		DeviceToken:     info.Token,
		ApplicationName: info.ApplicationName,
		Platform:        platform,
		EndpointARN:     endpointARN,
		Status:          entity.StatusEnabled,
		StatusChangedAt: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		if errors.Is(err, repository.ErrDuplicateDeviceToken) {
			// Lost a concurrent-create race on the same device token; the
			// unique constraint is the safety net. Fail cleanly.
			return nil, domainerrors.ErrDeviceTokenConflict
		}

		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	return registration, nil
}

// reuseRegistration keeps the broker-verified endpoint and reconciles local
// state: ownership follows the current requester, and a locally disabled row
// transitions back to enabled. No broker mutation happens on this path.
func (s *registrationService) reuseRegistration(ctx context.Context, registration *entity.Registration, userID uuid.UUID) (*entity.Registration, error) {
	if registration.UserID != userID {
		if err := s.registrationRepo.ReassignOwner(ctx, registration.ID, userID); err != nil {
			return nil, fmt.Errorf("failed to reassign registration owner: %w", err)
		}
		registration.UserID = userID
	}

	if !registration.Enabled() {
		now := time.Now()
		if err := s.registrationRepo.UpdateStatus(ctx, registration.ID, entity.StatusEnabled, now); err != nil {
			return nil, fmt.Errorf("failed to re-enable registration: %w", err)
		}
		registration.Status = entity.StatusEnabled
		registration.StatusChangedAt = now
	}

	return registration, nil
}

// Disable marks the registration disabled locally. The broker endpoint is left
// in place; the device may re-register later and reuse it if still valid.
func (s *registrationService) Disable(ctx context.Context, deviceToken string) (*entity.Registration, error) {
	registration, err := s.registrationRepo.FindByDeviceToken(ctx, deviceToken)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, domainerrors.ErrRegistrationNotFound
		}

		return nil, fmt.Errorf("failed to find registration by device token: %w", err)
	}

	now := time.Now()
	if err := s.registrationRepo.UpdateStatus(ctx, registration.ID, entity.StatusDisabled, now); err != nil {
		return nil, fmt.Errorf("failed to disable registration: %w", err)
	}
	registration.Status = entity.StatusDisabled
	registration.StatusChangedAt = now

	return registration, nil
}
