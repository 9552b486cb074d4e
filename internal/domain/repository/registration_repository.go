// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"snsbridge/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for registration persistence.
var (
	// ErrRegistrationNotFound is returned when a registration is not found.
	ErrRegistrationNotFound = errors.New("registration not found")
	// ErrDuplicateDeviceToken is returned when a registration for the device
	// token already exists. The unique constraint on device_token is the sole
	// safety net for concurrent registration of the same token.
	ErrDuplicateDeviceToken = errors.New("registration already exists for device token")
)

// RegistrationRepository defines the interface for registration-related database operations.
type RegistrationRepository interface {
	// Create persists a new registration.
	Create(ctx context.Context, registration *entity.Registration) error

	// FindByDeviceToken retrieves the registration for a device token.
	FindByDeviceToken(ctx context.Context, deviceToken string) (*entity.Registration, error)

	// FindEnabledByUser retrieves all enabled registrations for a user.
	FindEnabledByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Registration, error)

	// ExistsForUser reports whether the user has any registration of any status.
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)

	// ReassignOwner transfers ownership of a registration to another user.
	ReassignOwner(ctx context.Context, id uuid.UUID, userID uuid.UUID) error

	// UpdateStatus transitions the registration status and stamps status_changed_at.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RegistrationStatus, changedAt time.Time) error

	// Delete removes a registration by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DisableByEndpointARN marks every registration cached against the endpoint
	// ARN as disabled and stamps status_changed_at.
	DisableByEndpointARN(ctx context.Context, endpointARN string, changedAt time.Time) error

	// DeleteByEndpointARN removes every registration cached against the endpoint ARN.
	DeleteByEndpointARN(ctx context.Context, endpointARN string) error
}
