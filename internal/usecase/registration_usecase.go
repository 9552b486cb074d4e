package usecase

import (
	"context"

	"snsbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// RegistrationInfo represents device information for a registration request
type RegistrationInfo struct {
	Token           string `json:"token"`
	ApplicationName string `json:"application_name"`
	Platform        string `json:"platform"`
}

// RegistrationUsecase defines the interface for the registration reconciler
type RegistrationUsecase interface {
	// Register reconciles a device-token registration for a user: reuse a
	// broker-verified endpoint, recreate a stale one, or create fresh.
	Register(ctx context.Context, userID uuid.UUID, info *RegistrationInfo) (*entity.Registration, error)

	// Disable marks the registration for a device token as disabled locally.
	// The broker endpoint is left untouched.
	Disable(ctx context.Context, deviceToken string) (*entity.Registration, error)
}
