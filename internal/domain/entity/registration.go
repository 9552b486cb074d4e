// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform is the mobile platform a device token was issued for.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// Valid reports whether the platform is one of the supported values.
func (p Platform) Valid() bool {
	return p == PlatformIOS || p == PlatformAndroid
}

// RegistrationStatus is the local bookkeeping status of a registration.
// It does not disable delivery at the broker by itself.
type RegistrationStatus string

const (
	StatusEnabled  RegistrationStatus = "enabled"
	StatusDisabled RegistrationStatus = "disabled"
)

// Registration links a user, a device token, and a broker endpoint.
// There is at most one Registration per physical device token; the stored
// endpoint ARN is a cache of broker state and may be stale.
type Registration struct {
	ID              uuid.UUID          `json:"id"`                // The unique identifier for the registration.
	UserID          uuid.UUID          `json:"user_id"`           // The most recent registrant; ownership transfers on re-registration.
	DeviceToken     string             `json:"device_token"`      // Push-service token identifying one device+app install; globally unique.
	ApplicationName string             `json:"application_name"`  // Free-text label supplied by the client.
	Platform        Platform           `json:"platform"`          // ios or android; immutable after creation.
	EndpointARN     string             `json:"endpoint_arn"`      // Broker-assigned endpoint identifier (cached).
	Status          RegistrationStatus `json:"status"`            // enabled or disabled.
	StatusChangedAt time.Time          `json:"status_changed_at"` // Timestamp of the last status transition.
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// Enabled reports whether the registration is locally enabled for dispatch.
func (r *Registration) Enabled() bool {
	return r.Status == StatusEnabled
}
