package service

import (
	"context"

	"snsbridge/internal/domain/entity"

	"github.com/pkg/errors"
)

// Broker-reported publish failures that trigger local self-healing.
var (
	// ErrEndpointDisabled is returned by Publish when the broker reports the
	// endpoint as permanently disabled.
	ErrEndpointDisabled = errors.New("broker endpoint is disabled")
	// ErrInvalidTarget is returned by Publish when the target identifier no
	// longer resolves to anything at the broker.
	ErrInvalidTarget = errors.New("target endpoint identifier is invalid")
)

// EndpointAttributes is the attribute map the broker reports for an endpoint.
type EndpointAttributes map[string]string

// Enabled reports whether the broker considers the endpoint deliverable.
func (a EndpointAttributes) Enabled() bool {
	return a["Enabled"] == "true"
}

// PushBroker is the narrow capability over the external push-notification
// broker. It carries no business logic; callers decide what broker failures
// mean for local state.
type PushBroker interface {
	// CreateEndpoint registers a device token with the broker and returns the
	// endpoint ARN.
	CreateEndpoint(ctx context.Context, deviceToken string, platform entity.Platform) (string, error)

	// GetEndpointAttributes fetches the current attributes of an endpoint.
	GetEndpointAttributes(ctx context.Context, endpointARN string) (EndpointAttributes, error)

	// DeleteEndpoint removes an endpoint at the broker.
	DeleteEndpoint(ctx context.Context, endpointARN string) error

	// Publish sends a pre-formatted multi-platform message to an endpoint.
	// Returns ErrEndpointDisabled or ErrInvalidTarget for the broker failures
	// the dispatcher self-heals from.
	Publish(ctx context.Context, endpointARN string, message string) error
}
