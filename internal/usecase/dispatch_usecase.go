package usecase

import (
	"context"

	"snsbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchUsecase defines the interface for the notification dispatcher
type DispatchUsecase interface {
	// Dispatch fans one notification out to all of the user's enabled
	// registrations, self-healing from broker-reported delivery failures.
	// One registration's failure never blocks the others.
	Dispatch(ctx context.Context, userID uuid.UUID, payload *entity.PushPayload, unread int) error
}

// EventBridgeUsecase defines the interface for the host-facing event bridge
type EventBridgeUsecase interface {
	// NotifyUser schedules exactly one async dispatch unit for the user if the
	// user has at least one registration of any status.
	NotifyUser(ctx context.Context, userID uuid.UUID, payload *entity.PushPayload) error
}
