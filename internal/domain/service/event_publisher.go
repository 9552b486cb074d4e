package service

import (
	"context"

	"snsbridge/internal/domain/entity"
)

// DispatchEvent is one unit of dispatch work scheduled by the event bridge.
// Exactly one event is published per (user, host notification) pair; the
// enabled/disabled filtering happens later, inside the dispatcher.
type DispatchEvent struct {
	RequestID string             `json:"request_id,omitempty"` // For distributed tracing
	UserID    string             `json:"user_id"`
	Payload   entity.PushPayload `json:"payload"`
	Unread    int                `json:"unread"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes a dispatch event for async processing
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
