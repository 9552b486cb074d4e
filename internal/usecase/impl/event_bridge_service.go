package impl

import (
	"context"
	"fmt"

	deliverycontext "snsbridge/internal/delivery/context"
	"snsbridge/internal/domain/entity"
	"snsbridge/internal/domain/repository"
	"snsbridge/internal/domain/service"
	"snsbridge/internal/usecase"

	"github.com/google/uuid"
)

type eventBridgeService struct {
	registrationRepo repository.RegistrationRepository
	unreadCounter    service.UnreadCounter
	publisher        service.EventPublisher
}

// NewEventBridgeService creates a new event bridge instance
func NewEventBridgeService(
	registrationRepo repository.RegistrationRepository,
	unreadCounter service.UnreadCounter,
	publisher service.EventPublisher,
) usecase.EventBridgeUsecase {
	return &eventBridgeService{
		registrationRepo: registrationRepo,
		unreadCounter:    unreadCounter,
		publisher:        publisher,
	}
}

// NotifyUser schedules one dispatch unit for the user. The existence check is
// deliberately cheap and unfiltered; the dispatcher does the enabled filtering
// later, off the synchronous event path.
func (s *eventBridgeService) NotifyUser(ctx context.Context, userID uuid.UUID, payload *entity.PushPayload) error {
	exists, err := s.registrationRepo.ExistsForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check registrations for user: %w", err)
	}
	if !exists {
		return nil
	}

	unread, err := s.unreadCounter.UnreadCount(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count unread notifications: %w", err)
	}

	event := &service.DispatchEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    userID.String(),
		Payload:   *payload,
		Unread:    unread,
	}

	if err := s.publisher.PublishDispatchEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to publish dispatch event: %w", err)
	}

	return nil
}
