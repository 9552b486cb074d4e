package impl

import (
	"context"
	"testing"

	deliverycontext "snsbridge/internal/delivery/context"
	"snsbridge/internal/domain/service"
	mockRepo "snsbridge/internal/mocks/repository"
	mockService "snsbridge/internal/mocks/service"
	"snsbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventBridgeServiceFixtures struct {
	service          usecase.EventBridgeUsecase
	registrationRepo *mockRepo.MockRegistrationRepository
	unreadCounter    *mockService.MockUnreadCounter
	publisher        *mockService.MockEventPublisher
}

func createTestEventBridgeService(t *testing.T) eventBridgeServiceFixtures {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	unreadCounter := mockService.NewMockUnreadCounter(t)
	publisher := mockService.NewMockEventPublisher(t)
	service := NewEventBridgeService(registrationRepo, unreadCounter, publisher)

	return eventBridgeServiceFixtures{
		service:          service,
		registrationRepo: registrationRepo,
		unreadCounter:    unreadCounter,
		publisher:        publisher,
	}
}

func TestEventBridgeService_NotifyUser(t *testing.T) {
	fx := createTestEventBridgeService(t)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	userID := uuid.New()
	payload := testPayload()

	fx.registrationRepo.EXPECT().
		ExistsForUser(ctx, userID).
		Return(true, nil)

	fx.unreadCounter.EXPECT().
		UnreadCount(ctx, userID).
		Return(7, nil)

	var published *service.DispatchEvent
	fx.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Run(func(_ context.Context, event *service.DispatchEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.NotifyUser(ctx, userID, payload)
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, "req-123", published.RequestID)
	assert.Equal(t, userID.String(), published.UserID)
	assert.Equal(t, *payload, published.Payload)
	assert.Equal(t, 7, published.Unread)
}

func TestEventBridgeService_NotifyUser_NoRegistrations(t *testing.T) {
	fx := createTestEventBridgeService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.registrationRepo.EXPECT().
		ExistsForUser(ctx, userID).
		Return(false, nil)

	// No unread count, no publish: the user has nothing to deliver to.
	err := fx.service.NotifyUser(ctx, userID, testPayload())
	require.NoError(t, err)
}

func TestEventBridgeService_NotifyUser_ExistsError(t *testing.T) {
	fx := createTestEventBridgeService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.registrationRepo.EXPECT().
		ExistsForUser(ctx, userID).
		Return(false, errors.New("database error"))

	err := fx.service.NotifyUser(ctx, userID, testPayload())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check registrations for user")
}

func TestEventBridgeService_NotifyUser_UnreadCountError(t *testing.T) {
	fx := createTestEventBridgeService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.registrationRepo.EXPECT().
		ExistsForUser(ctx, userID).
		Return(true, nil)

	fx.unreadCounter.EXPECT().
		UnreadCount(ctx, userID).
		Return(0, errors.New("database error"))

	err := fx.service.NotifyUser(ctx, userID, testPayload())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count unread notifications")
}

func TestEventBridgeService_NotifyUser_PublishError(t *testing.T) {
	fx := createTestEventBridgeService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.registrationRepo.EXPECT().
		ExistsForUser(ctx, userID).
		Return(true, nil)

	fx.unreadCounter.EXPECT().
		UnreadCount(ctx, userID).
		Return(1, nil)

	fx.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Return(errors.New("broker unavailable"))

	err := fx.service.NotifyUser(ctx, userID, testPayload())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish dispatch event")
}
