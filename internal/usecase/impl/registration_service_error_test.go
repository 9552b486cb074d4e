package impl

import (
	"context"
	"testing"

	"snsbridge/internal/domain/entity"
	domainerrors "snsbridge/internal/domain/errors"
	"snsbridge/internal/domain/repository"
	"snsbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegistrationService_Register_InvalidPlatform(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()

	registration, err := fx.service.Register(ctx, uuid.New(), &usecase.RegistrationInfo{
		Token:           "123123123123",
		ApplicationName: "discourse",
		Platform:        "windows",
	})
	assert.Error(t, err)
	assert.Nil(t, registration)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPlatform)
}

func TestRegistrationService_Register_FindError(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()

	fx.registrationRepo.EXPECT().
		FindByDeviceToken(ctx, "123123123123").
		Return(nil, errors.New("database error"))

	registration, err := fx.service.Register(ctx, uuid.New(), &usecase.RegistrationInfo{
		Token:           "123123123123",
		ApplicationName: "discourse",
		Platform:        "ios",
	})
	assert.Error(t, err)
	assert.Nil(t, registration)
	assert.Contains(t, err.Error(), "failed to find registration by device token")
}

func TestRegistrationService_Register_EndpointCreationError(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()

	fx.registrationRepo.EXPECT().
		FindByDeviceToken(ctx, "123123123123").
		Return(nil, repository.ErrRegistrationNotFound)

	fx.broker.EXPECT().
		CreateEndpoint(ctx, "123123123123", entity.PlatformIOS).
		Return("", errors.New("broker unavailable"))

	registration, err := fx.service.Register(ctx, uuid.New(), &usecase.RegistrationInfo{
		Token:           "123123123123",
		ApplicationName: "discourse",
		Platform:        "ios",
	})
	assert.Error(t, err)
	assert.Nil(t, registration)
	assert.ErrorIs(t, err, domainerrors.ErrEndpointCreationFailed)
}

func TestRegistrationService_Register_EmptyEndpointARN(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()

	fx.registrationRepo.EXPECT().
		FindByDeviceToken(ctx, "123123123123").
		Return(nil, repository.ErrRegistrationNotFound)

	fx.broker.EXPECT().
		CreateEndpoint(ctx, "123123123123", entity.PlatformAndroid).
		Return("", nil)

	registration, err := fx.service.Register(ctx, uuid.New(), &usecase.RegistrationInfo{
		Token:           "123123123123",
		ApplicationName: "discourse",
		Platform:        "android",
	})
	assert.Error(t, err)
	assert.Nil(t, registration)
	assert.ErrorIs(t, err, domainerrors.ErrEndpointCreationFailed)
}

func TestRegistrationService_Register_DuplicateDeviceToken(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()

	fx.registrationRepo.EXPECT().
		FindByDeviceToken(ctx, "123123123123").
		Return(nil, repository.ErrRegistrationNotFound)

	fx.broker.EXPECT().
		CreateEndpoint(ctx, "123123123123", entity.PlatformIOS).
		Return("fresh:arn", nil)

	fx.registrationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Registration")).
		Return(repository.ErrDuplicateDeviceToken)

	registration, err := fx.service.Register(ctx, uuid.New(), &usecase.RegistrationInfo{
		Token:           "123123123123",
		ApplicationName: "discourse",
		Platform:        "ios",
	})
	assert.Error(t, err)
	assert.Nil(t, registration)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceTokenConflict)
}

func TestRegistrationService_Register_CreateError(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()

	fx.registrationRepo.EXPECT().
		FindByDeviceToken(ctx, "123123123123").
		Return(nil, repository.ErrRegistrationNotFound)

	fx.broker.EXPECT().
		CreateEndpoint(ctx, "123123123123", entity.PlatformIOS).
		Return("fresh:arn", nil)

	fx.registrationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Registration")).
		Return(errors.New("database error"))

	registration, err := fx.service.Register(ctx, uuid.New(), &usecase.RegistrationInfo{
		Token:           "123123123123",
		ApplicationName: "discourse",
		Platform:        "ios",
	})
	assert.Error(t, err)
	assert.Nil(t, registration)
	assert.Contains(t, err.Error(), "failed to create registration")
}

func TestRegistrationService_Register_StaleDeleteError(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Registration{
		ID:          uuid.New(),
		UserID:      userID,
		DeviceToken: "123123123123",
		Platform:    entity.PlatformIOS,
		EndpointARN: "stale:arn",
		Status:      entity.StatusEnabled,
	}

	fx.registrationRepo.EXPECT().
		FindByDeviceToken(ctx, "123123123123").
		Return(existing, nil)

	fx.broker.EXPECT().
		GetEndpointAttributes(ctx, "stale:arn").
		Return(nil, errors.New("broker unavailable"))

	fx.broker.EXPECT().
		DeleteEndpoint(ctx, "stale:arn").
		Return(nil)

	fx.registrationRepo.EXPECT().
		Delete(ctx, existing.ID).
		Return(errors.New("database error"))

	registration, err := fx.service.Register(ctx, userID, &usecase.RegistrationInfo{
		Token:           "123123123123",
		ApplicationName: "discourse",
		Platform:        "ios",
	})
	assert.Error(t, err)
	assert.Nil(t, registration)
	assert.Contains(t, err.Error(), "failed to delete stale registration")
}

func TestRegistrationService_Register_ReassignOwnerError(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	newOwner := uuid.New()
	existing := &entity.Registration{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		DeviceToken: "123123123123",
		Platform:    entity.PlatformIOS,
		EndpointARN: "sample:arn",
		Status:      entity.StatusEnabled,
	}

	fx.registrationRepo.EXPECT().
		FindByDeviceToken(ctx, "123123123123").
		Return(existing, nil)

	fx.broker.EXPECT().
		GetEndpointAttributes(ctx, "sample:arn").
		Return(enabledAttributes(), nil)

	fx.registrationRepo.EXPECT().
		ReassignOwner(ctx, existing.ID, newOwner).
		Return(errors.New("database error"))

	registration, err := fx.service.Register(ctx, newOwner, &usecase.RegistrationInfo{
		Token:           "123123123123",
		ApplicationName: "discourse",
		Platform:        "ios",
	})
	assert.Error(t, err)
	assert.Nil(t, registration)
	assert.Contains(t, err.Error(), "failed to reassign registration owner")
}

func TestRegistrationService_Disable_UpdateError(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	existing := &entity.Registration{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		DeviceToken: "123123123123",
		Platform:    entity.PlatformIOS,
		EndpointARN: "sample:arn",
		Status:      entity.StatusEnabled,
	}

	fx.registrationRepo.EXPECT().
		FindByDeviceToken(ctx, "123123123123").
		Return(existing, nil)

	fx.registrationRepo.EXPECT().
		UpdateStatus(ctx, existing.ID, entity.StatusDisabled, mock.AnythingOfType("time.Time")).
		Return(errors.New("database error"))

	registration, err := fx.service.Disable(ctx, "123123123123")
	assert.Error(t, err)
	assert.Nil(t, registration)
	assert.Contains(t, err.Error(), "failed to disable registration")
}
