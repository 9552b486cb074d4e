// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"snsbridge/internal/domain/entity"
	domainerrors "snsbridge/internal/domain/errors"
	"snsbridge/internal/domain/repository"
	"snsbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// registrationRepository implements the repository.RegistrationRepository interface.
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository is the constructor for registrationRepository.
func NewRegistrationRepository(db *gorm.DB) repository.RegistrationRepository {
	return &registrationRepository{
		db: db,
	}
}

// FindByDeviceToken retrieves the registration holding the given device token.
// Device tokens are unique across users.
func (repo *registrationRepository) FindByDeviceToken(ctx context.Context, deviceToken string) (*entity.Registration, error) {
	var registrationM model.RegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("device_token = ?", deviceToken).
		First(&registrationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration by device token")
	}

	return toRegistrationDomain(&registrationM), nil
}

// FindEnabledByUser retrieves all enabled registrations for a specific user.
func (repo *registrationRepository) FindEnabledByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Registration, error) {
	var registrationModels []*model.RegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.StatusEnabled)).
		Order("created_at DESC").
		Find(&registrationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find enabled registrations by user")
	}

	registrations := make([]*entity.Registration, 0, len(registrationModels))
	for _, registrationM := range registrationModels {
		registrations = append(registrations, toRegistrationDomain(registrationM))
	}

	return registrations, nil
}

// ExistsForUser reports whether the user has any registration, enabled or not.
func (repo *registrationRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count registrations for user")
	}

	return count > 0, nil
}

// Create persists a new registration.
func (repo *registrationRepository) Create(ctx context.Context, registration *entity.Registration) error {
	registrationM := fromRegistrationDomain(registration)

	if err := repo.db.WithContext(ctx).Create(registrationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDeviceToken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create registration")
	}

	// Update the entity with generated values
	registration.ID = registrationM.ID
	registration.CreatedAt = registrationM.CreatedAt
	registration.UpdatedAt = registrationM.UpdatedAt

	return nil
}

// ReassignOwner moves a registration to a different user.
func (repo *registrationRepository) ReassignOwner(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("id = ?", id).
		Update("user_id", userID)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to reassign registration owner")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRegistrationNotFound
	}

	return nil
}

// UpdateStatus sets the registration status and records when it changed.
func (repo *registrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RegistrationStatus, changedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":            string(status),
			"status_changed_at": changedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update registration status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRegistrationNotFound
	}

	return nil
}

// Delete removes a registration permanently.
func (repo *registrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RegistrationModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete registration")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRegistrationNotFound
	}

	return nil
}

// DisableByEndpointARN disables every registration bound to the endpoint.
// Missing rows are not an error: the broker may report an endpoint the
// bridge already cleaned up.
func (repo *registrationRepository) DisableByEndpointARN(ctx context.Context, endpointARN string, changedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("endpoint_arn = ?", endpointARN).
		Updates(map[string]any{
			"status":            string(entity.StatusDisabled),
			"status_changed_at": changedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to disable registrations by endpoint")
	}

	return nil
}

// DeleteByEndpointARN removes every registration bound to the endpoint.
func (repo *registrationRepository) DeleteByEndpointARN(ctx context.Context, endpointARN string) error {
	result := repo.db.WithContext(ctx).
		Where("endpoint_arn = ?", endpointARN).
		Delete(&model.RegistrationModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete registrations by endpoint")
	}

	return nil
}

// toRegistrationDomain converts the GORM model to the domain entity.
func toRegistrationDomain(registrationM *model.RegistrationModel) *entity.Registration {
	return &entity.Registration{
		ID:              registrationM.ID,
		UserID:          registrationM.UserID,
		DeviceToken:     registrationM.DeviceToken,
		ApplicationName: registrationM.ApplicationName,
		Platform:        entity.Platform(registrationM.Platform),
		EndpointARN:     registrationM.EndpointARN,
		Status:          entity.RegistrationStatus(registrationM.Status),
		StatusChangedAt: registrationM.StatusChangedAt,
		CreatedAt:       registrationM.CreatedAt,
		UpdatedAt:       registrationM.UpdatedAt,
	}
}

// fromRegistrationDomain converts the domain entity to the GORM model.
func fromRegistrationDomain(registration *entity.Registration) *model.RegistrationModel {
	return &model.RegistrationModel{
		ID:              registration.ID,
		UserID:          registration.UserID,
		DeviceToken:     registration.DeviceToken,
		ApplicationName: registration.ApplicationName,
		Platform:        string(registration.Platform),
		EndpointARN:     registration.EndpointARN,
		Status:          string(registration.Status),
		StatusChangedAt: registration.StatusChangedAt,
		CreatedAt:       registration.CreatedAt,
		UpdatedAt:       registration.UpdatedAt,
	}
}
