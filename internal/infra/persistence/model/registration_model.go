package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationModel is the GORM-specific struct for the 'sns_registrations' table.
// It represents a device token registered against a platform application endpoint.
type RegistrationModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceToken     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	ApplicationName string    `gorm:"type:varchar(255);not null"`
	Platform        string    `gorm:"type:varchar(50);not null"`
	EndpointARN     string    `gorm:"type:varchar(2048);not null;index"`
	Status          string    `gorm:"type:varchar(50);not null;default:'enabled'"`
	StatusChangedAt time.Time `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegistrationModel) TableName() string {
	return "sns_registrations"
}
