package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel maps the host application's 'notifications' table. The
// bridge only reads it to compute the unread badge count, it never writes.
type NotificationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Read         bool      `gorm:"not null;default:false"`
	HighPriority bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
