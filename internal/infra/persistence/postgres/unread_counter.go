package postgres

import (
	"context"

	"snsbridge/internal/domain/service"
	"snsbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// unreadCounter implements the service.UnreadCounter interface against the
// host application's notifications table.
type unreadCounter struct {
	db *gorm.DB
}

// NewUnreadCounter is the constructor for unreadCounter.
func NewUnreadCounter(db *gorm.DB) service.UnreadCounter {
	return &unreadCounter{
		db: db,
	}
}

// UnreadCount returns the user's unread notification count, used as the push
// badge number.
func (repo *unreadCounter) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return int(count), nil
}
