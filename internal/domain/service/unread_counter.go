package service

import (
	"context"

	"github.com/google/uuid"
)

// UnreadCounter reports a user's current unread notification count, used as
// the badge number on iOS pushes.
type UnreadCounter interface {
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
}
