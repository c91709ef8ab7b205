package contract

import (
	"context"

	"marketing-calendar-be/internal/model"

	"github.com/google/uuid"
)

// NotificationRepository works directly on the model: notifications never
// cross a domain boundary, they are written by the consumer and read by the
// notification endpoints as-is.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindByUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id, userId uuid.UUID) error
	CountUnread(ctx context.Context, userId uuid.UUID) (int64, error)
}
