package contract

import (
	"context"

	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CalendarRepository interface {
	Create(ctx context.Context, calendar *entity.Calendar) error
	Update(ctx context.Context, calendar *entity.Calendar) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Calendar, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Calendar, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
