package contract

import (
	"context"

	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/repository/specification"
)

// CommemorativeDateRepository reads the seeded date store. The pipeline only
// reads; Create exists for the seeder.
type CommemorativeDateRepository interface {
	Create(ctx context.Context, date *entity.CommemorativeDate) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CommemorativeDate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CommemorativeDate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
