package contract

import (
	"context"

	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	Update(ctx context.Context, campaign *entity.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Campaign, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Campaign, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type PhaseRepository interface {
	Create(ctx context.Context, phase *entity.Phase) error
	Update(ctx context.Context, phase *entity.Phase) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Phase, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Phase, error)
}

type ActionRepository interface {
	Create(ctx context.Context, action *entity.Action) error
	Update(ctx context.Context, action *entity.Action) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Action, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Action, error)
}
