package implementation

import (
	"context"
	"errors"

	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/mapper"
	"marketing-calendar-be/internal/model"
	"marketing-calendar-be/internal/repository/contract"
	"marketing-calendar-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActionMapper
}

func NewActionRepository(db *gorm.DB) contract.ActionRepository {
	return &ActionRepositoryImpl{
		db:     db,
		mapper: mapper.NewActionMapper(),
	}
}

func (r *ActionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ActionRepositoryImpl) Create(ctx context.Context, action *entity.Action) error {
	m := r.mapper.ToModel(action)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*action = *r.mapper.ToEntity(m)
	return nil
}

func (r *ActionRepositoryImpl) Update(ctx context.Context, action *entity.Action) error {
	m := r.mapper.ToModel(action)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*action = *r.mapper.ToEntity(m)
	return nil
}

func (r *ActionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Action{}, id).Error
}

func (r *ActionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Action, error) {
	var m model.Action
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ActionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Action, error) {
	var models []*model.Action
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
