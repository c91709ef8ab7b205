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

type PhaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PhaseMapper
}

func NewPhaseRepository(db *gorm.DB) contract.PhaseRepository {
	return &PhaseRepositoryImpl{
		db:     db,
		mapper: mapper.NewPhaseMapper(),
	}
}

func (r *PhaseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PhaseRepositoryImpl) Create(ctx context.Context, phase *entity.Phase) error {
	m := r.mapper.ToModel(phase)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*phase = *r.mapper.ToEntity(m)
	return nil
}

func (r *PhaseRepositoryImpl) Update(ctx context.Context, phase *entity.Phase) error {
	m := r.mapper.ToModel(phase)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*phase = *r.mapper.ToEntity(m)
	return nil
}

func (r *PhaseRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Phase{}, id).Error
}

func (r *PhaseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Phase, error) {
	var m model.Phase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PhaseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Phase, error) {
	var models []*model.Phase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
