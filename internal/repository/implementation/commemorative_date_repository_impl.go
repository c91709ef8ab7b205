package implementation

import (
	"context"
	"errors"

	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/mapper"
	"marketing-calendar-be/internal/model"
	"marketing-calendar-be/internal/repository/contract"
	"marketing-calendar-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CommemorativeDateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommemorativeDateMapper
}

func NewCommemorativeDateRepository(db *gorm.DB) contract.CommemorativeDateRepository {
	return &CommemorativeDateRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommemorativeDateMapper(),
	}
}

func (r *CommemorativeDateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CommemorativeDateRepositoryImpl) Create(ctx context.Context, date *entity.CommemorativeDate) error {
	m := r.mapper.ToModel(date)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*date = *r.mapper.ToEntity(m)
	return nil
}

func (r *CommemorativeDateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CommemorativeDate, error) {
	var m model.CommemorativeDate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CommemorativeDateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CommemorativeDate, error) {
	var models []*model.CommemorativeDate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CommemorativeDateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CommemorativeDate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
