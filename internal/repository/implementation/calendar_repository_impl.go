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

type CalendarRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CalendarMapper
}

func NewCalendarRepository(db *gorm.DB) contract.CalendarRepository {
	return &CalendarRepositoryImpl{
		db:     db,
		mapper: mapper.NewCalendarMapper(),
	}
}

func (r *CalendarRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CalendarRepositoryImpl) Create(ctx context.Context, calendar *entity.Calendar) error {
	m := r.mapper.ToModel(calendar)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*calendar = *r.mapper.ToEntity(m)
	return nil
}

func (r *CalendarRepositoryImpl) Update(ctx context.Context, calendar *entity.Calendar) error {
	m := r.mapper.ToModel(calendar)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*calendar = *r.mapper.ToEntity(m)
	return nil
}

func (r *CalendarRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Calendar{}, id).Error
}

func (r *CalendarRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Calendar, error) {
	var m model.Calendar
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CalendarRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Calendar, error) {
	var models []*model.Calendar
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CalendarRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Calendar{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
