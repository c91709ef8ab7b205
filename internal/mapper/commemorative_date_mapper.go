package mapper

import (
	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/model"
)

type CommemorativeDateMapper struct{}

func NewCommemorativeDateMapper() *CommemorativeDateMapper {
	return &CommemorativeDateMapper{}
}

func (m *CommemorativeDateMapper) ToEntity(d *model.CommemorativeDate) *entity.CommemorativeDate {
	if d == nil {
		return nil
	}

	return &entity.CommemorativeDate{
		Id:          d.Id,
		Date:        d.Date,
		Description: d.Description,
		Type:        d.Type,
		Niche1:      d.Niche1,
		Niche2:      d.Niche2,
		Niche3:      d.Niche3,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *CommemorativeDateMapper) ToModel(d *entity.CommemorativeDate) *model.CommemorativeDate {
	if d == nil {
		return nil
	}

	return &model.CommemorativeDate{
		Id:          d.Id,
		Date:        d.Date,
		Description: d.Description,
		Type:        d.Type,
		Niche1:      d.Niche1,
		Niche2:      d.Niche2,
		Niche3:      d.Niche3,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *CommemorativeDateMapper) ToEntities(dates []*model.CommemorativeDate) []*entity.CommemorativeDate {
	entities := make([]*entity.CommemorativeDate, len(dates))
	for i, d := range dates {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
