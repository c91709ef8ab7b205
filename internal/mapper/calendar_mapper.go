package mapper

import (
	"time"

	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/model"
)

type CalendarMapper struct{}

func NewCalendarMapper() *CalendarMapper {
	return &CalendarMapper{}
}

func (m *CalendarMapper) ToEntity(c *model.Calendar) *entity.Calendar {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Calendar{
		Id:        c.Id,
		Name:      c.Name,
		UserId:    c.UserId,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *CalendarMapper) ToModel(c *entity.Calendar) *model.Calendar {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Calendar{
		Id:        c.Id,
		Name:      c.Name,
		UserId:    c.UserId,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *CalendarMapper) ToEntities(calendars []*model.Calendar) []*entity.Calendar {
	entities := make([]*entity.Calendar, len(calendars))
	for i, c := range calendars {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
