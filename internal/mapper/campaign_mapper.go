package mapper

import (
	"time"

	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/model"

	"gorm.io/gorm"
)

type CampaignMapper struct{}

func NewCampaignMapper() *CampaignMapper {
	return &CampaignMapper{}
}

func (m *CampaignMapper) ToEntity(c *model.Campaign) *entity.Campaign {
	if c == nil {
		return nil
	}

	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Campaign{
		Id:                      c.Id,
		Name:                    c.Name,
		StartDate:               c.StartDate,
		EndDate:                 c.EndDate,
		Objective:               c.Objective,
		Description:             c.Description,
		Offer:                   c.Offer,
		OriginCommemorativeDate: c.OriginCommemorativeDate,
		IsFromCommemorative:     c.IsFromCommemorative,
		UserId:                  c.UserId,
		CalendarId:              c.CalendarId,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               updatedAt,
		DeletedAt:               deletedAt,
		IsDeleted:               c.DeletedAt.Valid,
	}
}

func (m *CampaignMapper) ToModel(c *entity.Campaign) *model.Campaign {
	if c == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	} else if c.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Campaign{
		Id:                      c.Id,
		Name:                    c.Name,
		StartDate:               c.StartDate,
		EndDate:                 c.EndDate,
		Objective:               c.Objective,
		Description:             c.Description,
		Offer:                   c.Offer,
		OriginCommemorativeDate: c.OriginCommemorativeDate,
		IsFromCommemorative:     c.IsFromCommemorative,
		UserId:                  c.UserId,
		CalendarId:              c.CalendarId,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               updatedAt,
		DeletedAt:               deletedAt,
	}
}

func (m *CampaignMapper) ToEntities(campaigns []*model.Campaign) []*entity.Campaign {
	entities := make([]*entity.Campaign, len(campaigns))
	for i, c := range campaigns {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type PhaseMapper struct{}

func NewPhaseMapper() *PhaseMapper {
	return &PhaseMapper{}
}

func (m *PhaseMapper) ToEntity(p *model.Phase) *entity.Phase {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Phase{
		Id:         p.Id,
		CampaignId: p.CampaignId,
		Name:       p.Name,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		SortOrder:  p.SortOrder,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *PhaseMapper) ToModel(p *entity.Phase) *model.Phase {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Phase{
		Id:         p.Id,
		CampaignId: p.CampaignId,
		Name:       p.Name,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		SortOrder:  p.SortOrder,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *PhaseMapper) ToEntities(phases []*model.Phase) []*entity.Phase {
	entities := make([]*entity.Phase, len(phases))
	for i, p := range phases {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

type ActionMapper struct{}

func NewActionMapper() *ActionMapper {
	return &ActionMapper{}
}

func (m *ActionMapper) ToEntity(a *model.Action) *entity.Action {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Action{
		Id:          a.Id,
		PhaseId:     a.PhaseId,
		Name:        a.Name,
		Date:        a.Date,
		Description: a.Description,
		Done:        a.Done,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ActionMapper) ToModel(a *entity.Action) *model.Action {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Action{
		Id:          a.Id,
		PhaseId:     a.PhaseId,
		Name:        a.Name,
		Date:        a.Date,
		Description: a.Description,
		Done:        a.Done,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ActionMapper) ToEntities(actions []*model.Action) []*entity.Action {
	entities := make([]*entity.Action, len(actions))
	for i, a := range actions {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
