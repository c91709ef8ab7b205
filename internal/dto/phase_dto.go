package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePhaseRequest struct {
	CampaignId uuid.UUID `json:"campaign_id" validate:"required"`
	Name       string    `json:"name" validate:"required,min=1,max=160"`
	StartDate  string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string    `json:"end_date" validate:"required,datetime=2006-01-02"`
	SortOrder  int       `json:"sort_order"`
}

type UpdatePhaseRequest struct {
	Id        uuid.UUID
	Name      string `json:"name" validate:"required,min=1,max=160"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	SortOrder int    `json:"sort_order"`
}

type PhaseResponse struct {
	Id         uuid.UUID        `json:"id"`
	CampaignId uuid.UUID        `json:"campaign_id"`
	Name       string           `json:"name"`
	StartDate  string           `json:"start_date"`
	EndDate    string           `json:"end_date"`
	SortOrder  int              `json:"sort_order"`
	Actions    []ActionResponse `json:"actions,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  *time.Time       `json:"updated_at"`
}

type CreateActionRequest struct {
	PhaseId     uuid.UUID `json:"phase_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=160"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	Description string    `json:"description"`
}

type UpdateActionRequest struct {
	Id          uuid.UUID
	Name        string `json:"name" validate:"required,min=1,max=160"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

type ActionResponse struct {
	Id          uuid.UUID  `json:"id"`
	PhaseId     uuid.UUID  `json:"phase_id"`
	Name        string     `json:"name"`
	Date        string     `json:"date"`
	Description string     `json:"description,omitempty"`
	Done        bool       `json:"done"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
