package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCampaignRequest struct {
	CalendarId  uuid.UUID `json:"calendar_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=160"`
	StartDate   string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string    `json:"end_date" validate:"required,datetime=2006-01-02"`
	Objective   string    `json:"objective"`
	Description string    `json:"description"`
	Offer       string    `json:"offer"`
}

type UpdateCampaignRequest struct {
	Id          uuid.UUID
	Name        string `json:"name" validate:"required,min=1,max=160"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Objective   string `json:"objective"`
	Description string `json:"description"`
	Offer       string `json:"offer"`
}

type CampaignResponse struct {
	Id                      uuid.UUID  `json:"id"`
	CalendarId              uuid.UUID  `json:"calendar_id"`
	Name                    string     `json:"name"`
	StartDate               string     `json:"start_date"`
	EndDate                 string     `json:"end_date"`
	Objective               string     `json:"objective,omitempty"`
	Description             string     `json:"description,omitempty"`
	Offer                   string     `json:"offer,omitempty"`
	IsFromCommemorative     bool       `json:"is_from_commemorative"`
	OriginCommemorativeDate string     `json:"origin_commemorative_date,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               *time.Time `json:"updated_at"`
}

type CampaignDetailResponse struct {
	CampaignResponse
	Phases []PhaseResponse `json:"phases"`
}

// CreateFromDatesItem is one suggested date the user accepted; it becomes a
// single-day campaign unless one with the same (date, name) key already
// exists in the calendar.
type CreateFromDatesItem struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Title       string `json:"title" validate:"required,min=1,max=160"`
	Description string `json:"description"`
}

type CreateFromDatesRequest struct {
	CalendarId uuid.UUID             `json:"calendar_id" validate:"required"`
	Items      []CreateFromDatesItem `json:"items" validate:"required,min=1,dive"`
}

type CreateFromDatesResult struct {
	Date   string     `json:"date"`
	Title  string     `json:"title"`
	Status string     `json:"status"` // "created" or "skipped"
	Id     *uuid.UUID `json:"id,omitempty"`
}

type CreateFromDatesResponse struct {
	Created int                     `json:"created"`
	Skipped int                     `json:"skipped"`
	Results []CreateFromDatesResult `json:"results"`
}
