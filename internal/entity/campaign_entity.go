package entity

import (
	"time"

	"github.com/google/uuid"
)

type Campaign struct {
	Id          uuid.UUID
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	Objective   *string
	Description *string
	Offer       *string
	// OriginCommemorativeDate is set when the campaign was auto-created from
	// a commemorative date; together with Name it forms the uniqueness key.
	OriginCommemorativeDate *time.Time
	IsFromCommemorative     bool
	UserId                  uuid.UUID
	CalendarId              uuid.UUID
	CreatedAt               time.Time
	UpdatedAt               *time.Time
	DeletedAt               *time.Time
	IsDeleted               bool
}

type Phase struct {
	Id         uuid.UUID
	CampaignId uuid.UUID
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	SortOrder  int
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

type Action struct {
	Id          uuid.UUID
	PhaseId     uuid.UUID
	Name        string
	Date        time.Time
	Description *string
	Done        bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
