package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Campaign struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_campaigns_commemorative_key,where:is_from_commemorative,priority:3"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	Objective   *string   `gorm:"type:text"`
	Description *string   `gorm:"type:text"`
	Offer       *string   `gorm:"type:text"`
	// Partial unique index closes the check-then-insert race on auto-created
	// campaigns: a concurrent duplicate insert fails instead of duplicating.
	OriginCommemorativeDate *time.Time     `gorm:"type:date;uniqueIndex:idx_campaigns_commemorative_key,where:is_from_commemorative,priority:2"`
	IsFromCommemorative     bool           `gorm:"default:false"`
	UserId                  uuid.UUID      `gorm:"type:uuid;not null;index"`
	CalendarId              uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_campaigns_commemorative_key,priority:1"`
	CreatedAt               time.Time      `gorm:"autoCreateTime"`
	UpdatedAt               time.Time      `gorm:"autoUpdateTime"`
	DeletedAt               gorm.DeletedAt `gorm:"index"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

type Phase struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CampaignId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name       string         `gorm:"type:varchar(255);not null"`
	StartDate  time.Time      `gorm:"type:date;not null"`
	EndDate    time.Time      `gorm:"type:date;not null"`
	SortOrder  int            `gorm:"default:0"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Phase) TableName() string {
	return "phases"
}

type Action struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PhaseId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Date        time.Time      `gorm:"type:date;not null"`
	Description *string        `gorm:"type:text"`
	Done        bool           `gorm:"default:false"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Action) TableName() string {
	return "actions"
}
