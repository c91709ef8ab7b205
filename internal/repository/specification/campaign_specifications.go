package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCalendarID struct {
	CalendarID uuid.UUID
}

func (s ByCalendarID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("calendar_id = ?", s.CalendarID)
}

type ByCampaignID struct {
	CampaignID uuid.UUID
}

func (s ByCampaignID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("campaign_id = ?", s.CampaignID)
}

type ByPhaseID struct {
	PhaseID uuid.UUID
}

func (s ByPhaseID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("phase_id = ?", s.PhaseID)
}

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// ByOriginDate matches the commemorative date a campaign was seeded from.
type ByOriginDate struct {
	Date time.Time
}

func (s ByOriginDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("origin_commemorative_date = ?", s.Date.Format("2006-01-02"))
}

// FromCommemorative narrows to auto-created campaigns.
type FromCommemorative struct{}

func (s FromCommemorative) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_from_commemorative = ?", true)
}

// DateRangeOverlap keeps campaigns whose [start_date, end_date] intersects
// the given window. Used by the calendar views and exporters.
type DateRangeOverlap struct {
	From time.Time
	To   time.Time
}

func (s DateRangeOverlap) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_date <= ? AND end_date >= ?",
		s.To.Format("2006-01-02"), s.From.Format("2006-01-02"))
}
