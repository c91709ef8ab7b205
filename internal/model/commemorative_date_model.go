package model

import (
	"time"

	"github.com/google/uuid"
)

type CommemorativeDate struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date        time.Time `gorm:"type:date;not null;index"`
	Description string    `gorm:"type:varchar(255);not null"`
	Type        string    `gorm:"type:varchar(50);not null;default:'commemorative'"`
	Niche1      string    `gorm:"type:varchar(100);index"`
	Niche2      string    `gorm:"type:varchar(100)"`
	Niche3      string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (CommemorativeDate) TableName() string {
	return "commemorative_dates"
}
