package entity

import (
	"time"

	"github.com/google/uuid"
)

type Calendar struct {
	Id        uuid.UUID
	Name      string
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
