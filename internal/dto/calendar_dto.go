package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCalendarRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

type UpdateCalendarRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required,min=1,max=120"`
}

type CalendarResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
