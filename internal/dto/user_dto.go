package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	BusinessName string    `json:"business_name,omitempty"`
	Niches       []string  `json:"niches"`
	CreatedAt    time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName     string `json:"full_name" validate:"required,min=3"`
	BusinessName string `json:"business_name"`
}

type UpdateNichesRequest struct {
	Niches []string `json:"niches" validate:"required,min=1,dive,required"`
}
