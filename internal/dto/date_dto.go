package dto

import (
	"marketing-calendar-be/pkg/suggest"

	"github.com/google/uuid"
)

type CommemorativeDateResponse struct {
	Id          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Niches      []string  `json:"niches"`
}

type SuggestDatesRequest struct {
	Niches []string `json:"niches" validate:"required,min=1,dive,required"`
}

type SuggestDatesResponse struct {
	Dates []suggest.FormattedDate `json:"dates"`
}

// PrefetchSuggestionsMessage is the cache warm-up job published when a user
// saves their niches.
type PrefetchSuggestionsMessage struct {
	Niches []string `json:"niches"`
}
