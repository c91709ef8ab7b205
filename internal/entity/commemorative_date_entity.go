package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommemorativeDate is one row of the centrally seeded date store. Tagged
// with up to three niche labels; read-only from the suggestion pipeline's
// perspective.
type CommemorativeDate struct {
	Id          uuid.UUID
	Date        time.Time
	Description string
	Type        string
	Niche1      string
	Niche2      string
	Niche3      string
	CreatedAt   time.Time
}

// NicheTags returns the non-empty niche labels.
func (d CommemorativeDate) NicheTags() []string {
	tags := make([]string, 0, 3)
	for _, tag := range []string{d.Niche1, d.Niche2, d.Niche3} {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
