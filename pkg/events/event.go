package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CAMPAIGN_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes used across the campaign domain.
const (
	TypeCampaignCreated     = "CAMPAIGN_CREATED"
	TypeCampaignBulkCreated = "CAMPAIGN_BULK_CREATED"
	TypeUserRegistered      = "USER_REGISTERED"
)

// NewCampaignCreated builds the event published for every campaign row the
// auto-creator inserts.
func NewCampaignCreated(campaignID, calendarID, userID, name string, fromCommemorative bool) Event {
	return BaseEvent{
		Type: TypeCampaignCreated,
		Data: map[string]interface{}{
			"campaign_id":           campaignID,
			"calendar_id":           calendarID,
			"user_id":               userID,
			"name":                  name,
			"is_from_commemorative": fromCommemorative,
		},
		OccurredAt: time.Now(),
	}
}

// NewCampaignBulkCreated summarizes one auto-creation batch.
func NewCampaignBulkCreated(calendarID, userID string, created, skipped int) Event {
	return BaseEvent{
		Type: TypeCampaignBulkCreated,
		Data: map[string]interface{}{
			"calendar_id": calendarID,
			"user_id":     userID,
			"created":     created,
			"skipped":     skipped,
		},
		OccurredAt: time.Now(),
	}
}
