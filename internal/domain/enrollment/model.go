package enrollment

import "time"

// EventType represents the kind of roster change
type EventType string

const (
	TypeSignedUp     EventType = "signed_up"
	TypeUnregistered EventType = "unregistered"
)

// Event represents one successful roster change in the enrollment journal
type Event struct {
	ID        string    `json:"id"`
	Activity  string    `json:"activity"`
	Email     string    `json:"email"`
	Type      EventType `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
