package domain

import "time"

// Participant links a user to an event. At most one row per
// (event_id, user_id) pair; enforced by a unique index.
type Participant struct {
	ID        string
	CreatedAt time.Time
	EventID   string
	UserID    string
}

func NewParticipant(eventID, userID string, now time.Time) *Participant {
	return &Participant{
		ID:        NewID(),
		CreatedAt: now.UTC(),
		EventID:   eventID,
		UserID:    userID,
	}
}
