package domain

import "github.com/google/uuid"

// NewID returns a UUIDv7: time-ordered, so the string form sorts by
// creation time and since_id/until_id cursor bounds are plain id
// comparisons.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// entropy exhaustion only; a random id keeps the request alive
		return uuid.NewString()
	}
	return id.String()
}
