package domain

import (
	"strings"
	"time"
)

const (
	TitleMaxLen       = 128
	DescriptionMaxLen = 4096
)

type Event struct {
	ID        string
	CreatedAt time.Time

	OwnerID     string
	Title       string
	Description string

	// BannerID references a drive file; nil means no banner.
	BannerID *string

	EndsAt time.Time

	// ParticipantsCount mirrors the number of Participant rows for this
	// event. Maintained inside the same transaction as every join/leave.
	ParticipantsCount int
}

func NewEvent(ownerID, title, description string, bannerID *string, endsAt, now time.Time) (*Event, error) {
	ownerID = strings.TrimSpace(ownerID)
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if ownerID == "" {
		return nil, ErrValidation("INVALID_PARAM", "owner id is required")
	}
	if title == "" || len(title) > TitleMaxLen {
		return nil, ErrValidation("INVALID_PARAM", "title is required and must be <= 128 chars")
	}
	if description == "" || len(description) > DescriptionMaxLen {
		return nil, ErrValidation("INVALID_PARAM", "description is required and must be <= 4096 chars")
	}
	if endsAt.IsZero() || !endsAt.After(now) {
		return nil, ErrEndsAtNotInFuture()
	}

	return &Event{
		ID:                NewID(),
		CreatedAt:         now.UTC(),
		OwnerID:           ownerID,
		Title:             title,
		Description:       description,
		BannerID:          bannerID,
		EndsAt:            endsAt.UTC(),
		ParticipantsCount: 0,
	}, nil
}

// IsEnded derives the active/ended state from the clock. It is never stored.
func (e *Event) IsEnded(now time.Time) bool {
	return !e.EndsAt.After(now) // ends_at <= now => ended
}

// EventPatch is a partial update. Nil fields are left untouched.
// An empty-string BannerID clears the banner.
type EventPatch struct {
	Title       *string
	Description *string
	EndsAt      *time.Time
	BannerID    *string
}

func (p EventPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.EndsAt == nil && p.BannerID == nil
}

func (e *Event) ApplyUpdate(p EventPatch, now time.Time) error {
	if p.Title != nil {
		v := strings.TrimSpace(*p.Title)
		if v == "" || len(v) > TitleMaxLen {
			return ErrValidation("INVALID_PARAM", "title must be non-empty and <= 128 chars")
		}
		e.Title = v
	}
	if p.Description != nil {
		v := strings.TrimSpace(*p.Description)
		if v == "" || len(v) > DescriptionMaxLen {
			return ErrValidation("INVALID_PARAM", "description must be non-empty and <= 4096 chars")
		}
		e.Description = v
	}
	if p.EndsAt != nil {
		if !p.EndsAt.After(now) {
			return ErrEndsAtNotInFuture()
		}
		e.EndsAt = p.EndsAt.UTC()
	}
	if p.BannerID != nil {
		if *p.BannerID == "" {
			e.BannerID = nil
		} else {
			id := *p.BannerID
			e.BannerID = &id
		}
	}
	return nil
}
