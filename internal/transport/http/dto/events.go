package dto

import "time"

type CreateEventReq struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	BannerID    *string   `json:"bannerId,omitempty"`
	EndsAt      time.Time `json:"endsAt"`
}

// UpdateEventReq is a partial update; absent fields are untouched.
// Sending bannerId as "" clears the banner.
type UpdateEventReq struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	BannerID    *string    `json:"bannerId,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
}
