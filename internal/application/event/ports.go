package event

import (
	"context"
	"time"

	"github.com/fireflysocial/events-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error

	FindActive(ctx context.Context, limit int, sinceID, untilID string) ([]*domain.Event, error)
	FindEnded(ctx context.Context, limit int, sinceID, untilID string) ([]*domain.Event, error)

	IsParticipating(ctx context.Context, userID, eventID string) (bool, error)
	ListParticipants(ctx context.Context, eventID string, limit int, sinceID, untilID string) ([]*domain.Participant, error)

	Join(ctx context.Context, p *domain.Participant, now time.Time) error
	Leave(ctx context.Context, eventID, userID string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, routingKey string, payload any) error
}

// UserProfile is the public representation resolved from the user
// directory. It is embedded as-is in packed events.
type UserProfile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	IsAdmin   bool   `json:"-"`
}

// UserDirectory resolves user ids to public profiles. A missing
// (tombstoned) user is (nil, nil), not an error.
type UserDirectory interface {
	Get(ctx context.Context, userID string) (*UserProfile, error)
}

// StoredFile is what the drive subsystem knows about one file.
type StoredFile struct {
	ID      string
	OwnerID string
	URL     string
}

// FileStore resolves drive file ids. A missing file is (nil, nil).
type FileStore interface {
	Get(ctx context.Context, fileID string) (*StoredFile, error)
}
