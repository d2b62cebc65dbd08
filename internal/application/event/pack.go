package event

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fireflysocial/events-service/internal/domain"
)

// participantPreviewLimit caps the embedded participant list in a
// detailed pack.
const participantPreviewLimit = 10

// PackedEvent is the public API representation of an event.
type PackedEvent struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	EndsAt      time.Time `json:"endsAt"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      string    `json:"userId"`

	BannerID  *string `json:"bannerId"`
	BannerURL *string `json:"bannerUrl"`

	ParticipantsCount int  `json:"participantsCount"`
	IsParticipating   bool `json:"isParticipating"`
	IsEnded           bool `json:"isEnded"`

	// detailed only
	User         *UserProfile   `json:"user,omitempty"`
	Participants []*UserProfile `json:"participants,omitempty"`
}

// Pack maps a stored event plus viewer context into the API shape.
// viewerID may be empty; detailed additionally embeds the owner profile
// and a capped participant preview, skipping tombstoned users.
func (s *Service) Pack(ctx context.Context, e *domain.Event, viewerID string, detailed bool) (*PackedEvent, error) {
	packed := &PackedEvent{
		ID:                e.ID,
		CreatedAt:         e.CreatedAt,
		EndsAt:            e.EndsAt,
		Title:             e.Title,
		Description:       e.Description,
		UserID:            e.OwnerID,
		BannerID:          e.BannerID,
		ParticipantsCount: e.ParticipantsCount,
		IsEnded:           e.IsEnded(s.clock.Now()),
	}

	if e.BannerID != nil {
		f, err := s.files.Get(ctx, *e.BannerID)
		if err != nil {
			return nil, err
		}
		if f != nil {
			url := f.URL
			packed.BannerURL = &url
		}
	}

	if viewerID != "" {
		participating, err := s.repo.IsParticipating(ctx, viewerID, e.ID)
		if err != nil {
			return nil, err
		}
		packed.IsParticipating = participating
	}

	if detailed {
		owner, err := s.dir.Get(ctx, e.OwnerID)
		if err != nil {
			return nil, err
		}
		packed.User = owner

		participants, err := s.repo.ListParticipants(ctx, e.ID, participantPreviewLimit, "", "")
		if err != nil {
			return nil, err
		}
		for _, p := range participants {
			u, err := s.dir.Get(ctx, p.UserID)
			if err != nil {
				return nil, err
			}
			if u == nil {
				// tombstoned user, skip silently
				continue
			}
			packed.Participants = append(packed.Participants, u)
		}
	}

	return packed, nil
}

// PackMany packs all events concurrently; output order matches input
// order.
func (s *Service) PackMany(ctx context.Context, events []*domain.Event, viewerID string, detailed bool) ([]*PackedEvent, error) {
	out := make([]*PackedEvent, len(events))

	g, gctx := errgroup.WithContext(ctx)
	for i, e := range events {
		i, e := i, e
		g.Go(func() error {
			p, err := s.Pack(gctx, e, viewerID, detailed)
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
