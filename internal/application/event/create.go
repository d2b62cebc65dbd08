package event

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/fireflysocial/events-service/internal/domain"
)

type CreateCmd struct {
	ActorID string

	Title       string
	Description string
	BannerID    *string
	EndsAt      time.Time
}

func (s *Service) Create(ctx context.Context, cmd CreateCmd) (*PackedEvent, error) {
	bannerID, err := s.resolveBanner(ctx, cmd.BannerID, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	e, err := domain.NewEvent(cmd.ActorID, cmd.Title, cmd.Description, bannerID, cmd.EndsAt, now)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	s.publish(ctx, "event.created", map[string]any{
		"event_id": e.ID,
		"owner_id": e.OwnerID,
		"ends_at":  e.EndsAt,
	})

	return s.Pack(ctx, e, cmd.ActorID, false)
}

// resolveBanner checks that the referenced drive file exists and belongs
// to the actor. Returns the validated id, or nil when no banner was
// supplied.
func (s *Service) resolveBanner(ctx context.Context, bannerID *string, actorID string) (*string, error) {
	if bannerID == nil || *bannerID == "" {
		return nil, nil
	}
	f, err := s.files.Get(ctx, *bannerID)
	if err != nil {
		return nil, err
	}
	if f == nil || f.OwnerID != actorID {
		return nil, domain.ErrNoSuchFile()
	}
	id := f.ID
	return &id, nil
}

// publish is best-effort: a broker outage must not fail the request.
func (s *Service) publish(ctx context.Context, routingKey string, payload any) {
	if err := s.pub.PublishEvent(ctx, routingKey, payload); err != nil {
		zlog.Warn().Err(err).Str("routing_key", routingKey).Msg("publish failed")
	}
}

func (s *Service) invalidate(ctx context.Context, eventID string) {
	if s.cache == nil {
		return
	}
	key := cacheKeyEventDetails(eventID)
	if err := s.cache.Delete(ctx, key); err != nil {
		zlog.Warn().Err(err).Str("key", key).Msg("cache invalidate failed")
	}
}
