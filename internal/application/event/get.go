package event

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/fireflysocial/events-service/internal/domain"
)

// Show returns the detailed pack. viewerID may be empty for anonymous
// callers. The stored event is cached; viewer-relative enrichment is
// always computed per request.
func (s *Service) Show(ctx context.Context, id, viewerID string) (*PackedEvent, error) {
	e, err := s.getCached(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Pack(ctx, e, viewerID, true)
}

func (s *Service) getCached(ctx context.Context, id string) (*domain.Event, error) {
	key := cacheKeyEventDetails(id)

	if s.cache != nil {
		var cached domain.Event
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if found {
			return &cached, nil
		}
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, e, s.ttlDetails); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return e, nil
}
