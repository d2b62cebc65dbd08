package event

import (
	"context"

	"github.com/fireflysocial/events-service/internal/domain"
)

type UpdateCmd struct {
	ActorID   string
	ActorRole string
	EventID   string

	Patch domain.EventPatch
}

func (s *Service) Update(ctx context.Context, cmd UpdateCmd) (*PackedEvent, error) {
	ev, err := s.repo.GetByID(ctx, cmd.EventID)
	if err != nil {
		return nil, err
	}

	if !canManage(cmd.ActorID, cmd.ActorRole, ev.OwnerID) {
		return nil, domain.ErrAccessDenied()
	}

	if cmd.Patch.BannerID != nil && *cmd.Patch.BannerID != "" {
		if _, err := s.resolveBanner(ctx, cmd.Patch.BannerID, cmd.ActorID); err != nil {
			return nil, err
		}
	}

	if err := ev.ApplyUpdate(cmd.Patch, s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, err
	}

	s.invalidate(ctx, ev.ID)
	s.publish(ctx, "event.updated", map[string]any{"event_id": ev.ID})

	// re-read so the pack reflects exactly what was persisted
	fresh, err := s.repo.GetByID(ctx, ev.ID)
	if err != nil {
		return nil, err
	}
	return s.Pack(ctx, fresh, cmd.ActorID, false)
}
