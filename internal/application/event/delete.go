package event

import (
	"context"

	"github.com/fireflysocial/events-service/internal/domain"
)

func (s *Service) Delete(ctx context.Context, eventID, actorID, actorRole string) error {
	ev, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	if !canManage(actorID, actorRole, ev.OwnerID) {
		return domain.ErrAccessDenied()
	}

	if err := s.repo.Delete(ctx, ev.ID); err != nil {
		return err
	}

	s.invalidate(ctx, ev.ID)
	s.publish(ctx, "event.deleted", map[string]any{
		"event_id": ev.ID,
		"owner_id": ev.OwnerID,
	})
	return nil
}
