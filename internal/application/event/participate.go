package event

import (
	"context"

	"github.com/fireflysocial/events-service/internal/domain"
)

// Participate joins the actor to the event. The ended check, the
// duplicate check and the counter increment happen inside one
// repository transaction; see the postgres Join implementation.
func (s *Service) Participate(ctx context.Context, eventID, actorID string) error {
	now := s.clock.Now()
	p := domain.NewParticipant(eventID, actorID, now)

	if err := s.repo.Join(ctx, p, now); err != nil {
		return err
	}

	s.invalidate(ctx, eventID)
	s.publish(ctx, "participant.joined", map[string]any{
		"event_id": eventID,
		"user_id":  actorID,
	})
	return nil
}

func (s *Service) Leave(ctx context.Context, eventID, actorID string) error {
	if err := s.repo.Leave(ctx, eventID, actorID); err != nil {
		return err
	}

	s.invalidate(ctx, eventID)
	s.publish(ctx, "participant.left", map[string]any{
		"event_id": eventID,
		"user_id":  actorID,
	})
	return nil
}
