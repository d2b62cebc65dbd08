package event

import (
	"context"

	"github.com/fireflysocial/events-service/internal/domain"
)

const (
	ListTypeActive = "active"
	ListTypeEnded  = "ended"
)

type ListQuery struct {
	Type    string
	Limit   int
	SinceID string
	UntilID string

	ViewerID string // empty for anonymous
}

func (q *ListQuery) Normalize() error {
	if q.Type == "" {
		q.Type = ListTypeActive
	}
	if q.Type != ListTypeActive && q.Type != ListTypeEnded {
		return domain.ErrInvalidType()
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	return nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]*PackedEvent, error) {
	if err := q.Normalize(); err != nil {
		return nil, err
	}

	var (
		items []*domain.Event
		err   error
	)
	switch q.Type {
	case ListTypeActive:
		items, err = s.repo.FindActive(ctx, q.Limit, q.SinceID, q.UntilID)
	case ListTypeEnded:
		items, err = s.repo.FindEnded(ctx, q.Limit, q.SinceID, q.UntilID)
	}
	if err != nil {
		return nil, err
	}

	return s.PackMany(ctx, items, q.ViewerID, false)
}
