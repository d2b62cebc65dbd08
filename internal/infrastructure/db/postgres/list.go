package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/fireflysocial/events-service/internal/domain"
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > 100 {
		return 100
	}
	return limit
}

// cursorWhere appends the exclusive since_id/until_id bounds. Ids are
// UUIDv7, so string order is creation order.
func cursorWhere(where []string, args []any, argN int, sinceID, untilID string) ([]string, []any, int) {
	if sinceID != "" {
		where = append(where, fmt.Sprintf("id > $%d", argN))
		args = append(args, sinceID)
		argN++
	}
	if untilID != "" {
		where = append(where, fmt.Sprintf("id < $%d", argN))
		args = append(args, untilID)
		argN++
	}
	return where, args, argN
}

// FindActive returns events whose end boundary is strictly after the
// database clock, newest first. "Active" is evaluated at query time,
// never cached, so an event flips to ended without any background job.
func (r *Repo) FindActive(ctx context.Context, limit int, sinceID, untilID string) ([]*domain.Event, error) {
	where := []string{"ends_at > NOW()"}
	args := []any{}
	where, args, argN := cursorWhere(where, args, 1, sinceID, untilID)

	q := `
SELECT id, created_at, owner_id, title, description, banner_id, ends_at, participants_count
FROM event
WHERE ` + strings.Join(where, " AND ") + `
ORDER BY created_at DESC
LIMIT $` + fmt.Sprintf("%d", argN)
	args = append(args, clampLimit(limit))

	return r.queryEvents(ctx, q, args...)
}

// FindEnded is the complement of FindActive: ends_at <= NOW(), ordered
// by end time descending.
func (r *Repo) FindEnded(ctx context.Context, limit int, sinceID, untilID string) ([]*domain.Event, error) {
	where := []string{"ends_at <= NOW()"}
	args := []any{}
	where, args, argN := cursorWhere(where, args, 1, sinceID, untilID)

	q := `
SELECT id, created_at, owner_id, title, description, banner_id, ends_at, participants_count
FROM event
WHERE ` + strings.Join(where, " AND ") + `
ORDER BY ends_at DESC
LIMIT $` + fmt.Sprintf("%d", argN)
	args = append(args, clampLimit(limit))

	return r.queryEvents(ctx, q, args...)
}

func (r *Repo) queryEvents(ctx context.Context, q string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID, &e.CreatedAt, &e.OwnerID, &e.Title, &e.Description,
			&e.BannerID, &e.EndsAt, &e.ParticipantsCount,
		); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) IsParticipating(ctx context.Context, userID, eventID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, isParticipatingSQL, userID, eventID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *Repo) ListParticipants(ctx context.Context, eventID string, limit int, sinceID, untilID string) ([]*domain.Participant, error) {
	where := []string{"event_id = $1"}
	args := []any{eventID}
	where, args, argN := cursorWhere(where, args, 2, sinceID, untilID)

	q := `
SELECT id, created_at, event_id, user_id
FROM event_participant
WHERE ` + strings.Join(where, " AND ") + `
ORDER BY created_at DESC
LIMIT $` + fmt.Sprintf("%d", argN)
	args = append(args, clampLimit(limit))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(&p.ID, &p.CreatedAt, &p.EventID, &p.UserID); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
