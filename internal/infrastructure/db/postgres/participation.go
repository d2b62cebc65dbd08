package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/fireflysocial/events-service/internal/domain"
)

// Lock ordering: the event row is locked FOR UPDATE before the
// participant row is touched, for both Join and Leave. The counter
// update and the association write commit together or not at all.

// Join inserts the participant row and increments participants_count in
// one transaction. The unique (event_id, user_id) index is the
// duplicate check; a conflicting insert is reported as
// ALREADY_PARTICIPATING rather than racing a prior existence read.
func (r *Repo) Join(ctx context.Context, p *domain.Participant, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var endsAt time.Time
	var count int
	err = tx.QueryRowContext(ctx, lockEventSQL, p.EventID).Scan(&endsAt, &count)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNoSuchEvent()
	}
	if err != nil {
		return err
	}

	if !endsAt.After(now) {
		return domain.ErrEventEnded()
	}

	res, err := tx.ExecContext(ctx, insertParticipantSQL, p.ID, p.CreatedAt, p.EventID, p.UserID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAlreadyParticipating()
	}

	if _, err := tx.ExecContext(ctx, incrementCountSQL, p.EventID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit join: %w", err)
	}
	return nil
}

// Leave deletes the participant row and decrements participants_count
// in one transaction. The decrement is floored at 0; hitting the floor
// means a decrement was missed earlier, so it is logged rather than
// silently absorbed.
func (r *Repo) Leave(ctx context.Context, eventID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var endsAt time.Time
	var count int
	err = tx.QueryRowContext(ctx, lockEventSQL, eventID).Scan(&endsAt, &count)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNoSuchEvent()
	}
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, deleteParticipantSQL, eventID, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotParticipating()
	}

	if count == 0 {
		zlog.Warn().
			Str("event_id", eventID).
			Str("user_id", userID).
			Msg("participants_count underflow clamped at 0")
	}
	if _, err := tx.ExecContext(ctx, decrementCountSQL, eventID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit leave: %w", err)
	}
	return nil
}
