package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fireflysocial/events-service/internal/domain"
)

type Repo struct {
	db *sql.DB
}

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, e *domain.Event) error {
	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.ID, e.CreatedAt, e.OwnerID, e.Title, e.Description,
		e.BannerID, e.EndsAt, e.ParticipantsCount,
	)
	return err
}

func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.db.QueryRowContext(ctx, getEventSQL, id)

	var e domain.Event
	err := row.Scan(
		&e.ID, &e.CreatedAt, &e.OwnerID, &e.Title, &e.Description,
		&e.BannerID, &e.EndsAt, &e.ParticipantsCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoSuchEvent()
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repo) Update(ctx context.Context, e *domain.Event) error {
	res, err := r.db.ExecContext(ctx, updateEventSQL,
		e.ID, e.Title, e.Description, e.BannerID, e.EndsAt,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNoSuchEvent()
	}
	return nil
}

// Delete removes the event and all its participant rows in one
// transaction; a partial cascade must never be observable.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM event_participant WHERE event_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM event WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNoSuchEvent()
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}
