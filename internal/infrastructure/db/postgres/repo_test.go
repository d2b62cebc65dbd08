package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/fireflysocial/events-service/internal/domain"
)

func newMock(t *testing.T) (*Repo, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	return New(db), mock, func() { _ = db.Close() }
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tt, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad time %q: %v", s, err)
	}
	return tt.UTC()
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	ae, ok := err.(*domain.AppError)
	if !ok {
		t.Fatalf("expected *domain.AppError, got %T: %v", err, err)
	}
	return ae.Code
}

func eventColumns() []string {
	return []string{"id", "created_at", "owner_id", "title", "description", "banner_id", "ends_at", "participants_count"}
}

func sampleEvent(t *testing.T) *domain.Event {
	t.Helper()
	return &domain.Event{
		ID:                "evt-1",
		CreatedAt:         mustTime(t, "2025-12-25T10:00:00Z"),
		OwnerID:           "user-1",
		Title:             "Meetup",
		Description:       "come along",
		EndsAt:            mustTime(t, "2025-12-26T10:00:00Z"),
		ParticipantsCount: 3,
	}
}

func TestRepo_Create(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	e := sampleEvent(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO event (")).
		WithArgs(e.ID, e.CreatedAt, e.OwnerID, e.Title, e.Description, nil, e.EndsAt, e.ParticipantsCount).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), e)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, done := newMock(t)
		defer done()

		e := sampleEvent(t)
		rows := sqlmock.NewRows(eventColumns()).
			AddRow(e.ID, e.CreatedAt, e.OwnerID, e.Title, e.Description, nil, e.EndsAt, e.ParticipantsCount)
		mock.ExpectQuery(regexp.QuoteMeta("FROM event WHERE id = $1")).
			WithArgs("evt-1").
			WillReturnRows(rows)

		got, err := repo.GetByID(context.Background(), "evt-1")
		assert.NoError(t, err)
		assert.Equal(t, "Meetup", got.Title)
		assert.Equal(t, 3, got.ParticipantsCount)
		assert.Nil(t, got.BannerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not_found", func(t *testing.T) {
		repo, mock, done := newMock(t)
		defer done()

		mock.ExpectQuery(regexp.QuoteMeta("FROM event WHERE id = $1")).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), "missing")
		assert.Error(t, err)
		assert.Equal(t, "NO_SUCH_EVENT", appCode(t, err))
	})
}

func TestRepo_Update(t *testing.T) {
	t.Run("updates_row", func(t *testing.T) {
		repo, mock, done := newMock(t)
		defer done()

		e := sampleEvent(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE event SET")).
			WithArgs(e.ID, e.Title, e.Description, nil, e.EndsAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(context.Background(), e))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero_rows_is_not_found", func(t *testing.T) {
		repo, mock, done := newMock(t)
		defer done()

		e := sampleEvent(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE event SET")).
			WithArgs(e.ID, e.Title, e.Description, nil, e.EndsAt).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), e)
		assert.Error(t, err)
		assert.Equal(t, "NO_SUCH_EVENT", appCode(t, err))
	})
}

func TestRepo_Delete(t *testing.T) {
	t.Run("cascades_in_one_tx", func(t *testing.T) {
		repo, mock, done := newMock(t)
		defer done()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM event_participant WHERE event_id = $1")).
			WithArgs("evt-1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM event WHERE id = $1")).
			WithArgs("evt-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Delete(context.Background(), "evt-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing_event_rolls_back", func(t *testing.T) {
		repo, mock, done := newMock(t)
		defer done()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM event_participant WHERE event_id = $1")).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM event WHERE id = $1")).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), "missing")
		assert.Error(t, err)
		assert.Equal(t, "NO_SUCH_EVENT", appCode(t, err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
