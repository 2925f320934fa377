package repository

import (
	customErr "Seenit/internal/app/errors"
	"Seenit/internal/app/models"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRepo(sqlxDB), mock, func() { _ = db.Close() }
}

func TestCreateChannel(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	created := time.Now()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(insertChannel).
			WithArgs("news", created).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		channel := models.Channel{Name: "news", Created: created}
		err := repo.CreateChannel(&channel)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), channel.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		mock.ExpectQuery(insertChannel).
			WithArgs("news", created).
			WillReturnError(pgx.PgError{Code: "23505"})

		channel := models.Channel{Name: "news", Created: created}
		err := repo.CreateChannel(&channel)

		assert.ErrorIs(t, err, customErr.ErrDuplicate)
	})
}

func TestSubscribe(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	t.Run("adds membership", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(selectIDByID).
			WithArgs(uint64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectExec(insertSubscription).
			WithArgs(uint64(1), uint64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Subscribe(1, 2)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat subscribe is idempotent", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(selectIDByID).
			WithArgs(uint64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectExec(insertSubscription).
			WithArgs(uint64(1), uint64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Subscribe(1, 2)

		require.NoError(t, err)
	})

	t.Run("channel missing", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(selectIDByID).
			WithArgs(uint64(9)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err := repo.Subscribe(9, 2)

		assert.ErrorIs(t, err, customErr.ErrChannelNotFound)
	})

	t.Run("user missing", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(selectIDByID).
			WithArgs(uint64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectExec(insertSubscription).
			WithArgs(uint64(1), uint64(99)).
			WillReturnError(pgx.PgError{Code: "23503"})
		mock.ExpectRollback()

		err := repo.Subscribe(1, 99)

		assert.ErrorIs(t, err, customErr.ErrUserNotFound)
	})
}

func TestUnsubscribe(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	t.Run("removes membership", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(selectIDByID).
			WithArgs(uint64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectExec(deleteSubscription).
			WithArgs(uint64(1), uint64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Unsubscribe(1, 2)

		require.NoError(t, err)
	})

	t.Run("repeat unsubscribe is idempotent", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(selectIDByID).
			WithArgs(uint64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectExec(deleteSubscription).
			WithArgs(uint64(1), uint64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Unsubscribe(1, 2)

		require.NoError(t, err)
	})
}

func TestIsSubscribed(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectQuery(selectSubscription).
		WithArgs(uint64(1), uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	subscribed, err := repo.IsSubscribed(1, 2)

	require.NoError(t, err)
	assert.True(t, subscribed)
}
