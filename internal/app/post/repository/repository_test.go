package repository

import (
	customErr "Seenit/internal/app/errors"
	"Seenit/internal/app/models"
	"Seenit/internal/app/voting"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-openapi/strfmt"
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

func TestVoteFromNeutral(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectBegin()
	mock.ExpectQuery(selectRatingForUpdate).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(0))
	mock.ExpectQuery(selectVoice).
		WithArgs(uint64(1), uint64(5)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(insertVote).
		WithArgs(uint64(1), uint64(5), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(updateRating).
		WithArgs(1, uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(1))
	mock.ExpectCommit()

	rating, err := repo.Vote(1, 5, voting.Up)

	require.NoError(t, err)
	assert.Equal(t, 1, rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Voting against an existing upvote removes the membership row and does
// not insert a downvote row.
func TestVoteCancelsOpposing(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectBegin()
	mock.ExpectQuery(selectRatingForUpdate).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(1))
	mock.ExpectQuery(selectVoice).
		WithArgs(uint64(1), uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"voice"}).AddRow(1))
	mock.ExpectExec(deleteVote).
		WithArgs(uint64(1), uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(updateRating).
		WithArgs(-1, uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(0))
	mock.ExpectCommit()

	rating, err := repo.Vote(1, 5, voting.Down)

	require.NoError(t, err)
	assert.Equal(t, 0, rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A repeated same-direction vote leaves both the membership row and the
// rating untouched.
func TestVoteRepeatIsNoOp(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectBegin()
	mock.ExpectQuery(selectRatingForUpdate).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(1))
	mock.ExpectQuery(selectVoice).
		WithArgs(uint64(1), uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"voice"}).AddRow(1))
	mock.ExpectCommit()

	rating, err := repo.Vote(1, 5, voting.Up)

	require.NoError(t, err)
	assert.Equal(t, 1, rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVotePostNotFound(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectBegin()
	mock.ExpectQuery(selectRatingForUpdate).
		WithArgs(uint64(42)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Vote(42, 5, voting.Up)

	assert.ErrorIs(t, err, customErr.ErrPostNotFound)
}

func TestGetPostsByChannel(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	created := time.Now()

	mock.ExpectQuery(selectChannelIDByID).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery(selectPostsByChannel).
		WithArgs(uint64(3), int64(100), int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "channel_id", "user_id", "author", "title", "text", "rating", "created"}).
			AddRow(2, 3, 1, "alice", "second", "text", 10, created).
			AddRow(1, 3, 1, "alice", "first", "text", 4, created))

	posts, err := repo.GetPostsByChannel(3, 100, 0)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, models.Post{ID: 2, ChannelID: 3, UserID: 1, Author: "alice", Title: "second", Text: "text", Rating: 10, Created: strfmt.DateTime(created)}, posts[0])
	assert.Equal(t, uint64(1), posts[1].ID)
}

func TestGetPostsByChannelNotFound(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectQuery(selectChannelIDByID).
		WithArgs(uint64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetPostsByChannel(9, 100, 0)

	assert.ErrorIs(t, err, customErr.ErrChannelNotFound)
}
