package handlers

import (
	commentRepository "Seenit/internal/app/comment/repository"
	"Seenit/internal/app/middleware"
	postRepository "Seenit/internal/app/post/repository"
	userRepository "Seenit/internal/app/user/repository"
	voteUseCase "Seenit/internal/app/vote/usecase"
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) (*Handlers, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")

	useCase := voteUseCase.NewUseCase(
		*postRepository.NewRepo(sqlxDB),
		*commentRepository.NewRepo(sqlxDB),
		*userRepository.NewRepo(sqlxDB),
	)
	return NewHandler(*useCase), mock, func() { _ = db.Close() }
}

func voteRequest(t *testing.T, target string, body interface{}, authenticated bool) *http.Request {
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	if authenticated {
		req = req.WithContext(middleware.WithIdentity(req.Context(), 5, "alice"))
	}
	return req
}

func TestUpvotePost(t *testing.T) {
	handler, mock, closeFn := newHandler(t)
	defer closeFn()

	mock.ExpectQuery("SELECT id FROM users WHERE id = $1").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT rating FROM posts WHERE id = $1 FOR UPDATE").
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(0))
	mock.ExpectQuery("SELECT voice FROM post_votes WHERE post_id = $1 AND user_id = $2").
		WithArgs(uint64(1), uint64(5)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO post_votes(post_id, user_id, voice) VALUES ($1, $2, $3)").
		WithArgs(uint64(1), uint64(5), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("UPDATE posts SET rating = rating + $1 WHERE id = $2 RETURNING rating").
		WithArgs(1, uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(1))
	mock.ExpectCommit()

	req := voteRequest(t, "/api/v1/upvote", map[string]interface{}{"id": 1, "type": "post"}, true)
	rec := httptest.NewRecorder()

	handler.Upvote(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"type":"post","rating":1}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDownvoteComment(t *testing.T) {
	handler, mock, closeFn := newHandler(t)
	defer closeFn()

	mock.ExpectQuery("SELECT id FROM users WHERE id = $1").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT rating FROM comments WHERE id = $1 FOR UPDATE").
		WithArgs(uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(3))
	mock.ExpectQuery("SELECT voice FROM comment_votes WHERE comment_id = $1 AND user_id = $2").
		WithArgs(uint64(2), uint64(5)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO comment_votes(comment_id, user_id, voice) VALUES ($1, $2, $3)").
		WithArgs(uint64(2), uint64(5), -1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("UPDATE comments SET rating = rating + $1 WHERE id = $2 RETURNING rating").
		WithArgs(-1, uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(2))
	mock.ExpectCommit()

	req := voteRequest(t, "/api/v1/downvote", map[string]interface{}{"id": 2, "type": "comment"}, true)
	rec := httptest.NewRecorder()

	handler.Downvote(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":2,"type":"comment","rating":2}`, rec.Body.String())
}

func TestVoteUnauthenticated(t *testing.T) {
	handler, _, closeFn := newHandler(t)
	defer closeFn()

	req := voteRequest(t, "/api/v1/upvote", map[string]interface{}{"id": 1, "type": "post"}, false)
	rec := httptest.NewRecorder()

	handler.Upvote(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVoteUnknownType(t *testing.T) {
	handler, mock, closeFn := newHandler(t)
	defer closeFn()

	mock.ExpectQuery("SELECT id FROM users WHERE id = $1").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	req := voteRequest(t, "/api/v1/upvote", map[string]interface{}{"id": 1, "type": "channel"}, true)
	rec := httptest.NewRecorder()

	handler.Upvote(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVotePostNotFound(t *testing.T) {
	handler, mock, closeFn := newHandler(t)
	defer closeFn()

	mock.ExpectQuery("SELECT id FROM users WHERE id = $1").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT rating FROM posts WHERE id = $1 FOR UPDATE").
		WithArgs(uint64(404)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	req := voteRequest(t, "/api/v1/upvote", map[string]interface{}{"id": 404, "type": "post"}, true)
	rec := httptest.NewRecorder()

	handler.Upvote(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
