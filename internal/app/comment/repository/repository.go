package repository

import (
	customErr "Seenit/internal/app/errors"
	"Seenit/internal/app/models"
	"Seenit/internal/app/voting"
	"database/sql"

	"github.com/jackc/pgx"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const (
	insertRootComment = `INSERT INTO comments (
							   post_id,
							   user_id,
							   text,
							   created
                           )
                           VALUES (
                                   $1,
                                   $2,
                                   $3,
                                   $4) RETURNING id`

	insertReply = `INSERT INTO comments (
							   post_id,
							   parent_id,
							   user_id,
							   text,
							   created
                           )
                           VALUES (
                                   $1,
                                   $2,
                                   $3,
                                   $4,
                                   $5) RETURNING id`

	selectCommentsByPost = `SELECT c.id, c.post_id, COALESCE(c.parent_id, 0) AS parent_id, c.user_id, u.username AS author, c.text, c.rating, c.created
		FROM comments AS c
		JOIN users AS u ON u.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.id`

	selectCommentByID = `SELECT c.id, c.post_id, COALESCE(c.parent_id, 0) AS parent_id, c.user_id, u.username AS author, c.text, c.rating, c.created
		FROM comments AS c
		JOIN users AS u ON u.id = c.user_id
		WHERE c.id = $1`

	selectPostIDByCommentID = "SELECT post_id FROM comments WHERE id = $1"

	selectPostIDByID = "SELECT id FROM posts WHERE id = $1"

	selectRatingForUpdate = "SELECT rating FROM comments WHERE id = $1 FOR UPDATE"

	selectVoice = "SELECT voice FROM comment_votes WHERE comment_id = $1 AND user_id = $2"

	insertVote = "INSERT INTO comment_votes(comment_id, user_id, voice) VALUES ($1, $2, $3)"

	deleteVote = "DELETE FROM comment_votes WHERE comment_id = $1 AND user_id = $2"

	updateRating = "UPDATE comments SET rating = rating + $1 WHERE id = $2 RETURNING rating"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateRootComment(comment *models.Comment) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	var postID uint64
	if err := tx.Get(&postID, selectPostIDByID, comment.PostID); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return customErr.ErrPostNotFound
		}
		return err
	}
	err = tx.QueryRowx(
		insertRootComment,
		comment.PostID,
		comment.UserID,
		comment.Text,
		comment.Created).Scan(&comment.ID)
	if driverErr, ok := err.(pgx.PgError); ok {
		if driverErr.Code == "23503" {
			_ = tx.Rollback()
			return customErr.ErrUserNotFound
		}
	}
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	return nil
}

// CreateReply inserts a comment under parentID. The new comment's post
// is taken from the parent row inside the transaction, never from the
// caller.
func (r *Repository) CreateReply(parentID uint64, comment *models.Comment) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	var postID uint64
	if err := tx.Get(&postID, selectPostIDByCommentID, parentID); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return customErr.ErrCommentNotFound
		}
		return err
	}
	comment.PostID = postID
	comment.ParentID = parentID
	err = tx.QueryRowx(
		insertReply,
		comment.PostID,
		comment.ParentID,
		comment.UserID,
		comment.Text,
		comment.Created).Scan(&comment.ID)
	if driverErr, ok := err.(pgx.PgError); ok {
		if driverErr.Code == "23503" {
			_ = tx.Rollback()
			return customErr.ErrUserNotFound
		}
	}
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	return nil
}

// GetCommentsByPost returns the post's comments in storage order; the
// usecase arranges them into tree order.
func (r *Repository) GetCommentsByPost(postID uint64) (models.CommentList, error) {
	var id uint64
	if err := r.db.Get(&id, selectPostIDByID, postID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customErr.ErrPostNotFound
		}
		return nil, err
	}
	var comments models.CommentList
	if err := r.db.Select(&comments, selectCommentsByPost, postID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CommentList{}, nil
		}
		return nil, err
	}
	return comments, nil
}

func (r *Repository) GetCommentByID(id uint64) (*models.Comment, error) {
	comment := models.Comment{}
	if err := r.db.Get(&comment, selectCommentByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customErr.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// Vote mirrors the post repository: row lock, membership read, relative
// rating update, all in one transaction.
func (r *Repository) Vote(commentID uint64, userID uint64, dir voting.Direction) (int, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	var rating int
	if err := tx.Get(&rating, selectRatingForUpdate, commentID); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return 0, customErr.ErrCommentNotFound
		}
		return 0, err
	}
	var voice int
	err = tx.Get(&voice, selectVoice, commentID, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		_ = tx.Rollback()
		return 0, err
	}

	change := voting.Resolve(voting.StateOf(voice), dir)
	if change.Insert {
		if _, err := tx.Exec(insertVote, commentID, userID, int(dir)); err != nil {
			_ = tx.Rollback()
			return 0, translateVoteErr(err)
		}
	}
	if change.Remove {
		if _, err := tx.Exec(deleteVote, commentID, userID); err != nil {
			_ = tx.Rollback()
			return 0, err
		}
	}
	if change.Delta != 0 {
		if err := tx.Get(&rating, updateRating, change.Delta, commentID); err != nil {
			_ = tx.Rollback()
			return 0, translateVoteErr(err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, translateVoteErr(err)
	}
	return rating, nil
}

func translateVoteErr(err error) error {
	if driverErr, ok := err.(pgx.PgError); ok {
		switch driverErr.Code {
		case "23503":
			return customErr.ErrUserNotFound
		case "40001":
			return customErr.ErrConflict
		}
	}
	return err
}
