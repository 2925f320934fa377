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
	insertPost = `INSERT INTO posts (
							   channel_id,
							   user_id,
							   title,
							   text,
							   created
                           )
                           VALUES (
                                   $1,
                                   $2,
                                   $3,
                                   $4,
                                   $5) RETURNING id`

	selectPostsByChannel = `SELECT p.id, p.channel_id, p.user_id, u.username AS author, p.title, p.text, p.rating, p.created
		FROM posts AS p
		JOIN users AS u ON u.id = p.user_id
		WHERE p.channel_id = $1
		ORDER BY p.rating DESC, p.created DESC
		LIMIT $2 OFFSET $3`

	selectPostByID = `SELECT p.id, p.channel_id, p.user_id, u.username AS author, p.title, p.text, p.rating, p.created
		FROM posts AS p
		JOIN users AS u ON u.id = p.user_id
		WHERE p.id = $1`

	selectTopPostsByUser = `SELECT p.id, p.channel_id, p.user_id, u.username AS author, p.title, p.text, p.rating, p.created
		FROM posts AS p
		JOIN users AS u ON u.id = p.user_id
		WHERE p.user_id = $1
		ORDER BY p.rating DESC, p.created DESC
		LIMIT $2`

	selectChannelIDByID = "SELECT id FROM channels WHERE id = $1"

	selectRatingForUpdate = "SELECT rating FROM posts WHERE id = $1 FOR UPDATE"

	selectVoice = "SELECT voice FROM post_votes WHERE post_id = $1 AND user_id = $2"

	insertVote = "INSERT INTO post_votes(post_id, user_id, voice) VALUES ($1, $2, $3)"

	deleteVote = "DELETE FROM post_votes WHERE post_id = $1 AND user_id = $2"

	updateRating = "UPDATE posts SET rating = rating + $1 WHERE id = $2 RETURNING rating"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreatePost(post *models.Post) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	var channelID uint64
	if err := tx.Get(&channelID, selectChannelIDByID, post.ChannelID); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return customErr.ErrChannelNotFound
		}
		return err
	}
	err = tx.QueryRowx(
		insertPost,
		post.ChannelID,
		post.UserID,
		post.Title,
		post.Text,
		post.Created).Scan(&post.ID)
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

func (r *Repository) GetPostsByChannel(channelID uint64, limit int64, offset int64) (models.PostList, error) {
	var posts models.PostList
	var id uint64
	if err := r.db.Get(&id, selectChannelIDByID, channelID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customErr.ErrChannelNotFound
		}
		return nil, err
	}
	if err := r.db.Select(&posts, selectPostsByChannel, channelID, limit, offset); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PostList{}, nil
		}
		return nil, err
	}
	return posts, nil
}

func (r *Repository) GetPostByID(id uint64) (*models.Post, error) {
	post := models.Post{}
	if err := r.db.Get(&post, selectPostByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customErr.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *Repository) GetTopByUser(userID uint64, limit int64) (models.PostList, error) {
	var posts models.PostList
	if err := r.db.Select(&posts, selectTopPostsByUser, userID, limit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PostList{}, nil
		}
		return nil, err
	}
	return posts, nil
}

// Vote applies one vote inside a single transaction: the post row is
// locked, the voter's current membership is read, and the rating is
// bumped with a relative update so concurrent votes cannot lose
// increments.
func (r *Repository) Vote(postID uint64, userID uint64, dir voting.Direction) (int, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	var rating int
	if err := tx.Get(&rating, selectRatingForUpdate, postID); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return 0, customErr.ErrPostNotFound
		}
		return 0, err
	}
	var voice int
	err = tx.Get(&voice, selectVoice, postID, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		_ = tx.Rollback()
		return 0, err
	}

	change := voting.Resolve(voting.StateOf(voice), dir)
	if change.Insert {
		if _, err := tx.Exec(insertVote, postID, userID, int(dir)); err != nil {
			_ = tx.Rollback()
			return 0, translateVoteErr(err)
		}
	}
	if change.Remove {
		if _, err := tx.Exec(deleteVote, postID, userID); err != nil {
			_ = tx.Rollback()
			return 0, err
		}
	}
	if change.Delta != 0 {
		if err := tx.Get(&rating, updateRating, change.Delta, postID); err != nil {
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
