package repository

import (
	"Seenit/internal/app/models"

	"github.com/jackc/pgx"
)

// One statement truncates everything: listing every table avoids
// CASCADE ordering concerns and keeps the wipe atomic.
const truncateAll = `TRUNCATE users, channels, posts, comments, post_votes, comment_votes, subscriptions`

type Repository struct {
	db *pgx.ConnPool
}

func NewRepo(db *pgx.ConnPool) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) ClearDB() error {
	_, err := r.db.Exec(truncateAll)
	return err
}

func (r *Repository) Status() (models.NumRecords, error) {
	var numRec models.NumRecords
	tx, err := r.db.Begin()
	if err != nil {
		return models.NumRecords{}, err
	}
	counts := []struct {
		query string
		dest  *uint64
	}{
		{"SELECT COUNT(*) FROM users", &numRec.Users},
		{"SELECT COUNT(*) FROM channels", &numRec.Channels},
		{"SELECT COUNT(*) FROM posts", &numRec.Posts},
		{"SELECT COUNT(*) FROM comments", &numRec.Comments},
	}
	for _, c := range counts {
		if err := tx.QueryRow(c.query).Scan(c.dest); err != nil {
			_ = tx.Rollback()
			return models.NumRecords{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return models.NumRecords{}, err
	}
	return numRec, nil
}
