package repository

import (
	customErr "Seenit/internal/app/errors"
	"Seenit/internal/app/models"
	"database/sql"
	"time"

	"github.com/jackc/pgx"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const (
	insertUser = `INSERT INTO users (
							   username,
							   email,
							   hashed_password,
							   refresh_token,
							   refresh_expiry,
							   created
                           )
                           VALUES (
                                   $1,
                                   $2,
                                   $3,
                                   $4,
                                   $5,
                                   $6) RETURNING id`

	selectUserByID = "SELECT id, username, email, hashed_password, refresh_token, refresh_expiry, created FROM users WHERE id = $1"

	selectUserByUsername = "SELECT id, username, email, hashed_password, refresh_token, refresh_expiry, created FROM users WHERE username = $1"

	selectUserByRefreshToken = "SELECT id, username, email, hashed_password, refresh_token, refresh_expiry, created FROM users WHERE refresh_token = $1"

	selectIDByID = "SELECT id FROM users WHERE id = $1"

	updateRefreshToken = "UPDATE users SET refresh_token=$1, refresh_expiry=$2 WHERE id=$3"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateUser(user *models.User) error {
	err := r.db.QueryRowx(
		insertUser,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.RefreshToken,
		user.RefreshExpiry,
		user.Created).Scan(&user.ID)
	if driverErr, ok := err.(pgx.PgError); ok {
		if driverErr.Code == "23505" {
			return customErr.ErrDuplicate
		}
	}
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) CheckUserExists(id uint64) (uint64, error) {
	var userID uint64
	if err := r.db.Get(&userID, selectIDByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, customErr.ErrUserNotFound
		}
		return 0, err
	}
	return userID, nil
}

func (r *Repository) GetUserByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.Get(&user, selectUserByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customErr.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Get(&user, selectUserByUsername, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customErr.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByRefreshToken(token string) (*models.User, error) {
	var user models.User
	if err := r.db.Get(&user, selectUserByRefreshToken, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customErr.ErrBadToken
		}
		return nil, err
	}
	if user.RefreshExpiry.Before(time.Now()) {
		return nil, customErr.ErrBadToken
	}
	return &user, nil
}

func (r *Repository) UpdateRefreshToken(userID uint64, token string, expiry time.Time) error {
	_, err := r.db.Exec(updateRefreshToken, token, expiry, userID)
	return err
}
