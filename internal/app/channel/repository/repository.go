package repository

import (
	customErr "Seenit/internal/app/errors"
	"Seenit/internal/app/models"
	"database/sql"

	"github.com/jackc/pgx"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const (
	insertChannel = `INSERT INTO channels (
							   name,
							   created
                           )
                           VALUES (
                                   $1,
                                   $2) RETURNING id`

	selectChannels = "SELECT id, name, created FROM channels ORDER BY name"

	selectChannelByID = "SELECT id, name, created FROM channels WHERE id = $1"

	selectIDByID = "SELECT id FROM channels WHERE id = $1"

	insertSubscription = "INSERT INTO subscriptions(channel_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING"

	deleteSubscription = "DELETE FROM subscriptions WHERE channel_id = $1 AND user_id = $2"

	selectSubscription = "SELECT EXISTS(SELECT 1 FROM subscriptions WHERE channel_id = $1 AND user_id = $2)"

	selectSubscribedChannels = `SELECT c.id, c.name, c.created
		FROM channels AS c
		JOIN subscriptions AS s ON s.channel_id = c.id
		WHERE s.user_id = $1
		ORDER BY c.name`
)

type Repository struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateChannel(channel *models.Channel) error {
	err := r.db.QueryRowx(insertChannel, channel.Name, channel.Created).Scan(&channel.ID)
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

func (r *Repository) GetChannels() (models.ChannelList, error) {
	var channels models.ChannelList
	if err := r.db.Select(&channels, selectChannels); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ChannelList{}, nil
		}
		return nil, err
	}
	return channels, nil
}

func (r *Repository) GetChannelByID(id uint64) (*models.Channel, error) {
	channel := models.Channel{}
	if err := r.db.Get(&channel, selectChannelByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customErr.ErrChannelNotFound
		}
		return nil, err
	}
	return &channel, nil
}

func (r *Repository) CheckChannelExists(id uint64) (uint64, error) {
	var channelID uint64
	if err := r.db.Get(&channelID, selectIDByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, customErr.ErrChannelNotFound
		}
		return 0, err
	}
	return channelID, nil
}

// Subscribe is idempotent: subscribing twice leaves a single membership
// row behind.
func (r *Repository) Subscribe(channelID uint64, userID uint64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	var id uint64
	if err := tx.Get(&id, selectIDByID, channelID); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return customErr.ErrChannelNotFound
		}
		return err
	}
	_, err = tx.Exec(insertSubscription, channelID, userID)
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

// Unsubscribe is idempotent: removing an absent membership is not an
// error.
func (r *Repository) Unsubscribe(channelID uint64, userID uint64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	var id uint64
	if err := tx.Get(&id, selectIDByID, channelID); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return customErr.ErrChannelNotFound
		}
		return err
	}
	if _, err := tx.Exec(deleteSubscription, channelID, userID); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	return nil
}

func (r *Repository) IsSubscribed(channelID uint64, userID uint64) (bool, error) {
	var subscribed bool
	if err := r.db.Get(&subscribed, selectSubscription, channelID, userID); err != nil {
		return false, err
	}
	return subscribed, nil
}

func (r *Repository) GetSubscribedChannels(userID uint64) (models.ChannelList, error) {
	var channels models.ChannelList
	if err := r.db.Select(&channels, selectSubscribedChannels, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ChannelList{}, nil
		}
		return nil, err
	}
	return channels, nil
}
