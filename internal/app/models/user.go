package models

import (
	"time"
)

type User struct {
	ID             uint64    `json:"id,omitempty" db:"id"`
	Username       string    `json:"username,omitempty" db:"username"`
	Email          string    `json:"email,omitempty" db:"email"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	RefreshToken   string    `json:"-" db:"refresh_token"`
	RefreshExpiry  time.Time `json:"-" db:"refresh_expiry"`
	Created        time.Time `json:"created,omitempty" db:"created"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse is returned by register, login and refresh.
type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Profile is the user detail page payload: the user, their highest
// rated posts and the channels they are subscribed to.
type Profile struct {
	User     User        `json:"user"`
	TopPosts PostList    `json:"top_posts"`
	Channels ChannelList `json:"channels"`
}
