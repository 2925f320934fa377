package models

import (
	"github.com/go-openapi/strfmt"
)

type Post struct {
	ID        uint64          `json:"id,omitempty" db:"id"`
	ChannelID uint64          `json:"channel_id,omitempty" db:"channel_id"`
	UserID    uint64          `json:"user_id,omitempty" db:"user_id"`
	Author    string          `json:"author,omitempty" db:"author"`
	Title     string          `json:"title" db:"title"`
	Text      string          `json:"text" db:"text"`
	Rating    int             `json:"rating" db:"rating"`
	Created   strfmt.DateTime `json:"created,omitempty" db:"created"`
}

type PostList []Post
