package models

import (
	"github.com/go-openapi/strfmt"
)

// Comment carries a parent back-reference only: ParentID is 0 for root
// comments, otherwise the id of the comment being replied to. The full
// tree is reconstructed from these links when a post is listed.
type Comment struct {
	ID       uint64          `json:"id,omitempty" db:"id"`
	PostID   uint64          `json:"post_id,omitempty" db:"post_id"`
	ParentID uint64          `json:"parent_id" db:"parent_id"`
	UserID   uint64          `json:"user_id,omitempty" db:"user_id"`
	Author   string          `json:"author,omitempty" db:"author"`
	Text     string          `json:"text" db:"text"`
	Rating   int             `json:"rating" db:"rating"`
	Created  strfmt.DateTime `json:"created,omitempty" db:"created"`
}

type CommentList []Comment
