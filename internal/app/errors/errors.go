package errors

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrChannelNotFound = errors.New("channel not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")

	ErrDuplicate    = errors.New("duplicate unique field")
	ErrEmptyText    = errors.New("required field is empty")
	ErrInvalidField = errors.New("invalid field value")

	ErrUnauthorized = errors.New("authentication required")
	ErrBadPassword  = errors.New("wrong username or password")
	ErrBadToken     = errors.New("invalid or expired token")

	ErrConflict = errors.New("concurrent update conflict")
)
