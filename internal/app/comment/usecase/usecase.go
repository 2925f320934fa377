package usecase

import (
	commentRepository "Seenit/internal/app/comment/repository"
	customErr "Seenit/internal/app/errors"
	"Seenit/internal/app/models"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
)

type UseCase struct {
	commentRepo commentRepository.Repository
}

func NewUseCase(commentRepo commentRepository.Repository) *UseCase {
	return &UseCase{
		commentRepo: commentRepo,
	}
}

func (u *UseCase) CreateRootComment(postID uint64, userID uint64, comment models.Comment) (models.Comment, error) {
	if strings.TrimSpace(comment.Text) == "" {
		return models.Comment{}, customErr.ErrEmptyText
	}
	comment.PostID = postID
	comment.UserID = userID
	comment.Created = strfmt.DateTime(time.Now())
	if err := u.commentRepo.CreateRootComment(&comment); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

func (u *UseCase) CreateReply(parentID uint64, userID uint64, comment models.Comment) (models.Comment, error) {
	if strings.TrimSpace(comment.Text) == "" {
		return models.Comment{}, customErr.ErrEmptyText
	}
	comment.UserID = userID
	comment.Created = strfmt.DateTime(time.Now())
	if err := u.commentRepo.CreateReply(parentID, &comment); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

// GetComments returns the post's whole comment forest in hierarchical
// pre-order: every comment comes before its own replies, and sibling
// groups are ordered by rating, newest first on ties.
func (u *UseCase) GetComments(postID uint64) (models.CommentList, error) {
	comments, err := u.commentRepo.GetCommentsByPost(postID)
	if err != nil {
		return nil, err
	}
	return orderTree(comments), nil
}
