package usecase

import (
	customErr "Seenit/internal/app/errors"
	"Seenit/internal/app/models"
	postRepository "Seenit/internal/app/post/repository"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
)

type UseCase struct {
	postRepo postRepository.Repository
}

func NewUseCase(postRepo postRepository.Repository) *UseCase {
	return &UseCase{
		postRepo: postRepo,
	}
}

func (u *UseCase) CreatePost(channelID uint64, userID uint64, post models.Post) (models.Post, error) {
	if strings.TrimSpace(post.Title) == "" || strings.TrimSpace(post.Text) == "" {
		return models.Post{}, customErr.ErrEmptyText
	}
	post.ChannelID = channelID
	post.UserID = userID
	post.Created = strfmt.DateTime(time.Now())
	if err := u.postRepo.CreatePost(&post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (u *UseCase) GetPosts(channelID uint64, limit int64, offset int64) (models.PostList, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	posts, err := u.postRepo.GetPostsByChannel(channelID, limit, offset)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		return models.PostList{}, nil
	}
	return posts, nil
}

func (u *UseCase) GetPost(id uint64) (*models.Post, error) {
	return u.postRepo.GetPostByID(id)
}
