package usecase

import (
	commentRepository "Seenit/internal/app/comment/repository"
	customErr "Seenit/internal/app/errors"
	"Seenit/internal/app/models"
	postRepository "Seenit/internal/app/post/repository"
	userRepository "Seenit/internal/app/user/repository"
	"Seenit/internal/app/voting"
)

type UseCase struct {
	postRepo    postRepository.Repository
	commentRepo commentRepository.Repository
	userRepo    userRepository.Repository
}

func NewUseCase(postRepo postRepository.Repository,
	commentRepo commentRepository.Repository,
	userRepo userRepository.Repository) *UseCase {
	return &UseCase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

func (u *UseCase) Upvote(req models.VoteRequest, userID uint64) (models.VoteResult, error) {
	return u.vote(req, userID, voting.Up)
}

func (u *UseCase) Downvote(req models.VoteRequest, userID uint64) (models.VoteResult, error) {
	return u.vote(req, userID, voting.Down)
}

func (u *UseCase) vote(req models.VoteRequest, userID uint64, dir voting.Direction) (models.VoteResult, error) {
	if _, err := u.userRepo.CheckUserExists(userID); err != nil {
		return models.VoteResult{}, err
	}

	var rating int
	var err error
	switch req.Type {
	case models.VotablePost:
		rating, err = u.postRepo.Vote(req.ID, userID, dir)
	case models.VotableComment:
		rating, err = u.commentRepo.Vote(req.ID, userID, dir)
	default:
		return models.VoteResult{}, customErr.ErrInvalidField
	}
	if err != nil {
		return models.VoteResult{}, err
	}
	return models.VoteResult{
		ID:     req.ID,
		Type:   req.Type,
		Rating: rating,
	}, nil
}
