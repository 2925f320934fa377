package usecase

import (
	channelRepository "Seenit/internal/app/channel/repository"
	"Seenit/internal/app/config"
	customErr "Seenit/internal/app/errors"
	"Seenit/internal/app/models"
	postRepository "Seenit/internal/app/post/repository"
	userRepository "Seenit/internal/app/user/repository"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const topPostsLimit = 5

type UseCase struct {
	userRepo    userRepository.Repository
	postRepo    postRepository.Repository
	channelRepo channelRepository.Repository
	cfg         *config.Config
}

func NewUseCase(userRepo userRepository.Repository,
	postRepo postRepository.Repository,
	channelRepo channelRepository.Repository,
	cfg *config.Config) *UseCase {
	return &UseCase{
		userRepo:    userRepo,
		postRepo:    postRepo,
		channelRepo: channelRepo,
		cfg:         cfg,
	}
}

func (u *UseCase) Register(req models.RegisterRequest) (models.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.AuthResponse{}, errors.Wrap(err, "failed to hash password")
	}

	user := models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: string(hash),
		RefreshToken:   uuid.New().String(),
		RefreshExpiry:  time.Now().Add(u.cfg.RefreshTokenTTL),
		Created:        time.Now(),
	}
	if err := u.userRepo.CreateUser(&user); err != nil {
		return models.AuthResponse{}, err
	}
	return u.tokensFor(user)
}

func (u *UseCase) Login(req models.LoginRequest) (models.AuthResponse, error) {
	user, err := u.userRepo.GetUserByUsername(req.Username)
	if errors.Is(err, customErr.ErrUserNotFound) {
		return models.AuthResponse{}, customErr.ErrBadPassword
	}
	if err != nil {
		return models.AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return models.AuthResponse{}, customErr.ErrBadPassword
	}

	user.RefreshToken = uuid.New().String()
	user.RefreshExpiry = time.Now().Add(u.cfg.RefreshTokenTTL)
	if err := u.userRepo.UpdateRefreshToken(user.ID, user.RefreshToken, user.RefreshExpiry); err != nil {
		return models.AuthResponse{}, err
	}
	return u.tokensFor(*user)
}

func (u *UseCase) Refresh(refreshToken string) (models.AuthResponse, error) {
	user, err := u.userRepo.GetUserByRefreshToken(refreshToken)
	if err != nil {
		return models.AuthResponse{}, err
	}

	user.RefreshToken = uuid.New().String()
	user.RefreshExpiry = time.Now().Add(u.cfg.RefreshTokenTTL)
	if err := u.userRepo.UpdateRefreshToken(user.ID, user.RefreshToken, user.RefreshExpiry); err != nil {
		return models.AuthResponse{}, err
	}
	return u.tokensFor(*user)
}

// Profile assembles the user detail payload: the user, their top rated
// posts and their subscribed channels.
func (u *UseCase) Profile(userID uint64) (models.Profile, error) {
	user, err := u.userRepo.GetUserByID(userID)
	if err != nil {
		return models.Profile{}, err
	}
	topPosts, err := u.postRepo.GetTopByUser(userID, topPostsLimit)
	if err != nil {
		return models.Profile{}, err
	}
	channels, err := u.channelRepo.GetSubscribedChannels(userID)
	if err != nil {
		return models.Profile{}, err
	}
	return models.Profile{
		User:     *user,
		TopPosts: topPosts,
		Channels: channels,
	}, nil
}

func (u *UseCase) tokensFor(user models.User) (models.AuthResponse, error) {
	claims := jwt.MapClaims{
		"userId":   user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(u.cfg.AccessTokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(u.cfg.JWTSecretKey))
	if err != nil {
		return models.AuthResponse{}, errors.Wrap(err, "failed to sign access token")
	}
	return models.AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: user.RefreshToken,
	}, nil
}
