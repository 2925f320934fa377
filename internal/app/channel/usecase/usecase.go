package usecase

import (
	channelRepository "Seenit/internal/app/channel/repository"
	customErr "Seenit/internal/app/errors"
	"Seenit/internal/app/models"
	userRepository "Seenit/internal/app/user/repository"
	"strings"
	"time"
)

type UseCase struct {
	channelRepo channelRepository.Repository
	userRepo    userRepository.Repository
}

func NewUseCase(channelRepo channelRepository.Repository, userRepo userRepository.Repository) *UseCase {
	return &UseCase{
		channelRepo: channelRepo,
		userRepo:    userRepo,
	}
}

func (u *UseCase) CreateChannel(channel models.Channel) (models.Channel, error) {
	channel.Name = strings.TrimSpace(channel.Name)
	if channel.Name == "" {
		return models.Channel{}, customErr.ErrEmptyText
	}
	channel.Created = time.Now()
	if err := u.channelRepo.CreateChannel(&channel); err != nil {
		return models.Channel{}, err
	}
	return channel, nil
}

func (u *UseCase) GetChannels() (models.ChannelList, error) {
	channels, err := u.channelRepo.GetChannels()
	if err != nil {
		return nil, err
	}
	if channels == nil {
		return models.ChannelList{}, nil
	}
	return channels, nil
}

func (u *UseCase) GetChannel(id uint64) (*models.Channel, error) {
	return u.channelRepo.GetChannelByID(id)
}

func (u *UseCase) Subscribe(channelID uint64, userID uint64) error {
	if _, err := u.userRepo.CheckUserExists(userID); err != nil {
		return err
	}
	return u.channelRepo.Subscribe(channelID, userID)
}

func (u *UseCase) Unsubscribe(channelID uint64, userID uint64) error {
	if _, err := u.userRepo.CheckUserExists(userID); err != nil {
		return err
	}
	return u.channelRepo.Unsubscribe(channelID, userID)
}

func (u *UseCase) IsSubscribed(channelID uint64, userID uint64) (bool, error) {
	if _, err := u.channelRepo.CheckChannelExists(channelID); err != nil {
		return false, err
	}
	return u.channelRepo.IsSubscribed(channelID, userID)
}
