package usecase

import (
	"Seenit/internal/app/models"
	serviceRepository "Seenit/internal/app/service/repository"
)

type UseCase struct {
	serviceRepo serviceRepository.Repository
}

func NewUseCase(serviceRepo serviceRepository.Repository) *UseCase {
	return &UseCase{
		serviceRepo: serviceRepo,
	}
}

func (u *UseCase) ClearDB() error {
	return u.serviceRepo.ClearDB()
}

func (u *UseCase) Status() (models.NumRecords, error) {
	return u.serviceRepo.Status()
}
