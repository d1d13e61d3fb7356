package service

import (
	"academy_backend/internal/model"
	"academy_backend/internal/repository"
	"academy_backend/internal/util"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) List(page, limit int, role string) ([]model.User, int64, error) {
	return s.Repo.List(page, limit, role)
}

func (s *UserService) SetDisabled(userID uint, disabled bool) (*model.User, error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if err := s.Repo.SetDisabled(userID, disabled); err != nil {
		return nil, err
	}
	user.Disabled = disabled
	return user, nil
}
