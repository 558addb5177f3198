package services

import (
	"contacts_backend/internal/models"
	"contacts_backend/internal/repositories"
	"contacts_backend/pkg/apperrors"
)

type UserService interface {
	GetByID(userID string) (*models.User, error)
	UpdateSubscription(userID string, subscription models.Subscription) (*models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateSubscription(userID string, subscription models.Subscription) (*models.User, error) {
	if !models.ValidSubscription(subscription) {
		return nil, apperrors.ValidationError(map[string]string{
			"subscription": "subscription must be one of: starter, pro, business",
		})
	}

	if err := s.userRepo.UpdateSubscription(userID, subscription); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(userID)
}
