package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

type userService struct {
	repo   UserRepository
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// HasRole проверяет, что пользователю назначена роль. Неизвестный пользователь роли не имеет.
func (s *userService) HasRole(ctx context.Context, userID, role string) (bool, error) {
	got, err := s.repo.GetUserRole(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		s.logger.WithFields(logrus.Fields{
			"service": "user",
			"method":  "HasRole",
			"user_id": userID,
		}).WithError(err).Error("Failed to load user role")
		return false, fmt.Errorf("service: could not load role: %w", err)
	}
	return got == role, nil
}
