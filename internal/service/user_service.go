package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"medstore/internal/auth"
	apperrors "medstore/internal/errors"
	"medstore/internal/metrics"
	"medstore/internal/model"
	"medstore/internal/repository"
)

// UserService handles user registration.
type UserService interface {
	Register(ctx context.Context, username, password string) (bool, error)
}

type userService struct {
	userRepo repository.UserRepository
	hasher   *auth.PasswordHasher
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, hasher *auth.PasswordHasher) UserService {
	return &userService{userRepo: userRepo, hasher: hasher}
}

// Register creates a new user with a hashed password and the default USER
// role.
//
// The FindByUsername pre-check gives friendly conflicts on the common path,
// but the unique index on username is what actually serialises concurrent
// registrations: a racing insert surfaces as gorm.ErrDuplicatedKey and maps
// to the same conflict error.
func (s *userService) Register(ctx context.Context, username, password string) (bool, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return false, apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Roles:        model.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return false, apperrors.ErrUserAlreadyExists
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("create user: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return true, nil
}
