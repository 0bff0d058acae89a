package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecofinds/marketplace/internal/domain/entity"
	"github.com/ecofinds/marketplace/internal/platform/logger"
	"github.com/ecofinds/marketplace/internal/repository"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrEmptyUsername = errors.New("username cannot be empty")
)

type UpdateProfileParams struct {
	Email    string
	Username string
	FullName string
	Phone    string
	Address  string
	Bio      string
	Avatar   string
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*entity.User, error)
}

type profileService struct {
	userRepo repository.UserRepository
	log      logger.Logger
}

func NewProfileService(userRepo repository.UserRepository, log logger.Logger) ProfileService {
	return &profileService{
		userRepo: userRepo,
		log:      log,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not load profile: %w", err)
	}
	return user, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*entity.User, error) {
	s.log.Infof("ProfileService.UpdateProfile: user_id=%s", userID)

	if params.Email == "" {
		return nil, ErrEmptyEmail
	}
	if params.Username == "" {
		return nil, ErrEmptyUsername
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not load profile: %w", err)
	}

	user.Email = params.Email
	user.Username = params.Username
	user.FullName = params.FullName
	user.Phone = params.Phone
	user.Address = params.Address
	user.Bio = params.Bio
	user.Avatar = params.Avatar

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Errorf("ProfileService.UpdateProfile: failed to update user %s: %v", userID, err)
		return nil, fmt.Errorf("could not update profile: %w", err)
	}
	return user, nil
}
