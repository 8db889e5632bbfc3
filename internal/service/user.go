package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"goalnudge/internal/clock"
	"goalnudge/internal/model"
	"goalnudge/internal/repository"
)

type UserService struct {
	repo  repository.UserRepository
	clock clock.Clock
}

func NewUserService(repo repository.UserRepository, clk clock.Clock) *UserService {
	return &UserService{
		repo:  repo,
		clock: clk,
	}
}

func (s *UserService) ByExternalID(externalID string) (*model.User, error) {
	return s.repo.ByExternalID(externalID)
}

// Ensure returns the user for an external identity, creating the local row
// on first contact. New rows start onboarded: a user only reaches the goal
// endpoints by submitting goals.
func (s *UserService) Ensure(externalID string) (*model.User, error) {
	user, err := s.repo.ByExternalID(externalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	user = &model.User{
		ID:         uuid.New().String(),
		ExternalID: externalID,
		Onboarded:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.repo.Create(user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *UserService) MarkOnboarded(userID string) error {
	return s.repo.SetOnboarded(userID, true)
}

// IsOnboarded reports whether the identity has completed onboarding.
// An identity with no local row simply has not onboarded yet.
func (s *UserService) IsOnboarded(externalID string) (bool, error) {
	user, err := s.repo.ByExternalID(externalID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Onboarded, nil
}
