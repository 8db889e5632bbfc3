package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"goalnudge/internal/clock"
	"goalnudge/internal/model"
	"goalnudge/internal/repository"
	"goalnudge/internal/streak"
	"goalnudge/internal/validation"
)

var (
	ErrNotGoalOwner = errors.New("goal does not belong to caller")
)

type PartnerInput struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type GoalInput struct {
	Description string         `json:"goal"`
	Cadence     string         `json:"reminderCadence"`
	Partners    []PartnerInput `json:"accountabilityPartners"`
}

type GoalWithPartners struct {
	*model.Goal
	Partners []*model.AccountabilityPartner `json:"accountabilityPartners"`
}

type CheckInResult struct {
	Streak        int
	LastCheckInAt time.Time
	AlreadyDone   bool
}

type GoalService struct {
	users    *UserService
	goals    repository.GoalRepository
	partners repository.PartnerRepository
	clock    clock.Clock
}

func NewGoalService(
	users *UserService,
	goals repository.GoalRepository,
	partners repository.PartnerRepository,
	clk clock.Clock,
) *GoalService {
	return &GoalService{
		users:    users,
		goals:    goals,
		partners: partners,
		clock:    clk,
	}
}

func validateGoalInput(input GoalInput) error {
	err := validation.ValidateGoalDescription(input.Description)
	if err != nil {
		return err
	}

	err = validation.ValidateCadence(input.Cadence)
	if err != nil {
		return err
	}

	err = validation.ValidatePartnerCount(len(input.Partners))
	if err != nil {
		return err
	}

	for _, partner := range input.Partners {
		err = validation.ValidatePartnerContact(partner.Email, partner.Phone)
		if err != nil {
			return err
		}
	}

	return nil
}

// Onboard marks the identity's user as onboarded and replaces their goal set
// wholesale: existing goals and their partners are deleted in one
// transaction, then the submitted goals are created fresh.
func (s *GoalService) Onboard(externalID string, inputs []GoalInput) error {
	err := validation.ValidateOnboardingGoalCount(len(inputs))
	if err != nil {
		return err
	}

	for _, input := range inputs {
		err = validateGoalInput(input)
		if err != nil {
			return err
		}
	}

	user, err := s.users.Ensure(externalID)
	if err != nil {
		return err
	}

	err = s.users.MarkOnboarded(user.ID)
	if err != nil {
		return err
	}

	err = s.goals.DeleteByUser(user.ID)
	if err != nil {
		return fmt.Errorf("failed to clear existing goals: %w", err)
	}

	for _, input := range inputs {
		_, err = s.createGoal(user.ID, input)
		if err != nil {
			return err
		}
	}

	return nil
}

// AddGoal creates a single goal for the identity, creating the user row if
// this is their first contact.
func (s *GoalService) AddGoal(externalID string, input GoalInput) (*model.Goal, error) {
	err := validateGoalInput(input)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Ensure(externalID)
	if err != nil {
		return nil, err
	}

	return s.createGoal(user.ID, input)
}

func (s *GoalService) createGoal(userID string, input GoalInput) (*model.Goal, error) {
	now := s.clock.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Description: input.Description,
		Cadence:     input.Cadence,
		Streak:      0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.goals.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	for _, p := range input.Partners {
		// Partners with no contact method are dropped, not rejected.
		if p.Email == "" && p.Phone == "" {
			continue
		}

		partner := &model.AccountabilityPartner{
			ID:        uuid.New().String(),
			GoalID:    goal.ID,
			CreatedAt: now,
		}
		if p.Email != "" {
			email := p.Email
			partner.Email = &email
		}
		if p.Phone != "" {
			phone := p.Phone
			partner.Phone = &phone
		}

		err = s.partners.Create(partner)
		if err != nil {
			// Rollback: remove the half-created goal so a failed submit
			// doesn't leave a goal with a partial partner list.
			delErr := s.goals.Delete(goal.ID)
			if delErr != nil {
				slog.Error("failed to delete goal during rollback", "error", delErr, "goal_id", goal.ID)
			}
			return nil, fmt.Errorf("failed to create partner: %w", err)
		}
	}

	return goal, nil
}

// Goals returns the identity's goals with their partners.
func (s *GoalService) Goals(externalID string) ([]*GoalWithPartners, error) {
	user, err := s.users.ByExternalID(externalID)
	if err != nil {
		return nil, err
	}

	goals, err := s.goals.ByUser(user.ID)
	if err != nil {
		return nil, err
	}

	result := make([]*GoalWithPartners, 0, len(goals))
	for _, goal := range goals {
		partners, err := s.partners.ByGoal(goal.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &GoalWithPartners{Goal: goal, Partners: partners})
	}

	return result, nil
}

// CheckIn records a check-in for the caller's goal. Not-found and
// wrong-owner are distinct failures; checking in twice on one day is a
// successful no-op that re-reports the current streak.
func (s *GoalService) CheckIn(externalID, goalID string) (*CheckInResult, error) {
	user, err := s.users.ByExternalID(externalID)
	if err != nil {
		return nil, err
	}

	goal, err := s.goals.ByID(goalID)
	if err != nil {
		return nil, err
	}

	if goal.UserID != user.ID {
		return nil, ErrNotGoalOwner
	}

	res := streak.Compute(goal.LastCheckInAt, goal.Streak, s.clock.Now())
	if res.Status == streak.AlreadyDone {
		return &CheckInResult{
			Streak:        res.Streak,
			LastCheckInAt: res.CheckedInAt,
			AlreadyDone:   true,
		}, nil
	}

	err = s.goals.UpdateCheckIn(goal.ID, res.Streak, res.CheckedInAt)
	if err != nil {
		return nil, fmt.Errorf("failed to persist check-in: %w", err)
	}

	return &CheckInResult{
		Streak:        res.Streak,
		LastCheckInAt: res.CheckedInAt,
	}, nil
}

// Delete removes the caller's goal and, with it, all its partners.
func (s *GoalService) Delete(externalID, goalID string) error {
	user, err := s.users.ByExternalID(externalID)
	if err != nil {
		return err
	}

	goal, err := s.goals.ByID(goalID)
	if err != nil {
		return err
	}

	if goal.UserID != user.ID {
		return ErrNotGoalOwner
	}

	return s.goals.Delete(goal.ID)
}
