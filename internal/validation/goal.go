package validation

import (
	"fmt"

	"goalnudge/internal/model"
)

const (
	MinGoalLength      = 10
	MaxGoalLength      = 200
	MaxPartnersPerGoal = 10
	MinOnboardingGoals = 1
	MaxOnboardingGoals = 20
)

func ValidateGoalDescription(description string) error {
	if len(description) < MinGoalLength {
		return failed("description", fmt.Sprintf("Goal must be at least %d characters", MinGoalLength))
	}

	if len(description) > MaxGoalLength {
		return failed("description", fmt.Sprintf("Goal must be at most %d characters", MaxGoalLength))
	}

	return nil
}

func ValidateCadence(cadence string) error {
	switch cadence {
	case model.CadenceDaily, model.CadenceWeekly, model.CadenceNone:
		return nil
	}
	return failed("cadence", "Reminder cadence must be daily, weekly, or empty")
}

func ValidatePartnerCount(count int) error {
	if count > MaxPartnersPerGoal {
		return failed("accountabilityPartners", fmt.Sprintf("Maximum %d partners per goal", MaxPartnersPerGoal))
	}
	return nil
}

func ValidateOnboardingGoalCount(count int) error {
	if count < MinOnboardingGoals {
		return failed("goals", "At least one goal is required")
	}

	if count > MaxOnboardingGoals {
		return failed("goals", fmt.Sprintf("Maximum %d goals", MaxOnboardingGoals))
	}

	return nil
}
