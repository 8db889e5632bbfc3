package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"goalnudge/internal/clock"
	"goalnudge/internal/model"
	"goalnudge/internal/repository"
)

// Overdue thresholds are deliberately duration-based while streak math is
// calendar-based; the two policies are independent and must stay that way.
var cadenceWindows = map[string]time.Duration{
	model.CadenceDaily:  24 * time.Hour,
	model.CadenceWeekly: 7 * 24 * time.Hour,
}

// NudgeMailer is the slice of the email transport the sweep needs.
type NudgeMailer interface {
	Enabled() bool
	SendNudgeEmail(ctx context.Context, to, goalDescription, lastCheckInLabel string) error
}

type NudgeService struct {
	goals    repository.GoalRepository
	partners repository.PartnerRepository
	mailer   NudgeMailer
	clock    clock.Clock
}

func NewNudgeService(
	goals repository.GoalRepository,
	partners repository.PartnerRepository,
	mailer NudgeMailer,
	clk clock.Clock,
) *NudgeService {
	return &NudgeService{
		goals:    goals,
		partners: partners,
		mailer:   mailer,
		clock:    clk,
	}
}

// RunSweep makes one full pass over all goals, nudging every overdue goal's
// partners. The sweep is stateless: a goal stays overdue on every tick until
// its owner checks in, so partners are re-notified each run.
//
// A failed dispatch never aborts the sweep. A store failure after some goals
// were processed returns the partial report alongside the error; a failure
// before any goal loads returns only the error.
func (s *NudgeService) RunSweep(ctx context.Context) (*model.SweepReport, error) {
	now := s.clock.Now()

	goals, err := s.goals.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	report := &model.SweepReport{}
	owners := make(map[string]struct{})

	for _, goal := range goals {
		report.GoalsScanned++
		owners[goal.UserID] = struct{}{}
		report.UsersChecked = len(owners)

		if !overdue(goal, now) {
			continue
		}

		partners, err := s.partners.ByGoal(goal.ID)
		if err != nil {
			return report, fmt.Errorf("failed to load partners for goal %s: %w", goal.ID, err)
		}

		// No partners means nobody to tell; not an error.
		if len(partners) == 0 {
			continue
		}

		label := lastCheckInLabel(goal.LastCheckInAt)
		for _, partner := range partners {
			report.Record(s.dispatch(ctx, goal, partner, label))
		}
	}

	slog.Info("nudge sweep completed",
		"goals_scanned", report.GoalsScanned,
		"users_checked", report.UsersChecked,
		"nudges_sent", report.NudgesSent,
	)

	return report, nil
}

func overdue(goal *model.Goal, now time.Time) bool {
	window, ok := cadenceWindows[goal.Cadence]
	if !ok {
		return false
	}
	return goal.LastCheckInAt == nil || goal.LastCheckInAt.Before(now.Add(-window))
}

func lastCheckInLabel(lastCheckIn *time.Time) string {
	if lastCheckIn == nil {
		return "never"
	}
	return lastCheckIn.Format("Monday, January 2")
}
