package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goalnudge/internal/model"
	"goalnudge/internal/repository"
	"goalnudge/internal/validation"
)

const testIdentity = "ext-user-1"

func newTestGoalService(now time.Time) (*GoalService, *mockUserRepo, *mockGoalRepo, *mockPartnerRepo) {
	userRepo := newMockUserRepo()
	partnerRepo := newMockPartnerRepo()
	goalRepo := newMockGoalRepo(partnerRepo)
	clk := fixedClock{now: now}
	users := NewUserService(userRepo, clk)
	svc := NewGoalService(users, goalRepo, partnerRepo, clk)
	return svc, userRepo, goalRepo, partnerRepo
}

func mustTime(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAddGoal(t *testing.T) {
	now := mustTime("2026-01-01 10:00")

	t.Run("creates user row on first contact", func(t *testing.T) {
		svc, userRepo, _, _ := newTestGoalService(now)

		goal, err := svc.AddGoal(testIdentity, GoalInput{
			Description: "Run a 10k race before the summer",
			Cadence:     model.CadenceDaily,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, goal.Streak)
		assert.Nil(t, goal.LastCheckInAt)

		user, err := userRepo.ByExternalID(testIdentity)
		require.NoError(t, err)
		assert.True(t, user.Onboarded)
		assert.Equal(t, user.ID, goal.UserID)
	})

	t.Run("filters partners without any contact method", func(t *testing.T) {
		svc, _, _, partnerRepo := newTestGoalService(now)

		goal, err := svc.AddGoal(testIdentity, GoalInput{
			Description: "Write a short story every single week",
			Partners: []PartnerInput{
				{Email: "buddy@example.com"},
				{}, // no contact at all
				{Phone: "+1 555 867 5309"},
			},
		})
		require.NoError(t, err)

		partners, err := partnerRepo.ByGoal(goal.ID)
		require.NoError(t, err)
		assert.Len(t, partners, 2)
	})

	t.Run("rejects invalid input before touching the store", func(t *testing.T) {
		svc, userRepo, goalRepo, _ := newTestGoalService(now)

		cases := []GoalInput{
			{Description: "too short"},
			{Description: "A goal with an unknown cadence value", Cadence: "monthly"},
			{Description: "A goal with a broken partner email", Partners: []PartnerInput{{Email: "nope"}}},
		}

		for _, input := range cases {
			_, err := svc.AddGoal(testIdentity, input)
			var vErr *validation.Error
			require.ErrorAs(t, err, &vErr)
		}

		_, err := userRepo.ByExternalID(testIdentity)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.Empty(t, goalRepo.goals)
	})
}

func TestOnboard(t *testing.T) {
	now := mustTime("2026-01-01 10:00")

	t.Run("replaces the goal set and cascades partner deletion", func(t *testing.T) {
		svc, userRepo, goalRepo, partnerRepo := newTestGoalService(now)

		err := svc.Onboard(testIdentity, []GoalInput{
			{Description: "Meditate for ten minutes every day", Cadence: model.CadenceDaily,
				Partners: []PartnerInput{{Email: "old@example.com"}}},
		})
		require.NoError(t, err)

		user, err := userRepo.ByExternalID(testIdentity)
		require.NoError(t, err)
		oldGoals, err := goalRepo.ByUser(user.ID)
		require.NoError(t, err)
		require.Len(t, oldGoals, 1)
		oldGoalID := oldGoals[0].ID

		// Re-onboarding replaces everything.
		err = svc.Onboard(testIdentity, []GoalInput{
			{Description: "Learn conversational Spanish this year", Cadence: model.CadenceWeekly},
			{Description: "Read twelve books, one for each month"},
		})
		require.NoError(t, err)

		goals, err := goalRepo.ByUser(user.ID)
		require.NoError(t, err)
		assert.Len(t, goals, 2)

		_, err = goalRepo.ByID(oldGoalID)
		assert.ErrorIs(t, err, repository.ErrGoalNotFound)

		orphans, err := partnerRepo.ByGoal(oldGoalID)
		require.NoError(t, err)
		assert.Empty(t, orphans)
	})

	t.Run("rejects empty and oversized goal lists", func(t *testing.T) {
		svc, _, _, _ := newTestGoalService(now)

		var vErr *validation.Error
		require.ErrorAs(t, svc.Onboard(testIdentity, nil), &vErr)

		many := make([]GoalInput, 21)
		for i := range many {
			many[i] = GoalInput{Description: "A perfectly reasonable goal text"}
		}
		require.ErrorAs(t, svc.Onboard(testIdentity, many), &vErr)
	})
}

func TestCheckIn(t *testing.T) {
	seed := func(svc *GoalService, goalRepo *mockGoalRepo, streakCount int, last *time.Time) string {
		goal, err := svc.AddGoal(testIdentity, GoalInput{
			Description: "Practice guitar for twenty minutes",
			Cadence:     model.CadenceDaily,
		})
		if err != nil {
			panic(err)
		}
		stored := goalRepo.goals[goal.ID]
		stored.Streak = streakCount
		stored.LastCheckInAt = last
		return goal.ID
	}

	t.Run("first check-in starts the streak at 1", func(t *testing.T) {
		now := mustTime("2026-01-01 10:00")
		svc, _, goalRepo, _ := newTestGoalService(now)
		goalID := seed(svc, goalRepo, 0, nil)

		res, err := svc.CheckIn(testIdentity, goalID)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Streak)
		assert.False(t, res.AlreadyDone)
		assert.Equal(t, now, res.LastCheckInAt)

		stored, _ := goalRepo.ByID(goalID)
		assert.Equal(t, 1, stored.Streak)
		require.NotNil(t, stored.LastCheckInAt)
		assert.Equal(t, now, *stored.LastCheckInAt)
	})

	t.Run("day-after check-in increments", func(t *testing.T) {
		now := mustTime("2026-01-02 08:00")
		svc, _, goalRepo, _ := newTestGoalService(now)
		goalID := seed(svc, goalRepo, 4, timePtr(mustTime("2026-01-01 10:00")))

		res, err := svc.CheckIn(testIdentity, goalID)
		require.NoError(t, err)
		assert.Equal(t, 5, res.Streak)
	})

	t.Run("gap of two missed days resets to 1", func(t *testing.T) {
		now := mustTime("2026-01-04 10:00")
		svc, _, goalRepo, _ := newTestGoalService(now)
		goalID := seed(svc, goalRepo, 9, timePtr(mustTime("2026-01-01 10:00")))

		res, err := svc.CheckIn(testIdentity, goalID)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Streak)
	})

	t.Run("same-day check-in is a no-op that skips the write", func(t *testing.T) {
		now := mustTime("2026-01-01 18:00")
		svc, _, goalRepo, _ := newTestGoalService(now)
		first := mustTime("2026-01-01 09:00")
		goalID := seed(svc, goalRepo, 3, timePtr(first))

		res, err := svc.CheckIn(testIdentity, goalID)
		require.NoError(t, err)
		assert.True(t, res.AlreadyDone)
		assert.Equal(t, 3, res.Streak)
		assert.Equal(t, first, res.LastCheckInAt)

		// Persisted timestamp untouched.
		stored, _ := goalRepo.ByID(goalID)
		assert.Equal(t, first, *stored.LastCheckInAt)
	})

	t.Run("unknown goal is not-found", func(t *testing.T) {
		now := mustTime("2026-01-01 10:00")
		svc, _, goalRepo, _ := newTestGoalService(now)
		seed(svc, goalRepo, 0, nil)

		_, err := svc.CheckIn(testIdentity, "missing-goal")
		assert.ErrorIs(t, err, repository.ErrGoalNotFound)
	})

	t.Run("someone else's goal is rejected as not-owner, distinct from not-found", func(t *testing.T) {
		now := mustTime("2026-01-01 10:00")
		svc, _, goalRepo, _ := newTestGoalService(now)
		goalID := seed(svc, goalRepo, 0, nil)

		// Second identity gets a user row of their own.
		_, err := svc.AddGoal("ext-user-2", GoalInput{Description: "Swim twice a week at the local pool"})
		require.NoError(t, err)

		_, err = svc.CheckIn("ext-user-2", goalID)
		assert.ErrorIs(t, err, ErrNotGoalOwner)

		stored, _ := goalRepo.ByID(goalID)
		assert.Equal(t, 0, stored.Streak)
	})

	t.Run("identity with no user record is user-not-found", func(t *testing.T) {
		now := mustTime("2026-01-01 10:00")
		svc, _, _, _ := newTestGoalService(now)

		_, err := svc.CheckIn("ext-nobody", "whatever")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestDeleteGoal(t *testing.T) {
	now := mustTime("2026-01-01 10:00")
	svc, _, goalRepo, partnerRepo := newTestGoalService(now)

	goal, err := svc.AddGoal(testIdentity, GoalInput{
		Description: "Volunteer one weekend every month",
		Partners:    []PartnerInput{{Email: "buddy@example.com"}},
	})
	require.NoError(t, err)

	_, err = svc.AddGoal("ext-user-2", GoalInput{Description: "A goal belonging to somebody else"})
	require.NoError(t, err)

	err = svc.Delete("ext-user-2", goal.ID)
	assert.ErrorIs(t, err, ErrNotGoalOwner)

	err = svc.Delete(testIdentity, goal.ID)
	require.NoError(t, err)

	_, err = goalRepo.ByID(goal.ID)
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)

	partners, err := partnerRepo.ByGoal(goal.ID)
	require.NoError(t, err)
	assert.Empty(t, partners)
}
