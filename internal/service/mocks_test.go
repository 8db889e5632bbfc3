package service

import (
	"context"
	"time"

	"goalnudge/internal/model"
	"goalnudge/internal/repository"
)

// In-memory fakes for the repository interfaces and the email transport.
// Error fields let tests simulate store and transport failures.

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type mockUserRepo struct {
	users map[string]*model.User // keyed by id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(user *model.User) error {
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) ByID(id string) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	result := *user
	return &result, nil
}

func (m *mockUserRepo) ByExternalID(externalID string) (*model.User, error) {
	for _, user := range m.users {
		if user.ExternalID == externalID {
			result := *user
			return &result, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepo) SetOnboarded(id string, onboarded bool) error {
	user, ok := m.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Onboarded = onboarded
	return nil
}

type mockGoalRepo struct {
	goals    map[string]*model.Goal
	partners *mockPartnerRepo // for cascade deletes
	allErr   error
	allCalls int
}

func newMockGoalRepo(partners *mockPartnerRepo) *mockGoalRepo {
	return &mockGoalRepo{
		goals:    make(map[string]*model.Goal),
		partners: partners,
	}
}

func (m *mockGoalRepo) Create(goal *model.Goal) error {
	stored := *goal
	m.goals[goal.ID] = &stored
	return nil
}

func (m *mockGoalRepo) ByID(goalID string) (*model.Goal, error) {
	goal, ok := m.goals[goalID]
	if !ok {
		return nil, repository.ErrGoalNotFound
	}
	result := *goal
	return &result, nil
}

func (m *mockGoalRepo) ByUser(userID string) ([]*model.Goal, error) {
	var result []*model.Goal
	for _, goal := range m.goals {
		if goal.UserID == userID {
			g := *goal
			result = append(result, &g)
		}
	}
	return result, nil
}

func (m *mockGoalRepo) All() ([]*model.Goal, error) {
	m.allCalls++
	if m.allErr != nil {
		return nil, m.allErr
	}
	result := make([]*model.Goal, 0, len(m.goals))
	for _, goal := range m.goals {
		g := *goal
		result = append(result, &g)
	}
	return result, nil
}

func (m *mockGoalRepo) UpdateCheckIn(goalID string, streak int, lastCheckInAt time.Time) error {
	goal, ok := m.goals[goalID]
	if !ok {
		return repository.ErrGoalNotFound
	}
	goal.Streak = streak
	t := lastCheckInAt
	goal.LastCheckInAt = &t
	return nil
}

func (m *mockGoalRepo) Delete(goalID string) error {
	if _, ok := m.goals[goalID]; !ok {
		return repository.ErrGoalNotFound
	}
	m.partners.deleteByGoal(goalID)
	delete(m.goals, goalID)
	return nil
}

func (m *mockGoalRepo) DeleteByUser(userID string) error {
	for id, goal := range m.goals {
		if goal.UserID == userID {
			m.partners.deleteByGoal(id)
			delete(m.goals, id)
		}
	}
	return nil
}

type mockPartnerRepo struct {
	partners  map[string][]*model.AccountabilityPartner // keyed by goal id
	byGoalErr map[string]error
}

func newMockPartnerRepo() *mockPartnerRepo {
	return &mockPartnerRepo{
		partners:  make(map[string][]*model.AccountabilityPartner),
		byGoalErr: make(map[string]error),
	}
}

func (m *mockPartnerRepo) Create(partner *model.AccountabilityPartner) error {
	stored := *partner
	m.partners[partner.GoalID] = append(m.partners[partner.GoalID], &stored)
	return nil
}

func (m *mockPartnerRepo) ByGoal(goalID string) ([]*model.AccountabilityPartner, error) {
	if err := m.byGoalErr[goalID]; err != nil {
		return nil, err
	}
	return m.partners[goalID], nil
}

func (m *mockPartnerRepo) deleteByGoal(goalID string) {
	delete(m.partners, goalID)
}

type fakeMailer struct {
	enabled bool
	sendErr error
	sent    []sentNudge
}

type sentNudge struct {
	to          string
	description string
	label       string
}

func (f *fakeMailer) Enabled() bool { return f.enabled }

func (f *fakeMailer) SendNudgeEmail(_ context.Context, to, goalDescription, lastCheckInLabel string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentNudge{to: to, description: goalDescription, label: lastCheckInLabel})
	return nil
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
