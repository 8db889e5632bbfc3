package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"goalnudge/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(goalID string) (*model.Goal, error)
	ByUser(userID string) ([]*model.Goal, error)
	// All is a full scan across every owner; used only by the nudge sweep.
	All() ([]*model.Goal, error)
	UpdateCheckIn(goalID string, streak int, lastCheckInAt time.Time) error
	// Delete removes the goal and its partners in one transaction.
	Delete(goalID string) error
	// DeleteByUser removes all of a user's goals and their partners in one
	// transaction; used when re-onboarding replaces the goal set wholesale.
	DeleteByUser(userID string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, user_id, description, cadence, streak, last_check_in_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserID,
		goal.Description,
		goal.Cadence,
		goal.Streak,
		goal.LastCheckInAt,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

func (r *goalRepository) ByID(goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1`

	err := r.db.Get(goal, query, goalID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) ByUser(userID string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE user_id = $1 ORDER BY created_at ASC`

	err := r.db.Select(&goals, query, userID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) All() ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals ORDER BY user_id, created_at ASC`

	err := r.db.Select(&goals, query)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) UpdateCheckIn(goalID string, streak int, lastCheckInAt time.Time) error {
	query := `UPDATE goals
	          SET streak = $1, last_check_in_at = $2, updated_at = $3
	          WHERE id = $4`

	result, err := r.db.Exec(query, streak, lastCheckInAt, time.Now(), goalID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) Delete(goalID string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM accountability_partners WHERE goal_id = $1`, goalID)
	if err != nil {
		return err
	}

	result, err := tx.Exec(`DELETE FROM goals WHERE id = $1`, goalID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return tx.Commit()
}

func (r *goalRepository) DeleteByUser(userID string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM accountability_partners
	                  WHERE goal_id IN (SELECT id FROM goals WHERE user_id = $1)`, userID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`DELETE FROM goals WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}

	return tx.Commit()
}
