package model

import (
	"time"
)

const (
	CadenceDaily  = "daily"
	CadenceWeekly = "weekly"
	CadenceNone   = ""
)

type Goal struct {
	ID            string     `json:"id" db:"id"`
	UserID        string     `json:"userId" db:"user_id"`
	Description   string     `json:"description" db:"description"`
	Cadence       string     `json:"cadence" db:"cadence"`
	Streak        int        `json:"streak" db:"streak"`
	LastCheckInAt *time.Time `json:"lastCheckInAt" db:"last_check_in_at"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}

// HasCadence reports whether the goal expects periodic check-ins.
// A goal without a cadence is never nudged, no matter how stale.
func (g *Goal) HasCadence() bool {
	return g.Cadence != CadenceNone
}
