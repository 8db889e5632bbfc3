package model

import (
	"time"
)

// AccountabilityPartner is a contact attached to exactly one goal. The goal
// owns its partner list: deleting the goal deletes the partners with it.
// At least one of Email/Phone must be set for the record to be persisted.
type AccountabilityPartner struct {
	ID        string    `json:"id" db:"id"`
	GoalID    string    `json:"goalId" db:"goal_id"`
	Email     *string   `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (p *AccountabilityPartner) HasEmail() bool {
	return p.Email != nil && *p.Email != ""
}

func (p *AccountabilityPartner) HasPhone() bool {
	return p.Phone != nil && *p.Phone != ""
}

func (p *AccountabilityPartner) HasContact() bool {
	return p.HasEmail() || p.HasPhone()
}
