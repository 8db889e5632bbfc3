package model

import (
	"time"
)

// User is the local record for an identity issued by the external auth
// provider. ExternalID carries the provider's subject; credentials never
// touch this system.
type User struct {
	ID         string    `json:"id" db:"id"`
	ExternalID string    `json:"externalId" db:"external_id"`
	Onboarded  bool      `json:"onboarded" db:"onboarded"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
