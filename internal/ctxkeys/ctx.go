package ctxkeys

import (
	"context"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	IdentityKey contextKey = "identity"
)

// Identity returns the external identity id of the authenticated caller,
// or "" when the request carried no valid token.
func Identity(ctx context.Context) string {
	id, _ := ctx.Value(IdentityKey).(string)
	return id
}

func WithIdentity(ctx context.Context, externalID string) context.Context {
	return context.WithValue(ctx, IdentityKey, externalID)
}
