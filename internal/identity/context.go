package identity

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const userKey contextKey = "adminnav.user"

// WithUser attaches the authenticated user id to a request context.
func WithUser(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userKey, userID)
}

// UserFromContext extracts the authenticated user id. The boolean is false
// when no user is attached or the id is nil.
func UserFromContext(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	userID, ok := ctx.Value(userKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
