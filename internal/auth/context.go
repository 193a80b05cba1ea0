package auth

import (
	"context"
	"strings"
)

type userIDKey struct{}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the authenticated user id; ok is false when the
// request carries no identity.
func UserIDFromContext(ctx context.Context) (userID string, ok bool) {
	userID, _ = ctx.Value(userIDKey{}).(string)
	return userID, strings.TrimSpace(userID) != ""
}
