// Package auth provides password hashing, API key generation and the
// authenticated-caller request context.
package auth

import (
	"context"

	"github.com/formbox/formbox/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// callerContextKey is the context key for the authenticated caller.
const callerContextKey contextKey = "caller"

// ContextWithCaller stores the authenticated user in the context.
func ContextWithCaller(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, callerContextKey, user)
}

// CallerFromContext retrieves the authenticated user from the context.
// Returns nil if the request was not gated.
func CallerFromContext(ctx context.Context) *model.User {
	user, ok := ctx.Value(callerContextKey).(*model.User)
	if !ok {
		return nil
	}
	return user
}

// CallerEmailFromContext returns the authenticated caller's email, or
// an empty string when unauthenticated.
func CallerEmailFromContext(ctx context.Context) string {
	user := CallerFromContext(ctx)
	if user == nil {
		return ""
	}
	return user.Email
}
