// Package utils provides general-purpose helper utilities
// used across different parts of the application: context keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated owner identifier
// in the context. It is set only by the session middleware after a token
// has been resolved.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID under [UserIDCtxKey].
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the owner stored by [WithUserID]. ok is false
// when the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
