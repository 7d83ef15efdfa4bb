// Package utils holds small helpers shared across the application: the
// legacy password checksum, JWT generation and validation, typed context
// keys, avatar URL derivation, JSON response writing, and the outbound HTTP
// client.
package utils

import (
	"context"
)

// contextKey keeps this package's context keys in their own type so they
// cannot collide with string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is where the auth middleware stores the authenticated user's
// identifier. Read it back with [GetUserIDFromContext].
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user ID stored under [UserIDCtxKey].
// ok is false when the value is absent or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
