// Package utils provides general-purpose helper utilities
// used across different parts of the agent.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, device-token claim
// parsing, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OriginCtxKey is the key used to store the origin of a queue operation in
// the context ("http" for facade calls, "tui" for the status screen).
// Manual requeue and discard actions are logged with their origin so an
// operator can later tell which surface touched a failed entry.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.OriginCtxKey, "tui")
var OriginCtxKey = contextKey("origin")

// GetOriginFromContext retrieves the operation origin from the context.
//
// Returns the origin string and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetOriginFromContext(ctx context.Context) (string, bool) {
	origin, ok := ctx.Value(OriginCtxKey).(string)
	return origin, ok
}
