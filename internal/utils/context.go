// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-waste-tracker/models"
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

var (
	// SubjectIDCtxKey is the key under which the auth middleware stores the
	// authenticated account ID (admin or scanner).
	SubjectIDCtxKey = contextKey("subjectID")

	// RoleCtxKey is the key under which the auth middleware stores the
	// authenticated account role.
	RoleCtxKey = contextKey("role")
)

// WithSubject returns a copy of ctx carrying the authenticated account.
func WithSubject(ctx context.Context, subjectID string, role models.Role) context.Context {
	ctx = context.WithValue(ctx, SubjectIDCtxKey, subjectID)
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetSubjectIDFromContext retrieves the authenticated account ID.
// ok is false when the value is missing, empty or of an unexpected type.
//
// Example usage:
//
//	scannerID, ok := utils.GetSubjectIDFromContext(ctx)
//	if !ok {
//	    // handle missing account in context
//	}
func GetSubjectIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SubjectIDCtxKey).(string)
	return id, ok && id != ""
}

// GetRoleFromContext retrieves the authenticated account role.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}
