// Package errors defines the error taxonomy shared by all features.
// Handlers return these sentinels and the web layer maps them to HTTP
// statuses; anything unclassified surfaces as an internal error.
package errors

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// 401
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrUnknownUser     = errors.New("token subject no longer exists")

	// 403
	ErrForbidden = errors.New("forbidden")

	// 404
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")

	// 400
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrBadRequestBody    = errors.New("malformed request body")

	// 409
	ErrUserAlreadyExists = errors.New("user already exists")

	// 401 on login
	ErrWrongLoginOrPassword = errors.New("wrong login or password")

	// 500
	ErrGetHashedPassword = errors.New("failed to hash password")
	ErrDb                = errors.New("database error")
)

// ValidationError carries every violated field constraint, not just the
// first one.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}
