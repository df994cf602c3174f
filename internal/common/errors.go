// Package common defines shared constants and sentinel errors used across
// the miniter server and client. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrPostTooLong = errors.New("post text exceeds maximum length")

	// Auth errors. The HTTP guard collapses all of these into one
	// unauthorized response; the distinction exists for logging only.
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")

	// ErrCorruptPasswordHash marks a stored hash that bcrypt cannot parse.
	// Data corruption, not a failed login.
	ErrCorruptPasswordHash = errors.New("corrupt password hash")
)
