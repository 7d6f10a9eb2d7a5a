// Package common defines shared sentinel errors used across the game cart
// server. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation error")

	// Catalog client errors.
	ErrUpstream = errors.New("upstream failure")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
