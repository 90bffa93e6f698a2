// Package common contains shared constants and sentinel errors used across
// TaskDeck components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	//
	// ErrorUnauthorized is deliberately uniform: a failed login never says
	// whether the email or the password was wrong, and a failed token check
	// never says whether the token was expired, tampered or malformed.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorConflict     = errors.New("already exists")

	// Request-decoding errors.
	ErrorValidation = errors.New("validation error")
)
