// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested entity does not exist (or is
	// deliberately hidden, e.g. another author's draft).
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (email or slug taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates a missing or invalid credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates a valid identity with insufficient role or ownership.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("validation failed")
)
