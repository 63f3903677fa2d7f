package services

import "errors"

var (
	// ErrNotFound is a logical miss: the lookup ran fine but no record
	// matched. Distinct from a transport-level client.RemoteError.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail rejects a signup whose email exactly matches an
	// existing user record.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrLikeNotFound means an unlike found no matching like row. Callers
	// treat it as a benign no-op, not a user-facing failure.
	ErrLikeNotFound = errors.New("like not found")

	// ErrInvalidCredentials means login matched no user for the given
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidInput marks malformed request data caught below binding,
	// e.g. an unparseable date.
	ErrInvalidInput = errors.New("invalid input")
)
