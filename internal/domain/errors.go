package domain

import "errors"

// Sentinel errors translated into HTTP statuses at the API boundary.
var (
	// ErrNotFound means no post matched the requested id or slug.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials means the username/password pair did not
	// match a stored account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated means no session credential was presented.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidToken means the session credential failed signature or
	// expiry verification.
	ErrInvalidToken = errors.New("invalid or expired token")
)
