package auth

import "errors"

var (
	// ErrNotFound indicates no user record matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput indicates user-correctable malformed input.
	ErrInvalidInput = errors.New("invalid input")
)
