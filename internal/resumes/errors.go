package resumes

import "errors"

var (
	// ErrNotFound indicates no resume matches the lookup.
	ErrNotFound = errors.New("resume not found")

	// ErrForbidden indicates the resume exists but belongs to another user.
	ErrForbidden = errors.New("not the resume owner")

	// ErrInvalidInput indicates user-correctable malformed input.
	ErrInvalidInput = errors.New("invalid input")
)
