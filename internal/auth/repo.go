package auth

import "context"

// Repo defines persistence operations for users. Email uniqueness is enforced
// by the store itself, not by callers: concurrent registrations with the same
// email must resolve to exactly one winner.
type Repo interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}
