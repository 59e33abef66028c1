package resumes

import "context"

// Repo defines persistence operations for resumes. The repository is
// ownership-agnostic storage: callers perform the owner check before any
// operation that takes a bare resume ID.
type Repo interface {
	Create(ctx context.Context, r Resume) error
	GetByID(ctx context.Context, id string) (Resume, error)
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	Update(ctx context.Context, r Resume) error
	Delete(ctx context.Context, id string) error
}
