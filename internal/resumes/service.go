package resumes

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumebuilder-backend/internal/shared/storage/object"
)

// Image kinds accepted by UploadImages and OpenImage.
const (
	ImageKindThumbnail = "thumbnail"
	ImageKindProfile   = "profile"
)

// ImageUpload is a single image file being attached to a resume.
type ImageUpload struct {
	FileName string
	Reader   io.Reader
}

// Service contains business logic for resumes. Every operation that takes a
// resume ID goes through the authorize guard before touching the repository.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
}

// NewService constructs a Service.
func NewService(repo Repo, store object.ObjectStore) *Service {
	return &Service{Repo: repo, Store: store}
}

// Create stores a new resume owned by the given user.
func (s *Service) Create(ctx context.Context, userID, title string, content *Content) (Resume, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Resume{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	var body Content
	if content != nil {
		body = *content
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      title,
		Content:    body,
		Completion: completionPercent(body),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// List returns the user's resumes.
func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns a resume after verifying ownership.
func (s *Service) Get(ctx context.Context, userID, id string) (Resume, error) {
	return s.authorize(ctx, userID, id)
}

// Update applies title and content changes after verifying ownership, and
// recomputes the completion percentage.
func (s *Service) Update(ctx context.Context, userID, id string, title *string, content *Content) (Resume, error) {
	resume, err := s.authorize(ctx, userID, id)
	if err != nil {
		return Resume{}, err
	}

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return Resume{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		resume.Title = trimmed
	}
	if content != nil {
		resume.Content = *content
	}
	resume.Completion = completionPercent(resume.Content)
	resume.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Delete removes a resume after verifying ownership.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.authorize(ctx, userID, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

// UploadImages saves the provided thumbnail and/or profile image to the
// object store and records their storage keys on the resume.
func (s *Service) UploadImages(ctx context.Context, userID, id string, thumbnail, profileImage *ImageUpload) (Resume, error) {
	resume, err := s.authorize(ctx, userID, id)
	if err != nil {
		return Resume{}, err
	}
	if thumbnail == nil && profileImage == nil {
		return Resume{}, fmt.Errorf("%w: at least one image is required", ErrInvalidInput)
	}

	if thumbnail != nil {
		key, _, _, err := s.Store.Save(ctx, userID, thumbnail.FileName, thumbnail.Reader)
		if err != nil {
			return Resume{}, fmt.Errorf("save thumbnail: %w", err)
		}
		resume.ThumbnailKey = key
	}
	if profileImage != nil {
		key, _, _, err := s.Store.Save(ctx, userID, profileImage.FileName, profileImage.Reader)
		if err != nil {
			return Resume{}, fmt.Errorf("save profile image: %w", err)
		}
		resume.ProfileImageKey = key
	}

	resume.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// OpenImage streams a previously uploaded image after verifying ownership.
func (s *Service) OpenImage(ctx context.Context, userID, id, kind string) (io.ReadCloser, error) {
	resume, err := s.authorize(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	var key string
	switch kind {
	case ImageKindThumbnail:
		key = resume.ThumbnailKey
	case ImageKindProfile:
		key = resume.ProfileImageKey
	default:
		return nil, fmt.Errorf("%w: unknown image kind %q", ErrInvalidInput, kind)
	}
	if key == "" {
		return nil, ErrNotFound
	}
	return s.Store.Open(ctx, key)
}

// authorize loads the resume and verifies the caller owns it: ErrForbidden
// when it exists under another owner, ErrNotFound otherwise.
func (s *Service) authorize(ctx context.Context, userID, id string) (Resume, error) {
	if strings.TrimSpace(id) == "" {
		return Resume{}, fmt.Errorf("%w: resume id is required", ErrInvalidInput)
	}
	resume, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Resume{}, err
	}
	if resume.UserID != userID {
		return Resume{}, ErrForbidden
	}
	return resume, nil
}
