package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres with JSONB resume content.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, title, content, completion, thumbnail_key, profile_image_key, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	content, err := json.Marshal(resume.Content)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		resume.Title,
		content,
		resume.Completion,
		nullableString(resume.ThumbnailKey),
		nullableString(resume.ProfileImageKey),
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// GetByID fetches a resume by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	const query = `
SELECT id, user_id, title, content, completion, thumbnail_key, profile_image_key, created_at, updated_at
FROM resumes
WHERE id = $1
LIMIT 1`

	var resume Resume
	var content []byte
	var thumbnailKey sql.NullString
	var profileImageKey sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		&content,
		&resume.Completion,
		&thumbnailKey,
		&profileImageKey,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if err := json.Unmarshal(content, &resume.Content); err != nil {
		return Resume{}, fmt.Errorf("unmarshal content: %w", err)
	}
	if thumbnailKey.Valid {
		resume.ThumbnailKey = thumbnailKey.String
	}
	if profileImageKey.Valid {
		resume.ProfileImageKey = profileImageKey.String
	}
	return resume, nil
}

// ListByUser lists a user's resumes newest-first by update time.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, title, content, completion, thumbnail_key, profile_image_key, created_at, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		var resume Resume
		var content []byte
		var thumbnailKey sql.NullString
		var profileImageKey sql.NullString
		if err := rows.Scan(
			&resume.ID,
			&resume.UserID,
			&resume.Title,
			&content,
			&resume.Completion,
			&thumbnailKey,
			&profileImageKey,
			&resume.CreatedAt,
			&resume.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(content, &resume.Content); err != nil {
			return nil, fmt.Errorf("unmarshal content: %w", err)
		}
		if thumbnailKey.Valid {
			resume.ThumbnailKey = thumbnailKey.String
		}
		if profileImageKey.Valid {
			resume.ProfileImageKey = profileImageKey.String
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Update replaces the mutable columns of a stored resume.
func (r *PGRepo) Update(ctx context.Context, resume Resume) error {
	const query = `
UPDATE resumes
SET title = $1, content = $2, completion = $3, thumbnail_key = $4, profile_image_key = $5, updated_at = $6
WHERE id = $7`

	content, err := json.Marshal(resume.Content)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		resume.Title,
		content,
		resume.Completion,
		nullableString(resume.ThumbnailKey),
		nullableString(resume.ProfileImageKey),
		resume.UpdatedAt,
		resume.ID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a resume.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM resumes WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
