package resumes

import "time"

// Response is the outward-facing representation of a resume.
type Response struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Content         Content   `json:"content"`
	Completion      int       `json:"completion"`
	ThumbnailKey    string    `json:"thumbnailKey,omitempty"`
	ProfileImageKey string    `json:"profileImageKey,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toResponse(r Resume) Response {
	return Response{
		ID:              r.ID,
		Title:           r.Title,
		Content:         r.Content,
		Completion:      r.Completion,
		ThumbnailKey:    r.ThumbnailKey,
		ProfileImageKey: r.ProfileImageKey,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toResponses(list []Resume) []Response {
	out := make([]Response, 0, len(list))
	for _, r := range list {
		out = append(out, toResponse(r))
	}
	return out
}
