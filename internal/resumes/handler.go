package resumes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/shared/metrics"
	"resumebuilder-backend/internal/shared/server/middleware"
	"resumebuilder-backend/internal/shared/server/respond"
)

const maxUploadSize = 5 << 20 // 5MB

// Handler wires HTTP handlers to the resume service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to an authenticated router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume", h.create)
	rg.GET("/resume", h.list)
	rg.GET("/resume/:id", h.get)
	rg.PUT("/resume/:id", h.update)
	rg.DELETE("/resume/:id", h.remove)
	rg.POST("/resume/:id/upload-images", h.uploadImages)
	rg.GET("/resume/:id/image/:kind", h.image)
}

type createRequest struct {
	Title   string   `json:"title"`
	Content *Content `json:"content"`
}

type updateRequest struct {
	Title   *string  `json:"title"`
	Content *Content `json:"content"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		h.respondError(c, err, "create resume")
		return
	}

	c.Set("resumeId", resume.ID)
	metrics.IncResumeCreated()
	respond.JSON(c, http.StatusCreated, toResponse(resume))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	list, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "list resumes")
		return
	}

	respond.JSON(c, http.StatusOK, toResponses(list))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("resumeId", id)

	resume, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.respondError(c, err, "fetch resume")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(resume))
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("resumeId", id)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Update(c.Request.Context(), userID, id, req.Title, req.Content)
	if err != nil {
		h.respondError(c, err, "update resume")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(resume))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("resumeId", id)

	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		h.respondError(c, err, "delete resume")
		return
	}

	metrics.IncResumeDeleted()
	respond.JSON(c, http.StatusOK, gin.H{})
}

func (h *Handler) uploadImages(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("resumeId", id)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	thumbnail, err := formImage(c, "thumbnail")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read thumbnail", nil)
		return
	}
	profileImage, err := formImage(c, "profileImage")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read profileImage", nil)
		return
	}
	if thumbnail != nil {
		defer thumbnail.close()
	}
	if profileImage != nil {
		defer profileImage.close()
	}

	resume, err := h.Svc.UploadImages(c.Request.Context(), userID, id, thumbnail.upload(), profileImage.upload())
	if err != nil {
		h.respondError(c, err, "upload images")
		return
	}

	metrics.IncImageUpload()
	respond.JSON(c, http.StatusOK, toResponse(resume))
}

func (h *Handler) image(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	kind := c.Param("kind")
	c.Set("resumeId", id)

	rc, err := h.Svc.OpenImage(c.Request.Context(), userID, id, kind)
	if err != nil {
		h.respondError(c, err, "fetch image")
		return
	}
	defer rc.Close()

	// Sniff the content type from the first bytes, then stream the rest.
	var sniff [512]byte
	n, readErr := io.ReadFull(rc, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read image", nil)
		return
	}

	c.Header("Content-Type", http.DetectContentType(sniff[:n]))
	c.Status(http.StatusOK)
	if n > 0 {
		_, _ = c.Writer.Write(sniff[:n])
	}
	_, _ = io.Copy(c.Writer, rc)
}

func (h *Handler) respondError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "you do not own this resume", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to "+action, nil)
	}
}

type formFile struct {
	name string
	file io.ReadCloser
}

// formImage opens an optional multipart file field; a missing field is not an
// error.
func formImage(c *gin.Context, field string) (*formFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &formFile{name: header.Filename, file: f}, nil
}

func (f *formFile) upload() *ImageUpload {
	if f == nil {
		return nil
	}
	return &ImageUpload{FileName: f.name, Reader: f.file}
}

func (f *formFile) close() {
	if f != nil && f.file != nil {
		_ = f.file.Close()
	}
}
