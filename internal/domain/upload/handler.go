package upload

import (
	"errors"
	"net/http"

	"codexgallery/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler accepts multipart uploads. The gate here is soft: a missing auth
// cookie downgrades the actor to "anonymous" instead of rejecting.
type Handler struct {
	service    *Service
	cookieName string
}

func NewHandler(service *Service, cookieName string) *Handler {
	return &Handler{service: service, cookieName: cookieName}
}

// Upload handles POST /upload with form field "file" (single) or "files".
func (h *Handler) Upload(c *gin.Context) {
	uploadedBy := "anonymous"
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie != "" {
		uploadedBy = "staff"
	}

	if fh, err := c.FormFile("file"); err == nil {
		result, err := h.service.Upload(c.Request.Context(), uploadedBy, fh)
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusCreated, gin.H{"file": result})
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No file provided")
		return
	}

	headers := form.File["files"]
	if err := CheckBatch(headers); err != nil {
		h.writeError(c, err)
		return
	}

	results := make([]*Result, 0, len(headers))
	for _, fh := range headers {
		result, err := h.service.Upload(c.Request.Context(), uploadedBy, fh)
		if err != nil {
			h.writeError(c, err)
			return
		}
		results = append(results, result)
	}

	response.Success(c, http.StatusCreated, gin.H{"files": results})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoFile), errors.Is(err, ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "UPLOAD_FAILED", err.Error())
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "UPLOAD_FAILED", err.Error())
	case errors.Is(err, ErrInvalidMimeType), errors.Is(err, ErrTooManyFiles):
		response.Error(c, http.StatusBadRequest, "UPLOAD_FAILED", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Upload failed")
	}
}
