package file

import (
	"errors"
	"net/http"

	"codexgallery/internal/pkg/response"
	"codexgallery/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Notifier pushes record lifecycle events to dashboard clients.
type Notifier interface {
	Broadcast(event string, payload any)
}

type noopNotifier struct{}

func (noopNotifier) Broadcast(string, any) {}

type Handler struct {
	service  *Service
	notifier Notifier
}

func NewHandler(service *Service, notifier Notifier) *Handler {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Handler{service: service, notifier: notifier}
}

// List handles GET /files. Also mounted under the staff group — same data,
// stricter gate.
func (h *Handler) List(c *gin.Context) {
	files, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch files")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"files": files})
}

// Create handles POST /files — records metadata for an already-uploaded file.
func (h *Handler) Create(c *gin.Context) {
	var req CreateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	uploadedBy := "staff"
	if actor := c.GetString("staff_username"); actor != "" {
		uploadedBy = actor
	}

	created, err := h.service.Create(c.Request.Context(), CreateInput{
		Filename:     req.Filename,
		OriginalName: req.OriginalName,
		FileURL:      req.FileURL,
		FileType:     req.FileType,
		MimeType:     req.MimeType,
		FileSize:     *req.FileSize,
		ThumbnailURL: req.ThumbnailURL,
		UploadedBy:   uploadedBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateFilename):
			response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
		case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidFileType), errors.Is(err, ErrInvalidFileSize):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create file")
		}
		return
	}

	h.notifier.Broadcast("file_uploaded", created)
	response.Success(c, http.StatusCreated, gin.H{"file": created})
}

// Delete handles DELETE /files?id=
func (h *Handler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File ID required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrFileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "File not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete file")
		return
	}

	h.notifier.Broadcast("file_deleted", gin.H{"id": id})
	response.Message(c, http.StatusOK, "File deleted successfully")
}

// ServeCDN handles GET /cdn/:id — the public fetch that counts a download.
func (h *Handler) ServeCDN(c *gin.Context) {
	id := c.Param("id")

	f, err := h.service.GetAndRecordDownload(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "File not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch file")
		return
	}

	h.notifier.Broadcast("file_downloaded", gin.H{"id": f.ID, "filename": f.Filename})
	response.Success(c, http.StatusOK, gin.H{"file": f})
}
