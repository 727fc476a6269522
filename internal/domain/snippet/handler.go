package snippet

import (
	"errors"
	"net/http"
	"strconv"

	"codexgallery/internal/pkg/response"
	"codexgallery/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

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

// List handles GET /snippets?limit=
func (h *Handler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val > 0 {
			limit = val
		}
	}

	snippets, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch snippets")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"snippets": snippets})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSnippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	sn, err := h.service.Create(c.Request.Context(), CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Code:        req.Code,
		Language:    req.Language,
		Tags:        req.Tags,
		DownloadURL: req.DownloadURL,
	})
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create snippet")
		return
	}

	h.notifier.Broadcast("snippet_created", sn)
	response.Success(c, http.StatusCreated, gin.H{"snippet": sn})
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateSnippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	sn, err := h.service.Update(c.Request.Context(), id, UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Code:        req.Code,
		Language:    req.Language,
		Tags:        req.Tags,
		DownloadURL: req.DownloadURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSnippetNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Snippet not found")
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update snippet")
		}
		return
	}

	h.notifier.Broadcast("snippet_updated", sn)
	response.Success(c, http.StatusOK, gin.H{"snippet": sn})
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrSnippetNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Snippet not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete snippet")
		return
	}

	h.notifier.Broadcast("snippet_deleted", gin.H{"id": id})
	response.Message(c, http.StatusOK, "Snippet deleted successfully")
}
