package auth

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"codexgallery/internal/pkg/response"
	"codexgallery/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type CookieSettings struct {
	Name   string
	Path   string
	Secure bool
	MaxAge int
}

type Handler struct {
	service *Service
	cookie  CookieSettings
}

func NewHandler(service *Service, cookie CookieSettings) *Handler {
	return &Handler{service: service, cookie: cookie}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	token, staff, err := h.service.Login(c.Request.Context(), req.Username, req.Password, c.ClientIP())
	if err != nil {
		var locked *LockedError
		if errors.As(err, &locked) {
			retry := int(math.Ceil(locked.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retry))
			response.ErrorWithDetails(c, http.StatusTooManyRequests, "LOCKED", locked.Error(), gin.H{"retryAfterSeconds": retry})
			return
		}
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, h.cookie.Path, "", h.cookie.Secure, true)
	response.Success(c, http.StatusOK, gin.H{"token": token, "staff": staff})
}

// Logout handles POST /auth/logout — clears the cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(h.cookie.Name, "", -1, h.cookie.Path, "", h.cookie.Secure, true)
	response.Message(c, http.StatusOK, "Logged out")
}
