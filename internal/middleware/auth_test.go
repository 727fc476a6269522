package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtsvc "codexgallery/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "auth-token"

func gatedRouter(gate gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", gate, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"staff_id": c.GetString("staff_id"),
			"username": c.GetString("staff_username"),
		})
	})
	return r
}

func doRequest(r *gin.Engine, cookieValue string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookieValue})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStaffGateRejectsMissingCookie(t *testing.T) {
	r := gatedRouter(StaffGate(testCookie))

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStaffGateAcceptsAnyCookieValue(t *testing.T) {
	r := gatedRouter(StaffGate(testCookie))

	// Presence-only: even garbage passes. That is the documented policy.
	w := doRequest(r, "not-a-real-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerifiedStaffGateRejectsGarbageToken(t *testing.T) {
	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	r := gatedRouter(VerifiedStaffGate(j, testCookie))

	w := doRequest(r, "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifiedStaffGateRejectsMissingCookie(t *testing.T) {
	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	r := gatedRouter(VerifiedStaffGate(j, testCookie))

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifiedStaffGateAcceptsValidTokenAndSetsIdentity(t *testing.T) {
	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	r := gatedRouter(VerifiedStaffGate(j, testCookie))

	token, err := j.GenerateToken("staff-1", "admin", "staff")
	require.NoError(t, err)

	w := doRequest(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"staff_id":"staff-1"`)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)
}

func TestVerifiedStaffGateRejectsExpiredToken(t *testing.T) {
	issuer := jwtsvc.New("test_secret_key_32_characters_min", -time.Minute)
	verifier := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	r := gatedRouter(VerifiedStaffGate(verifier, testCookie))

	token, err := issuer.GenerateToken("staff-1", "admin", "staff")
	require.NoError(t, err)

	w := doRequest(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
