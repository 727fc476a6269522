package middleware

import (
	"net/http"

	jwtsvc "codexgallery/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// StaffGate only checks that the auth cookie exists. This is the documented
// placeholder policy: the token value is not inspected. Use
// VerifiedStaffGate anywhere the identity actually matters.
func StaffGate(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(cookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Please login as staff",
				},
			})
			return
		}

		c.Next()
	}
}

// VerifiedStaffGate validates the cookie as a signed token and puts the
// staff identity into the request context.
func VerifiedStaffGate(jwt *jwtsvc.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(cookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Please login as staff",
				},
			})
			return
		}

		claims, err := jwt.ValidateToken(cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid or expired session",
				},
			})
			return
		}

		c.Set("staff_id", claims.StaffID)
		c.Set("staff_username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}
