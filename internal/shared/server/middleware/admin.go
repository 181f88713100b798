package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"hirehand-backend/internal/shared/server/respond"
)

// AdminSecret guards routes behind the X-Admin-Secret header.
// An empty configured secret means admin access is not configured at all.
func AdminSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			respond.Error(c, http.StatusForbidden, "admin_not_configured", "Admin access not configured", nil)
			return
		}
		provided := c.GetHeader("X-Admin-Secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			respond.Error(c, http.StatusForbidden, "forbidden", "Admin secret is invalid", nil)
			return
		}
		c.Next()
	}
}
