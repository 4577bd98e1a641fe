package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reputaai/reputaai/internal/shared/utils"
)

// CronSecret gates the scheduled-trigger endpoints behind a shared secret
// passed as a query parameter. An empty configured secret disables the
// endpoint entirely.
func CronSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			utils.ErrorResponse(c, http.StatusNotFound, "not found")
			c.Abort()
			return
		}

		provided := c.Query("secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid cron secret")
			c.Abort()
			return
		}

		c.Next()
	}
}
