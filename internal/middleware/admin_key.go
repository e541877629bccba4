package middleware

import (
	"net/http"

	"github.com/SscSPs/rental_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

// AdminKeyHeader carries the administrative API key.
const AdminKeyHeader = "X-Admin-Key"

// RequireAdminKey guards administrative routes (raw ledger row create/delete).
// The configured value is a bcrypt hash; an empty hash disables the routes entirely.
func RequireAdminKey(adminKeyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if adminKeyHash == "" {
			logger.Warn("Admin route called but no admin key is configured")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Administrative operations are disabled"})
			return
		}

		key := c.GetHeader(AdminKeyHeader)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin key required"})
			return
		}
		if !utils.CheckAdminKey(key, adminKeyHash) {
			logger.Warn("Admin key rejected")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid admin key"})
			return
		}

		c.Next()
	}
}
