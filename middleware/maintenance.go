package middleware

import (
	"net/http"

	"backend/config"

	"github.com/gin-gonic/gin"
)

// MaintenanceMiddleware rejects mutating requests while maintenance mode is
// on. Reads stay available so operators can still inspect the catalog.
func MaintenanceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.GetConfig()

		if !cfg.MaintenanceMode {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"code":             http.StatusServiceUnavailable,
				"message":          "catalog is in maintenance mode, writes are disabled",
				"maintenance_mode": true,
			})
			c.Abort()
		}
	}
}
