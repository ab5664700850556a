package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicoxroll/digrazia-bros/settings"
)

// Maintenance answers 503 on public routes while the back-office has
// maintenance mode switched on. Admin routes stay reachable so the
// switch can be turned off again.
func Maintenance(store *settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.Current().MaintenanceMode {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "The studio is briefly closed for maintenance"})
			c.Abort()
			return
		}
		c.Next()
	}
}
