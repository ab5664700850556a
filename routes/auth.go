package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nicoxroll/digrazia-bros/auth"
)

// SetupAuthRoutes registers session and admin login endpoints.
func SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/session", auth.CreateSession())
		authGroup.POST("/admin/login", auth.AdminLogin())
	}
}
