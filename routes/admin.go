package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/nicoxroll/digrazia-bros/controllers/admin"
	productControllers "github.com/nicoxroll/digrazia-bros/controllers/product"
	"github.com/nicoxroll/digrazia-bros/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an
// admin token.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAdmin)
	{
		// ─────────── Studio Overview ───────────
		adminGroup.GET("/dashboard", adminControllers.GetDashboard(deps.DB))

		// ─────────── Inventory Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(deps.DB))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(deps.DB))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(deps.DB))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(deps.DB))
			productAdmin.POST("/import-excel", productControllers.ImportProductsFromExcel(deps.DB))
		}
		adminGroup.POST("/uploads", productControllers.UploadImage())

		// ─────────── Sales Ledger ───────────
		salesAdmin := adminGroup.Group("/sales")
		{
			salesAdmin.GET("", adminControllers.GetSales(deps.Sales))
			salesAdmin.PUT("/:id/status", adminControllers.UpdateSaleStatus(deps.DB))
			salesAdmin.GET("/export-excel", adminControllers.ExportSalesToExcel(deps.DB))
			salesAdmin.GET("/ws", adminControllers.SalesFeedHandler)
		}

		// ─────────── Studio Configuration ───────────
		adminGroup.GET("/settings", adminControllers.GetSettings(deps.Settings))
		adminGroup.PUT("/settings", adminControllers.UpdateSettings(deps.Settings))
	}
}
