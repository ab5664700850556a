package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/nicoxroll/digrazia-bros/controllers/cart"
	checkoutControllers "github.com/nicoxroll/digrazia-bros/controllers/checkout"
	productControllers "github.com/nicoxroll/digrazia-bros/controllers/product"
	"github.com/nicoxroll/digrazia-bros/middleware"
)

// SetupShopRoutes registers the public catalog and the session-scoped
// cart and checkout endpoints.
func SetupShopRoutes(r *gin.Engine, deps Deps) {
	shop := r.Group("/")
	shop.Use(middleware.Maintenance(deps.Settings))
	{
		// ──────────────── Browse the Catalog ────────────────
		shop.GET("/products", productControllers.GetProducts(deps.Catalog))
		shop.GET("/products/:id", productControllers.GetProductByID(deps.Catalog))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := shop.Group("/cart")
		cartGroup.Use(middleware.ValidateSession)
		{
			cartGroup.GET("", cartControllers.GetCart(deps.Carts))
			cartGroup.POST("", cartControllers.AddCartItem(deps.Carts, deps.Catalog))
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(deps.Carts))
			cartGroup.DELETE("/:product_id", cartControllers.RemoveCartItem(deps.Carts))
			cartGroup.DELETE("", cartControllers.ClearCart(deps.Carts))

			// ──────────────── Checkout ────────────────
			cartGroup.GET("/checkout", checkoutControllers.GetCheckout(deps.Carts))
			cartGroup.POST("/checkout", checkoutControllers.SubmitCheckout(deps.Carts))
		}
	}
}
