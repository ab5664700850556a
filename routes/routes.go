package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nicoxroll/digrazia-bros/cart"
	"github.com/nicoxroll/digrazia-bros/catalog"
	"github.com/nicoxroll/digrazia-bros/gemini"
	"github.com/nicoxroll/digrazia-bros/sales"
	"github.com/nicoxroll/digrazia-bros/settings"
	"gorm.io/gorm"
)

// Deps carries the shared state handlers close over.
type Deps struct {
	DB       *gorm.DB
	Carts    *cart.Store
	Catalog  catalog.Source
	Sales    sales.Ledger
	Gemini   *gemini.Client
	Settings *settings.Store
}

// SetupRoutes is the single entry-point that wires up the storefront,
// concierge, and back-office route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r)

	// 2️⃣ Storefront routes (catalog, cart, checkout)
	SetupShopRoutes(r, deps)

	// 3️⃣ Concierge routes (AI chat widget)
	SetupConciergeRoutes(r, deps)

	// 4️⃣ Admin routes (admin-token protected)
	SetupAdminRoutes(r, deps)
}
