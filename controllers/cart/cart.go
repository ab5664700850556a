package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicoxroll/digrazia-bros/cart"
	"github.com/nicoxroll/digrazia-bros/catalog"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type QuantityInput struct {
	// Pointer so an explicit 0 binds; 0 and below remove the line.
	Quantity *int `json:"quantity" binding:"required"`
}

func sessionID(c *gin.Context) (string, bool) {
	val, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return val.(string), true
}

func cartJSON(snap cart.Snapshot, openCart bool) gin.H {
	lines := snap.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	return gin.H{
		"lines":     lines,
		"count":     snap.Count,
		"subtotal":  snap.Subtotal,
		"open_cart": openCart,
	}
}

// GET /cart
func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartJSON(store.Snapshot(sid), false))
	}
}

// POST /cart
// Adds one unit of the product. The open_cart flag in the response asks
// the storefront to slide the cart panel open.
func AddCartItem(store *cart.Store, source catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := source.Get(c.Request.Context(), input.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var snap cart.Snapshot
		store.With(sid, func(ct *cart.Cart) {
			ct.AddItem(product)
			snap = ct.Snapshot()
		})
		c.JSON(http.StatusCreated, cartJSON(snap, true))
	}
}

// PUT /cart/:product_id
func UpdateCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var snap cart.Snapshot
		store.With(sid, func(ct *cart.Cart) {
			ct.SetQuantity(c.Param("product_id"), *input.Quantity)
			snap = ct.Snapshot()
		})
		c.JSON(http.StatusOK, cartJSON(snap, false))
	}
}

// DELETE /cart/:product_id
func RemoveCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var snap cart.Snapshot
		store.With(sid, func(ct *cart.Cart) {
			ct.SetQuantity(c.Param("product_id"), 0)
			snap = ct.Snapshot()
		})
		c.JSON(http.StatusOK, cartJSON(snap, false))
	}
}

// DELETE /cart
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var snap cart.Snapshot
		store.With(sid, func(ct *cart.Cart) {
			ct.Clear()
			snap = ct.Snapshot()
		})
		c.JSON(http.StatusOK, cartJSON(snap, false))
	}
}
