package checkoutControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nicoxroll/digrazia-bros/cart"
	adminControllers "github.com/nicoxroll/digrazia-bros/controllers/admin"
)

// ShippingCost is the flat concierge delivery fee added to every order.
const ShippingCost = 150.0

type ShippingInput struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
}

func sessionID(c *gin.Context) (string, bool) {
	val, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return val.(string), true
}

// generateOrderRef builds a reference like 20250908130500-<uuid4>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// GET /cart/checkout
// Returns the snapshot checkout renders from. The empty flag is the
// "basket is empty" display state.
func GetCheckout(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		snap := store.Snapshot(sid)
		if snap.Count == 0 {
			c.JSON(http.StatusOK, gin.H{"empty": true})
			return
		}

		lines := snap.Lines
		c.JSON(http.StatusOK, gin.H{
			"empty":    false,
			"lines":    lines,
			"subtotal": snap.Subtotal,
			"shipping": ShippingCost,
			"total":    snap.Subtotal + ShippingCost,
		})
	}
}

// POST /cart/checkout
// Completing checkout clears the cart and answers the confirmation
// step. No order row is written; the back-office sales feed gets a
// live event instead.
func SubmitCheckout(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var input ShippingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var snap cart.Snapshot
		store.With(sid, func(ct *cart.Cart) {
			snap = ct.Snapshot()
			if snap.Count == 0 {
				return
			}
			ct.Clear()
		})

		if snap.Count == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Your basket is empty"})
			return
		}

		orderRef := generateOrderRef()
		total := snap.Subtotal + ShippingCost

		adminControllers.BroadcastCheckout(adminControllers.CheckoutEvent{
			OrderRef: orderRef,
			Customer: input.FirstName + " " + input.LastName,
			Count:    snap.Count,
			Total:    total,
			PlacedAt: time.Now(),
		})

		c.JSON(http.StatusOK, gin.H{
			"step":      "confirmation",
			"order_ref": orderRef,
			"subtotal":  snap.Subtotal,
			"shipping":  ShippingCost,
			"total":     total,
		})
	}
}
