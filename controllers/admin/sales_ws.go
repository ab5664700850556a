package adminControllers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// CheckoutEvent is pushed to connected back-office clients whenever a
// visitor completes checkout. Nothing is persisted; the feed is the
// only trace of the simulated order.
type CheckoutEvent struct {
	OrderRef string    `json:"order_ref"`
	Customer string    `json:"customer"`
	Count    int       `json:"count"`
	Total    float64   `json:"total"`
	PlacedAt time.Time `json:"placed_at"`
}

// GET /admin/sales/ws
func SalesFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

// BroadcastCheckout fans a checkout event out to every connected client.
func BroadcastCheckout(event CheckoutEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
