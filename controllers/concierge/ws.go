package conciergeControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/nicoxroll/digrazia-bros/gemini"
	"github.com/nicoxroll/digrazia-bros/models"
	"github.com/nicoxroll/digrazia-bros/settings"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /concierge/ws
// Live chat session: each client frame is a user message, each server
// frame the concierge's reply. History stays on the client.
func ChatSocket(client *gemini.Client, store *settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			var msg models.ChatMessage
			if err := conn.ReadJSON(&msg); err != nil {
				break
			}
			if msg.Content == "" {
				continue
			}

			reply, err := respond(c.Request.Context(), client, store, msg.Content)
			if err != nil {
				reply = models.ChatMessage{Role: "assistant", Content: unavailableReply}
			}
			if err := conn.WriteJSON(reply); err != nil {
				break
			}
		}
	}
}
