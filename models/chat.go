package models

// ChatMessage is one entry of a concierge conversation. History is
// append-only and held by the client; the server keeps no transcript.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
	Image   string `json:"image,omitempty"` // base64 data URL for generated visuals
}
