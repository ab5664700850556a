package conciergeControllers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nicoxroll/digrazia-bros/catalog"
	productControllers "github.com/nicoxroll/digrazia-bros/controllers/product"
	"github.com/nicoxroll/digrazia-bros/gemini"
	"github.com/nicoxroll/digrazia-bros/models"
	"github.com/nicoxroll/digrazia-bros/settings"
)

// fallbackReply is served whenever the concierge has no API key or is
// switched off: a contact message, not an error.
const fallbackReply = "Por favor, contáctanos al siguiente número: **+54 (221) 456-7890** para una atención personalizada."

const unavailableReply = "The concierge is unavailable right now. Please try again."

// imageIntent spots requests that ask for a visual rather than text.
var imageIntent = regexp.MustCompile(`(?i)(generar|crear|hacer|generate|create|draw).*(imagen|image|foto|photo|visual)`)

type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

// respond runs one concierge turn: visual generation when the message
// asks for one, a quick text answer otherwise.
func respond(ctx context.Context, client *gemini.Client, store *settings.Store, message string) (models.ChatMessage, error) {
	if !store.Current().AIEnabled || !client.Configured() {
		return models.ChatMessage{Role: "assistant", Content: fallbackReply}, nil
	}

	if imageIntent.MatchString(message) {
		image, err := client.GenerateVisual(ctx, message, gemini.Size1K)
		if err == nil && image != "" {
			return models.ChatMessage{
				Role:    "assistant",
				Content: "Here is a bespoke visualization based on your request.",
				Image:   image,
			}, nil
		}
		if err != nil && !errors.Is(err, gemini.ErrNotConfigured) {
			return models.ChatMessage{}, err
		}
		// Fall through to a text answer when no image came back.
	}

	reply, err := client.QuickChat(ctx, message)
	if errors.Is(err, gemini.ErrNotConfigured) {
		return models.ChatMessage{Role: "assistant", Content: fallbackReply}, nil
	}
	if err != nil {
		return models.ChatMessage{}, err
	}
	return models.ChatMessage{Role: "assistant", Content: reply}, nil
}

// POST /concierge/chat
func Chat(client *gemini.Client, store *settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ChatInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		msg, err := respond(c.Request.Context(), client, store, input.Message)
		if err != nil {
			log.Printf("❌ Concierge chat failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": unavailableReply})
			return
		}
		c.JSON(http.StatusOK, msg)
	}
}

// POST /concierge/consult
// Deep design consultation on the pro model.
func Consult(client *gemini.Client, store *settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ChatInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !store.Current().AIEnabled || !client.Configured() {
			c.JSON(http.StatusOK, models.ChatMessage{Role: "assistant", Content: fallbackReply})
			return
		}

		reply, err := client.DeepChat(c.Request.Context(), input.Message)
		if errors.Is(err, gemini.ErrNotConfigured) {
			c.JSON(http.StatusOK, models.ChatMessage{Role: "assistant", Content: fallbackReply})
			return
		}
		if err != nil {
			log.Printf("❌ Concierge consult failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": unavailableReply})
			return
		}
		c.JSON(http.StatusOK, models.ChatMessage{Role: "assistant", Content: reply})
	}
}

type VisualizeInput struct {
	RoomImage string `json:"room_image" binding:"required"` // base64, data URL accepted
	ProductID string `json:"product_id" binding:"required"`
	Prompt    string `json:"prompt"`
	Size      string `json:"size"`
}

// POST /concierge/visualize
// Places a catalog piece into a photo of the client's room.
func Visualize(client *gemini.Client, source catalog.Source, store *settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VisualizeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Size != "" && !gemini.ValidSize(input.Size) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Size must be 1K, 2K, or 4K"})
			return
		}

		if !store.Current().AIEnabled || !client.Configured() {
			c.JSON(http.StatusOK, models.ChatMessage{Role: "assistant", Content: fallbackReply})
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

		furnitureB64, err := fetchImageBase64(c.Request.Context(), product.Image)
		if err != nil {
			log.Printf("❌ Failed to fetch product image: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": unavailableReply})
			return
		}

		image, err := client.VisualizeInSpace(c.Request.Context(), input.RoomImage, product.Name, input.Prompt, furnitureB64)
		if err != nil {
			log.Printf("❌ Concierge visualize failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": unavailableReply})
			return
		}
		if image == "" {
			c.JSON(http.StatusBadGateway, gin.H{"error": unavailableReply})
			return
		}

		c.JSON(http.StatusOK, models.ChatMessage{
			Role:    "assistant",
			Content: fmt.Sprintf("Here is the %s placed in your space.", product.Name),
			Image:   image,
		})
	}
}

// fetchImageBase64 loads the product photo and returns it as raw
// base64. Seeded products carry absolute URLs; admin-created ones point
// into the local uploads dir and are read straight from disk.
func fetchImageBase64(ctx context.Context, url string) (string, error) {
	if strings.HasPrefix(url, "/uploads/") {
		return readLocalImageBase64(url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image fetch returned %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func readLocalImageBase64(url string) (string, error) {
	rel := strings.TrimPrefix(url, "/uploads/")
	if rel == "" || strings.Contains(rel, "..") {
		return "", fmt.Errorf("invalid image path %q", url)
	}

	data, err := os.ReadFile(filepath.Join(productControllers.UploadsDir(), filepath.FromSlash(rel)))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
