package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"

	modelQuick  = "gemini-3-flash-preview"
	modelDeep   = "gemini-3-pro-preview"
	modelVisual = "gemini-3-pro-image-preview"

	quickInstruction = "You are a helpful and quick assistant for Digrazia Brothers, a luxury furniture store. Keep answers concise and elegant. Use Markdown for formatting."
	deepInstruction  = "You are an expert interior designer and furniture specialist for Digrazia Brothers. Provide deep insights, material details, and styling advice. Use your thinking capacity for complex design queries. Use Markdown for formatting."

	deepThinkingBudget = 32768
)

// ErrNotConfigured marks the "no API key" state. Callers degrade to a
// canned response instead of surfacing it to the visitor.
var ErrNotConfigured = errors.New("gemini: API key not configured")

// ImageSize is the output resolution for generated visuals.
type ImageSize string

const (
	Size1K ImageSize = "1K"
	Size2K ImageSize = "2K"
	Size4K ImageSize = "4K"
)

// ValidSize reports whether s is an accepted visual resolution.
func ValidSize(s string) bool {
	switch ImageSize(s) {
	case Size1K, Size2K, Size4K:
		return true
	}
	return false
}

// Client talks to the Generative Language API over plain HTTP.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewFromEnv builds a client from GEMINI_API_KEY. The client is still
// usable with an empty key; every call then returns ErrNotConfigured.
func NewFromEnv() *Client {
	return New(os.Getenv("GEMINI_API_KEY"), defaultBaseURL)
}

func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// -------- Wire types --------

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type content struct {
	Parts []part `json:"parts"`
}

type thinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio"`
	ImageSize   string `json:"imageSize"`
}

type generationConfig struct {
	ThinkingConfig *thinkingConfig `json:"thinkingConfig,omitempty"`
	ImageConfig    *imageConfig    `json:"imageConfig,omitempty"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// generate posts a generateContent request and returns the first candidate.
func (c *Client) generate(ctx context.Context, model string, req generateRequest) (*generateResponse, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Gemini: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, string(body))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse Gemini response: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("gemini error: %s", out.Error.Message)
	}
	return &out, nil
}

func (r *generateResponse) text() string {
	var b strings.Builder
	for _, cand := range r.Candidates {
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

func (r *generateResponse) image() string {
	for _, cand := range r.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return "data:image/png;base64," + p.InlineData.Data
			}
		}
	}
	return ""
}

// QuickChat returns a fast markdown answer from the flash model.
func (c *Client) QuickChat(ctx context.Context, prompt string) (string, error) {
	resp, err := c.generate(ctx, modelQuick, generateRequest{
		Contents:          []content{{Parts: []part{{Text: prompt}}}},
		SystemInstruction: &content{Parts: []part{{Text: quickInstruction}}},
	})
	if err != nil {
		return "", err
	}
	return resp.text(), nil
}

// DeepChat answers complex design queries with the pro model and a
// generous thinking budget.
func (c *Client) DeepChat(ctx context.Context, prompt string) (string, error) {
	resp, err := c.generate(ctx, modelDeep, generateRequest{
		Contents:          []content{{Parts: []part{{Text: prompt}}}},
		SystemInstruction: &content{Parts: []part{{Text: deepInstruction}}},
		GenerationConfig:  &generationConfig{ThinkingConfig: &thinkingConfig{ThinkingBudget: deepThinkingBudget}},
	})
	if err != nil {
		return "", err
	}
	return resp.text(), nil
}

// GenerateVisual renders a studio photo for the prompt and returns it as
// a base64 data URL. An empty string means the model produced no image.
func (c *Client) GenerateVisual(ctx context.Context, prompt string, size ImageSize) (string, error) {
	resp, err := c.generate(ctx, modelVisual, generateRequest{
		Contents: []content{{Parts: []part{
			{Text: "Create a professional high-end furniture studio photo for Digrazia Brothers: " + prompt},
		}}},
		GenerationConfig: &generationConfig{ImageConfig: &imageConfig{AspectRatio: "1:1", ImageSize: string(size)}},
	})
	if err != nil {
		return "", err
	}
	return resp.image(), nil
}

// VisualizeInSpace places a furniture piece into a photo of the
// client's room. Both images are raw base64 JPEG payloads.
func (c *Client) VisualizeInSpace(ctx context.Context, roomB64, productName, userPrompt, furnitureB64 string) (string, error) {
	instruction := fmt.Sprintf(
		`Image 1 is a photo of my room. Image 2 is the %q furniture. Please realistically place the furniture from Image 2 into the room shown in Image 1. Maintain perspective, lighting, and shadow consistency. Additional instructions: %s`,
		productName, userPrompt,
	)

	resp, err := c.generate(ctx, modelVisual, generateRequest{
		Contents: []content{{Parts: []part{
			{InlineData: &inlineData{MimeType: "image/jpeg", Data: stripDataURL(roomB64)}},
			{InlineData: &inlineData{MimeType: "image/jpeg", Data: stripDataURL(furnitureB64)}},
			{Text: instruction},
		}}},
	})
	if err != nil {
		return "", err
	}
	return resp.image(), nil
}

// stripDataURL drops a leading "data:...;base64," prefix if present.
func stripDataURL(s string) string {
	if i := strings.Index(s, ","); i >= 0 && strings.HasPrefix(s, "data:") {
		return s[i+1:]
	}
	return s
}
