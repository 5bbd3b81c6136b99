package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the WhatsApp gateway. The gateway exposes two JSON
// endpoints, send-message and send-media; both authenticate with an API key
// in the request body.
type Client struct {
	baseURL    string
	apiKey     string
	sender     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, sender string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		sender:  sender,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type sendMessagePayload struct {
	APIKey  string `json:"api_key"`
	Sender  string `json:"sender"`
	Number  string `json:"number"`
	Message string `json:"message"`
}

type sendMediaPayload struct {
	APIKey    string `json:"api_key"`
	Sender    string `json:"sender"`
	Number    string `json:"number"`
	MediaType string `json:"media_type"`
	Caption   string `json:"caption"`
	URL       string `json:"url"`
}

func (c *Client) SendMessage(ctx context.Context, number, message string) error {
	payload := sendMessagePayload{
		APIKey:  c.apiKey,
		Sender:  c.sender,
		Number:  NormalizeNumber(number),
		Message: message,
	}
	return c.post(ctx, "/send-message", payload)
}

func (c *Client) SendMedia(ctx context.Context, number, mediaURL, caption string) error {
	payload := sendMediaPayload{
		APIKey:    c.apiKey,
		Sender:    c.sender,
		Number:    NormalizeNumber(number),
		MediaType: "image",
		Caption:   caption,
		URL:       mediaURL,
	}
	return c.post(ctx, "/send-media", payload)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode gateway payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gateway returned %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// NormalizeNumber converts a phone number to the gateway's 62-prefixed
// format: strip non-digits, replace a leading 0 with 62, and prepend 62 when
// no country code is present.
func NormalizeNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case digits == "":
		return digits
	case strings.HasPrefix(digits, "62"):
		return digits
	case strings.HasPrefix(digits, "0"):
		return "62" + digits[1:]
	default:
		return "62" + digits
	}
}
