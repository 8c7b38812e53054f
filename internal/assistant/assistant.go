// Package assistant wraps the chat-completion API behind the feed's chat
// panel.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SystemPrompt anchors the assistant's persona for every conversation.
const SystemPrompt = "You are Gloria AI, a helpful assistant focused on providing information about cryptocurrency, blockchain, and financial markets. Be concise, accurate, and helpful."

// FallbackReply is shown in-chat when a completion request fails; the
// failure is never fatal to the feed view.
const FallbackReply = "I'm having trouble connecting to my knowledge base right now. Please try again in a moment."

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	TopP        float64   `json:"top_p"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client calls a chat-style completion endpoint.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	hc      *http.Client
}

// NewClient constructs a client. If hc is nil, a default with a timeout is
// used.
func NewClient(baseURL, apiKey, model string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, model: model, hc: hc}
}

// Complete sends the ordered message list and returns the first choice's
// content, sanitized for display.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	payload := completionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.2,
		TopP:        0.9,
		MaxTokens:   1000,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("assistant: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("assistant: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("assistant: api error %d: %s", resp.StatusCode, data)
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("assistant: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("assistant: empty response")
	}

	return Sanitize(parsed.Choices[0].Message.Content), nil
}
