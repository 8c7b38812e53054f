// Package upstream implements the server-side client for the external news
// API. The gateway is the only component that holds the upstream credential;
// browsers never see it.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/akunbaitpro/OpenForgeAI/pkg/models"
)

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is returned when the upstream responds with a non-2xx status.
// The gateway mirrors Status to its own caller and attaches Body under a
// details field for diagnostics.
type APIError struct {
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream api error: status %d", e.Status)
}

// Client fetches news items from the upstream API.
type Client struct {
	baseURL string
	apiKey  string
	hc      HTTPClient
}

// NewClient creates an upstream client. If hc is nil, a default HTTP client
// with a timeout is used.
func NewClient(baseURL, apiKey string, hc HTTPClient) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, hc: hc}
}

// Fetch retrieves one category of news for an inclusive date range. The
// category is forwarded verbatim; the credential travels as a query
// parameter, which is what the upstream expects.
func (c *Client) Fetch(ctx context.Context, feedType, fromDate, toDate string) ([]models.NewsItem, error) {
	q := url.Values{}
	q.Set("from_date", fromDate)
	q.Set("to_date", toDate)
	q.Set("api_key", c.apiKey)
	reqURL := fmt.Sprintf("%s/news/%s?%s", c.baseURL, url.PathEscape(feedType), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read upstream body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Body: body}
	}

	var items []models.NewsItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}
	return items, nil
}
