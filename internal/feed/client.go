// Package feed implements the client side of the news pipeline: fetching
// one category at a time from the gateway and aggregating multiple
// categories into the merged "all" view.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/akunbaitpro/OpenForgeAI/pkg/models"
)

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher retrieves one category's items for one date range.
type Fetcher interface {
	Fetch(ctx context.Context, category string, dr models.DateRange) ([]models.NewsItem, error)
}

// Client fetches news through the gateway. No credential lives on this side;
// the gateway injects it when talking to the upstream API.
type Client struct {
	baseURL string
	hc      HTTPClient
}

// NewClient creates a feed client against the gateway origin. If hc is nil,
// a default HTTP client with a timeout is used.
func NewClient(baseURL string, hc HTTPClient) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, hc: hc}
}

// Fetch retrieves one category for a date range. Any non-2xx status or
// non-JSON payload is an error; this layer never substitutes an empty list,
// graceful degradation is the aggregator's job.
func (c *Client) Fetch(ctx context.Context, category string, dr models.DateRange) ([]models.NewsItem, error) {
	normalized := models.NormalizeCategory(category)

	q := url.Values{}
	q.Set("from_date", dr.From)
	q.Set("to_date", dr.To)
	reqURL := fmt.Sprintf("%s/api/news/%s?%s", c.baseURL, url.PathEscape(normalized), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", normalized, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("api %d %s: %s", resp.StatusCode, http.StatusText(resp.StatusCode), body)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return nil, fmt.Errorf("expected JSON but got %q: %s", contentType, body)
	}

	var items []models.NewsItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	// The gateway zeroes reaction counters; clamp here anyway so a direct
	// upstream deployment behaves the same.
	for i := range items {
		if items[i].Likes < 0 {
			items[i].Likes = 0
		}
		if items[i].Dislikes < 0 {
			items[i].Dislikes = 0
		}
	}
	return items, nil
}
