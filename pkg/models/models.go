package models

import (
	"fmt"
	"strings"
	"time"
)

// NewsItem represents a single feed entry as served to clients.
type NewsItem struct {
	ID         string `json:"id"`
	Signal     string `json:"signal"`
	Timestamp  int64  `json:"timestamp"`
	Enrichment string `json:"enrichment"`
	Likes      int    `json:"likes"`
	Dislikes   int    `json:"dislikes"`
}

// Feed categories known to the upstream API. CategoryAll is virtual: it is
// synthesized client-side by merging every active category.
const (
	CategoryCrypto   = "crypto"
	CategoryAIAgents = "ai_agents"
	CategoryRWA      = "rwa"
	CategoryOndo     = "ondo"
	CategoryAptos    = "aptos"
	CategoryAll      = "all"
)

// NormalizeCategory lower-cases a feed category and applies the one known
// alias (ai_agent -> ai_agents) so it matches what the API expects.
func NormalizeCategory(category string) string {
	normalized := strings.ToLower(category)
	if normalized == "ai_agent" {
		normalized = CategoryAIAgents
	}
	return normalized
}

// DefaultFromDate is the lower query bound used when no explicit start date
// is given. Queries are never unbounded.
const DefaultFromDate = "2025-05-01"

// DateRange is a pair of inclusive ISO YYYY-MM-DD query bounds.
type DateRange struct {
	From string
	To   string
}

// Resolve fills empty bounds with their defaults: From falls back to
// DefaultFromDate, To falls back to the current date.
func (r DateRange) Resolve(now time.Time) DateRange {
	if r.From == "" {
		r.From = DefaultFromDate
	}
	if r.To == "" {
		r.To = now.UTC().Format("2006-01-02")
	}
	return r
}

// FormatTimeAgo renders a Unix timestamp as a short relative-time label
// ("just now", "5m", "3h", "2d").
func FormatTimeAgo(timestamp int64, now time.Time) string {
	diff := now.Unix() - timestamp
	switch {
	case diff < 60:
		return "just now"
	case diff < 3600:
		return fmt.Sprintf("%dm", diff/60)
	case diff < 86400:
		return fmt.Sprintf("%dh", diff/3600)
	default:
		return fmt.Sprintf("%dd", diff/86400)
	}
}
