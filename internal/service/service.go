package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/akunbaitpro/OpenForgeAI/pkg/models"
)

// NewsSource captures the ability to fetch one feed category for a date range.
type NewsSource interface {
	Fetch(ctx context.Context, feedType, fromDate, toDate string) ([]models.NewsItem, error)
}

// Service sits between the HTTP handlers and the upstream API. It caches
// successful payloads in redis for a short freshness window and stamps the
// reaction defaults onto every item before it leaves the gateway.
type Service struct {
	source   NewsSource
	rdb      *redis.Client
	cacheTTL time.Duration
}

// NewService creates a Service. rdb may be nil, in which case caching is
// disabled and every request goes upstream.
func NewService(source NewsSource, rdb *redis.Client) *Service {
	return &Service{source: source, rdb: rdb, cacheTTL: 5 * time.Minute}
}

// News returns the items for one feed category and date range. Upstream
// errors pass through unwrapped so the handler can mirror their status.
func (s *Service) News(ctx context.Context, feedType, fromDate, toDate string) ([]models.NewsItem, error) {
	key := cacheKey(feedType, fromDate, toDate)

	if s.rdb != nil {
		if b, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var cached []models.NewsItem
			if err := json.Unmarshal(b, &cached); err == nil {
				return cached, nil
			}
		}
	}

	items, err := s.source.Fetch(ctx, feedType, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	// Reaction counters are client-local state; the gateway always hands
	// them out zeroed.
	for i := range items {
		items[i].Likes = 0
		items[i].Dislikes = 0
	}

	if s.rdb != nil {
		if b, err := json.Marshal(items); err == nil {
			s.rdb.Set(ctx, key, b, s.cacheTTL)
		}
	}

	return items, nil
}

func cacheKey(feedType, fromDate, toDate string) string {
	return fmt.Sprintf("news:%s:%s:%s", feedType, fromDate, toDate)
}
