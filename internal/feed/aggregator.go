package feed

import (
	"context"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/akunbaitpro/OpenForgeAI/pkg/models"
)

// Result is the outcome of one aggregator load.
type Result struct {
	Items    []models.NewsItem
	Fallback bool
	// Stale is set when a newer load started while this one was in flight;
	// stale results must not be applied to visible state.
	Stale bool
	// Err carries the last fetch error when fallback data is in use, or the
	// first category error in a partially failed "all" load. Partial
	// failures are informational only.
	Err error
}

// Aggregator produces the ordered, deduplicated news list for a single
// category or for the synthesized "all" view. Fetch failures degrade to a
// fixed fallback dataset instead of surfacing as hard errors.
type Aggregator struct {
	fetcher  Fetcher
	fallback []models.NewsItem
	retries  uint64
	backoff  time.Duration
	staleTTL time.Duration
	now      func() time.Time

	mu    sync.Mutex
	gen   uint64
	cache map[string]cacheEntry
}

type cacheEntry struct {
	items   []models.NewsItem
	fetched time.Time
}

// NewAggregator creates an Aggregator over the given fetcher. Transient
// failures are retried twice; results are reused for five minutes per
// (category, date range) pair.
func NewAggregator(fetcher Fetcher) *Aggregator {
	return &Aggregator{
		fetcher:  fetcher,
		fallback: FallbackItems(time.Now()),
		retries:  2,
		backoff:  200 * time.Millisecond,
		staleTTL: 5 * time.Minute,
		now:      time.Now,
		cache:    make(map[string]cacheEntry),
	}
}

// Load fetches the requested category, or merges every active category when
// the request is for "all". Cached results within the freshness window are
// reused without hitting the network.
func (a *Aggregator) Load(ctx context.Context, category string, active []string, dr models.DateRange) Result {
	dr = dr.Resolve(a.now())
	gen := a.nextGen()

	res := a.load(ctx, category, active, dr)
	if !a.isCurrent(gen) {
		return Result{Stale: true}
	}
	return res
}

// Reload drops all cached results and then loads. Used when the date range
// changes explicitly, which must always force a fresh fetch.
func (a *Aggregator) Reload(ctx context.Context, category string, active []string, dr models.DateRange) Result {
	a.mu.Lock()
	a.cache = make(map[string]cacheEntry)
	a.mu.Unlock()
	return a.Load(ctx, category, active, dr)
}

func (a *Aggregator) load(ctx context.Context, category string, active []string, dr models.DateRange) Result {
	normalized := models.NormalizeCategory(category)

	if normalized != models.CategoryAll {
		items, err := a.fetchCached(ctx, normalized, dr)
		if err != nil {
			return Result{Items: a.fallback, Fallback: true, Err: err}
		}
		return Result{Items: items}
	}

	// One concurrent fetch per active category; a failing category must not
	// block or sink the others.
	results := make([][]models.NewsItem, len(active))
	errs := make([]error, len(active))

	var wg sync.WaitGroup
	for i, cat := range active {
		wg.Add(1)
		go func(i int, cat string) {
			defer wg.Done()
			results[i], errs[i] = a.fetchCached(ctx, models.NormalizeCategory(cat), dr)
		}(i, cat)
	}
	wg.Wait()

	var firstErr error
	for _, err := range errs {
		if err != nil {
			firstErr = err
			break
		}
	}

	merged := Merge(results)
	if len(merged) > 0 {
		return Result{Items: merged, Err: firstErr}
	}
	if firstErr != nil {
		return Result{Items: a.fallback, Fallback: true, Err: firstErr}
	}
	return Result{Items: merged}
}

// fetchCached consults the freshness cache before fetching, and retries
// transient failures a bounded number of times. Only the final outcome is
// reported.
func (a *Aggregator) fetchCached(ctx context.Context, category string, dr models.DateRange) ([]models.NewsItem, error) {
	key := category + "|" + dr.From + "|" + dr.To

	a.mu.Lock()
	if entry, ok := a.cache[key]; ok && a.now().Sub(entry.fetched) < a.staleTTL {
		a.mu.Unlock()
		return entry.items, nil
	}
	a.mu.Unlock()

	var items []models.NewsItem
	backoff := retry.WithMaxRetries(a.retries, retry.NewConstant(a.backoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		got, ferr := a.fetcher.Fetch(ctx, category, dr)
		if ferr != nil {
			return retry.RetryableError(ferr)
		}
		items = got
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.cache[key] = cacheEntry{items: items, fetched: a.now()}
	a.mu.Unlock()
	return items, nil
}

func (a *Aggregator) nextGen() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	return a.gen
}

func (a *Aggregator) isCurrent(gen uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gen == gen
}
