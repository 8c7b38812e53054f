// Package view owns the presentation state of the news feed: the visible
// page, the search filter, reaction counters and the feedback dialog. All
// state lives in one controller and is mutated from a single goroutine; no
// other component touches the item list.
package view

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/akunbaitpro/OpenForgeAI/internal/feed"
	"github.com/akunbaitpro/OpenForgeAI/pkg/models"
)

// PageSize is the fixed number of items per page.
const PageSize = 30

// Loader is what the controller needs from the aggregator.
type Loader interface {
	Load(ctx context.Context, category string, active []string, dr models.DateRange) feed.Result
	Reload(ctx context.Context, category string, active []string, dr models.DateRange) feed.Result
}

// FeedbackSink receives the reason text captured by the dislike dialog.
// Optional; reactions themselves never leave the controller.
type FeedbackSink func(ctx context.Context, itemID, reason string) error

// Feed is the top-level controller for the news feed screen.
type Feed struct {
	loader Loader
	sink   FeedbackSink

	category  string
	active    []string
	dateRange models.DateRange

	items       []models.NewsItem
	useFallback bool
	loadErr     error

	page         int
	searchTerm   string
	selectedID   string
	feedbackOpen bool
	feedbackItem string
	feedbackText string
}

// Option configures a Feed.
type Option func(*Feed)

// WithFeedbackSink wires a destination for submitted dislike reasons.
func WithFeedbackSink(sink FeedbackSink) Option {
	return func(f *Feed) { f.sink = sink }
}

// NewFeed creates a controller showing the given category. active lists the
// categories merged by the "all" view.
func NewFeed(loader Loader, category string, active []string, opts ...Option) *Feed {
	f := &Feed{
		loader:   loader,
		category: models.NormalizeCategory(category),
		active:   active,
		page:     1,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Load fetches the current category and applies the result. Results from a
// load that was superseded while in flight are discarded.
func (f *Feed) Load(ctx context.Context) {
	f.apply(f.loader.Load(ctx, f.category, f.active, f.dateRange))
}

func (f *Feed) apply(res feed.Result) {
	if res.Stale {
		return
	}
	f.items = res.Items
	f.useFallback = res.Fallback
	f.loadErr = res.Err
}

// SetCategory switches the visible feed. Changing category resets the page
// to 1 and clears any open article.
func (f *Feed) SetCategory(ctx context.Context, category string) {
	normalized := models.NormalizeCategory(category)
	if normalized == f.category {
		return
	}
	f.category = normalized
	f.page = 1
	f.selectedID = ""
	f.Load(ctx)
}

// SetActiveFeeds replaces the category set merged by the "all" view and
// refetches when that view is showing.
func (f *Feed) SetActiveFeeds(ctx context.Context, active []string) {
	f.active = active
	if f.category == models.CategoryAll {
		f.Load(ctx)
	}
}

// SetDateRange applies an explicit date range. This always forces a fresh
// fetch regardless of cached results.
func (f *Feed) SetDateRange(ctx context.Context, dr models.DateRange) {
	f.dateRange = dr
	f.page = 1
	f.apply(f.loader.Reload(ctx, f.category, f.active, f.dateRange))
}

// Category returns the normalized active category.
func (f *Feed) Category() string { return f.category }

// UseFallback reports whether the fixed sample dataset is showing because
// live retrieval failed.
func (f *Feed) UseFallback() bool { return f.useFallback }

// Err returns the error behind the current fallback or partial failure, if
// any.
func (f *Feed) Err() error { return f.loadErr }

// SetSearch updates the free-text filter and resets to the first page.
func (f *Feed) SetSearch(term string) {
	f.searchTerm = term
	f.page = 1
}

// SearchTerm returns the current filter input.
func (f *Feed) SearchTerm() string { return f.searchTerm }

// Filtered returns the items matching the search term. Terms are split on
// whitespace; an item matches when any term appears as a whole word in its
// signal. Blank input matches everything.
func (f *Feed) Filtered() []models.NewsItem {
	trimmed := strings.TrimSpace(f.searchTerm)
	if trimmed == "" {
		return f.items
	}

	terms := strings.Fields(strings.ToLower(trimmed))
	patterns := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			continue
		}
		patterns = append(patterns, re)
	}

	var out []models.NewsItem
	for _, item := range f.items {
		signal := strings.ToLower(item.Signal)
		for _, re := range patterns {
			if re.MatchString(signal) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// TotalPages returns the page count for the filtered list.
func (f *Feed) TotalPages() int {
	n := len(f.Filtered())
	if n == 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// Page returns the current 1-based page number.
func (f *Feed) Page() int { return f.page }

// SetPage navigates to a page, clamped to the valid range.
func (f *Feed) SetPage(page int) {
	total := f.TotalPages()
	if page < 1 {
		page = 1
	}
	if total > 0 && page > total {
		page = total
	}
	f.page = page
}

// Visible returns the current page of filtered items.
func (f *Feed) Visible() []models.NewsItem {
	filtered := f.Filtered()
	start := (f.page - 1) * PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// EmptyMessage distinguishes "nothing matched your search" from an empty
// category. Empty string means items are showing.
func (f *Feed) EmptyMessage() string {
	if len(f.Filtered()) > 0 {
		return ""
	}
	if trimmed := strings.TrimSpace(f.searchTerm); trimmed != "" {
		return fmt.Sprintf("No results found for %q", trimmed)
	}
	return "No news items available"
}

// Select toggles the open article; selecting the open one closes it.
func (f *Feed) Select(id string) {
	if f.selectedID == id {
		f.selectedID = ""
		return
	}
	f.selectedID = id
}

// Selected returns the open article's ID, or empty.
func (f *Feed) Selected() string { return f.selectedID }

// Like increments the like counter on the matching item immediately.
func (f *Feed) Like(id string) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Likes++
			return
		}
	}
}

// Dislike opens the feedback dialog for the item. The dislike counter does
// not move until the feedback is submitted.
func (f *Feed) Dislike(id string) {
	f.feedbackItem = id
	f.feedbackOpen = true
}

// FeedbackOpen reports whether the feedback dialog is showing.
func (f *Feed) FeedbackOpen() bool { return f.feedbackOpen }

// SetFeedbackText records the dialog's free-text reason.
func (f *Feed) SetFeedbackText(text string) { f.feedbackText = text }

// CancelFeedback closes the dialog without counting the dislike.
func (f *Feed) CancelFeedback() {
	f.feedbackOpen = false
	f.feedbackItem = ""
	f.feedbackText = ""
}

// SubmitFeedback counts the pending dislike and forwards the reason to the
// sink when one is wired. Empty reasons are allowed.
func (f *Feed) SubmitFeedback(ctx context.Context) error {
	if f.feedbackItem == "" {
		return nil
	}
	for i := range f.items {
		if f.items[i].ID == f.feedbackItem {
			f.items[i].Dislikes++
			break
		}
	}

	var err error
	if f.sink != nil {
		err = f.sink(ctx, f.feedbackItem, f.feedbackText)
	}

	f.feedbackOpen = false
	f.feedbackItem = ""
	f.feedbackText = ""
	return err
}
