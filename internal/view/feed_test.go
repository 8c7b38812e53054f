package view

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/akunbaitpro/OpenForgeAI/internal/feed"
	"github.com/akunbaitpro/OpenForgeAI/pkg/models"
)

type fakeLoader struct {
	result      feed.Result
	loadCalls   int
	reloadCalls int

	lastCategory string
	lastActive   []string
	lastRange    models.DateRange
}

func (l *fakeLoader) Load(_ context.Context, category string, active []string, dr models.DateRange) feed.Result {
	l.loadCalls++
	l.lastCategory = category
	l.lastActive = active
	l.lastRange = dr
	return l.result
}

func (l *fakeLoader) Reload(_ context.Context, category string, active []string, dr models.DateRange) feed.Result {
	l.reloadCalls++
	l.lastCategory = category
	l.lastActive = active
	l.lastRange = dr
	return l.result
}

func manyItems(n int) []models.NewsItem {
	items := make([]models.NewsItem, n)
	for i := range items {
		items[i] = models.NewsItem{
			ID:        fmt.Sprintf("item-%d", i),
			Signal:    fmt.Sprintf("headline %d", i),
			Timestamp: int64(n - i),
		}
	}
	return items
}

func loadedFeed(t *testing.T, items []models.NewsItem, opts ...Option) *Feed {
	t.Helper()
	loader := &fakeLoader{result: feed.Result{Items: items}}
	f := NewFeed(loader, models.CategoryCrypto, nil, opts...)
	f.Load(context.Background())
	return f
}

func TestSearchMatchesWholeWordsOnly(t *testing.T) {
	items := []models.NewsItem{
		{ID: "1", Signal: "Trump in serious peace talks with Iran"},
		{ID: "2", Signal: "Crypto market rallies"},
	}

	tests := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{name: "whole word matches", term: "trump", wantIDs: []string{"1"}},
		{name: "case insensitive", term: "TRUMP", wantIDs: []string{"1"}},
		{name: "partial word matches nothing", term: "tru", wantIDs: nil},
		{name: "any term may match", term: "iran rallies", wantIDs: []string{"1", "2"}},
		{name: "blank matches everything", term: "   ", wantIDs: []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := loadedFeed(t, items)
			f.SetSearch(tt.term)

			var gotIDs []string
			for _, item := range f.Filtered() {
				gotIDs = append(gotIDs, item.ID)
			}
			if diff := cmp.Diff(tt.wantIDs, gotIDs); diff != "" {
				t.Errorf("filtered IDs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchIgnoresEnrichmentBody(t *testing.T) {
	f := loadedFeed(t, []models.NewsItem{
		{ID: "1", Signal: "Crypto market rallies", Enrichment: "Trump commented on the rally"},
	})
	f.SetSearch("trump")

	if got := len(f.Filtered()); got != 0 {
		t.Errorf("filtered = %d items, want 0 (body text is not searched)", got)
	}
}

func TestPaginationClamping(t *testing.T) {
	f := loadedFeed(t, manyItems(65))

	if got := f.TotalPages(); got != 3 {
		t.Fatalf("TotalPages = %d, want 3", got)
	}

	f.SetPage(3)
	if got := len(f.Visible()); got != 5 {
		t.Errorf("page 3 size = %d, want 5", got)
	}

	f.SetPage(4)
	if got := f.Page(); got != 3 {
		t.Errorf("page after SetPage(4) = %d, want clamped to 3", got)
	}

	f.SetPage(0)
	if got := f.Page(); got != 1 {
		t.Errorf("page after SetPage(0) = %d, want clamped to 1", got)
	}

	f.SetPage(1)
	if got := len(f.Visible()); got != PageSize {
		t.Errorf("page 1 size = %d, want %d", got, PageSize)
	}
}

func TestSearchResetsPage(t *testing.T) {
	f := loadedFeed(t, manyItems(65))
	f.SetPage(3)

	f.SetSearch("headline")
	if got := f.Page(); got != 1 {
		t.Errorf("page = %d, want reset to 1 on search change", got)
	}
}

func TestLikeIncrementsOnlyTarget(t *testing.T) {
	f := loadedFeed(t, []models.NewsItem{
		{ID: "x", Signal: "one", Likes: 2},
		{ID: "y", Signal: "two", Likes: 9},
	})

	f.Like("x")

	items := f.Filtered()
	if items[0].Likes != 3 {
		t.Errorf("liked item counter = %d, want 3", items[0].Likes)
	}
	if items[1].Likes != 9 {
		t.Errorf("other item counter = %d, want untouched 9", items[1].Likes)
	}
}

func TestDislikeCountsOnlyOnSubmit(t *testing.T) {
	var sinkItem, sinkReason string
	sink := func(_ context.Context, itemID, reason string) error {
		sinkItem, sinkReason = itemID, reason
		return nil
	}
	f := loadedFeed(t, []models.NewsItem{{ID: "x", Signal: "one"}}, WithFeedbackSink(sink))

	f.Dislike("x")
	if !f.FeedbackOpen() {
		t.Fatal("dislike must open the feedback dialog")
	}
	if got := f.Filtered()[0].Dislikes; got != 0 {
		t.Fatalf("dislikes = %d before submit, want 0", got)
	}

	f.SetFeedbackText("not relevant")
	if err := f.SubmitFeedback(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.Filtered()[0].Dislikes; got != 1 {
		t.Errorf("dislikes = %d after submit, want 1", got)
	}
	if f.FeedbackOpen() {
		t.Error("dialog should close after submit")
	}
	if sinkItem != "x" || sinkReason != "not relevant" {
		t.Errorf("sink got (%q, %q)", sinkItem, sinkReason)
	}
}

func TestDislikeCancelDoesNotCount(t *testing.T) {
	f := loadedFeed(t, []models.NewsItem{{ID: "x", Signal: "one"}})

	f.Dislike("x")
	f.CancelFeedback()

	if got := f.Filtered()[0].Dislikes; got != 0 {
		t.Errorf("dislikes = %d after cancel, want 0", got)
	}
	if f.FeedbackOpen() {
		t.Error("dialog should be closed")
	}
}

func TestSubmitFeedbackAllowsEmptyText(t *testing.T) {
	f := loadedFeed(t, []models.NewsItem{{ID: "x", Signal: "one"}})

	f.Dislike("x")
	if err := f.SubmitFeedback(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f.Filtered()[0].Dislikes; got != 1 {
		t.Errorf("dislikes = %d, want 1 even with empty reason", got)
	}
}

func TestSetCategoryResetsPageAndSelection(t *testing.T) {
	loader := &fakeLoader{result: feed.Result{Items: manyItems(65)}}
	f := NewFeed(loader, models.CategoryCrypto, nil)
	f.Load(context.Background())

	f.SetPage(3)
	f.Select("item-2")

	f.SetCategory(context.Background(), "RWA")

	if got := f.Page(); got != 1 {
		t.Errorf("page = %d, want 1 after category change", got)
	}
	if got := f.Selected(); got != "" {
		t.Errorf("selection = %q, want cleared", got)
	}
	if loader.lastCategory != "rwa" {
		t.Errorf("loader category = %q, want normalized rwa", loader.lastCategory)
	}
}

func TestSetCategorySameCategoryIsNoop(t *testing.T) {
	loader := &fakeLoader{result: feed.Result{Items: manyItems(5)}}
	f := NewFeed(loader, "crypto", nil)
	f.Load(context.Background())
	calls := loader.loadCalls

	f.SetCategory(context.Background(), "CRYPTO")
	if loader.loadCalls != calls {
		t.Error("same normalized category must not refetch")
	}
}

func TestSetDateRangeForcesReload(t *testing.T) {
	loader := &fakeLoader{result: feed.Result{Items: manyItems(5)}}
	f := NewFeed(loader, "crypto", nil)
	f.Load(context.Background())

	f.SetDateRange(context.Background(), models.DateRange{From: "2025-06-01", To: "2025-06-10"})

	if loader.reloadCalls != 1 {
		t.Errorf("reload calls = %d, want 1", loader.reloadCalls)
	}
	if loader.lastRange.From != "2025-06-01" {
		t.Errorf("range = %+v", loader.lastRange)
	}
}

func TestStaleResultNotApplied(t *testing.T) {
	loader := &fakeLoader{result: feed.Result{Items: manyItems(5)}}
	f := NewFeed(loader, "crypto", nil)
	f.Load(context.Background())

	loader.result = feed.Result{Stale: true}
	f.Load(context.Background())

	if got := len(f.Filtered()); got != 5 {
		t.Errorf("items = %d, want previous 5 kept when result is stale", got)
	}
}

func TestFallbackFlagExposed(t *testing.T) {
	loader := &fakeLoader{result: feed.Result{Items: manyItems(5), Fallback: true}}
	f := NewFeed(loader, "crypto", nil)
	f.Load(context.Background())

	if !f.UseFallback() {
		t.Error("expected fallback indicator")
	}
}

func TestEmptyMessages(t *testing.T) {
	f := loadedFeed(t, []models.NewsItem{{ID: "1", Signal: "Crypto market rallies"}})

	if got := f.EmptyMessage(); got != "" {
		t.Errorf("EmptyMessage = %q with items showing, want empty", got)
	}

	f.SetSearch("solana")
	if got := f.EmptyMessage(); got != `No results found for "solana"` {
		t.Errorf("EmptyMessage = %q", got)
	}

	empty := loadedFeed(t, nil)
	if got := empty.EmptyMessage(); got != "No news items available" {
		t.Errorf("EmptyMessage = %q", got)
	}
}

func TestSelectToggles(t *testing.T) {
	f := loadedFeed(t, []models.NewsItem{{ID: "1", Signal: "x"}})

	f.Select("1")
	if f.Selected() != "1" {
		t.Fatalf("Selected = %q", f.Selected())
	}
	f.Select("1")
	if f.Selected() != "" {
		t.Errorf("selecting the open article again should close it, got %q", f.Selected())
	}
}
