package store

import (
	"context"
	"testing"
	"time"
)

func TestMemStoreRecordsSubmissions(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	if err := m.SaveFeedRequest(ctx, &FeedRequest{ID: "fr-1", Topic: "solana", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("save feed request: %v", err)
	}
	if err := m.SaveFeedback(ctx, &Feedback{ID: "fb-1", ItemID: "item-9", Reason: "dup", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("save feedback: %v", err)
	}

	requests := m.FeedRequests()
	if len(requests) != 1 || requests[0].Topic != "solana" {
		t.Errorf("feed requests = %+v", requests)
	}

	feedback := m.Feedback()
	if len(feedback) != 1 || feedback[0].ItemID != "item-9" {
		t.Errorf("feedback = %+v", feedback)
	}
}

func TestMemStoreCopiesOnRead(t *testing.T) {
	m := NewMemStore()
	_ = m.SaveFeedback(context.Background(), &Feedback{ID: "fb-1", ItemID: "a"})

	got := m.Feedback()
	got[0].ItemID = "mutated"

	if m.Feedback()[0].ItemID != "a" {
		t.Error("reads must not expose internal state")
	}
}
