// Package store persists user submissions captured by the dashboard: feed
// requests and dislike feedback. News items themselves are never stored.
package store

import (
	"context"
	"sync"
	"time"
)

// FeedRequest is a user's ask for a new feed category.
type FeedRequest struct {
	ID          string    `db:"id" json:"id"`
	Topic       string    `db:"topic" json:"topic"`
	Description string    `db:"description" json:"description"`
	Email       string    `db:"email" json:"email"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Feedback is the free-text reason attached to a dislike.
type Feedback struct {
	ID        string    `db:"id" json:"id"`
	ItemID    string    `db:"item_id" json:"item_id"`
	Reason    string    `db:"reason" json:"reason"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SubmissionStore records dashboard submissions.
type SubmissionStore interface {
	SaveFeedRequest(ctx context.Context, fr *FeedRequest) error
	SaveFeedback(ctx context.Context, fb *Feedback) error
}

// MemStore is the default SubmissionStore. It keeps submissions in process
// memory, matching deployments that run without a database.
type MemStore struct {
	mu           sync.Mutex
	feedRequests []FeedRequest
	feedback     []Feedback
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) SaveFeedRequest(_ context.Context, fr *FeedRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedRequests = append(m.feedRequests, *fr)
	return nil
}

func (m *MemStore) SaveFeedback(_ context.Context, fb *Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedback = append(m.feedback, *fb)
	return nil
}

// FeedRequests returns a copy of the recorded feed requests.
func (m *MemStore) FeedRequests() []FeedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]FeedRequest, len(m.feedRequests))
	copy(out, m.feedRequests)
	return out
}

// Feedback returns a copy of the recorded feedback entries.
func (m *MemStore) Feedback() []Feedback {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Feedback, len(m.feedback))
	copy(out, m.feedback)
	return out
}
