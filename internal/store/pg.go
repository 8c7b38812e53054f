package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PgStore is the Postgres-backed SubmissionStore, used when DATABASE_URL is
// configured.
type PgStore struct {
	db *sqlx.DB
}

func NewPgStore(db *sql.DB) *PgStore {
	return &PgStore{db: sqlx.NewDb(db, "postgres")}
}

// RunMigrations ensures the submission tables exist.
func RunMigrations(db *sql.DB) error {
	initSQL := `
CREATE TABLE IF NOT EXISTS feed_requests(
  id UUID PRIMARY KEY,
  topic TEXT NOT NULL,
  description TEXT,
  email TEXT,
  created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS feedback(
  id UUID PRIMARY KEY,
  item_id TEXT NOT NULL,
  reason TEXT,
  created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_feedback_item ON feedback(item_id);
CREATE INDEX IF NOT EXISTS idx_feed_requests_created ON feed_requests(created_at);
`
	_, err := db.Exec(initSQL)
	return err
}

func (p *PgStore) SaveFeedRequest(ctx context.Context, fr *FeedRequest) error {
	stmt := `
INSERT INTO feed_requests (id, topic, description, email, created_at)
VALUES ($1,$2,$3,$4,$5)
`
	if _, err := p.db.ExecContext(ctx, stmt, fr.ID, fr.Topic, fr.Description, fr.Email, fr.CreatedAt); err != nil {
		return fmt.Errorf("insert feed request id=%s: %w", fr.ID, err)
	}
	return nil
}

func (p *PgStore) SaveFeedback(ctx context.Context, fb *Feedback) error {
	stmt := `
INSERT INTO feedback (id, item_id, reason, created_at)
VALUES ($1,$2,$3,$4)
`
	if _, err := p.db.ExecContext(ctx, stmt, fb.ID, fb.ItemID, fb.Reason, fb.CreatedAt); err != nil {
		return fmt.Errorf("insert feedback id=%s: %w", fb.ID, err)
	}
	return nil
}
