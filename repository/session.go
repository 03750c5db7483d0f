package repository

import (
	"context"
	"time"
)

// SessionRepository mirrors focus sessions: inserted open, updated on close.
type SessionRepository interface {
	List(ctx context.Context, userID string) ([]SessionRecord, error)
	Insert(ctx context.Context, session SessionRecord) error
	Close(ctx context.Context, session SessionRecord) error
}

// LiveSessionRepository publishes the in-progress focus session with a TTL.
type LiveSessionRepository interface {
	Get(ctx context.Context, userID string) (*LiveSession, error)
	Save(ctx context.Context, session *LiveSession) error
	Delete(ctx context.Context, userID string) error
	Extend(ctx context.Context, userID string, ttl time.Duration) error
}
