package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/repository"
)

type liveSessionRepository struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewLiveSessionRepository publishes in-progress focus sessions under
// focus:<user> so a second screen can render the live timer. Keys expire on
// their own if the daemon dies mid-session.
func NewLiveSessionRepository(client *redislib.Client, ttl time.Duration) repository.LiveSessionRepository {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &liveSessionRepository{
		client: client,
		prefix: "focus:",
		ttl:    ttl,
	}
}

func (r *liveSessionRepository) Get(ctx context.Context, userID string) (*repository.LiveSession, error) {
	result, err := r.client.Get(ctx, r.key(userID)).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var session repository.LiveSession
	if err := json.Unmarshal([]byte(result), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *liveSessionRepository) Save(ctx context.Context, session *repository.LiveSession) error {
	if session == nil || session.UserID == "" {
		return domain.ErrInvalidPayload
	}
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = time.Now()
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(session.UserID), payload, r.ttl).Err()
}

func (r *liveSessionRepository) Delete(ctx context.Context, userID string) error {
	return r.client.Del(ctx, r.key(userID)).Err()
}

func (r *liveSessionRepository) Extend(ctx context.Context, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.ttl
	}
	return r.client.Expire(ctx, r.key(userID), ttl).Err()
}

func (r *liveSessionRepository) key(userID string) string {
	return fmt.Sprintf("%s%s", r.prefix, userID)
}
