package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/repository"
)

type sessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository returns the remote focus-session log.
func NewSessionRepository(pool *pgxpool.Pool) repository.SessionRepository {
	return &sessionRepository{pool: pool}
}

func (r *sessionRepository) List(ctx context.Context, userID string) ([]repository.SessionRecord, error) {
	const query = `
	SELECT id, user_id, started_at, ended_at, duration_seconds
	FROM sessions
	WHERE user_id = $1
	ORDER BY started_at
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []repository.SessionRecord
	for rows.Next() {
		var s repository.SessionRecord
		if err := rows.Scan(&s.ID, &s.UserID, &s.StartedAt, &s.EndedAt, &s.DurationSeconds); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *sessionRepository) Insert(ctx context.Context, s repository.SessionRecord) error {
	if s.ID == "" || s.UserID == "" {
		return domain.ErrInvalidPayload
	}
	const query = `
	INSERT INTO sessions (id, user_id, started_at, ended_at, duration_seconds)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, s.ID, s.UserID, s.StartedAt, s.EndedAt, s.DurationSeconds)
	return err
}

// Close records the end of a session. A session whose open insert never
// reached the remote is inserted whole.
func (r *sessionRepository) Close(ctx context.Context, s repository.SessionRecord) error {
	if s.ID == "" || s.UserID == "" {
		return domain.ErrInvalidPayload
	}
	const query = `
	INSERT INTO sessions (id, user_id, started_at, ended_at, duration_seconds)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO UPDATE
	SET ended_at = EXCLUDED.ended_at,
		duration_seconds = EXCLUDED.duration_seconds
	`
	_, err := r.pool.Exec(ctx, query, s.ID, s.UserID, s.StartedAt, s.EndedAt, s.DurationSeconds)
	return err
}
