package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/repository"
)

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository instantiates a Postgres-backed profile repository.
func NewProfileRepository(pool *pgxpool.Pool) repository.ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) Get(ctx context.Context, id string) (*repository.ProfileRecord, error) {
	const query = `
		SELECT id, name, avatar_url, level, current_xp, next_level_xp, total_tasks_completed, updated_at
		FROM profiles
		WHERE id = $1
	`
	var p repository.ProfileRecord
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.AvatarURL,
		&p.Level,
		&p.CurrentXP,
		&p.NextLevelXP,
		&p.TotalTasksCompleted,
		&p.UpdatedAt,
	); err != nil {
		if isNoRows(err) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Upsert(ctx context.Context, p repository.ProfileRecord) error {
	if p.ID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO profiles (id, name, avatar_url, level, current_xp, next_level_xp, total_tasks_completed, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, NOW()))
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		avatar_url = EXCLUDED.avatar_url,
		level = EXCLUDED.level,
		current_xp = EXCLUDED.current_xp,
		next_level_xp = EXCLUDED.next_level_xp,
		total_tasks_completed = EXCLUDED.total_tasks_completed,
		updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Name,
		p.AvatarURL,
		p.Level,
		p.CurrentXP,
		p.NextLevelXP,
		p.TotalTasksCompleted,
		nullTime(p.UpdatedAt),
	)
	return err
}
