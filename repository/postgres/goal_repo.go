package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/repository"
)

type goalRepository struct {
	pool *pgxpool.Pool
}

func NewGoalRepository(pool *pgxpool.Pool) repository.GoalRepository {
	return &goalRepository{pool: pool}
}

func (r *goalRepository) List(ctx context.Context, userID string) ([]repository.GoalRecord, error) {
	const query = `
	SELECT id, user_id, title, target, progress, xp_reward, completed, completed_at, created_at
	FROM goals
	WHERE user_id = $1
	ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []repository.GoalRecord
	for rows.Next() {
		var g repository.GoalRecord
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Target, &g.Progress, &g.XPReward, &g.Completed, &g.CompletedAt, &g.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *goalRepository) Upsert(ctx context.Context, g repository.GoalRecord) error {
	if g.ID == "" || g.UserID == "" {
		return domain.ErrInvalidPayload
	}
	const query = `
	INSERT INTO goals (id, user_id, title, target, progress, xp_reward, completed, completed_at, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, NOW()))
	ON CONFLICT (id) DO UPDATE
	SET title = EXCLUDED.title,
		target = EXCLUDED.target,
		progress = EXCLUDED.progress,
		xp_reward = EXCLUDED.xp_reward,
		completed = EXCLUDED.completed,
		completed_at = EXCLUDED.completed_at
	`
	_, err := r.pool.Exec(ctx, query,
		g.ID, g.UserID, g.Title, g.Target, g.Progress, g.XPReward, g.Completed, g.CompletedAt,
		nullTime(g.CreatedAt),
	)
	return err
}

func (r *goalRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}
