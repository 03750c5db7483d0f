package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) List(ctx context.Context, userID string) ([]repository.TaskRecord, error) {
	const query = `
	SELECT id, user_id, list_id, title, completed, priority, xp_worth, duration_minutes, completed_at, created_at
	FROM tasks
	WHERE user_id = $1
	ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []repository.TaskRecord
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Insert(ctx context.Context, task repository.TaskRecord) error {
	if task.ID == "" || task.UserID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO tasks (id, user_id, list_id, title, completed, priority, xp_worth, duration_minutes, completed_at, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, NOW()))
	ON CONFLICT (id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query,
		task.ID,
		task.UserID,
		task.ListID,
		task.Title,
		task.Completed,
		task.Priority,
		task.XPWorth,
		task.DurationMinutes,
		task.CompletedAt,
		nullTime(task.CreatedAt),
	)
	return err
}

func (r *taskRepository) Update(ctx context.Context, task repository.TaskRecord) error {
	const query = `
	UPDATE tasks
	SET title = $3,
		list_id = $4,
		completed = $5,
		priority = $6,
		duration_minutes = $7,
		completed_at = $8
	WHERE id = $1 AND user_id = $2
	`
	tag, err := r.pool.Exec(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.ListID,
		task.Completed,
		task.Priority,
		task.DurationMinutes,
		task.CompletedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func scanTask(row rowScanner) (repository.TaskRecord, error) {
	var task repository.TaskRecord
	if err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.ListID,
		&task.Title,
		&task.Completed,
		&task.Priority,
		&task.XPWorth,
		&task.DurationMinutes,
		&task.CompletedAt,
		&task.CreatedAt,
	); err != nil {
		if isNoRows(err) {
			return task, domain.ErrTaskNotFound
		}
		return task, err
	}
	return task, nil
}
