package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/repository"
)

type journalRepository struct {
	pool *pgxpool.Pool
}

func NewJournalRepository(pool *pgxpool.Pool) repository.JournalRepository {
	return &journalRepository{pool: pool}
}

func (r *journalRepository) List(ctx context.Context, userID string) ([]repository.JournalRecord, error) {
	const query = `
	SELECT id, user_id, title, content, images, mood, created_at, updated_at
	FROM journal_entries
	WHERE user_id = $1
	ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []repository.JournalRecord
	for rows.Next() {
		var e repository.JournalRecord
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Images, &e.Mood, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *journalRepository) Upsert(ctx context.Context, e repository.JournalRecord) error {
	if e.ID == "" || e.UserID == "" {
		return domain.ErrInvalidPayload
	}
	if e.Images == nil {
		e.Images = []string{}
	}
	const query = `
	INSERT INTO journal_entries (id, user_id, title, content, images, mood, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, NOW()), COALESCE($8, NOW()))
	ON CONFLICT (id) DO UPDATE
	SET title = EXCLUDED.title,
		content = EXCLUDED.content,
		images = EXCLUDED.images,
		mood = EXCLUDED.mood,
		updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.UserID, e.Title, e.Content, e.Images, e.Mood,
		nullTime(e.CreatedAt), nullTime(e.UpdatedAt),
	)
	return err
}

func (r *journalRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM journal_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrJournalNotFound
	}
	return nil
}
