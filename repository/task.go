package repository

import "context"

// TaskRepository mirrors tasks to the remote `tasks` collection.
type TaskRepository interface {
	List(ctx context.Context, userID string) ([]TaskRecord, error)
	Insert(ctx context.Context, task TaskRecord) error
	Update(ctx context.Context, task TaskRecord) error
	Delete(ctx context.Context, userID, id string) error
}
