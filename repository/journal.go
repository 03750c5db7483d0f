package repository

import "context"

type JournalRepository interface {
	List(ctx context.Context, userID string) ([]JournalRecord, error)
	Upsert(ctx context.Context, entry JournalRecord) error
	Delete(ctx context.Context, userID, id string) error
}
