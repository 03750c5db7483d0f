package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
