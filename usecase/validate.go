package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/fastygo/quantix/domain"
)

const (
	MaxTitleLength   = 200
	MaxContentLength = 20000
	MaxNameLength    = 64
)

// Title trims s and rejects empty or oversized titles.
func Title(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.ErrEmptyTitle
	}
	if utf8.RuneCountInString(s) > MaxTitleLength {
		return "", domain.NewError(domain.ErrCodeInvalid, "title too long")
	}
	return s, nil
}

// ID rejects blank identifiers.
func ID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", domain.ErrInvalidPayload
	}
	return id, nil
}
