package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	ErrCodeInvalid  ErrorCode = "INVALID"
	ErrCodeConflict ErrorCode = "CONFLICT"
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Lookup failures.
var (
	ErrTaskNotFound    = NewError(ErrCodeNotFound, "task not found")
	ErrListNotFound    = NewError(ErrCodeNotFound, "task list not found")
	ErrJournalNotFound = NewError(ErrCodeNotFound, "journal entry not found")
	ErrGoalNotFound    = NewError(ErrCodeNotFound, "goal not found")
	ErrProfileNotFound = NewError(ErrCodeNotFound, "profile not found")
	ErrSessionNotFound = NewError(ErrCodeNotFound, "session not found")
)

// Validation failures. These are rejected before a mutation reaches the synchronizer.
var (
	ErrInvalidPayload    = NewError(ErrCodeInvalid, "invalid payload")
	ErrEmptyTitle        = NewError(ErrCodeInvalid, "title must not be empty")
	ErrInvalidPriority   = NewError(ErrCodeInvalid, "unknown task priority")
	ErrInvalidDuration   = NewError(ErrCodeInvalid, "duration must be positive")
	ErrInvalidGoalTarget = NewError(ErrCodeInvalid, "goal target must be positive")
	ErrInvalidMood       = NewError(ErrCodeInvalid, "unknown journal mood")
	ErrInvalidTheme      = NewError(ErrCodeInvalid, "unknown theme")
	ErrInvalidTimezone   = NewError(ErrCodeInvalid, "unknown timezone")
)

// Focus session state machine violations.
var (
	ErrSessionActive     = NewError(ErrCodeConflict, "a focus session is already active")
	ErrSessionIdle       = NewError(ErrCodeConflict, "no focus session is active")
	ErrSessionNotRunning = NewError(ErrCodeConflict, "focus session is not running")
	ErrSessionNotPaused  = NewError(ErrCodeConflict, "focus session is not paused")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
