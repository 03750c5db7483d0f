package domain

import "time"

// SessionRecord is one finished (or still open) focus session.
// A record is append-only once EndedAt is set.
type SessionRecord struct {
	ID              string     `json:"id"`
	StartedAt       time.Time  `json:"startedAt"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	DurationSeconds int        `json:"durationSeconds"`
}

func (s *SessionRecord) IsOpen() bool {
	return s != nil && s.EndedAt == nil
}

// SessionState is the in-memory view of the focus session in progress.
// It is never persisted across restarts. Accumulated holds the exact active
// time of finished segments and serializes as nanoseconds.
type SessionState struct {
	IsActive    bool          `json:"isActive"`
	IsPaused    bool          `json:"isPaused"`
	StartTime   *time.Time    `json:"startTime,omitempty"`
	Accumulated time.Duration `json:"accumulatedNanos"`
	SessionID   string        `json:"sessionId,omitempty"`
	StartedAt   *time.Time    `json:"startedAt,omitempty"`
}

// IsRunning reports whether time is currently being accumulated.
func (s SessionState) IsRunning() bool {
	return s.IsActive && !s.IsPaused
}
