// Package focus tracks elapsed active time of a focus session across
// pause/resume cycles. Elapsed time is always derived from timestamps, never
// from counting ticks.
package focus

import (
	"time"

	"github.com/fastygo/quantix/domain"
)

// Start opens a new session. It fails if one is already active.
func Start(state domain.SessionState, sessionID string, now time.Time) (domain.SessionState, error) {
	if state.IsActive {
		return state, domain.ErrSessionActive
	}
	started := now
	return domain.SessionState{
		IsActive:  true,
		StartTime: &started,
		StartedAt: &started,
		SessionID: sessionID,
	}, nil
}

// Pause folds the running segment into the accumulated base.
func Pause(state domain.SessionState, now time.Time) (domain.SessionState, error) {
	if !state.IsActive {
		return state, domain.ErrSessionIdle
	}
	if state.IsPaused || state.StartTime == nil {
		return state, domain.ErrSessionNotRunning
	}
	state.Accumulated += segment(*state.StartTime, now)
	state.StartTime = nil
	state.IsPaused = true
	return state, nil
}

// Resume starts a new running segment on top of the accumulated base.
func Resume(state domain.SessionState, now time.Time) (domain.SessionState, error) {
	if !state.IsActive {
		return state, domain.ErrSessionIdle
	}
	if !state.IsPaused {
		return state, domain.ErrSessionNotPaused
	}
	resumed := now
	state.StartTime = &resumed
	state.IsPaused = false
	return state, nil
}

// Stop finalizes the session into an immutable record and returns to idle.
func Stop(state domain.SessionState, now time.Time) (domain.SessionState, domain.SessionRecord, error) {
	if !state.IsActive {
		return state, domain.SessionRecord{}, domain.ErrSessionIdle
	}

	ended := now
	started := now
	if state.StartedAt != nil {
		started = *state.StartedAt
	}
	record := domain.SessionRecord{
		ID:              state.SessionID,
		StartedAt:       started,
		EndedAt:         &ended,
		DurationSeconds: Elapsed(state, now),
	}
	return domain.SessionState{}, record, nil
}

// Elapsed is the display value in whole seconds: the accumulated base plus
// the running segment, rounded once.
func Elapsed(state domain.SessionState, now time.Time) int {
	if !state.IsActive {
		return 0
	}
	elapsed := state.Accumulated
	if !state.IsPaused && state.StartTime != nil {
		elapsed += segment(*state.StartTime, now)
	}
	return Seconds(elapsed)
}

// Seconds rounds d to whole seconds; negative durations count as zero.
func Seconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d.Round(time.Second) / time.Second)
}

// OpenRecord is the record mirrored when a session starts.
func OpenRecord(state domain.SessionState) domain.SessionRecord {
	record := domain.SessionRecord{ID: state.SessionID}
	if state.StartedAt != nil {
		record.StartedAt = *state.StartedAt
	}
	return record
}

func segment(from, to time.Time) time.Duration {
	if d := to.Sub(from); d > 0 {
		return d
	}
	return 0
}
