// Package streak derives per-day activity and consecutive-day consistency
// from task and session history. Everything here is recomputed from the full
// history on every call.
package streak

import (
	"sort"
	"time"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/clock"
)

// DayStats aggregates one calendar day.
type DayStats struct {
	TasksCompleted int     `json:"tasksCompleted"`
	XPEarned       int     `json:"xpEarned"`
	HoursLogged    float64 `json:"hoursLogged"`
}

// WeekDay is one cell of the weekly intensity strip.
type WeekDay struct {
	Day    string `json:"day"`
	Active bool   `json:"active"`
	Today  bool   `json:"today"`
	Future bool   `json:"future"`
}

// State is the derived streak view. It is never stored.
type State struct {
	Days            map[string]DayStats `json:"days"`
	ConsecutiveDays int                 `json:"consecutiveDays"`
	LongestStreak   int                 `json:"longestStreak"`
	TotalXP         int                 `json:"totalXP"`
	Today           string              `json:"today"`
	Week            []WeekDay           `json:"week"`
}

// Options controls how history is bucketed.
type Options struct {
	Location *time.Location
	Now      time.Time
	// ResetAt excludes every record earlier than it.
	ResetAt *time.Time
}

// Calculate buckets history into days of opts.Location and computes streaks.
func Calculate(tasks []domain.Task, sessions []domain.SessionRecord, opts Options) State {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	days := DayBuckets(tasks, sessions, loc, opts.ResetAt)
	today := clock.DayKey(now, loc)

	state := State{
		Days:            days,
		ConsecutiveDays: Consecutive(days, today),
		LongestStreak:   Longest(days),
		Today:           today,
		Week:            week(days, now, loc),
	}
	for _, d := range days {
		state.TotalXP += d.XPEarned
	}
	return state
}

// DayBuckets builds the per-day map. Completed tasks are bucketed by their
// completion instant, closed sessions by their start instant.
func DayBuckets(tasks []domain.Task, sessions []domain.SessionRecord, loc *time.Location, resetAt *time.Time) map[string]DayStats {
	days := make(map[string]DayStats)

	for _, task := range tasks {
		if !task.Completed || task.CompletedAt == nil {
			continue
		}
		if before(*task.CompletedAt, resetAt) {
			continue
		}
		key := clock.DayKey(*task.CompletedAt, loc)
		d := days[key]
		d.TasksCompleted++
		d.XPEarned += task.XPWorth
		days[key] = d
	}

	for _, session := range sessions {
		if session.EndedAt == nil || session.DurationSeconds <= 0 {
			continue
		}
		if before(session.StartedAt, resetAt) {
			continue
		}
		key := clock.DayKey(session.StartedAt, loc)
		d := days[key]
		d.HoursLogged += float64(session.DurationSeconds) / 3600
		days[key] = d
	}

	return days
}

// Consecutive counts active days ending at today, or at yesterday when today
// has no completed task yet. Only completed tasks make a day active.
func Consecutive(days map[string]DayStats, today string) int {
	anchor := ""
	if active(days, today) {
		anchor = today
	} else if yesterday, err := clock.AddDays(today, -1); err == nil && active(days, yesterday) {
		anchor = yesterday
	}
	if anchor == "" {
		return 0
	}

	count := 0
	for day := anchor; active(days, day); {
		count++
		prev, err := clock.AddDays(day, -1)
		if err != nil {
			break
		}
		day = prev
	}
	return count
}

// Longest returns the longest run of consecutive active days in history.
func Longest(days map[string]DayStats) int {
	keys := make([]string, 0, len(days))
	for key := range days {
		if active(days, key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	longest, run := 0, 0
	prev := ""
	for _, key := range keys {
		if next, err := clock.AddDays(prev, 1); prev != "" && err == nil && next == key {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
		prev = key
	}
	return longest
}

func week(days map[string]DayStats, now time.Time, loc *time.Location) []WeekDay {
	today := clock.DayKey(now, loc)
	keys := clock.WeekKeys(now, loc)
	out := make([]WeekDay, 0, len(keys))
	for _, key := range keys {
		out = append(out, WeekDay{
			Day:    key,
			Active: active(days, key),
			Today:  key == today,
			Future: key > today,
		})
	}
	return out
}

func active(days map[string]DayStats, key string) bool {
	return days[key].TasksCompleted > 0
}

func before(t time.Time, floor *time.Time) bool {
	return floor != nil && t.Before(*floor)
}
