package services

import (
	"time"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/progression"
	"github.com/fastygo/quantix/repository"
)

// Minimum xpWorth assumed for remote rows that carry none.
const hydratedMinXP = 10

func taskRecord(userID string, t domain.Task) repository.TaskRecord {
	return repository.TaskRecord{
		ID:              t.ID,
		UserID:          userID,
		ListID:          t.ListID,
		Title:           t.Title,
		Completed:       t.Completed,
		Priority:        string(t.Priority),
		XPWorth:         t.XPWorth,
		DurationMinutes: t.DurationMinutes,
		CompletedAt:     t.CompletedAt,
		CreatedAt:       t.CreatedAt,
	}
}

func taskFromRecord(r repository.TaskRecord) domain.Task {
	t := domain.Task{
		ID:              r.ID,
		Title:           r.Title,
		Completed:       r.Completed,
		Priority:        domain.Priority(r.Priority),
		XPWorth:         r.XPWorth,
		ListID:          r.ListID,
		CreatedAt:       r.CreatedAt,
		CompletedAt:     r.CompletedAt,
		DurationMinutes: r.DurationMinutes,
	}
	if t.XPWorth <= 0 {
		t.XPWorth = hydratedMinXP
	}
	if !t.Priority.IsValid() {
		t.Priority = domain.PriorityMedium
	}
	if t.ListID == "" {
		t.ListID = domain.DefaultListID
	}
	if t.Completed && t.CompletedAt == nil {
		at := t.CreatedAt
		t.CompletedAt = &at
	}
	if !t.Completed {
		t.CompletedAt = nil
	}
	return t
}

func profileRecord(userID string, p domain.UserProfile, now time.Time) repository.ProfileRecord {
	return repository.ProfileRecord{
		ID:                  userID,
		Name:                p.Name,
		AvatarURL:           p.AvatarRef,
		Level:               p.Level,
		CurrentXP:           p.CurrentXP,
		NextLevelXP:         p.XPToNextLevel,
		TotalTasksCompleted: p.TotalTasksCompleted,
		UpdatedAt:           now,
	}
}

// mergeProfile overlays the mirrored fields of r on p. Zoom and hours stay local.
func mergeProfile(p domain.UserProfile, r repository.ProfileRecord) domain.UserProfile {
	if r.Name != "" {
		p.Name = r.Name
	}
	if r.AvatarURL != "" {
		p.AvatarRef = r.AvatarURL
	}
	p.Level = r.Level
	p.CurrentXP = r.CurrentXP
	p.XPToNextLevel = r.NextLevelXP
	p.TotalTasksCompleted = r.TotalTasksCompleted
	p.UpdatedAt = r.UpdatedAt
	p.Normalize()
	p.RankTitle = progression.RankTitle(p.Level)
	return p
}

func sessionRecord(userID string, s domain.SessionRecord) repository.SessionRecord {
	return repository.SessionRecord{
		ID:              s.ID,
		UserID:          userID,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
		DurationSeconds: s.DurationSeconds,
	}
}

func sessionFromRecord(r repository.SessionRecord) domain.SessionRecord {
	return domain.SessionRecord{
		ID:              r.ID,
		StartedAt:       r.StartedAt,
		EndedAt:         r.EndedAt,
		DurationSeconds: max(r.DurationSeconds, 0),
	}
}

func journalRecord(userID string, e domain.JournalEntry) repository.JournalRecord {
	return repository.JournalRecord{
		ID:        e.ID,
		UserID:    userID,
		Title:     e.Title,
		Content:   e.Content,
		Images:    e.Images,
		Mood:      string(e.Mood),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func journalFromRecord(r repository.JournalRecord) domain.JournalEntry {
	e := domain.JournalEntry{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Images:    r.Images,
		Mood:      domain.Mood(r.Mood),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if !e.Mood.IsValid() {
		e.Mood = domain.MoodNeutral
	}
	return e
}

func goalRecord(userID string, g domain.Goal) repository.GoalRecord {
	return repository.GoalRecord{
		ID:          g.ID,
		UserID:      userID,
		Title:       g.Title,
		Target:      g.Target,
		Progress:    g.Progress,
		XPReward:    g.XPReward,
		Completed:   g.Completed,
		CompletedAt: g.CompletedAt,
		CreatedAt:   g.CreatedAt,
	}
}

func goalFromRecord(r repository.GoalRecord) domain.Goal {
	g := domain.Goal{
		ID:          r.ID,
		Title:       r.Title,
		Target:      r.Target,
		Progress:    max(r.Progress, 0),
		XPReward:    r.XPReward,
		Completed:   r.Completed,
		CreatedAt:   r.CreatedAt,
		CompletedAt: r.CompletedAt,
	}
	if g.XPReward <= 0 {
		g.XPReward = domain.DefaultGoalXPReward
	}
	return g
}

func liveSession(userID string, s domain.SessionState, elapsed int, now time.Time) repository.LiveSession {
	live := repository.LiveSession{
		UserID:         userID,
		SessionID:      s.SessionID,
		Paused:         s.IsPaused,
		ElapsedSeconds: elapsed,
		ResumedAt:      s.StartTime,
		UpdatedAt:      now,
	}
	if s.StartedAt != nil {
		live.StartedAt = *s.StartedAt
	}
	return live
}
