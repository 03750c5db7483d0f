package services

import (
	"slices"
	"strings"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/focus"
	"github.com/fastygo/quantix/internal/infrastructure/localstore"
	"github.com/fastygo/quantix/internal/progression"
)

// StartSession opens a focus session and mirrors it as an open row.
type StartSession struct{}

func (StartSession) apply(s *state, e env, eff *effects) error {
	next, err := focus.Start(s.focus, e.newID(), e.now)
	if err != nil {
		return err
	}
	s.focus = next

	open := focus.OpenRecord(next)
	eff.mirror(Command{Entity: EntitySession, Operation: OperationCreate, ID: open.ID, Record: sessionRecord(e.deviceID, open)})
	eff.mirror(Command{Entity: EntityLiveSession, Operation: OperationUpsert, ID: open.ID, Record: liveSession(e.deviceID, next, 0, e.now)})
	eff.focus = focusRunning
	eff.outcome.Session = &open
	return nil
}

type PauseSession struct{}

func (PauseSession) apply(s *state, e env, eff *effects) error {
	next, err := focus.Pause(s.focus, e.now)
	if err != nil {
		return err
	}
	s.focus = next

	eff.mirror(Command{Entity: EntityLiveSession, Operation: OperationUpsert, ID: next.SessionID, Record: liveSession(e.deviceID, next, focus.Elapsed(next, e.now), e.now)})
	eff.focus = focusHalted
	return nil
}

type ResumeSession struct{}

func (ResumeSession) apply(s *state, e env, eff *effects) error {
	next, err := focus.Resume(s.focus, e.now)
	if err != nil {
		return err
	}
	s.focus = next

	eff.mirror(Command{Entity: EntityLiveSession, Operation: OperationUpsert, ID: next.SessionID, Record: liveSession(e.deviceID, next, focus.Elapsed(next, e.now), e.now)})
	eff.focus = focusRunning
	return nil
}

// StopSession closes the session into an immutable record and adds its
// duration to the logged hours.
type StopSession struct{}

func (StopSession) apply(s *state, e env, eff *effects) error {
	next, record, err := focus.Stop(s.focus, e.now)
	if err != nil {
		return err
	}
	s.focus = next
	s.sessions = append(s.sessions, record)
	s.profile.TotalHoursLogged += float64(record.DurationSeconds) / 3600
	s.profile.UpdatedAt = e.now

	eff.touch(localstore.KeySessions, localstore.KeyProfile)
	eff.mirror(Command{Entity: EntitySession, Operation: OperationClose, ID: record.ID, Record: sessionRecord(e.deviceID, record)})
	eff.mirror(Command{Entity: EntityLiveSession, Operation: OperationDelete, ID: record.ID})
	eff.profile = true
	eff.focus = focusHalted
	eff.outcome.Session = &record
	return nil
}

// CreateJournal adds an entry at the top of the journal.
type CreateJournal struct {
	Title   string
	Content string
	Images  []string
	Mood    domain.Mood
}

func (m CreateJournal) apply(s *state, e env, eff *effects) error {
	title := strings.TrimSpace(m.Title)
	if title == "" && strings.TrimSpace(m.Content) == "" {
		return domain.ErrEmptyTitle
	}
	mood := m.Mood
	if !mood.IsValid() {
		mood = domain.MoodNeutral
	}
	entry := domain.JournalEntry{
		ID:        e.newID(),
		Title:     title,
		Content:   m.Content,
		Images:    slices.Clone(m.Images),
		Mood:      mood,
		CreatedAt: e.now,
		UpdatedAt: e.now,
	}
	s.journal = append([]domain.JournalEntry{entry}, s.journal...)

	eff.touch(localstore.KeyJournal)
	eff.mirror(Command{Entity: EntityJournal, Operation: OperationUpsert, ID: entry.ID, Record: journalRecord(e.deviceID, entry)})
	eff.outcome.Journal = &entry
	return nil
}

// UpdateJournal edits an entry. Nil fields are left unchanged.
type UpdateJournal struct {
	ID      string
	Title   *string
	Content *string
	Images  []string
	Mood    *domain.Mood
}

func (m UpdateJournal) apply(s *state, e env, eff *effects) error {
	idx := slices.IndexFunc(s.journal, func(j domain.JournalEntry) bool { return j.ID == m.ID })
	if idx < 0 {
		return domain.ErrJournalNotFound
	}
	entry := s.journal[idx]
	if m.Title != nil {
		entry.Title = strings.TrimSpace(*m.Title)
	}
	if m.Content != nil {
		entry.Content = *m.Content
	}
	if m.Images != nil {
		entry.Images = slices.Clone(m.Images)
	}
	if m.Mood != nil {
		if !m.Mood.IsValid() {
			return domain.ErrInvalidMood
		}
		entry.Mood = *m.Mood
	}
	if entry.Title == "" && strings.TrimSpace(entry.Content) == "" {
		return domain.ErrEmptyTitle
	}
	entry.UpdatedAt = e.now
	s.journal[idx] = entry

	eff.touch(localstore.KeyJournal)
	eff.mirror(Command{Entity: EntityJournal, Operation: OperationUpsert, ID: entry.ID, Record: journalRecord(e.deviceID, entry)})
	eff.outcome.Journal = &entry
	return nil
}

type DeleteJournal struct {
	ID string
}

func (m DeleteJournal) apply(s *state, _ env, eff *effects) error {
	idx := slices.IndexFunc(s.journal, func(j domain.JournalEntry) bool { return j.ID == m.ID })
	if idx < 0 {
		return domain.ErrJournalNotFound
	}
	entry := s.journal[idx]
	s.journal = slices.Delete(s.journal, idx, idx+1)

	eff.touch(localstore.KeyJournal)
	eff.mirror(Command{Entity: EntityJournal, Operation: OperationDelete, ID: entry.ID})
	eff.outcome.Journal = &entry
	return nil
}

// CreateGoal adds a numeric milestone.
type CreateGoal struct {
	Title    string
	Target   int
	XPReward int
}

func (m CreateGoal) apply(s *state, e env, eff *effects) error {
	title := strings.TrimSpace(m.Title)
	if title == "" {
		return domain.ErrEmptyTitle
	}
	if m.Target <= 0 {
		return domain.ErrInvalidGoalTarget
	}
	reward := m.XPReward
	if reward <= 0 {
		reward = domain.DefaultGoalXPReward
	}
	goal := domain.Goal{
		ID:        e.newID(),
		Title:     title,
		Target:    m.Target,
		XPReward:  reward,
		CreatedAt: e.now,
	}
	s.goals = append(s.goals, goal)

	eff.touch(localstore.KeyGoals)
	eff.mirror(Command{Entity: EntityGoal, Operation: OperationUpsert, ID: goal.ID, Record: goalRecord(e.deviceID, goal)})
	eff.outcome.Goal = &goal
	return nil
}

// UpdateGoalProgress sets progress. The first time progress reaches the
// target the goal completes and its reward is granted; it never un-completes.
type UpdateGoalProgress struct {
	ID       string
	Progress int
}

func (m UpdateGoalProgress) apply(s *state, e env, eff *effects) error {
	idx := slices.IndexFunc(s.goals, func(g domain.Goal) bool { return g.ID == m.ID })
	if idx < 0 {
		return domain.ErrGoalNotFound
	}
	goal := s.goals[idx]
	goal.Progress = max(m.Progress, 0)

	if !goal.Completed && goal.Progress >= goal.Target {
		at := e.now
		goal.Completed = true
		goal.CompletedAt = &at

		profile, leveledUp := progression.GainXP(s.profile, goal.XPReward)
		profile.UpdatedAt = e.now
		s.profile = profile
		eff.outcome.LeveledUp = leveledUp
		eff.outcome.GoalCompleted = true
		eff.touch(localstore.KeyProfile)
		eff.profile = true
	}
	s.goals[idx] = goal

	eff.touch(localstore.KeyGoals)
	eff.mirror(Command{Entity: EntityGoal, Operation: OperationUpsert, ID: goal.ID, Record: goalRecord(e.deviceID, goal)})
	eff.outcome.Goal = &goal
	return nil
}

type DeleteGoal struct {
	ID string
}

func (m DeleteGoal) apply(s *state, _ env, eff *effects) error {
	idx := slices.IndexFunc(s.goals, func(g domain.Goal) bool { return g.ID == m.ID })
	if idx < 0 {
		return domain.ErrGoalNotFound
	}
	goal := s.goals[idx]
	s.goals = slices.Delete(s.goals, idx, idx+1)

	eff.touch(localstore.KeyGoals)
	eff.mirror(Command{Entity: EntityGoal, Operation: OperationDelete, ID: goal.ID})
	eff.outcome.Goal = &goal
	return nil
}
