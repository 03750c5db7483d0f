package services

import (
	"slices"
	"time"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/infrastructure/localstore"
)

// state is the whole local HUD state. Mutations work on a clone and the
// clone replaces the live state only after it is complete.
type state struct {
	profile  domain.UserProfile
	tasks    []domain.Task
	lists    []domain.TaskList
	settings domain.AppSettings
	sessions []domain.SessionRecord
	journal  []domain.JournalEntry
	goals    []domain.Goal
	focus    domain.SessionState
}

func defaultState(timezone string) state {
	return state{
		profile:  domain.DefaultProfile(),
		tasks:    []domain.Task{},
		lists:    domain.DefaultTaskLists(),
		settings: domain.DefaultSettings(timezone),
		sessions: []domain.SessionRecord{},
		journal:  []domain.JournalEntry{},
		goals:    []domain.Goal{},
	}
}

// clone copies every slice header so element writes never reach the live
// state. Pointer fields inside records are replaced, never written through.
func (s state) clone() state {
	s.tasks = slices.Clone(s.tasks)
	s.lists = slices.Clone(s.lists)
	s.sessions = slices.Clone(s.sessions)
	s.journal = slices.Clone(s.journal)
	s.goals = slices.Clone(s.goals)
	return s
}

// blob returns the value persisted under key.
func (s *state) blob(key localstore.Key) any {
	switch key {
	case localstore.KeyProfile:
		return s.profile
	case localstore.KeyTasks:
		return s.tasks
	case localstore.KeyLists:
		return s.lists
	case localstore.KeySettings:
		return s.settings
	case localstore.KeySessions:
		return s.sessions
	case localstore.KeyJournal:
		return s.journal
	case localstore.KeyGoals:
		return s.goals
	default:
		return nil
	}
}

// env carries the inputs a mutation may not compute itself.
type env struct {
	now      time.Time
	deviceID string
	newID    func() string
}

type focusChange int

const (
	focusUnchanged focusChange = iota
	focusRunning
	focusHalted
)

// effects collects what a mutation changed beyond the state itself.
type effects struct {
	dirty    []localstore.Key
	commands []Command
	profile  bool
	focus    focusChange
	outcome  Outcome
}

func (e *effects) touch(keys ...localstore.Key) {
	for _, k := range keys {
		if !slices.Contains(e.dirty, k) {
			e.dirty = append(e.dirty, k)
		}
	}
}

func (e *effects) mirror(cmd Command) {
	e.commands = append(e.commands, cmd)
}

// Outcome is the result of one applied mutation. GoalCompleted is set only
// by the update that first reaches a goal's target. Durable is false when the
// local store rejected the write; the state still changed in memory.
type Outcome struct {
	Profile       domain.UserProfile    `json:"profile"`
	Focus         domain.SessionState   `json:"focus"`
	LeveledUp     bool                  `json:"leveledUp"`
	GoalCompleted bool                  `json:"goalCompleted"`
	Task          *domain.Task          `json:"task,omitempty"`
	List          *domain.TaskList      `json:"list,omitempty"`
	Session       *domain.SessionRecord `json:"session,omitempty"`
	Journal       *domain.JournalEntry  `json:"journal,omitempty"`
	Goal          *domain.Goal          `json:"goal,omitempty"`
	Settings      *domain.AppSettings   `json:"settings,omitempty"`
	Durable       bool                  `json:"durable"`
}
