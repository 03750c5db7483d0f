package services

import (
	"slices"
	"strings"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/clock"
	"github.com/fastygo/quantix/internal/infrastructure/localstore"
	"github.com/fastygo/quantix/internal/progression"
)

// Mutation is one state transition accepted by Synchronizer.Apply.
// Implementations live in this package so every transition follows the
// compute-then-persist discipline.
type Mutation interface {
	apply(s *state, e env, eff *effects) error
}

// CreateTask adds a task to the top of its list. XPWorth is computed once here.
type CreateTask struct {
	Title           string
	DurationMinutes int
	Priority        domain.Priority
	ListID          string
}

func (m CreateTask) apply(s *state, e env, eff *effects) error {
	title := strings.TrimSpace(m.Title)
	if title == "" {
		return domain.ErrEmptyTitle
	}
	minutes := m.DurationMinutes
	if minutes <= 0 {
		minutes = domain.DefaultDurationMinutes
	}
	priority := m.Priority
	if !priority.IsValid() {
		priority = domain.PriorityMedium
	}
	listID := m.ListID
	if listID == "" {
		listID = domain.DefaultListID
	}
	if findList(s.lists, listID) < 0 {
		return domain.ErrListNotFound
	}

	task := domain.Task{
		ID:              e.newID(),
		Title:           title,
		Priority:        priority,
		XPWorth:         progression.TaskXP(minutes, priority),
		ListID:          listID,
		CreatedAt:       e.now,
		DurationMinutes: &minutes,
	}
	s.tasks = append([]domain.Task{task}, s.tasks...)

	eff.touch(localstore.KeyTasks)
	eff.mirror(Command{Entity: EntityTask, Operation: OperationCreate, ID: task.ID, Record: taskRecord(e.deviceID, task)})
	eff.outcome.Task = &task
	return nil
}

// ToggleTask flips completion. Completing grants the task's XP; undoing
// removes it again without ever lowering the level.
type ToggleTask struct {
	ID string
}

func (m ToggleTask) apply(s *state, e env, eff *effects) error {
	idx := findTask(s.tasks, m.ID)
	if idx < 0 {
		return domain.ErrTaskNotFound
	}
	task := s.tasks[idx]
	task.SetCompleted(!task.Completed, e.now)

	if task.Completed {
		profile, leveledUp := progression.GainXP(s.profile, task.XPWorth)
		profile.TotalTasksCompleted++
		s.profile = profile
		eff.outcome.LeveledUp = leveledUp
	} else {
		profile := progression.LoseXP(s.profile, task.XPWorth)
		profile.TotalTasksCompleted = max(profile.TotalTasksCompleted-1, 0)
		s.profile = profile
	}
	s.profile.UpdatedAt = e.now
	s.tasks[idx] = task

	eff.touch(localstore.KeyTasks, localstore.KeyProfile)
	eff.mirror(Command{Entity: EntityTask, Operation: OperationUpdate, ID: task.ID, Record: taskRecord(e.deviceID, task)})
	eff.profile = true
	eff.outcome.Task = &task
	return nil
}

// DeleteTask removes a task. XP already granted for it is kept.
type DeleteTask struct {
	ID string
}

func (m DeleteTask) apply(s *state, e env, eff *effects) error {
	idx := findTask(s.tasks, m.ID)
	if idx < 0 {
		return domain.ErrTaskNotFound
	}
	task := s.tasks[idx]
	s.tasks = slices.Delete(s.tasks, idx, idx+1)

	eff.touch(localstore.KeyTasks)
	eff.mirror(Command{Entity: EntityTask, Operation: OperationDelete, ID: task.ID})
	eff.outcome.Task = &task
	return nil
}

// CreateList adds a local task list.
type CreateList struct {
	Name        string
	Description string
	Icon        string
}

func (m CreateList) apply(s *state, e env, eff *effects) error {
	name := strings.TrimSpace(m.Name)
	if name == "" {
		return domain.ErrEmptyTitle
	}
	list := domain.TaskList{
		ID:          e.newID(),
		Name:        name,
		Description: m.Description,
		Icon:        m.Icon,
	}
	s.lists = append(s.lists, list)

	eff.touch(localstore.KeyLists)
	eff.outcome.List = &list
	return nil
}

// UpdateList edits list metadata. Nil fields are left unchanged.
type UpdateList struct {
	ID          string
	Name        *string
	Description *string
	Icon        *string
}

func (m UpdateList) apply(s *state, _ env, eff *effects) error {
	idx := findList(s.lists, m.ID)
	if idx < 0 {
		return domain.ErrListNotFound
	}
	list := s.lists[idx]
	if m.Name != nil {
		name := strings.TrimSpace(*m.Name)
		if name == "" {
			return domain.ErrEmptyTitle
		}
		list.Name = name
	}
	if m.Description != nil {
		list.Description = *m.Description
	}
	if m.Icon != nil {
		list.Icon = *m.Icon
	}
	s.lists[idx] = list

	eff.touch(localstore.KeyLists)
	eff.outcome.List = &list
	return nil
}

// UpdateProfile edits the user-facing profile fields.
type UpdateProfile struct {
	Name      *string
	AvatarRef *string
	Zoom      *float64
}

func (m UpdateProfile) apply(s *state, e env, eff *effects) error {
	p := s.profile
	if m.Name != nil {
		p.Name = strings.TrimSpace(*m.Name)
	}
	if m.AvatarRef != nil {
		p.AvatarRef = strings.TrimSpace(*m.AvatarRef)
	}
	if m.Zoom != nil {
		p.Zoom = *m.Zoom
	}
	p.Normalize()
	p.UpdatedAt = e.now
	s.profile = p

	eff.touch(localstore.KeyProfile)
	eff.profile = true
	return nil
}

// ResetLevel returns progression to level 1. Lifetime stats are kept.
type ResetLevel struct{}

func (ResetLevel) apply(s *state, e env, eff *effects) error {
	s.profile = progression.ResetLevel(s.profile)
	s.profile.UpdatedAt = e.now

	eff.touch(localstore.KeyProfile)
	eff.profile = true
	return nil
}

// UpdateSettings edits device-local preferences. Nil fields are left unchanged.
type UpdateSettings struct {
	AppName     *string
	AppSubtitle *string
	Timezone    *string
	Theme       *domain.Theme
}

func (m UpdateSettings) apply(s *state, _ env, eff *effects) error {
	settings := s.settings
	if m.AppName != nil {
		settings.AppName = *m.AppName
	}
	if m.AppSubtitle != nil {
		settings.AppSubtitle = *m.AppSubtitle
	}
	if m.Timezone != nil {
		if _, err := clock.LoadLocation(*m.Timezone); err != nil {
			return domain.ErrInvalidTimezone
		}
		settings.Timezone = *m.Timezone
	}
	if m.Theme != nil {
		if !m.Theme.IsValid() {
			return domain.ErrInvalidTheme
		}
		settings.Theme = *m.Theme
	}
	s.settings = settings

	eff.touch(localstore.KeySettings)
	eff.outcome.Settings = &settings
	return nil
}

// ResetStreak moves the streak floor to now. History is kept.
type ResetStreak struct{}

func (ResetStreak) apply(s *state, e env, eff *effects) error {
	at := e.now
	s.settings.StreakResetAt = &at

	settings := s.settings
	eff.touch(localstore.KeySettings)
	eff.outcome.Settings = &settings
	return nil
}

func findTask(tasks []domain.Task, id string) int {
	return slices.IndexFunc(tasks, func(t domain.Task) bool { return t.ID == id })
}

func findList(lists []domain.TaskList, id string) int {
	return slices.IndexFunc(lists, func(l domain.TaskList) bool { return l.ID == id })
}
