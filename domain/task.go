package domain

import (
	"strings"
	"time"
)

// Priority ranks a task and scales its XP value.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

const (
	DefaultListID          = "daily"
	TasksOnlyListID        = "tasks_only"
	DefaultDurationMinutes = 20
)

// Task represents a user-owned activity item. XPWorth is frozen at creation.
type Task struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Completed       bool       `json:"completed"`
	Priority        Priority   `json:"priority"`
	XPWorth         int        `json:"xpWorth"`
	ListID          string     `json:"listId"`
	CreatedAt       time.Time  `json:"createdAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Completed
}

// SetCompleted keeps CompletedAt non-nil exactly when Completed is true.
func (t *Task) SetCompleted(completed bool, at time.Time) {
	if t == nil {
		return
	}
	t.Completed = completed
	if completed {
		ts := at
		t.CompletedAt = &ts
		return
	}
	t.CompletedAt = nil
}

// TaskList groups tasks on the dashboard.
type TaskList struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// IsDaily reports whether the list follows the daily reset dashboard rule.
func (l TaskList) IsDaily() bool {
	return IsDailyListID(l.ID)
}

func IsDailyListID(id string) bool {
	return id == DefaultListID || strings.Contains(id, "daily")
}

// DefaultTaskLists returns the lists every fresh install starts with.
func DefaultTaskLists() []TaskList {
	return []TaskList{
		{ID: DefaultListID, Name: "Daily Tasks", Description: "Your active missions.", Icon: "calendar"},
		{ID: TasksOnlyListID, Name: "Tasks Only", Description: "General to-do items.", Icon: "layers"},
	}
}

// ListStats is the dashboard total for a single list.
type ListStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}
