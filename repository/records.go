package repository

import "time"

// The records below are the wire contract of the remote mirror. Field names
// are stable and deliberately differ from the local domain names.

type TaskRecord struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	ListID          string     `json:"list_id"`
	Title           string     `json:"title"`
	Completed       bool       `json:"completed"`
	Priority        string     `json:"priority"`
	XPWorth         int        `json:"xp_worth"`
	DurationMinutes *int       `json:"duration_minutes"`
	CompletedAt     *time.Time `json:"completed_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ProfileRecord struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	AvatarURL           string    `json:"avatar_url"`
	Level               int       `json:"level"`
	CurrentXP           int       `json:"current_xp"`
	NextLevelXP         int       `json:"next_level_xp"`
	TotalTasksCompleted int       `json:"total_tasks_completed"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type SessionRecord struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
	DurationSeconds int        `json:"duration_seconds"`
}

type JournalRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Images    []string  `json:"images"`
	Mood      string    `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GoalRecord struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Target      int        `json:"target"`
	Progress    int        `json:"progress"`
	XPReward    int        `json:"xp_reward"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// LiveSession is the presence blob of a focus session in progress.
type LiveSession struct {
	UserID         string     `json:"user_id"`
	SessionID      string     `json:"session_id"`
	StartedAt      time.Time  `json:"started_at"`
	Paused         bool       `json:"paused"`
	ElapsedSeconds int        `json:"elapsed_seconds"`
	ResumedAt      *time.Time `json:"resumed_at,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
