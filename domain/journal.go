package domain

import "time"

// Mood tags a journal entry.
type Mood string

const (
	MoodFocus   Mood = "focus"
	MoodSuccess Mood = "success"
	MoodFailure Mood = "failure"
	MoodNeutral Mood = "neutral"
	MoodIdea    Mood = "idea"
)

func (m Mood) IsValid() bool {
	switch m {
	case MoodFocus, MoodSuccess, MoodFailure, MoodNeutral, MoodIdea:
		return true
	default:
		return false
	}
}

// JournalEntry is a free-form reflection written by the user.
type JournalEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Images    []string  `json:"images,omitempty"`
	Mood      Mood      `json:"mood"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
