package domain

import "time"

// DefaultGoalXPReward is granted when a goal without an explicit reward reaches its target.
const DefaultGoalXPReward = 100

// Goal is a numeric milestone; reaching Target completes it once.
type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Target      int        `json:"target"`
	Progress    int        `json:"progress"`
	XPReward    int        `json:"xpReward"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
