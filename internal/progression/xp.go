package progression

import (
	"math"

	"github.com/fastygo/quantix/domain"
)

const (
	// LevelGrowth scales the threshold each time a level is gained.
	LevelGrowth = 1.5

	// XPPerMinute is the base task value per estimated minute of work.
	XPPerMinute = 2

	// MinTaskXP is the floor every task is worth.
	MinTaskXP = 10
)

// GainXP adds amount to the profile, carrying the remainder across as many
// level thresholds as it crosses. Negative amounts are treated as zero.
func GainXP(profile domain.UserProfile, amount int) (domain.UserProfile, bool) {
	profile.Normalize()
	if amount < 0 {
		amount = 0
	}

	leveledUp := false
	xp := profile.CurrentXP + amount
	for xp >= profile.XPToNextLevel {
		profile.Level++
		xp -= profile.XPToNextLevel
		profile.XPToNextLevel = nextThreshold(profile.XPToNextLevel)
		leveledUp = true
	}
	profile.CurrentXP = xp
	profile.RankTitle = RankTitle(profile.Level)
	return profile, leveledUp
}

// LoseXP removes amount from the current level's progress. It never lowers
// the level and clamps at zero.
func LoseXP(profile domain.UserProfile, amount int) domain.UserProfile {
	profile.Normalize()
	if amount < 0 {
		amount = 0
	}
	profile.CurrentXP = max(0, profile.CurrentXP-amount)
	return profile
}

// ResetLevel returns the profile to level 1 while keeping identity and stats.
func ResetLevel(profile domain.UserProfile) domain.UserProfile {
	profile.Level = 1
	profile.CurrentXP = 0
	profile.XPToNextLevel = domain.DefaultXPToNextLevel
	profile.RankTitle = RankTitle(1)
	return profile
}

// TaskXP values a task at creation time.
func TaskXP(durationMinutes int, priority domain.Priority) int {
	if durationMinutes < 0 {
		durationMinutes = 0
	}
	base := float64(durationMinutes * XPPerMinute)
	xp := int(math.Round(base * priorityMultiplier(priority)))
	return max(MinTaskXP, xp)
}

func priorityMultiplier(p domain.Priority) float64 {
	switch p {
	case domain.PriorityLow:
		return 0.5
	case domain.PriorityHigh:
		return 1.5
	case domain.PriorityCritical:
		return 2.0
	default:
		return 1.0
	}
}

func nextThreshold(current int) int {
	next := int(math.Floor(float64(current) * LevelGrowth))
	// A threshold of 1 would floor back to 1 forever; keep it growing.
	if next <= current {
		next = current + 1
	}
	return next
}
