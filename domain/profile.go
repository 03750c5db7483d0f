package domain

import "time"

const (
	DefaultProfileName   = "Agent"
	DefaultAvatarRef     = "https://api.dicebear.com/7.x/bottts/svg?seed=Prime"
	DefaultXPToNextLevel = 1000
)

// UserProfile holds progression state and lifetime stats for one device.
type UserProfile struct {
	Name                string    `json:"name"`
	AvatarRef           string    `json:"avatarRef"`
	RankTitle           string    `json:"rankTitle"`
	Zoom                float64   `json:"zoom"`
	Level               int       `json:"level"`
	CurrentXP           int       `json:"currentXP"`
	XPToNextLevel       int       `json:"xpToNextLevel"`
	TotalHoursLogged    float64   `json:"totalHoursLogged"`
	TotalTasksCompleted int       `json:"totalTasksCompleted"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// DefaultProfile is the profile a fresh install starts with.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:          DefaultProfileName,
		AvatarRef:     DefaultAvatarRef,
		RankTitle:     "Initiate",
		Zoom:          1,
		Level:         1,
		CurrentXP:     0,
		XPToNextLevel: DefaultXPToNextLevel,
	}
}

// Normalize repairs values a corrupt or partial blob may carry.
func (p *UserProfile) Normalize() {
	if p == nil {
		return
	}
	if p.Level < 1 {
		p.Level = 1
	}
	if p.XPToNextLevel <= 0 {
		p.XPToNextLevel = DefaultXPToNextLevel
	}
	if p.CurrentXP < 0 {
		p.CurrentXP = 0
	}
	if p.TotalHoursLogged < 0 {
		p.TotalHoursLogged = 0
	}
	if p.TotalTasksCompleted < 0 {
		p.TotalTasksCompleted = 0
	}
	if p.Zoom <= 0 {
		p.Zoom = 1
	}
	if p.Name == "" {
		p.Name = DefaultProfileName
	}
	if p.AvatarRef == "" {
		p.AvatarRef = DefaultAvatarRef
	}
}
