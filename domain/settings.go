package domain

import "time"

// Theme selects the HUD color palette.
type Theme string

const (
	ThemeNeonLime     Theme = "neon-lime"
	ThemeCrimsonRed   Theme = "crimson-red"
	ThemeCyanBlue     Theme = "cyan-blue"
	ThemeRoyalPurple  Theme = "royal-purple"
	ThemeSunsetOrange Theme = "sunset-orange"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeNeonLime, ThemeCrimsonRed, ThemeCyanBlue, ThemeRoyalPurple, ThemeSunsetOrange:
		return true
	default:
		return false
	}
}

// AppSettings are device-local preferences. They are never mirrored remotely.
type AppSettings struct {
	AppName     string `json:"appName"`
	AppSubtitle string `json:"appSubtitle"`
	Timezone    string `json:"timezone"`
	Theme       Theme  `json:"theme"`
	// StreakResetAt excludes every task and session before it from streak math.
	StreakResetAt *time.Time `json:"streakResetTimestamp,omitempty"`
}

// DefaultSettings returns settings for a fresh install in the given timezone.
func DefaultSettings(timezone string) AppSettings {
	if timezone == "" {
		timezone = "UTC"
	}
	return AppSettings{
		AppName:     "Quantix",
		AppSubtitle: "Agency HUD",
		Timezone:    timezone,
		Theme:       ThemeNeonLime,
	}
}
