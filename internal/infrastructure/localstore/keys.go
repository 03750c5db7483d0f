package localstore

// DefaultBucket holds every HUD blob.
const DefaultBucket = "hud"

// Key names one independently persisted blob.
type Key string

const (
	KeyProfile  Key = "profile"
	KeyTasks    Key = "tasks"
	KeyLists    Key = "lists"
	KeySettings Key = "settings"
	KeySessions Key = "sessions"
	KeyJournal  Key = "journal"
	KeyGoals    Key = "goals"
	KeyDeviceID Key = "device_id"
)
