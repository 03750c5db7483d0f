package transport

type ProfileUpdateRequest struct {
	Name      *string  `json:"name"`
	AvatarRef *string  `json:"avatarRef"`
	Zoom      *float64 `json:"zoom"`
}

type TaskCreateRequest struct {
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	Priority        string `json:"priority"`
	ListID          string `json:"listId"`
}

type ListCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ListUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type JournalCreateRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
	Mood    string   `json:"mood"`
}

type JournalUpdateRequest struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Images  []string `json:"images"`
	Mood    *string  `json:"mood"`
}

type GoalCreateRequest struct {
	Title    string `json:"title"`
	Target   int    `json:"target"`
	XPReward int    `json:"xpReward"`
}

type GoalProgressRequest struct {
	Progress *int `json:"progress"`
}

type SettingsUpdateRequest struct {
	AppName     *string `json:"appName"`
	AppSubtitle *string `json:"appSubtitle"`
	Timezone    *string `json:"timezone"`
	Theme       *string `json:"theme"`
}
