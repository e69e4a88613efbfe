package models

// NotificationKind classifies a user-facing notification.
type NotificationKind string

const (
	NotifyHydration       NotificationKind = "hydration"
	NotifyBedtime         NotificationKind = "bedtime"
	NotifySessionComplete NotificationKind = "session_complete"
	NotifyTierUnlocked    NotificationKind = "tier_unlocked"
)

// Notice is a notification template carried by a countdown.
type Notice struct {
	Kind    NotificationKind
	Title   string
	Message string
}

// Title is the heading shown above a notification of this kind.
func (k NotificationKind) Title() string {
	switch k {
	case NotifyHydration:
		return "Hydration"
	case NotifyBedtime:
		return "Bedtime"
	case NotifySessionComplete:
		return "Session complete"
	case NotifyTierUnlocked:
		return "Achievement unlocked"
	default:
		return "Lifeboost"
	}
}
