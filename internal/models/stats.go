package models

// Activity identifies one of the tracks medals are awarded for.
type Activity string

const (
	ActivityMeditation Activity = "meditation"
	ActivityWorkout    Activity = "workout"
	ActivityHydration  Activity = "hydration"
)

// Title returns the achievement name shown for the activity.
func (a Activity) Title() string {
	switch a {
	case ActivityMeditation:
		return "Meditation Mastery"
	case ActivityWorkout:
		return "Workout Warrior"
	case ActivityHydration:
		return "Hydration Hero"
	default:
		return string(a)
	}
}

// UserStats holds the aggregate counters persisted alongside the record log.
type UserStats struct {
	MeditationCompletions int    `json:"meditationCompletions"`
	WorkoutCompletions    int    `json:"workoutCompletions"`
	HydrationStreak       int    `json:"hydrationStreak"`
	LastWorkoutDate       string `json:"lastWorkoutDate,omitempty"`    // YYYY-MM-DD format
	LastMeditationDate    string `json:"lastMeditationDate,omitempty"` // YYYY-MM-DD format
}

// Count returns the counter that drives the medal for an activity.
func (s UserStats) Count(a Activity) int {
	switch a {
	case ActivityMeditation:
		return s.MeditationCompletions
	case ActivityWorkout:
		return s.WorkoutCompletions
	case ActivityHydration:
		return s.HydrationStreak
	default:
		return 0
	}
}
