package models

// ChecklistItem is a single exercise in the daily workout checklist.
// Date records the day the item was last toggled so a half-finished list
// is only restored on the same day.
type ChecklistItem struct {
	ID   string `json:"id"`
	Done bool   `json:"done"`
	Date string `json:"date,omitempty"` // YYYY-MM-DD format
}

// Exercise describes an entry of the default workout.
type Exercise struct {
	ID   string
	Name string
}

// DefaultExercises is the general workout session offered every day.
var DefaultExercises = []Exercise{
	{ID: "pushups", Name: "Push-ups (3 sets of 10-15 reps)"},
	{ID: "squats", Name: "Squats (3 sets of 12-15 reps)"},
	{ID: "plank", Name: "Plank (3 sets of 30-60 seconds)"},
	{ID: "jumping-jacks", Name: "Jumping Jacks (3 sets of 30-60 seconds)"},
	{ID: "lunges", Name: "Lunges (3 sets of 10-12 reps per leg)"},
	{ID: "bicep-curls", Name: "Bicep Curls (3 sets of 10-12 reps per arm)"},
}

// ExerciseName looks up the display name for an exercise ID.
func ExerciseName(id string) string {
	for _, e := range DefaultExercises {
		if e.ID == id {
			return e.Name
		}
	}
	return id
}
