package models

// DailyRecord is one calendar day of hydration tracking.
type DailyRecord struct {
	Date     string  `json:"date"` // YYYY-MM-DD format
	Goal     float64 `json:"goal"`
	Intake   float64 `json:"intake"`
	Feedback string  `json:"feedback,omitempty"`
}

// MetGoal reports whether the day's intake reached its goal.
func (r DailyRecord) MetGoal() bool {
	return r.Intake >= r.Goal
}

// Progress returns intake as a percentage of goal, capped at 100.
func (r DailyRecord) Progress() float64 {
	if r.Goal <= 0 {
		return 0
	}
	p := r.Intake / r.Goal * 100
	if p > 100 {
		return 100
	}
	return p
}
