package progress

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifeboost/internal/medal"
	"github.com/julianstephens/lifeboost/internal/models"
	"github.com/julianstephens/lifeboost/internal/streak"
)

// Activities lists the medal tracks in display order.
var Activities = []models.Activity{
	models.ActivityMeditation,
	models.ActivityHydration,
	models.ActivityWorkout,
}

// Achievement is one row of the profile summary.
type Achievement struct {
	Activity models.Activity
	Count    int
	Tier     medal.Tier
}

type Summary struct {
	Name          string
	Achievements  []Achievement
	LongestStreak int
	LastWorkout   string
}

// Summary builds the profile view for name from the cached stats and history.
func (t *Tracker) Summary(name string, history []models.DailyRecord) Summary {
	s := t.Stats()
	out := Summary{
		Name:          name,
		LongestStreak: streak.Longest(history),
		LastWorkout:   s.LastWorkoutDate,
	}
	for _, a := range Activities {
		n := s.Count(a)
		out.Achievements = append(out.Achievements, Achievement{Activity: a, Count: n, Tier: medal.For(n)})
	}
	return out
}

// Report renders s as the plain-text profile page.
func (s Summary) Report() string {
	var b strings.Builder

	name := s.Name
	if name == "" {
		name = "guest"
	}
	fmt.Fprintf(&b, "Profile: %s\n\n", name)

	fmt.Fprintf(&b, "%-20s %6s  %s\n", "Achievement", "Count", "Medal")
	for _, a := range s.Achievements {
		fmt.Fprintf(&b, "%-20s %6d  %s\n", a.Activity.Title(), a.Count, a.Tier)
	}

	fmt.Fprintf(&b, "\nLongest hydration streak: %d day(s)\n", s.LongestStreak)
	if s.LastWorkout != "" {
		fmt.Fprintf(&b, "Last workout: %s\n", s.LastWorkout)
	}

	b.WriteString("\nMedal guide\n")
	for _, tier := range medal.Guide() {
		fmt.Fprintf(&b, "  %-8s %d\n", tier, tier.Level())
	}
	return b.String()
}
