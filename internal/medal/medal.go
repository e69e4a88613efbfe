// Package medal maps completion counts and streak lengths to achievement tiers.
package medal

// Tier is an ordered achievement level.
type Tier int

const (
	None Tier = iota
	Bronze
	Silver
	Gold
	Diamond
	Expert
)

// For returns the tier earned by count. Counts above Expert are capped.
func For(count int) Tier {
	if count < 1 {
		return None
	}
	if count >= int(Expert) {
		return Expert
	}
	return Tier(count)
}

func (t Tier) String() string {
	switch t {
	case None:
		return "No Medal"
	case Bronze:
		return "Bronze"
	case Silver:
		return "Silver"
	case Gold:
		return "Gold"
	case Diamond:
		return "Diamond"
	case Expert:
		return "Expert"
	default:
		return "Unknown"
	}
}

// Level is the numeric tier level, 0 for None.
func (t Tier) Level() int {
	return int(t)
}

// Guide lists the earnable tiers in ascending order.
func Guide() []Tier {
	return []Tier{Bronze, Silver, Gold, Diamond, Expert}
}
