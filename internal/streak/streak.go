// Package streak counts consecutive days on which the hydration goal was met.
package streak

import (
	"time"

	"github.com/julianstephens/lifeboost/internal/models"
	"github.com/julianstephens/lifeboost/internal/utils"
)

func index(history []models.DailyRecord) map[string]models.DailyRecord {
	byDate := make(map[string]models.DailyRecord, len(history))
	for _, r := range history {
		if _, dup := byDate[r.Date]; !dup {
			byDate[r.Date] = r
		}
	}
	return byDate
}

// Current returns the streak ending on today's calendar date. A record
// for today that misses its goal breaks the streak immediately; a met one
// counts. When today has no record yet the streak is whatever ended
// yesterday. Walking back stops at the first missing or failed day.
// History order does not matter.
func Current(history []models.DailyRecord, now time.Time) int {
	byDate := index(history)
	today := utils.DateKey(now)

	count := 0
	if rec, ok := byDate[today]; ok {
		if !rec.MetGoal() {
			return 0
		}
		count = 1
	}

	day := today
	for {
		prev, err := utils.PreviousDay(day)
		if err != nil {
			return count
		}
		rec, ok := byDate[prev]
		if !ok || !rec.MetGoal() {
			return count
		}
		count++
		day = prev
	}
}

// Longest returns the longest run of consecutive met days anywhere in history.
func Longest(history []models.DailyRecord) int {
	byDate := index(history)

	best := 0
	for date, rec := range byDate {
		if !rec.MetGoal() {
			continue
		}
		// Only start counting at the first day of a run.
		if prev, err := utils.PreviousDay(date); err == nil {
			if p, ok := byDate[prev]; ok && p.MetGoal() {
				continue
			}
		}
		run := 1
		for day := date; ; run++ {
			next, err := utils.NextDay(day)
			if err != nil {
				break
			}
			r, ok := byDate[next]
			if !ok || !r.MetGoal() {
				break
			}
			day = next
		}
		if run > best {
			best = run
		}
	}
	return best
}
