// Package progress owns the completion counters and the hydration streak
// cache, and announces a medal whenever one of them climbs a tier.
package progress

import (
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/lifeboost/internal/clock"
	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/logger"
	"github.com/julianstephens/lifeboost/internal/medal"
	"github.com/julianstephens/lifeboost/internal/metrics"
	"github.com/julianstephens/lifeboost/internal/models"
	"github.com/julianstephens/lifeboost/internal/notifier"
	"github.com/julianstephens/lifeboost/internal/storage"
	"github.com/julianstephens/lifeboost/internal/streak"
	"github.com/julianstephens/lifeboost/internal/utils"
)

type Tracker struct {
	mu    sync.Mutex
	kv    *storage.KV
	clock clock.Clock
	emit  notifier.Emitter
}

func New(kv *storage.KV, clk clock.Clock, emit notifier.Emitter) *Tracker {
	if emit == nil {
		emit = notifier.Nop{}
	}
	return &Tracker{kv: kv, clock: clk, emit: emit}
}

// Stats returns the persisted counters, zero-valued when absent or unreadable.
func (t *Tracker) Stats() models.UserStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load()
}

func (t *Tracker) load() models.UserStats {
	var s models.UserStats
	if !t.kv.GetJSON(constants.KeyUserStats, &s) {
		return models.UserStats{}
	}
	if s.MeditationCompletions < 0 {
		s.MeditationCompletions = 0
	}
	if s.WorkoutCompletions < 0 {
		s.WorkoutCompletions = 0
	}
	if s.HydrationStreak < 0 {
		s.HydrationStreak = 0
	}
	return s
}

// RecordCompletion counts a finished session. Workouts count at most once
// per calendar day; every meditation counts. It reports whether the counter
// moved.
func (t *Tracker) RecordCompletion(a models.Activity, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.load()
	before := s.Count(a)
	today := utils.DateKey(now)

	switch a {
	case models.ActivityWorkout:
		if s.LastWorkoutDate == today {
			logger.Debug("workout already counted today", "date", today)
			return false
		}
		s.WorkoutCompletions++
		s.LastWorkoutDate = today
	case models.ActivityMeditation:
		s.MeditationCompletions++
		s.LastMeditationDate = today
	default:
		return false
	}

	t.kv.PutJSON(constants.KeyUserStats, s)
	t.announce(a, before, s.Count(a))
	return true
}

// RevertCompletion undoes today's completion of a, if there was one. The
// count never drops below zero.
func (t *Tracker) RevertCompletion(a models.Activity, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.load()
	today := utils.DateKey(now)

	switch a {
	case models.ActivityWorkout:
		if s.LastWorkoutDate != today {
			return false
		}
		s.WorkoutCompletions = max(0, s.WorkoutCompletions-1)
		s.LastWorkoutDate = ""
	case models.ActivityMeditation:
		if s.LastMeditationDate != today {
			return false
		}
		s.MeditationCompletions = max(0, s.MeditationCompletions-1)
		s.LastMeditationDate = ""
	default:
		return false
	}

	t.kv.PutJSON(constants.KeyUserStats, s)
	logger.Info("completion reverted", "activity", a, "date", today)
	return true
}

// RefreshHydrationStreak recomputes the streak from history, caches it and
// returns it.
func (t *Tracker) RefreshHydrationStreak(history []models.DailyRecord) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := streak.Current(history, t.clock.Now())
	s := t.load()
	before := s.HydrationStreak
	if current == before {
		return current
	}
	s.HydrationStreak = current
	t.kv.PutJSON(constants.KeyUserStats, s)
	t.announce(models.ActivityHydration, before, current)
	return current
}

// announce emits TierUnlocked when the tier strictly increased. Drops are silent.
func (t *Tracker) announce(a models.Activity, before, after int) {
	from, to := medal.For(before), medal.For(after)
	if to <= from {
		return
	}
	metrics.TierUnlocks.WithLabelValues(string(a)).Inc()
	logger.Info("tier unlocked", "activity", a, "tier", to.String())
	t.emit.Notify(models.NotifyTierUnlocked, fmt.Sprintf("🏅 %s: %s medal unlocked!", a.Title(), to))
}

// Completion adapts the tracker to a session timer for activity a.
func (t *Tracker) Completion(a models.Activity) *Completion {
	return &Completion{tracker: t, activity: a}
}

// Completion forwards session timer events to the tracker.
type Completion struct {
	tracker  *Tracker
	activity models.Activity
}

func (c *Completion) Complete(now time.Time) {
	c.tracker.RecordCompletion(c.activity, now)
}

func (c *Completion) Revert(now time.Time) {
	c.tracker.RevertCompletion(c.activity, now)
}
