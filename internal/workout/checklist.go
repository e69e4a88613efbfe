// Package workout tracks the daily exercise checklist that accompanies the
// workout timer. Ticking off every exercise completes the day's workout.
package workout

import (
	"errors"
	"sync"

	"github.com/julianstephens/lifeboost/internal/clock"
	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/models"
	"github.com/julianstephens/lifeboost/internal/notifier"
	"github.com/julianstephens/lifeboost/internal/progress"
	"github.com/julianstephens/lifeboost/internal/storage"
	"github.com/julianstephens/lifeboost/internal/utils"
)

var (
	ErrUnknownExercise  = errors.New("unknown exercise")
	ErrAlreadyCompleted = errors.New("today's workout is already completed")
)

type Checklist struct {
	mu      sync.Mutex
	kv      *storage.KV
	clock   clock.Clock
	tracker *progress.Tracker
	emit    notifier.Emitter
}

func New(kv *storage.KV, clk clock.Clock, tracker *progress.Tracker, emit notifier.Emitter) *Checklist {
	if emit == nil {
		emit = notifier.Nop{}
	}
	return &Checklist{kv: kv, clock: clk, tracker: tracker, emit: emit}
}

// Items returns today's checklist. A saved list from an earlier day is
// replaced by a fresh one.
func (c *Checklist) Items() []models.ChecklistItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items(utils.DateKey(c.clock.Now()))
}

// Completed reports whether today's workout has already been counted.
func (c *Checklist) Completed() bool {
	return c.tracker.Stats().LastWorkoutDate == utils.DateKey(c.clock.Now())
}

// Toggle flips the exercise with id and reports whether every exercise is
// now done. Finishing the list records the workout completion.
func (c *Checklist) Toggle(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	today := utils.DateKey(now)
	if c.tracker.Stats().LastWorkoutDate == today {
		return false, ErrAlreadyCompleted
	}

	items := c.items(today)
	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, ErrUnknownExercise
	}

	items[idx].Done = !items[idx].Done
	for i := range items {
		items[i].Date = today
	}
	c.kv.PutJSON(constants.KeyWorkoutExercises, items)

	if !allDone(items) {
		return false, nil
	}
	c.tracker.RecordCompletion(models.ActivityWorkout, now)
	c.emit.Notify(models.NotifySessionComplete, "💪 Workout complete! Every exercise is done for today.")
	return true, nil
}

// Clear forgets the saved checklist. Called when the workout is reset.
func (c *Checklist) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.kv.Remove(constants.KeyWorkoutExercises)
}

func (c *Checklist) items(today string) []models.ChecklistItem {
	var saved []models.ChecklistItem
	if c.kv.GetJSON(constants.KeyWorkoutExercises, &saved) && len(saved) > 0 {
		completedToday := c.tracker.Stats().LastWorkoutDate == today
		if completedToday || saved[0].Date == today {
			return merge(saved)
		}
	}
	return fresh()
}

func fresh() []models.ChecklistItem {
	items := make([]models.ChecklistItem, len(models.DefaultExercises))
	for i, e := range models.DefaultExercises {
		items[i] = models.ChecklistItem{ID: e.ID}
	}
	return items
}

// merge lays saved progress over the default catalogue so unknown ids are
// dropped and new exercises appear.
func merge(saved []models.ChecklistItem) []models.ChecklistItem {
	byID := make(map[string]models.ChecklistItem, len(saved))
	for _, s := range saved {
		byID[s.ID] = s
	}
	items := fresh()
	for i := range items {
		if s, ok := byID[items[i].ID]; ok {
			items[i] = s
		}
	}
	return items
}

func allDone(items []models.ChecklistItem) bool {
	for _, it := range items {
		if !it.Done {
			return false
		}
	}
	return len(items) > 0
}
