// Package records keeps the date-keyed hydration history: at most one record
// per calendar day, newest first.
package records

import (
	"math"
	"sort"
	"sync"

	"github.com/julianstephens/lifeboost/internal/clock"
	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/models"
	"github.com/julianstephens/lifeboost/internal/storage"
	"github.com/julianstephens/lifeboost/internal/utils"
)

// Listener receives the full history after every mutation.
type Listener func(history []models.DailyRecord)

type Store struct {
	mu          sync.Mutex
	kv          *storage.KV
	clock       clock.Clock
	defaultGoal float64
	listeners   []Listener
}

// New returns a store over kv. A non-positive defaultGoal falls back to
// constants.DefaultWaterGoal.
func New(kv *storage.KV, clk clock.Clock, defaultGoal float64) *Store {
	if defaultGoal <= 0 {
		defaultGoal = constants.DefaultWaterGoal
	}
	return &Store{kv: kv, clock: clk, defaultGoal: defaultGoal}
}

// OnChange registers fn to run after each mutation.
func (s *Store) OnChange(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Load returns the persisted history, newest first. Absent or corrupt data
// yields an empty history.
func (s *Store) Load() []models.DailyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Today returns today's record, if one exists.
func (s *Store) Today() (models.DailyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return find(s.load(), s.today())
}

// UpsertToday overwrites today's goal and intake. A nil note keeps the
// current one. Other days are never touched.
func (s *Store) UpsertToday(goal, intake float64, note *string) []models.DailyRecord {
	return s.mutateToday(func(rec *models.DailyRecord) {
		rec.Goal = goal
		rec.Intake = intake
		if note != nil {
			rec.Feedback = *note
		}
	})
}

// AddIntake adds delta litres to today's intake, never going below zero. A
// day without a record starts from the most recent goal.
func (s *Store) AddIntake(delta float64) []models.DailyRecord {
	return s.mutateToday(func(rec *models.DailyRecord) {
		rec.Intake += delta
	})
}

// SetGoal changes today's goal and keeps the intake.
func (s *Store) SetGoal(goal float64) []models.DailyRecord {
	return s.mutateToday(func(rec *models.DailyRecord) {
		rec.Goal = goal
	})
}

// SetNote replaces the note on an existing record. It reports false when
// date has no record.
func (s *Store) SetNote(date, note string) bool {
	return s.mutateExisting(date, func(rec *models.DailyRecord) { rec.Feedback = note })
}

func (s *Store) ClearNote(date string) bool {
	return s.mutateExisting(date, func(rec *models.DailyRecord) { rec.Feedback = "" })
}

func (s *Store) today() string {
	return utils.DateKey(s.clock.Now())
}

func (s *Store) load() []models.DailyRecord {
	var history []models.DailyRecord
	if !s.kv.GetJSON(constants.KeyWaterHistory, &history) {
		return []models.DailyRecord{}
	}
	return normalize(history)
}

func (s *Store) mutateToday(apply func(rec *models.DailyRecord)) []models.DailyRecord {
	s.mu.Lock()
	history := s.load()
	today := s.today()

	rec, ok := find(history, today)
	if !ok {
		rec = models.DailyRecord{Date: today, Goal: s.carriedGoal(history)}
	}
	apply(&rec)
	rec.Goal = s.sanitizeGoal(rec.Goal)
	rec.Intake = round(math.Max(0, rec.Intake))

	history = normalize(append([]models.DailyRecord{rec}, history...))
	listeners := s.save(history)
	s.mu.Unlock()

	notify(listeners, history)
	return history
}

func (s *Store) mutateExisting(date string, apply func(rec *models.DailyRecord)) bool {
	s.mu.Lock()
	history := s.load()
	idx := -1
	for i := range history {
		if history[i].Date == date {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	apply(&history[idx])
	listeners := s.save(history)
	s.mu.Unlock()

	notify(listeners, history)
	return true
}

// save persists history and returns a snapshot of the listeners to call
// once the lock is released.
func (s *Store) save(history []models.DailyRecord) []Listener {
	s.kv.PutJSON(constants.KeyWaterHistory, history)
	return append([]Listener(nil), s.listeners...)
}

func (s *Store) carriedGoal(history []models.DailyRecord) float64 {
	// history is newest first
	for _, r := range history {
		if r.Goal > 0 {
			return r.Goal
		}
	}
	return s.defaultGoal
}

func (s *Store) sanitizeGoal(goal float64) float64 {
	if goal <= 0 || math.IsNaN(goal) {
		return s.defaultGoal
	}
	return round(goal)
}

func notify(listeners []Listener, history []models.DailyRecord) {
	for _, fn := range listeners {
		fn(append([]models.DailyRecord(nil), history...))
	}
}

// normalize sorts newest first and keeps only the first record seen per date.
func normalize(history []models.DailyRecord) []models.DailyRecord {
	seen := make(map[string]bool, len(history))
	out := make([]models.DailyRecord, 0, len(history))
	for _, r := range history {
		if r.Date == "" || seen[r.Date] {
			continue
		}
		seen[r.Date] = true
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

func find(history []models.DailyRecord, date string) (models.DailyRecord, bool) {
	for _, r := range history {
		if r.Date == date {
			return r, true
		}
	}
	return models.DailyRecord{}, false
}

func round(v float64) float64 {
	return math.Round(v*1000) / 1000
}
