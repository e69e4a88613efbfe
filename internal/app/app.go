// Package app assembles the countdown engines, the daily record store and the
// progress tracker over one key-value store. Commands and the TUI talk to an
// App instead of wiring the pieces themselves.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/julianstephens/lifeboost/internal/clock"
	"github.com/julianstephens/lifeboost/internal/config"
	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/countdown"
	"github.com/julianstephens/lifeboost/internal/logger"
	"github.com/julianstephens/lifeboost/internal/models"
	"github.com/julianstephens/lifeboost/internal/notifier"
	"github.com/julianstephens/lifeboost/internal/progress"
	"github.com/julianstephens/lifeboost/internal/records"
	"github.com/julianstephens/lifeboost/internal/storage"
	"github.com/julianstephens/lifeboost/internal/utils"
	"github.com/julianstephens/lifeboost/internal/validation"
	"github.com/julianstephens/lifeboost/internal/workout"
)

// Engine names, also accepted by "lifeboost tui".
const (
	Hydration  = "hydration"
	Bedtime    = "bedtime"
	Meditation = "meditation"
	Workout    = "workout"
)

// Options configures New. Provider must already be loaded.
type Options struct {
	Config   *config.Config
	Provider storage.Provider
	// Clock defaults to the system clock in the configured timezone.
	Clock clock.Clock
	// Emitter defaults to NewEmitter(Config, Output).
	Emitter notifier.Emitter
	Output  io.Writer
}

type App struct {
	cfg   *config.Config
	kv    *storage.KV
	clock clock.Clock
	emit  notifier.Emitter

	Hydration  *countdown.Engine
	Bedtime    *countdown.Engine
	Meditation *countdown.Engine
	Workout    *countdown.Engine

	Records   *records.Store
	Progress  *progress.Tracker
	Checklist *workout.Checklist
}

func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	clk := opts.Clock
	if clk == nil {
		loc, err := cfg.Location()
		if err != nil {
			return nil, err
		}
		clk = clock.InLocation(clock.System{}, loc)
	}

	emit := opts.Emitter
	if emit == nil {
		emit = NewEmitter(cfg, opts.Output)
	}

	kv := storage.NewKV(opts.Provider)
	a := &App{
		cfg:   cfg,
		kv:    kv,
		clock: clk,
		emit:  emit,
	}

	a.Progress = progress.New(kv, clk, emit)
	a.Records = records.New(kv, clk, cfg.Water.Goal)
	a.Checklist = workout.New(kv, clk, a.Progress, emit)
	a.Records.OnChange(func(history []models.DailyRecord) {
		a.Progress.RefreshHydrationStreak(history)
	})

	a.Hydration = countdown.New(countdown.Config{
		Name:          Hydration,
		Key:           constants.KeyHydrationReminder,
		Kind:          countdown.Repeating,
		DefaultPeriod: cfg.Reminders.HydrationMinutes * 60,
		Notice:        models.Notice{Kind: models.NotifyHydration, Message: "💧 Time to hydrate! Drink a glass of water."},
		MaxSuspension: cfg.MaxSuspension,
	}, kv, clk, emit, nil)

	a.Bedtime = countdown.New(countdown.Config{
		Name:          Bedtime,
		Key:           constants.KeyBedtimeReminder,
		Kind:          countdown.Repeating,
		DefaultPeriod: constants.BedtimePeriodSec,
		Notice:        models.Notice{Kind: models.NotifyBedtime, Message: "🌙 Time for bed! Get some rest."},
		MaxSuspension: cfg.MaxSuspension,
		Message: func(target time.Time) string {
			return fmt.Sprintf("🌙 Time for bed! It's %s. Get some rest.", target.In(clk.Now().Location()).Format(constants.TimeFormat))
		},
	}, kv, clk, emit, nil)

	a.Meditation = countdown.New(countdown.Config{
		Name:          Meditation,
		Key:           constants.KeyMeditationTimer,
		Kind:          countdown.SingleShot,
		DefaultPeriod: cfg.Reminders.MeditationSeconds,
		Notice:        models.Notice{Kind: models.NotifySessionComplete, Message: "🧘 You have completed your meditation session!"},
		MaxSuspension: cfg.MaxSuspension,
	}, kv, clk, emit, a.Progress.Completion(models.ActivityMeditation))

	a.Workout = countdown.New(countdown.Config{
		Name:          Workout,
		Key:           constants.KeyWorkoutTimer,
		Kind:          countdown.SingleShot,
		DefaultPeriod: cfg.Reminders.WorkoutMinutes * 60,
		Notice:        models.Notice{Kind: models.NotifySessionComplete, Message: "💪 Workout complete! Great job finishing your session."},
		MaxSuspension: cfg.MaxSuspension,
	}, kv, clk, emit, &workoutCompletion{
		Completion: a.Progress.Completion(models.ActivityWorkout),
		checklist:  a.Checklist,
	})

	return a, nil
}

// NewEmitter builds the configured notification fan-out, rate limited as a whole.
func NewEmitter(cfg *config.Config, out io.Writer) notifier.Emitter {
	var emitters []notifier.Emitter
	if cfg.Notifications.Terminal && out != nil {
		emitters = append(emitters, notifier.NewTerminal(out))
	}
	if cfg.Notifications.Tray {
		emitters = append(emitters, notifier.NewTray())
	}
	// Completions and medals happen once; only repeating reminders are limited.
	return notifier.Throttle(notifier.Multi(emitters...), float64(cfg.Notifications.PerMinute), constants.NotificationBurst,
		models.NotifySessionComplete, models.NotifyTierUnlocked)
}

// workoutCompletion also clears the exercise checklist when the workout is reset.
type workoutCompletion struct {
	*progress.Completion
	checklist *workout.Checklist
}

func (w *workoutCompletion) Revert(now time.Time) {
	w.Completion.Revert(now)
	w.checklist.Clear()
}

func (a *App) Config() *config.Config { return a.cfg }

func (a *App) Now() time.Time { return a.clock.Now() }

// Engines returns every countdown in display order.
func (a *App) Engines() []*countdown.Engine {
	return []*countdown.Engine{a.Hydration, a.Bedtime, a.Meditation, a.Workout}
}

// Engine looks up a countdown by name.
func (a *App) Engine(name string) (*countdown.Engine, bool) {
	for _, e := range a.Engines() {
		if e.Name() == strings.ToLower(name) {
			return e, true
		}
	}
	return nil, false
}

// ResumeAll rehydrates every countdown from the store, firing any deadline
// that passed while nothing was running, and refreshes the cached streak.
func (a *App) ResumeAll() {
	for _, e := range a.Engines() {
		mode := e.Resume()
		logger.Debug("resumed countdown", "name", e.Name(), "mode", mode)
	}
	a.Progress.RefreshHydrationStreak(a.Records.Load())
}

// TickAll advances every countdown and returns how many fired.
func (a *App) TickAll() int {
	fired := 0
	for _, e := range a.Engines() {
		if e.Tick() {
			fired++
		}
	}
	return fired
}

// Run ticks every countdown each interval until ctx is done.
func (a *App) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = constants.TickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			a.TickAll()
		}
	}
}

func (a *App) StartHydration(minutes int) error {
	if err := validation.PeriodMinutes(minutes); err != nil {
		return err
	}
	return a.Hydration.Start(minutes * 60)
}

// SetBedtime schedules the nightly reminder at hhmm, starting with its next occurrence.
func (a *App) SetBedtime(hhmm string) error {
	if err := validation.Bedtime(hhmm); err != nil {
		return err
	}
	first, err := utils.NextOccurrence(a.clock.Now(), hhmm)
	if err != nil {
		return err
	}
	return a.Bedtime.StartAt(first, constants.BedtimePeriodSec)
}

func (a *App) StartMeditation(seconds int) error {
	if err := validation.PeriodSeconds(seconds); err != nil {
		return err
	}
	return a.Meditation.Start(seconds)
}

func (a *App) StartWorkout(minutes int) error {
	if err := validation.PeriodMinutes(minutes); err != nil {
		return err
	}
	return a.Workout.Start(minutes * 60)
}

// LogWater overwrites today's record.
func (a *App) LogWater(goal, intake float64, note *string) ([]models.DailyRecord, error) {
	if err := validation.Goal(goal); err != nil {
		return nil, err
	}
	if err := validation.Intake(intake); err != nil {
		return nil, err
	}
	return a.Records.UpsertToday(goal, intake, note), nil
}

func (a *App) AddWater(delta float64) ([]models.DailyRecord, error) {
	if err := validation.IntakeDelta(delta); err != nil {
		return nil, err
	}
	return a.Records.AddIntake(delta), nil
}

func (a *App) SetWaterGoal(goal float64) ([]models.DailyRecord, error) {
	if err := validation.Goal(goal); err != nil {
		return nil, err
	}
	return a.Records.SetGoal(goal), nil
}

// Login stores the display name. There is no authentication.
func (a *App) Login(name string) error {
	if err := validation.Name(name); err != nil {
		return err
	}
	a.kv.PutString(constants.KeyUserName, strings.TrimSpace(name))
	return nil
}

func (a *App) UserName() string {
	name, _ := a.kv.GetString(constants.KeyUserName)
	return name
}

// Logout stops every countdown and removes all persisted state.
func (a *App) Logout() bool {
	for _, e := range a.Engines() {
		e.Stop()
	}
	return a.kv.Clear(constants.PersistedKeys...)
}

// Summary returns the profile view for the logged-in user.
func (a *App) Summary() progress.Summary {
	return a.Progress.Summary(a.UserName(), a.Records.Load())
}
