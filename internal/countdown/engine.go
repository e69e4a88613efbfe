// Package countdown drives the persisted timers behind every reminder and
// session. An Engine keeps its deadline in the key-value store so that a
// restarted process resumes exactly where the last one stopped, firing a
// missed deadline once instead of replaying every missed period.
package countdown

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifeboost/internal/clock"
	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/logger"
	"github.com/julianstephens/lifeboost/internal/metrics"
	"github.com/julianstephens/lifeboost/internal/models"
	"github.com/julianstephens/lifeboost/internal/notifier"
	"github.com/julianstephens/lifeboost/internal/storage"
)

var (
	ErrInvalidPeriod = errors.New("period must be at least one second")
	ErrInvalidTarget = errors.New("first target must be in the future and within one period")
)

// futureTolerance absorbs sub-second drift between persisting a target and
// reading it back.
const futureTolerance = time.Second

// Kind selects what happens when a countdown reaches zero.
type Kind int

const (
	// Repeating reminders notify and immediately schedule the next period.
	Repeating Kind = iota
	// SingleShot sessions notify once, clear their record and report completion.
	SingleShot
)

func (k Kind) String() string {
	if k == SingleShot {
		return "single-shot"
	}
	return "repeating"
}

// CompletionHandler is told when a single-shot session finishes and when a
// reset should undo that completion.
type CompletionHandler interface {
	Complete(now time.Time)
	Revert(now time.Time)
}

type Config struct {
	Name          string
	Key           string
	Kind          Kind
	DefaultPeriod int // seconds
	Notice        models.Notice
	MaxSuspension time.Duration

	// Message renders the notification text for the deadline that fired.
	// Notice.Message is used when nil.
	Message func(target time.Time) string
}

// Status is a point-in-time view of an engine for rendering.
type Status struct {
	Name      string
	Kind      Kind
	Mode      models.Mode
	Period    int
	Target    time.Time
	Remaining time.Duration
}

type Engine struct {
	mu      sync.Mutex
	cfg     Config
	kv      *storage.KV
	clock   clock.Clock
	emit    notifier.Emitter
	handler CompletionHandler

	mode   models.Mode
	period int
	target time.Time
	runID  string
}

// New returns an idle engine. handler may be nil.
func New(cfg Config, kv *storage.KV, clk clock.Clock, emit notifier.Emitter, handler CompletionHandler) *Engine {
	if cfg.MaxSuspension <= 0 {
		cfg.MaxSuspension = constants.DefaultMaxSuspension
	}
	if clk == nil {
		clk = clock.System{}
	}
	if emit == nil {
		emit = notifier.Nop{}
	}
	return &Engine{
		cfg:     cfg,
		kv:      kv,
		clock:   clk,
		emit:    emit,
		handler: handler,
		mode:    models.ModeIdle,
		period:  cfg.DefaultPeriod,
	}
}

func (e *Engine) Name() string { return e.cfg.Name }

// Start begins a countdown of periodSeconds from now, replacing any run in progress.
func (e *Engine) Start(periodSeconds int) error {
	if periodSeconds <= 0 {
		return ErrInvalidPeriod
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	e.schedule(periodSeconds, now.Add(seconds(periodSeconds)))
	logger.Debug("countdown started", "reminder", e.cfg.Name, "period", periodSeconds, "target", e.target)
	return nil
}

// StartAt begins a countdown whose first deadline is first; later deadlines
// repeat every periodSeconds.
func (e *Engine) StartAt(first time.Time, periodSeconds int) error {
	if periodSeconds <= 0 {
		return ErrInvalidPeriod
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	if !first.After(now) || first.Sub(now) > seconds(periodSeconds) {
		return ErrInvalidTarget
	}
	e.schedule(periodSeconds, first)
	logger.Debug("countdown started", "reminder", e.cfg.Name, "period", periodSeconds, "target", first)
	return nil
}

// Resume rebuilds the engine from its persisted record. A deadline that
// passed while nothing was running fires once now. Records that imply an
// impossible clock jump are discarded.
func (e *Engine) Resume() models.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()

	var st models.ReminderState
	if e.kv.Probe(e.cfg.Key, &st) != storage.Found || !st.Active {
		e.idle()
		return e.mode
	}

	now := e.clock.Now()
	if !e.adopt(st, now) {
		return e.mode
	}
	if !now.Before(e.target) {
		e.expire(now, metrics.PathCatchUp)
	}
	return e.mode
}

// Tick advances the countdown and reports whether it fired. The persisted
// record wins over memory, so a start, stop or restart from another process
// is honoured even when this engine was idle.
func (e *Engine) Tick() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()

	var st models.ReminderState
	lookup := e.kv.Probe(e.cfg.Key, &st)

	if e.mode != models.ModeRunning {
		if lookup != storage.Found || !st.Active {
			return false
		}
		logger.Info("countdown started elsewhere", "reminder", e.cfg.Name)
		if !e.adopt(st, now) {
			return false
		}
		return e.fireIfDue(now)
	}

	switch lookup {
	case storage.Missing:
		logger.Info("countdown stopped elsewhere", "reminder", e.cfg.Name)
		e.idle()
		return false
	case storage.Found:
		if !st.Active {
			e.idle()
			return false
		}
		if st.RunID != e.runID {
			logger.Info("countdown restarted elsewhere", "reminder", e.cfg.Name)
			if !e.adopt(st, now) {
				return false
			}
		}
	case storage.Unreadable:
		// keep running on the in-memory deadline
	}

	return e.fireIfDue(now)
}

func (e *Engine) fireIfDue(now time.Time) bool {
	if now.Before(e.target) {
		return false
	}
	e.expire(now, metrics.PathTick)
	return true
}

// Stop cancels the countdown and forgets its record. Idempotent.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.kv.Remove(e.cfg.Key)
	e.idle()
}

// Reset stops the countdown and restores the default period. For sessions
// it also asks the handler to undo today's completion.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.kv.Remove(e.cfg.Key)
	e.idle()
	e.period = e.cfg.DefaultPeriod
	if e.cfg.Kind == SingleShot && e.handler != nil {
		e.handler.Revert(e.clock.Now())
	}
}

func (e *Engine) Mode() models.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Period is the current period in seconds.
func (e *Engine) Period() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.period
}

// Target is the pending deadline, zero unless running.
func (e *Engine) Target() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.target
}

// Remaining is the full period while idle and zero once expired.
func (e *Engine) Remaining() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining(e.clock.Now())
}

func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Status{
		Name:      e.cfg.Name,
		Kind:      e.cfg.Kind,
		Mode:      e.mode,
		Period:    e.period,
		Target:    e.target,
		Remaining: e.remaining(e.clock.Now()),
	}
}

func (e *Engine) remaining(now time.Time) time.Duration {
	switch e.mode {
	case models.ModeRunning:
		if d := e.target.Sub(now); d > 0 {
			return d
		}
		return 0
	case models.ModeExpired:
		return 0
	default:
		return seconds(e.period)
	}
}

func (e *Engine) schedule(period int, target time.Time) {
	e.mode = models.ModeRunning
	e.period = period
	e.target = target
	e.runID = uuid.NewString()
	e.persist()
}

func (e *Engine) persist() {
	e.kv.PutJSON(e.cfg.Key, models.ReminderState{
		Period:        e.period,
		TargetInstant: e.target,
		Active:        true,
		RunID:         e.runID,
	})
}

func (e *Engine) idle() {
	e.mode = models.ModeIdle
	e.target = time.Time{}
	e.runID = ""
}

// adopt loads st into memory unless it describes a clock anomaly, in which
// case the record is discarded and the engine goes idle.
func (e *Engine) adopt(st models.ReminderState, now time.Time) bool {
	if reason := anomaly(st, now, e.cfg.MaxSuspension); reason != "" {
		metrics.ClockAnomalies.WithLabelValues(e.cfg.Name).Inc()
		logger.Warn("discarding countdown after clock anomaly",
			"reminder", e.cfg.Name, "reason", reason, "target", st.TargetInstant, "now", now)
		e.kv.Remove(e.cfg.Key)
		e.idle()
		return false
	}
	e.mode = models.ModeRunning
	e.period = st.Period
	e.target = st.TargetInstant
	e.runID = st.RunID
	return true
}

func anomaly(st models.ReminderState, now time.Time, maxSuspension time.Duration) string {
	switch {
	case st.Period <= 0:
		return "non-positive period"
	case st.TargetInstant.IsZero():
		return "missing target"
	case st.TargetInstant.Sub(now) > seconds(st.Period)+futureTolerance:
		return "target too far in the future"
	case now.Sub(st.TargetInstant) > maxSuspension:
		return "suspended too long"
	}
	return ""
}

func (e *Engine) expire(now time.Time, path string) {
	metrics.Expiries.WithLabelValues(e.cfg.Name, path).Inc()
	logger.Info("countdown expired", "reminder", e.cfg.Name, "path", path, "target", e.target)

	msg := e.cfg.Notice.Message
	if e.cfg.Message != nil {
		msg = e.cfg.Message(e.target)
	}
	e.emit.Notify(e.cfg.Notice.Kind, msg)

	if e.cfg.Kind == Repeating {
		e.target = now.Add(seconds(e.period))
		e.runID = uuid.NewString()
		e.persist()
		return
	}

	e.mode = models.ModeExpired
	e.target = time.Time{}
	e.runID = ""
	e.kv.Remove(e.cfg.Key)
	if e.handler != nil {
		e.handler.Complete(now)
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
