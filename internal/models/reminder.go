package models

import "time"

// Mode is the lifecycle state of a countdown.
type Mode int

const (
	ModeIdle Mode = iota
	ModeRunning
	ModeExpired
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeRunning:
		return "running"
	case ModeExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// ReminderState is the persisted record behind a running countdown.
// TargetInstant is only meaningful while Active is true.
type ReminderState struct {
	Period        int       `json:"intervalOrPeriod"` // seconds
	TargetInstant time.Time `json:"targetInstant"`
	Active        bool      `json:"active"`
	RunID         string    `json:"runId,omitempty"` // changes on every start or reschedule
}

// Remaining returns the time left until TargetInstant, clamped at zero.
func (s ReminderState) Remaining(now time.Time) time.Duration {
	d := s.TargetInstant.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
