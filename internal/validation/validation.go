// Package validation enforces the input rules applied at the command
// boundary, before values reach the countdown engines or the record store.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/utils"
)

var ErrInvalid = errors.New("invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// PeriodMinutes checks a reminder interval given in whole minutes.
func PeriodMinutes(n int) error {
	if n < 1 {
		return invalid("interval must be at least 1 minute, got %d", n)
	}
	return nil
}

// PeriodSeconds checks a session length given in seconds.
func PeriodSeconds(n int) error {
	if n < 1 {
		return invalid("duration must be at least 1 second, got %d", n)
	}
	return nil
}

// Goal checks a daily water goal in litres.
func Goal(litres float64) error {
	if math.IsNaN(litres) || litres < constants.MinWaterGoal || litres > constants.MaxWaterGoal {
		return invalid("goal must be between %.1f and %.1f litres, got %g", constants.MinWaterGoal, constants.MaxWaterGoal, litres)
	}
	return nil
}

// Intake checks an absolute intake amount in litres.
func Intake(litres float64) error {
	if math.IsNaN(litres) || math.IsInf(litres, 0) || litres < 0 {
		return invalid("intake cannot be negative, got %g", litres)
	}
	return nil
}

// IntakeDelta checks an increment passed to "water add". Negative values
// undo earlier additions but zero does nothing useful.
func IntakeDelta(litres float64) error {
	if math.IsNaN(litres) || math.IsInf(litres, 0) || litres == 0 {
		return invalid("amount must be a non-zero number of litres, got %g", litres)
	}
	return nil
}

// Bedtime checks an HH:MM clock time.
func Bedtime(hhmm string) error {
	if _, _, err := utils.ParseClock(hhmm); err != nil {
		return invalid("bedtime must be HH:MM (24-hour), got %q", hhmm)
	}
	return nil
}

// Name checks a display name for login.
func Name(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return invalid("name cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > constants.MaxNameLength {
		return invalid("name must be at most %d characters", constants.MaxNameLength)
	}
	return nil
}

func Timezone(tz string) error {
	if !utils.ValidateTimezone(tz) {
		return invalid("unknown timezone %q", tz)
	}
	return nil
}

// Date checks a YYYY-MM-DD date.
func Date(date string) error {
	if !utils.ValidDate(date) {
		return invalid("date must be YYYY-MM-DD, got %q", date)
	}
	return nil
}

// Problem is one failed rule in a multi-field check.
type Problem struct {
	Field string
	Err   error
}

// Result collects problems from a multi-field check such as a config file.
type Result struct {
	Problems []Problem
}

// Check records err against field when err is non-nil.
func (r *Result) Check(field string, err error) {
	if err != nil {
		r.Problems = append(r.Problems, Problem{Field: field, Err: err})
	}
}

func (r *Result) HasProblems() bool {
	return len(r.Problems) > 0
}

// FormatReport returns a human-readable list of problems.
func (r *Result) FormatReport() string {
	if !r.HasProblems() {
		return "No problems detected."
	}
	var b strings.Builder
	b.WriteString("Problems detected:\n")
	for _, p := range r.Problems {
		fmt.Fprintf(&b, "- %s: %v\n", p.Field, p.Err)
	}
	return b.String()
}

// Err joins every problem into one error, nil when there are none.
func (r *Result) Err() error {
	if !r.HasProblems() {
		return nil
	}
	errs := make([]error, len(r.Problems))
	for i, p := range r.Problems {
		errs[i] = fmt.Errorf("%s: %w", p.Field, p.Err)
	}
	return errors.Join(errs...)
}
