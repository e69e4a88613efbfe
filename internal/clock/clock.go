// Package clock provides the wall-clock source used for countdown scheduling
// and catch-up detection.
package clock

import "time"

// Clock returns the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// System is the Clock backed by time.Now.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// InLocation wraps a Clock so that every reading is expressed in loc.
func InLocation(c Clock, loc *time.Location) Clock {
	if loc == nil {
		return c
	}
	return located{inner: c, loc: loc}
}

type located struct {
	inner Clock
	loc   *time.Location
}

func (l located) Now() time.Time {
	return l.inner.Now().In(l.loc)
}
