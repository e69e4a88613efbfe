// Package notifier delivers fire-and-forget user notifications: a terminal
// toast with an audible cue, the desktop tray webhook, or both.
package notifier

import "github.com/julianstephens/lifeboost/internal/models"

// Emitter delivers a notification. Implementations must not block for long
// and never report failure to the caller.
type Emitter interface {
	Notify(kind models.NotificationKind, message string)
}

// Func adapts a plain function to Emitter.
type Func func(kind models.NotificationKind, message string)

func (f Func) Notify(kind models.NotificationKind, message string) {
	f(kind, message)
}

// Nop discards every notification.
type Nop struct{}

func (Nop) Notify(models.NotificationKind, string) {}

type multi []Emitter

// Multi fans a notification out to every non-nil emitter in order.
func Multi(emitters ...Emitter) Emitter {
	var out multi
	for _, e := range emitters {
		if e != nil {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return Nop{}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

func (m multi) Notify(kind models.NotificationKind, message string) {
	for _, e := range m {
		e.Notify(kind, message)
	}
}
