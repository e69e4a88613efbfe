package testutil

import (
	"sync"

	"github.com/julianstephens/lifeboost/internal/models"
)

// Notification is one call captured by Recorder.
type Notification struct {
	Kind    models.NotificationKind
	Message string
}

// Recorder is an emitter that remembers every notification it receives.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

func (r *Recorder) Notify(kind models.NotificationKind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Notification{Kind: kind, Message: message})
}

// All returns a copy of the recorded notifications in order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.sent))
	copy(out, r.sent)
	return out
}

// Count returns how many notifications of kind were recorded.
func (r *Recorder) Count(kind models.NotificationKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.sent {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
}
