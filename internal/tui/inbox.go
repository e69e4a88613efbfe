package tui

import (
	"sync"

	"github.com/julianstephens/lifeboost/internal/models"
)

// Inbox is an emitter that keeps the most recent notification for display,
// since the terminal toast would corrupt the alternate screen.
type Inbox struct {
	mu   sync.Mutex
	last *models.Notice
}

func (i *Inbox) Notify(kind models.NotificationKind, message string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.last = &models.Notice{Kind: kind, Title: kind.Title(), Message: message}
}

// Latest returns the newest notification, if any.
func (i *Inbox) Latest() (models.Notice, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.last == nil {
		return models.Notice{}, false
	}
	return *i.last, true
}
