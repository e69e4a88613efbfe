package notifier

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifeboost/internal/models"
)

const bell = "\a"

var (
	toastTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	toastBodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	toastBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("39")).Padding(0, 1)
)

// Cues is the number of bell strokes that make up the audio cue for kind:
// a single tone for reminders, a three-note chime when a session ends and
// two for a new medal.
func Cues(kind models.NotificationKind) int {
	switch kind {
	case models.NotifySessionComplete:
		return 3
	case models.NotifyTierUnlocked:
		return 2
	default:
		return 1
	}
}

// Terminal writes a bordered toast to w, preceded by the audio cue unless Silent.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	Silent bool
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) Notify(kind models.NotificationKind, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var b strings.Builder
	if !t.Silent {
		b.WriteString(strings.Repeat(bell, Cues(kind)))
	}
	body := toastTitleStyle.Render(kind.Title()) + "\n" + toastBodyStyle.Render(message)
	b.WriteString(toastBoxStyle.Render(body))
	b.WriteString("\n")

	// A broken terminal is not worth surfacing.
	_, _ = fmt.Fprint(t.w, b.String())
}
