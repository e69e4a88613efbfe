package timer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/countdown"
	"github.com/julianstephens/lifeboost/internal/models"
	"github.com/julianstephens/lifeboost/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(24).
			Align(lipgloss.Center)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Model renders one countdown status with a progress bar.
type Model struct {
	Status countdown.Status
	bar    progress.Model
	width  int
	height int
}

func New() Model {
	return Model{bar: progress.New(progress.WithDefaultGradient())}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.bar.Width = min(max(width-8, 10), 60)
}

func (m *Model) SetStatus(s countdown.Status) {
	m.Status = s
}

// Percent is the elapsed fraction of the current period.
func (m Model) Percent() float64 {
	s := m.Status
	switch s.Mode {
	case models.ModeExpired:
		return 1
	case models.ModeRunning:
		if s.Period <= 0 {
			return 0
		}
		total := float64(s.Period)
		left := s.Remaining.Seconds()
		return min(max((total-left)/total, 0), 1)
	default:
		return 0
	}
}

func (m Model) View() string {
	s := m.Status
	detail := s.Mode.String()
	switch s.Mode {
	case models.ModeRunning:
		detail = fmt.Sprintf("running, due at %s", s.Target.Format(constants.TimeFormat))
	case models.ModeExpired:
		detail = "complete"
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(s.Name),
		clockStyle.Render(utils.FormatRemaining(s.Remaining)),
		"",
		m.bar.ViewAs(m.Percent()),
		modeStyle.Render(detail),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
