package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifeboost/internal/medal"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.tab {
	case TabWater:
		content = docStyle.Render(m.viewWater())
	case TabWorkout:
		content = lipgloss.JoinVertical(lipgloss.Left, m.timer.View(), docStyle.Render(m.checklist.View()))
	default:
		content = m.timer.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewNotice(),
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.tab == Tab(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewWater() string {
	streak := m.app.Progress.Stats().HydrationStreak
	footer := fmt.Sprintf("Streak: %d day(s), %s", streak, medal.For(streak))

	rec, ok := m.app.Records.Today()
	if !ok {
		return lipgloss.JoinVertical(lipgloss.Left,
			"No water logged today. Press '+' to add a glass.",
			"",
			footer,
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Today: %.2f / %.2f L", rec.Intake, rec.Goal),
		m.water.ViewAs(rec.Progress()/100),
		"",
		footer,
	)
}

func (m Model) viewNotice() string {
	if m.inbox == nil {
		return ""
	}
	n, ok := m.inbox.Latest()
	if !ok {
		return ""
	}
	return noticeStyle.Render(fmt.Sprintf("%s: %s", n.Title, n.Message))
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.failed {
		return dangerStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}
