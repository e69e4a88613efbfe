package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/tui/components/checklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case TickMsg:
		m.app.TickAll()
		m.refresh()
		return m, tick()

	case checklist.ToggleMsg:
		done, err := m.app.Checklist.Toggle(msg.ID)
		status := ""
		if done {
			status = "Workout complete!"
		}
		m.report(status, err)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.switchTab((m.tab + 1) % tabCount)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.switchTab((m.tab - 1 + tabCount) % tabCount)
			return m, nil
		case key.Matches(msg, m.keys.Start):
			m.start()
			return m, nil
		case key.Matches(msg, m.keys.Stop):
			if e := m.engine(); e != nil {
				e.Stop()
				m.report(e.Name()+" stopped", nil)
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			if e := m.engine(); e != nil {
				e.Reset()
				m.report(e.Name()+" reset", nil)
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.More) && m.tab == TabWater:
			m.addWater(constants.IntakeStep)
			return m, nil
		case key.Matches(msg, m.keys.Less) && m.tab == TabWater:
			m.addWater(-constants.IntakeStep)
			return m, nil
		}

		if m.tab == TabWorkout {
			var cmd tea.Cmd
			m.checklist, cmd = m.checklist.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model) switchTab(t Tab) {
	m.tab = t
	m.report("", nil)
	m.resize()
	m.refresh()
}

// start launches the current tab's countdown with the configured defaults.
func (m *Model) start() {
	cfg := m.app.Config()
	var err error
	switch m.tab {
	case TabHydration:
		err = m.app.StartHydration(cfg.Reminders.HydrationMinutes)
	case TabBedtime:
		err = m.app.SetBedtime(cfg.Reminders.Bedtime)
	case TabMeditation:
		err = m.app.StartMeditation(cfg.Reminders.MeditationSeconds)
	case TabWorkout:
		err = m.app.StartWorkout(cfg.Reminders.WorkoutMinutes)
	default:
		return
	}
	m.report(fmt.Sprintf("%s started", m.tab), err)
	m.refresh()
}

func (m *Model) addWater(delta float64) {
	_, err := m.app.AddWater(delta)
	m.report("", err)
}
