// Package tui is the live countdown view behind "lifeboost tui".
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifeboost/internal/app"
	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/countdown"
	"github.com/julianstephens/lifeboost/internal/tui/components/checklist"
	"github.com/julianstephens/lifeboost/internal/tui/components/timer"
)

type Tab int

const (
	TabHydration Tab = iota
	TabBedtime
	TabMeditation
	TabWorkout
	TabWater
	tabCount
)

var tabTitles = []string{"Hydration", "Bedtime", "Meditation", "Workout", "Water"}

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "Unknown"
	}
	return tabTitles[t]
}

// TabFor maps a countdown name to its tab. Unknown names open hydration.
func TabFor(name string) Tab {
	for i, title := range tabTitles {
		if strings.EqualFold(title, name) {
			return Tab(i)
		}
	}
	return TabHydration
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(constants.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type Model struct {
	app       *app.App
	inbox     *Inbox
	tab       Tab
	keys      KeyMap
	help      help.Model
	timer     timer.Model
	checklist checklist.Model
	water     progress.Model
	status    string
	failed    bool
	quitting  bool
	width     int
	height    int
}

// NewModel builds the view over a. inbox should be one of a's emitters so
// notifications show up on screen.
func NewModel(a *app.App, inbox *Inbox, tab Tab) Model {
	m := Model{
		app:       a,
		inbox:     inbox,
		tab:       tab,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		timer:     timer.New(),
		checklist: checklist.New(a.Checklist.Items(), 0, 0),
		water:     progress.New(progress.WithDefaultGradient()),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.tab {
	case TabWater:
		keys = append(keys, m.keys.More, m.keys.Less)
	case TabWorkout:
		keys = append(keys, m.keys.Start, m.keys.Stop, m.keys.Reset, checklist.DefaultKeyMap().Toggle)
	default:
		keys = append(keys, m.keys.Start, m.keys.Stop, m.keys.Reset)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

// engine returns the countdown behind the current tab, nil on the water tab.
func (m Model) engine() *countdown.Engine {
	switch m.tab {
	case TabHydration:
		return m.app.Hydration
	case TabBedtime:
		return m.app.Bedtime
	case TabMeditation:
		return m.app.Meditation
	case TabWorkout:
		return m.app.Workout
	default:
		return nil
	}
}

func (m *Model) refresh() {
	if e := m.engine(); e != nil {
		m.timer.SetStatus(e.Status())
	}
	if m.tab == TabWorkout {
		m.checklist.SetItems(m.app.Checklist.Items())
	}
}

func (m *Model) resize() {
	contentHeight := max(m.height-6, 0)
	switch m.tab {
	case TabWorkout:
		m.timer.SetSize(m.width, contentHeight/2)
		m.checklist.SetSize(m.width, contentHeight-contentHeight/2)
	default:
		m.timer.SetSize(m.width, contentHeight)
	}
	m.water.Width = min(max(m.width-8, 10), 60)
}

func (m *Model) report(status string, err error) {
	if err != nil {
		m.status, m.failed = err.Error(), true
		return
	}
	m.status, m.failed = status, false
}
