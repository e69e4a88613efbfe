package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/lifeboost/internal/app"
	"github.com/julianstephens/lifeboost/internal/config"
	"github.com/julianstephens/lifeboost/internal/models"
	"github.com/julianstephens/lifeboost/internal/storage"
	"github.com/julianstephens/lifeboost/internal/testutil"
	"github.com/julianstephens/lifeboost/internal/tui/components/checklist"
)

func newTestModel(t *testing.T, tab Tab) (Model, *app.App, *testutil.Clock, *Inbox) {
	t.Helper()
	clk := testutil.NewClock(time.Date(2026, 3, 3, 7, 30, 0, 0, time.UTC))
	inbox := &Inbox{}
	a, err := app.New(app.Options{
		Config:   config.DefaultConfig(),
		Provider: storage.NewMemoryStore(),
		Clock:    clk,
		Emitter:  inbox,
	})
	require.NoError(t, err)

	m := NewModel(a, inbox, tab)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model), a, clk, inbox
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabFor(t *testing.T) {
	assert.Equal(t, TabMeditation, TabFor("meditation"))
	assert.Equal(t, TabWater, TabFor("Water"))
	assert.Equal(t, TabHydration, TabFor("nonsense"))
	assert.Equal(t, "Bedtime", TabBedtime.String())
	assert.Equal(t, "Unknown", Tab(42).String())
}

func TestTabsWrapAround(t *testing.T) {
	m, _, _, _ := newTestModel(t, TabHydration)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, TabWater, m.tab)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabHydration, m.tab)
}

func TestStartAndStopFromKeys(t *testing.T) {
	m, a, _, _ := newTestModel(t, TabHydration)

	m, _ = press(t, m, runes("s"))
	assert.Equal(t, models.ModeRunning, a.Hydration.Mode())
	assert.Contains(t, m.View(), "Hydration started")

	m, _ = press(t, m, runes("x"))
	assert.Equal(t, models.ModeIdle, a.Hydration.Mode())
	assert.Contains(t, m.View(), "hydration stopped")
}

func TestTickShowsNotification(t *testing.T) {
	m, a, clk, inbox := newTestModel(t, TabMeditation)

	m, _ = press(t, m, runes("s"))
	require.Equal(t, models.ModeRunning, a.Meditation.Mode())

	clk.Advance(2 * time.Minute)
	updated, cmd := m.Update(TickMsg(clk.Now()))
	m = updated.(Model)
	assert.NotNil(t, cmd, "ticking continues")

	n, ok := inbox.Latest()
	require.True(t, ok)
	assert.Equal(t, models.NotifySessionComplete, n.Kind)
	assert.Contains(t, m.View(), n.Message)
	assert.Equal(t, models.ModeExpired, m.timer.Status.Mode)
	assert.Equal(t, 1.0, m.timer.Percent())
}

func TestWorkoutChecklistToggle(t *testing.T) {
	m, a, _, _ := newTestModel(t, TabWorkout)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, checklist.ToggleMsg{}, msg)

	updated, _ := m.Update(msg)
	m = updated.(Model)
	items := a.Checklist.Items()
	assert.Equal(t, "pushups", items[0].ID)
	assert.True(t, items[0].Done)
	assert.False(t, m.failed)
}

func TestWaterKeys(t *testing.T) {
	m, a, _, _ := newTestModel(t, TabWater)
	assert.Contains(t, m.View(), "No water logged today")

	m, _ = press(t, m, runes("+"))
	m, _ = press(t, m, runes("+"))
	rec, ok := a.Records.Today()
	require.True(t, ok)
	assert.Equal(t, 0.5, rec.Intake)

	m, _ = press(t, m, runes("-"))
	rec, _ = a.Records.Today()
	assert.Equal(t, 0.25, rec.Intake)
	assert.Contains(t, m.View(), "Today: 0.25 / 2.00 L")
}

func TestQuit(t *testing.T) {
	m, _, _, _ := newTestModel(t, TabHydration)
	m, cmd := press(t, m, runes("q"))
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}
