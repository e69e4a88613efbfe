package checklist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifeboost/internal/models"
)

// ToggleMsg asks the parent to flip the exercise with ID.
type ToggleMsg struct {
	ID string
}

type Item struct {
	Exercise models.ChecklistItem
}

func (i Item) Title() string {
	box := "[ ] "
	if i.Exercise.Done {
		box = "[x] "
	}
	return box + models.ExerciseName(i.Exercise.ID)
}

func (i Item) Description() string { return i.Exercise.ID }
func (i Item) FilterValue() string { return i.Exercise.ID }

type KeyMap struct {
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "check off"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []models.ChecklistItem, width, height int) Model {
	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.Title = "Workout"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle}
	}
	return Model{list: l, keys: keys}
}

func toListItems(items []models.ChecklistItem) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = Item{Exercise: it}
	}
	return out
}

func (m *Model) SetItems(items []models.ChecklistItem) {
	m.list.SetItems(toListItems(items))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Toggle) {
		if i, ok := m.list.SelectedItem().(Item); ok {
			return m, func() tea.Msg { return ToggleMsg{ID: i.Exercise.ID} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No exercises today."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
