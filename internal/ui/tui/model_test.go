package tui

import (
	"strings"
	"testing"

	"task-reminder/internal/api"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)

func newTestModel(t *testing.T, opts Options) (Model, *api.Session) {
	t.Helper()
	session := api.NewSession()
	opts.NoColor = true
	return New(session, opts), session
}

// send feeds messages through Update and returns the final model and last command.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func addTask(t *testing.T, m Model, title, due string) Model {
	t.Helper()
	m, _ = send(t, m, runes(title), keyTab, runes(due), keyEnter)
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_AddTask(t *testing.T) {
	m, session := newTestModel(t, Options{})

	m = addTask(t, m, "Buy milk", "2024-05-01")

	assert.Equal(t, []string{"[ ] Buy milk (Due: 2024-05-01)"}, session.Lines())
	assert.Empty(t, m.title.Value(), "form is cleared after a successful add")
	assert.Empty(t, m.due.Value())
	assert.Equal(t, focusTitle, m.focus)
	status, isErr := m.Status()
	assert.False(t, isErr)
	assert.Contains(t, status, "Buy milk")
}

func TestModel_EnterInTitleFieldSubmits(t *testing.T) {
	m, session := newTestModel(t, Options{})

	m, _ = send(t, m, runes("Buy milk"), keyTab, runes("2024-05-01"), tea.KeyMsg{Type: tea.KeyShiftTab}, keyEnter)

	assert.Equal(t, focusTitle, m.focus)
	assert.Equal(t, 1, session.Len())
}

func TestModel_AddTask_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		due      string
		expected string
	}{
		{"missing title", "", "2024-05-01", "Both fields are required."},
		{"missing date", "Buy milk", "", "Both fields are required."},
		{"bad date", "Buy milk", "2024-13-01", "Please enter a valid date (yyyy-mm-dd)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, session := newTestModel(t, Options{})

			m = addTask(t, m, tt.title, tt.due)

			status, isErr := m.Status()
			assert.True(t, isErr)
			assert.Equal(t, tt.expected, status)
			assert.Equal(t, 0, session.Len())
			assert.Equal(t, tt.due, m.due.Value(), "input is kept for correction")
			assert.Contains(t, m.View(), tt.expected)
		})
	}
}

func TestModel_NoSelection(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = send(t, m, keyTab, keyTab)
	require.Equal(t, focusList, m.focus)
	assert.Equal(t, api.NoSelection, m.Selected())

	m, _ = send(t, m, runes("d"))
	status, isErr := m.Status()
	assert.True(t, isErr)
	assert.Equal(t, "Select a task to delete.", status)

	m, _ = send(t, m, runes("c"))
	status, _ = m.Status()
	assert.Equal(t, "Select a task to mark as completed.", status)
}

func TestModel_ListActions(t *testing.T) {
	m, session := newTestModel(t, Options{})
	m = addTask(t, m, "Buy milk", "2024-05-01")
	m = addTask(t, m, "Pay rent", "2024-06-01")
	m = addTask(t, m, "Call dentist", "2024-04-15")

	// entering the list selects the first row
	m, _ = send(t, m, keyTab, keyTab)
	require.Equal(t, 0, m.Selected())

	m, _ = send(t, m, runes("s"))
	assert.Equal(t, []string{
		"[ ] Call dentist (Due: 2024-04-15)",
		"[ ] Buy milk (Due: 2024-05-01)",
		"[ ] Pay rent (Due: 2024-06-01)",
	}, session.Lines())
	assert.Equal(t, api.NoSelection, m.Selected(), "sorting clears the selection")
	assert.NotContains(t, m.View(), "> [ ]")

	m, _ = send(t, m, runes("c"))
	status, isErr := m.Status()
	assert.Equal(t, "Select a task to mark as completed.", status)
	assert.True(t, isErr)

	m, _ = send(t, m, keyDown, keyDown, runes("c"))
	assert.Equal(t, "[✓] Buy milk (Due: 2024-05-01)", session.Lines()[1])

	m, _ = send(t, m, keyDown, keyDown, runes("d"))
	assert.Equal(t, 2, session.Len())
	assert.Equal(t, 1, m.Selected(), "cursor moves up after deleting the last row")

	m, _ = send(t, m, keyUp, keyUp, runes("d"), runes("d"))
	assert.Equal(t, 0, session.Len())
	assert.Equal(t, api.NoSelection, m.Selected())
	assert.Contains(t, m.View(), "No tasks yet.")
}

func TestModel_Scrolling(t *testing.T) {
	m, session := newTestModel(t, Options{ListHeight: 2})
	for _, title := range []string{"A", "B", "C", "D"} {
		m = addTask(t, m, title, "2024-01-01")
	}
	require.Equal(t, 4, session.Len())

	m, _ = send(t, m, keyTab, keyTab, keyDown, keyDown, keyDown)

	assert.Equal(t, 3, m.Selected())
	assert.Equal(t, 2, m.offset)
	view := m.View()
	assert.Contains(t, view, "> [ ] D (Due: 2024-01-01)")
	assert.NotContains(t, view, "[ ] A (Due")
	assert.Contains(t, view, "rows 3-4 of 4")
}

func TestModel_QuitWithConfirmation(t *testing.T) {
	m, _ := newTestModel(t, Options{ConfirmExit: true})

	m, cmd := send(t, m, keyEsc)
	assert.False(t, isQuit(cmd))
	assert.True(t, m.Confirming())
	assert.Contains(t, m.View(), "Are you sure you want to exit?")

	m, cmd = send(t, m, runes("n"))
	assert.False(t, isQuit(cmd))
	assert.False(t, m.Confirming())

	m, _ = send(t, m, keyEsc)
	m, cmd = send(t, m, runes("y"))
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestModel_QuitWithoutConfirmation(t *testing.T) {
	m, _ := newTestModel(t, Options{ConfirmExit: false})

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, isQuit(cmd))
}

func TestModel_QInListQuitsButTypesInForm(t *testing.T) {
	m, _ := newTestModel(t, Options{ConfirmExit: false})

	m, _ = send(t, m, runes("q"))
	assert.Equal(t, "q", m.title.Value())

	_, cmd := send(t, m, keyTab, keyTab, runes("q"))
	assert.True(t, isQuit(cmd))
}

func TestModel_TruncatesRowsToWidth(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = addTask(t, m, strings.Repeat("long title ", 10), "2024-05-01")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 20})

	view := m.View()
	assert.Contains(t, view, "…")
	assert.NotContains(t, view, "(Due: 2024-05-01)")
}

func TestModel_HelpToggle(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = send(t, m, keyTab, keyTab, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "previous field")
}

func TestKeyMap_Help(t *testing.T) {
	keys := DefaultKeyMap()

	assert.NotEmpty(t, keys.ShortHelp())
	assert.Len(t, keys.FullHelp(), 3)
}
