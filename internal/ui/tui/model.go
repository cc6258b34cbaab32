package tui

import (
	"fmt"

	"task-reminder/internal/api"
	"task-reminder/internal/errors"
	"task-reminder/internal/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focus int

const (
	focusTitle focus = iota
	focusDue
	focusList
	focusCount
)

// Options configure the reminder screen.
type Options struct {
	ListHeight  int
	Width       int
	AltScreen   bool
	ConfirmExit bool
	NoColor     bool
}

// Model is the bubbletea model of the reminder screen: a two-field form
// above the task list.
type Model struct {
	taskAPI api.TaskAPI
	opts    Options
	keys    KeyMap
	help    help.Model
	styles  Styles
	log     *logging.Logger

	title textinput.Model
	due   textinput.Model
	focus focus

	// cursor is api.NoSelection while no row is selected.
	cursor int
	offset int
	width  int

	status     string
	statusErr  bool
	confirming bool
	quitting   bool
}

// New builds the model over taskAPI.
func New(taskAPI api.TaskAPI, opts Options) Model {
	if opts.ListHeight < 1 {
		opts.ListHeight = 10
	}

	title := textinput.New()
	title.Placeholder = "What needs doing?"
	title.Prompt = ""
	title.CharLimit = 256
	title.Focus()

	due := textinput.New()
	due.Placeholder = "yyyy-mm-dd"
	due.Prompt = ""
	due.CharLimit = 10

	styles := DefaultStyles()
	if opts.NoColor {
		styles = PlainStyles()
	}

	return Model{
		taskAPI: taskAPI,
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  styles,
		log:     logging.New("tui").WithSession(shortID(taskAPI.ID())),
		title:   title,
		due:     due,
		focus:   focusTitle,
		cursor:  api.NoSelection,
		width:   opts.Width,
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.opts.Width == 0 || msg.Width < m.opts.Width {
			m.width = msg.Width
		}
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirm(msg)
		}
		return m.updateKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm), msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Deny):
		m.confirming = false
		m.setStatus("", false)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.requestQuit()
	case key.Matches(msg, m.keys.NextField):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.PrevField):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	if m.focus != focusList {
		if key.Matches(msg, m.keys.Submit) {
			return m.submit()
		}
		return m.updateInputs(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Complete):
		m.dispatch(api.CompleteCommand(m.cursor), "Marked as completed.")
	case key.Matches(msg, m.keys.Delete):
		m.dispatch(api.DeleteCommand(m.cursor), "Task deleted.")
	case key.Matches(msg, m.keys.Sort):
		// rows move under the cursor, so the selection is dropped
		if m.dispatch(api.SortCommand(), "Sorted by due date.") {
			m.cursor = api.NoSelection
			m.ensureVisible()
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case msg.String() == "q":
		return m.requestQuit()
	}
	return m, nil
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDue:
		m.due, cmd = m.due.Update(msg)
	}
	return m, cmd
}

func (m Model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.title.Blur()
	m.due.Blur()

	switch f {
	case focusTitle:
		return m, m.title.Focus()
	case focusDue:
		return m, m.due.Focus()
	default:
		if m.cursor == api.NoSelection && m.taskAPI.Len() > 0 {
			m.cursor = 0
			m.offset = 0
		}
	}
	return m, nil
}

func (m Model) requestQuit() (tea.Model, tea.Cmd) {
	if !m.opts.ConfirmExit {
		m.quitting = true
		return m, tea.Quit
	}
	m.confirming = true
	return m, nil
}

// submit adds a task from the form. The form is cleared only on success.
func (m Model) submit() (tea.Model, tea.Cmd) {
	title := m.title.Value()
	if !m.dispatch(api.AddCommand(title, m.due.Value()), "") {
		return m, nil
	}

	m.setStatus(fmt.Sprintf("Added %q.", title), false)
	m.title.Reset()
	m.due.Reset()
	return m.setFocus(focusTitle)
}

// dispatch runs cmd and reports the outcome on the status line.
func (m *Model) dispatch(cmd api.Command, success string) bool {
	if err := m.taskAPI.Dispatch(cmd); err != nil {
		m.log.Debugf("%s failed [%s]: %v", cmd.Kind, errors.GetErrorCode(err), err)
		m.setStatus(errors.GetUserMessage(err), true)
		return false
	}
	if success != "" {
		m.setStatus(success, false)
	}
	m.clampCursor()
	return true
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) moveCursor(delta int) {
	n := m.taskAPI.Len()
	if n == 0 {
		m.cursor = api.NoSelection
		return
	}
	if m.cursor == api.NoSelection {
		m.cursor = 0
	} else {
		m.cursor = min(max(m.cursor+delta, 0), n-1)
	}
	m.ensureVisible()
}

func (m *Model) clampCursor() {
	n := m.taskAPI.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if n == 0 {
		m.cursor = api.NoSelection
	}
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	if m.cursor == api.NoSelection {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.opts.ListHeight {
		m.offset = m.cursor - m.opts.ListHeight + 1
	}
	if maxOffset := max(m.taskAPI.Len()-m.opts.ListHeight, 0); m.offset > maxOffset {
		m.offset = maxOffset
	}
}

// Selected returns the selected position, or api.NoSelection.
func (m Model) Selected() int {
	return m.cursor
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Confirming reports whether the exit confirmation is showing.
func (m Model) Confirming() bool {
	return m.confirming
}
