package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const exitPrompt = "Are you sure you want to exit? (y/n)"

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Task Reminder"))
	b.WriteString("\n\n")
	b.WriteString(m.field("Title:   ", m.title.View(), m.focus == focusTitle))
	b.WriteString("\n")
	b.WriteString(m.field("Due date:", m.due.View(), m.focus == focusDue))
	b.WriteString("\n\n")
	b.WriteString(m.listView())
	b.WriteString("\n")

	switch {
	case m.confirming:
		b.WriteString(m.styles.Prompt.Render(exitPrompt))
	case m.statusErr:
		b.WriteString(m.styles.Error.Render(m.status))
	default:
		b.WriteString(m.styles.Status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) field(label, input string, focused bool) string {
	style := m.styles.Label
	if focused {
		style = m.styles.Focused
	}
	return style.Render(label) + " " + input
}

func (m Model) listView() string {
	lines := m.taskAPI.Lines()
	if len(lines) == 0 {
		return m.styles.ListBox.Render(m.styles.Empty.Render("No tasks yet."))
	}

	tasks := m.taskAPI.Tasks()
	end := min(m.offset+m.opts.ListHeight, len(lines))
	rows := make([]string, 0, end-m.offset+1)
	for i := m.offset; i < end; i++ {
		marker := "  "
		style := m.styles.Row
		if tasks[i].IsCompleted() {
			style = m.styles.Completed
		}
		if i == m.cursor && m.focus == focusList {
			marker = "> "
			style = m.styles.Selected
		}
		rows = append(rows, style.Render(m.truncate(marker+lines[i])))
	}
	if len(lines) > m.opts.ListHeight {
		rows = append(rows, m.styles.Label.Render(fmt.Sprintf("rows %d-%d of %d", m.offset+1, end, len(lines))))
	}

	return m.styles.ListBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// truncate fits a row inside the list box when the width is known.
func (m Model) truncate(row string) string {
	// border and padding take four columns
	limit := m.width - 4
	if m.width == 0 || limit < 1 {
		return row
	}
	return runewidth.Truncate(row, limit, "…")
}
