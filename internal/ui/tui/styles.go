package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	muted  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	green  = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	red    = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
)

// Styles groups the lipgloss styles used by the view.
type Styles struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Focused   lipgloss.Style
	Row       lipgloss.Style
	Selected  lipgloss.Style
	Completed lipgloss.Style
	Empty     lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Prompt    lipgloss.Style
	ListBox   lipgloss.Style
}

// DefaultStyles returns the colour styles.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Label:     lipgloss.NewStyle().Foreground(muted),
		Focused:   lipgloss.NewStyle().Foreground(accent),
		Row:       lipgloss.NewStyle(),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Completed: lipgloss.NewStyle().Foreground(green),
		Empty:     lipgloss.NewStyle().Italic(true).Foreground(muted),
		Status:    lipgloss.NewStyle().Foreground(green),
		Error:     lipgloss.NewStyle().Foreground(red),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(red),
		ListBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1),
	}
}

// PlainStyles returns styles without colour or emphasis.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:     plain,
		Label:     plain,
		Focused:   plain,
		Row:       plain,
		Selected:  plain,
		Completed: plain,
		Empty:     plain,
		Status:    plain,
		Error:     plain,
		Prompt:    plain,
		ListBox:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
}
