package tui

import (
	"context"
	"io"

	"task-reminder/internal/api"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Run shows the reminder screen until the user quits or ctx is cancelled.
func Run(ctx context.Context, taskAPI api.TaskAPI, opts Options, in io.Reader, out io.Writer) error {
	if opts.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(New(taskAPI, opts), programOpts...).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
