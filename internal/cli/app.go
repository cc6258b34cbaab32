package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"task-reminder/internal/api"
	"task-reminder/internal/config"
	apperrors "task-reminder/internal/errors"
	"task-reminder/internal/logging"

	"github.com/mattn/go-runewidth"
)

const exitPrompt = "Are you sure you want to exit? [y/N] "

// errExit is returned by the quit command to end the shell loop.
var errExit = errors.New("exit requested")

// App represents the line-mode shell over one task session
type App struct {
	taskAPI      api.TaskAPI
	config       *config.Config
	registry     *CommandRegistry
	errorHandler *ErrorHandler
	out          io.Writer
	plain        bool
	log          *logging.Logger
}

// NewApp creates a new shell application with dependency injection
func NewApp(taskAPI api.TaskAPI, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		taskAPI:      taskAPI,
		config:       cfg,
		errorHandler: NewErrorHandler(),
		out:          out,
		plain:        cfg.Display.NoColor || !IsTerminal(out),
		log:          logging.New("shell").WithSession(shortID(taskAPI.ID())),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Execute parses and runs one line of shell input
func (a *App) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	return a.registry.Execute(ctx, strings.ToLower(fields[0]), fields[1:])
}

// RunShell reads commands until the user quits, input ends or ctx is cancelled
func (a *App) RunShell(ctx context.Context, reader LineReader) error {
	defer reader.Close()

	fmt.Fprintln(a.out, "Task reminder. Type 'help' for commands.")
	if a.config.Application.Verbose {
		fmt.Fprintf(a.out, "Session %s\n", a.taskAPI.ID())
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := reader.ReadLine(a.config.UI.Prompt)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(a.out)
			return nil
		case errors.Is(err, ErrInterrupted):
			if a.confirmExit(reader) {
				return nil
			}
			continue
		case err != nil:
			return apperrors.NewTerminalError("read input", err)
		}

		err = a.Execute(ctx, line)
		if errors.Is(err, errExit) {
			if a.confirmExit(reader) {
				return nil
			}
			continue
		}
		if err != nil {
			if !a.errorHandler.IsUserError(err) {
				a.log.Debugf("command %q failed [%s]: %v", line, a.errorHandler.GetErrorCode(err), err)
			}
			fmt.Fprintln(a.out, a.errorHandler.HandleSimple(err))
		}
	}
}

// confirmExit asks before leaving when the config requires it.
// Unreadable input counts as yes.
func (a *App) confirmExit(reader LineReader) bool {
	if !a.config.UI.ConfirmExit {
		return true
	}
	answer, err := reader.ReadLine(exitPrompt)
	if err != nil {
		return true
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// printTasks writes the numbered task list
func (a *App) printTasks() {
	lines := a.taskAPI.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(a.out, "No tasks.")
		return
	}
	for i, line := range lines {
		fmt.Fprintln(a.out, a.fit(fmt.Sprintf("%2d. %s", i+1, line)))
	}
}

func (a *App) fit(row string) string {
	if a.config.Display.Width == 0 {
		return row
	}
	return runewidth.Truncate(row, a.config.Display.Width, "…")
}
