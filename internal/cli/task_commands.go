package cli

import (
	"context"
	"strings"

	"task-reminder/internal/api"
	"task-reminder/internal/errors"
	"task-reminder/internal/validation"
)

// AddCommand handles `add <yyyy-mm-dd> <title...>`
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute adds a task and reprints the list. Missing words reach the
// validator as empty fields.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	var dueDate, title string
	if len(args) > 0 {
		dueDate = args[0]
		title = strings.Join(args[1:], " ")
	}

	if err := c.app.taskAPI.Dispatch(api.AddCommand(title, dueDate)); err != nil {
		return err
	}
	c.app.printTasks()
	return nil
}

// DeleteCommand handles `delete <n>`
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute removes the task at the given 1-based position
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	index, err := parsePosition(args)
	if err != nil {
		return err
	}
	if err := c.app.taskAPI.Dispatch(api.DeleteCommand(index)); err != nil {
		return err
	}
	c.app.printTasks()
	return nil
}

// CompleteCommand handles `done <n>` and `complete <n>`
type CompleteCommand struct {
	app *App
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{app: app}
}

// Execute marks the task at the given 1-based position as completed
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	index, err := parsePosition(args)
	if err != nil {
		return err
	}
	if err := c.app.taskAPI.Dispatch(api.CompleteCommand(index)); err != nil {
		return err
	}
	c.app.printTasks()
	return nil
}

// SortCommand handles `sort`
type SortCommand struct {
	app *App
}

// NewSortCommand creates a new sort command handler
func NewSortCommand(app *App) *SortCommand {
	return &SortCommand{app: app}
}

// Execute sorts tasks by due date and reprints the list
func (c *SortCommand) Execute(ctx context.Context, args []string) error {
	if err := c.app.taskAPI.Dispatch(api.SortCommand()); err != nil {
		return err
	}
	c.app.printTasks()
	return nil
}

// ListCommand handles `list`
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute prints the task list
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	c.app.printTasks()
	return nil
}

// QuitCommand handles `quit`, `exit` and `q`
type QuitCommand struct{}

// Execute asks the shell loop to stop
func (QuitCommand) Execute(ctx context.Context, args []string) error {
	return errExit
}

// parsePosition maps the optional 1-based position argument to an index.
// No argument means nothing is selected.
func parsePosition(args []string) (int, error) {
	if len(args) == 0 {
		return api.NoSelection, nil
	}
	index, ok := validation.NewValidator().ParsePosition(args[0])
	if !ok {
		return 0, errors.NewInvalidInputError("position", args[0], "must be a task number")
	}
	return index, nil
}
