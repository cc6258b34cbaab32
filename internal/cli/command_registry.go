package cli

import (
	"context"
	"sort"
	"strings"

	"task-reminder/internal/errors"
)

// Command represents a shell command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	// Register all commands
	registry.Register("add", NewAddCommand(app))
	registry.Register("delete", NewDeleteCommand(app))
	registry.Register("done", NewCompleteCommand(app))
	registry.Register("complete", NewCompleteCommand(app))
	registry.Register("sort", NewSortCommand(app))
	registry.Register("list", NewListCommand(app))
	registry.Register("help", NewHelpCommand(app))
	registry.Register("quit", QuitCommand{})
	registry.Register("exit", QuitCommand{})
	registry.Register("q", QuitCommand{})

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command, "+r.GetUsage())
	}
	return command.Execute(ctx, args)
}

// Names returns the registered command names in sorted order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetUsage returns the usage string for the shell
func (r *CommandRegistry) GetUsage() string {
	return strings.Join([]string{
		"usage: add <yyyy-mm-dd> <title>",
		"delete <n>",
		"done <n>",
		"sort",
		"list",
		"help",
		"quit",
	}, " | ")
}
