package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"task-reminder/internal/api"
	"task-reminder/internal/config"
	"task-reminder/internal/errors"
	"task-reminder/internal/logging"
	"task-reminder/internal/ui/tui"

	"github.com/spf13/cobra"
)

// TUIRunner starts the full-screen front-end.
type TUIRunner func(ctx context.Context, taskAPI api.TaskAPI, opts tui.Options, in io.Reader, out io.Writer) error

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	loader  *config.Loader
	config  *config.Config
	version string
	runTUI  TUIRunner
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(loader *config.Loader, version string) *RootCommand {
	root := &RootCommand{
		loader:  loader,
		version: version,
		runTUI:  tui.Run,
	}

	root.cmd = &cobra.Command{
		Use:   "remind",
		Short: "Keep track of tasks and their due dates",
		Long: `remind keeps a list of tasks with due dates for the length of a session.

Tasks can be added, marked as completed, deleted and sorted by due date.
Nothing is saved when the session ends.

MODES:
  tui     full-screen form and list (default on a terminal)
  shell   line-mode prompt, also used when input is piped

EXAMPLES:
  remind                                  # Start in the configured mode
  remind shell                            # Start the line-mode shell
  printf 'add 2024-05-01 Buy milk\nlist\n' | remind

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  Config file: <user config dir>/remind/config.toml (REMIND_CONFIG or --config)

  Environment:
    REMIND_MODE                            auto, tui or shell (default: auto)
    REMIND_ALT_SCREEN                      Use the alternate screen (default: false)
    REMIND_CONFIRM_EXIT                    Ask before exiting (default: true)
    REMIND_PROMPT                          Shell prompt (default: "remind> ")
    REMIND_NO_COLOR, NO_COLOR              Disable colours
    REMIND_LIST_HEIGHT                     Visible task rows in the TUI (default: 10)
    REMIND_WIDTH                           Maximum row width, 0 follows the terminal
    REMIND_VERBOSE                         Verbose output
    REMIND_DEBUG                           Debug logging
    REMIND_DEBUG_LOG                       Debug log file used by the TUI`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration and apply flag overrides before any command runs
			return root.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd, root.config.UI.Mode)
		},
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Config returns the configuration loaded for the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// SetTUIRunner replaces the full-screen front-end
func (r *RootCommand) SetTUIRunner(runner TUIRunner) {
	r.runTUI = runner
}

// Execute runs the root command
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file path (overrides REMIND_CONFIG)")

	// UI configuration
	flags.String("mode", "", "Front-end: auto, tui or shell (overrides REMIND_MODE)")
	flags.Bool("alt-screen", false, "Run the TUI in the alternate screen (overrides REMIND_ALT_SCREEN)")
	flags.Bool("no-confirm-exit", false, "Exit without asking for confirmation (overrides REMIND_CONFIRM_EXIT)")

	// Display configuration
	flags.Bool("no-color", false, "Disable colours (overrides REMIND_NO_COLOR)")
	flags.Int("list-height", 0, "Visible task rows in the TUI (overrides REMIND_LIST_HEIGHT)")

	// Application configuration
	flags.Bool("verbose", false, "Enable verbose output (overrides REMIND_VERBOSE)")
	flags.Bool("debug", false, "Enable debug logging (overrides REMIND_DEBUG)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the full-screen interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, config.ModeTUI)
		},
	}

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the line-mode shell",
		Long: `Start the line-mode shell.

Commands:
  add <yyyy-mm-dd> <title>   Add a task
  delete <n>                 Delete task number n
  done <n>                   Mark task number n as completed
  sort                       Sort tasks by due date
  list                       Show all tasks
  help                       Show help
  quit                       Leave the shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, config.ModeShell)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "remind %s\n", r.version)
			return nil
		},
	}

	r.cmd.AddCommand(tuiCmd, shellCmd, versionCmd)
}

// loadConfig loads the configuration cascade and sets up logging from it
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	overrides, err := r.getOverridesFromFlags()
	if err != nil {
		return err
	}

	cfg, err := r.loader.LoadWithOverrides(overrides)
	if err != nil {
		return errors.NewConfigurationError(r.configSource(), err)
	}
	r.config = cfg

	logging.Enable(cfg.Application.Debug)
	logging.SetOutput(cmd.ErrOrStderr())
	logging.Debugf("config loaded from %s, mode %s\n", r.configSource(), cfg.UI.Mode)
	return nil
}

func (r *RootCommand) configSource() string {
	if path := r.loader.Path(); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return "environment and flags"
}

// getOverridesFromFlags collects the flags the user actually set
func (r *RootCommand) getOverridesFromFlags() (*config.ConfigOverrides, error) {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("config") {
		path, err := flags.GetString("config")
		if err != nil {
			return nil, err
		}
		overrides.ConfigPath = &path
	}
	if flags.Changed("mode") {
		mode, _ := flags.GetString("mode")
		overrides.Mode = &mode
	}
	if flags.Changed("alt-screen") {
		altScreen, _ := flags.GetBool("alt-screen")
		overrides.AltScreen = &altScreen
	}
	if flags.Changed("no-confirm-exit") {
		noConfirm, _ := flags.GetBool("no-confirm-exit")
		confirm := !noConfirm
		overrides.ConfirmExit = &confirm
	}
	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		overrides.NoColor = &noColor
	}
	if flags.Changed("list-height") {
		height, _ := flags.GetInt("list-height")
		overrides.ListHeight = &height
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}
	if flags.Changed("debug") {
		debug, _ := flags.GetBool("debug")
		overrides.Debug = &debug
	}

	return overrides, nil
}

// run starts a fresh session in the requested front-end
func (r *RootCommand) run(cmd *cobra.Command, mode string) error {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	mode = ResolveMode(mode, IsTerminal(in) && IsTerminal(out))
	session := api.NewSession()
	logging.Debugf("session %s starting in %s mode\n", session.ID(), mode)

	if mode == config.ModeTUI {
		return r.startTUI(cmd.Context(), session, in, out)
	}

	app := NewApp(session, r.config, out)
	return app.RunShell(cmd.Context(), NewLineReader(in, out))
}

// startTUI runs the full-screen front-end with debug output sent to a file
func (r *RootCommand) startTUI(ctx context.Context, session api.TaskAPI, in io.Reader, out io.Writer) error {
	if r.config.Application.Debug {
		logFile, err := os.OpenFile(r.config.Application.DebugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewConfigurationError("application.debug_log", err)
		}
		defer logFile.Close()
		prev := logging.SetOutput(logFile)
		defer logging.SetOutput(prev)
	} else {
		prev := logging.SetOutput(io.Discard)
		defer logging.SetOutput(prev)
	}

	opts := tui.Options{
		ListHeight:  r.config.Display.ListHeight,
		Width:       r.config.Display.Width,
		AltScreen:   r.config.UI.AltScreen,
		ConfirmExit: r.config.UI.ConfirmExit,
		NoColor:     ColorDisabled(r.config),
	}
	if err := r.runTUI(ctx, session, opts, in, out); err != nil {
		return errors.NewTerminalError("run tui", err)
	}
	return nil
}
