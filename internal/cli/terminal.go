package cli

import (
	"os"

	"task-reminder/internal/config"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether v is a file attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// ResolveMode turns the configured mode into the front-end to run.
// Auto picks the TUI only when both ends of the session are terminals.
func ResolveMode(mode string, interactive bool) string {
	if mode != config.ModeAuto {
		return mode
	}
	if interactive {
		return config.ModeTUI
	}
	return config.ModeShell
}

// ColorDisabled reports whether output should be plain, from config or from
// NO_COLOR and a non-colour terminal.
func ColorDisabled(cfg *config.Config) bool {
	if cfg != nil && cfg.Display.NoColor {
		return true
	}
	return termenv.NewOutput(os.Stdout).EnvColorProfile() == termenv.Ascii
}
