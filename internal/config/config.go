package config

import (
	"os"
	"path/filepath"
)

// Interface modes accepted by ui.mode.
const (
	ModeAuto  = "auto"
	ModeTUI   = "tui"
	ModeShell = "shell"
)

// Config holds all configuration options for the task reminder
type Config struct {
	UI          UIConfig          `toml:"ui"`
	Display     DisplayConfig     `toml:"display"`
	Application ApplicationConfig `toml:"application"`
}

// UIConfig holds front-end selection and behaviour
type UIConfig struct {
	Mode        string `toml:"mode" env:"REMIND_MODE"`
	AltScreen   bool   `toml:"alt_screen" env:"REMIND_ALT_SCREEN"`
	ConfirmExit bool   `toml:"confirm_exit" env:"REMIND_CONFIRM_EXIT"`
	Prompt      string `toml:"prompt" env:"REMIND_PROMPT"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	NoColor    bool `toml:"no_color" env:"REMIND_NO_COLOR"`
	ListHeight int  `toml:"list_height" env:"REMIND_LIST_HEIGHT"`
	// Width caps rendered rows; 0 follows the terminal.
	Width int `toml:"width" env:"REMIND_WIDTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose  bool   `toml:"verbose" env:"REMIND_VERBOSE"`
	Debug    bool   `toml:"debug" env:"REMIND_DEBUG"`
	DebugLog string `toml:"debug_log" env:"REMIND_DEBUG_LOG"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		UI: UIConfig{
			Mode:        ModeAuto,
			AltScreen:   false,
			ConfirmExit: true,
			Prompt:      "remind> ",
		},
		Display: DisplayConfig{
			NoColor:    false,
			ListHeight: 10,
			Width:      0,
		},
		Application: ApplicationConfig{
			Verbose:  false,
			Debug:    false,
			DebugLog: filepath.Join(os.TempDir(), "remind-debug.log"),
		},
	}
}

// DefaultPath returns the config file location, honouring REMIND_CONFIG
func DefaultPath() string {
	if path := os.Getenv("REMIND_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "remind", "config.toml")
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparsable values are ignored and the previous setting kept.
func (c *Config) LoadFromEnvironment() error {
	// UI configuration
	if mode := os.Getenv("REMIND_MODE"); mode != "" {
		c.UI.Mode = mode
	}
	if alt := os.Getenv("REMIND_ALT_SCREEN"); alt != "" {
		c.UI.AltScreen = ParseBoolWithFallback(alt, c.UI.AltScreen)
	}
	if confirm := os.Getenv("REMIND_CONFIRM_EXIT"); confirm != "" {
		c.UI.ConfirmExit = ParseBoolWithFallback(confirm, c.UI.ConfirmExit)
	}
	if prompt := os.Getenv("REMIND_PROMPT"); prompt != "" {
		c.UI.Prompt = prompt
	}

	// Display configuration
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Display.NoColor = true
	}
	if noColor := os.Getenv("REMIND_NO_COLOR"); noColor != "" {
		c.Display.NoColor = ParseBoolWithFallback(noColor, c.Display.NoColor)
	}
	if height := os.Getenv("REMIND_LIST_HEIGHT"); height != "" {
		c.Display.ListHeight = ParseIntWithFallback(height, c.Display.ListHeight)
	}
	if width := os.Getenv("REMIND_WIDTH"); width != "" {
		c.Display.Width = ParseIntWithFallback(width, c.Display.Width)
	}

	// Application configuration
	if verbose := os.Getenv("REMIND_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}
	if os.Getenv("REMIND_DEBUG") != "" {
		c.Application.Debug = true
	}
	if path := os.Getenv("REMIND_DEBUG_LOG"); path != "" {
		c.Application.DebugLog = path
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate UI configuration
	switch c.UI.Mode {
	case ModeAuto, ModeTUI, ModeShell:
	default:
		return &ConfigError{Field: "ui.mode", Message: "mode must be one of auto, tui, shell; got " + c.UI.Mode}
	}
	if c.UI.Prompt == "" {
		return &ConfigError{Field: "ui.prompt", Message: "prompt cannot be empty"}
	}

	// Validate display configuration
	if c.Display.ListHeight < 1 {
		return &ConfigError{Field: "display.list_height", Message: "list height must be at least 1"}
	}
	if c.Display.Width < 0 {
		return &ConfigError{Field: "display.width", Message: "width cannot be negative"}
	}
	if c.Display.Width > 0 && c.Display.Width < 20 {
		return &ConfigError{Field: "display.width", Message: "width must be 0 or at least 20"}
	}

	// Validate application configuration
	if c.Application.Debug && c.Application.DebugLog == "" {
		return &ConfigError{Field: "application.debug_log", Message: "debug log path cannot be empty when debug is enabled"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
