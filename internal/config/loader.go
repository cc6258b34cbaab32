package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
	path   string
}

// NewLoader creates a new configuration loader reading the default config file
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
		path:   DefaultPath(),
	}
}

// NewLoaderWithPath creates a loader reading the given config file
func NewLoaderWithPath(path string) *Loader {
	return &Loader{
		config: NewConfig(),
		path:   path,
	}
}

// Path returns the config file the loader reads
func (l *Loader) Path() string {
	return l.path
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	// Step 1: Start with defaults, so nothing from an earlier Load survives
	l.config = NewConfig()

	// Step 2: Load from the config file
	if err := l.loadFile(); err != nil {
		return nil, err
	}

	// Step 3: Load from environment variables
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	// Step 4: Validate the configuration
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// loadFile decodes the TOML file over the current settings. A missing file is not an error.
func (l *Loader) loadFile() error {
	if l.path == "" {
		return nil
	}

	md, err := toml.DecodeFile(l.path, l.config)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to decode config file %s: %w", l.path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return &ConfigError{Field: keys[0], Message: "unknown setting in " + l.path + ": " + strings.Join(keys, ", ")}
	}

	return nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if overrides != nil && overrides.ConfigPath != nil {
		l.path = *overrides.ConfigPath
	}

	// Load base configuration
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	// Apply command line overrides
	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	ConfigPath *string

	// UI overrides
	Mode        *string
	AltScreen   *bool
	ConfirmExit *bool

	// Display overrides
	NoColor    *bool
	ListHeight *int

	// Application overrides
	Verbose *bool
	Debug   *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// UI overrides
	if overrides.Mode != nil {
		config.UI.Mode = *overrides.Mode
	}
	if overrides.AltScreen != nil {
		config.UI.AltScreen = *overrides.AltScreen
	}
	if overrides.ConfirmExit != nil {
		config.UI.ConfirmExit = *overrides.ConfirmExit
	}

	// Display overrides
	if overrides.NoColor != nil {
		config.Display.NoColor = *overrides.NoColor
	}
	if overrides.ListHeight != nil {
		config.Display.ListHeight = *overrides.ListHeight
	}

	// Application overrides
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
	if overrides.Debug != nil {
		config.Application.Debug = *overrides.Debug
	}
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
