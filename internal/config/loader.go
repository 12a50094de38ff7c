package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configPath string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config:     NewConfig(),
		configPath: ResolveConfigPath(),
	}
}

// NewLoaderWithPath creates a loader reading the TOML file from a fixed path
func NewLoaderWithPath(path string) *Loader {
	return &Loader{
		config:     NewConfig(),
		configPath: path,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Overlay the TOML config file (created on first launch)
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// Step 1: Start with defaults (already done in NewConfig)

	// Step 2: Overlay the config file
	if l.configPath != "" {
		if err := l.config.LoadFile(l.configPath); err != nil {
			return nil, err
		}
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

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDir      *string
	DBFilename *string

	// Storage overrides
	TasksKey   *string
	SessionKey *string

	// Search overrides
	DebounceWindow *time.Duration

	// Notification overrides
	NotifyInterval *time.Duration

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
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

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.TasksKey != nil {
		config.Storage.TasksKey = *overrides.TasksKey
	}
	if overrides.SessionKey != nil {
		config.Storage.SessionKey = *overrides.SessionKey
	}
	if overrides.DebounceWindow != nil {
		config.Search.DebounceWindow = *overrides.DebounceWindow
	}
	if overrides.NotifyInterval != nil {
		config.Notification.Interval = *overrides.NotifyInterval
	}
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
