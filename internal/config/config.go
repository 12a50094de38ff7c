package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the task manager application
type Config struct {
	Database     DatabaseConfig
	Storage      StorageConfig
	Search       SearchConfig
	Notification NotificationConfig
	Validation   ValidationConfig
	Application  ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir      string `env:"NELO_DB_DIR"`
	Filename string `env:"NELO_DB_FILENAME"`
}

// StorageConfig holds the key names the blob store uses
type StorageConfig struct {
	TasksKey   string `env:"NELO_TASKS_KEY"`
	SessionKey string `env:"NELO_SESSION_KEY"`
}

// SearchConfig holds derived-view search configuration
type SearchConfig struct {
	DebounceWindow time.Duration `env:"NELO_SEARCH_DEBOUNCE"`
}

// NotificationConfig holds pending-task notification configuration
type NotificationConfig struct {
	Interval time.Duration `env:"NELO_NOTIFY_INTERVAL"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength int `env:"NELO_VALIDATION_TITLE_MIN"`
	TitleMaxLength int `env:"NELO_VALIDATION_TITLE_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"NELO_APP_TIMEOUT"`
	Verbose bool          `env:"NELO_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".nelo")

	return &Config{
		Database: DatabaseConfig{
			Dir:      defaultDBDir,
			Filename: "nelo.db",
		},
		Storage: StorageConfig{
			TasksKey:   "tasks",
			SessionKey: "user",
		},
		Search: SearchConfig{
			DebounceWindow: 300 * time.Millisecond,
		},
		Notification: NotificationConfig{
			Interval: 20 * time.Minute,
		},
		Validation: ValidationConfig{
			TitleMinLength: 1,
			TitleMaxLength: 255,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("NELO_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("NELO_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}

	// Storage configuration
	if key := os.Getenv("NELO_TASKS_KEY"); key != "" {
		c.Storage.TasksKey = key
	}
	if key := os.Getenv("NELO_SESSION_KEY"); key != "" {
		c.Storage.SessionKey = key
	}

	// Search configuration
	if window := os.Getenv("NELO_SEARCH_DEBOUNCE"); window != "" {
		if d, err := time.ParseDuration(window); err == nil {
			c.Search.DebounceWindow = d
		}
	}

	// Notification configuration
	if interval := os.Getenv("NELO_NOTIFY_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Notification.Interval = d
		}
	}

	// Validation configuration
	if minLen := os.Getenv("NELO_VALIDATION_TITLE_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TitleMinLength = n
		}
	}
	if maxLen := os.Getenv("NELO_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("NELO_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("NELO_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}

	// Validate storage configuration
	if c.Storage.TasksKey == "" {
		return &ConfigError{Field: "storage.tasks_key", Message: "tasks key cannot be empty"}
	}
	if c.Storage.SessionKey == "" {
		return &ConfigError{Field: "storage.session_key", Message: "session key cannot be empty"}
	}
	if c.Storage.TasksKey == c.Storage.SessionKey {
		return &ConfigError{Field: "storage.session_key", Message: "tasks key and session key must differ"}
	}

	// Validate search configuration
	if c.Search.DebounceWindow <= 0 {
		return &ConfigError{Field: "search.debounce_window", Message: "debounce window must be positive"}
	}

	// Validate notification configuration
	if c.Notification.Interval <= 0 {
		return &ConfigError{Field: "notification.interval", Message: "notification interval must be positive"}
	}

	// Validate validation configuration
	if c.Validation.TitleMinLength < 1 {
		return &ConfigError{Field: "validation.title_min_length", Message: "title minimum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be greater than minimum length"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
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
