package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	// DefaultConfigFileName is the name of the TOML config file.
	DefaultConfigFileName = "config.toml"
)

// ResolveConfigPath returns the path where the config file is expected,
// honoring the NELO_CONFIG environment variable.
func ResolveConfigPath() string {
	if path := os.Getenv("NELO_CONFIG"); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(homeDir, ".nelo", DefaultConfigFileName)
}

// duration wraps time.Duration so the TOML file can carry values like
// "300ms" or "20m" as strings.
type duration time.Duration

func (d duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

// fileConfig mirrors Config with file-friendly field types. Zero values
// mean "not set in the file" and leave the config untouched.
type fileConfig struct {
	Database struct {
		Dir      string `toml:"dir"`
		Filename string `toml:"filename"`
	} `toml:"database"`
	Storage struct {
		TasksKey   string `toml:"tasks_key"`
		SessionKey string `toml:"session_key"`
	} `toml:"storage"`
	Search struct {
		DebounceWindow duration `toml:"debounce_window"`
	} `toml:"search"`
	Notification struct {
		Interval duration `toml:"interval"`
	} `toml:"notification"`
	Validation struct {
		TitleMinLength int `toml:"title_min_length"`
		TitleMaxLength int `toml:"title_max_length"`
	} `toml:"validation"`
	Application struct {
		Timeout duration `toml:"timeout"`
		Verbose bool     `toml:"verbose"`
	} `toml:"application"`
}

func (c *Config) toFileConfig() fileConfig {
	var fc fileConfig
	fc.Database.Dir = c.Database.Dir
	fc.Database.Filename = c.Database.Filename
	fc.Storage.TasksKey = c.Storage.TasksKey
	fc.Storage.SessionKey = c.Storage.SessionKey
	fc.Search.DebounceWindow = duration(c.Search.DebounceWindow)
	fc.Notification.Interval = duration(c.Notification.Interval)
	fc.Validation.TitleMinLength = c.Validation.TitleMinLength
	fc.Validation.TitleMaxLength = c.Validation.TitleMaxLength
	fc.Application.Timeout = duration(c.Application.Timeout)
	fc.Application.Verbose = c.Application.Verbose
	return fc
}

func (c *Config) applyFileConfig(fc fileConfig) {
	if fc.Database.Dir != "" {
		c.Database.Dir = fc.Database.Dir
	}
	if fc.Database.Filename != "" {
		c.Database.Filename = fc.Database.Filename
	}
	if fc.Storage.TasksKey != "" {
		c.Storage.TasksKey = fc.Storage.TasksKey
	}
	if fc.Storage.SessionKey != "" {
		c.Storage.SessionKey = fc.Storage.SessionKey
	}
	if fc.Search.DebounceWindow != 0 {
		c.Search.DebounceWindow = time.Duration(fc.Search.DebounceWindow)
	}
	if fc.Notification.Interval != 0 {
		c.Notification.Interval = time.Duration(fc.Notification.Interval)
	}
	if fc.Validation.TitleMinLength != 0 {
		c.Validation.TitleMinLength = fc.Validation.TitleMinLength
	}
	if fc.Validation.TitleMaxLength != 0 {
		c.Validation.TitleMaxLength = fc.Validation.TitleMaxLength
	}
	if fc.Application.Timeout != 0 {
		c.Application.Timeout = time.Duration(fc.Application.Timeout)
	}
	if fc.Application.Verbose {
		c.Application.Verbose = true
	}
}

// LoadFile overlays values from a TOML file onto the config. A missing
// file is written out with the current values so the user has something
// to edit; any other read or parse failure is returned.
func (c *Config) LoadFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return c.writeFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return err
	}
	c.applyFileConfig(fc)
	return nil
}

func (c *Config) writeFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	fc := c.toFileConfig()
	data, err := toml.Marshal(fc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
