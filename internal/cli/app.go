package cli

import (
	"io"
	"os"

	"nelo/internal/api"
	"nelo/internal/config"
)

// App represents the main CLI application. Command handlers reach the
// task manager through the injected API and write to the app's output
// writer, so tests can capture what a command printed.
type App struct {
	api    api.API
	config *config.Config
	out    io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
		out:    os.Stdout,
	}
}

// SetOutput redirects command output, primarily for tests.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}
