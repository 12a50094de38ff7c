package cli

import (
	"fmt"
)

// LogoutCommand handles the logout command
type LogoutCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewLogoutCommand creates a new logout command handler
func NewLogoutCommand(app *App) *LogoutCommand {
	return &LogoutCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the logout command. Tasks are kept; only the session
// flag is cleared.
func (c *LogoutCommand) Execute(args []string) error {
	if err := c.app.api.Logout(); err != nil {
		return c.errorHandler.Handle("log out", err)
	}

	fmt.Fprintln(c.app.out, "Logged out")
	return nil
}
