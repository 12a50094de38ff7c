package cli

import (
	"fmt"

	"nelo/internal/domain"
	"nelo/internal/errors"
)

// LoginCommand handles the login command
type LoginCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewLoginCommand creates a new login command handler
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the login command. The gate is a mock: any non-empty
// identifier and secret are accepted, and only the identifier is kept.
func (c *LoginCommand) Execute(args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "login", "usage: nelo login <identifier> <secret>")
	}

	principal, err := c.app.api.Login(domain.Credentials{
		Identifier: args[0],
		Secret:     args[1],
	})
	if err != nil {
		return c.errorHandler.Handle("log in", err)
	}

	fmt.Fprintf(c.app.out, "Logged in as %s\n", principal.Identifier)
	return nil
}
