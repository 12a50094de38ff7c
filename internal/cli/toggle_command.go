package cli

import (
	"fmt"

	"nelo/internal/errors"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the toggle command
func (c *ToggleCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "toggle", "usage: nelo toggle <task id>")
	}

	task, err := c.app.api.ToggleTask(args[0])
	if err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}

	state := "open"
	if task.Completed {
		state = "completed"
	}
	fmt.Fprintf(c.app.out, "Task %q is now %s\n", task.Title, state)
	return nil
}
