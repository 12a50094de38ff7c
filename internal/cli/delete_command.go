package cli

import (
	"fmt"

	"nelo/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command. Deleting an id that does not exist
// succeeds quietly: the task is gone either way.
func (c *DeleteCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: nelo delete <task id>")
	}

	if err := c.app.api.DeleteTask(args[0]); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Fprintln(c.app.out, "Task deleted")
	return nil
}
