package cli

import (
	"fmt"
	"strings"

	"nelo/internal/domain"
	"nelo/internal/errors"
	"nelo/internal/repository"
)

// AddOptions carries the flag values of the add command.
type AddCommandOptions struct {
	Description string
	Priority    string
	Due         string
}

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(args []string, opts AddCommandOptions) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: nelo add \"task title\"")
	}
	title := strings.Join(args, " ")

	priority, ok := domain.ParsePriority(opts.Priority)
	if !ok {
		return errors.NewInvalidInputError("priority", opts.Priority, "expected high, medium or low")
	}

	addOpts := repository.AddOptions{
		Description: opts.Description,
		Priority:    priority,
	}
	if opts.Due != "" {
		due, err := domain.ParseDate(opts.Due)
		if err != nil {
			return errors.NewInvalidInputError("due", opts.Due, "expected YYYY-MM-DD")
		}
		addOpts.DueDate = &due
	}

	task, err := c.app.api.AddTask(title, addOpts)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.app.out, "Added task: %s (%s)\n", task.Title, task.ID)
	return nil
}
