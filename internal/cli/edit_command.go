package cli

import (
	"fmt"

	"nelo/internal/domain"
	"nelo/internal/errors"
)

// EditCommandOptions carries the flag values of the edit command. The
// Set booleans record which flags the user actually passed, so an
// explicitly empty value can be told apart from an omitted one.
type EditCommandOptions struct {
	Title          string
	TitleSet       bool
	Description    string
	DescriptionSet bool
	Priority       string
	PrioritySet    bool
	Due            string
	DueSet         bool
	ClearDue       bool
}

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command
func (c *EditCommand) Execute(args []string, opts EditCommandOptions) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "edit", "usage: nelo edit <task id> [flags]")
	}
	id := args[0]

	patch, err := c.buildPatch(opts)
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return errors.NewInvalidInputError("command", "edit", "nothing to change: pass at least one of --title, --desc, --priority, --due, --clear-due")
	}

	task, err := c.app.api.UpdateTask(id, patch)
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	fmt.Fprintf(c.app.out, "Updated task: %s\n", task.Title)
	return nil
}

func (c *EditCommand) buildPatch(opts EditCommandOptions) (domain.TaskPatch, error) {
	var patch domain.TaskPatch

	if opts.TitleSet {
		title := opts.Title
		patch.Title = &title
	}
	if opts.DescriptionSet {
		description := opts.Description
		patch.Description = &description
	}
	if opts.PrioritySet {
		priority, ok := domain.ParsePriority(opts.Priority)
		if !ok {
			return domain.TaskPatch{}, errors.NewInvalidInputError("priority", opts.Priority, "expected high, medium or low")
		}
		patch.Priority = &priority
	}
	if opts.DueSet {
		due, err := domain.ParseDate(opts.Due)
		if err != nil {
			return domain.TaskPatch{}, errors.NewInvalidInputError("due", opts.Due, "expected YYYY-MM-DD")
		}
		patch.DueDate = &due
	}
	patch.ClearDueDate = opts.ClearDue

	return patch, nil
}
