package cli

import (
	"fmt"
	"text/tabwriter"

	"nelo/internal/domain"
	"nelo/internal/errors"
	"nelo/internal/view"
)

// ListCommandOptions carries the flag values of the list command.
type ListCommandOptions struct {
	Filter string
	Search string
}

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(args []string, opts ListCommandOptions) error {
	filter, err := view.ParseFilterMode(opts.Filter)
	if err != nil {
		return errors.NewInvalidInputError("filter", opts.Filter, "expected all, active or completed")
	}

	tasks, err := c.app.api.QueryTasks(view.Query{Filter: filter, Search: opts.Search})
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(c.app.out, "No tasks found")
		return nil
	}

	w := tabwriter.NewWriter(c.app.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tPRIORITY\tDUE\tTITLE\tID")
	for _, task := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			statusMark(task), task.Priority, dueColumn(task), task.Title, task.ID)
	}
	return w.Flush()
}

func statusMark(task domain.Task) string {
	if task.Completed {
		return "[x]"
	}
	return "[ ]"
}

func dueColumn(task domain.Task) string {
	if task.DueDate == nil {
		return "-"
	}
	return task.DueDate.String()
}
