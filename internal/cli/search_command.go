package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"nelo/internal/errors"
	"nelo/internal/view"
)

// SearchCommandOptions carries the flag values of the search command.
type SearchCommandOptions struct {
	Filter string
}

// SearchCommand handles the interactive search command. Each input line
// refines the query; results are printed once typing has settled for
// the configured debounce window, so rapid refinements cost one lookup.
type SearchCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewSearchCommand creates a new search command handler
func NewSearchCommand(app *App) *SearchCommand {
	return &SearchCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the search command, reading query lines from in until
// EOF. The final pending query is flushed before returning.
func (c *SearchCommand) Execute(in io.Reader, opts SearchCommandOptions) error {
	filter, err := view.ParseFilterMode(opts.Filter)
	if err != nil {
		return errors.NewInvalidInputError("filter", opts.Filter, "expected all, active or completed")
	}

	// Surface a permission error before entering the input loop
	if _, err := c.app.api.QueryTasks(view.Query{Filter: filter}); err != nil {
		return c.errorHandler.Handle("search tasks", err)
	}

	// Deliveries come from the timer goroutine and from Flush
	var mu sync.Mutex
	debouncer := view.NewDebouncer(c.app.config.Search.DebounceWindow, func(term string) {
		mu.Lock()
		defer mu.Unlock()
		c.printResults(filter, term)
	})
	defer debouncer.Stop()

	fmt.Fprintln(c.app.out, "Type to search, one query per line (ctrl-d to quit)")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		debouncer.Input(strings.TrimSpace(scanner.Text()))
	}
	debouncer.Flush()

	return scanner.Err()
}

func (c *SearchCommand) printResults(filter view.FilterMode, term string) {
	tasks, err := c.app.api.QueryTasks(view.Query{Filter: filter, Search: term})
	if err != nil {
		fmt.Fprintf(c.app.out, "search failed: %v\n", c.errorHandler.HandleSimple(err))
		return
	}

	if len(tasks) == 0 {
		fmt.Fprintf(c.app.out, "No tasks match %q\n", term)
		return
	}
	fmt.Fprintf(c.app.out, "Tasks matching %q:\n", term)
	for _, task := range tasks {
		fmt.Fprintf(c.app.out, "  %s %s (%s)\n", statusMark(task), task.Title, task.ID)
	}
}
