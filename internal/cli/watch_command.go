package cli

import (
	"context"
	"fmt"

	"nelo/internal/notify"
)

// WatchCommand handles the watch command: it keeps the process alive
// and prints a reminder whenever open tasks are found on the configured
// interval.
type WatchCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewWatchCommand creates a new watch command handler
func NewWatchCommand(app *App) *WatchCommand {
	return &WatchCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the watch command until the context is cancelled.
func (c *WatchCommand) Execute(ctx context.Context, args []string) error {
	interval := c.app.config.Notification.Interval

	// Surface a permission error before the ticker starts
	if _, err := c.app.api.PendingTitles(); err != nil {
		return c.errorHandler.Handle("watch tasks", err)
	}

	// A session lost mid-watch fails closed: no titles, no reminder
	pending := func() []string {
		titles, err := c.app.api.PendingTitles()
		if err != nil {
			return nil
		}
		return titles
	}

	notifier := notify.NewNotifier(interval, pending, notify.WriterSink{W: c.app.out})
	notifier.Start()
	defer notifier.Stop()

	fmt.Fprintf(c.app.out, "Watching for pending tasks every %s (ctrl-c to stop)\n", interval)
	<-ctx.Done()
	fmt.Fprintln(c.app.out, "Stopped watching")
	return nil
}
