// Package notify emits periodic reminders about tasks that are still
// open. Delivery is a stub: reminders go to a pluggable sink rather
// than a real notification channel.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Sink receives the titles of the pending tasks each time the notifier
// finds any.
type Sink interface {
	Notify(titles []string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(titles []string)

// Notify calls the wrapped function.
func (f SinkFunc) Notify(titles []string) {
	f(titles)
}

// WriterSink writes reminders as lines of text, for terminal use.
type WriterSink struct {
	W io.Writer
}

// Notify writes a reminder header followed by one line per task.
func (s WriterSink) Notify(titles []string) {
	noun := "tasks"
	if len(titles) == 1 {
		noun = "task"
	}
	fmt.Fprintf(s.W, "Reminder: you have %d pending %s:\n", len(titles), noun)
	for _, title := range titles {
		fmt.Fprintf(s.W, "  - %s\n", title)
	}
}

// Notifier periodically collects pending task titles and notifies the
// sink when any are found. Ticks with nothing pending are silent.
type Notifier struct {
	interval time.Duration
	pending  func() []string
	sink     Sink

	mu      sync.Mutex
	stop    chan struct{}
	stopped sync.WaitGroup
}

// NewNotifier creates a notifier that checks for pending tasks every
// interval. The pending function must be safe to call from the ticker
// goroutine.
func NewNotifier(interval time.Duration, pending func() []string, sink Sink) *Notifier {
	return &Notifier{
		interval: interval,
		pending:  pending,
		sink:     sink,
	}
}

// Start launches the ticker goroutine. Starting a running notifier is a
// no-op.
func (n *Notifier) Start() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.stop != nil {
		return
	}
	n.stop = make(chan struct{})
	n.stopped.Add(1)

	go n.run(n.stop)
}

// Stop halts the ticker and waits for the goroutine to exit, so no
// notification arrives after Stop returns. Stopping a stopped notifier
// is a no-op.
func (n *Notifier) Stop() {
	n.mu.Lock()
	stop := n.stop
	n.stop = nil
	n.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	n.stopped.Wait()
}

func (n *Notifier) run(stop chan struct{}) {
	defer n.stopped.Done()

	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if titles := n.pending(); len(titles) > 0 {
				n.sink.Notify(titles)
			}
		case <-stop:
			return
		}
	}
}
