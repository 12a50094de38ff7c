package view

import (
	"sync"
	"time"
)

// Debouncer delays delivery of a search term until the input has been
// quiet for a full window. Each Input cancels any pending delivery and
// starts the window over, so a burst of keystrokes yields exactly one
// callback carrying the final term.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	apply   func(term string)
	timer   *time.Timer
	pending string
	gen     uint64
	stopped bool
}

// NewDebouncer creates a debouncer that calls apply with the settled
// term once input has been idle for the given window. The callback runs
// on a timer goroutine, except when delivered through Flush.
func NewDebouncer(window time.Duration, apply func(term string)) *Debouncer {
	return &Debouncer{
		window: window,
		apply:  apply,
	}
}

// Input registers a new term, cancelling any pending delivery and
// scheduling this term for delivery one window from now.
func (d *Debouncer) Input(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = term
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.window, func() {
		d.deliver(gen)
	})
}

// deliver fires the callback for a scheduled term, unless a later Input,
// Flush or Stop superseded it.
func (d *Debouncer) deliver(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	term := d.pending
	d.timer = nil
	d.mu.Unlock()

	d.apply(term)
}

// Flush delivers the pending term synchronously, if any. It returns
// after the callback has run.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.stopped || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	term := d.pending
	d.mu.Unlock()

	d.apply(term)
}

// Stop cancels any pending delivery. The debouncer ignores further
// input after Stop.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
