package detect

import (
	"sync"
	"time"
)

// Debouncer collapses a burst of triggers into a single job invocation after
// a quiet window. Each Trigger restarts the window; only the last job runs.
// Safe for use across goroutines: a poll loop triggers, the owner stops.
type Debouncer struct {
	window time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewDebouncer creates a debouncer with the given quiet window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Trigger schedules job to run after the quiet window, replacing any job
// scheduled by a previous Trigger that has not fired yet.
func (d *Debouncer) Trigger(job func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		stopped := d.stopped
		d.mu.Unlock()
		if stopped {
			return
		}
		job()
	})
}

// Stop invalidates any pending job and rejects future triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
