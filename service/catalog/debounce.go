package catalog

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls: only the last fn passed to Trigger runs, once
// wait has elapsed without another Trigger.
type Debouncer struct {
	wait    time.Duration
	mu      sync.Mutex
	timer   *time.Timer
	pending func()
}

func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn
	d.timer = time.AfterFunc(d.wait, d.fire)
}

// take returns the pending call, at most once.
func (d *Debouncer) take() func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	fn := d.pending
	d.pending = nil
	return fn
}

func (d *Debouncer) fire() {
	if fn := d.take(); fn != nil {
		fn()
	}
}

// Flush runs the pending call now, if there is one.
func (d *Debouncer) Flush() {
	d.fire()
}

// Stop discards a pending call.
func (d *Debouncer) Stop() {
	d.take()
}
