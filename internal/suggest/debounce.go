package suggest

import (
	"sync"
	"time"
)

// debouncer coalesces rapid schedule calls into one callback after the
// configured quiescence interval. Last write wins: arming replaces any
// pending timer. The callback runs on the timer goroutine.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

// schedule arms the timer, cancelling any pending one.
func (d *debouncer) schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// stop cancels any pending timer. Safe to call repeatedly and after the
// timer has fired.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
