package search

import (
	"sync"
	"time"
)

type debounceEntry struct {
	timer *time.Timer
	gen   uint64
}

// Debouncer coalesces rapid Schedule calls under the same key into a single
// delayed callback. Only the callback from the most recent Schedule for a key
// ever runs. Each widget owns its own Debouncer, so two widgets on one page
// cannot cancel each other's timers.
type Debouncer struct {
	mu      sync.Mutex
	entries map[string]*debounceEntry
}

func NewDebouncer() *Debouncer {
	return &Debouncer{
		entries: make(map[string]*debounceEntry),
	}
}

// Schedule cancels any unfired callback under key and arms a new timer.
// Fire-and-forget: there is no way to observe whether fn ran.
func (d *Debouncer) Schedule(key string, delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.entries[key]
	if !ok {
		e = &debounceEntry{}
		d.entries[key] = e
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	e.gen++

	gen := e.gen
	e.timer = time.AfterFunc(delay, func() {
		// A timer that was superseded between firing and acquiring the lock
		// must not run its callback. The generation check closes that window;
		// timer.Stop alone cannot.
		d.mu.Lock()
		stale := e.gen != gen
		d.mu.Unlock()
		if stale {
			return
		}
		fn()
	})
}

// Cancel drops any pending callback under key.
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if e, ok := d.entries[key]; ok {
		if e.timer != nil {
			e.timer.Stop()
		}
		e.gen++
	}
}

// Stop cancels every pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, e := range d.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
		e.gen++
	}
}
