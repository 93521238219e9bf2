// Package watcher implements file system watching for task documents.
package watcher

import (
	"cmp"
	"slices"
	"sync"
	"time"
	"unique"

	"github.com/Guardsquare/proguard-sub005/internal/core/ports"
)

// Debouncer coalesces rapid file system events into batches.
// When several events arrive for one path inside a window, the last one wins.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]ports.WatchOp
	timer    *time.Timer
	window   time.Duration
	callback func(batch []ports.WatchEvent)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(batch []ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]ports.WatchOp),
		window:   window,
		callback: callback,
	}
}

// Add records an event and restarts the debounce window.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(event.Path)] = event.Operation

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	batch := d.drain()
	d.mu.Unlock()

	if len(batch) > 0 && d.callback != nil {
		go d.callback(batch)
	}
}

// Flush delivers all pending events synchronously.
// It does nothing if the window already expired, since that batch is on its way.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	batch := d.drain()
	d.mu.Unlock()

	if len(batch) > 0 && d.callback != nil {
		d.callback(batch)
	}
}

// Stop discards pending events and cancels the window.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
}

// drain must be called with mu held.
func (d *Debouncer) drain() []ports.WatchEvent {
	if len(d.pending) == 0 {
		return nil
	}
	batch := make([]ports.WatchEvent, 0, len(d.pending))
	for handle, op := range d.pending {
		batch = append(batch, ports.WatchEvent{Path: handle.Value(), Operation: op})
	}
	clear(d.pending)
	slices.SortFunc(batch, func(a, b ports.WatchEvent) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return batch
}
