package watcher

import (
	"context"
	"fmt"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
	"github.com/Guardsquare/proguard-sub005/internal/core/ports"
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher implements ports.Watcher using fsnotify.
//
// Parent directories are watched instead of the files themselves so that
// editors which save by renaming a temporary file over the original are seen.
type Watcher struct {
	logger ports.Logger
	window time.Duration

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	files     map[string]struct{}
	dirs      map[string]struct{}

	events   chan []ports.WatchEvent
	done     chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher that batches events within the given window.
// No file system resources are held until Start is called.
func NewWatcher(logger ports.Logger, window time.Duration) *Watcher {
	return &Watcher{
		logger: logger,
		window: window,
		files:  make(map[string]struct{}),
		dirs:   make(map[string]struct{}),
		events: make(chan []ports.WatchEvent, eventChannelBuffer),
		done:   make(chan struct{}),
	}
}

// Start begins watching files. It stops on its own when ctx is canceled.
func (w *Watcher) Start(ctx context.Context, files []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher != nil {
		return zerr.With(domain.ErrWatchFailed, "reason", "already started")
	}
	select {
	case <-w.done:
		return zerr.With(domain.ErrWatchFailed, "reason", "already stopped")
	default:
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	w.fsWatcher = fsw
	w.debouncer = NewDebouncer(w.window, w.deliver)

	if err := w.setFilesLocked(files); err != nil {
		_ = fsw.Close()
		w.fsWatcher = nil
		return err
	}

	go w.processEvents(ctx, fsw)
	return nil
}

// SetFiles replaces the set of watched files.
func (w *Watcher) SetFiles(files []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher == nil {
		return zerr.With(domain.ErrWatchFailed, "reason", "not started")
	}
	return w.setFilesLocked(files)
}

// Stop stops the watcher and releases all resources. It is safe to call more than once.
func (w *Watcher) Stop() error {
	w.shutdown()

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debouncer != nil {
		w.debouncer.Stop()
	}
	if w.fsWatcher == nil {
		return nil
	}
	err := w.fsWatcher.Close()
	w.fsWatcher = nil
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	return nil
}

// Events returns an iterator of debounced change batches.
func (w *Watcher) Events() iter.Seq[[]ports.WatchEvent] {
	return func(yield func([]ports.WatchEvent) bool) {
		for {
			select {
			case batch := <-w.events:
				if !yield(batch) {
					return
				}
			case <-w.done:
				return
			}
		}
	}
}

// setFilesLocked must be called with mu held.
func (w *Watcher) setFilesLocked(files []string) error {
	nextFiles := make(map[string]struct{}, len(files))
	nextDirs := make(map[string]struct{})
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", f)
		}
		nextFiles[abs] = struct{}{}
		nextDirs[filepath.Dir(abs)] = struct{}{}
	}

	var added []string
	for dir := range nextDirs {
		if _, ok := w.dirs[dir]; ok {
			continue
		}
		if err := w.fsWatcher.Add(dir); err != nil {
			// Leave the watch list as it was before the call.
			for _, d := range added {
				_ = w.fsWatcher.Remove(d)
			}
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", dir)
		}
		added = append(added, dir)
	}
	for dir := range w.dirs {
		if _, ok := nextDirs[dir]; !ok {
			_ = w.fsWatcher.Remove(dir)
		}
	}

	w.files = nextFiles
	w.dirs = nextDirs
	return nil
}

func (w *Watcher) processEvents(ctx context.Context, fsw *fsnotify.Watcher) {
	defer w.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if watchEvent, ok := w.convertEvent(event); ok {
				w.debouncer.Add(watchEvent)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("file watcher error: %v", err))
		}
	}
}

// convertEvent maps an fsnotify event on a watched file to a ports.WatchEvent.
// Events on other files in the same directories are dropped.
func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	path := filepath.Clean(event.Name)

	w.mu.Lock()
	_, watched := w.files[path]
	w.mu.Unlock()
	if !watched {
		return ports.WatchEvent{}, false
	}

	switch {
	case event.Has(fsnotify.Write):
		return ports.WatchEvent{Path: path, Operation: ports.OpWrite}, true
	case event.Has(fsnotify.Create):
		return ports.WatchEvent{Path: path, Operation: ports.OpCreate}, true
	case event.Has(fsnotify.Remove):
		return ports.WatchEvent{Path: path, Operation: ports.OpRemove}, true
	case event.Has(fsnotify.Rename):
		return ports.WatchEvent{Path: path, Operation: ports.OpRename}, true
	default:
		return ports.WatchEvent{}, false
	}
}

func (w *Watcher) deliver(batch []ports.WatchEvent) {
	select {
	case w.events <- batch:
	case <-w.done:
	}
}

func (w *Watcher) shutdown() {
	w.stopOnce.Do(func() { close(w.done) })
}
