package watcher

import (
	"maps"
	"slices"
)

// WatchedDirs returns the directories registered with fsnotify and the
// directories the watcher believes it has registered, both sorted.
func (w *Watcher) WatchedDirs() (registered, tracked []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher != nil {
		registered = w.fsWatcher.WatchList()
		slices.Sort(registered)
	}
	return registered, slices.Sorted(maps.Keys(w.dirs))
}
