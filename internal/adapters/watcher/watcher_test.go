package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Guardsquare/proguard-sub005/internal/adapters/watcher"
	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
	"github.com/Guardsquare/proguard-sub005/internal/core/ports"
	"github.com/Guardsquare/proguard-sub005/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testWindow = 20 * time.Millisecond

func newWatcher(t *testing.T) *watcher.Watcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w := watcher.NewWatcher(log, testWindow)
	t.Cleanup(func() { _ = w.Stop() })
	return w
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func nextBatch(t *testing.T, w *watcher.Watcher) []ports.WatchEvent {
	t.Helper()
	batches := make(chan []ports.WatchEvent, 1)
	go func() {
		for batch := range w.Events() {
			batches <- batch
			return
		}
	}()

	select {
	case batch := <-batches:
		return batch
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch events")
		return nil
	}
}

func TestWatcher_ReportsWatchedFilesOnly(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "proguard.yaml")
	other := filepath.Join(dir, "notes.txt")
	writeFile(t, doc, "injars: in.jar\n")

	w := newWatcher(t)
	require.NoError(t, w.Start(t.Context(), []string{doc}))

	writeFile(t, other, "ignored")
	writeFile(t, doc, "injars: app.jar\n")

	batch := nextBatch(t, w)
	require.NotEmpty(t, batch)
	for _, event := range batch {
		assert.Equal(t, doc, event.Path)
	}
}

func TestWatcher_SetFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "shared")
	require.NoError(t, os.Mkdir(sub, domain.DirPerm))
	doc := filepath.Join(dir, "proguard.yaml")
	common := filepath.Join(sub, "common.yaml")
	writeFile(t, doc, "injars: in.jar\n")
	writeFile(t, common, "libraryjars: rt.jar\n")

	w := newWatcher(t)
	require.NoError(t, w.Start(t.Context(), []string{doc}))
	require.NoError(t, w.SetFiles([]string{doc, common}))

	writeFile(t, common, "libraryjars: android.jar\n")

	batch := nextBatch(t, w)
	require.NotEmpty(t, batch)
	assert.Equal(t, common, batch[0].Path)
}

func TestWatcher_Stop_EndsEvents(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "proguard.yaml")
	writeFile(t, doc, "")

	w := newWatcher(t)
	require.NoError(t, w.Start(t.Context(), []string{doc}))

	ended := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(ended)
	}()

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	select {
	case <-ended:
	case <-time.After(5 * time.Second):
		t.Fatal("events iterator did not end after Stop")
	}
}

func TestWatcher_ContextCancelEndsEvents(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "proguard.yaml")
	writeFile(t, doc, "")

	ctx, cancel := context.WithCancel(t.Context())
	w := newWatcher(t)
	require.NoError(t, w.Start(ctx, []string{doc}))
	cancel()

	ended := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(ended)
	}()

	select {
	case <-ended:
	case <-time.After(5 * time.Second):
		t.Fatal("events iterator did not end after cancel")
	}
}

func TestWatcher_Errors(t *testing.T) {
	t.Run("set files before start", func(t *testing.T) {
		w := newWatcher(t)
		err := w.SetFiles([]string{"/work/proguard.yaml"})
		require.ErrorContains(t, err, domain.ErrWatchFailed.Error())
	})

	t.Run("start twice", func(t *testing.T) {
		dir := t.TempDir()
		w := newWatcher(t)
		files := []string{filepath.Join(dir, "proguard.yaml")}
		require.NoError(t, w.Start(t.Context(), files))
		err := w.Start(t.Context(), files)
		require.ErrorContains(t, err, domain.ErrWatchFailed.Error())
	})

	t.Run("start after stop", func(t *testing.T) {
		w := newWatcher(t)
		require.NoError(t, w.Stop())
		err := w.Start(t.Context(), []string{filepath.Join(t.TempDir(), "proguard.yaml")})
		require.ErrorContains(t, err, domain.ErrWatchFailed.Error())
	})

	t.Run("missing directory", func(t *testing.T) {
		w := newWatcher(t)
		err := w.Start(t.Context(), []string{filepath.Join(t.TempDir(), "missing", "proguard.yaml")})
		require.ErrorContains(t, err, domain.ErrWatchFailed.Error())
	})

	t.Run("failed set files keeps previous directories", func(t *testing.T) {
		first, second := t.TempDir(), t.TempDir()
		w := newWatcher(t)
		require.NoError(t, w.Start(t.Context(), []string{filepath.Join(first, "proguard.yaml")}))

		err := w.SetFiles([]string{
			filepath.Join(first, "proguard.yaml"),
			filepath.Join(second, "proguard.yaml"),
			filepath.Join(second, "missing", "proguard.yaml"),
		})
		require.ErrorContains(t, err, domain.ErrWatchFailed.Error())

		registered, tracked := w.WatchedDirs()
		assert.Equal(t, []string{first}, registered)
		assert.Equal(t, []string{first}, tracked)
	})
}
