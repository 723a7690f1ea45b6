package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curveforge/meshsync/internal/adapters/watcher"
	"github.com/curveforge/meshsync/internal/core/ports"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []ports.WatchEvent
}

func (r *eventRecorder) record(w ports.Watcher) {
	for event := range w.Events() {
		r.mu.Lock()
		r.events = append(r.events, event)
		r.mu.Unlock()
	}
}

func (r *eventRecorder) operations() []ports.WatchOp {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := make([]ports.WatchOp, 0, len(r.events))
	for _, e := range r.events {
		ops = append(ops, e.Operation)
	}
	return ops
}

func (r *eventRecorder) sawOp(op ports.WatchOp) bool {
	for _, o := range r.operations() {
		if o == op {
			return true
		}
	}
	return false
}

func startWatcher(t *testing.T, path string) (*eventRecorder, context.CancelFunc) {
	t.Helper()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx, path))
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})

	rec := &eventRecorder{}
	go rec.record(w)
	return rec, cancel
}

func TestWatcherObservesDocumentWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rig.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\n"), 0o600))

	rec, _ := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("version: \"2\"\n"), 0o600))
	assert.Eventually(t, func() bool {
		return rec.sawOp(ports.OpWrite)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherObservesCreateAndRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rig.yaml")

	rec, _ := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\n"), 0o600))
	assert.Eventually(t, func() bool {
		return rec.sawOp(ports.OpCreate) || rec.sawOp(ports.OpWrite)
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Remove(path))
	assert.Eventually(t, func() bool {
		return rec.sawOp(ports.OpRemove)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rig.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	rec, _ := startWatcher(t, path)

	sibling := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(sibling, []byte("noise\n"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\n"), 0o600))

	require.Eventually(t, func() bool {
		return rec.sawOp(ports.OpWrite)
	}, 2*time.Second, 10*time.Millisecond)

	// Only the watched document's path ever surfaces.
	rec.mu.Lock()
	defer rec.mu.Unlock()
	for _, e := range rec.events {
		abs, err := filepath.Abs(path)
		require.NoError(t, err)
		assert.Equal(t, abs, e.Path)
	}
}

func TestWatcherStopClosesEventStream(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rig.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background(), path))

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	require.NoError(t, w.Stop())
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("event stream did not close after Stop")
	}
}
