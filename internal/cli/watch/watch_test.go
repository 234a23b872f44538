package watch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/stackvity/ftdetect/internal/cli/watch"
	"github.com/stackvity/ftdetect/internal/testutil"
)

const waitTimeout = 5 * time.Second

// startWatcher runs a watcher on root and returns the channel of batches and
// a stop function that waits for Run to return.
func startWatcher(t *testing.T, root string, cfg watch.Config, onChangeErr error) (<-chan []string, func()) {
	t.Helper()
	w, err := watch.New(root, cfg, testutil.DiscardHandler())
	require.NoError(t, err)

	batches := make(chan []string, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, changed []string) error {
			batches <- changed
			return onChangeErr
		})
	}()
	return batches, func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(waitTimeout):
			t.Fatal("watcher did not stop")
		}
	}
}

// waitFor reads batches until one contains path.
func waitFor(t *testing.T, batches <-chan []string, path string) []string {
	t.Helper()
	deadline := time.After(waitTimeout)
	for {
		select {
		case batch := <-batches:
			if slices.Contains(batch, path) {
				return batch
			}
		case <-deadline:
			t.Fatalf("no change batch containing %q", path)
			return nil
		}
	}
}

func TestWatcher_BatchesChanges(t *testing.T) {
	defer goleak.VerifyNone(t)
	root := t.TempDir()
	testutil.CreateDummyFile(t, filepath.Join(root, "existing.go"), "package main\n")

	batches, stop := startWatcher(t, root, watch.Config{Debounce: 300 * time.Millisecond}, nil)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "existing.go"), []byte("package main\n\nfunc main() {}\n"), 0o644))

	batch := waitFor(t, batches, "a.txt")
	if !slices.Contains(batch, "existing.go") {
		waitFor(t, batches, "existing.go")
	}
}

func TestWatcher_NewDirectoriesAreWatched(t *testing.T) {
	defer goleak.VerifyNone(t)
	root := t.TempDir()

	batches, stop := startWatcher(t, root, watch.Config{Debounce: 50 * time.Millisecond}, nil)
	defer stop()

	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	waitFor(t, batches, "sub")

	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "x.py"), []byte("print(1)\n"), 0o644))
	waitFor(t, batches, "sub/x.py")
}

func TestWatcher_SkipsIgnoredPaths(t *testing.T) {
	defer goleak.VerifyNone(t)
	root := t.TempDir()
	testutil.CreateDummyDir(t, filepath.Join(root, ".git"))
	testutil.CreateDummyDir(t, filepath.Join(root, "node_modules", "dep"))
	cacheFile := filepath.Join(root, "scan.cache")

	cfg := watch.Config{Debounce: 50 * time.Millisecond, SkipVendored: true, IgnorePaths: []string{cacheFile}}
	batches, stop := startWatcher(t, root, cfg, errors.New("scan failed"))
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "HEAD"), []byte("ref"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules", "dep", "index.js"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(cacheFile, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "marker.txt"), []byte("x"), 0o644))

	batch := waitFor(t, batches, "marker.txt")
	assert.Equal(t, []string{"marker.txt"}, batch)

	// A failing callback does not stop the watcher.
	require.NoError(t, os.WriteFile(filepath.Join(root, "second.txt"), []byte("x"), 0o644))
	waitFor(t, batches, "second.txt")
}

func TestNew_MissingRoot(t *testing.T) {
	defer goleak.VerifyNone(t)
	_, err := watch.New(filepath.Join(t.TempDir(), "missing"), watch.Config{Debounce: time.Millisecond}, testutil.DiscardHandler())
	assert.Error(t, err)
}
