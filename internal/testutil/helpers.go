package testutil

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stackvity/ftdetect/pkg/scanner"
)

// CreateDummyFile creates a file with the given content, creating parent
// directories as needed.
func CreateDummyFile(t *testing.T, path string, content string) {
	t.Helper()
	fullPath := filepath.Clean(path)
	dir := filepath.Dir(fullPath)
	require.NoError(t, os.MkdirAll(dir, 0o755), "Failed to create directory %s for dummy file", dir)
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644), "Failed to write dummy file %s", fullPath)
}

// CreateDummyDir ensures a directory exists at the given path, creating parents if needed.
func CreateDummyDir(t *testing.T, path string) {
	t.Helper()
	fullPath := filepath.Clean(path)
	require.NoError(t, os.MkdirAll(fullPath, 0o755), "Failed to create dummy directory %s", fullPath)
}

// CreateTree writes files, keyed by slash-separated path relative to root.
func CreateTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		CreateDummyFile(t, filepath.Join(root, filepath.FromSlash(rel)), content)
	}
}

// DiscardHandler returns a slog.Handler that drops every record.
func DiscardHandler() slog.Handler {
	return slog.NewTextHandler(io.Discard, nil)
}

// LogBuffer is a goroutine-safe buffer for capturing log output.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implements io.Writer.
func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything written so far.
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// BufferHandler returns a debug-level text handler writing into a LogBuffer.
// The captured logs are printed if the test fails.
func BufferHandler(t *testing.T) (slog.Handler, *LogBuffer) {
	t.Helper()
	buf := &LogBuffer{}
	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("--- Logs ---\n%s--- End Logs ---", buf.String())
		}
	})
	return slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}), buf
}

// RecordingHooks is a scanner.Hooks implementation that records every call.
// It is safe for concurrent use.
type RecordingHooks struct {
	mu         sync.Mutex
	Discovered []string
	Statuses   map[string][]scanner.Status
	Reports    []scanner.Report
}

// OnFileDiscovered implements scanner.Hooks.
func (h *RecordingHooks) OnFileDiscovered(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Discovered = append(h.Discovered, path)
	return nil
}

// OnFileStatusUpdate implements scanner.Hooks.
func (h *RecordingHooks) OnFileStatusUpdate(path string, status scanner.Status, _ string, _ time.Duration) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.Statuses == nil {
		h.Statuses = make(map[string][]scanner.Status)
	}
	h.Statuses[path] = append(h.Statuses[path], status)
	return nil
}

// OnRunComplete implements scanner.Hooks.
func (h *RecordingHooks) OnRunComplete(report scanner.Report) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Reports = append(h.Reports, report)
	return nil
}

// LastStatus returns the last status recorded for path.
func (h *RecordingHooks) LastStatus(path string) (scanner.Status, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	list := h.Statuses[path]
	if len(list) == 0 {
		return "", false
	}
	return list[len(list)-1], true
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(DiscardHandler())
}
