package cache_test

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/ftdetect/pkg/scanner/cache"
)

func setupCacheTest(t *testing.T, format, version string) (cache.Manager, string, *bytes.Buffer) {
	t.Helper()
	logBuf := &bytes.Buffer{}
	handler := slog.NewTextHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})
	mgr := cache.NewFileManager(handler, version, format)
	require.NotNil(t, mgr)
	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("--- Cache Manager Logs ---\n%s--- End Logs ---", logBuf.String())
		}
	})
	return mgr, filepath.Join(t.TempDir(), cache.FileName), logBuf
}

func sampleEntry(modTime time.Time) cache.Entry {
	return cache.Entry{
		ModTime:     modTime,
		ContentHash: cache.HashContent([]byte("fn main() {}")),
		ConfigHash:  "cfg1",
		Language:    "rust",
		Confidence:  0.9,
	}
}

func TestHashContent(t *testing.T) {
	a := cache.HashContent([]byte("hello"))
	assert.Equal(t, a, cache.HashContent([]byte("hello")))
	assert.NotEqual(t, a, cache.HashContent([]byte("hello!")))
	assert.NotEmpty(t, cache.HashContent(nil))
}

func TestFileManagerRoundTrip(t *testing.T) {
	for _, format := range []string{cache.FormatGob, cache.FormatJSON} {
		t.Run(format, func(t *testing.T) {
			mgr, path, _ := setupCacheTest(t, format, "v1.0.0")
			modTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
			entry := sampleEntry(modTime)

			require.NoError(t, mgr.Load(path))
			require.NoError(t, mgr.Update("src/main.rs", entry))
			require.NoError(t, mgr.Persist(path))
			_, err := os.Stat(path)
			require.NoError(t, err)

			reloaded := cache.NewFileManager(nil, "v1.0.0", format)
			require.NoError(t, reloaded.Load(path))
			got, hit := reloaded.Check("src/main.rs", modTime, entry.ContentHash, "cfg1")
			require.True(t, hit)
			assert.Equal(t, "rust", got.Language)
			assert.InDelta(t, 0.9, got.Confidence, 1e-9)
			assert.Equal(t, "v1.0.0", got.ToolVersion)
		})
	}
}

func TestFileManagerCheckMisses(t *testing.T) {
	mgr, path, logBuf := setupCacheTest(t, "", "v1.0.0")
	require.NoError(t, mgr.Load(path))
	modTime := time.Now().Truncate(time.Second)
	entry := sampleEntry(modTime)
	require.NoError(t, mgr.Update("a.rs", entry))

	testCases := []struct {
		name        string
		path        string
		modTime     time.Time
		contentHash string
		configHash  string
		logFragment string
	}{
		{"unknown path", "b.rs", modTime, entry.ContentHash, "cfg1", "entry not found"},
		{"mod time", "a.rs", modTime.Add(time.Second), entry.ContentHash, "cfg1", "modTime"},
		{"content", "a.rs", modTime, "other", "cfg1", "contentHash"},
		{"config", "a.rs", modTime, entry.ContentHash, "cfg2", "configHash"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, hit := mgr.Check(tc.path, tc.modTime, tc.contentHash, tc.configHash)
			assert.False(t, hit)
			assert.Contains(t, logBuf.String(), tc.logFragment)
		})
	}

	_, hit := mgr.Check("a.rs", modTime, entry.ContentHash, "cfg1")
	assert.True(t, hit)
}

func TestFileManagerVersionMismatch(t *testing.T) {
	mgr, path, _ := setupCacheTest(t, cache.FormatJSON, "v1.0.0")
	modTime := time.Now().Truncate(time.Second)
	entry := sampleEntry(modTime)
	require.NoError(t, mgr.Update("a.rs", entry))
	require.NoError(t, mgr.Persist(path))

	other := cache.NewFileManager(nil, "v2.0.0", cache.FormatJSON)
	require.NoError(t, other.Load(path))
	_, hit := other.Check("a.rs", modTime, entry.ContentHash, "cfg1")
	assert.False(t, hit, "cache written by another release is discarded")

	dev := cache.NewFileManager(nil, "dev", cache.FormatJSON)
	require.NoError(t, dev.Load(path))
	_, hit = dev.Check("a.rs", modTime, entry.ContentHash, "cfg1")
	assert.True(t, hit, "dev builds accept any cache")
}

func TestFileManagerCorruptFiles(t *testing.T) {
	testCases := []struct {
		name    string
		format  string
		content []byte
	}{
		{"garbage gob", cache.FormatGob, []byte("not a gob stream")},
		{"garbage json", cache.FormatJSON, []byte("{not json")},
		{"empty file", cache.FormatGob, nil},
		{"wrong schema", cache.FormatJSON, []byte(`{"header":{"schemaVersion":"0.1","toolVersion":"dev"},"index":{"a":{}}}`)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mgr, path, _ := setupCacheTest(t, tc.format, "dev")
			require.NoError(t, os.WriteFile(path, tc.content, 0o644))
			require.NoError(t, mgr.Load(path))
			_, hit := mgr.Check("a", time.Time{}, "", "")
			assert.False(t, hit)
		})
	}
}

func TestFileManagerGobHeaderOnly(t *testing.T) {
	mgr, path, _ := setupCacheTest(t, cache.FormatGob, "dev")
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(cache.Header{SchemaVersion: cache.SchemaVersion, ToolVersion: "dev"}))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	assert.NoError(t, mgr.Load(path))
}

func TestFileManagerLoadPermissionError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	mgr, path, _ := setupCacheTest(t, "", "dev")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o000))
	err := mgr.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, cache.ErrCacheLoad)
}

func TestFileManagerPersistEmptyRemovesFile(t *testing.T) {
	mgr, path, _ := setupCacheTest(t, "", "dev")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))
	require.NoError(t, mgr.Persist(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileManagerPersistFailure(t *testing.T) {
	mgr, _, _ := setupCacheTest(t, "", "dev")
	require.NoError(t, mgr.Update("a", sampleEntry(time.Now())))

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	err := mgr.Persist(filepath.Join(blocker, "sub", cache.FileName))
	require.Error(t, err)
	assert.ErrorIs(t, err, cache.ErrCachePersist)
}

func TestFileManagerConcurrentUpdates(t *testing.T) {
	mgr, path, _ := setupCacheTest(t, "", "dev")
	require.NoError(t, mgr.Load(path))
	modTime := time.Now().Truncate(time.Second)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("file%d.go", i)
			e := sampleEntry(modTime)
			assert.NoError(t, mgr.Update(key, e))
			_, hit := mgr.Check(key, modTime, e.ContentHash, e.ConfigHash)
			assert.True(t, hit)
		}()
	}
	wg.Wait()
	require.NoError(t, mgr.Persist(path))
}

func TestNoOp(t *testing.T) {
	var mgr cache.Manager = cache.NoOp{}
	assert.NoError(t, mgr.Load("x"))
	assert.NoError(t, mgr.Update("a", cache.Entry{}))
	_, hit := mgr.Check("a", time.Time{}, "", "")
	assert.False(t, hit)
	assert.NoError(t, mgr.Persist("x"))
}
