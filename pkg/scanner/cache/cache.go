// Package cache persists detection results between scans so unchanged files
// are not read and classified again.
package cache

import (
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// FileName is the standard name for a cache index file stored next to the scanned tree.
const FileName = ".ftdetect.cache"

// SchemaVersion is the current version of the cache file structure.
// Increment this if Entry or the serialization format changes incompatibly.
const SchemaVersion = "1.0"

const (
	// FormatGob is the compact default serialization format.
	FormatGob = "gob"
	// FormatJSON is a human-readable serialization format.
	FormatJSON = "json"
	// DefaultFormat is used when no or an unknown format is configured.
	DefaultFormat = FormatGob
)

// ErrCacheLoad indicates a critical error while opening the cache index file.
// Corrupt or mismatched cache files are not errors; they are treated as a miss.
var ErrCacheLoad = errors.New("failed to load cache index")

// ErrCachePersist indicates an error while writing the cache index file.
// The scan result is still valid when this is returned.
var ErrCachePersist = errors.New("failed to persist cache index")

// Entry is the stored detection result for one file.
type Entry struct {
	ModTime     time.Time `json:"modTime"`
	ContentHash string    `json:"contentHash"`
	ConfigHash  string    `json:"configHash"`
	Language    string    `json:"language"`
	Confidence  float64   `json:"confidence"`
	ToolVersion string    `json:"toolVersion"`
}

// Header contains metadata about the cache file itself.
type Header struct {
	SchemaVersion string `json:"schemaVersion"`
	ToolVersion   string `json:"toolVersion"`
}

type jsonFile struct {
	Header Header           `json:"header"`
	Index  map[string]Entry `json:"index"`
}

// Manager loads, checks, updates and persists cached detection results.
//
// Check must be safe for concurrent readers after Load returns, and Update
// must be safe for concurrent callers: scanner workers call both.
type Manager interface {
	// Load reads the index at path. A missing, corrupt or version-mismatched
	// file leaves an empty index and returns nil; only I/O failures such as
	// permission errors are returned, wrapping ErrCacheLoad.
	Load(path string) error

	// Check returns the stored entry for relPath if its modification time,
	// content hash and config hash all match.
	Check(relPath string, modTime time.Time, contentHash, configHash string) (Entry, bool)

	// Update stores the entry for relPath in memory.
	Update(relPath string, entry Entry) error

	// Persist atomically writes the in-memory index to path.
	Persist(path string) error
}

// HashContent returns the hex xxhash64 digest used as Entry.ContentHash.
func HashContent(content []byte) string {
	return strconv.FormatUint(xxhash.Sum64(content), 16)
}

// NoOp is a Manager that never hits and never writes.
type NoOp struct{}

// Load implements Manager.
func (NoOp) Load(string) error { return nil }

// Check implements Manager and always reports a miss.
func (NoOp) Check(string, time.Time, string, string) (Entry, bool) { return Entry{}, false }

// Update implements Manager.
func (NoOp) Update(string, Entry) error { return nil }

// Persist implements Manager.
func (NoOp) Persist(string) error { return nil }

// fileManager implements Manager with an in-memory map persisted to a single file.
type fileManager struct {
	mu          sync.RWMutex
	index       map[string]Entry
	logger      *slog.Logger
	toolVersion string
	format      string
}

// NewFileManager creates a file-backed cache manager. toolVersion is stored in
// the header and entries; a cache written by a different non-"dev" version is discarded.
func NewFileManager(loggerHandler slog.Handler, toolVersion, format string) Manager {
	if loggerHandler == nil {
		loggerHandler = slog.NewTextHandler(io.Discard, nil)
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format != FormatJSON && format != FormatGob {
		format = DefaultFormat
	}
	if toolVersion == "" {
		toolVersion = "dev"
	}
	logger := slog.New(loggerHandler).With(
		slog.String("component", "cacheManager"),
		slog.String("format", format),
	)
	return &fileManager{
		index:       make(map[string]Entry),
		logger:      logger,
		toolVersion: toolVersion,
		format:      format,
	}
}

func (c *fileManager) compatible(version string) bool {
	return c.toolVersion == "dev" || version == "dev" || version == c.toolVersion
}

// Load implements Manager.
func (c *fileManager) Load(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = make(map[string]Entry)

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.logger.Debug("Cache file not found, starting with an empty index", slog.String("path", path))
			return nil
		}
		c.logger.Error("Critical cache load error", slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("%w: failed to open cache file '%s': %w", ErrCacheLoad, path, err)
	}
	defer file.Close()

	var header Header
	var index map[string]Entry
	var decodeErr error
	if c.format == FormatJSON {
		var data jsonFile
		if decodeErr = json.NewDecoder(file).Decode(&data); decodeErr == nil {
			header, index = data.Header, data.Index
		}
	} else {
		dec := gob.NewDecoder(file)
		if decodeErr = dec.Decode(&header); decodeErr == nil {
			decodeErr = dec.Decode(&index)
		}
	}
	if decodeErr != nil {
		c.logger.Warn("Failed to decode cache file, treating as miss",
			slog.String("path", path), slog.String("error", decodeErr.Error()))
		return nil
	}
	if header.SchemaVersion != SchemaVersion {
		c.logger.Warn("Cache file schema version mismatch, invalidating cache",
			slog.String("path", path), slog.String("fileSchema", header.SchemaVersion), slog.String("expectedSchema", SchemaVersion))
		return nil
	}
	if !c.compatible(header.ToolVersion) {
		c.logger.Warn("Cache file tool version mismatch, invalidating cache",
			slog.String("path", path), slog.String("fileVersion", header.ToolVersion), slog.String("expectedVersion", c.toolVersion))
		return nil
	}
	if index != nil {
		c.index = index
	}
	c.logger.Debug("Cache loaded", slog.String("path", path), slog.Int("entries", len(c.index)))
	return nil
}

// Check implements Manager.
func (c *fileManager) Check(relPath string, modTime time.Time, contentHash, configHash string) (Entry, bool) {
	c.mu.RLock()
	entry, found := c.index[relPath]
	c.mu.RUnlock()

	logArgs := []any{slog.String("path", relPath)}
	switch {
	case !found:
		c.logger.Debug("Cache check: miss (entry not found)", logArgs...)
	case !c.compatible(entry.ToolVersion):
		c.logger.Debug("Cache check: miss (tool version)", logArgs...)
	case !entry.ModTime.Equal(modTime):
		c.logger.Debug("Cache check: miss (modTime)", logArgs...)
	case entry.ContentHash != contentHash:
		c.logger.Debug("Cache check: miss (contentHash)", logArgs...)
	case entry.ConfigHash != configHash:
		c.logger.Debug("Cache check: miss (configHash)", logArgs...)
	default:
		c.logger.Debug("Cache check: hit", append(logArgs, slog.String("language", entry.Language))...)
		return entry, true
	}
	return Entry{}, false
}

// Update implements Manager.
func (c *fileManager) Update(relPath string, entry Entry) error {
	if entry.ToolVersion == "" {
		entry.ToolVersion = c.toolVersion
	}
	c.mu.Lock()
	c.index[relPath] = entry
	c.mu.Unlock()
	return nil
}

// Persist implements Manager.
func (c *fileManager) Persist(path string) error {
	c.mu.RLock()
	index := maps.Clone(c.index)
	c.mu.RUnlock()

	if len(index) == 0 {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			c.logger.Warn("Failed to remove empty cache file", slog.String("path", path), slog.String("error", err.Error()))
		}
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to ensure cache directory exists '%s': %w", ErrCachePersist, dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temporary cache file in '%s': %w", ErrCachePersist, dir, err)
	}
	tmpPath := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	header := Header{SchemaVersion: SchemaVersion, ToolVersion: c.toolVersion}
	if c.format == FormatJSON {
		enc := json.NewEncoder(tmp)
		enc.SetIndent("", "  ")
		err = enc.Encode(jsonFile{Header: header, Index: index})
	} else {
		enc := gob.NewEncoder(tmp)
		if err = enc.Encode(header); err == nil {
			err = enc.Encode(index)
		}
	}
	if err != nil {
		return fmt.Errorf("%w: failed to encode cache (%s): %w", ErrCachePersist, c.format, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to close temporary cache file '%s': %w", ErrCachePersist, tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: failed to rename '%s' to '%s': %w", ErrCachePersist, tmpPath, path, err)
	}
	renamed = true

	c.logger.Debug("Cache persisted", slog.String("path", path), slog.Int("entries", len(index)))
	return nil
}
