// Package watch re-runs a scan when files below the input directory change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-enry/go-enry/v2"
)

// Config controls which directories are watched.
type Config struct {
	Debounce      time.Duration
	IncludeHidden bool
	SkipVendored  bool
	// IgnorePaths are absolute paths whose events never trigger a run, such
	// as the cache file the scan itself writes.
	IgnorePaths []string
}

// ChangeFunc is called with the slash-separated paths, relative to the
// watched root, that changed during one debounce window.
type ChangeFunc func(ctx context.Context, changed []string) error

// Watcher batches file system events below a root directory.
type Watcher struct {
	fs     *fsnotify.Watcher
	root   string
	cfg    Config
	logger *slog.Logger
}

// New creates a Watcher for root and registers every eligible directory.
func New(root string, cfg Config, loggerHandler slog.Handler) (*Watcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving watch root '%s': %w", root, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	w := &Watcher{
		fs:     fsw,
		root:   absRoot,
		cfg:    cfg,
		logger: slog.New(loggerHandler).With(slog.String("component", "watcher")),
	}
	if err := w.addTree(absRoot); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Run delivers batched changes to onChange until ctx is done. An error from
// onChange is logged and watching continues.
func (w *Watcher) Run(ctx context.Context, onChange ChangeFunc) error {
	defer func() {
		if err := w.fs.Close(); err != nil {
			w.logger.Warn("Error closing file watcher", slog.String("error", err.Error()))
		}
	}()

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]struct{})
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	w.logger.Info("Watching for changes", slog.String("root", w.root), slog.Duration("debounce", w.cfg.Debounce))
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			rel, keep := w.handleEvent(event)
			if !keep {
				continue
			}
			pending[rel] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.cfg.Debounce)
			} else {
				timer.Reset(w.cfg.Debounce)
			}
			timerC = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error", slog.String("error", err.Error()))

		case <-timerC:
			timerC = nil
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			slices.Sort(changed)
			clear(pending)

			w.logger.Info("Change detected, re-scanning", slog.Int("paths", len(changed)))
			if err := onChange(ctx, changed); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				w.logger.Error("Re-scan failed", slog.String("error", err.Error()))
			}
		}
	}
}

// handleEvent returns the relative path of an event that should trigger a
// run. Newly created directories are registered on the way.
func (w *Watcher) handleEvent(event fsnotify.Event) (string, bool) {
	if event.Op == fsnotify.Chmod || slices.Contains(w.cfg.IgnorePaths, event.Name) {
		return "", false
	}
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil || rel == "." {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	info, statErr := os.Stat(event.Name)
	isDir := statErr == nil && info.IsDir()
	if w.skipPath(rel, isDir) {
		return "", false
	}

	if isDir && event.Op&fsnotify.Create != 0 {
		if err := w.addTree(event.Name); err != nil {
			w.logger.Warn("Failed to watch new directory", slog.String("path", rel), slog.String("error", err.Error()))
		}
	}
	w.logger.Debug("File event", slog.String("path", rel), slog.String("op", event.Op.String()))
	return rel, true
}

// skipPath applies the walker's hidden and vendored rules to every
// component of rel.
func (w *Watcher) skipPath(rel string, isDir bool) bool {
	parts := strings.Split(rel, "/")
	for i, part := range parts {
		if part == ".git" {
			return true
		}
		if !w.cfg.IncludeHidden && strings.HasPrefix(part, ".") {
			return true
		}
		if w.cfg.SkipVendored && (isDir || i < len(parts)-1) && enry.IsVendor(strings.Join(parts[:i+1], "/")+"/") {
			return true
		}
	}
	return false
}

// addTree registers dir and every eligible directory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root {
			rel, relErr := filepath.Rel(w.root, path)
			if relErr == nil && w.skipPath(filepath.ToSlash(rel), true) {
				return filepath.SkipDir
			}
		}
		if err := w.fs.Add(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			w.logger.Warn("Failed to watch directory", slog.String("path", path), slog.String("error", err.Error()))
		}
		return nil
	})
}
