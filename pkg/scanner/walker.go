package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-enry/go-enry/v2"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/stackvity/ftdetect/pkg/util"
)

const gitignoreFileName = ".gitignore"

// FileJob is a file selected by the Walker for processing.
type FileJob struct {
	AbsPath string
	RelPath string // slash-separated, relative to the input directory
}

// Walker traverses the input path, applies the skip rules and dispatches
// eligible files to the worker pool.
type Walker struct {
	opts                 *Options
	hooks                Hooks
	logger               *slog.Logger
	ignoreMatcher        *ignoreMatcher
	gitPatterns          []gitignore.Pattern
	gitDiffMap           map[string]struct{}
	onSkip               func(SkippedInfo)
	dispatchWarnDuration time.Duration
}

// NewWalker creates a Walker for opts.InputPath, which must be absolute.
// onSkip, when non-nil, receives every path the walker decides not to scan.
func NewWalker(opts *Options, onSkip func(SkippedInfo), loggerHandler slog.Handler) (*Walker, error) {
	logger := slog.New(loggerHandler).With(slog.String("component", "walker"))
	matcher, err := newIgnoreMatcher(opts.InputPath, opts.IgnorePatterns, logger)
	if err != nil {
		logger.Error("Failed to initialize ignore pattern matcher", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to initialize ignore patterns: %w", err)
	}
	logger.Debug("Ignore patterns loaded", slog.Int("count", matcher.patternCount()))

	var gitDiffMap map[string]struct{}
	if opts.GitDiffMode == GitDiffModeDiffOnly || opts.GitDiffMode == GitDiffModeSince {
		if opts.GitChangedFiles == nil {
			logger.Warn("Git diff mode active but no changed files were provided; every file will be excluded")
			gitDiffMap = map[string]struct{}{}
		} else {
			logger.Debug("Git diff mode active, using provided filter map",
				slog.String("mode", string(opts.GitDiffMode)),
				slog.Int("filesInDiff", len(opts.GitChangedFiles)))
			gitDiffMap = opts.GitChangedFiles
		}
	}
	hooks := opts.EventHooks
	if hooks == nil {
		hooks = &NoOpHooks{}
	}
	if onSkip == nil {
		onSkip = func(SkippedInfo) {}
	}
	return &Walker{
		opts:                 opts,
		hooks:                hooks,
		logger:               logger,
		ignoreMatcher:        matcher,
		gitDiffMap:           gitDiffMap,
		onSkip:               onSkip,
		dispatchWarnDuration: time.Second,
	}, nil
}

// StartWalk walks the input path, sending eligible files to jobs. jobs is
// closed when the walk ends, whatever the outcome.
func (w *Walker) StartWalk(ctx context.Context, jobs chan<- FileJob) error {
	defer close(jobs)
	w.logger.Info("Starting directory walk", slog.String("path", w.opts.InputPath))

	info, err := os.Stat(w.opts.InputPath)
	if err != nil {
		return fmt.Errorf("%w: cannot access input path '%s': %w", ErrStatFailed, w.opts.InputPath, err)
	}
	if !info.IsDir() {
		rel := filepath.Base(w.opts.InputPath)
		w.discovered(rel)
		return w.dispatch(ctx, jobs, FileJob{AbsPath: w.opts.InputPath, RelPath: rel})
	}

	walkErr := filepath.WalkDir(w.opts.InputPath, w.walkFunc(ctx, jobs))
	if walkErr != nil {
		if errors.Is(walkErr, context.Canceled) || errors.Is(walkErr, context.DeadlineExceeded) {
			w.logger.Info("Directory walk cancelled", slog.String("reason", walkErr.Error()))
			return walkErr
		}
		w.logger.Error("Directory walk encountered an error during traversal", slog.String("error", walkErr.Error()))
		return fmt.Errorf("directory walk failed: %w", walkErr)
	}
	w.logger.Info("Directory walk completed")
	return nil
}

func (w *Walker) walkFunc(ctx context.Context, jobs chan<- FileJob) fs.WalkDirFunc {
	return func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("Error accessing path during walk", slog.String("path", path), slog.String("error", err.Error()))
			if path == w.opts.InputPath {
				return fmt.Errorf("cannot read input directory %q: %w", path, err)
			}
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.Type()&fs.ModeSymlink != 0 {
			w.logger.Debug("Skipping symbolic link", slog.String("path", path))
			return nil
		}
		rel, err := filepath.Rel(w.opts.InputPath, path)
		if err != nil {
			w.logger.Warn("Could not calculate relative path", slog.String("path", path), slog.String("error", err.Error()))
			return nil
		}
		rel = filepath.ToSlash(rel)
		isDir := d.IsDir()
		if rel == "." {
			w.loadGitignore(path, rel)
			return nil
		}
		if isDir && d.Name() == ".git" {
			return filepath.SkipDir
		}

		w.discovered(rel)

		if reason, details := w.skipReason(rel, d.Name(), isDir); reason != "" {
			w.skip(rel, reason, details)
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}
		if isDir {
			w.loadGitignore(path, rel)
			return nil
		}

		if w.gitDiffMap != nil {
			if _, found := w.gitDiffMap[rel]; !found {
				w.skip(rel, SkipReasonGitExclude, fmt.Sprintf("Excluded by Git diff mode %s", w.opts.GitDiffMode))
				return nil
			}
		}
		return w.dispatch(ctx, jobs, FileJob{AbsPath: path, RelPath: rel})
	}
}

// skipReason applies the skip rules in order: hidden entries, ignore
// patterns, .gitignore, vendored paths.
func (w *Walker) skipReason(rel, name string, isDir bool) (string, string) {
	if !w.opts.IncludeHidden && strings.HasPrefix(name, ".") {
		return SkipReasonHidden, "Hidden path"
	}
	if w.ignoreMatcher.Match(rel, isDir) {
		return SkipReasonIgnored, fmt.Sprintf("Ignored by pattern: %s", w.ignoreMatcher.LastMatchPattern(rel, isDir))
	}
	if w.opts.RespectGitignore && len(w.gitPatterns) > 0 {
		if gitignore.NewMatcher(w.gitPatterns).Match(strings.Split(rel, "/"), isDir) {
			return SkipReasonGitignore, "Ignored by .gitignore"
		}
	}
	if w.opts.SkipVendored {
		vendorPath := rel
		if isDir {
			vendorPath += "/"
		}
		if enry.IsVendor(vendorPath) {
			return SkipReasonVendored, "Vendored path"
		}
	}
	return "", ""
}

func (w *Walker) discovered(rel string) {
	if hookErr := w.hooks.OnFileDiscovered(rel); hookErr != nil {
		w.logger.Warn("Event hook OnFileDiscovered failed", slog.String("path", rel), slog.String("error", hookErr.Error()))
	}
}

func (w *Walker) skip(rel, reason, details string) {
	w.logger.Debug("Path skipped", slog.String("path", rel), slog.String("reason", reason), slog.String("details", details))
	if hookErr := w.hooks.OnFileStatusUpdate(rel, StatusSkipped, details, 0); hookErr != nil {
		w.logger.Warn("Event hook OnFileStatusUpdate (skipped) failed", slog.String("path", rel), slog.String("error", hookErr.Error()))
	}
	w.onSkip(SkippedInfo{Path: rel, Reason: reason, Details: details})
}

func (w *Walker) dispatch(ctx context.Context, jobs chan<- FileJob, job FileJob) error {
	w.logger.Debug("Dispatching file to workers", slog.String("path", job.RelPath))
	timer := time.NewTimer(w.dispatchWarnDuration)
	defer timer.Stop()
	select {
	case jobs <- job:
		return nil
	case <-timer.C:
		w.logger.Warn("Worker dispatch blocked, workers might be busy or pool too small",
			slog.String("path", job.RelPath), slog.Duration("threshold", w.dispatchWarnDuration))
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// loadGitignore adds the patterns of dir's .gitignore, scoped to dir.
func (w *Walker) loadGitignore(dir, rel string) {
	if !w.opts.RespectGitignore {
		return
	}
	lines, err := loadPatternsFromFile(filepath.Join(dir, gitignoreFileName))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			w.logger.Warn("Failed to read .gitignore", slog.String("dir", rel), slog.String("error", err.Error()))
		}
		return
	}
	var domain []string
	if rel != "." {
		domain = strings.Split(rel, "/")
	}
	for _, line := range lines {
		w.gitPatterns = append(w.gitPatterns, gitignore.ParsePattern(line, domain))
	}
	w.logger.Debug("Loaded .gitignore", slog.String("dir", rel), slog.Int("patterns", len(lines)))
}

// --- ignoreMatcher ---

type ignoreMatcher struct {
	patterns []ignorePattern
	basePath string
	logger   *slog.Logger
}

type ignorePattern struct {
	pattern     string // cleaned pattern using '/' separators
	origPattern string // original pattern for reporting
	negated     bool
	isDirOnly   bool
	isRooted    bool
	baseAbsPath string // directory the pattern is relative to
}

func newIgnoreMatcher(absInputPath string, configPatterns []string, logger *slog.Logger) (*ignoreMatcher, error) {
	matcher := &ignoreMatcher{
		basePath: absInputPath,
		logger:   logger.With(slog.String("component", "ignoreMatcher")),
	}
	ignoreFilePath, err := findIgnoreFile(absInputPath)
	if err != nil {
		matcher.logger.Warn("Error searching for "+IgnoreFileName, slog.String("error", err.Error()))
	}
	if ignoreFilePath != "" {
		filePatterns, err := loadPatternsFromFile(ignoreFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load ignore file %s: %w", ignoreFilePath, err)
		}
		matcher.addPatterns(filePatterns, filepath.Dir(ignoreFilePath))
		matcher.logger.Debug("Loaded patterns from ignore file", slog.String("path", ignoreFilePath), slog.Int("count", len(filePatterns)))
	}
	matcher.addPatterns(configPatterns, absInputPath)
	return matcher, nil
}

// findIgnoreFile walks up from absStartPath looking for IgnoreFileName.
func findIgnoreFile(absStartPath string) (string, error) {
	current := absStartPath
	if info, err := os.Stat(current); err == nil && !info.IsDir() {
		current = filepath.Dir(current)
	}
	for {
		candidate := filepath.Join(current, IgnoreFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("error checking for ignore file at %s: %w", candidate, err)
		}
		parent := filepath.Dir(current)
		if parent == current || parent == "" {
			return "", nil
		}
		current = parent
	}
}

// loadPatternsFromFile returns the non-blank, non-comment lines of an ignore file.
func loadPatternsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var patterns []string
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			patterns = append(patterns, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read ignore file %s: %w", filePath, err)
	}
	return patterns, nil
}

func (m *ignoreMatcher) addPatterns(rawPatterns []string, baseAbsPath string) {
	for _, raw := range rawPatterns {
		p := ignorePattern{origPattern: raw, baseAbsPath: baseAbsPath}
		trimmed := strings.TrimSpace(raw)
		if strings.HasPrefix(trimmed, "!") {
			p.negated = true
			trimmed = trimmed[1:]
		}
		if strings.HasPrefix(trimmed, "/") {
			p.isRooted = true
			trimmed = strings.TrimPrefix(trimmed, "/")
		}
		if strings.HasSuffix(trimmed, "/") {
			p.isDirOnly = true
			trimmed = strings.TrimSuffix(trimmed, "/")
		}
		p.pattern = filepath.ToSlash(trimmed)
		if p.pattern == "" {
			continue
		}
		m.patterns = append(m.patterns, p)
	}
}

// Match reports whether relativePath is ignored. The last matching pattern
// wins, so a negated pattern re-includes earlier matches.
func (m *ignoreMatcher) Match(relativePath string, isDir bool) bool {
	matched, _ := m.evaluate(relativePath, isDir)
	return matched
}

// LastMatchPattern returns the original pattern that ignored relativePath,
// or "" when it is not ignored.
func (m *ignoreMatcher) LastMatchPattern(relativePath string, isDir bool) string {
	matched, pattern := m.evaluate(relativePath, isDir)
	if !matched {
		return ""
	}
	return pattern
}

func (m *ignoreMatcher) evaluate(relativePath string, isDir bool) (bool, string) {
	matched := false
	last := ""
	for _, p := range m.patterns {
		if p.isDirOnly && !isDir {
			continue
		}
		if util.MatchesGitignore(p.pattern, p.baseAbsPath, m.basePath, relativePath, p.isRooted) {
			matched = !p.negated
			last = p.origPattern
		}
	}
	return matched, last
}

func (m *ignoreMatcher) patternCount() int {
	return len(m.patterns)
}
