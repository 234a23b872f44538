// Package scanner walks a directory tree, determines the file type of every
// eligible file and aggregates the results into a per-type breakdown.
//
// Scan is the entry point. It resolves the injected dependencies in Options
// (language detector, encoding handler, cache manager, Git changed-file set),
// then runs an Engine: a walker goroutine applying the skip rules, a bounded
// worker pool reading at most MaxContentBytes of each file, and a single
// aggregator building the Report.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/stackvity/ftdetect/pkg/detect"
	"github.com/stackvity/ftdetect/pkg/detect/heuristics"
	"github.com/stackvity/ftdetect/pkg/filetype"
	"github.com/stackvity/ftdetect/pkg/scanner/cache"
	"github.com/stackvity/ftdetect/pkg/scanner/encoding"
	"github.com/stackvity/ftdetect/pkg/scanner/language"
)

// Scan classifies every eligible file below opts.InputPath.
//
// Configuration problems are returned before any file is read and wrap
// ErrConfigValidation, ErrRulesetLoad or git.ErrGitOperation. Once the run
// starts the Report is always returned, together with a non-nil error when
// the run was cancelled or stopped early.
func Scan(ctx context.Context, opts Options) (Report, error) {
	if opts.Logger == nil {
		return Report{}, fmt.Errorf("%w: Logger implementation cannot be nil", ErrConfigValidation)
	}
	logger := slog.New(opts.Logger)

	if err := prepareOptions(&opts, logger); err != nil {
		logger.Error("Scan configuration rejected", slog.String("error", err.Error()))
		return Report{}, err
	}

	engine, err := NewEngine(opts)
	if err != nil {
		return Report{}, err
	}
	return engine.Run(ctx)
}

// prepareOptions validates opts and fills in every dependency the caller
// did not inject.
func prepareOptions(opts *Options, logger *slog.Logger) error {
	if opts.InputPath == "" {
		return fmt.Errorf("%w: input path cannot be empty", ErrConfigValidation)
	}
	if opts.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency cannot be negative (got %d)", ErrConfigValidation, opts.Concurrency)
	}
	if opts.MaxContentBytes < 0 {
		return fmt.Errorf("%w: maxContentBytes cannot be negative (got %d)", ErrConfigValidation, opts.MaxContentBytes)
	}
	if opts.MaxContentBytes == 0 {
		opts.MaxContentBytes = DefaultMaxContentBytes
	}
	if opts.OnErrorMode == "" {
		opts.OnErrorMode = DefaultOnErrorMode
	}
	if opts.BinaryMode == "" {
		opts.BinaryMode = DefaultBinaryMode
	}
	if opts.Engine == "" {
		opts.Engine = DefaultEngine
	}
	if opts.GitDiffMode == "" {
		opts.GitDiffMode = GitDiffModeNone
	}
	if opts.EventHooks == nil {
		opts.EventHooks = &NoOpHooks{}
	}

	absInput, err := filepath.Abs(opts.InputPath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve input path '%s': %w", ErrConfigValidation, opts.InputPath, err)
	}
	if _, err := os.Stat(absInput); err != nil {
		return fmt.Errorf("%w: cannot access input path '%s': %w", ErrConfigValidation, opts.InputPath, err)
	}
	opts.InputPath = absInput

	if opts.LanguageDetector == nil {
		detector, err := NewLanguageDetector(*opts, opts.Logger)
		if err != nil {
			return err
		}
		opts.LanguageDetector = detector
		logger.Debug("Language detector resolved", slog.String("engine", string(opts.Engine)))
	}
	if opts.EncodingHandler == nil {
		opts.EncodingHandler = encoding.NewHandler(opts.DefaultEncoding)
	}
	resolveCache(opts, logger)

	if opts.GitDiffMode != GitDiffModeNone && opts.GitChangedFiles == nil {
		if opts.GitClient == nil {
			return fmt.Errorf("%w: GitClient required for git diff mode '%s'", ErrConfigValidation, opts.GitDiffMode)
		}
		files, err := opts.GitClient.GetChangedFiles(opts.InputPath, string(opts.GitDiffMode), opts.GitConfig.SinceRef)
		if err != nil {
			return err
		}
		opts.GitChangedFiles = make(map[string]struct{}, len(files))
		for _, f := range files {
			opts.GitChangedFiles[f] = struct{}{}
		}
		logger.Info("Git diff filter active", slog.String("mode", string(opts.GitDiffMode)), slog.Int("changedFiles", len(files)))
	}
	return nil
}

// resolveCache selects the cache manager and file. A cache that cannot be
// loaded disables caching for the run rather than failing it.
func resolveCache(opts *Options, logger *slog.Logger) {
	if !opts.CacheEnabled {
		opts.CacheManager = cache.NoOp{}
		return
	}
	if opts.CacheFilePath == "" {
		opts.CacheFilePath = DefaultCacheFilePath(opts.InputPath)
	}
	if opts.ClearCache {
		if err := os.Remove(opts.CacheFilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Failed to clear cache file", slog.String("path", opts.CacheFilePath), slog.String("error", err.Error()))
		} else {
			logger.Info("Cache file cleared", slog.String("path", opts.CacheFilePath))
		}
	}
	if opts.CacheManager == nil {
		appVersion := opts.AppVersion
		if appVersion == "" {
			logger.Warn("AppVersion not set in Options, using 'dev' for cache compatibility")
			appVersion = "dev"
		}
		opts.CacheManager = cache.NewFileManager(opts.Logger, appVersion, opts.CacheFormat)
	}
	if err := opts.CacheManager.Load(opts.CacheFilePath); err != nil {
		logger.Error("Critical error loading cache, proceeding without cache",
			slog.String("path", opts.CacheFilePath), slog.String("error", err.Error()))
		opts.CacheManager = cache.NoOp{}
		opts.CacheEnabled = false
	}
}

// DefaultCacheFilePath returns the cache file used for inputPath when none
// is configured: a file named after the input's hash in the user cache
// directory, or FileName inside the input directory when there is none.
func DefaultCacheFilePath(inputPath string) string {
	if dir, err := os.UserCacheDir(); err == nil {
		name := strconv.FormatUint(xxhash.Sum64String(inputPath), 16) + ".cache"
		return filepath.Join(dir, "ftdetect", name)
	}
	if info, err := os.Stat(inputPath); err == nil && !info.IsDir() {
		return filepath.Join(filepath.Dir(inputPath), cache.FileName)
	}
	return filepath.Join(inputPath, cache.FileName)
}

// NewLanguageDetector builds the language.Detector selected by opts.Engine.
func NewLanguageDetector(opts Options, loggerHandler slog.Handler) (language.Detector, error) {
	switch opts.Engine {
	case EngineEnry:
		for ext, name := range opts.LanguageMappings {
			if _, err := filetype.Parse(name); err != nil {
				return nil, fmt.Errorf("%w: languageMappings[%q]: %w", ErrConfigValidation, ext, err)
			}
		}
		return language.NewEnryDetector(opts.LanguageMappings), nil
	case EngineFtdetect, "":
		d, err := NewDetector(opts, loggerHandler)
		if err != nil {
			return nil, err
		}
		return language.NewFileTypeDetector(d), nil
	default:
		return nil, fmt.Errorf("%w: unknown engine %q", ErrConfigValidation, opts.Engine)
	}
}

// NewDetector builds a detect.Detector carrying the extension overrides of
// opts.LanguageMappings and the ruleset in opts.RulesetFile.
func NewDetector(opts Options, loggerHandler slog.Handler) (*detect.Detector, error) {
	var detectOpts []detect.Option
	if opts.RulesetFile != "" {
		var loadOpts []heuristics.LoadOption
		if loggerHandler != nil {
			loadOpts = append(loadOpts, heuristics.WithLogger(slog.New(loggerHandler).With(slog.String("component", "ruleset"))))
		}
		table, err := heuristics.LoadRulesetFile(opts.RulesetFile, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRulesetLoad, err)
		}
		detectOpts = append(detectOpts, detect.WithRuleset(table))
	}
	if len(opts.LanguageMappings) > 0 {
		overrides := make(map[string]filetype.FileType, len(opts.LanguageMappings))
		for ext, name := range opts.LanguageMappings {
			ft, err := filetype.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("%w: languageMappings[%q]: %w", ErrConfigValidation, ext, err)
			}
			overrides[ext] = ft
		}
		detectOpts = append(detectOpts, detect.WithOverrides(overrides))
	}
	return detect.New(detectOpts...), nil
}
