package scanner

import (
	"log/slog"
	"time"

	"github.com/stackvity/ftdetect/pkg/scanner/cache"
	"github.com/stackvity/ftdetect/pkg/scanner/encoding"
	"github.com/stackvity/ftdetect/pkg/scanner/git"
	"github.com/stackvity/ftdetect/pkg/scanner/language"
)

// WatchConfig holds settings related to watch mode.
type WatchConfig struct {
	Debounce string `mapstructure:"debounce"`
}

// GitConfig holds settings related to Git integration.
type GitConfig struct {
	DiffOnly bool   `mapstructure:"diffOnly"`
	SinceRef string `mapstructure:"sinceRef"`
}

// Hooks defines callbacks for status updates during a scan.
// Implementations MUST be thread-safe as methods are called concurrently by
// the walker and the workers.
type Hooks interface {
	OnFileDiscovered(path string) error
	OnFileStatusUpdate(path string, status Status, message string, duration time.Duration) error
	OnRunComplete(report Report) error
}

// NoOpHooks provides a default, do-nothing implementation of the Hooks interface.
type NoOpHooks struct{}

// OnFileDiscovered implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnFileDiscovered(path string) error { return nil }

// OnFileStatusUpdate implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnFileStatusUpdate(path string, status Status, message string, duration time.Duration) error {
	return nil
}

// OnRunComplete implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnRunComplete(report Report) error { return nil }

// Options holds all configuration for a Scan run.
type Options struct {
	// --- Core Paths ---
	InputPath string `mapstructure:"input"` // Required: directory or single file to scan

	// --- Application Info ---
	AppVersion string `mapstructure:"-"` // Used for cache validation; "dev" accepts any cache

	// --- Behavior & Control ---
	ConfigFilePath string      `mapstructure:"-"`       // Path to the loaded config file (for reporting)
	ProfileName    string      `mapstructure:"-"`       // Name of the profile used (for reporting)
	Verbose        bool        `mapstructure:"verbose"` // Enable debug logging
	OnErrorMode    OnErrorMode `mapstructure:"onError"` // "continue" or "stop"

	// --- Performance & Caching ---
	Concurrency     int    `mapstructure:"concurrency"` // Number of workers (0=auto)
	CacheEnabled    bool   `mapstructure:"cache"`
	CacheFilePath   string `mapstructure:"cacheFile"`   // Empty selects a per-input file in the user cache dir
	CacheFormat     string `mapstructure:"cacheFormat"` // "gob" or "json"
	IgnoreCacheRead bool   `mapstructure:"-"`           // Force cache miss (set by --no-cache)
	ClearCache      bool   `mapstructure:"-"`           // Delete cache file before run (set by --clear-cache)

	// --- File Handling & Filtering ---
	IgnorePatterns   []string          `mapstructure:"ignore"` // Glob patterns, aggregated with .ftdetectignore
	BinaryMode       BinaryMode        `mapstructure:"binaryMode"`
	MaxContentBytes  int               `mapstructure:"maxContentBytes"`
	DefaultEncoding  string            `mapstructure:"defaultEncoding"`
	LanguageMappings map[string]string `mapstructure:"languageMappings"` // extension -> type name
	SkipVendored     bool              `mapstructure:"skipVendored"`
	RespectGitignore bool              `mapstructure:"respectGitignore"`
	IncludeHidden    bool              `mapstructure:"includeHidden"`

	// --- Detection ---
	Engine      EngineName `mapstructure:"engine"`
	RulesetFile string     `mapstructure:"rulesetFile"` // Optional YAML heuristics ruleset

	// --- Output & Formatting ---
	OutputFormat OutputFormat `mapstructure:"outputFormat"`
	Breakdown    bool         `mapstructure:"breakdown"` // List the files of each type
	Condensed    bool         `mapstructure:"condensed"` // Breakdown headers only, without paths
	Filter       []string     `mapstructure:"filter"`    // Regexes selecting breakdown sections
	NoColor      bool         `mapstructure:"noColor"`

	// --- Workflow Features ---
	WatchMode     bool          `mapstructure:"-"` // Set by --watch
	WatchDebounce time.Duration `mapstructure:"-"` // Derived from WatchConfig.Debounce
	WatchConfig   WatchConfig   `mapstructure:"watch"`
	GitDiffMode   GitDiffMode   `mapstructure:"-"` // Derived from GitConfig / flags
	GitConfig     GitConfig     `mapstructure:"git"`

	// --- Injected Dependencies & Internal State ---
	EventHooks       Hooks               `mapstructure:"-"` // Optional: defaults to NoOpHooks
	Logger           slog.Handler        `mapstructure:"-"` // Required: logging backend
	GitClient        git.Client          `mapstructure:"-"` // Required when GitDiffMode is active and GitChangedFiles is nil
	CacheManager     cache.Manager       `mapstructure:"-"` // Optional: defaults to a file manager when CacheEnabled
	LanguageDetector language.Detector   `mapstructure:"-"` // Optional: derived from Engine
	EncodingHandler  encoding.Handler    `mapstructure:"-"` // Optional: derived from DefaultEncoding
	GitChangedFiles  map[string]struct{} `mapstructure:"-"` // Populated from GitClient if nil
}

// DefaultOptions returns Options with every default applied. Callers set
// InputPath and Logger before passing them to Scan.
func DefaultOptions() Options {
	return Options{
		OnErrorMode:      DefaultOnErrorMode,
		Concurrency:      DefaultConcurrency,
		CacheEnabled:     DefaultCacheEnabled,
		CacheFormat:      cache.DefaultFormat,
		BinaryMode:       DefaultBinaryMode,
		MaxContentBytes:  DefaultMaxContentBytes,
		SkipVendored:     DefaultSkipVendored,
		RespectGitignore: DefaultRespectGitignore,
		IncludeHidden:    DefaultIncludeHidden,
		Engine:           DefaultEngine,
		OutputFormat:     DefaultOutputFormat,
		WatchDebounce:    DefaultWatchDebounceDuration,
		WatchConfig:      WatchConfig{Debounce: DefaultWatchDebounceString},
		GitDiffMode:      GitDiffModeNone,
		EventHooks:       &NoOpHooks{},
	}
}
