package scanner

import (
	"time"

	"github.com/stackvity/ftdetect/pkg/detect"
)

// Default values for configuration options, shared with the CLI's viper defaults.
const (
	// DefaultConcurrency determines the default number of workers. 0 means runtime.NumCPU().
	DefaultConcurrency = 0
	// DefaultCacheEnabled is the default state for caching.
	DefaultCacheEnabled = true
	// DefaultOnErrorMode is the default behavior on per-file errors.
	DefaultOnErrorMode = OnErrorContinue
	// DefaultBinaryMode is the default handling for binary files.
	DefaultBinaryMode = BinarySkip
	// DefaultMaxContentBytes caps how much of each file is read for detection.
	DefaultMaxContentBytes = detect.DefaultMaxContentBytes
	// DefaultEngine is the default detection backend.
	DefaultEngine = EngineFtdetect
	// DefaultOutputFormat is the default format for the final report.
	DefaultOutputFormat = OutputFormatText
	// DefaultGitDiffOnly is the default state for diff-only Git filtering.
	DefaultGitDiffOnly = false
	// DefaultGitSinceRef is the default reference for since mode.
	DefaultGitSinceRef = ""
	// DefaultSkipVendored is the default state for skipping vendored paths.
	DefaultSkipVendored = true
	// DefaultRespectGitignore is the default state for honoring .gitignore files.
	DefaultRespectGitignore = true
	// DefaultIncludeHidden is the default state for scanning dot files and directories.
	DefaultIncludeHidden = false
	// DefaultWatchDebounceString is the default debounce duration string for watch mode.
	DefaultWatchDebounceString = "300ms"
	// DefaultWatchDebounceDuration is the parsed default debounce duration.
	DefaultWatchDebounceDuration = 300 * time.Millisecond
	// DefaultVerbose is the default state for verbose logging.
	DefaultVerbose = false
)

// IgnoreFileName is the per-project ignore file, looked up from the input
// path towards the filesystem root.
const IgnoreFileName = ".ftdetectignore"

// ReportSchemaVersion indicates the version of the JSON/YAML report structure.
const ReportSchemaVersion = "1.0"

// Cache status strings used in FileResult.
const (
	CacheStatusHit      = "hit"
	CacheStatusMiss     = "miss"
	CacheStatusDisabled = "disabled"
)

// Skip reasons used in SkippedInfo and hook messages.
const (
	SkipReasonBinary     = "binary_file"
	SkipReasonIgnored    = "ignored_pattern"
	SkipReasonGitignore  = "gitignore"
	SkipReasonVendored   = "vendored"
	SkipReasonHidden     = "hidden"
	SkipReasonGitExclude = "excluded_by_git_diff"
)
