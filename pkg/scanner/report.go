package scanner

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/stackvity/ftdetect/pkg/filetype"
)

// Report summarizes the result of a single Scan run.
type Report struct {
	Summary   ReportSummary  `json:"summary" yaml:"summary"`
	Breakdown []LanguageStat `json:"breakdown" yaml:"breakdown"`
	Files     []FileResult   `json:"files" yaml:"files"`
	Skipped   []SkippedInfo  `json:"skipped" yaml:"skipped"`
	Errors    []ErrorInfo    `json:"errors" yaml:"errors"`
}

// ReportSummary contains aggregated statistics for a Scan run.
type ReportSummary struct {
	InputPath          string    `json:"inputPath" yaml:"inputPath"`
	ProfileUsed        string    `json:"profileUsed,omitempty" yaml:"profileUsed,omitempty"`
	ConfigFilePath     string    `json:"configFilePath,omitempty" yaml:"configFilePath,omitempty"`
	Engine             string    `json:"engine" yaml:"engine"`
	TotalFilesScanned  int       `json:"totalFilesScanned" yaml:"totalFilesScanned"`
	DetectedCount      int       `json:"detectedCount" yaml:"detectedCount"`
	UndetectedCount    int       `json:"undetectedCount" yaml:"undetectedCount"`
	CachedCount        int       `json:"cachedCount" yaml:"cachedCount"`
	SkippedCount       int       `json:"skippedCount" yaml:"skippedCount"`
	ErrorCount         int       `json:"errorCount" yaml:"errorCount"`
	TotalBytes         int64     `json:"totalBytes" yaml:"totalBytes"`
	FatalErrorOccurred bool      `json:"fatalError" yaml:"fatalError"`
	DurationSeconds    float64   `json:"durationSeconds" yaml:"durationSeconds"`
	CacheEnabled       bool      `json:"cacheEnabled" yaml:"cacheEnabled"`
	Concurrency        int       `json:"concurrency" yaml:"concurrency"`
	Timestamp          time.Time `json:"timestamp" yaml:"timestamp"`
	SchemaVersion      string    `json:"schemaVersion,omitempty" yaml:"schemaVersion,omitempty"`
}

// LanguageStat is one line of the breakdown: how many detected files have a
// given type. Percentage is relative to the detected file count.
type LanguageStat struct {
	Type       filetype.FileType `json:"type" yaml:"type"`
	Files      int               `json:"files" yaml:"files"`
	Bytes      int64             `json:"bytes" yaml:"bytes"`
	Percentage float64           `json:"percentage" yaml:"percentage"`
	Paths      []string          `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// FileResult details a single file whose type was determined or retrieved from the cache.
type FileResult struct {
	Path        string            `json:"path" yaml:"path"`
	Type        filetype.FileType `json:"type" yaml:"type"`
	Confidence  float64           `json:"confidence" yaml:"confidence"`
	Detected    bool              `json:"detected" yaml:"detected"`
	Encoding    string            `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	SizeBytes   int64             `json:"sizeBytes" yaml:"sizeBytes"`
	ModTime     time.Time         `json:"modTime" yaml:"modTime"`
	CacheStatus string            `json:"cacheStatus" yaml:"cacheStatus"`
	DurationMs  int64             `json:"durationMs" yaml:"durationMs"`
}

// SkippedInfo details a file or directory that was intentionally skipped.
type SkippedInfo struct {
	Path    string `json:"path" yaml:"path"`
	Reason  string `json:"reason" yaml:"reason"`
	Details string `json:"details" yaml:"details"`
}

// ErrorInfo details an error encountered while processing a specific file.
type ErrorInfo struct {
	Path    string `json:"path" yaml:"path"`
	Error   string `json:"error" yaml:"error"`
	IsFatal bool   `json:"isFatal" yaml:"isFatal"`
}

// BuildBreakdown groups the detected files by type. Undetected files are not
// counted. Stats are ordered by file count descending, then by type name;
// the paths of each stat are sorted.
func BuildBreakdown(files []FileResult) []LanguageStat {
	byType := make(map[filetype.FileType]*LanguageStat)
	detected := 0
	for _, f := range files {
		if !f.Detected {
			continue
		}
		detected++
		stat, ok := byType[f.Type]
		if !ok {
			stat = &LanguageStat{Type: f.Type}
			byType[f.Type] = stat
		}
		stat.Files++
		stat.Bytes += f.SizeBytes
		stat.Paths = append(stat.Paths, f.Path)
	}

	stats := make([]LanguageStat, 0, len(byType))
	for _, stat := range byType {
		stat.Percentage = float64(stat.Files) * 100 / float64(detected)
		slices.Sort(stat.Paths)
		stats = append(stats, *stat)
	}
	slices.SortFunc(stats, func(a, b LanguageStat) int {
		if c := cmp.Compare(b.Files, a.Files); c != 0 {
			return c
		}
		return cmp.Compare(a.Type.String(), b.Type.String())
	})
	return stats
}

// FilterBreakdown keeps the stats whose type name matches any of patterns.
// With no patterns the breakdown is returned unchanged. Percentages are not
// recomputed.
func FilterBreakdown(stats []LanguageStat, patterns []string) ([]LanguageStat, error) {
	if len(patterns) == 0 {
		return stats, nil
	}
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid filter %q: %w", ErrConfigValidation, p, err)
		}
		res = append(res, re)
	}
	filtered := make([]LanguageStat, 0, len(stats))
	for _, stat := range stats {
		name := stat.Type.String()
		if slices.ContainsFunc(res, func(re *regexp.Regexp) bool { return re.MatchString(name) }) {
			filtered = append(filtered, stat)
		}
	}
	return filtered, nil
}
