package scanner

import "errors"

// These errors represent specific categories of issues that might be returned
// directly by Scan or recorded in Report.Errors. Library users can check
// against these using errors.Is.

var (
	// ErrConfigValidation indicates that the provided Options failed validation
	// (missing input path, unknown enum value, unknown language mapping).
	// This is returned directly as a fatal error by Scan.
	ErrConfigValidation = errors.New("invalid configuration options provided")

	// ErrReadFailed indicates a failure to read the content prefix of a file.
	// This might be due to permissions or the file being deleted after discovery.
	ErrReadFailed = errors.New("failed to read file")

	// ErrStatFailed indicates a failure to get file statistics (size, mod time).
	ErrStatFailed = errors.New("failed to get file stats")

	// ErrBinaryFile indicates that a file was detected as binary and the
	// configured BinaryMode is "error".
	ErrBinaryFile = errors.New("binary file encountered")

	// ErrRulesetLoad indicates that the runtime heuristics ruleset named by
	// Options.RulesetFile could not be read or compiled.
	ErrRulesetLoad = errors.New("failed to load heuristics ruleset")

	// ErrDetection indicates that the language detector returned an error for a file.
	ErrDetection = errors.New("language detection failed")
)
