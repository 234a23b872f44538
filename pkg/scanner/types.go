package scanner

// Status defines the possible processing states of a file during a scan.
type Status string

// Constants representing the defined file processing statuses.
const (
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
	StatusSkipped    Status = "skipped"
	StatusCached     Status = "cached"
)

// OnErrorMode defines the behavior when a per-file error occurs.
type OnErrorMode string

const (
	OnErrorContinue OnErrorMode = "continue"
	OnErrorStop     OnErrorMode = "stop"
)

// BinaryMode defines how files detected as binary are handled.
type BinaryMode string

const (
	BinarySkip  BinaryMode = "skip"
	BinaryError BinaryMode = "error"
)

// OutputFormat defines the format of the report printed by the CLI.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// GitDiffMode defines the strategy for using Git differences to filter scanned files.
type GitDiffMode string

const (
	GitDiffModeNone     GitDiffMode = "none"
	GitDiffModeDiffOnly GitDiffMode = "diffOnly"
	GitDiffModeSince    GitDiffMode = "since"
)

// EngineName selects the language detector backing a scan.
type EngineName string

const (
	// EngineFtdetect uses the staged detection pipeline of pkg/detect.
	EngineFtdetect EngineName = "ftdetect"
	// EngineEnry uses go-enry's linguist port and maps its names onto file types.
	EngineEnry EngineName = "enry"
)
