package hooks

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stackvity/ftdetect/pkg/scanner"
)

// --- TUI Message Structs ---

// FileDiscoveredMsg signals that a file/directory was found by the walker.
type FileDiscoveredMsg struct{ Path string }

// FileStatusUpdateMsg signals a change in a file's processing status.
type FileStatusUpdateMsg struct {
	Path     string
	Status   scanner.Status
	Message  string
	Duration time.Duration
}

// RunCompleteMsg signals the completion of the entire scan.
type RunCompleteMsg struct{ Report scanner.Report }

// --- Hook Implementation ---

// TUIProgram is the part of *tea.Program the hooks need.
type TUIProgram interface {
	Send(msg tea.Msg)
}

// NoOpTUIProgram provides a default null implementation.
type NoOpTUIProgram struct{}

// Send implements TUIProgram.
func (n *NoOpTUIProgram) Send(msg tea.Msg) {}

// CLIHooks implements the scanner.Hooks interface, bridging scanner events
// to the CLI's UI layer (TUI or logger).
type CLIHooks struct {
	logger         *slog.Logger
	tuiEnabled     bool
	verboseEnabled bool
	tuiProgram     TUIProgram
}

// NewCLIHooks creates a new CLIHooks instance. A nil tuiProg disables TUI
// messages even when tuiEnabled is set.
func NewCLIHooks(logger *slog.Logger, tuiEnabled, verboseEnabled bool, tuiProg TUIProgram) scanner.Hooks {
	if tuiProg == nil {
		tuiProg = &NoOpTUIProgram{}
		tuiEnabled = false
	}
	return &CLIHooks{
		logger:         logger,
		tuiEnabled:     tuiEnabled,
		verboseEnabled: verboseEnabled,
		tuiProgram:     tuiProg,
	}
}

// OnFileDiscovered handles the event when a file or directory is found by the walker.
func (h *CLIHooks) OnFileDiscovered(path string) error {
	if h.tuiEnabled {
		h.tuiProgram.Send(FileDiscoveredMsg{Path: path})
	} else if h.verboseEnabled {
		h.logger.Debug("File discovered", slog.String("path", path))
	}
	return nil
}

// OnFileStatusUpdate handles events when a file's processing status changes.
// It is called concurrently by the scanner's workers.
func (h *CLIHooks) OnFileStatusUpdate(path string, status scanner.Status, message string, duration time.Duration) error {
	if h.tuiEnabled {
		h.tuiProgram.Send(FileStatusUpdateMsg{
			Path:     path,
			Status:   status,
			Message:  message,
			Duration: duration,
		})
		return nil
	}

	if !h.verboseEnabled {
		if status == scanner.StatusFailed {
			h.logger.Error("File processing failed", slog.String("path", path), slog.String("error", message))
		}
		return nil
	}

	logLevel := slog.LevelDebug
	logMsg := "File status updated"
	attrs := []any{
		slog.String("path", path),
		slog.String("status", string(status)),
	}
	if duration > 0 {
		attrs = append(attrs, slog.Duration("duration", duration))
	}
	if message != "" {
		logKey := "message"
		if status == scanner.StatusFailed {
			logKey = "error"
		}
		attrs = append(attrs, slog.String(logKey, message))
	}
	switch status {
	case scanner.StatusSuccess, scanner.StatusCached, scanner.StatusSkipped:
		logLevel = slog.LevelInfo
	case scanner.StatusFailed:
		logLevel = slog.LevelError
		logMsg = "File processing failed"
	}
	h.logger.Log(context.Background(), logLevel, logMsg, attrs...)
	return nil
}

// OnRunComplete sends the final report to the TUI. Without a TUI the report
// is rendered by the caller of scanner.Scan.
func (h *CLIHooks) OnRunComplete(report scanner.Report) error {
	if h.tuiEnabled {
		h.tuiProgram.Send(RunCompleteMsg{Report: report})
	}
	return nil
}
