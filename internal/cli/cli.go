// Package cli runs a scan for the command line: it wires the Git client, the
// progress UI and the watcher around scanner.Scan and prints the report.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/stackvity/ftdetect/internal/cli/git"
	"github.com/stackvity/ftdetect/internal/cli/hooks"
	"github.com/stackvity/ftdetect/internal/cli/ui"
	"github.com/stackvity/ftdetect/internal/cli/watch"
	"github.com/stackvity/ftdetect/pkg/scanner"
)

// ErrRunFailed is returned when a run completed but stopped on a fatal error.
var ErrRunFailed = errors.New("scan stopped on a fatal error")

// Streams are the outputs of a run. Stdout receives the report, Stderr the
// progress UI and the summary line.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// RunOptions holds the flag-only switches that are not part of scanner.Options.
type RunOptions struct {
	NoTUI bool
}

// Run executes one scan, or a scan followed by re-scans on change when
// opts.WatchMode is set, and writes each report to streams.Stdout.
func Run(ctx context.Context, opts scanner.Options, logger *slog.Logger, streams Streams, runOpts RunOptions) error {
	if opts.GitDiffMode != scanner.GitDiffModeNone && opts.GitClient == nil {
		opts.GitClient = git.NewGoGitClient(opts.Logger)
	}
	if opts.CacheEnabled && opts.CacheFilePath == "" {
		opts.CacheFilePath = scanner.DefaultCacheFilePath(opts.InputPath)
	}

	renderOpts := ui.RenderOptions{
		Breakdown: opts.Breakdown,
		Condensed: opts.Condensed,
		Filter:    opts.Filter,
	}
	if f, ok := streams.Stdout.(*os.File); ok {
		renderOpts.Color = ui.ColorEnabled(opts.NoColor, f)
	}
	useTUI := !runOpts.NoTUI && !opts.Verbose && !opts.WatchMode &&
		opts.OutputFormat == scanner.OutputFormatText && isTerminalFile(streams.Stderr)

	if !opts.WatchMode {
		return runOnce(ctx, opts, logger, streams, renderOpts, useTUI)
	}

	// The watcher is registered before the first run so no change is missed.
	w, err := watch.New(opts.InputPath, watch.Config{
		Debounce:      opts.WatchDebounce,
		IncludeHidden: opts.IncludeHidden,
		SkipVendored:  opts.SkipVendored,
		IgnorePaths:   []string{opts.CacheFilePath},
	}, opts.Logger)
	if err != nil {
		return fmt.Errorf("starting watch mode: %w", err)
	}
	if err := runOnce(ctx, opts, logger, streams, renderOpts, false); err != nil && !errors.Is(err, ErrRunFailed) {
		logger.Error("Initial scan failed", slog.String("error", err.Error()))
	}
	// Later runs must not wipe the cache written by the first one.
	opts.ClearCache = false
	return w.Run(ctx, func(ctx context.Context, changed []string) error {
		logger.Debug("Re-scanning after change", slog.Any("paths", changed))
		return runOnce(ctx, opts, logger, streams, renderOpts, false)
	})
}

// runOnce scans and prints a single report.
func runOnce(ctx context.Context, opts scanner.Options, logger *slog.Logger, streams Streams, renderOpts ui.RenderOptions, useTUI bool) error {
	var (
		report scanner.Report
		err    error
	)
	if useTUI {
		report, err = scanWithTUI(ctx, opts, logger, streams.Stderr)
	} else {
		opts.EventHooks = hooks.NewCLIHooks(logger, false, opts.Verbose, nil)
		report, err = scanner.Scan(ctx, opts)
	}
	if err != nil && report.Summary.InputPath == "" {
		// Rejected before any file was read.
		return err
	}

	if writeErr := ui.WriteReport(streams.Stdout, report, opts.OutputFormat, renderOpts); writeErr != nil {
		return errors.Join(err, fmt.Errorf("writing report: %w", writeErr))
	}
	if opts.OutputFormat == scanner.OutputFormatText && streams.Stderr != nil {
		_ = ui.RenderSummary(streams.Stderr, report)
	}

	if err != nil {
		return err
	}
	if report.Summary.FatalErrorOccurred {
		return ErrRunFailed
	}
	if report.Summary.ErrorCount > 0 {
		logger.Warn("Some files could not be classified", slog.Int("errors", report.Summary.ErrorCount))
	}
	return nil
}

// scanWithTUI runs the scan while a bubbletea program renders progress on
// out. Quitting the program cancels the scan.
func scanWithTUI(ctx context.Context, opts scanner.Options, logger *slog.Logger, out io.Writer) (scanner.Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prog := tea.NewProgram(ui.NewModel(cancel), tea.WithOutput(out))
	opts.EventHooks = hooks.NewCLIHooks(logger, true, opts.Verbose, prog)
	// Only errors may interleave with the progress view.
	opts.Logger = minLevelHandler{Handler: opts.Logger, min: slog.LevelError}

	var (
		report  scanner.Report
		scanErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		report, scanErr = scanner.Scan(ctx, opts)
		prog.Quit()
	}()

	if _, err := prog.Run(); err != nil {
		logger.Warn("Progress display failed", slog.String("error", err.Error()))
		cancel()
	}
	<-done
	return report, scanErr
}

func isTerminalFile(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// minLevelHandler drops records below min.
type minLevelHandler struct {
	slog.Handler
	min slog.Level
}

func (h minLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.min && h.Handler.Enabled(ctx, level)
}

func (h minLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return minLevelHandler{Handler: h.Handler.WithAttrs(attrs), min: h.min}
}

func (h minLevelHandler) WithGroup(name string) slog.Handler {
	return minLevelHandler{Handler: h.Handler.WithGroup(name), min: h.min}
}
