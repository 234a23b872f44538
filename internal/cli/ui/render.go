package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/stackvity/ftdetect/pkg/scanner"
)

// RenderOptions controls the text rendering of a report.
type RenderOptions struct {
	Breakdown bool
	Condensed bool
	Color     bool
	Filter    []string
}

// WriteReport writes report to w in the given format. For every format the
// breakdown is narrowed by opts.Filter first.
func WriteReport(w io.Writer, report scanner.Report, format scanner.OutputFormat, opts RenderOptions) error {
	filtered, err := scanner.FilterBreakdown(report.Breakdown, opts.Filter)
	if err != nil {
		return err
	}

	switch format {
	case scanner.OutputFormatJSON:
		report.Breakdown = filtered
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding report as json: %w", err)
		}
		return nil
	case scanner.OutputFormatYAML:
		report.Breakdown = filtered
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding report as yaml: %w", err)
		}
		return enc.Close()
	case scanner.OutputFormatText, "":
		return RenderText(w, report, opts)
	default:
		return fmt.Errorf("%w: unsupported output format '%s'", scanner.ErrConfigValidation, format)
	}
}

// RenderText prints one "<percentage>% <type>" line per detected type. With
// opts.Breakdown it then lists the paths of every type matching opts.Filter
// under a "<type> (<count>)" header, or only the headers when opts.Condensed
// is set.
func RenderText(w io.Writer, report scanner.Report, opts RenderOptions) error {
	var b strings.Builder
	for _, stat := range report.Breakdown {
		fmt.Fprintf(&b, "%.2f%% %s\n", stat.Percentage, stat.Type)
	}

	if opts.Breakdown {
		sections, err := scanner.FilterBreakdown(report.Breakdown, opts.Filter)
		if err != nil {
			return err
		}
		header := lipgloss.NewStyle()
		if opts.Color {
			header = lipgloss.NewRenderer(w).NewStyle().Foreground(ColorTypeName)
		}
		b.WriteByte('\n')
		for _, stat := range sections {
			b.WriteString(header.Render(stat.Type.String()))
			fmt.Fprintf(&b, " (%d)\n", stat.Files)
			if opts.Condensed {
				continue
			}
			for _, p := range stat.Paths {
				b.WriteString(p)
				b.WriteByte('\n')
			}
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderSummary writes a one-line human readable digest of the run.
func RenderSummary(w io.Writer, report scanner.Report) error {
	s := report.Summary
	duration := time.Duration(s.DurationSeconds * float64(time.Second)).Round(time.Millisecond)
	line := fmt.Sprintf("Scanned %s files (%s) in %s: %d detected, %d undetected, %d cached, %d skipped, %d errors",
		humanize.Comma(int64(s.DetectedCount+s.UndetectedCount)), humanize.Bytes(uint64(max(s.TotalBytes, 0))), duration,
		s.DetectedCount, s.UndetectedCount, s.CachedCount, s.SkippedCount, s.ErrorCount)
	if s.FatalErrorOccurred {
		line += " (stopped early)"
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

// ColorEnabled reports whether output written to f should be colored.
// NO_COLOR in the environment disables color like --no-color does.
func ColorEnabled(noColor bool, f *os.File) bool {
	if noColor || os.Getenv("NO_COLOR") != "" || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
