package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stackvity/ftdetect/internal/cli/hooks"
	"github.com/stackvity/ftdetect/pkg/scanner"
)

// recentLimit is the number of finished files listed below the header.
const recentLimit = 8

// Model is the bubbletea model of the scan progress view. It is fed by the
// messages of hooks.CLIHooks and quits once the run completes.
type Model struct {
	spinner      spinner.Model
	width        int
	phaseMessage string
	summary      Summary
	recent       []listItem
	fatalError   string
	quitting     bool
	done         bool
	onQuit       func()
}

// listItem is one finished file in the recent list.
type listItem struct {
	path     string
	status   scanner.Status
	message  string
	duration time.Duration
}

// Summary holds the live counters displayed in the footer.
type Summary struct {
	Discovered int
	Processed  int
	Cached     int
	Skipped    int
	Failed     int
	StartTime  time.Time
}

// NewModel creates the initial model. onQuit is called when the user
// aborts with q or ctrl+c; it may be nil.
func NewModel(onQuit func()) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorStatusProcessing)
	return &Model{
		spinner:      s,
		phaseMessage: "Initializing...",
		summary:      Summary{StartTime: time.Now()},
		onQuit:       onQuit,
	}
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles key presses and scanner events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.quitting && m.onQuit != nil {
				m.onQuit()
			}
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.quitting || m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case hooks.FileDiscoveredMsg:
		m.summary.Discovered++
		if m.phaseMessage == "Initializing..." {
			m.phaseMessage = "Scanning..."
		}

	case hooks.FileStatusUpdateMsg:
		if msg.Status == scanner.StatusProcessing {
			m.phaseMessage = "Detecting..."
			return m, nil
		}
		m.countStatus(msg.Status)
		m.recent = append(m.recent, listItem{path: msg.Path, status: msg.Status, message: msg.Message, duration: msg.Duration})
		if len(m.recent) > recentLimit {
			m.recent = m.recent[len(m.recent)-recentLimit:]
		}

	case hooks.RunCompleteMsg:
		m.done = true
		m.phaseMessage = "Complete"
		s := msg.Report.Summary
		m.summary.Processed = s.DetectedCount + s.UndetectedCount - s.CachedCount
		m.summary.Cached = s.CachedCount
		m.summary.Skipped = s.SkippedCount
		m.summary.Failed = s.ErrorCount
		if s.FatalErrorOccurred {
			m.fatalError = "Run halted due to fatal error."
			for _, e := range msg.Report.Errors {
				if e.IsFatal {
					m.fatalError = fmt.Sprintf("Fatal Error: %s (%s)", e.Error, e.Path)
					break
				}
			}
		}
		return m, tea.Quit
	}
	return m, nil
}

// countStatus updates the counters for a file that reached a final status.
func (m *Model) countStatus(status scanner.Status) {
	switch status {
	case scanner.StatusSuccess:
		m.summary.Processed++
	case scanner.StatusCached:
		m.summary.Cached++
	case scanner.StatusSkipped:
		m.summary.Skipped++
	case scanner.StatusFailed:
		m.summary.Failed++
	}
}

// View renders the header, the recently finished files and the counters.
func (m *Model) View() string {
	if m.quitting {
		return "Exiting...\n"
	}

	headerLeft := "ftdetect"
	headerRight := m.phaseMessage
	if !m.done {
		headerRight = m.spinner.View() + " " + m.phaseMessage
	}
	header := HeaderStyle.Render(headerLeft + "  " + headerRight)

	var b strings.Builder
	line := lipgloss.NewStyle()
	if m.width > 0 {
		line = line.MaxWidth(m.width)
	}
	for _, item := range m.recent {
		b.WriteString(line.Render(item.render()))
		b.WriteByte('\n')
	}

	elapsed := time.Since(m.summary.StartTime).Round(time.Millisecond)
	footer := FooterStyle.Render(fmt.Sprintf(
		"Processed: %d | Cached: %d | Skipped: %d | Failed: %d | Discovered: %d | Elapsed: %s",
		m.summary.Processed, m.summary.Cached, m.summary.Skipped, m.summary.Failed, m.summary.Discovered, elapsed,
	))

	parts := []string{header, strings.TrimSuffix(b.String(), "\n")}
	if m.fatalError != "" {
		parts = append(parts, StatusStyleFailed.Render(m.fatalError))
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

// Summary returns the current counters.
func (m *Model) Summary() Summary {
	return m.summary
}

func (i listItem) render() string {
	var style lipgloss.Style
	icon := " "
	switch i.status {
	case scanner.StatusSuccess:
		style, icon = StatusStyleSuccess, "✓"
	case scanner.StatusFailed:
		style, icon = StatusStyleFailed, "✗"
	case scanner.StatusSkipped:
		style, icon = StatusStyleSkipped, "S"
	case scanner.StatusCached:
		style, icon = StatusStyleCached, "C"
	default:
		style = StatusStylePending
	}
	details := i.message
	if d := formatDuration(i.duration); d != "" && (i.status == scanner.StatusSuccess || i.status == scanner.StatusCached) {
		details += " " + d
	}
	return fmt.Sprintf("%s %s %s", style.Render("["+icon+"]"), i.path, strings.TrimSpace(details))
}

// formatDuration formats duration for display.
func formatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return ""
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// --- Styles ---

const (
	ColorHeaderFg = lipgloss.Color("252")
	ColorHeaderBg = lipgloss.Color("62")

	ColorFooterFg = lipgloss.Color("252")
	ColorFooterBg = lipgloss.Color("56")

	ColorTypeName = lipgloss.Color("5") // magenta, as in the breakdown headers

	ColorStatusSuccess    = lipgloss.Color("40")
	ColorStatusFailed     = lipgloss.Color("196")
	ColorStatusSkipped    = lipgloss.Color("214")
	ColorStatusCached     = lipgloss.Color("39")
	ColorStatusPending    = lipgloss.Color("244")
	ColorStatusProcessing = lipgloss.Color("205")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeaderFg).
			Background(ColorHeaderBg).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorFooterFg).
			Background(ColorFooterBg).
			Padding(0, 1)

	StatusStyleSuccess = lipgloss.NewStyle().Foreground(ColorStatusSuccess)
	StatusStyleFailed  = lipgloss.NewStyle().Foreground(ColorStatusFailed)
	StatusStyleSkipped = lipgloss.NewStyle().Foreground(ColorStatusSkipped)
	StatusStyleCached  = lipgloss.NewStyle().Foreground(ColorStatusCached)
	StatusStylePending = lipgloss.NewStyle().Foreground(ColorStatusPending)
)
