package hooks

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/ftdetect/pkg/scanner"
)

type MockTUIProgram struct {
	mock.Mock
}

// Send mocks the Send method.
func (m *MockTUIProgram) Send(msg tea.Msg) {
	m.Called(msg)
}

func newLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})), buf
}

func TestCLIHooksTUI(t *testing.T) {
	prog := new(MockTUIProgram)
	prog.On("Send", FileDiscoveredMsg{Path: "main.go"}).Once()
	prog.On("Send", FileStatusUpdateMsg{Path: "main.go", Status: scanner.StatusSuccess, Message: "go", Duration: time.Millisecond}).Once()
	prog.On("Send", mock.AnythingOfType("hooks.RunCompleteMsg")).Once()

	logger, buf := newLogger(slog.LevelDebug)
	h := NewCLIHooks(logger, true, true, prog)

	require.NoError(t, h.OnFileDiscovered("main.go"))
	require.NoError(t, h.OnFileStatusUpdate("main.go", scanner.StatusSuccess, "go", time.Millisecond))
	require.NoError(t, h.OnRunComplete(scanner.Report{}))

	prog.AssertExpectations(t)
	assert.Empty(t, buf.String(), "TUI mode does not log")
}

func TestCLIHooksNilProgramDisablesTUI(t *testing.T) {
	logger, buf := newLogger(slog.LevelDebug)
	h := NewCLIHooks(logger, true, false, nil)

	require.NoError(t, h.OnFileStatusUpdate("bad.bin", scanner.StatusFailed, "boom", 0))
	assert.Contains(t, buf.String(), "File processing failed")
}

func TestCLIHooksVerbose(t *testing.T) {
	testCases := []struct {
		name    string
		status  scanner.Status
		message string
		want    []string
	}{
		{"success", scanner.StatusSuccess, "rust", []string{"level=INFO", "status=success", "message=rust", "duration="}},
		{"cached", scanner.StatusCached, "go", []string{"level=INFO", "status=cached"}},
		{"skipped", scanner.StatusSkipped, "Binary file detected", []string{"level=INFO", `message="Binary file detected"`}},
		{"failed", scanner.StatusFailed, "read error", []string{"level=ERROR", `msg="File processing failed"`, `error="read error"`}},
		{"processing", scanner.StatusProcessing, "", []string{"level=DEBUG", "status=processing"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, buf := newLogger(slog.LevelDebug)
			h := NewCLIHooks(logger, false, true, nil)
			require.NoError(t, h.OnFileStatusUpdate("src/a.rs", tc.status, tc.message, 2*time.Millisecond))
			for _, w := range tc.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}

	logger, buf := newLogger(slog.LevelDebug)
	h := NewCLIHooks(logger, false, true, nil)
	require.NoError(t, h.OnFileDiscovered("src/a.rs"))
	assert.Contains(t, buf.String(), `msg="File discovered" path=src/a.rs`)
}

func TestCLIHooksQuiet(t *testing.T) {
	logger, buf := newLogger(slog.LevelDebug)
	h := NewCLIHooks(logger, false, false, nil)

	require.NoError(t, h.OnFileDiscovered("a.go"))
	require.NoError(t, h.OnFileStatusUpdate("a.go", scanner.StatusSuccess, "go", time.Millisecond))
	require.NoError(t, h.OnRunComplete(scanner.Report{}))
	assert.Empty(t, buf.String())

	require.NoError(t, h.OnFileStatusUpdate("b.go", scanner.StatusFailed, "denied", 0))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "path=b.go")
}
