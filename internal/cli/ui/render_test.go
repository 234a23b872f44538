package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/stackvity/ftdetect/internal/cli/ui"
	"github.com/stackvity/ftdetect/pkg/filetype"
	"github.com/stackvity/ftdetect/pkg/scanner"
)

func sampleReport() scanner.Report {
	files := []scanner.FileResult{
		{Path: "main.go", Type: filetype.Go, Confidence: 1, Detected: true, SizeBytes: 100},
		{Path: "util.go", Type: filetype.Go, Confidence: 1, Detected: true, SizeBytes: 200},
		{Path: "lib.rs", Type: filetype.Rust, Confidence: 1, Detected: true, SizeBytes: 300},
		{Path: "script.py", Type: filetype.Python, Confidence: 1, Detected: true, SizeBytes: 400},
		{Path: "notes", Type: filetype.Text, Detected: false, SizeBytes: 24},
	}
	return scanner.Report{
		Summary: scanner.ReportSummary{
			DetectedCount:   4,
			UndetectedCount: 1,
			SkippedCount:    2,
			TotalBytes:      1024,
			DurationSeconds: 0.25,
		},
		Breakdown: scanner.BuildBreakdown(files),
		Files:     files,
	}
}

func TestRenderText(t *testing.T) {
	report := sampleReport()

	testCases := []struct {
		name     string
		opts     ui.RenderOptions
		expected string
	}{
		{
			name:     "Percentages only",
			opts:     ui.RenderOptions{},
			expected: "50.00% go\n25.00% python\n25.00% rust\n",
		},
		{
			name: "Breakdown",
			opts: ui.RenderOptions{Breakdown: true},
			expected: "50.00% go\n25.00% python\n25.00% rust\n" +
				"\ngo (2)\nmain.go\nutil.go\n\npython (1)\nscript.py\n\nrust (1)\nlib.rs\n\n",
		},
		{
			name:     "Condensed breakdown",
			opts:     ui.RenderOptions{Breakdown: true, Condensed: true},
			expected: "50.00% go\n25.00% python\n25.00% rust\n\ngo (2)\npython (1)\nrust (1)\n",
		},
		{
			name:     "Filter restricts sections only",
			opts:     ui.RenderOptions{Breakdown: true, Filter: []string{"^ru"}},
			expected: "50.00% go\n25.00% python\n25.00% rust\n\nrust (1)\nlib.rs\n\n",
		},
		{
			name:     "Color on a non-terminal writer",
			opts:     ui.RenderOptions{Breakdown: true, Condensed: true, Color: true},
			expected: "50.00% go\n25.00% python\n25.00% rust\n\ngo (2)\npython (1)\nrust (1)\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, ui.RenderText(&buf, report, tc.opts))
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestRenderText_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderText(&buf, scanner.Report{}, ui.RenderOptions{}))
	assert.Empty(t, buf.String())
}

func TestRenderText_InvalidFilter(t *testing.T) {
	var buf bytes.Buffer
	err := ui.RenderText(&buf, sampleReport(), ui.RenderOptions{Breakdown: true, Filter: []string{"("}})
	require.Error(t, err)
	assert.ErrorIs(t, err, scanner.ErrConfigValidation)
}

func TestWriteReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.WriteReport(&buf, sampleReport(), scanner.OutputFormatJSON, ui.RenderOptions{Filter: []string{"go"}}))

	var decoded struct {
		Summary struct {
			DetectedCount int `json:"detectedCount"`
		} `json:"summary"`
		Breakdown []struct {
			Type       string   `json:"type"`
			Files      int      `json:"files"`
			Percentage float64  `json:"percentage"`
			Paths      []string `json:"paths"`
		} `json:"breakdown"`
		Files []map[string]any `json:"files"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 4, decoded.Summary.DetectedCount)
	require.Len(t, decoded.Breakdown, 1)
	assert.Equal(t, "go", decoded.Breakdown[0].Type)
	assert.Equal(t, 2, decoded.Breakdown[0].Files)
	assert.InDelta(t, 50.0, decoded.Breakdown[0].Percentage, 0.001)
	assert.Equal(t, []string{"main.go", "util.go"}, decoded.Breakdown[0].Paths)
	assert.Len(t, decoded.Files, 5)
}

func TestWriteReport_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.WriteReport(&buf, sampleReport(), scanner.OutputFormatYAML, ui.RenderOptions{}))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	breakdown, ok := decoded["breakdown"].([]any)
	require.True(t, ok, "breakdown should be a sequence")
	require.Len(t, breakdown, 3)
	first, ok := breakdown[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "go", first["type"])
}

func TestWriteReport_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.WriteReport(&buf, sampleReport(), scanner.OutputFormatText, ui.RenderOptions{}))
	assert.Equal(t, "50.00% go\n25.00% python\n25.00% rust\n", buf.String())
}

func TestWriteReport_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := ui.WriteReport(&buf, sampleReport(), scanner.OutputFormat("xml"), ui.RenderOptions{})
	assert.ErrorIs(t, err, scanner.ErrConfigValidation)
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderSummary(&buf, sampleReport()))
	assert.Equal(t, "Scanned 5 files (1.0 kB) in 250ms: 4 detected, 1 undetected, 0 cached, 2 skipped, 0 errors\n", buf.String())

	report := sampleReport()
	report.Summary.FatalErrorOccurred = true
	buf.Reset()
	require.NoError(t, ui.RenderSummary(&buf, report))
	assert.Contains(t, buf.String(), "(stopped early)")
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ui.ColorEnabled(true, nil))
	assert.False(t, ui.ColorEnabled(false, nil))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ui.ColorEnabled(false, nil))
}
