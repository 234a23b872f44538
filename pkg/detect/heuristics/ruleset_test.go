package heuristics_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/ftdetect/pkg/detect/heuristics"
	"github.com/stackvity/ftdetect/pkg/filetype"
)

const sampleRuleset = `
disambiguations:
  - extensions: [".foo", "FOOBAR"]
    rules:
      - language: Lisp
        pattern: '^\s*\('
      - language: Cpp
        named_pattern: cpp
      - language: Python
        pattern: ['^def ', '^import ']
        negative_pattern: '^\s*#!.*ruby'
      - language: Ruby
        and:
          - pattern: 'puts'
          - negative_pattern: 'console\.log'
      - language: [Text, Markdown]
  - extensions: [".bar"]
    rules:
      - language: plaintext
named_patterns:
  cpp: ['^\s*template\s*<', 'std::']
`

func TestLoadRuleset(t *testing.T) {
	table, err := heuristics.LoadRuleset(strings.NewReader(sampleRuleset))
	require.NoError(t, err)
	assert.Equal(t, []string{".bar", ".foo", ".foobar"}, table.Extensions())

	testCases := []struct {
		name    string
		ext     string
		content string
		want    filetype.FileType
		ok      bool
	}{
		{"positive", ".foo", "(car x)", filetype.Lisp, true},
		{"named pattern", ".foo", "template <class T>", filetype.Cpp, true},
		{"ored positives", ".foobar", "import os", filetype.Python, true},
		{"negative blocks", ".foo", "#!/usr/bin/ruby\ndef x", filetype.Text, false},
		{"and condition", ".foo", "puts 'x'", filetype.Ruby, true},
		{"and condition negated", ".foo", "puts 'x'\nconsole.log(1)", filetype.Text, false},
		{"ambiguous tail", ".foo", "nothing", filetype.Text, false},
		{"alias fallback", ".bar", "anything", filetype.Text, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := table.Apply(tc.ext, tc.content)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoadRulesetEmpty(t *testing.T) {
	table, err := heuristics.LoadRuleset(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, table.Len())
}

func TestLoadRulesetErrors(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{"unknown language", "disambiguations:\n  - extensions: [.x]\n    rules:\n      - language: NotALanguage\n"},
		{"bad positive regex", "disambiguations:\n  - extensions: [.x]\n    rules:\n      - language: C\n        pattern: '(unclosed'\n"},
		{"unknown named pattern", "disambiguations:\n  - extensions: [.x]\n    rules:\n      - language: C\n        named_pattern: missing\n"},
		{"missing language", "disambiguations:\n  - extensions: [.x]\n    rules:\n      - pattern: 'x'\n"},
		{"missing extensions", "disambiguations:\n  - rules:\n      - language: C\n"},
		{"unknown field", "disambiguations:\n  - extensions: [.x]\n    rulez: []\n"},
		{"bad named pattern", "named_patterns:\n  broken: ['[z-a]']\n"},
		{"not yaml", "disambiguations: [\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := heuristics.LoadRuleset(strings.NewReader(tc.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, heuristics.ErrInvalidRuleset)
		})
	}
}

func TestLoadRulesetMalformedNegativeIsLenient(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	src := "disambiguations:\n  - extensions: [.x]\n    rules:\n      - language: Go\n        pattern: 'package'\n        negative_pattern: '(broken'\n"
	table, err := heuristics.LoadRuleset(strings.NewReader(src), heuristics.WithLogger(logger))
	require.NoError(t, err)

	got, ok := table.Apply(".x", "package main")
	require.True(t, ok)
	assert.Equal(t, filetype.Go, got)
	assert.Contains(t, buf.String(), "Ignoring malformed negative pattern")
	assert.Contains(t, buf.String(), "(broken")
}

func TestLoadRulesetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRuleset), 0o644))

	table, err := heuristics.LoadRulesetFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	_, err = heuristics.LoadRulesetFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, heuristics.ErrInvalidRuleset)
}
