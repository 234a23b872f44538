package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/ftdetect/internal/cli"
	"github.com/stackvity/ftdetect/internal/testutil"
	"github.com/stackvity/ftdetect/pkg/scanner"
)

func newOptions(t *testing.T, files map[string]string) scanner.Options {
	t.Helper()
	root := t.TempDir()
	testutil.CreateTree(t, root, files)
	opts := scanner.DefaultOptions()
	opts.InputPath = root
	opts.Logger = testutil.DiscardHandler()
	opts.CacheEnabled = false
	opts.AppVersion = "test"
	return opts
}

func run(t *testing.T, opts scanner.Options) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := cli.Run(context.Background(), opts, testutil.DiscardLogger(), cli.Streams{Stdout: &stdout, Stderr: &stderr}, cli.RunOptions{})
	return stdout.String(), stderr.String(), err
}

func TestRun_Text(t *testing.T) {
	opts := newOptions(t, map[string]string{
		"main.go":    "package main\n",
		"tools/x.py": "print(1)\n",
		"empty.zzz":  "",
	})
	opts.Breakdown = true

	stdout, stderr, err := run(t, opts)
	require.NoError(t, err)
	assert.Equal(t, "50.00% go\n50.00% python\n\ngo (1)\nmain.go\n\npython (1)\ntools/x.py\n\n", stdout)
	assert.Contains(t, stderr, "Scanned 3 files")
	assert.Contains(t, stderr, "2 detected, 1 undetected")
}

func TestRun_JSON(t *testing.T) {
	opts := newOptions(t, map[string]string{
		"a.go": "package a\n",
		"b.go": "package b\n",
		"c.rs": "fn main() {}\n",
	})
	opts.OutputFormat = scanner.OutputFormatJSON
	opts.Filter = []string{"^rust$"}

	stdout, stderr, err := run(t, opts)
	require.NoError(t, err)
	assert.Empty(t, stderr, "no summary line outside text output")

	var report scanner.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, 3, report.Summary.DetectedCount)
	require.Len(t, report.Breakdown, 1)
	assert.Equal(t, "rust", report.Breakdown[0].Type.String())
	assert.Len(t, report.Files, 3)
}

// pngBytes sniffs as image/png.
const pngBytes = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01"

func TestRun_StopOnBinary(t *testing.T) {
	opts := newOptions(t, map[string]string{
		"a.go":    "package a\n",
		"bin.dat": pngBytes,
	})
	opts.BinaryMode = scanner.BinaryError
	opts.OnErrorMode = scanner.OnErrorStop
	opts.Concurrency = 1

	_, stderr, err := run(t, opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, scanner.ErrBinaryFile)
	assert.Contains(t, stderr, "(stopped early)")
}

func TestRun_ContinueOnBinaryError(t *testing.T) {
	opts := newOptions(t, map[string]string{
		"a.go":    "package a\n",
		"bin.dat": pngBytes,
	})
	opts.BinaryMode = scanner.BinaryError

	stdout, _, err := run(t, opts)
	require.NoError(t, err)
	assert.Equal(t, "100.00% go\n", stdout)
}

func TestRun_ConfigurationError(t *testing.T) {
	opts := newOptions(t, nil)
	opts.InputPath = filepath.Join(opts.InputPath, "missing")

	stdout, _, err := run(t, opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, scanner.ErrConfigValidation)
	assert.Empty(t, stdout)
}

func TestRun_WatchMode(t *testing.T) {
	opts := newOptions(t, map[string]string{"main.go": "package main\n"})
	opts.WatchMode = true
	opts.WatchDebounce = 50 * time.Millisecond

	stdout := &testutil.LogBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- cli.Run(ctx, opts, testutil.DiscardLogger(), cli.Streams{Stdout: stdout, Stderr: &testutil.LogBuffer{}}, cli.RunOptions{})
	}()

	require.Eventually(t, func() bool { return strings.Contains(stdout.String(), "100.00% go") }, 5*time.Second, 20*time.Millisecond)

	testutil.CreateDummyFile(t, filepath.Join(opts.InputPath, "lib.rs"), "fn main() {}\n")
	require.Eventually(t, func() bool { return strings.Contains(stdout.String(), "50.00% rust") }, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch mode did not stop after cancellation")
	}
}
