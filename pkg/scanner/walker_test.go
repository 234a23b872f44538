package scanner_test

import (
	"context"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/ftdetect/internal/testutil"
	"github.com/stackvity/ftdetect/pkg/scanner"
)

type walkResult struct {
	dispatched []string
	skipped    map[string]string // path -> reason
	hooks      *testutil.RecordingHooks
	err        error
}

func walkerOptions(t *testing.T, root string) *scanner.Options {
	t.Helper()
	opts := scanner.DefaultOptions()
	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)
	opts.InputPath = absRoot
	handler, _ := testutil.BufferHandler(t)
	opts.Logger = handler
	return &opts
}

func runWalker(t *testing.T, ctx context.Context, opts *scanner.Options) walkResult {
	t.Helper()
	res := walkResult{skipped: map[string]string{}, hooks: &testutil.RecordingHooks{}}
	opts.EventHooks = res.hooks

	walker, err := scanner.NewWalker(opts, func(info scanner.SkippedInfo) {
		res.skipped[info.Path] = info.Reason
	}, opts.Logger)
	require.NoError(t, err)

	jobs := make(chan scanner.FileJob, 100)
	res.err = walker.StartWalk(ctx, jobs)
	for job := range jobs {
		assert.True(t, filepath.IsAbs(job.AbsPath), "job path should be absolute: %s", job.AbsPath)
		res.dispatched = append(res.dispatched, job.RelPath)
	}
	slices.Sort(res.dispatched)
	return res
}

func TestWalkerDefaultSkipRules(t *testing.T) {
	root := t.TempDir()
	testutil.CreateTree(t, root, map[string]string{
		"main.go":                     "package main",
		"src/lib.rs":                  "fn main() {}",
		".env":                        "KEY=1",
		".hidden/inner.go":            "package hidden",
		"vendor/dep/dep.go":           "package dep",
		"node_modules/pkg/index.js":   "module.exports = {}",
		".git/config":                 "[core]",
		"src/nested/deeper/script.py": "print('x')",
	})

	res := runWalker(t, context.Background(), walkerOptions(t, root))
	require.NoError(t, res.err)

	assert.Equal(t, []string{"main.go", "src/lib.rs", "src/nested/deeper/script.py"}, res.dispatched)
	assert.Equal(t, map[string]string{
		".env":         scanner.SkipReasonHidden,
		".hidden":      scanner.SkipReasonHidden,
		"vendor":       scanner.SkipReasonVendored,
		"node_modules": scanner.SkipReasonVendored,
	}, res.skipped)

	assert.NotContains(t, res.hooks.Discovered, ".git", ".git is skipped without being reported")
	assert.Contains(t, res.hooks.Discovered, "main.go")
	status, ok := res.hooks.LastStatus("vendor")
	require.True(t, ok)
	assert.Equal(t, scanner.StatusSkipped, status)
}

func TestWalkerIncludeHiddenAndVendored(t *testing.T) {
	root := t.TempDir()
	testutil.CreateTree(t, root, map[string]string{
		".env":              "KEY=1",
		".git/HEAD":         "ref: refs/heads/main",
		"vendor/dep/dep.go": "package dep",
	})

	opts := walkerOptions(t, root)
	opts.IncludeHidden = true
	opts.SkipVendored = false
	res := runWalker(t, context.Background(), opts)
	require.NoError(t, res.err)

	assert.Equal(t, []string{".env", "vendor/dep/dep.go"}, res.dispatched)
	assert.Empty(t, res.skipped)
}

func TestWalkerIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	testutil.CreateTree(t, root, map[string]string{
		scanner.IgnoreFileName: "# comment\n*.log\n!keep.log\n",
		"app.log":              "x",
		"keep.log":             "x",
		"build/out.go":         "package out",
		"src/build.go":         "package src",
		"src/gen/a.pb.go":      "package gen",
	})

	opts := walkerOptions(t, root)
	opts.IncludeHidden = true // the ignore file itself is then dispatched
	opts.IgnorePatterns = []string{"build/", "*.pb.go"}
	res := runWalker(t, context.Background(), opts)
	require.NoError(t, res.err)

	assert.Equal(t, []string{scanner.IgnoreFileName, "keep.log", "src/build.go"}, res.dispatched)
	assert.Equal(t, map[string]string{
		"app.log":         scanner.SkipReasonIgnored,
		"build":           scanner.SkipReasonIgnored,
		"src/gen/a.pb.go": scanner.SkipReasonIgnored,
	}, res.skipped)
}

func TestWalkerGitignore(t *testing.T) {
	root := t.TempDir()
	testutil.CreateTree(t, root, map[string]string{
		".gitignore":     "*.tmp\n/out\n",
		"a.tmp":          "x",
		"out/x.go":       "package x",
		"local.txt":      "x",
		"sub/.gitignore": "local.txt\n",
		"sub/local.txt":  "x",
		"sub/ok.go":      "package sub",
		"sub/out/y.go":   "package y",
	})

	t.Run("respected", func(t *testing.T) {
		res := runWalker(t, context.Background(), walkerOptions(t, root))
		require.NoError(t, res.err)
		assert.Equal(t, []string{"local.txt", "sub/ok.go", "sub/out/y.go"}, res.dispatched)
		assert.Equal(t, scanner.SkipReasonGitignore, res.skipped["a.tmp"])
		assert.Equal(t, scanner.SkipReasonGitignore, res.skipped["out"])
		assert.Equal(t, scanner.SkipReasonGitignore, res.skipped["sub/local.txt"])
	})

	t.Run("disabled", func(t *testing.T) {
		opts := walkerOptions(t, root)
		opts.RespectGitignore = false
		res := runWalker(t, context.Background(), opts)
		require.NoError(t, res.err)
		assert.Equal(t, []string{"a.tmp", "local.txt", "out/x.go", "sub/local.txt", "sub/ok.go", "sub/out/y.go"}, res.dispatched)
	})
}

func TestWalkerGitDiffFilter(t *testing.T) {
	root := t.TempDir()
	testutil.CreateTree(t, root, map[string]string{
		"changed.go":     "package a",
		"unchanged.go":   "package a",
		"pkg/changed.rs": "fn main() {}",
	})

	opts := walkerOptions(t, root)
	opts.GitDiffMode = scanner.GitDiffModeDiffOnly
	opts.GitChangedFiles = map[string]struct{}{"changed.go": {}, "pkg/changed.rs": {}}
	res := runWalker(t, context.Background(), opts)
	require.NoError(t, res.err)

	assert.Equal(t, []string{"changed.go", "pkg/changed.rs"}, res.dispatched)
	assert.Equal(t, map[string]string{"unchanged.go": scanner.SkipReasonGitExclude}, res.skipped)

	t.Run("nil changed set excludes everything", func(t *testing.T) {
		opts := walkerOptions(t, root)
		opts.GitDiffMode = scanner.GitDiffModeSince
		res := runWalker(t, context.Background(), opts)
		require.NoError(t, res.err)
		assert.Empty(t, res.dispatched)
		assert.Len(t, res.skipped, 3)
	})
}

func TestWalkerSingleFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "main.rs")
	testutil.CreateDummyFile(t, file, "fn main() {}")

	res := runWalker(t, context.Background(), walkerOptions(t, file))
	require.NoError(t, res.err)
	assert.Equal(t, []string{"main.rs"}, res.dispatched)
	assert.Equal(t, []string{"main.rs"}, res.hooks.Discovered)
}

func TestWalkerErrors(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		opts := walkerOptions(t, filepath.Join(t.TempDir(), "missing"))
		res := runWalker(t, context.Background(), opts)
		require.Error(t, res.err)
		assert.ErrorIs(t, res.err, scanner.ErrStatFailed)
		assert.Empty(t, res.dispatched)
	})

	t.Run("cancelled context", func(t *testing.T) {
		root := t.TempDir()
		testutil.CreateDummyFile(t, filepath.Join(root, "a.go"), "package a")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res := runWalker(t, ctx, walkerOptions(t, root))
		assert.ErrorIs(t, res.err, context.Canceled)
		assert.Empty(t, res.dispatched)
	})
}
