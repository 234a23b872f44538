package scanner_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/stackvity/ftdetect/internal/testutil"
	"github.com/stackvity/ftdetect/pkg/filetype"
	"github.com/stackvity/ftdetect/pkg/scanner"
	"github.com/stackvity/ftdetect/pkg/scanner/cache"
	"github.com/stackvity/ftdetect/pkg/scanner/git"
)

func scanOptions(t *testing.T, root string) scanner.Options {
	t.Helper()
	opts := scanner.DefaultOptions()
	opts.InputPath = root
	opts.CacheEnabled = false
	opts.Concurrency = 4
	handler, _ := testutil.BufferHandler(t)
	opts.Logger = handler
	return opts
}

func sampleTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testutil.CreateTree(t, root, map[string]string{
		"main.go":           "package main\n\nfunc main() {}\n",
		"internal/util.go":  "package internal\n",
		"src/main.rs":       "fn main() {}\n",
		"tools/gen.py":      "print('hello')\n",
		"empty.zzz":         "",
		"logo.png":          pngHeader,
		"vendor/dep/dep.go": "package dep\n",
	})
	return root
}

func TestScanTree(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := sampleTree(t)
	hooks := &testutil.RecordingHooks{}
	opts := scanOptions(t, root)
	opts.EventHooks = hooks

	report, err := scanner.Scan(context.Background(), opts)
	require.NoError(t, err)

	paths := make([]string, 0, len(report.Files))
	for _, f := range report.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"empty.zzz", "internal/util.go", "main.go", "src/main.rs", "tools/gen.py"}, paths)

	s := report.Summary
	assert.Equal(t, root, s.InputPath)
	assert.Equal(t, string(scanner.EngineFtdetect), s.Engine)
	assert.Equal(t, 4, s.DetectedCount)
	assert.Equal(t, 1, s.UndetectedCount)
	assert.Equal(t, 2, s.SkippedCount)
	assert.Equal(t, 0, s.ErrorCount)
	assert.Equal(t, 6, s.TotalFilesScanned, "five files plus the binary skip pass through the workers")
	assert.False(t, s.FatalErrorOccurred)
	assert.False(t, s.CacheEnabled)
	assert.Equal(t, scanner.ReportSchemaVersion, s.SchemaVersion)

	require.Len(t, report.Breakdown, 3)
	assert.Equal(t, filetype.Go, report.Breakdown[0].Type)
	assert.Equal(t, 2, report.Breakdown[0].Files)
	assert.InDelta(t, 50.0, report.Breakdown[0].Percentage, 1e-9)
	assert.Equal(t, []string{"internal/util.go", "main.go"}, report.Breakdown[0].Paths)
	assert.Equal(t, filetype.Python, report.Breakdown[1].Type)
	assert.Equal(t, filetype.Rust, report.Breakdown[2].Type)

	skipped := map[string]string{}
	for _, s := range report.Skipped {
		skipped[s.Path] = s.Reason
	}
	assert.Equal(t, map[string]string{
		"logo.png": scanner.SkipReasonBinary,
		"vendor":   scanner.SkipReasonVendored,
	}, skipped)

	require.Len(t, hooks.Reports, 1)
	assert.Equal(t, report.Summary.DetectedCount, hooks.Reports[0].Summary.DetectedCount)
	status, ok := hooks.LastStatus("main.go")
	require.True(t, ok)
	assert.Equal(t, scanner.StatusSuccess, status)
}

func TestScanSingleFile(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	file := filepath.Join(root, "CMakeLists.txt")
	testutil.CreateDummyFile(t, file, "project(x)\n")

	report, err := scanner.Scan(context.Background(), scanOptions(t, file))
	require.NoError(t, err)
	require.Len(t, report.Files, 1)
	assert.Equal(t, "CMakeLists.txt", report.Files[0].Path)
	assert.Equal(t, filetype.CMake, report.Files[0].Type)
}

func TestScanEnryEngine(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	testutil.CreateTree(t, root, map[string]string{
		"main.go":  "package main\n",
		"Makefile": "all:\n\techo hi\n",
	})
	opts := scanOptions(t, root)
	opts.Engine = scanner.EngineEnry

	report, err := scanner.Scan(context.Background(), opts)
	require.NoError(t, err)
	types := map[string]filetype.FileType{}
	for _, f := range report.Files {
		types[f.Path] = f.Type
	}
	assert.Equal(t, filetype.Go, types["main.go"])
	assert.Equal(t, filetype.Make, types["Makefile"])
}

func TestScanLanguageMappings(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	testutil.CreateDummyFile(t, filepath.Join(root, "job.tmpl"), "{{ .Name }}\n")
	opts := scanOptions(t, root)
	opts.LanguageMappings = map[string]string{".tmpl": "Go"}

	report, err := scanner.Scan(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, report.Files, 1)
	assert.Equal(t, filetype.Go, report.Files[0].Type)
	assert.InDelta(t, 1.0, report.Files[0].Confidence, 1e-9)
}

func TestScanCacheRoundTrip(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := sampleTree(t)
	cacheFile := filepath.Join(t.TempDir(), "scan.cache")
	for _, format := range []string{cache.FormatGob, cache.FormatJSON} {
		t.Run(format, func(t *testing.T) {
			opts := scanOptions(t, root)
			opts.CacheEnabled = true
			opts.CacheFilePath = cacheFile
			opts.CacheFormat = format
			opts.ClearCache = true
			opts.AppVersion = "1.2.3"

			first, err := scanner.Scan(context.Background(), opts)
			require.NoError(t, err)
			assert.Zero(t, first.Summary.CachedCount)
			assert.FileExists(t, cacheFile)

			opts.ClearCache = false
			second, err := scanner.Scan(context.Background(), opts)
			require.NoError(t, err)
			assert.Equal(t, len(second.Files), second.Summary.CachedCount)
			assert.Equal(t, first.Breakdown, second.Breakdown)

			opts.IgnoreCacheRead = true
			third, err := scanner.Scan(context.Background(), opts)
			require.NoError(t, err)
			assert.Zero(t, third.Summary.CachedCount)
		})
	}
}

func TestScanStopOnError(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := sampleTree(t)
	opts := scanOptions(t, root)
	opts.OnErrorMode = scanner.OnErrorStop
	opts.BinaryMode = scanner.BinaryError

	report, err := scanner.Scan(context.Background(), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, scanner.ErrBinaryFile)
	assert.Contains(t, err.Error(), "logo.png")
	assert.True(t, report.Summary.FatalErrorOccurred)
	require.NotEmpty(t, report.Errors)
	assert.True(t, report.Errors[0].IsFatal)
}

func TestScanContinueOnError(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := sampleTree(t)
	opts := scanOptions(t, root)
	opts.BinaryMode = scanner.BinaryError

	report, err := scanner.Scan(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.ErrorCount)
	assert.Equal(t, "logo.png", report.Errors[0].Path)
	assert.False(t, report.Errors[0].IsFatal)
	assert.Len(t, report.Files, 5)
}

func TestScanCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := scanner.Scan(ctx, scanOptions(t, sampleTree(t)))
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, report.Summary.FatalErrorOccurred)
}

func TestScanGitDiff(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := sampleTree(t)
	client := &testutil.MockGitClient{}
	client.On("GetChangedFiles", root, git.ModeSince, "v1.0").Return([]string{"src/main.rs", "deleted.go"}, nil).Once()

	opts := scanOptions(t, root)
	opts.GitDiffMode = scanner.GitDiffModeSince
	opts.GitConfig.SinceRef = "v1.0"
	opts.GitClient = client

	report, err := scanner.Scan(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, report.Files, 1)
	assert.Equal(t, "src/main.rs", report.Files[0].Path)
	client.AssertExpectations(t)
}

func TestScanConfigurationErrors(t *testing.T) {
	root := sampleTree(t)
	failingGit := &testutil.MockGitClient{}
	failingGit.On("GetChangedFiles", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, git.Errorf("not a repository"))

	testCases := []struct {
		name    string
		modify  func(o *scanner.Options)
		wantErr error
	}{
		{"nil logger", func(o *scanner.Options) { o.Logger = nil }, scanner.ErrConfigValidation},
		{"empty input", func(o *scanner.Options) { o.InputPath = "" }, scanner.ErrConfigValidation},
		{"missing input", func(o *scanner.Options) { o.InputPath = filepath.Join(root, "nope") }, scanner.ErrConfigValidation},
		{"negative concurrency", func(o *scanner.Options) { o.Concurrency = -1 }, scanner.ErrConfigValidation},
		{"negative max bytes", func(o *scanner.Options) { o.MaxContentBytes = -1 }, scanner.ErrConfigValidation},
		{"unknown engine", func(o *scanner.Options) { o.Engine = "magic" }, scanner.ErrConfigValidation},
		{"unknown mapping", func(o *scanner.Options) { o.LanguageMappings = map[string]string{".x": "klingon"} }, scanner.ErrConfigValidation},
		{"unknown enry mapping", func(o *scanner.Options) {
			o.Engine = scanner.EngineEnry
			o.LanguageMappings = map[string]string{".x": "klingon"}
		}, scanner.ErrConfigValidation},
		{"missing ruleset", func(o *scanner.Options) { o.RulesetFile = filepath.Join(root, "rules.yaml") }, scanner.ErrRulesetLoad},
		{"git mode without client", func(o *scanner.Options) { o.GitDiffMode = scanner.GitDiffModeDiffOnly }, scanner.ErrConfigValidation},
		{"git client failure", func(o *scanner.Options) {
			o.GitDiffMode = scanner.GitDiffModeDiffOnly
			o.GitClient = failingGit
		}, git.ErrGitOperation},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := scanOptions(t, root)
			tc.modify(&opts)
			_, err := scanner.Scan(context.Background(), opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "want %v, got %v", tc.wantErr, err)
		})
	}
}

func TestNewEngineRequiresDependencies(t *testing.T) {
	opts := scanOptions(t, t.TempDir())
	_, err := scanner.NewEngine(opts)
	assert.ErrorIs(t, err, scanner.ErrConfigValidation)

	opts.Logger = nil
	_, err = scanner.NewEngine(opts)
	assert.ErrorIs(t, err, scanner.ErrConfigValidation)
}

func TestDefaultCacheFilePath(t *testing.T) {
	a := scanner.DefaultCacheFilePath("/work/a")
	b := scanner.DefaultCacheFilePath("/work/b")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, scanner.DefaultCacheFilePath("/work/a"))
	assert.Equal(t, ".cache", filepath.Ext(a))
}
