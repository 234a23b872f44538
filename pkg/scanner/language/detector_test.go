package language_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/ftdetect/pkg/detect"
	"github.com/stackvity/ftdetect/pkg/filetype"
	"github.com/stackvity/ftdetect/pkg/scanner/language"
)

func TestStageConfidence(t *testing.T) {
	testCases := []struct {
		stage detect.Stage
		want  float64
	}{
		{detect.StageOverride, 1.0},
		{detect.StagePathSuffix, 1.0},
		{detect.StageShebang, 1.0},
		{detect.StageFilename, 1.0},
		{detect.StageCompoundExtension, 0.9},
		{detect.StageExtension, 0.9},
		{detect.StageEarly, 0.8},
		{detect.StageHeuristics, 0.8},
		{detect.StageLate, 0.8},
		{detect.StagePattern, 0.7},
		{detect.StagePatternLow, 0.5},
		{detect.StageClassifier, 0.3},
		{detect.StageNone, 0},
		{detect.Stage(99), 0},
	}
	for _, tc := range testCases {
		t.Run(tc.stage.String(), func(t *testing.T) {
			assert.InDelta(t, tc.want, language.StageConfidence(tc.stage), 1e-9)
		})
	}
}

func TestFileTypeDetector(t *testing.T) {
	detector := language.NewFileTypeDetector(nil)

	testCases := []struct {
		name       string
		path       string
		content    string
		want       string
		confidence float64
	}{
		{"extension", "/src/main.rs", "", "rust", 0.9},
		{"rust heuristics", "/src/lib.rs", "fn main() {}", "rust", 0.8},
		{"path suffix", "/home/u/.config/i3/config", "", "sh", 1.0},
		{"shebang", "/bin/script", "#!/usr/bin/env bash\necho hi\n", "bash", 1.0},
		{"filename", "/proj/CMakeLists.txt", "", "cmake", 1.0},
		{"early disambiguation", "/proj/test.h", "#include <vector>\ntemplate <typename T> class X {};\n", "cpp", 0.8},
		{"heuristics", "/proj/app.ts", `<TS version="2.1" language="en_US"></TS>`, "xml", 0.8},
		{"pattern", "/proj/queries/highlights.scm", "", "query", 0.7},
		{"classifier", "/proj/unknown.zzz", "fn main() { let mut x = 1; }", "rust", 0.3},
		{"undetected", "/proj/unknown.zzz", "", "text", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lang, confidence, err := detector.Detect([]byte(tc.content), tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, lang)
			assert.InDelta(t, tc.confidence, confidence, 1e-9)
		})
	}
}

func TestFileTypeDetectorOverrides(t *testing.T) {
	d := detect.New(detect.WithOverrides(map[string]filetype.FileType{".py": filetype.Ruby}))
	lang, confidence, err := language.NewFileTypeDetector(d).Detect([]byte("print('hi')"), "script.py")
	require.NoError(t, err)
	assert.Equal(t, "ruby", lang)
	assert.InDelta(t, 1.0, confidence, 1e-9)
}

func TestEnryDetectorOverrides(t *testing.T) {
	detector := language.NewEnryDetector(map[string]string{
		".foo":   "Rust",
		"BAR":    "C++",
		".vimx":  "Vim Script",
		"":       "python",
		".empty": "",
		".nope":  "no-such-language",
	})

	testCases := []struct {
		name       string
		path       string
		want       string
		confidence float64
	}{
		{"dot key", "lib.foo", "rust", 1.0},
		{"key without dot, upper case extension", "file.BAR", "cpp", 1.0},
		{"linguist name with space", "plugin.vimx", "vim", 1.0},
		{"unknown override name", "x.nope", "text", 1.0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lang, confidence, err := detector.Detect([]byte("content"), tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, lang)
			assert.InDelta(t, tc.confidence, confidence, 1e-9)
		})
	}

	lang, _, err := detector.Detect([]byte(""), "x.empty")
	require.NoError(t, err)
	assert.Equal(t, "text", lang, "empty override values are ignored")
}

func TestEnryDetector(t *testing.T) {
	detector := language.NewEnryDetector(nil)

	testCases := []struct {
		name          string
		path          string
		content       string
		want          string
		minConfidence float64
	}{
		{"go source", "cmd/main.go", "package main\n\nfunc main() {}\n", "go", 0.8},
		{"dockerfile", "Dockerfile", "FROM golang:1.23\nRUN go build ./...\n", "dockerfile", 0.5},
		{"makefile", "Makefile", "build:\n\tgo build .\n", "make", 0.5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lang, confidence, err := detector.Detect([]byte(tc.content), tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, lang)
			assert.GreaterOrEqual(t, confidence, tc.minConfidence)
		})
	}

	lang, confidence, err := detector.Detect(nil, "main.go")
	require.NoError(t, err)
	assert.Equal(t, "text", lang)
	assert.Zero(t, confidence)
}
