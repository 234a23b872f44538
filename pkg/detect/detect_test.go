package detect_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/ftdetect/pkg/detect"
	"github.com/stackvity/ftdetect/pkg/detect/classifier"
	"github.com/stackvity/ftdetect/pkg/detect/heuristics"
	"github.com/stackvity/ftdetect/pkg/filetype"
)

func TestExplain(t *testing.T) {
	testCases := []struct {
		name    string
		path    string
		content string
		want    filetype.FileType
		stage   detect.Stage
	}{
		{"absolute path suffix", "/etc/zprofile", "", filetype.Zsh, detect.StagePathSuffix},
		{"dot directory suffix", ".cargo/config", "", filetype.Toml, detect.StagePathSuffix},
		{"nested dot directory suffix", "/home/u/.cargo/config", "", filetype.Toml, detect.StagePathSuffix},
		{"i3 config", "/home/u/.config/i3/config", "", filetype.Sh, detect.StagePathSuffix},
		{"bare i3 config", "i3/config", "", filetype.Sh, detect.StagePathSuffix},
		{"dotfile name", ".prettierrc", "", filetype.Json, detect.StageFilename},
		{"exact file name", "CMakeLists.txt", "", filetype.CMake, detect.StageFilename},
		{"env shebang", "script", "#!/usr/bin/env bash\necho hi\n", filetype.Bash, detect.StageShebang},
		{"versioned env shebang", "run", "#!/usr/bin/env python3.11\nprint(1)\n", filetype.Python, detect.StageShebang},
		{"versioned shebang", "run", "#!/usr/bin/python3\n", filetype.Python, detect.StageShebang},
		{"plain shebang", "run", "#!/usr/bin/python\n", filetype.Python, detect.StageShebang},
		{"compound extension", "types/index.d.ts", "", filetype.TypeScript, detect.StageCompoundExtension},
		{"header cpp", "test.h", "#include <vector>\ntemplate <typename T> class X {};\n", filetype.Cpp, detect.StageEarly},
		{"header c", "test.h", "random text", filetype.C, detect.StageEarly},
		{"ts source", "main.ts", "export const answer: number = 42;\n", filetype.TypeScript, detect.StageHeuristics},
		{"ts qt translation", "app.ts", `<TS version="2.1" language="en_US"></TS>`, filetype.Xml, detect.StageHeuristics},
		{"scheme by extension", "highlights.scm", "", filetype.Scheme, detect.StageExtension},
		{"query by path pattern", "a/b/c/queries/highlights.scm", "", filetype.TreeSitterQuery, detect.StagePattern},
		{"rust by extension", "main.rs", "", filetype.Rust, detect.StageExtension},
		{"backup file", "foo.c.bak", "", filetype.C, detect.StageExtension},
		{"editor backup", "notes.md~", "", filetype.Markdown, detect.StagePattern},
		{"single dot compound extension", "views/blade.php", "", filetype.Blade, detect.StageCompoundExtension},
		{"pyinstaller spec", "app.spec", "a = Analysis(['main.py'])\n", filetype.Python, detect.StageEarly},
		{"rspec spec", "user.spec", "require 'spec_helper'\ndescribe User do\nend\n", filetype.Ruby, detect.StageEarly},
		{"terra test", "lib.t", "terra add(a: int, b: int): int\n  return a + b\nend\n", filetype.Terra, detect.StageEarly},
		{"raku test", "basic.t", "use v6;\nsay 'hi';\n", filetype.Raku, detect.StageEarly},
		{"kicad schematic", "board.sch", "EESchema Schematic File Version 4\n", filetype.EeschemaSchematic, detect.StageLate},
		{"limbo module", "hello.b", "implement Hello;\n", filetype.Limbo, detect.StageLate},
		{"mathematica notebook", "calc.nb", "(* Content-type: application/vnd.wolfram.mathematica *)\n", filetype.Mma, detect.StageLate},
		{"plain nb", "notes.nb", "just some notes\n", filetype.Text, detect.StageLate},
		{"macos command", "run.command", "echo hi\n", filetype.Sh, detect.StageLate},
		{"plsql spec", "pkg.pks", "", filetype.Plsql, detect.StageLate},
		{"nginx vhost", "site.vhost", "server {\n  listen 80;\n}\n", filetype.Nginx, detect.StageLate},
		{"automake before make", "Makefile.am", "", filetype.Automake, detect.StagePattern},
		{"make with suffix", "Makefile.linux", "", filetype.Make, detect.StagePattern},
		{"extension before low pattern", "/etc/foo/run.py", "", filetype.Python, detect.StageExtension},
		{"low pattern", "/etc/someconf", "", filetype.Conf, detect.StagePatternLow},
		{"exec scala wrapper", "wrapper", "#!/bin/sh\nexec scala \"$0\" \"$@\"\n!#\n", filetype.Scala, detect.StageShebang},
		{"exec wish wrapper", "gui", "#!/bin/sh\nexec wish \"$0\" \"$@\"\n", filetype.Tcl, detect.StageShebang},
		{"exec wish in continued comment", "gui", "#!/bin/sh\n# restart with wish \\\nexec wish \"$0\" \"$@\"\n", filetype.Sh, detect.StageShebang},
		{"classifier", "unknown.zzz", "fn main() { let mut x = 1; }", filetype.Rust, detect.StageClassifier},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, stage, ok := detect.Explain(tc.path, tc.content)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.stage, stage, "decided by %s", stage)
		})
	}
}

func TestExplainLongSingleLine(t *testing.T) {
	content := strings.Repeat("QUJDRA==", detect.DefaultMaxContentBytes/8)

	start := time.Now()
	_, _, _ = detect.Explain("data/blob.d", content)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNoVerdict(t *testing.T) {
	got, stage, ok := detect.Explain("unknown.zzz", "")
	assert.False(t, ok)
	assert.Equal(t, filetype.Text, got)
	assert.Equal(t, detect.StageNone, stage)

	_, ok = detect.TryDetect("unknown.zzz", "")
	assert.False(t, ok)
	assert.Equal(t, filetype.Text, detect.Detect("unknown.zzz", ""))
}

func TestRetryTerminates(t *testing.T) {
	for _, p := range []string{"a.bak.bak~", "~", ".bak", "x~~~~", "dir/.bak~", "a.bak.bak.bak.bak"} {
		assert.NotPanics(t, func() { detect.Detect(p, "") }, p)
	}
	_, ok := detect.TryDetect("a.bak.bak~", "")
	assert.False(t, ok)
}

func TestStagePrecedence(t *testing.T) {
	ft, stage, ok := detect.Explain("/repo/.git/config", "#!/usr/bin/env python\n")
	require.True(t, ok)
	assert.Equal(t, filetype.GitConfig, ft)
	assert.Equal(t, detect.StagePathSuffix, stage)

	ft, stage, ok = detect.Explain("run.py", "#!/bin/bash\necho hi\n")
	require.True(t, ok)
	assert.Equal(t, filetype.Bash, ft)
	assert.Equal(t, detect.StageShebang, stage)
}

func TestInvalidUTF8Path(t *testing.T) {
	ft, stage, ok := detect.Explain("bad\xff.rs", "#!/bin/sh\n")
	require.True(t, ok)
	assert.Equal(t, filetype.Sh, ft)
	assert.Equal(t, detect.StageShebang, stage)

	_, ok = detect.TryDetect("bad\xff.rs", "")
	assert.False(t, ok)
}

func TestDeterministicAndConcurrent(t *testing.T) {
	inputs := []struct{ path, content string }{
		{"main.ts", "let x = 1"},
		{"test.h", "class Foo {};"},
		{"x.pl", "use strict;"},
		{"unknown.zzz", "def f(): import os"},
	}
	want := make([]filetype.FileType, len(inputs))
	for i, in := range inputs {
		want[i] = detect.Detect(in.path, in.content)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				assert.Equal(t, want[i], detect.Detect(in.path, in.content))
			}
		}()
	}
	wg.Wait()
}

func TestWithOverrides(t *testing.T) {
	d := detect.New(detect.WithOverrides(map[string]filetype.FileType{
		".RS": filetype.Python,
		"c":   filetype.Cpp,
		"":    filetype.Lua,
	}))

	ft, stage, ok := d.Explain("src/main.rs", "")
	require.True(t, ok)
	assert.Equal(t, filetype.Python, ft)
	assert.Equal(t, detect.StageOverride, stage)

	assert.Equal(t, filetype.Cpp, d.Detect("foo.c.bak", ""), "retry goes through the same detector")
	assert.Equal(t, filetype.C, detect.Detect("foo.c.bak", ""))
	assert.Equal(t, filetype.Json, d.Detect(".prettierrc", ""))
}

func TestWithOverridesAfterPathSuffix(t *testing.T) {
	d := detect.New(detect.WithOverrides(map[string]filetype.FileType{"conf": filetype.Json}))

	ft, stage, ok := d.Explain("/etc/locale.conf", "")
	require.True(t, ok)
	assert.Equal(t, filetype.Sh, ft)
	assert.Equal(t, detect.StagePathSuffix, stage)

	ft, stage, ok = d.Explain("/srv/app.conf", "")
	require.True(t, ok)
	assert.Equal(t, filetype.Json, ft)
	assert.Equal(t, detect.StageOverride, stage)
}

func TestWithRuleset(t *testing.T) {
	rules, err := heuristics.LoadRuleset(strings.NewReader(`
disambiguations:
  - extensions: [.rs, .zzz]
    rules:
      - language: Lisp
        pattern: '^\('
`))
	require.NoError(t, err)
	d := detect.New(detect.WithRuleset(rules))

	ft, stage, ok := d.Explain("lib.rs", "(defun x ())")
	require.True(t, ok)
	assert.Equal(t, filetype.Lisp, ft)
	assert.Equal(t, detect.StageHeuristics, stage)

	assert.Equal(t, filetype.Lisp, d.Detect("x.zzz", "(a b)"))
	assert.Equal(t, filetype.Rust, d.Detect("lib.rs", "fn main() {}"))
	assert.Equal(t, filetype.Rust, detect.Detect("lib.rs", "(defun x ())"))
}

func TestWithClassifier(t *testing.T) {
	content := "fn main() { let mut x = 1; }"

	d := detect.New(detect.WithClassifier(nil))
	_, ok := d.TryDetect("unknown.zzz", content)
	assert.False(t, ok)

	model := classifier.NewModel(map[filetype.FileType]classifier.Keywords{
		filetype.Lua: {Weight: 1, Tokens: []string{"fn"}},
	})
	d = detect.New(detect.WithClassifier(model))
	assert.Equal(t, filetype.Lua, d.Detect("unknown.zzz", content))
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "path-suffix", detect.StagePathSuffix.String())
	assert.Equal(t, "compound-extension", detect.StageCompoundExtension.String())
	assert.Equal(t, "pattern-low", detect.StagePatternLow.String())
	assert.Equal(t, "none", detect.StageNone.String())
	assert.Equal(t, "unknown", detect.Stage(99).String())
}

func TestInterpreter(t *testing.T) {
	testCases := []struct {
		content string
		want    string
		ok      bool
	}{
		{"#!/usr/bin/env python3.11\n", "python", true},
		{"#!/usr/bin/python3\n", "python", true},
		{"#! /bin/bash -e\n", "bash", true},
		{"#!/usr/bin/env -S node --harmony\n", "node", true},
		{"#!/usr/bin/env FOO=1 ruby\n", "ruby", true},
		{"#!/usr/bin/env\n", "", false},
		{"#!\n", "", false},
		{"echo hi\n#!/bin/sh\n", "", false},
		{"", "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.content, func(t *testing.T) {
			got, ok := detect.Interpreter(tc.content)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
