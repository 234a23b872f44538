package heuristics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/ftdetect/pkg/detect/heuristics"
	"github.com/stackvity/ftdetect/pkg/detect/pattern"
	"github.com/stackvity/ftdetect/pkg/filetype"
)

func TestTableApplyFirstMatchWins(t *testing.T) {
	table, err := heuristics.NewTable(map[string][]heuristics.Rule{
		"foo": {
			{Languages: []filetype.FileType{filetype.Lisp}, Pattern: pattern.Positive(`^\(`)},
			{Languages: []filetype.FileType{filetype.Python}, Pattern: pattern.Positive(`def `)},
			{Languages: []filetype.FileType{filetype.Ruby}},
		},
	})
	require.NoError(t, err)

	testCases := []struct {
		name    string
		content string
		want    filetype.FileType
	}{
		{"first rule", "(defun x ())\ndef y", filetype.Lisp},
		{"second rule", "x = 1\ndef y(): pass", filetype.Python},
		{"fallback", "puts 1", filetype.Ruby},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := table.Apply(".foo", tc.content)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTableApplyAmbiguousRuleNeverDecides(t *testing.T) {
	table, err := heuristics.NewTable(map[string][]heuristics.Rule{
		".foo": {
			{Languages: []filetype.FileType{filetype.Lisp}, Pattern: pattern.Positive(`^\(`)},
			{Languages: []filetype.FileType{filetype.Text, filetype.Markdown}},
		},
	})
	require.NoError(t, err)

	assert.True(t, table.Rules(".foo")[1].Ambiguous())
	assert.False(t, table.Rules(".foo")[0].Ambiguous())

	got, ok := table.Apply(".foo", "# heading")
	assert.False(t, ok)
	assert.Equal(t, filetype.Text, got)
}

func TestTableApplyUnknownExtension(t *testing.T) {
	table, err := heuristics.NewTable(nil)
	require.NoError(t, err)
	assert.Zero(t, table.Len())

	got, ok := table.Apply(".nothing", "anything")
	assert.False(t, ok)
	assert.Equal(t, filetype.Text, got)

	var nilTable *heuristics.Table
	_, ok = nilTable.Apply(".ts", "")
	assert.False(t, ok)
	assert.Nil(t, nilTable.Extensions())
}

func TestNewTableNormalizesKeys(t *testing.T) {
	table, err := heuristics.NewTable(map[string][]heuristics.Rule{
		"FOO":  {{Languages: []filetype.FileType{filetype.Lisp}, Pattern: pattern.Positive(`lisp`)}},
		".foo": {{Languages: []filetype.FileType{filetype.Ruby}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{".foo"}, table.Extensions())
	assert.Len(t, table.Rules("Foo"), 2)

	got, ok := table.Apply("FOO", "no match here")
	require.True(t, ok)
	assert.Equal(t, filetype.Ruby, got)
}

func TestNewTableRejectsInvalidRules(t *testing.T) {
	_, err := heuristics.NewTable(map[string][]heuristics.Rule{
		".": {{Languages: []filetype.FileType{filetype.C}}},
	})
	assert.ErrorIs(t, err, heuristics.ErrInvalidRuleset)

	_, err = heuristics.NewTable(map[string][]heuristics.Rule{
		".c": {{Pattern: pattern.Positive(`x`)}},
	})
	assert.ErrorIs(t, err, heuristics.ErrInvalidRuleset)
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, ".ts", heuristics.NormalizeExt("ts"))
	assert.Equal(t, ".ts", heuristics.NormalizeExt(".TS"))
	assert.Equal(t, "", heuristics.NormalizeExt(""))
	assert.Equal(t, "", heuristics.NormalizeExt("."))
}

func TestBuiltinTable(t *testing.T) {
	table := heuristics.Builtin()
	require.NotNil(t, table)
	assert.Greater(t, table.Len(), 100)

	for _, ext := range table.Extensions() {
		rules := table.Rules(ext)
		require.NotEmpty(t, rules, ext)
		for _, r := range rules {
			require.NotEmpty(t, r.Languages, ext)
		}
		assert.NotPanics(t, func() { table.Apply(ext, "") }, ext)
		assert.NotPanics(t, func() { table.Apply(ext, "line one\n(line two)\n#!x\n") }, ext)
	}
}

func TestBuiltinDisambiguations(t *testing.T) {
	testCases := []struct {
		name    string
		ext     string
		content string
		want    filetype.FileType
		ok      bool
	}{
		{"ts source", ".ts", "export const x: number = 1;\n", filetype.TypeScript, true},
		{"ts qt translation", ".ts", `<TS version="2.1" language="en_US"></TS>`, filetype.Xml, true},
		{"pl prolog", ".pl", "parent(X, Y) :- father(X, Y).\n", filetype.Prolog, true},
		{"pl perl", ".pl", "use strict;\nmy $x = 1;\n", filetype.Perl, true},
		{"pl raku", ".pl", "use v6;\nsay 'hi';\n", filetype.Raku, true},
		{"pl undecided", ".pl", "", filetype.Text, false},
		{"h objc", ".h", "@interface Foo : NSObject\n@end\n", filetype.ObjC, true},
		{"h cpp", ".h", "#include <vector>\ntemplate <typename T> class X {};\n", filetype.Cpp, true},
		{"h c", ".h", "random text", filetype.C, true},
		{"scm query", ".scm", "(function_definition name: (identifier) @function)\n", filetype.TreeSitterQuery, true},
		{"scm scheme", ".scm", "(define (square x) (* x x))\n", filetype.Scheme, true},
		{"scm empty", ".scm", "", filetype.Text, false},
		{"md empty", ".md", "", filetype.Markdown, true},
		{"m objc", ".m", "#import \"Foo.h\"\n", filetype.ObjC, true},
		{"m matlab", ".m", "% comment\nx = 1;\n", filetype.Matlab, true},
		{"uppercase extension", ".TS", "let x = 1", filetype.TypeScript, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := heuristics.Apply(tc.ext, tc.content)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuiltinIsDeterministic(t *testing.T) {
	content := strings.Repeat("use strict;\n", 10)
	first, _ := heuristics.Apply(".pl", content)
	for range 20 {
		got, _ := heuristics.Apply(".pl", content)
		assert.Equal(t, first, got)
	}
}

func TestBuiltinVimHelpModeline(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    filetype.FileType
	}{
		{"colon options", "*intro.txt* help\nvim:tw=78:ts=8:ft=help:norl:\n", filetype.VimHelp},
		{"set form", "text\n vim: set ft=help :\n", filetype.VimHelp},
		{"after text", "see the vim:ft=help\n", filetype.VimHelp},
		{"ex marker", "notes ex:filetype=help\n", filetype.VimHelp},
		{"versioned marker", "vim703: ft=help\n", filetype.VimHelp},
		{"set form without closing colon", "vim: set ft=help\n", filetype.Text},
		{"other filetype", "vim: ft=markdown\n", filetype.Text},
		{"longer value", "vim:ft=helpful\n", filetype.Text},
		{"no marker", "ft=help\n", filetype.Text},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := heuristics.Apply(".txt", tc.content)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuiltinRulesBoundedOnAdversarialContent(t *testing.T) {
	const size = 51200
	inputs := map[string]string{
		"single token":     strings.Repeat("a", size),
		"base64 line":      strings.Repeat("QUJDRA==", size/8),
		"spaces":           strings.Repeat(" ", size),
		"short lines":      strings.Repeat("a\n", size/2),
		"key lines":        strings.Repeat("k:v\n", size/4),
		"modeline marker":  strings.Repeat(" vim:", size/5),
		"braces":           strings.Repeat("{", size),
		"words and parens": strings.Repeat("ab cd(", size/6),
	}

	table := heuristics.Builtin()
	for _, ext := range table.Extensions() {
		for name, content := range inputs {
			start := time.Now()
			table.Apply(ext, content)
			assert.Less(t, time.Since(start), 2*time.Second, "%s on %s", ext, name)
		}
	}
}
