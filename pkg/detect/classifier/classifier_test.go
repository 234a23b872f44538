package classifier_test

import (
	"testing"

	"github.com/stackvity/ftdetect/pkg/detect/classifier"
	"github.com/stackvity/ftdetect/pkg/filetype"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    filetype.FileType
		wantOK  bool
	}{
		{"rust", "fn main() {\n    let x = 42;\n    println!(\"{}\");\n}", filetype.Rust, true},
		{"python", "def main():\n    import os\n    class MyClass:\n        pass", filetype.Python, true},
		{"go", "package main\n\nfunc main() {}\n", filetype.Go, true},
		{"empty", "", filetype.Text, false},
		{"no keywords", "lorem ipsum dolor sit amet", filetype.Text, false},
		{"punctuation only", "(){}[];,.=:\"", filetype.Text, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := classifier.Classify(tc.content)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_TieBreakIsLexicographic(t *testing.T) {
	// printf scores C 2, end scores Ruby 2: "c" < "ruby".
	for i := 0; i < 50; i++ {
		got, ok := classifier.Classify("printf end")
		assert.True(t, ok)
		assert.Equal(t, filetype.C, got)
	}
	// func scores Go 2, elsif scores Ruby 2: "go" < "ruby".
	got, ok := classifier.Classify("func elsif")
	assert.True(t, ok)
	assert.Equal(t, filetype.Go, got)
}

func TestTokenize(t *testing.T) {
	got := classifier.Tokenize("fn main(){let x=1;}\tfoo.bar:\"baz\"")
	assert.Equal(t, []string{"fn", "main", "let", "x", "1", "foo", "bar", "baz"}, got)
	assert.Empty(t, classifier.Tokenize("  \n\t"))
}

func TestNewModel_CustomWeights(t *testing.T) {
	m := classifier.NewModel(map[filetype.FileType]classifier.Keywords{
		filetype.Lua:  {Weight: 5, Tokens: []string{"local", "local", "then"}},
		filetype.Ruby: {Weight: 1, Tokens: []string{"then", "end"}},
		filetype.Perl: {Weight: 0, Tokens: []string{"my"}},
	})

	scores := m.Scores("local x = 1 if x then end my")
	assert.Equal(t, 10, scores[filetype.Lua], "duplicate tokens in a set count once per occurrence")
	assert.Equal(t, 2, scores[filetype.Ruby])
	assert.NotContains(t, scores, filetype.Perl)

	got, ok := m.Classify("then end")
	assert.True(t, ok)
	assert.Equal(t, filetype.Lua, got)
}
