// Package classifier is the last-resort content classifier. It scores
// keyword tokens per file type and picks the best total.
package classifier

import (
	"strings"
	"unicode"

	"github.com/stackvity/ftdetect/pkg/filetype"
)

// Keywords is the token set and per-token weight for one file type.
type Keywords struct {
	Weight int
	Tokens []string
}

// Model maps tokens to the file types that claim them.
// A Model is immutable after construction and safe for concurrent use.
type Model struct {
	index map[string][]scored
}

type scored struct {
	ft     filetype.FileType
	weight int
}

// NewModel builds a Model from per-type keyword sets. Types with a
// non-positive weight or no tokens are ignored.
func NewModel(sets map[filetype.FileType]Keywords) *Model {
	m := &Model{index: make(map[string][]scored)}
	for ft, kw := range sets {
		if kw.Weight <= 0 {
			continue
		}
		seen := make(map[string]struct{}, len(kw.Tokens))
		for _, tok := range kw.Tokens {
			if _, dup := seen[tok]; dup || tok == "" {
				continue
			}
			seen[tok] = struct{}{}
			m.index[tok] = append(m.index[tok], scored{ft: ft, weight: kw.Weight})
		}
	}
	return m
}

// Default is the built-in keyword model.
var Default = NewModel(map[filetype.FileType]Keywords{
	filetype.Rust:       {Weight: 3, Tokens: []string{"fn", "let", "mut", "impl", "pub", "struct", "enum", "match", "use"}},
	filetype.Python:     {Weight: 2, Tokens: []string{"def", "class", "import", "from", "self", "elif"}},
	filetype.JavaScript: {Weight: 2, Tokens: []string{"const", "let", "function", "var", "require"}},
	filetype.Go:         {Weight: 2, Tokens: []string{"func", "var", "type", "struct", "package", "chan"}},
	filetype.Java:       {Weight: 2, Tokens: []string{"public", "private", "class", "interface", "static", "void"}},
	filetype.C:          {Weight: 2, Tokens: []string{"printf", "scanf", "malloc", "free", "sizeof"}},
	filetype.Ruby:       {Weight: 2, Tokens: []string{"end", "require", "module", "def", "elsif"}},
})

// Classify runs the Default model.
func Classify(content string) (filetype.FileType, bool) {
	return Default.Classify(content)
}

// Classify returns the type with the highest keyword score. Equal scores are
// broken by the lexicographically smaller canonical name. Content without any
// scoring token yields no verdict.
func (m *Model) Classify(content string) (filetype.FileType, bool) {
	scores := m.Scores(content)
	var (
		best      filetype.FileType
		bestScore int
	)
	for ft, score := range scores {
		if score > bestScore || (score == bestScore && ft.String() < best.String()) {
			best, bestScore = ft, score
		}
	}
	if bestScore == 0 {
		return filetype.Text, false
	}
	return best, true
}

// Scores returns the aggregate score per type for content.
func (m *Model) Scores(content string) map[filetype.FileType]int {
	scores := make(map[filetype.FileType]int)
	for _, tok := range Tokenize(content) {
		for _, s := range m.index[tok] {
			scores[s.ft] += s.weight
		}
	}
	return scores
}

// Tokenize splits content on whitespace and the punctuation (){}[];,.=:"
func Tokenize(content string) []string {
	return strings.FieldsFunc(content, isSeparator)
}

func isSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '(', ')', '{', '}', '[', ']', ';', ',', '.', '=', ':', '"':
		return true
	}
	return false
}
