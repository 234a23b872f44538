// Package heuristics picks between languages that share a file extension by
// evaluating ordered content rules.
package heuristics

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/stackvity/ftdetect/pkg/detect/pattern"
	"github.com/stackvity/ftdetect/pkg/filetype"
)

// Rule selects Languages[0] when Pattern matches. A Rule without a Pattern is
// a fallback: it yields its language only when it names exactly one.
type Rule struct {
	Languages []filetype.FileType
	Pattern   pattern.Pattern
}

// Ambiguous reports whether the rule is a pattern-less rule naming several
// languages. Such rules never produce a verdict.
func (r Rule) Ambiguous() bool {
	return r.Pattern == nil && len(r.Languages) > 1
}

func on(p pattern.Pattern, fts ...filetype.FileType) Rule {
	return Rule{Languages: fts, Pattern: p}
}

func fallback(fts ...filetype.FileType) Rule {
	return Rule{Languages: fts}
}

// Table maps normalized extensions to ordered rule lists.
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	rules map[string][]Rule
}

// NewTable validates rules and builds a Table. Extension keys are normalized
// with NormalizeExt; rules for keys that normalize to the same extension are
// concatenated in sorted key order.
func NewTable(rules map[string][]Rule) (*Table, error) {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := &Table{rules: make(map[string][]Rule, len(rules))}
	for _, k := range keys {
		ext := NormalizeExt(k)
		if ext == "" {
			return nil, fmt.Errorf("%w: empty extension key", ErrInvalidRuleset)
		}
		for i, r := range rules[k] {
			if len(r.Languages) == 0 {
				return nil, fmt.Errorf("%w: %s: rule %d has no languages", ErrInvalidRuleset, ext, i)
			}
		}
		t.rules[ext] = append(t.rules[ext], rules[k]...)
	}
	return t, nil
}

// NormalizeExt lowercases ext and ensures it carries a leading dot.
// An empty ext stays empty.
func NormalizeExt(ext string) string {
	if ext == "" {
		return ""
	}
	ext = strings.ToLower(ext)
	if ext[0] != '.' {
		ext = "." + ext
	}
	if ext == "." {
		return ""
	}
	return ext
}

// Apply evaluates the rules registered for ext against content and returns
// the first verdict. Unknown extensions and exhausted rule lists yield no
// verdict.
func (t *Table) Apply(ext, content string) (filetype.FileType, bool) {
	if t == nil {
		return filetype.Text, false
	}
	for _, r := range t.rules[NormalizeExt(ext)] {
		switch {
		case r.Pattern != nil:
			if r.Pattern.Match(content) {
				return r.Languages[0], true
			}
		case len(r.Languages) == 1:
			return r.Languages[0], true
		}
	}
	return filetype.Text, false
}

// Rules returns the rules registered for ext.
func (t *Table) Rules(ext string) []Rule {
	if t == nil {
		return nil
	}
	return t.rules[NormalizeExt(ext)]
}

// Extensions returns the registered extensions in sorted order.
func (t *Table) Extensions() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.rules))
	for ext := range t.rules {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Len is the number of registered extensions.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}

// Builtin returns the compiled-in table. It is built on first use and panics
// if any built-in expression fails to compile.
var Builtin = sync.OnceValue(func() *Table {
	t, err := NewTable(builtinRules())
	if err != nil {
		panic(err)
	}
	return t
})

// Apply runs the built-in table.
func Apply(ext, content string) (filetype.FileType, bool) {
	return Builtin().Apply(ext, content)
}
