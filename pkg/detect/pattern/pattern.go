// Package pattern provides a small boolean expression language over regular
// expressions. Patterns are evaluated against a bounded content prefix and are
// used to pick between languages that share a file extension.
//
// Expressions use .NET/PCRE-style syntax (lookarounds, inline flags, named
// groups) and are always compiled in multiline mode, so ^ and $ anchor at
// line boundaries. Expressions that RE2 accepts run on the linear-time
// regexp engine; only those needing backtracking features (lookarounds,
// backreferences, atomic groups, extended mode) run on regexp2.
package pattern

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
)

// ErrInvalidPattern is returned when an expression cannot be compiled.
var ErrInvalidPattern = errors.New("invalid pattern")

// Pattern reports whether content satisfies a condition.
// Implementations must be safe for concurrent use.
type Pattern interface {
	Match(content string) bool
}

// matcher is the part of a compiled expression a leaf needs.
type matcher interface {
	MatchString(s string) bool
}

// backtracking adapts regexp2 to matcher. A match error (only possible when a
// match timeout is configured) counts as "no match".
type backtracking struct {
	re *regexp2.Regexp
}

func (b backtracking) MatchString(s string) bool {
	ok, err := b.re.MatchString(s)
	return err == nil && ok
}

// regex is a Positive or Negative leaf.
type regex struct {
	expr   string
	re     matcher
	negate bool
}

// Match implements Pattern.
func (r *regex) Match(content string) bool {
	return r.re.MatchString(content) != r.negate
}

// Linear reports whether the leaf runs on the linear-time engine.
func (r *regex) Linear() bool {
	_, ok := r.re.(*regexp.Regexp)
	return ok
}

// String returns the source expression, prefixed with "!" for negative leaves.
func (r *regex) String() string {
	if r.negate {
		return "!" + r.expr
	}
	return r.expr
}

func compile(expr string) (matcher, error) {
	if re, err := regexp.Compile("(?m)" + expr); err == nil {
		return re, nil
	}
	re, err := regexp2.Compile(expr, regexp2.Multiline)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, expr, err)
	}
	return backtracking{re: re}, nil
}

// NewPositive compiles expr into a pattern that matches when expr is found
// anywhere in the content.
func NewPositive(expr string) (Pattern, error) {
	re, err := compile(expr)
	if err != nil {
		return nil, err
	}
	return &regex{expr: expr, re: re}, nil
}

// NewNegative compiles expr into a pattern that matches when expr is NOT found
// in the content.
func NewNegative(expr string) (Pattern, error) {
	re, err := compile(expr)
	if err != nil {
		return nil, err
	}
	return &regex{expr: expr, re: re, negate: true}, nil
}

// Positive is like NewPositive but panics if expr does not compile.
// It is meant for compiled-in tables.
func Positive(expr string) Pattern {
	p, err := NewPositive(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Negative is like NewNegative but panics if expr does not compile.
func Negative(expr string) Pattern {
	p, err := NewNegative(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// AnyOf returns an Or of Positive patterns, one per expression.
func AnyOf(exprs ...string) Pattern {
	if len(exprs) == 1 {
		return Positive(exprs[0])
	}
	or := make(Or, 0, len(exprs))
	for _, expr := range exprs {
		or = append(or, Positive(expr))
	}
	return or
}

// And matches when every child matches. Children are evaluated in order and
// evaluation stops at the first child that does not match. An empty And
// matches everything.
type And []Pattern

// Match implements Pattern.
func (a And) Match(content string) bool {
	for _, p := range a {
		if !p.Match(content) {
			return false
		}
	}
	return true
}

// Or matches when any child matches. Children are evaluated in order and
// evaluation stops at the first match. An empty Or matches nothing.
type Or []Pattern

// Match implements Pattern.
func (o Or) Match(content string) bool {
	for _, p := range o {
		if p.Match(content) {
			return true
		}
	}
	return false
}

type always struct{}

func (always) Match(string) bool { return true }

// Always matches any content. It stands in for a negative condition that could
// not be built from untrusted input.
var Always Pattern = always{}
