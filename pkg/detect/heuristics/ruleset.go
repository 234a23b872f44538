package heuristics

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/stackvity/ftdetect/pkg/detect/pattern"
	"github.com/stackvity/ftdetect/pkg/filetype"
	"gopkg.in/yaml.v3"
)

// stringList decodes either a scalar or a sequence of scalars.
type stringList []string

func (s *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*s = stringList{value.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", value.Line)
	}
}

type conditionSpec struct {
	Pattern         stringList      `yaml:"pattern"`
	NegativePattern stringList      `yaml:"negative_pattern"`
	NamedPattern    string          `yaml:"named_pattern"`
	And             []conditionSpec `yaml:"and"`
}

type ruleSpec struct {
	Language      stringList `yaml:"language"`
	conditionSpec `yaml:",inline"`
}

type disambiguationSpec struct {
	Extensions []string   `yaml:"extensions"`
	Rules      []ruleSpec `yaml:"rules"`
}

type rulesetSpec struct {
	Disambiguations []disambiguationSpec  `yaml:"disambiguations"`
	NamedPatterns   map[string]stringList `yaml:"named_patterns"`
}

// LoadOption configures LoadRuleset.
type LoadOption func(*loader)

// WithLogger reports degraded negative expressions through logger.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(l *loader) { l.logger = logger }
}

type loader struct {
	logger *slog.Logger
	named  map[string]pattern.Pattern
}

// LoadRuleset parses a YAML ruleset and returns it as a Table.
//
// A malformed positive expression, an unknown language or named pattern, or a
// rule without languages fails with ErrInvalidRuleset. A malformed negative
// expression does not restrict its rule and is logged as a warning.
func LoadRuleset(r io.Reader, opts ...LoadOption) (*Table, error) {
	var spec rulesetSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleset, err)
	}

	l := &loader{named: make(map[string]pattern.Pattern, len(spec.NamedPatterns))}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for name, exprs := range spec.NamedPatterns {
		p, err := l.positive(exprs)
		if err != nil {
			return nil, fmt.Errorf("named pattern %q: %w", name, err)
		}
		l.named[name] = p
	}

	rules := make(map[string][]Rule)
	for i, d := range spec.Disambiguations {
		if len(d.Extensions) == 0 {
			return nil, fmt.Errorf("%w: disambiguation %d has no extensions", ErrInvalidRuleset, i)
		}
		built := make([]Rule, 0, len(d.Rules))
		for j, rs := range d.Rules {
			rule, err := l.rule(rs)
			if err != nil {
				return nil, fmt.Errorf("disambiguation %d rule %d: %w", i, j, err)
			}
			built = append(built, rule)
		}
		for _, ext := range d.Extensions {
			norm := NormalizeExt(ext)
			rules[norm] = append(rules[norm], built...)
		}
	}
	return NewTable(rules)
}

// LoadRulesetFile opens path and calls LoadRuleset.
func LoadRulesetFile(path string, opts ...LoadOption) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleset, err)
	}
	defer f.Close()

	t, err := LoadRuleset(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (l *loader) rule(rs ruleSpec) (Rule, error) {
	if len(rs.Language) == 0 {
		return Rule{}, fmt.Errorf("%w: rule has no language", ErrInvalidRuleset)
	}
	langs := make([]filetype.FileType, 0, len(rs.Language))
	for _, name := range rs.Language {
		ft, err := filetype.Parse(name)
		if err != nil {
			return Rule{}, fmt.Errorf("%w: %w", ErrInvalidRuleset, err)
		}
		langs = append(langs, ft)
	}
	p, err := l.condition(rs.conditionSpec)
	if err != nil {
		return Rule{}, err
	}
	return Rule{Languages: langs, Pattern: p}, nil
}

// condition returns nil when c carries no condition at all.
func (l *loader) condition(c conditionSpec) (pattern.Pattern, error) {
	var parts pattern.And
	if len(c.Pattern) > 0 {
		p, err := l.positive(c.Pattern)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	for _, expr := range c.NegativePattern {
		p, err := pattern.NewNegative(expr)
		if err != nil {
			l.logger.Warn("Ignoring malformed negative pattern", slog.String("pattern", expr), slog.String("error", err.Error()))
			p = pattern.Always
		}
		parts = append(parts, p)
	}
	if c.NamedPattern != "" {
		p, ok := l.named[c.NamedPattern]
		if !ok {
			return nil, fmt.Errorf("%w: unknown named pattern %q", ErrInvalidRuleset, c.NamedPattern)
		}
		parts = append(parts, p)
	}
	for _, sub := range c.And {
		p, err := l.condition(sub)
		if err != nil {
			return nil, err
		}
		if p != nil {
			parts = append(parts, p)
		}
	}

	switch len(parts) {
	case 0:
		return nil, nil
	case 1:
		return parts[0], nil
	default:
		return parts, nil
	}
}

func (l *loader) positive(exprs []string) (pattern.Pattern, error) {
	or := make(pattern.Or, 0, len(exprs))
	for _, expr := range exprs {
		p, err := pattern.NewPositive(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRuleset, err)
		}
		or = append(or, p)
	}
	if len(or) == 1 {
		return or[0], nil
	}
	return or, nil
}
