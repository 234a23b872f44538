// Package detect identifies the file type of a path and a bounded content
// prefix.
//
// Detection is a fixed sequence of stages and the first stage with a verdict
// wins:
//
//  1. path suffix table ("i3/config", ".cargo/config")
//  2. extension overrides configured with WithOverrides
//  3. shebang interpreter
//  4. exact file name table
//  5. compound extensions ("d.ts", "blade.php")
//  6. early content probes for "h", "spec" and "t"
//  7. heuristics keyed by extension
//  8. late content probes for overloaded extensions
//  9. path patterns
//  10. extension table
//  11. low-priority path patterns
//  12. keyword classifier
//
// Every stage is a pure function of its inputs, so the result for a given
// (path, content) pair never changes. The caller is responsible for capping
// content, usually at DefaultMaxContentBytes.
package detect

import (
	"strings"
	"sync"

	"github.com/stackvity/ftdetect/pkg/detect/classifier"
	"github.com/stackvity/ftdetect/pkg/detect/heuristics"
	"github.com/stackvity/ftdetect/pkg/filetype"
)

// DefaultMaxContentBytes is the content prefix size callers are expected to
// pass.
const DefaultMaxContentBytes = 51200

// Stage identifies the pipeline stage that produced a verdict.
type Stage int

const (
	StageNone Stage = iota
	StagePathSuffix
	StageOverride
	StageShebang
	StageFilename
	StageCompoundExtension
	StageEarly
	StageHeuristics
	StageLate
	StagePattern
	StageExtension
	StagePatternLow
	StageClassifier
)

var stageNames = [...]string{
	StageNone:              "none",
	StagePathSuffix:        "path-suffix",
	StageOverride:          "override",
	StageShebang:           "shebang",
	StageFilename:          "filename",
	StageCompoundExtension: "compound-extension",
	StageEarly:             "early-disambiguation",
	StageHeuristics:        "heuristics",
	StageLate:              "late-disambiguation",
	StagePattern:           "pattern",
	StageExtension:         "extension",
	StagePatternLow:        "pattern-low",
	StageClassifier:        "classifier",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Detector runs the detection pipeline. The zero value is not usable; build
// one with New. A Detector is safe for concurrent use.
type Detector struct {
	overrides map[string]filetype.FileType
	rulesets  []*heuristics.Table
	model     *classifier.Model
}

// Option configures a Detector.
type Option func(*Detector)

// WithRuleset consults t before the built-in heuristics. Rulesets are
// consulted in the order they are added.
func WithRuleset(t *heuristics.Table) Option {
	return func(d *Detector) {
		if t != nil {
			d.rulesets = append(d.rulesets, t)
		}
	}
}

// WithOverrides forces a file type for extensions. Overrides apply right
// after the path suffix table and ahead of every other stage. Keys may carry a
// leading dot and are matched case-insensitively.
func WithOverrides(m map[string]filetype.FileType) Option {
	return func(d *Detector) {
		for ext, ft := range m {
			ext = strings.ToLower(strings.TrimPrefix(ext, "."))
			if ext == "" {
				continue
			}
			if d.overrides == nil {
				d.overrides = make(map[string]filetype.FileType, len(m))
			}
			d.overrides[ext] = ft
		}
	}
}

// WithClassifier replaces the keyword model used as the last stage.
// A nil model disables the stage.
func WithClassifier(m *classifier.Model) Option {
	return func(d *Detector) { d.model = m }
}

// New returns a Detector with the built-in tables and opts applied.
func New(opts ...Option) *Detector {
	d := &Detector{model: classifier.Default}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Default is the Detector used by the package-level functions.
var Default = sync.OnceValue(func() *Detector { return New() })

// TryDetect runs the default Detector.
func TryDetect(path, content string) (filetype.FileType, bool) {
	return Default().TryDetect(path, content)
}

// Detect runs the default Detector, falling back to filetype.Text.
func Detect(path, content string) filetype.FileType {
	return Default().Detect(path, content)
}

// Explain runs the default Detector and reports the deciding stage.
func Explain(path, content string) (filetype.FileType, Stage, bool) {
	return Default().Explain(path, content)
}

// TryDetect returns the file type of path and content, or false when no
// stage reaches a verdict.
func (d *Detector) TryDetect(path, content string) (filetype.FileType, bool) {
	ft, _, ok := d.Explain(path, content)
	return ft, ok
}

// Detect is TryDetect with filetype.Text substituted for "no verdict".
func (d *Detector) Detect(path, content string) filetype.FileType {
	if ft, ok := d.TryDetect(path, content); ok {
		return ft
	}
	return filetype.Text
}

// Explain is TryDetect that also reports which stage decided. Without a
// verdict it returns (filetype.Text, StageNone, false).
func (d *Detector) Explain(path, content string) (filetype.FileType, Stage, bool) {
	info := newPathInfo(path)
	ext := strings.ToLower(info.ext)

	if ft, ok := d.fromSuffix(info, content); ok {
		return ft, StagePathSuffix, true
	}

	if info.hasExt && d.overrides != nil {
		if ft, ok := d.overrides[ext]; ok {
			return ft, StageOverride, true
		}
	}

	if ft, ok := fromShebang(content); ok {
		return ft, StageShebang, true
	}

	if info.name != "" {
		if r, ok := filenameTable()[info.name]; ok {
			if ft, ok := d.resolve(r, info.full, content); ok {
				return ft, StageFilename, true
			}
		}
	}

	for _, key := range compoundExtensions(info.name) {
		if r, ok := extensionTable()[key]; ok {
			if ft, ok := d.resolve(r, info.full, content); ok {
				return ft, StageCompoundExtension, true
			}
		}
	}

	if ext != "" {
		if ft, ok := early(ext, info.full, content); ok {
			return ft, StageEarly, true
		}
		if ft, ok := d.fromHeuristics(ext, content); ok {
			return ft, StageHeuristics, true
		}
		if ft, ok := late(ext, content); ok {
			return ft, StageLate, true
		}
	}

	lists := patternTable()
	if ft, ok := d.fromPatterns(lists.high, info, content); ok {
		return ft, StagePattern, true
	}

	if ext != "" {
		r, ok := extensionTable()[info.ext]
		if !ok {
			r, ok = extensionTable()[ext]
		}
		if ok {
			if ft, ok := d.resolve(r, info.full, content); ok {
				return ft, StageExtension, true
			}
		}
	}

	if ft, ok := d.fromPatterns(lists.low, info, content); ok {
		return ft, StagePatternLow, true
	}

	if d.model != nil {
		if ft, ok := d.model.Classify(content); ok {
			return ft, StageClassifier, true
		}
	}
	return filetype.Text, StageNone, false
}

// fromSuffix probes the suffix table with the trailing components of the
// path, longest first.
func (d *Detector) fromSuffix(info pathInfo, content string) (filetype.FileType, bool) {
	if info.full == "" {
		return filetype.Text, false
	}
	comps := components(info.full)
	for n := min(len(comps), suffixDepth()); n >= 1; n-- {
		key := strings.Join(comps[len(comps)-n:], "/")
		if r, ok := suffixTable()[key]; ok {
			if ft, ok := d.resolve(r, info.full, content); ok {
				return ft, true
			}
		}
	}
	return filetype.Text, false
}

// suffixDepth is the largest number of components in a suffix table key.
var suffixDepth = sync.OnceValue(func() int {
	depth := 0
	for key := range suffixTable() {
		depth = max(depth, len(components(key)))
	}
	return depth
})

func (d *Detector) fromHeuristics(ext, content string) (filetype.FileType, bool) {
	dotted := "." + ext
	for _, t := range d.rulesets {
		if ft, ok := t.Apply(dotted, content); ok {
			return ft, true
		}
	}
	return heuristics.Builtin().Apply(dotted, content)
}

func (d *Detector) fromPatterns(list []compiledPattern, info pathInfo, content string) (filetype.FileType, bool) {
	for _, p := range list {
		if !p.match(info) {
			continue
		}
		if ft, ok := d.resolve(p.resolver, info.full, content); ok {
			return ft, true
		}
	}
	return filetype.Text, false
}

// resolve applies r, re-entering the pipeline for retry resolvers. A retry
// that does not shorten the path yields no verdict.
func (d *Detector) resolve(r Resolver, path, content string) (filetype.FileType, bool) {
	rt, ok := r.(retry)
	if !ok {
		return r.Resolve(path, content)
	}
	next, ok := rt(path)
	if !ok || next == "" || len(next) >= len(path) {
		return filetype.Text, false
	}
	ft, _, ok := d.Explain(next, content)
	return ft, ok
}
