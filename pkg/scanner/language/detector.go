// Package language adapts detection engines to the scanner. Every engine
// reports canonical filetype names so results from different engines can be
// aggregated and cached the same way.
package language

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/stackvity/ftdetect/pkg/detect"
	"github.com/stackvity/ftdetect/pkg/filetype"
)

// Detector identifies the file type of a file based on its content and path.
//
// Stability: Public Stable API - implementations can be provided externally.
type Detector interface {
	// Detect identifies the type of content found at filePath.
	//
	// language is a canonical filetype name; when no engine stage has a
	// verdict it is "text" with confidence 0. confidence is a score from 0.0
	// to 1.0. err is reserved for engine failures; an undetected file is not
	// an error.
	Detect(content []byte, filePath string) (language string, confidence float64, err error)
}

var stageConfidence = map[detect.Stage]float64{
	detect.StageOverride:          1.0,
	detect.StagePathSuffix:        1.0,
	detect.StageShebang:           1.0,
	detect.StageFilename:          1.0,
	detect.StageCompoundExtension: 0.9,
	detect.StageExtension:         0.9,
	detect.StageEarly:             0.8,
	detect.StageHeuristics:        0.8,
	detect.StageLate:              0.8,
	detect.StagePattern:           0.7,
	detect.StagePatternLow:        0.5,
	detect.StageClassifier:        0.3,
}

// StageConfidence returns the confidence reported for a verdict produced by
// stage. StageNone and unknown stages score 0.
func StageConfidence(stage detect.Stage) float64 {
	return stageConfidence[stage]
}

type fileTypeDetector struct {
	detector *detect.Detector
}

// NewFileTypeDetector wraps d. A nil d uses detect.Default().
func NewFileTypeDetector(d *detect.Detector) Detector {
	if d == nil {
		d = detect.Default()
	}
	return &fileTypeDetector{detector: d}
}

// Detect implements Detector.
func (f *fileTypeDetector) Detect(content []byte, filePath string) (string, float64, error) {
	ft, stage, ok := f.detector.Explain(filePath, string(content))
	if !ok {
		return filetype.Text.String(), 0, nil
	}
	return ft.String(), StageConfidence(stage), nil
}

// enryDetector implements Detector with go-enry's linguist-derived tables.
type enryDetector struct {
	overrides map[string]string // normalized extension -> canonical name
}

// NewEnryDetector creates a Detector backed by go-enry. overrides maps
// extensions (with or without the leading dot, any case) to filetype names
// and is consulted first. Entries with an empty key or value are ignored.
func NewEnryDetector(overrides map[string]string) Detector {
	normalized := make(map[string]string, len(overrides))
	for ext, lang := range overrides {
		ext = strings.ToLower(strings.TrimSpace(ext))
		lang = strings.TrimSpace(lang)
		if ext == "" || ext == "." || lang == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized[ext] = canonicalName(lang)
	}
	return &enryDetector{overrides: normalized}
}

// Detect implements Detector. It prioritizes overrides, then enry's combined
// content and filename analysis, then the extension and filename tables.
func (d *enryDetector) Detect(content []byte, filePath string) (string, float64, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	if lang, ok := d.overrides[ext]; ok {
		return lang, 1.0, nil
	}
	if len(content) == 0 {
		return filetype.Text.String(), 0, nil
	}

	filename := filepath.Base(filePath)
	if lang := enry.GetLanguage(filename, content); lang != "" && lang != "Text" {
		if name := canonicalName(lang); name != filetype.Text.String() {
			return name, 0.8, nil
		}
	}
	if lang, safe := enry.GetLanguageByExtension(filename); safe && lang != "" {
		if name := canonicalName(lang); name != filetype.Text.String() {
			return name, 0.5, nil
		}
	}
	if lang, safe := enry.GetLanguageByFilename(filename); safe && lang != "" {
		if name := canonicalName(lang); name != filetype.Text.String() {
			return name, 0.5, nil
		}
	}
	return filetype.Text.String(), 0, nil
}

var nameReplacer = strings.NewReplacer(" ", "-", "++", "pp", "#", "sharp", "'", "")

// canonicalName maps a linguist language name such as "C++" or "Vim Script"
// to a canonical filetype name. Names without a matching type map to "text".
func canonicalName(lang string) string {
	if ft, err := filetype.Parse(lang); err == nil {
		return ft.String()
	}
	if ft, err := filetype.Parse(nameReplacer.Replace(strings.ToLower(lang))); err == nil {
		return ft.String()
	}
	return filetype.Text.String()
}
