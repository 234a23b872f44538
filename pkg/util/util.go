// Package util holds path helpers shared by the scanner and the CLI.
package util

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchesGitignore reports whether pathToMatchRel, relative to
// walkerBaseAbsPath, matches a gitignore-style glob defined in
// patternBaseAbsPath.
//
// Patterns are matched with doublestar, so "**" crosses directory
// boundaries. A pattern that is rooted or contains a slash is anchored to its
// base; any other pattern matches at any depth below the base. A pattern also
// matches everything below a directory it matches. Paths outside the pattern
// base never match.
func MatchesGitignore(pattern, patternBaseAbsPath, walkerBaseAbsPath, pathToMatchRel string, isRooted bool) bool {
	pattern = filepath.ToSlash(pattern)
	pathToMatchRel = filepath.ToSlash(pathToMatchRel)
	if pattern == "" || pathToMatchRel == "" || pathToMatchRel == "." {
		return false
	}

	pathToMatchAbs := filepath.Join(walkerBaseAbsPath, filepath.FromSlash(pathToMatchRel))
	rel, err := filepath.Rel(patternBaseAbsPath, pathToMatchAbs)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}

	if !isRooted && !strings.Contains(pattern, "/") {
		pattern = "**/" + pattern
	}
	for _, p := range []string{pattern, pattern + "/**"} {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// RelSlash returns target relative to base with forward slashes. It returns
// the base name of target when target is base itself.
func RelSlash(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", err
	}
	if rel == "." {
		rel = filepath.Base(target)
	}
	return filepath.ToSlash(rel), nil
}
