package heuristics

import (
	"regexp"
	"strings"
)

var (
	// reModelineStart finds "vi:", "vim:", "vim703:", "Vim:" or " ex:". The
	// trailing colon is the last byte of the match.
	reModelineStart = regexp.MustCompile(`(?:^|[ \t])(?:vi(?:m[<=>]?[0-9]+|m)?|Vim(?:[<=>]?[0-9]+)?):|[ \t]ex:`)
	// reModelineSetLike and reModelineSetForm test the text starting at the
	// colon. A "set" modeline must be closed by another colon.
	reModelineSetLike = regexp.MustCompile(`\A:[ \t]*set?[ \t]`)
	reModelineSetForm = regexp.MustCompile(`\A:[ \t]*set?[ \t][^\r\n:]+:`)
)

// modeline matches content holding a vim modeline that sets filetype (or ft,
// or syntax) to a fixed value. Like vim, only the first modeline marker on a
// line is considered.
type modeline struct {
	options *regexp.Regexp
}

func vimModeline(name string) modeline {
	return modeline{options: regexp.MustCompile(
		`\A(?:(?:[ \t]*:[ \t]*|[ \t])\w*(?:[ \t]*=(?:[^\\\s]|\\.)*)?)*[ \t:](?:filetype|ft|syntax)[ \t]*=` +
			regexp.QuoteMeta(name) + `(?:[\s:]|\z)`,
	)}
}

// Match implements pattern.Pattern.
func (m modeline) Match(content string) bool {
	for len(content) > 0 {
		line := content
		if i := strings.IndexByte(content, '\n'); i >= 0 {
			line, content = content[:i], content[i+1:]
		} else {
			content = ""
		}
		loc := reModelineStart.FindStringIndex(line)
		if loc == nil {
			continue
		}
		rest := line[loc[1]-1:]
		if reModelineSetLike.MatchString(rest) && !reModelineSetForm.MatchString(rest) {
			continue
		}
		if m.options.MatchString(rest) {
			return true
		}
	}
	return false
}
