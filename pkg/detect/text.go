package detect

import "strings"

// lines returns the prefix of content holding its first n lines, without the
// trailing newline. n <= 0 returns all of content.
func lines(content string, n int) string {
	if n <= 0 {
		return content
	}
	end := 0
	for i := 0; i < n; i++ {
		j := strings.IndexByte(content[end:], '\n')
		if j < 0 {
			return strings.TrimSuffix(content, "\r")
		}
		end += j + 1
	}
	return strings.TrimSuffix(content[:end-1], "\r")
}

// eachLine calls fn for up to n lines of content (all lines when n <= 0)
// until fn returns false. Line terminators are stripped.
func eachLine(content string, n int, fn func(i int, line string) bool) {
	for i := 0; content != "" && (n <= 0 || i < n); i++ {
		line := content
		if j := strings.IndexByte(content, '\n'); j >= 0 {
			line, content = content[:j], content[j+1:]
		} else {
			content = ""
		}
		if !fn(i, strings.TrimSuffix(line, "\r")) {
			return
		}
	}
}

// lastLine returns the final non-terminator line of content.
func lastLine(content string) string {
	content = strings.TrimRight(content, "\r\n")
	if i := strings.LastIndexByte(content, '\n'); i >= 0 {
		return strings.TrimSuffix(content[i+1:], "\r")
	}
	return content
}

// nextNonBlank returns the first line at or after index start that contains
// something other than whitespace.
func nextNonBlank(content string, start int) (string, bool) {
	var (
		found string
		ok    bool
	)
	eachLine(content, 0, func(i int, line string) bool {
		if i < start || strings.TrimSpace(line) == "" {
			return true
		}
		found, ok = line, true
		return false
	})
	return found, ok
}

// find reports whether needle occurs within the first n lines of content.
func find(content string, n int, caseSensitive bool, needle string) bool {
	return findAny(content, n, caseSensitive, needle)
}

// findAny reports whether any needle occurs within the first n lines of
// content.
func findAny(content string, n int, caseSensitive bool, needles ...string) bool {
	hay := lines(content, n)
	if !caseSensitive {
		hay = strings.ToLower(hay)
	}
	for _, needle := range needles {
		if !caseSensitive {
			needle = strings.ToLower(needle)
		}
		if strings.Contains(hay, needle) {
			return true
		}
	}
	return false
}

// startsWithAny reports whether line starts with any of prefixes.
func startsWithAny(line string, caseSensitive bool, prefixes ...string) bool {
	for _, p := range prefixes {
		if len(line) < len(p) {
			continue
		}
		if caseSensitive && strings.HasPrefix(line, p) {
			return true
		}
		if !caseSensitive && strings.EqualFold(line[:len(p)], p) {
			return true
		}
	}
	return false
}

// anyLine reports whether pred holds for any of the first n lines.
func anyLine(content string, n int, pred func(line string) bool) bool {
	hit := false
	eachLine(content, n, func(_ int, line string) bool {
		hit = pred(line)
		return !hit
	})
	return hit
}
