package detect

import (
	"regexp"
	"sync"
)

// patternEntry matches a regular expression against the full slash path or
// the file name. Entries with a negative priority run after the extension
// table.
type patternEntry struct {
	fullPath bool
	expr     string
	priority int
	resolver Resolver
}

type compiledPattern struct {
	fullPath bool
	re       *regexp.Regexp
	resolver Resolver
}

func (p compiledPattern) match(info pathInfo) bool {
	hay := info.name
	if p.fullPath {
		hay = info.full
	}
	return hay != "" && p.re.MatchString(hay)
}

type patternLists struct {
	high []compiledPattern
	low  []compiledPattern
}

// patternTable splits patternEntries once, keeping declared order within
// each list.
var patternTable = sync.OnceValue(func() patternLists {
	var lists patternLists
	for _, e := range patternEntries {
		c := compiledPattern{fullPath: e.fullPath, re: regexp.MustCompile(e.expr), resolver: e.resolver}
		if e.priority < 0 {
			lists.low = append(lists.low, c)
		} else {
			lists.high = append(lists.high, c)
		}
	}
	return lists
})
