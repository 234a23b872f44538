package detect

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// pathInfo is the slash-normalized view of a path that every stage reads.
// name and ext are empty when the path is not valid UTF-8.
type pathInfo struct {
	full   string
	name   string
	ext    string
	hasExt bool
}

func newPathInfo(p string) pathInfo {
	if !utf8.ValidString(p) {
		return pathInfo{}
	}
	full := filepath.ToSlash(p)
	name := fileName(full)
	ext, ok := extension(name)
	return pathInfo{full: full, name: name, ext: ext, hasExt: ok}
}

// fileName returns the final path component, ignoring trailing slashes.
// "." and ".." have no file name.
func fileName(p string) string {
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		p = p[i+1:]
	}
	if p == "." || p == ".." {
		return ""
	}
	return p
}

// extension returns the text after the last dot of name. Names whose only
// dot is the leading one (".bashrc") have no extension.
func extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}

// stripExtension removes the last extension from the file name of p.
func stripExtension(p string) (string, bool) {
	name := fileName(p)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	p = strings.TrimRight(p, "/")
	return p[:len(p)-len(name)] + name[:i], true
}

// components splits p into its non-empty, non-"." components.
func components(p string) []string {
	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, c := range parts {
		if c == "" || c == "." {
			continue
		}
		out = append(out, c)
	}
	return out
}

// compoundExtensions returns the dotted suffixes of name with two to five
// non-empty segments, longest first, lowercased: "foo.js.erb" yields
// "foo.js.erb" and "js.erb", and "blade.php" yields itself.
func compoundExtensions(name string) []string {
	var parts []string
	for _, s := range strings.Split(strings.ToLower(name), ".") {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) < 2 {
		return nil
	}
	out := make([]string, 0, 4)
	for n := min(len(parts), 5); n >= 2; n-- {
		out = append(out, strings.Join(parts[len(parts)-n:], "."))
	}
	return out
}

// parentName returns the name of the directory containing p.
func parentName(p string) string {
	p = strings.TrimRight(p, "/")
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return ""
	}
	return fileName(p[:i])
}
