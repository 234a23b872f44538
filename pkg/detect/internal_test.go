package detect

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/ftdetect/pkg/filetype"
)

func TestNewPathInfo(t *testing.T) {
	testCases := []struct {
		in     string
		name   string
		ext    string
		hasExt bool
	}{
		{"src/main.rs", "main.rs", "rs", true},
		{".bashrc", ".bashrc", "", false},
		{"dir/", "dir", "", false},
		{"archive.tar.gz", "archive.tar.gz", "gz", true},
		{"trailing.", "trailing.", "", true},
		{"..", "", "", false},
		{"bad\xff.c", "", "", false},
	}
	for _, tc := range testCases {
		info := newPathInfo(tc.in)
		assert.Equal(t, tc.name, info.name, tc.in)
		assert.Equal(t, tc.ext, info.ext, tc.in)
		assert.Equal(t, tc.hasExt, info.hasExt, tc.in)
	}
}

func TestStripExtension(t *testing.T) {
	got, ok := stripExtension("dir/foo.c.bak")
	require.True(t, ok)
	assert.Equal(t, "dir/foo.c", got)

	_, ok = stripExtension("dir/.bashrc")
	assert.False(t, ok)
	_, ok = stripExtension("Makefile")
	assert.False(t, ok)
}

func TestCompoundExtensions(t *testing.T) {
	assert.Equal(t, []string{"main.rs"}, compoundExtensions("main.rs"))
	assert.Equal(t, []string{"blade.php"}, compoundExtensions("Blade.php"))
	assert.Nil(t, compoundExtensions(".bashrc"))
	assert.Nil(t, compoundExtensions("Makefile"))
	assert.Equal(t, []string{"foo.js.erb", "js.erb"}, compoundExtensions("foo.JS.erb"))
	assert.Equal(t, []string{"b.c.d.e.f", "c.d.e.f", "d.e.f", "e.f"}, compoundExtensions("a.b.c.d.e.f"))
}

func TestComponentsAndParent(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, components("/a//b/./c/"))
	assert.Equal(t, "debian", parentName("pkg/debian/control"))
	assert.Equal(t, "", parentName("control"))
}

func TestTextHelpers(t *testing.T) {
	content := "one\r\ntwo\n\n  \nfive\n"

	assert.Equal(t, "one", lines(content, 1))
	assert.Equal(t, "one\r\ntwo", lines(content, 2))
	assert.Equal(t, content, lines(content, 0))
	assert.Equal(t, "five", lastLine(content))

	line, ok := nextNonBlank(content, 2)
	require.True(t, ok)
	assert.Equal(t, "five", line)
	_, ok = nextNonBlank("\n \n", 0)
	assert.False(t, ok)

	assert.True(t, find(content, 2, true, "two"))
	assert.False(t, find(content, 1, true, "two"))
	assert.True(t, findAny(content, 0, false, "nope", "FIVE"))
	assert.True(t, startsWithAny("Hello world", false, "x", "hello"))
	assert.False(t, startsWithAny("Hello world", true, "hello"))
	assert.True(t, anyLine(content, 0, func(l string) bool { return l == "five" }))
	assert.False(t, anyLine(content, 2, func(l string) bool { return l == "five" }))

	var seen []string
	eachLine(content, 3, func(_ int, l string) bool {
		seen = append(seen, l)
		return true
	})
	assert.Equal(t, []string{"one", "two", ""}, seen)
}

func TestRetryResolvers(t *testing.T) {
	ft, ok := tmp.Resolve("notes.md~", "")
	require.True(t, ok)
	assert.Equal(t, filetype.Markdown, ft)

	ft, ok = bak.Resolve("main.rs.bak", "")
	require.True(t, ok)
	assert.Equal(t, filetype.Rust, ft)

	_, ok = tmp.Resolve("~", "")
	assert.False(t, ok)
	_, ok = bak.Resolve("noext", "")
	assert.False(t, ok)

	next, ok := configureIn("src/configure.in")
	require.True(t, ok)
	assert.Equal(t, "src/configure", next)
	_, ok = configureIn("src/setup.in")
	assert.False(t, ok)

	d := New(WithOverrides(map[string]filetype.FileType{"rs": filetype.Go}))
	ft, ok = d.resolve(bak, "main.rs.bak", "")
	require.True(t, ok)
	assert.Equal(t, filetype.Go, ft)
}

func TestTablesResolveWithoutPanicking(t *testing.T) {
	d := New()
	samples := []string{"", "#!/bin/sh\necho hi\n", "<?xml version=\"1.0\"?>\n<root/>\n", "(define x 1)\n", strings.Repeat("x = 1\n", 50)}

	check := func(kind, key string, r Resolver) {
		for _, content := range samples {
			assert.NotPanics(t, func() {
				ft, _ := d.resolve(r, "dir/"+key, content)
				assert.True(t, ft.Valid(), "%s %q", kind, key)
			}, "%s %q", kind, key)
		}
	}
	for key, r := range extensionTable() {
		check("extension", "file."+key, r)
	}
	for key, r := range filenameTable() {
		check("filename", key, r)
	}
	for key, r := range suffixTable() {
		require.Contains(t, key, "/", "suffix keys span directories")
		check("suffix", key, r)
	}
	lists := patternTable()
	assert.NotEmpty(t, lists.high)
	assert.NotEmpty(t, lists.low)
	assert.Equal(t, len(patternEntries), len(lists.high)+len(lists.low))
}

func TestPatternMatchHaystack(t *testing.T) {
	byName := compiledPattern{re: regexp.MustCompile(`^Dockerfile\..*`)}
	assert.True(t, byName.match(newPathInfo("a/Dockerfile.dev")))
	assert.False(t, byName.match(newPathInfo("bad\xff/Dockerfile.dev")))

	byPath := compiledPattern{fullPath: true, re: regexp.MustCompile(`.*/queries/.*\.scm$`)}
	assert.True(t, byPath.match(newPathInfo("a/queries/x.scm")))
	assert.False(t, byPath.match(newPathInfo("x.scm")))
}
