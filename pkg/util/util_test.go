package util_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/ftdetect/pkg/util"
)

func TestMatchesGitignore(t *testing.T) {
	walkerBase, err := filepath.Abs(filepath.FromSlash("/home/user/project"))
	require.NoError(t, err)
	subDir := filepath.Join(walkerBase, "subdir")
	parent := filepath.Dir(walkerBase)

	testCases := []struct {
		name        string
		pattern     string
		patternBase string
		path        string
		isRooted    bool
		want        bool
	}{
		{"exact file", "file.log", walkerBase, "file.log", false, true},
		{"glob at depth", "*.log", walkerBase, "subdir/debug.log", false, true},
		{"directory itself", "build", walkerBase, "build", false, true},
		{"inside matched directory", "build", walkerBase, "build/file.txt", false, true},
		{"nested directory name", "node_modules", walkerBase, "web/node_modules/react/index.js", false, true},
		{"slash anchors pattern", "target/build", walkerBase, "target/build", false, true},
		{"slash anchored mismatch", "target/build", walkerBase, "x/target/build", false, false},
		{"no match", "*.tmp", walkerBase, "main.go", false, false},
		{"rooted file", "root.log", walkerBase, "root.log", true, true},
		{"rooted file not deep", "root.log", walkerBase, "subdir/root.log", true, false},
		{"rooted dir contents", "dist", walkerBase, "dist/app.js", true, true},
		{"subdir base applies below it", "*.gen.go", subDir, "subdir/deep/a.gen.go", false, true},
		{"subdir base not outside it", "*.gen.go", subDir, "other/a.gen.go", false, false},
		{"subdir rooted", "local.txt", subDir, "subdir/local.txt", true, true},
		{"subdir rooted too deep", "local.txt", subDir, "subdir/x/local.txt", true, false},
		{"ignore file above input", "*.md", parent, "docs/readme.md", false, true},
		{"double star middle", "src/**/test_*.go", walkerBase, "src/a/b/test_x.go", false, true},
		{"double star zero dirs", "src/**/test_*.go", walkerBase, "src/test_x.go", false, true},
		{"double star mismatch", "src/**/test_*.go", walkerBase, "lib/test_x.go", false, false},
		{"empty pattern", "", walkerBase, "file.log", false, false},
		{"empty path", "*.log", walkerBase, "", false, false},
		{"dot path", "*", walkerBase, ".", false, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := util.MatchesGitignore(tc.pattern, tc.patternBase, walkerBase, tc.path, tc.isRooted)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRelSlash(t *testing.T) {
	base := filepath.FromSlash("/work/repo")

	rel, err := util.RelSlash(base, filepath.Join(base, "src", "main.rs"))
	require.NoError(t, err)
	assert.Equal(t, "src/main.rs", rel)

	rel, err = util.RelSlash(base, base)
	require.NoError(t, err)
	assert.Equal(t, "repo", rel)
}
