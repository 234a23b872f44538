package git_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/ftdetect/internal/cli/git"
	"github.com/stackvity/ftdetect/internal/testutil"
	libgit "github.com/stackvity/ftdetect/pkg/scanner/git"
)

// setupTestRepo builds a repository with two commits, a v1.0 tag on the
// first, one staged file, one unstaged modification and one untracked file.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	repo, err := gogit.PlainInit(root, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	commit := func(msg string) {
		t.Helper()
		_, err := wt.Commit(msg, &gogit.CommitOptions{
			Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
		})
		require.NoError(t, err)
	}
	add := func(rel, content string) {
		t.Helper()
		testutil.CreateDummyFile(t, filepath.Join(root, rel), content)
		_, err := wt.Add(rel)
		require.NoError(t, err)
	}

	// C1
	add("README.md", "# readme\n")
	add("src/main.go", "package main\n")
	add("src/util.go", "package main\n")
	commit("Initial commit")
	head, err := repo.Head()
	require.NoError(t, err)
	_, err = repo.CreateTag("v1.0", head.Hash(), nil)
	require.NoError(t, err)

	// C2
	add("src/main.go", "package main\n\nfunc main() {}\n")
	add("docs/guide.md", "# guide\n")
	_, err = wt.Remove("README.md")
	require.NoError(t, err)
	commit("Second commit")

	// Working tree changes.
	add("src/staged.go", "package main\n")
	testutil.CreateDummyFile(t, filepath.Join(root, "src", "util.go"), "package main\n\nvar x = 1\n")
	testutil.CreateDummyFile(t, filepath.Join(root, "untracked.txt"), "new\n")

	return root
}

func TestGoGitClient_GetChangedFiles(t *testing.T) {
	root := setupTestRepo(t)
	client := git.NewGoGitClient(testutil.DiscardHandler())

	testCases := []struct {
		name     string
		path     string
		mode     string
		ref      string
		expected []string
	}{
		{name: "DiffOnly from root", path: root, mode: libgit.ModeDiffOnly, expected: []string{"src/staged.go", "src/util.go"}},
		{name: "DiffOnly from subdirectory", path: filepath.Join(root, "src"), mode: libgit.ModeDiffOnly, expected: []string{"staged.go", "util.go"}},
		{name: "DiffOnly from file", path: filepath.Join(root, "src", "util.go"), mode: libgit.ModeDiffOnly, expected: []string{"staged.go", "util.go"}},
		{name: "DiffOnly outside changes", path: filepath.Join(root, "docs"), mode: libgit.ModeDiffOnly, expected: []string{}},
		{name: "Since tag", path: root, mode: libgit.ModeSince, ref: "v1.0", expected: []string{"README.md", "docs/guide.md", "src/main.go"}},
		{name: "Since tag from subdirectory", path: filepath.Join(root, "src"), mode: libgit.ModeSince, ref: "v1.0", expected: []string{"main.go"}},
		{name: "Since relative revision", path: root, mode: libgit.ModeSince, ref: "HEAD~1", expected: []string{"README.md", "docs/guide.md", "src/main.go"}},
		{name: "Since HEAD", path: root, mode: libgit.ModeSince, ref: "HEAD", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			files, err := client.GetChangedFiles(tc.path, tc.mode, tc.ref)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, files)
		})
	}
}

func TestGoGitClient_Errors(t *testing.T) {
	root := setupTestRepo(t)
	notARepo := t.TempDir()
	client := git.NewGoGitClient(testutil.DiscardHandler())

	testCases := []struct {
		name string
		path string
		mode string
		ref  string
	}{
		{name: "Not a repository", path: notARepo, mode: libgit.ModeDiffOnly},
		{name: "Missing path", path: filepath.Join(root, "missing"), mode: libgit.ModeDiffOnly},
		{name: "Unknown mode", path: root, mode: "blame"},
		{name: "Since without ref", path: root, mode: libgit.ModeSince},
		{name: "Since unknown ref", path: root, mode: libgit.ModeSince, ref: "no-such-tag"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			files, err := client.GetChangedFiles(tc.path, tc.mode, tc.ref)
			require.Error(t, err)
			assert.ErrorIs(t, err, libgit.ErrGitOperation)
			assert.Nil(t, files)
		})
	}
}

func TestGoGitClient_EmptyRepository(t *testing.T) {
	root := t.TempDir()
	_, err := gogit.PlainInit(root, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))

	client := git.NewGoGitClient(nil)
	files, err := client.GetChangedFiles(root, libgit.ModeSince, "v1.0")
	require.NoError(t, err)
	assert.Empty(t, files)

	files, err = client.GetChangedFiles(root, libgit.ModeDiffOnly, "")
	require.NoError(t, err)
	assert.Empty(t, files, "untracked files are not changes")
}
