// Package git implements the scanner's Git client on top of go-git, so no
// git executable is required.
package git

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	libgit "github.com/stackvity/ftdetect/pkg/scanner/git"
)

// patchTimeout bounds the diff between the since reference and HEAD.
const patchTimeout = 60 * time.Second

// GoGitClient implements libgit.Client using go-git.
type GoGitClient struct {
	logger *slog.Logger
}

// NewGoGitClient creates a new GoGitClient.
func NewGoGitClient(loggerHandler slog.Handler) libgit.Client {
	if loggerHandler == nil {
		loggerHandler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	logger := slog.New(loggerHandler).With(slog.String("component", "gitClient"))
	return &GoGitClient{logger: logger}
}

// openRepo opens the repository containing dir.
func (c *GoGitClient) openRepo(dir string) (*git.Repository, string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, "", libgit.Errorf("repository not found at or above path '%s': %w", dir, err)
		}
		return nil, "", libgit.Errorf("failed to open repository at '%s': %w", dir, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, "", libgit.Errorf("failed to get worktree for repository '%s': %w", dir, err)
	}
	root := worktree.Filesystem.Root()
	// Temp dirs may be reached through a symlink (macOS /var); compare real paths.
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	return repo, root, nil
}

func (c *GoGitClient) resolveRevision(repo *git.Repository, refName string) (*plumbing.Hash, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(refName))
	if err != nil {
		c.logger.Error("Failed to resolve revision", slog.String("ref", refName), slog.Any("error", err))
		if errors.Is(err, plumbing.ErrReferenceNotFound) || errors.Is(err, plumbing.ErrObjectNotFound) {
			return nil, libgit.Errorf("invalid git reference '%s': %w", refName, err)
		}
		return nil, libgit.Errorf("could not resolve git reference '%s': %w", refName, err)
	}
	return hash, nil
}

// GetChangedFiles implements libgit.Client. repoPath may be any directory or
// file inside a worktree; the returned paths are relative to it (to its
// parent directory for a file) and files outside it are dropped.
func (c *GoGitClient) GetChangedFiles(repoPath, mode, ref string) ([]string, error) {
	logArgs := []any{slog.String("repo", repoPath), slog.String("mode", mode), slog.String("ref", ref)}
	c.logger.Debug("Getting changed files", logArgs...)

	baseDir, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, libgit.Errorf("failed to get absolute path for '%s': %w", repoPath, err)
	}
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, libgit.Errorf("cannot access '%s': %w", repoPath, err)
	}
	if !info.IsDir() {
		baseDir = filepath.Dir(baseDir)
	}
	if resolved, err := filepath.EvalSymlinks(baseDir); err == nil {
		baseDir = resolved
	}

	repo, root, err := c.openRepo(baseDir)
	if err != nil {
		c.logger.Error("Failed to open repository", append(logArgs, slog.Any("error", err))...)
		return nil, err
	}

	var changed []string
	switch mode {
	case libgit.ModeDiffOnly:
		changed, err = c.worktreeChanges(repo)
	case libgit.ModeSince:
		changed, err = c.changesSince(repo, ref)
	default:
		err = libgit.Errorf("unsupported git diff mode: %s", mode)
	}
	if err != nil {
		c.logger.Error("Failed to compute changed files", append(logArgs, slog.Any("error", err))...)
		return nil, err
	}

	files := make([]string, 0, len(changed))
	for _, p := range changed {
		rel, err := filepath.Rel(baseDir, filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if rel == ".." || strings.HasPrefix(rel, "../") {
			continue
		}
		files = append(files, rel)
	}
	slices.Sort(files)
	files = slices.Compact(files)
	c.logger.Debug("Found changed files", append(logArgs, slog.Int("count", len(files)))...)
	return files, nil
}

// worktreeChanges lists staged and unstaged changes of tracked files,
// relative to the worktree root.
func (c *GoGitClient) worktreeChanges(repo *git.Repository) ([]string, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, libgit.Errorf("failed to get worktree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, libgit.Errorf("failed to get git status: %w", err)
	}
	var files []string
	for filePath, fileStatus := range status {
		isUntracked := fileStatus.Staging == git.Untracked && fileStatus.Worktree == git.Untracked
		if isUntracked || (fileStatus.Staging == git.Unmodified && fileStatus.Worktree == git.Unmodified) {
			continue
		}
		files = append(files, filepath.ToSlash(filePath))
	}
	return files, nil
}

// changesSince lists the files touched between ref and HEAD, relative to
// the worktree root. Deleted files are listed under their old path.
func (c *GoGitClient) changesSince(repo *git.Repository, ref string) ([]string, error) {
	if ref == "" {
		return nil, libgit.Errorf("git diff mode 'since' requires a non-empty reference")
	}
	headRef, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			c.logger.Warn("HEAD reference not found, repository might be empty")
			return nil, nil
		}
		return nil, libgit.Errorf("failed to get HEAD reference: %w", err)
	}
	headCommit, err := repo.CommitObject(headRef.Hash())
	if err != nil {
		return nil, libgit.Errorf("failed to get HEAD commit: %w", err)
	}
	sinceHash, err := c.resolveRevision(repo, ref)
	if err != nil {
		return nil, err
	}
	sinceCommit, err := repo.CommitObject(*sinceHash)
	if err != nil {
		return nil, libgit.Errorf("failed to get commit for reference '%s': %w", ref, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), patchTimeout)
	defer cancel()
	patch, err := sinceCommit.PatchContext(ctx, headCommit)
	if err != nil {
		return nil, libgit.Errorf("failed to diff '%s' against HEAD: %w", ref, err)
	}

	var files []string
	for _, filePatch := range patch.FilePatches() {
		from, to := filePatch.Files()
		switch {
		case to != nil:
			files = append(files, filepath.ToSlash(to.Path()))
		case from != nil:
			files = append(files, filepath.ToSlash(from.Path()))
		}
	}
	return files, nil
}
