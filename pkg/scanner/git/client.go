// Package git defines the contract the scanner uses to limit a scan to files
// changed in a Git repository.
package git

import (
	"errors"
	"fmt"
)

// ErrGitOperation indicates a failure during a Git operation performed via a
// Client: the path is not inside a repository, a reference does not resolve,
// or the repository could not be read. Implementations wrap the underlying
// error with it so callers can check errors.Is(err, ErrGitOperation).
var ErrGitOperation = errors.New("git operation failed")

// Mode values accepted by Client.GetChangedFiles.
const (
	ModeDiffOnly = "diffOnly"
	ModeSince    = "since"
)

// Client retrieves the set of changed files in a Git repository.
//
// Stability: Public Stable API - implementations can be provided externally.
type Client interface {
	// GetChangedFiles returns the slash-separated paths of files changed in
	// the repository containing repoPath, relative to repoPath. In ModeDiffOnly
	// these are staged and unstaged changes of tracked files; in ModeSince
	// they are the files touched between ref and HEAD.
	GetChangedFiles(repoPath, mode, ref string) ([]string, error)
}

// Errorf returns a formatted error that wraps ErrGitOperation.
func Errorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrGitOperation}, args...)...)
}
