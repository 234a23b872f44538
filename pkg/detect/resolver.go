package detect

import "github.com/stackvity/ftdetect/pkg/filetype"

// Resolver turns a table hit into a verdict. It may decline by returning
// false, in which case the pipeline continues with the next stage.
type Resolver interface {
	Resolve(path, content string) (filetype.FileType, bool)
}

// Static always resolves to its file type.
type Static filetype.FileType

// Resolve implements Resolver.
func (s Static) Resolve(string, string) (filetype.FileType, bool) {
	return filetype.FileType(s), true
}

// Dynamic inspects the path and content prefix. It must be a pure function
// of its inputs.
type Dynamic func(path, content string) (filetype.FileType, bool)

// Resolve implements Resolver.
func (f Dynamic) Resolve(path, content string) (filetype.FileType, bool) {
	return f(path, content)
}

// retry re-runs the whole pipeline on a rewritten path, e.g. "main.rs.bak"
// becomes "main.rs". The rewrite must strictly shorten the path.
type retry func(path string) (string, bool)

// Resolve implements Resolver using the default detector. Detectors
// intercept retry so that their own options apply to the rewritten path.
func (r retry) Resolve(path, content string) (filetype.FileType, bool) {
	return Default().resolve(r, path, content)
}
