package detect

import (
	"path"
	"strings"

	"github.com/stackvity/ftdetect/pkg/filetype"
)

// Interpreter extracts the normalized interpreter name from a "#!" first
// line. "#!/usr/bin/env -S python3.11 -u" yields "python".
func Interpreter(content string) (string, bool) {
	first := lines(content, 1)
	if !strings.HasPrefix(first, "#!") {
		return "", false
	}
	fields := strings.Fields(first[2:])
	if len(fields) == 0 {
		return "", false
	}

	prog := path.Base(fields[0])
	if prog == "env" {
		prog = ""
		for _, f := range fields[1:] {
			if strings.HasPrefix(f, "-") || strings.Contains(f, "=") {
				continue
			}
			prog = path.Base(f)
			break
		}
	}
	prog = strings.TrimRight(prog, "0123456789.")
	if prog == "" || prog == "/" {
		return "", false
	}
	return prog, true
}

var interpreters = map[string]filetype.FileType{
	"bash":       filetype.Bash,
	"sh":         filetype.Sh,
	"zsh":        filetype.Zsh,
	"ksh":        filetype.Ksh,
	"mksh":       filetype.Ksh,
	"csh":        filetype.Csh,
	"tcsh":       filetype.Tcsh,
	"fish":       filetype.Fish,
	"dash":       filetype.Sh,
	"ash":        filetype.Sh,
	"perl":       filetype.Perl,
	"raku":       filetype.Raku,
	"perl6":      filetype.Raku,
	"python":     filetype.Python,
	"pypy":       filetype.Python,
	"ruby":       filetype.Ruby,
	"jruby":      filetype.Ruby,
	"php":        filetype.Php,
	"node":       filetype.JavaScript,
	"nodejs":     filetype.JavaScript,
	"ts-node":    filetype.TypeScript,
	"deno":       filetype.TypeScript,
	"bun":        filetype.TypeScript,
	"tclsh":      filetype.Tcl,
	"wish":       filetype.Tcl,
	"expect":     filetype.Expect,
	"lua":        filetype.Lua,
	"luajit":     filetype.Lua,
	"guile":      filetype.Lisp,
	"sbcl":       filetype.Lisp,
	"clisp":      filetype.Lisp,
	"racket":     filetype.Racket,
	"scheme":     filetype.Scheme,
	"elixir":     filetype.Elixir,
	"erlang":     filetype.Erlang,
	"escript":    filetype.Erlang,
	"groovy":     filetype.Groovy,
	"java":       filetype.Java,
	"kotlin":     filetype.Kotlin,
	"scala":      filetype.Scala,
	"clojure":    filetype.Clojure,
	"bb":         filetype.Clojure,
	"ocaml":      filetype.OCaml,
	"ocamlrun":   filetype.OCaml,
	"swift":      filetype.Swift,
	"julia":      filetype.Julia,
	"R":          filetype.R,
	"Rscript":    filetype.R,
	"rscript":    filetype.R,
	"matlab":     filetype.Matlab,
	"octave":     filetype.Octave,
	"awk":        filetype.Awk,
	"gawk":       filetype.Awk,
	"mawk":       filetype.Awk,
	"nawk":       filetype.Awk,
	"sed":        filetype.Sed,
	"make":       filetype.Make,
	"gmake":      filetype.Make,
	"nasm":       filetype.Asm,
	"yasm":       filetype.Asm,
	"pike":       filetype.Pike,
	"bc":         filetype.Bc,
	"dc":         filetype.D,
	"icon":       filetype.Icon,
	"rexx":       filetype.Rexx,
	"regina":     filetype.Rexx,
	"nu":         filetype.Nu,
	"pwsh":       filetype.Ps1,
	"gnuplot":    filetype.GnuPlot,
	"crystal":    filetype.Crystal,
	"dart":       filetype.Dart,
	"runhaskell": filetype.Haskell,
	"stack":      filetype.Haskell,
	"janet":      filetype.JanetSimple,
	"fennel":     filetype.Fennel,
	"nix-shell":  filetype.Nix,
}

// fromShebang maps the interpreter on the first line to a file type. Shell
// interpreters get a second look at the body for exec wrappers.
func fromShebang(content string) (filetype.FileType, bool) {
	prog, ok := Interpreter(content)
	if !ok {
		return filetype.Text, false
	}
	ft, ok := interpreters[prog]
	if !ok {
		return filetype.Text, false
	}
	switch ft {
	case filetype.Sh, filetype.Bash, filetype.Zsh, filetype.Ksh, filetype.Csh, filetype.Tcsh:
		return shell(content, ft), true
	}
	return ft, true
}
