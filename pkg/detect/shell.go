package detect

import (
	"regexp"

	"github.com/stackvity/ftdetect/pkg/filetype"
)

var (
	reShebangLine   = regexp.MustCompile(`^\s*#!`)
	reShebangCsh    = regexp.MustCompile(`(?i)\bcsh\b`)
	reShebangTcsh   = regexp.MustCompile(`(?i)\btcsh\b`)
	reShebangZsh    = regexp.MustCompile(`(?i)\bzsh\b`)
	reShebangKsh    = regexp.MustCompile(`(?i)\bksh\b`)
	reShebangBash   = regexp.MustCompile(`(?i)\b(bash|bash2)\b`)
	reExecScala     = regexp.MustCompile(`(?mi)^\s*exec\s+(?:\S*/)?scala\b`)
	reExecTcl       = regexp.MustCompile(`(?i)\s*exec\s+(\S*/)?(tclsh|wish)`)
	reContinuedNote = regexp.MustCompile(`^\s*#.*\\$`)
)

// sh picks the shell dialect from the first line, or uses dialect when it is
// not Text, then applies shell.
func sh(content string, dialect filetype.FileType) filetype.FileType {
	if dialect == filetype.Text {
		first := lines(content, 1)
		switch {
		case !reShebangLine.MatchString(first):
			dialect = filetype.Sh
		case reShebangCsh.MatchString(first):
			dialect = filetype.Csh
		case reShebangTcsh.MatchString(first):
			dialect = filetype.Tcsh
		case reShebangZsh.MatchString(first):
			dialect = filetype.Zsh
		case reShebangKsh.MatchString(first):
			dialect = filetype.Ksh
		case reShebangBash.MatchString(first):
			dialect = filetype.Bash
		default:
			dialect = filetype.Sh
		}
	}
	return shell(content, dialect)
}

// shell returns dialect unless the script is a wrapper that execs into scala,
// tclsh or wish.
func shell(content string, dialect filetype.FileType) filetype.FileType {
	if reExecScala.MatchString(lines(content, 10)) {
		return filetype.Scala
	}
	result := dialect
	prev := ""
	eachLine(content, 1000, func(i int, line string) bool {
		if i > 0 && reExecTcl.MatchString(line) && !reContinuedNote.MatchString(prev) {
			result = filetype.Tcl
			return false
		}
		prev = line
		return true
	})
	return result
}

// shellDialect resolves shell scripts without a reliable extension.
func shellDialect(dialect filetype.FileType) Dynamic {
	return func(_, content string) (filetype.FileType, bool) {
		return sh(content, dialect), true
	}
}

func csh(_, content string) (filetype.FileType, bool) {
	return shell(content, filetype.Csh), true
}

func install(_, content string) (filetype.FileType, bool) {
	if find(content, 1, false, "<?php") {
		return filetype.Php, true
	}
	return sh(content, filetype.Bash), true
}
