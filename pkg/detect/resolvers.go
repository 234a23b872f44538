package detect

import (
	"regexp"
	"strings"

	"github.com/stackvity/ftdetect/pkg/filetype"
)

// Content probes used by the extension and filename tables. Each inspects a
// bounded number of leading lines and returns false to let later stages
// decide.

var (
	rePascalKeywords = regexp.MustCompile(`(?i)^\s*(program|unit|library|uses|begin|procedure|function|const|type|var)\b`)
	rePascalComments = regexp.MustCompile(`^\s*(\{|\(\*|//)`)
	reRapid          = regexp.MustCompile(`(?i)^\s*(%{3}|module\s+\w+\s*(\(|$))`)
	reLprologModule  = regexp.MustCompile(`(?i)\bmodule\s+\w+\s*\.\s*(%|$)`)
	reProlog         = regexp.MustCompile(`(?i):-|\bprolog\b|^\s*(%+(\s|$)|/\*)`)
)

func isRapid(content string) bool {
	line, ok := nextNonBlank(content, 0)
	return ok && reRapid.MatchString(line)
}

func isLprolog(content string) bool {
	result := false
	eachLine(content, 500, func(_ int, line string) bool {
		t := strings.TrimLeft(line, " \t")
		if t == "" || strings.HasPrefix(t, "%") {
			return true
		}
		result = reLprologModule.MatchString(line)
		return false
	})
	return result
}

func looksLikeProlog(content string) bool {
	line, ok := nextNonBlank(content, 0)
	return ok && reProlog.MatchString(line)
}

func asa(_, _ string) (filetype.FileType, bool) {
	return filetype.AspVbs, true
}

func asm(_, content string) (filetype.FileType, bool) {
	if findAny(content, 10, true, ".title", ".ident", ".macro", ".subtitle", ".library") {
		return filetype.Vmasm, true
	}
	return filetype.Asm, true
}

func asp(_, content string) (filetype.FileType, bool) {
	if find(content, 3, false, "perlscript") {
		return filetype.AspPerl, true
	}
	return filetype.AspVbs, true
}

// bak retries detection without the final extension: "main.rs.bak".
var bak = retry(stripExtension)

// tmp retries detection without a trailing "~": "main.rs~".
var tmp = retry(func(p string) (string, bool) {
	if !strings.HasSuffix(p, "~") || fileName(p) == "~" {
		return "", false
	}
	return strings.TrimSuffix(p, "~"), true
})

var (
	reFbKeywords  = regexp.MustCompile(`(?i)^\s*(extern|var|enum|private|scope|union|byref|operator|constructor|delete|namespace|public|property|with|destructor|using)\b`)
	reFbAssign    = regexp.MustCompile(`^\s*[:=(]`)
	reFbPreproc   = regexp.MustCompile(`(?i)^\s*(#\s*[a-z]+|option\s+(byval|dynamic|escape|(no)?gosub|nokeyword|private|static)\b|(''|rem)\s*\$lang\b|def(byte|longint|short|ubyte|uint|ulongint|ushort)\b)`)
	reFbComment   = regexp.MustCompile(`^\s*/'`)
	reQb64Preproc = regexp.MustCompile(`(?i)^\s*(\$[a-z]+|option\s+(_explicit|_?explicitarray)\b)`)
)

func isFreeBasicKeyword(line string) bool {
	loc := reFbKeywords.FindStringIndex(line)
	return loc != nil && !reFbAssign.MatchString(line[loc[1]:])
}

func bas(_, content string) (filetype.FileType, bool) {
	result := filetype.Basic
	eachLine(content, 100, func(_ int, line string) bool {
		switch {
		case findAny(line, 0, false, "BEGIN VB.Form", "BEGIN VB.MDIForm", "BEGIN VB.UserControl"):
			result = filetype.Vb
		case reFbComment.MatchString(line) || reFbPreproc.MatchString(line) || isFreeBasicKeyword(line):
			result = filetype.FreeBasic
		case reQb64Preproc.MatchString(line):
			result = filetype.Qb64
		default:
			return true
		}
		return false
	})
	return result, true
}

var reBindzone = regexp.MustCompile(`^; <<>> DiG [0-9.]+.* <<>>|\$ORIGIN|\$TTL|IN\s+SOA`)

// bindzone recognizes DNS zone files, falling back to def when set.
func bindzone(def filetype.FileType) Dynamic {
	return func(_, content string) (filetype.FileType, bool) {
		if reBindzone.MatchString(lines(content, 4)) {
			return filetype.Bindzone, true
		}
		return def, def != filetype.Text
	}
}

var (
	reHaproxySection = regexp.MustCompile(`(?mi)^\s*(global|defaults|frontend|backend|listen)\b`)
	reIniSection     = regexp.MustCompile(`(?m)^\s*\[[^\]]+\]\s*$`)
	reIniAssignment  = regexp.MustCompile(`(?m)^\s*[A-Za-z0-9_.-]+\s*=`)
	reRapidCfg       = regexp.MustCompile(`(?i)(eio|mmc|moc|proc|sio|sys):cfg`)
)

func cfg(_, content string) (filetype.FileType, bool) {
	if reHaproxySection.MatchString(lines(content, 50)) {
		return filetype.Haproxy, true
	}
	head := lines(content, 120)
	if reIniSection.MatchString(head) || reIniAssignment.MatchString(head) {
		return filetype.ConfIni, true
	}
	if reRapidCfg.MatchString(lines(content, 1)) {
		return filetype.Rapid, true
	}
	return filetype.Cfg, true
}

var (
	reChHeader   = regexp.MustCompile(`^(#|!)`)
	rePercent    = regexp.MustCompile(`(?m)^\s*%`)
	reCharityDat = regexp.MustCompile(`(?mi)^\s*data\s+\w`)
	reChBody     = regexp.MustCompile(`(?i)main\s*\(|#\s*include|//`)
)

func change(_, content string) (filetype.FileType, bool) {
	if reChHeader.MatchString(lines(content, 1)) {
		return filetype.Ch, true
	}
	if rePercent.MatchString(lines(content, 5)) && reCharityDat.MatchString(lines(content, 50)) && strings.Contains(content, "->") {
		return filetype.Charity, true
	}
	result := filetype.Chill
	eachLine(content, 10, func(_ int, line string) bool {
		switch {
		case strings.HasPrefix(line, "@"):
			result = filetype.Change
		case strings.Contains(line, "MODULE"):
			result = filetype.Chill
		case reChBody.MatchString(line):
			result = filetype.Ch
		default:
			return true
		}
		return false
	})
	return result, true
}

func changelog(_, content string) (filetype.FileType, bool) {
	if find(content, 1, false, "; urgency=") {
		return filetype.DebChangelog, true
	}
	return filetype.Changelog, true
}

var (
	reClsTex      = regexp.MustCompile(`^[%\\]`)
	reApexDecl    = regexp.MustCompile(`(?mi)^\s*(global|public|private|protected)\s+(with\s+sharing\s+)?(class|interface|enum)\b`)
	reApexTrigger = regexp.MustCompile(`(?m)\btrigger\s+\w+\s+on\s+\w+\s*\(`)
)

func cls(_, content string) (filetype.FileType, bool) {
	first := lines(content, 1)
	switch {
	case reClsTex.MatchString(first):
		return filetype.Tex, true
	case strings.HasPrefix(first, "#") && strings.Contains(strings.ToLower(first), "rexx"):
		return filetype.Rexx, true
	case first == "VERSION 1.0 CLASS":
		return filetype.Vb, true
	case reApexDecl.MatchString(lines(content, 120)) || reApexTrigger.MatchString(lines(content, 200)):
		return filetype.Apex, true
	}
	return filetype.St, true
}

func cmd(_, content string) (filetype.FileType, bool) {
	if strings.HasPrefix(content, "/*") {
		return filetype.Rexx, true
	}
	return filetype.DosBatch, true
}

var reMason = regexp.MustCompile(`(?i)(<%|</%|<%args>|<%init>|<%perl>|<%once>|<%def\b)`)

func comp(_, content string) (filetype.FileType, bool) {
	if reMason.MatchString(lines(content, 80)) {
		return filetype.Mason, true
	}
	return filetype.Glsl, true
}

func control(_, content string) (filetype.FileType, bool) {
	if strings.HasPrefix(content, "Source:") {
		return filetype.DebControl, true
	}
	return filetype.Text, false
}

func copyright(_, content string) (filetype.FileType, bool) {
	if strings.HasPrefix(content, "Format:") {
		return filetype.DebCopyright, true
	}
	return filetype.Text, false
}

func cobolOrFaust(_, content string) (filetype.FileType, bool) {
	head := lines(content, 200)
	if findAny(head, 0, false, "IDENTIFICATION DIVISION", "PROGRAM-ID.", "DATA DIVISION", "PROCEDURE DIVISION") {
		return filetype.Cobol, true
	}
	if findAny(head, 0, false, "process =", `import("`, "declare ", "library(") {
		return filetype.Faust, true
	}
	return filetype.Cobol, true
}

func cpy(_, content string) (filetype.FileType, bool) {
	if strings.HasPrefix(content, "##") {
		return filetype.Python, true
	}
	return filetype.Cobol, true
}

var (
	reUpstreamDat = regexp.MustCompile(`(?i)^((.*\.)?upstream\.dat|upstream\..*\.dat)$`)
	reKrlDat      = regexp.MustCompile(`(?i)^\s*(&\w+|defdat\b)`)
)

func dat(p, content string) (filetype.FileType, bool) {
	if reUpstreamDat.MatchString(fileName(p)) {
		return filetype.UpstreamDat, true
	}
	if line, ok := nextNonBlank(content, 0); ok && reKrlDat.MatchString(line) {
		return filetype.Krl, true
	}
	return filetype.Text, false
}

var reSgmlDecl = regexp.MustCompile(`(?i)^<!sgml`)

func decl(_, content string) (filetype.FileType, bool) {
	if anyLine(content, 3, reSgmlDecl.MatchString) {
		return filetype.SgmlDecl, true
	}
	return filetype.Text, false
}

var dep3Headers = []string{
	"Description:", "Subject:", "Origin:", "Bug:", "Forwarded:", "Author:",
	"From:", "Reviewed-by:", "Acked-by:", "Last-Updated:", "Applied-Upstream:",
}

func dep3patch(p, content string) (filetype.FileType, bool) {
	if name := fileName(p); name == "" || name == "series" {
		return filetype.Text, false
	}
	found := false
	eachLine(content, 100, func(_ int, line string) bool {
		if startsWithAny(line, true, dep3Headers...) {
			found = true
			return false
		}
		return !strings.HasPrefix(line, "---")
	})
	if found {
		return filetype.Dep3Patch, true
	}
	return filetype.Text, false
}

var reDslSgml = regexp.MustCompile(`^\s*<!`)

func dsl(_, content string) (filetype.FileType, bool) {
	if reDslSgml.MatchString(lines(content, 1)) {
		return filetype.Dsl, true
	}
	return filetype.Structurizr, true
}

var (
	reDModule = regexp.MustCompile(`(?i)^(module|import)\b`)
	reDTrace  = regexp.MustCompile(`^#!\S+dtrace|#pragma\s+D\s+option|:\S-:\S-:`)
)

func dtrace(_, content string) (filetype.FileType, bool) {
	result := filetype.D
	eachLine(content, 100, func(_ int, line string) bool {
		switch {
		case reDModule.MatchString(line):
			result = filetype.D
		case reDTrace.MatchString(line):
			result = filetype.DTrace
		default:
			return true
		}
		return false
	})
	return result, true
}

var reSpecman = regexp.MustCompile(`^\s*<'\s*$|^\s*'>\s*$`)

func eiffel(_, content string) (filetype.FileType, bool) {
	if anyLine(content, 100, reSpecman.MatchString) {
		return filetype.SpecMan, true
	}
	return filetype.Eiffel, true
}

var reEdif = regexp.MustCompile(`(?i)^\s*\(\s*edif\b`)

func edn(_, content string) (filetype.FileType, bool) {
	if reEdif.MatchString(lines(content, 1)) {
		return filetype.Edif, true
	}
	return filetype.Edn, true
}

var reClBlock = regexp.MustCompile(`^\s*[#{]`)

func ent(_, content string) (filetype.FileType, bool) {
	result := filetype.Dtd
	eachLine(content, 5, func(_ int, line string) bool {
		if reClBlock.MatchString(line) {
			result = filetype.Cl
			return false
		}
		return strings.TrimSpace(line) == ""
	})
	return result, true
}

var reEuphoria = regexp.MustCompile(`^(--|ifdef\b|include\b)`)

func ex(_, content string) (filetype.FileType, bool) {
	if anyLine(content, 100, reEuphoria.MatchString) {
		return filetype.Euphoria3, true
	}
	return filetype.Elixir, true
}

func foam(_, content string) (filetype.FileType, bool) {
	header := false
	hit := false
	eachLine(content, 15, func(_ int, line string) bool {
		if strings.Contains(line, "FoamFile") {
			header = true
		} else if header && strings.HasPrefix(strings.TrimLeft(line, " \t"), "object") {
			hit = true
			return false
		}
		return true
	})
	if hit {
		return filetype.Foam, true
	}
	return filetype.Text, false
}

func frm(_, content string) (filetype.FileType, bool) {
	if findAny(content, 5, false, "BEGIN VB.Form", "BEGIN VB.MDIForm") {
		return filetype.Vb, true
	}
	return filetype.Form, true
}

func fsharpOrForth(_, content string) (filetype.FileType, bool) {
	if anyLine(content, 100, func(line string) bool {
		return line != "" && strings.ContainsRune(`:(\`, rune(line[0]))
	}) {
		return filetype.Forth, true
	}
	return filetype.FSharp, true
}

func fvwm(p, _ string) (filetype.FileType, bool) {
	if ext, _ := extension(fileName(p)); ext == "m4" {
		return filetype.Fvwm2M4, true
	}
	return filetype.Fvwm2, true
}

var reGitRef = regexp.MustCompile(`^[a-fA-F0-9]{40,}\b|^ref: `)

func git(_, content string) (filetype.FileType, bool) {
	if reGitRef.MatchString(lines(content, 1)) {
		return filetype.Git, true
	}
	return filetype.Text, false
}

var (
	reObjCDirective = regexp.MustCompile(`(?i)^@(interface|protocol|end|class)\b`)
	reCppDecl       = regexp.MustCompile(`(?i)^\s*(namespace|template)\b`)
	reCppKeyword    = regexp.MustCompile(`\b(constexpr|nullptr)\b`)
)

// header classifies ".h" files. It always returns a verdict.
func header(_, content string) (filetype.FileType, bool) {
	result := filetype.C
	eachLine(content, 200, func(_ int, line string) bool {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "#import") || reObjCDirective.MatchString(trimmed) {
			result = filetype.ObjC
			return false
		}
		if strings.HasPrefix(trimmed, "@") {
			return true
		}
		if reCppDecl.MatchString(line) || reCppKeyword.MatchString(line) || strings.Contains(line, "std::") {
			result = filetype.Cpp
			return false
		}
		return true
	})
	return result, true
}

func hook(_, content string) (filetype.FileType, bool) {
	if lines(content, 1) == "[Trigger]" {
		return filetype.Conf, true
	}
	return filetype.Text, false
}

var (
	reXhtmlDTD = regexp.MustCompile(`\bDTD\s+XHTML\s`)
	reDjango   = regexp.MustCompile(`(?i)\{%\s*(extends|block|load)\b|\{#\s+`)
)

func html(_, content string) (filetype.FileType, bool) {
	result := filetype.Html
	eachLine(content, 10, func(_ int, line string) bool {
		switch {
		case reXhtmlDTD.MatchString(line):
			result = filetype.Xhtml
		case reDjango.MatchString(line):
			result = filetype.HtmlDjango
		default:
			return true
		}
		return false
	})
	return result, true
}

func hw(_, content string) (filetype.FileType, bool) {
	if find(content, 1, false, "<?php") {
		return filetype.Php, true
	}
	return filetype.Virata, true
}

var reMsidl = regexp.MustCompile(`(?i)^\s*import\s+"(unknwn|objidl)"\.idl`)

func idl(_, content string) (filetype.FileType, bool) {
	if anyLine(content, 50, reMsidl.MatchString) {
		return filetype.Msidl, true
	}
	return filetype.Idl, true
}

// configureIn retries "configure.in" as "configure".
var configureIn = retry(func(p string) (string, bool) {
	if fileName(p) != "configure.in" {
		return "", false
	}
	return stripExtension(p)
})

var (
	reSQLStatement = regexp.MustCompile(`(?mi)^\s*(select|insert|update|delete|create|alter|drop|flush|set|use)\b`)
	reHTMLInclude  = regexp.MustCompile(`(?mi)<!DOCTYPE\s+html\b|<\s*/?\s*(html|head|body|div|p|ul|li|a|table|tr|td|span|meta|link)\b`)
	reAsmMacro     = regexp.MustCompile(`(?mi)^\s*\.(macro|endmacro|segment|define|include)\b|^\s*%macro\b|^\s*%define\b`)
	rePawn         = regexp.MustCompile(`(?mi)^\s*#\s*include\s*<\s*(a_samp|sourcemod|amxmodx)\s*>|^\s*#\s*pragma\s+semicolon\b|^\s*public\s+\w+\s*\(`)
	reCppInclude   = regexp.MustCompile(`(?m)^\s*#\s*include\s*<|^\s*using\s+namespace\b|\b(namespace|template|class|struct)\b`)
	rePascalOpen   = regexp.MustCompile(`(?i)^\s(\{|\(\*)`)
	reBitbake      = regexp.MustCompile(`(?i)^\s*(inherit|require|[A-Z][\w:${}]*\s+\??[?:+]?=) `)
)

func inc(p, content string) (filetype.FileType, bool) {
	first := lines(content, 3)
	head := lines(content, 2500)

	if reSQLStatement.MatchString(head) && strings.Contains(head, ";") {
		if strings.Contains(head, "mysql.") || strings.Contains(head, "`") || strings.Contains(head, "@@") {
			return filetype.MySql, true
		}
		return filetype.Sql, true
	}
	if reHTMLInclude.MatchString(head) {
		return filetype.Html, true
	}
	if reAsmMacro.MatchString(head) {
		return asm(p, content)
	}
	if rePawn.MatchString(head) || findAny(head, 0, false, "#endinput", "forward public", "stock ") {
		if findAny(head, 0, false, "<sourcemod>", "Plugin:") {
			return filetype.Sourcepawn, true
		}
		return filetype.Pawn, true
	}
	if reCppInclude.MatchString(head) || strings.Contains(head, `extern "C"`) || strings.Contains(head, "::") {
		return filetype.Cpp, true
	}
	switch {
	case find(first, 0, false, "perlscript"):
		return filetype.AspPerl, true
	case strings.Contains(first, "<%"):
		return filetype.AspVbs, true
	case strings.Contains(first, "<?"):
		return filetype.Php, true
	case rePascalOpen.MatchString(first) || rePascalKeywords.MatchString(first):
		return filetype.Pascal, true
	case reBitbake.MatchString(first):
		return filetype.Bitbake, true
	}
	if ft, _ := asm(p, content); ft != filetype.Asm {
		return ft, true
	}
	return filetype.Pov, true
}

func inp(_, content string) (filetype.FileType, bool) {
	if strings.HasPrefix(content, "*") {
		return filetype.Abaqus, true
	}
	if anyLine(content, 500, func(line string) bool {
		return startsWithAny(line, false, "header surface data")
	}) {
		return filetype.Trasys, true
	}
	return filetype.Text, false
}

var logFlavors = []struct {
	re *regexp.Regexp
	ft filetype.FileType
}{
	{regexp.MustCompile(`(?i)upstream([.-].*)?\.log|.*\.upstream\.log`), filetype.UpstreamLog},
	{regexp.MustCompile(`(?i)upstreaminstall(\..*)?\.log|.*\.upstreaminstall\.log`), filetype.UpstreamInstallLog},
	{regexp.MustCompile(`(?i)usserver(\..*)?\.log|.*\.usserver\.log`), filetype.UsServerLog},
	{regexp.MustCompile(`(?i)usw2kagtlog(\..*)?\.log|.*\.usw2kagtlog\.log`), filetype.Usw2KagtLog},
}

func logFile(p, _ string) (filetype.FileType, bool) {
	for _, f := range logFlavors {
		if f.re.MatchString(p) {
			return f.ft, true
		}
	}
	return filetype.Text, false
}

func lpc(_, content string) (filetype.FileType, bool) {
	if anyLine(content, 12, func(line string) bool {
		return startsWithAny(line, true, "inherit", "private", "protected", "nosave", "string", "object", "mapping", "mixed")
	}) {
		return filetype.Lpc, true
	}
	return filetype.C, true
}

var reLarch = regexp.MustCompile(`^\s*%|:\s*trait\s*$`)

func lsl(_, content string) (filetype.FileType, bool) {
	if line, ok := nextNonBlank(content, 0); ok && reLarch.MatchString(line) {
		return filetype.Larch, true
	}
	return filetype.Lsl, true
}

var (
	reOctaveEnd   = regexp.MustCompile(`(?i)(^|;)\s*\bend(_try_catch|classdef|enumeration|events|methods|parfor|properties)\b`)
	reObjCPreproc = regexp.MustCompile(`(?i)^\s*#\s*(import|include|define|if|ifn?def|undef|line|error|pragma)\b`)
	reMumpsLabel  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*\s+;`)
	reMurphi      = regexp.MustCompile(`(?i)^\s*((type|var)\b|--)`)
)

// objcOrMatlab separates Objective-C, Octave, Matlab, Mathematica, Murphi and MUMPS.
func objcOrMatlab(_, content string) (filetype.FileType, bool) {
	var (
		sawComment bool
		mumps      int
		result     filetype.FileType
		decided    bool
	)
	eachLine(content, 100, func(_ int, line string) bool {
		t := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(t, "set ") || strings.HasPrefix(t, "write ") || strings.HasPrefix(t, "quit") {
			mumps++
		}
		if strings.Contains(t, "$order(") || strings.Contains(t, "zwrite") {
			mumps += 2
		}
		if reMumpsLabel.MatchString(line) {
			mumps++
		}
		if strings.HasPrefix(t, "/*") {
			sawComment = true
		}

		switch {
		case mumps >= 3:
			result = filetype.Mumps
		case strings.HasPrefix(t, "//") || startsWithAny(t, false, "@import") || reObjCPreproc.MatchString(line):
			result = filetype.ObjC
		case startsWithAny(t, false, "#", "%%!", "unwind_protect") || reOctaveEnd.MatchString(line):
			result = filetype.Octave
		case strings.HasPrefix(t, "%%"):
			result = filetype.Matlab
		case strings.HasPrefix(t, "(*"):
			result = filetype.Mma
		case reMurphi.MatchString(line):
			result = filetype.Murphi
		default:
			return true
		}
		decided = true
		return false
	})
	switch {
	case decided:
		return result, true
	case sawComment:
		return filetype.ObjC, true
	}
	return filetype.Matlab, true
}

func m4(p, _ string) (filetype.FileType, bool) {
	if strings.HasSuffix(p, "html.m4") || strings.Contains(p, "fvwm2rc") {
		return filetype.Text, false
	}
	return filetype.M4, true
}

func mc(_, content string) (filetype.FileType, bool) {
	result := filetype.M4
	eachLine(content, 20, func(_ int, line string) bool {
		t := strings.TrimLeft(line, " \t")
		switch {
		case startsWithAny(t, false, "#", "dnl"):
			result = filetype.M4
		case strings.HasPrefix(t, ";"):
			result = filetype.MsMessages
		default:
			return true
		}
		return false
	})
	return result, true
}

func me(p, _ string) (filetype.FileType, bool) {
	name := fileName(p)
	if strings.EqualFold(name, "read.me") || strings.EqualFold(name, "click.me") {
		return filetype.Text, false
	}
	return filetype.Nroff, true
}

var (
	reMindMap  = regexp.MustCompile(`(?m)^\s*<\?xml\b|^\s*<\s*map\b`)
	reObjCppMm = regexp.MustCompile(`(?i)^\s*(#\s*(include|import)\b|@import\b|/\*)`)
)

func mm(_, content string) (filetype.FileType, bool) {
	if reMindMap.MatchString(lines(content, 3)) {
		return filetype.Xml, true
	}
	if anyLine(content, 20, reObjCppMm.MatchString) {
		return filetype.ObjCpp, true
	}
	return filetype.Nroff, true
}

func mms(_, _ string) (filetype.FileType, bool) {
	return filetype.ModuleManagementSystem, true
}

var (
	reAmpl      = regexp.MustCompile(`(?mi)^\s*(param|set|var|minimize|maximize|subject\s+to)\b`)
	reKernelObj = regexp.MustCompile(`(?i)\.(ko|o)\b`)
	reModula2   = regexp.MustCompile(`\bMODULE\s+\w+\s*;|^\s*\(\*`)
)

func isKernelModuleList(content string) bool {
	all := true
	eachLine(content, 50, func(_ int, line string) bool {
		if strings.TrimSpace(line) == "" {
			return true
		}
		all = reKernelObj.MatchString(line)
		return all
	})
	return all
}

func modula(p, content string) (filetype.FileType, bool) {
	switch {
	case strings.EqualFold(fileName(p), "go.mod"):
		return filetype.GoMod, true
	case reAmpl.MatchString(lines(content, 80)):
		return filetype.Ampl, true
	case isKernelModuleList(content):
		return filetype.LinuxKernelModule, true
	case isLprolog(content):
		return filetype.LambdaProlog, true
	}
	if line, ok := nextNonBlank(content, 0); ok && reModula2.MatchString(line) {
		return filetype.Modula2, true
	}
	if isRapid(content) {
		return filetype.Rapid, true
	}
	return filetype.Modsim3, true
}

func news(_, content string) (filetype.FileType, bool) {
	if find(content, 1, false, "; urgency=") {
		return filetype.DebChangelog, true
	}
	return filetype.Text, false
}

func nroff(_, content string) (filetype.FileType, bool) {
	if anyLine(content, 5, func(line string) bool { return strings.HasPrefix(line, ".") }) {
		return filetype.Nroff, true
	}
	return filetype.Text, false
}

var reGitSendEmail = regexp.MustCompile(`^From [a-fA-F0-9]{40} Mon Sep 17 00:00:00 2001$`)

func patch(_, content string) (filetype.FileType, bool) {
	if reGitSendEmail.MatchString(lines(content, 1)) {
		return filetype.GitSendEmail, true
	}
	return filetype.Diff, true
}

// perl accepts Perl test files under t/ or xt/ and scripts that look like
// Perl; anything else is left to later stages.
func perl(p, content string) (filetype.FileType, bool) {
	if ext, _ := extension(fileName(p)); ext == "t" {
		if dir := parentName(p); dir == "t" || dir == "xt" {
			return filetype.Perl, true
		}
	}
	if strings.HasPrefix(content, "#") && find(content, 1, false, "perl") {
		return filetype.Perl, true
	}
	if anyLine(content, 30, func(line string) bool {
		return startsWithAny(strings.TrimLeft(line, " \t"), false, "use")
	}) {
		return filetype.Perl, true
	}
	return filetype.Text, false
}

func pl(_, content string) (filetype.FileType, bool) {
	if looksLikeProlog(content) {
		return filetype.Prolog, true
	}
	return filetype.Perl, true
}

func pm(_, content string) (filetype.FileType, bool) {
	first := lines(content, 1)
	switch {
	case strings.Contains(first, "XPM2"):
		return filetype.Xpm2, true
	case strings.Contains(first, "XPM"):
		return filetype.Xpm, true
	}
	return filetype.Perl, true
}

func pp(_, content string) (filetype.FileType, bool) {
	if line, ok := nextNonBlank(content, 0); ok && (rePascalComments.MatchString(line) || rePascalKeywords.MatchString(line)) {
		return filetype.Pascal, true
	}
	return filetype.Puppet, true
}

func prg(_, content string) (filetype.FileType, bool) {
	if isRapid(content) {
		return filetype.Rapid, true
	}
	return filetype.Clipper, true
}

var reAsmStatement = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*\s{2,}[A-Za-z.]{2,}\b`)

func progressAsm(p, content string) (filetype.FileType, bool) {
	asmLike := 0
	isAsm := false
	eachLine(content, 25, func(_ int, line string) bool {
		t := strings.TrimLeft(line, " \t")
		if t == "" {
			return true
		}
		if startsWithAny(t, true, ";", ".macro", ".segment", ".include") {
			isAsm = true
			return false
		}
		if reAsmStatement.MatchString(t) {
			asmLike++
		}
		if asmLike >= 2 {
			isAsm = true
			return false
		}
		return !strings.HasPrefix(t, "/*")
	})
	if isAsm {
		return asm(p, content)
	}
	return filetype.Progress, true
}

func progressCweb(_, content string) (filetype.FileType, bool) {
	if startsWithAny(content, false, "&analyze") || anyLine(content, 3, func(line string) bool {
		return startsWithAny(line, false, "&global-define")
	}) {
		return filetype.Progress, true
	}
	return filetype.Cweb, true
}

func progressPascal(_, content string) (filetype.FileType, bool) {
	result := filetype.Progress
	eachLine(content, 10, func(_ int, line string) bool {
		if rePascalComments.MatchString(line) || rePascalKeywords.MatchString(line) {
			result = filetype.Pascal
			return false
		}
		return !strings.HasPrefix(strings.TrimLeft(line, " \t"), "/*")
	})
	return result, true
}

var reCprotoLine = regexp.MustCompile(`.;$`)

// proto separates cproto output and Prolog from def.
func proto(def filetype.FileType) Dynamic {
	return func(_, content string) (filetype.FileType, bool) {
		if reCprotoLine.MatchString(lines(content, 2)) {
			return filetype.Cpp, true
		}
		if looksLikeProlog(content) {
			return filetype.Prolog, true
		}
		return def, true
	}
}

func psf(_, content string) (filetype.FileType, bool) {
	first := strings.TrimSpace(lines(content, 1))
	for _, kw := range []string{"distribution", "installed_software", "root", "bundle", "product"} {
		if strings.EqualFold(first, kw) {
			return filetype.Psf, true
		}
	}
	return filetype.Text, false
}

var reRebol = regexp.MustCompile(`(?i)\brebol\b`)

func rOrRexx(_, content string) (filetype.FileType, bool) {
	if reRebol.MatchString(lines(content, 50)) {
		return filetype.Rebol, true
	}
	result := filetype.R
	eachLine(content, 50, func(_ int, line string) bool {
		t := strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(t, "#"):
			result = filetype.R
		case strings.HasPrefix(t, "/*"):
			result = filetype.Rexx
		default:
			return true
		}
		return false
	})
	return result, true
}

func rc(p, _ string) (filetype.FileType, bool) {
	if strings.Contains(p, "/etc/Muttrc.d/") {
		return filetype.Text, false
	}
	return filetype.Rc, true
}

func redif(_, content string) (filetype.FileType, bool) {
	if anyLine(content, 5, func(line string) bool {
		return startsWithAny(line, false, "template-type:")
	}) {
		return filetype.Redif, true
	}
	return filetype.Text, false
}

var reRegedit = regexp.MustCompile(`(?i)^regedit[0-9]*\s*$|^windows registry editor version \d*\.\d*\s*$`)

func reg(_, content string) (filetype.FileType, bool) {
	if reRegedit.MatchString(lines(content, 1)) {
		return filetype.Registry, true
	}
	return filetype.Text, false
}

func rul(_, content string) (filetype.FileType, bool) {
	if find(content, 6, false, "installshield") {
		return filetype.InstallShield, true
	}
	return filetype.Diva, true
}

var (
	reUdevRules   = regexp.MustCompile(`(?i)/(etc|(usr/)?lib)/udev/(rules\.d/)?.*\.rules$`)
	rePolkitRules = regexp.MustCompile(`(?i)/(etc|usr/share)/polkit-1/rules\.d/`)
)

func rules(p, _ string) (filetype.FileType, bool) {
	switch {
	case reUdevRules.MatchString(p):
		return filetype.UdevRules, true
	case strings.HasPrefix(p, "/etc/ufw/") || p == "/etc/ufw":
		return filetype.Conf, true
	case rePolkitRules.MatchString(p):
		return filetype.JavaScript, true
	}
	return filetype.Hog, true
}

var reSuperCollider = regexp.MustCompile(`(class)?var\s<|\^this.*|\|\w+\||\+\s\w*\s\{|\*ar\s`)

func scalaOrSC(_, content string) (filetype.FileType, bool) {
	if anyLine(content, 25, reSuperCollider.MatchString) {
		return filetype.Supercollider, true
	}
	return filetype.Scala, true
}

var reScdoc = regexp.MustCompile(`^\S+\(\d[0-9A-Za-z]*\)(\s+"[^"]*"]){0,2}`)

func scd(_, content string) (filetype.FileType, bool) {
	if reScdoc.MatchString(lines(content, 1)) {
		return filetype.Scdoc, true
	}
	return filetype.Supercollider, true
}

var reDocBook = regexp.MustCompile(`<!DOCTYPE.*DocBook`)

func sgml(_, content string) (filetype.FileType, bool) {
	head := lines(content, 5)
	switch {
	case strings.Contains(head, "linuxdoc"):
		return filetype.Smgllnx, true
	case reDocBook.MatchString(head):
		return filetype.DocBookSgml4, true
	}
	return filetype.Sgml, true
}

var (
	reLprologSig = regexp.MustCompile(`^\s*(/\*|%|sig\s+[a-zA-Z])`)
	reSmlSig     = regexp.MustCompile(`^\s*(\(\*|(signature|structure)\s+[a-zA-Z])`)
)

func sig(_, content string) (filetype.FileType, bool) {
	line, ok := nextNonBlank(content, 0)
	switch {
	case !ok:
		return filetype.Text, false
	case reLprologSig.MatchString(line):
		return filetype.LambdaProlog, true
	case reSmlSig.MatchString(line):
		return filetype.Sml, true
	}
	return filetype.Text, false
}

func sil(_, content string) (filetype.FileType, bool) {
	result := filetype.Sil
	eachLine(content, 100, func(_ int, line string) bool {
		t := strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(t, `\`) || strings.HasPrefix(t, "%"):
			result = filetype.Sile
		case t != "":
			result = filetype.Sil
		default:
			return true
		}
		return false
	})
	return result, true
}

var (
	reSmilWord = regexp.MustCompile(`(?i)\bsmil\b`)
	reXMLDecl  = regexp.MustCompile(`<\?\s*xml.*\?>`)
)

func smi(_, content string) (filetype.FileType, bool) {
	if reSmilWord.MatchString(lines(content, 1)) {
		return filetype.Smil, true
	}
	return filetype.Mib, true
}

func smil(_, content string) (filetype.FileType, bool) {
	if reXMLDecl.MatchString(lines(content, 1)) {
		return filetype.Xml, true
	}
	return filetype.Smil, true
}

var reKrlSrc = regexp.MustCompile(`(?i)^\s*(&\w+|(global\s+)?def(fct)?\b)`)

func krlSrc(_, content string) (filetype.FileType, bool) {
	if line, ok := nextNonBlank(content, 0); ok && reKrlSrc.MatchString(line) {
		return filetype.Krl, true
	}
	return filetype.Text, false
}

func sysOrRapid(_, content string) (filetype.FileType, bool) {
	if isRapid(content) {
		return filetype.Rapid, true
	}
	return filetype.Bat, true
}

var (
	rePlainTex       = regexp.MustCompile(`^%&\s*plain(tex)?`)
	reContextFormat  = regexp.MustCompile(`^%&\s*context`)
	reContextPath    = regexp.MustCompile(`(?i)tex/context/.*/.*\.tex`)
	reTexComment     = regexp.MustCompile(`^\s*%\S`)
	reLatexCommand   = regexp.MustCompile(`(?i)^\s*\\(documentclass\b|usepackage\b|begin\{|newcommand\b|renewcommand\b)`)
	reContextCommand = regexp.MustCompile(`(?i)^\s*\\(start[a-zA-Z]+|setup[a-zA-Z]+|usemodule|enablemode|enableregime|setvariables|useencoding|usesymbols|stelle[a-zA-Z]+|verwende[a-zA-Z]+|stel[a-zA-Z]+|gebruik[a-zA-Z]+|usa[a-zA-Z]+|imposta[a-zA-Z]+|regle[a-zA-Z]+|utilisemodule\b)`)
)

func tex(p, content string) (filetype.FileType, bool) {
	first := lines(content, 1)
	switch {
	case rePlainTex.MatchString(first):
		return filetype.PlainTex, true
	case reContextFormat.MatchString(first) || reContextPath.MatchString(p):
		return filetype.Context, true
	}
	result := filetype.Tex
	skipping := true
	seen := 0
	eachLine(content, 0, func(_ int, line string) bool {
		if skipping && reTexComment.MatchString(line) {
			return true
		}
		skipping = false
		if seen++; seen > 1000 {
			return false
		}
		switch {
		case reLatexCommand.MatchString(line):
			result = filetype.Tex
		case reContextCommand.MatchString(line):
			result = filetype.Context
		default:
			return true
		}
		return false
	})
	return result, true
}

func terraform(_, content string) (filetype.FileType, bool) {
	if anyLine(content, 0, func(line string) bool {
		t := strings.TrimLeft(line, " \t")
		return t != "" && t[0] != ';' && t[0] != '/'
	}) {
		return filetype.Terraform, true
	}
	return filetype.Tf, true
}

var (
	reTsXML  = regexp.MustCompile(`^\s*<\?\s*xml\b|^\s*<\s*TS\b`)
	reTsSmil = regexp.MustCompile(`(?i)^\s*<\s*smil\b`)
)

// typescriptOrXML prefers TypeScript unless the file is a Qt Linguist translation or
// SMIL document.
func typescriptOrXML(_, content string) (filetype.FileType, bool) {
	first, _ := nextNonBlank(content, 0)
	switch {
	case reTsXML.MatchString(first):
		return filetype.Xml, true
	case reTsSmil.MatchString(first):
		return filetype.Smil, true
	}
	return filetype.TypeScript, true
}

var reTurtle = regexp.MustCompile(`^@?(prefix|base)`)

func ttl(_, content string) (filetype.FileType, bool) {
	if reTurtle.MatchString(lines(content, 1)) {
		return filetype.Turtle, true
	}
	return filetype.Teraterm, true
}

var reVimHelpModeline = regexp.MustCompile(`vim:.*ft=help`)

func txt(_, content string) (filetype.FileType, bool) {
	if reVimHelpModeline.MatchString(lastLine(content)) {
		return filetype.VimHelp, true
	}
	return filetype.Text, true
}

var reSQLType = regexp.MustCompile(`^(CASE\s*=\s*(SAME|LOWER|UPPER|OPPOSITE)$|TYPE\s)`)

func typ(_, content string) (filetype.FileType, bool) {
	if anyLine(content, 200, reSQLType.MatchString) {
		return filetype.Sql, true
	}
	return filetype.Typst, true
}

var (
	reVerilogEnd = regexp.MustCompile(`;\s*($|/)`)
	reCoqEnd     = regexp.MustCompile(`\.\s*($|\(\*)`)
)

func vOrVerilog(_, content string) (filetype.FileType, bool) {
	result := filetype.V
	eachLine(content, 200, func(_ int, line string) bool {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "/") {
			return true
		}
		switch {
		case reVerilogEnd.MatchString(line):
			result = filetype.SystemVerilog
		case reCoqEnd.MatchString(line):
			result = filetype.Coq
		default:
			return true
		}
		return false
	})
	return result, true
}

func web(_, content string) (filetype.FileType, bool) {
	if anyLine(content, 5, func(line string) bool { return strings.HasPrefix(line, "%") }) {
		return filetype.Web, true
	}
	return filetype.WinBatch, true
}

var reXConfigurator = regexp.MustCompile(`\bXConfigurator\b`)

func xfree86(_, content string) (filetype.FileType, bool) {
	if reXConfigurator.MatchString(lines(content, 1)) {
		return filetype.XF86Conf3, true
	}
	return filetype.XF86Conf, true
}

func xml(_, content string) (filetype.FileType, bool) {
	result := filetype.Xml
	eachLine(content, 100, func(_ int, line string) bool {
		switch {
		case reDocBook.MatchString(line):
			result = filetype.DocBookXml4
		case strings.Contains(line, ` xmlns="http://docbook.org/ns/docbook"`):
			result = filetype.DocBookXml5
		case strings.Contains(line, `xmlns:xbl="http://www.mozilla.org/xbl"`):
			result = filetype.Xbl
		default:
			return true
		}
		return false
	})
	return result, true
}

func xpm(_, content string) (filetype.FileType, bool) {
	if find(content, 1, true, "XPM2") {
		return filetype.Xpm2, true
	}
	return filetype.Xpm, true
}

var (
	reRacc        = regexp.MustCompile(`(?i)^\s*(#|class\b)`)
	reHashInclude = regexp.MustCompile(`(?i)^\s*#\s*include`)
)

func yaccOrRacc(_, content string) (filetype.FileType, bool) {
	result := filetype.Yacc
	eachLine(content, 100, func(_ int, line string) bool {
		switch {
		case strings.HasPrefix(strings.TrimLeft(line, " \t"), "%"):
			result = filetype.Yacc
		case reRacc.MatchString(line) && !reHashInclude.MatchString(line):
			result = filetype.Racc
		default:
			return true
		}
		return false
	})
	return result, true
}
