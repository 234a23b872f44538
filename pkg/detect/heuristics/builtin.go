package heuristics

import (
	"github.com/stackvity/ftdetect/pkg/detect/pattern"
	"github.com/stackvity/ftdetect/pkg/filetype"
)

// builtinRules is the compiled-in disambiguation data, keyed by extension.
// Rules are evaluated in the order listed.
func builtinRules() map[string][]Rule {
	var (
		mdoc = pattern.And{
			pattern.Positive(`^[.'][ \t]*Dd +(?:[^"\s]+|"[^"]+")`),
			pattern.Positive(`^[.'][ \t]*Dt +(?:[^"\s]+|"[^"]+") +"?(?:[1-9]|@[^\s@]+@)`),
			pattern.Positive(`^[.'][ \t]*Sh +(?:[^"\s]|"[^"]+")`),
		}
		manPage = pattern.And{
			pattern.Positive(`^[.'][ \t]*TH +(?:[^"\s]+|"[^"]+") +"?(?:[1-9]|@[^\s@]+@)`),
			pattern.Positive(`^[.'][ \t]*SH +(?:[^"\s]+|"[^"\s]+)`),
		}
		roffRequest = pattern.Positive(`^\.(?:[A-Za-z]{2}(?:\s|$)|\\")`)
		perl5       = pattern.And{
			pattern.Negative(`^\s*use\s+v6\b`),
			pattern.Or{
				pattern.Positive(`\buse\s+(?:strict\b|v?5\b)`),
				pattern.Positive(`^\s*use\s+(?:constant|overload)\b`),
				pattern.Positive(`^\s*(?:\*|(?:our\s*)?@)EXPORT\s*=`),
				pattern.Positive(`^\s*package\s+[^\W\d]\w*(?:::\w+)*\s*(?:[;{]|\sv?\d)`),
				pattern.Positive(`[\s$][^\W\d]\w*(?::\w+)*->[a-zA-Z_\[({]`),
			},
		}
		commonLisp = pattern.Positive(`^\s*\((?i:defun|in-package|defpackage) `)
	)

	return map[string][]Rule{
		".1": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			on(roffRequest, filetype.Nroff),
			fallback(filetype.Text),
		},
		".1in": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			fallback(filetype.Nroff),
		},
		".1m": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			fallback(filetype.Nroff),
		},
		".1x": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			fallback(filetype.Nroff),
		},
		".2": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			on(roffRequest, filetype.Nroff),
			fallback(filetype.Text),
		},
		".3": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			on(roffRequest, filetype.Nroff),
			fallback(filetype.Text),
		},
		".3in": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			fallback(filetype.Nroff),
		},
		".3m": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			fallback(filetype.Nroff),
		},
		".3p": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			fallback(filetype.Nroff),
		},
		".3pm": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			fallback(filetype.Nroff),
		},
		".3qt": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			fallback(filetype.Nroff),
		},
		".3x": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			fallback(filetype.Nroff),
		},
		".4": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			on(roffRequest, filetype.Nroff),
			fallback(filetype.Text),
		},
		".5": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			on(roffRequest, filetype.Nroff),
			fallback(filetype.Text),
		},
		".6": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			on(roffRequest, filetype.Nroff),
			fallback(filetype.Text),
		},
		".7": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			on(roffRequest, filetype.Nroff),
			fallback(filetype.Text),
		},
		".8": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			on(roffRequest, filetype.Nroff),
			fallback(filetype.Text),
		},
		".9": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			on(roffRequest, filetype.Nroff),
			fallback(filetype.Text),
		},
		".al": {
			fallback(filetype.Perl),
		},
		".app": {
			on(pattern.Positive(`^\{\s*(?:application|'application')\s*,\s*(?:[a-z]+[\w@]*|'[^']+')\s*,\s*\[(?:.|[\r\n])*\]\s*\}\.[ \t]*$`), filetype.Erlang),
		},
		".asc": {
			on(pattern.Positive(`^[=-]+\s|\{\{[A-Za-z]`), filetype.AsciiDoc),
		},
		".bas": {
			on(pattern.Or{
				pattern.Positive(`(?i)^[ \t]*#(?:define|endif|endmacro|ifn?def|include|lang|macro|pragma)(?:$|\s)`),
				pattern.Positive(`(?i)^[ \t]*dim( shared)? [a-z_][a-z0-9_]* as [a-z_][a-z0-9_]* ptr`),
			}, filetype.FreeBasic),
			on(pattern.And{
				pattern.Positive(`(?i)^[ \t]*return `),
				pattern.Negative(`(?i)[ \t]*gosub `),
			}, filetype.FreeBasic),
			on(pattern.Positive(`\A\s*\d`), filetype.Basic),
		},
		".bb": {
			on(pattern.Positive(`\((def|defn|defmacro|let)\s`), filetype.Clojure),
		},
		".bi": {
			on(pattern.Or{
				pattern.Positive(`(?i)^[ \t]*#(?:define|endif|endmacro|ifn?def|include|lang|macro|pragma)(?:$|\s)`),
				pattern.Positive(`(?i)^[ \t]*dim( shared)? [a-z_][a-z0-9_]* as [a-z_][a-z0-9_]* ptr`),
			}, filetype.FreeBasic),
			on(pattern.And{
				pattern.Positive(`(?i)^[ \t]*return `),
				pattern.Negative(`(?i)[ \t]*gosub `),
			}, filetype.FreeBasic),
		},
		".builds": {
			on(pattern.Positive(`^(\s*)(?i:<Project|<Import|<Property|<?xml|xmlns)`), filetype.Xml),
		},
		".cairo": {
			on(pattern.Positive(`(^(\s*)%lang(\s+)([A-Za-z0-9_]+))|(^(\s*)%builtins(\s+)([A-Za-z0-9_]+\s*)*$)|(^(\s*)from(\s+)starkware\.(cairo|starknet)\.([A-Za-z0-9_.\s]+?)import)|(,\s*ap\+\+;$)|(;\s*ap\+\+$)`), filetype.Cairo),
			fallback(filetype.Cairo),
		},
		".cl": {
			on(commonLisp, filetype.Lisp),
		},
		".cls": {
			on(pattern.Positive(`^\s*\\(?:NeedsTeXFormat|ProvidesClass)\{`), filetype.Tex),
		},
		".cs": {
			on(pattern.Positive(`^\s*(using\s+[A-Z][\s\w.]+;|namespace\s*[\w\.]+\s*(\{|;)|\/\/)`), filetype.CSharp),
		},
		".csl": {
			on(pattern.Positive(`(?i:^\s*(<\?xml|xmlns))`), filetype.Xml),
		},
		".d": {
			on(pattern.Positive(`^module\s+[\w.]*\s*;|import\s+[\w\s,.:]*;|\w+\s+\w+\s*\(.*\)(?:\(.*\))?\s*\{[^}]*\}|unittest\s*(?:\(.*\))?\s*\{[^}]*\}`), filetype.D),
			on(pattern.Positive(`^(\w+:\w*:\w*:\w*|BEGIN|END|provider\s+|(tick|profile)-\w+\s+\{[^}]*\}|#pragma\s+D\s+(option|attributes|depends_on)\s|#pragma\s+ident\s)`), filetype.DTrace),
		},
		".dsp": {
			on(pattern.Positive(`\bprocess\s*[(=]|\b(library|import)\s*\(\s*"|\bdeclare\s+(name|version|author|copyright|license)\s+"`), filetype.Faust),
		},
		".e": {
			on(pattern.Or{
				pattern.Positive(`^\s*\w+\s*(?:,\s*\w+)*[:]\s*\w+\s`),
				pattern.Positive(`^\s*\w+\s*(?:\(\s*\w+[:][^)]+\))?(?:[:]\s*\w+)?(?:--.+\s+)*\s+(?:do|local)\s`),
				pattern.Positive(`^\s*(?:across|deferred|elseif|ensure|feature|from|inherit|inspect|invariant|note|once|require|undefine|variant|when)\s*$`),
			}, filetype.Eiffel),
			on(pattern.Or{
				pattern.Positive(`^\s*namespace\s`),
				pattern.Positive(`^\s*(?:public\s+)?include\s`),
				pattern.Positive(`^\s*(?:(?:public|export|global)\s+)?(?:atom|constant|enum|function|integer|object|procedure|sequence|type)\s`),
			}, filetype.Euphoria3),
		},
		".es": {
			on(pattern.Positive(`^\s*(?:%%|main\s*\(.*?\)\s*->)`), filetype.Erlang),
			on(pattern.Positive(`\/\/|["']use strict["']|export\s+default\s|\/\*(?:.|[\r\n])*?\*\/`), filetype.JavaScript),
		},
		".ex": {
			on(pattern.Or{
				pattern.Positive(`^\s*@moduledoc\s`),
				pattern.Positive(`^\s*(?:cond|import|quote|unless)\s`),
				pattern.Positive(`^\s*def(?:exception|impl|macro|module|protocol)[(\s]`),
			}, filetype.Elixir),
			on(pattern.Or{
				pattern.Positive(`^\s*namespace\s`),
				pattern.Positive(`^\s*(?:public\s+)?include\s`),
				pattern.Positive(`^\s*(?:(?:public|export|global)\s+)?(?:atom|constant|enum|function|integer|object|procedure|sequence|type)\s`),
			}, filetype.Euphoria3),
		},
		".f": {
			on(pattern.Positive(`^: `), filetype.Forth),
			on(pattern.Positive(`^(?i:[c*][^abd-z]|      (subroutine|program|end|data)\s|\s*!)`), filetype.Fortran),
		},
		".for": {
			on(pattern.Positive(`^: `), filetype.Forth),
			on(pattern.Positive(`^(?i:[c*][^abd-z]|      (subroutine|program|end|data)\s|\s*!)`), filetype.Fortran),
		},
		".fr": {
			on(pattern.Positive(`^(: |also |new-device|previous )`), filetype.Forth),
			fallback(filetype.Text),
		},
		".frm": {
			on(pattern.Positive(`\ATYPE=VIEW`), filetype.ConfIni),
		},
		".fs": {
			on(pattern.Positive(`^(: |new-device)`), filetype.Forth),
			on(pattern.Positive(`^\s*(#light|import|let|module|namespace|open|type)`), filetype.FSharp),
			on(pattern.Positive(`^\s*(#version|precision|uniform|varying|vec[234])`), filetype.Glsl),
		},
		".ftl": {
			on(pattern.Positive(`^-?[a-zA-Z][a-zA-Z0-9_-]* *=|\{\$-?[a-zA-Z][-\w]*(?:\.[a-zA-Z][-\w]*)?\}`), filetype.Fluent),
		},
		".gd": {
			on(pattern.Positive(`\s*(extends|var|const|enum|func|class|signal|tool|yield|assert|onready)`), filetype.GdScript),
		},
		".gml": {
			on(pattern.Positive(`(?i:^\s*(<\?xml|xmlns))`), filetype.Xml),
		},
		".gs": {
			on(pattern.Positive(`^#version\s+[0-9]+\b`), filetype.Glsl),
		},
		".gts": {
			on(pattern.Negative(`^G0.`), filetype.JavaScriptGlimmer),
		},
		// The detect pipeline settles ".h" before consulting this table, so
		// these rules only apply to direct Apply calls.
		".h": {
			on(pattern.Positive(`^\s*(@(interface|class|protocol|property|end|synchronised|selector|implementation)\b|#import\s+.+\.h[">])`), filetype.ObjC),
			on(pattern.Or{
				pattern.Positive(`^\s*#\s*include <(cstdint|string|vector|map|list|array|bitset|queue|stack|forward_list|unordered_map|unordered_set|(i|o|io)stream)>`),
				pattern.Positive(`^\s*template\s*<`),
				pattern.Positive(`^[ \t]*(try|constexpr)`),
				pattern.Positive(`^[ \t]*catch\s*\(`),
				pattern.Positive(`^[ \t]*(class|(using[ \t]+)?namespace)\s+\w+`),
				pattern.Positive(`^[ \t]*(private|public|protected):$`),
				pattern.Positive(`__has_cpp_attribute|__cplusplus >`),
				pattern.Positive(`std::\w+`),
			}, filetype.Cpp),
			fallback(filetype.C),
		},
		".hh": {
			on(pattern.Positive(`<\?hh`), filetype.Hack),
		},
		".html": {
			fallback(filetype.Html),
		},
		".i": {
			on(pattern.Positive(`^[ \t]*%[a-z_]+\b|^%[{}]$`), filetype.Swig),
		},
		".ice": {
			on(pattern.Positive(`\A\s*[{\[]`), filetype.Json),
			fallback(filetype.Slice),
		},
		".inc": {
			on(pattern.Positive(`^<\?(?:php)?`), filetype.Php),
			on(pattern.Or{
				pattern.Positive(`(?i:^\s*\{\$(?:mode|ifdef|undef|define)[ ]+[a-z0-9_]+\})`),
				pattern.Positive(`^\s*end[.;]\s*$`),
			}, filetype.Pascal),
		},
		".json": {
			on(pattern.Positive(`"swagger":\s?"2.[0-9.]+"`), filetype.Json),
			on(pattern.Positive(`"openapi":\s?"3.[0-9.]+"`), filetype.Json),
			fallback(filetype.Json),
		},
		".l": {
			on(pattern.Positive(`\(def(un|macro)\s`), filetype.Lisp),
			on(pattern.Positive(`^(%[%{}]xs|<.*>)`), filetype.Lex),
			on(pattern.Positive(`^\.[A-Za-z]{2}(\s|$)`), filetype.Nroff),
		},
		".lean": {
			on(pattern.Positive(`^import [a-z]`), filetype.Lean),
		},
		".lisp": {
			on(commonLisp, filetype.Lisp),
		},
		".lsp": {
			on(commonLisp, filetype.Lisp),
		},
		".m": {
			on(pattern.Positive(`^\s*(@(interface|class|protocol|property|end|synchronised|selector|implementation)\b|#import\s+.+\.h[">])`), filetype.ObjC),
			on(pattern.Positive(`^\s*;`), filetype.Mma),
			on(pattern.And{
				pattern.Positive(`\(\*`),
				pattern.Positive(`\*\)$`),
			}, filetype.Mma),
			on(pattern.Positive(`^\s*%`), filetype.Matlab),
		},
		".m4": {
			fallback(filetype.M4),
		},
		".man": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			fallback(filetype.Nroff),
		},
		".mc": {
			on(pattern.Positive("^dnl|^divert\\((?:-?\\d+)?\\)|^\\w+\\(`[^\\r\\n]*?'[),]"), filetype.M4),
		},
		".md": {
			on(pattern.Or{
				pattern.Positive(`(^[-A-Za-z0-9=#!\*\[|>])|<\/`),
				pattern.Positive(`\A\z`),
			}, filetype.Markdown),
			fallback(filetype.Markdown),
		},
		".mdoc": {
			on(mdoc, filetype.Nroff),
			on(manPage, filetype.Nroff),
			fallback(filetype.Nroff),
		},
		".ml": {
			on(pattern.Positive(`(^\s*module)|let rec |match\s+(\S+\s)+with`), filetype.OCaml),
			on(pattern.Positive(`=> |case\s+(\S+\s)+of`), filetype.Sml),
		},
		".mod": {
			on(pattern.Positive(`<!ENTITY `), filetype.Xml),
			on(pattern.Positive(`^\s*(?i:MODULE|END) [\w\.]+;`), filetype.Modula2),
			fallback(filetype.Ampl),
		},
		".mojo": {
			on(pattern.Positive(`^\s*(alias|def|from|fn|import|struct|trait)\s`), filetype.Mojo),
			on(pattern.Positive(`^\s*<\?xml`), filetype.Xml),
		},
		".ms": {
			on(pattern.Positive(`^[.'][A-Za-z]{2}(\s|$)`), filetype.Nroff),
		},
		".n": {
			on(pattern.Positive(`^[.']`), filetype.Nroff),
		},
		".ncl": {
			on(pattern.Positive(`^\s*<\?xml\s+version`), filetype.Xml),
			on(pattern.Or{
				pattern.Positive(`^let(?:\srec)?(?:\s[a-zA-Z_][a-zA-Z0-9_]*)?`),
				pattern.Positive(`^import\s"[^"]+"\s+as\s`),
				pattern.Positive(`std\.[a-zA-Z_][a-zA-Z0-9_]*\.`),
			}, filetype.Nickel),
			on(pattern.Positive(`THE_TITLE`), filetype.Text),
		},
		".nr": {
			on(pattern.Positive(`^\.`), filetype.Nroff),
		},
		".nu": {
			on(pattern.Positive(`^\s*(import|export|module|def|let|let-env) `), filetype.Nu),
			fallback(filetype.Nu),
		},
		".odin": {
			on(pattern.Positive(`package\s+\w+|\b(?:im|ex)port\s*"[\w:./]+"|\w+\s*::\s*(?:proc|struct)\s*\(|^\s*//\s`), filetype.Odin),
		},
		".p": {
			on(pattern.Or{
				pattern.Positive(`^s?plot\b`),
				pattern.Positive(`^set\s+(term|terminal|out|output|[xy]tics|[xy]label|[xy]range|style)\b`),
			}, filetype.GnuPlot),
		},
		".php": {
			on(pattern.Positive(`<\?hh`), filetype.Hack),
			on(pattern.Positive(`<\?[^h]`), filetype.Php),
		},
		".pkl": {
			on(pattern.Or{
				pattern.Positive(`^\s*(module|import|amends|extends|local|const|fixed|abstract|open|class|typealias|@\w+)\b`),
				pattern.Positive("^\\s*[a-zA-Z0-9_$]+\\s*(=|{|:)|^\\s*`[^`]+`\\s*(=|{|:)|for\\s*\\(|when\\s*\\("),
			}, filetype.Pkl),
		},
		".pl": {
			on(pattern.Positive(`^[^#]*:-`), filetype.Prolog),
			on(perl5, filetype.Perl),
			on(pattern.Positive(`^\s*(?:use\s+v6\b|\bmodule\b|\b(?:my\s+)?class\b)`), filetype.Raku),
		},
		".plt": {
			on(pattern.Positive(`^\s*:-`), filetype.Prolog),
		},
		".pm": {
			on(perl5, filetype.Perl),
			on(pattern.Positive(`^\s*(?:use\s+v6\b|\bmodule\b|\b(?:my\s+)?class\b)`), filetype.Raku),
		},
		".pod": {
			fallback(filetype.Pod),
		},
		".pp": {
			on(pattern.Positive(`^\s*end[.;]`), filetype.Pascal),
			on(pattern.Positive(`^\s+\w+\s+=>\s`), filetype.Puppet),
		},
		".pro": {
			on(pattern.Positive(`^[^\[#]+:-`), filetype.Prolog),
			on(pattern.Positive(`last_client=`), filetype.ConfIni),
			on(pattern.Positive(`^\s*(?i:function|pro|compile_opt) \w[ \w,:]*$`), filetype.Idl),
		},
		".properties": {
			on(pattern.And{
				pattern.Positive(`^[^#!;][^=]*=`),
				pattern.Positive(`^[;\[]`),
			}, filetype.ConfIni),
			on(pattern.And{
				pattern.Positive(`^[^#!;][^=]*=`),
				pattern.Positive(`^[#!]`),
			}, filetype.JProperties),
			on(pattern.Positive(`^[^#!;][^=]*=`), filetype.ConfIni),
			on(pattern.Positive(`^[^#!][^:]*:`), filetype.JProperties),
		},
		".q": {
			on(pattern.Positive(`(?i:SELECT\s+[\w*,]+\s+FROM|(CREATE|ALTER|DROP)\s(DATABASE|SCHEMA|TABLE))`), filetype.Sql),
		},
		".r": {
			on(pattern.Positive(`(?i:\bRebol\b)`), filetype.Rebol),
			on(pattern.Positive(`<-|^\s*#`), filetype.R),
		},
		".re": {
			on(pattern.Or{
				pattern.Positive(`^\s*#(?:(?:if|ifdef|define|pragma)\s+\w|\s*include\s+<[^>]+>)`),
				pattern.Positive(`^\s*template\s*<`),
			}, filetype.Cpp),
		},
		".res": {
			on(pattern.Or{
				pattern.Positive(`^\s*(let|module|type)\s+\w*\s+=\s+`),
				pattern.Positive(`^\s*(?:include|open)\s+\w+\s*$`),
			}, filetype.ReScript),
		},
		".rno": {
			on(pattern.Positive(`^\.\\" `), filetype.Nroff),
		},
		".rpy": {
			on(pattern.Positive(`^(import|from|class|def)\s`), filetype.Python),
		},
		".rs": {
			on(pattern.Positive(`^(use |fn |mod |pub |macro_rules|impl|#!?\[)`), filetype.Rust),
			on(pattern.Positive(`^\s*<\?xml`), filetype.Xml),
		},
		".sc": {
			on(pattern.Positive(`(?i:\^(this|super)\.|^\s*~\w+\s*=\.)`), filetype.Supercollider),
			on(pattern.Positive(`(^\s*import (scala|java)\.|^\s*class\b)`), filetype.Scala),
		},
		".scd": {
			on(pattern.Positive(`(?i:\^(this|super)\.|^\s*(~\w+\s*=\.|SynthDef\b))`), filetype.Supercollider),
			on(pattern.Positive(`^#+\s+(NAME|SYNOPSIS|DESCRIPTION)`), filetype.Markdown),
		},
		".scm": {
			on(pattern.Or{
				pattern.Positive(`\(#[\w-]+[!\?]`),
				pattern.Positive(`(?:[\)\]]\s*[\*\+\?](?:\s|$))`),
				pattern.Positive(`(?:^\s*\w+:\s*[\(\[\"])`),
				pattern.Positive(`\(#(?:set!|(?:not-)?(?:any-of|match)\?)`),
				pattern.Positive(`@[\w.-]+(?:\)\s|$)`),
			}, filetype.TreeSitterQuery),
			on(pattern.Or{
				pattern.Positive("(?:'[\\(\\*#]|\\w->\\w|\\.\\.\\.[\\s\\)]|\\([+\\-:<>\\/=~\\)]|~>|[#`]\\(|#:\\w)"),
				pattern.Positive(`^\s*\((?:define\*?|import|library|lambda)`),
			}, filetype.Scheme),
		},
		".sol": {
			on(pattern.Positive(`\bpragma\s+solidity\b|\b(?:abstract\s+)?contract\s+[a-zA-Z$_][a-zA-Z0-9$_]*(?:\s+is\s+(?:[a-zA-Z0-9$_][^\{]*?)?)?\s*\{`), filetype.Solidity),
		},
		".sql": {
			on(pattern.Positive(`(?i:^\\i\b|AS\s+\$\$|LANGUAGE\s+'?plpgsql'?|BEGIN(\s+WORK)?\s*;)`), filetype.Plsql),
			on(pattern.Positive(`(?i:ALTER\s+MODULE|MODE\s+DB2SQL|\bSYS(CAT|PROC)\.|ASSOCIATE\s+RESULT\s+SET|\bEND!\s*$)`), filetype.Plsql),
			on(pattern.Positive(`(?i:\$\$PLSQL_|XMLTYPE|systimestamp|\.nextval|CONNECT\s+BY|AUTHID\s+(DEFINER|CURRENT_USER)|constructor\W+function)`), filetype.Plsql),
			on(pattern.Positive(`(?i:^\s*GO\b|BEGIN(\s+TRY|\s+CATCH)|OUTPUT\s+INSERTED|DECLARE\s+@|\[dbo\])`), filetype.Sql),
			fallback(filetype.Sql),
		},
		".st": {
			on(pattern.Positive(`\$\w+[($]|.!\s*.+?\s*!.|<!\s*.+?\s*!>|\[!\s*.+?\s*!\]|\{!\s*.+?\s*!\}`), filetype.Template),
		},
		".star": {
			on(pattern.Positive(`^loop_\s*$`), filetype.Starlark),
			fallback(filetype.Starlark),
		},
		".sw": {
			on(pattern.Positive(`^\s*(?:(?:abi|dep|fn|impl|mod|pub|trait)\s|#\[)`), filetype.Sway),
			on(pattern.Positive(`^\s*<\?xml\s+version`), filetype.Xml),
		},
		".t": {
			on(perl5, filetype.Perl),
			on(pattern.Positive(`^\s*(?:use\s+v6\b|\bmodule\b|\bmy\s+class\b)`), filetype.Raku),
		},
		".tact": {
			on(pattern.Positive(`\A\s*\{\"`), filetype.Json),
		},
		".tl": {
			on(pattern.And{
				pattern.Positive(`--.*`),
				pattern.Positive(`\b(local|function|end|record|interface|enum)\b`),
			}, filetype.Teal),
		},
		".toc": {
			on(pattern.Positive(`^\\(contentsline|defcounter|beamer|boolfalse)`), filetype.Tex),
		},
		".tpl": {
			on(pattern.Positive(`(?<!\{)\{(\*\s|\$|\/)?\w*\b`), filetype.Smarty),
		},
		".ts": {
			on(pattern.Positive(`<TS\b`), filetype.Xml),
			fallback(filetype.TypeScript),
		},
		".tst": {
			fallback(filetype.Scilab),
		},
		".tsx": {
			on(pattern.Positive(`(?i:^\s*<\?xml\s+version)`), filetype.Xml),
			fallback(filetype.Tsx),
		},
		".txt": {
			on(vimModeline("help"), filetype.VimHelp),
			on(pattern.Positive("(?xi) ^\n\n# IPv4 address\n(?<ipv4>\n  (?!\\.)\n  (?:\\.?\n    (?: 25[0-5]  # 250-255\n    |   2[0-4]\\d # 200-249\n    |   1\\d\\d    # 100-199\n    |   [1-9]?\\d # 0-99\n    )\\b\n){4})\n\n# CIDR notation: /[0-32]\n(?<cidr>/(3[0-2]|[12]?\\d)\\b)?\n\n# Domains list\n(?<domains>\n  [ \\t]+\n  \\w[-\\w]* (?:\\.\\w[-\\w]*)*\n  (?<!-)\\b\n)*\n\n(?:$|\\s)"), filetype.HostsAccess),
			fallback(filetype.Text),
		},
		".typ": {
			on(pattern.Positive(`^#(import|show|let|set)`), filetype.Typst),
			fallback(filetype.Xml),
		},
		".url": {
			on(pattern.Positive(`^\[InternetShortcut\](?:\r?\n|\r)([^\s\[][^\r\n]*(?:\r?\n|\r)){0,20}URL=`), filetype.ConfIni),
		},
		".v": {
			on(pattern.Positive("^[ \\t]*module\\s+[^\\s()]+\\s*\\#?\\(|^[ \\t]*`(?:define|ifdef|ifndef|include|timescale|pragma)|^[ \\t]*always[ \\t]*@|^[ \\t]*initial[ \\t]*(begin|@)"), filetype.SystemVerilog),
			on(pattern.Positive(`\$(?:if|else)[ \t]|^[ \t]*fn\s+[^\s()]+\(.*?\).*?\{|^[ \t]*for\s*\{`), filetype.V),
		},
		".vba": {
			on(pattern.Positive(`^UseVimball`), filetype.Vim),
		},
		".vcf": {
			on(pattern.Positive(`\A##fileformat=VCF`), filetype.Tsv),
		},
		".yaml": {
			on(pattern.Positive(`swagger:\s?'?"?2.[0-9.]+'?"?`), filetype.Yaml),
			on(pattern.Positive(`openapi:\s?'?"?3.[0-9.]+'?"?`), filetype.Yaml),
			fallback(filetype.Yaml),
		},
		".yml": {
			on(pattern.Positive(`swagger:\s?'?"?2.[0-9.]+'?"?`), filetype.Yaml),
			on(pattern.Positive(`openapi:\s?'?"?3.[0-9.]+'?"?`), filetype.Yaml),
			fallback(filetype.Yaml),
		},
		".yy": {
			on(pattern.Positive(`\A\s*[{\[]`), filetype.Json),
			fallback(filetype.Yacc),
		},
	}
}
