package detect

import (
	"sync"

	"github.com/stackvity/ftdetect/pkg/filetype"
)

// extensionTable maps lowercase extensions, without the dot, to resolvers.
// Compound keys such as "d.ts" are probed by the compound-extension stage.
// A few keys are case-sensitive ("C", "H", "R", "S") and are tried before
// the lowercased extension.
var extensionTable = sync.OnceValue(func() map[string]Resolver {
	return map[string]Resolver{
		"1":           Static(filetype.Nroff),
		"2":           Static(filetype.Nroff),
		"3":           Static(filetype.Nroff),
		"4":           Static(filetype.Nroff),
		"4th":         Static(filetype.Forth),
		"5":           Static(filetype.Nroff),
		"6":           Static(filetype.Nroff),
		"7":           Static(filetype.Nroff),
		"8":           Static(filetype.Nroff),
		"8th":         Static(filetype.Eighth),
		"9":           Static(filetype.Nroff),
		"a":           Dynamic(asm),
		"a65":         Static(filetype.A65),
		"aap":         Static(filetype.Aap),
		"abap":        Static(filetype.Abap),
		"abc":         Static(filetype.Abc),
		"abl":         Static(filetype.Abel),
		"abnf":        Static(filetype.Abnf),
		"ace":         Static(filetype.Acedb),
		"ada":         Static(filetype.Ada),
		"adb":         Static(filetype.Ada),
		"adoc":        Static(filetype.AsciiDoc),
		"ads":         Static(filetype.Ada),
		"agda":        Static(filetype.Agda),
		"ahk":         Static(filetype.AutoHotKey),
		"aidl":        Static(filetype.Aidl),
		"ak":          Static(filetype.Aiken),
		"al":          Static(filetype.Perl),
		"alg":         Static(filetype.Algol),
		"als":         Static(filetype.Alloy),
		"ampl":        Static(filetype.Ampl),
		"apl":         Static(filetype.Apl),
		"applescript": Static(filetype.AppleScript),
		"art":         Static(filetype.Art),
		"as":          Static(filetype.Actionscript),
		"asa":         Dynamic(asa),
		"asciidoc":    Static(filetype.AsciiDoc),
		"asm":         Dynamic(asm),
		"asp":         Dynamic(asp),
		"astro":       Static(filetype.Astro),
		"asy":         Static(filetype.Asy),
		"atl":         Static(filetype.Atlas),
		"au3":         Static(filetype.AutoIt),
		"awk":         Static(filetype.Awk),
		"bak":         bak,
		"bas":         Dynamic(bas),
		"bash":        shellDialect(filetype.Bash),
		"bat":         Static(filetype.DosBatch),
		"bazel":       Static(filetype.Bzl),
		"bb":          Static(filetype.Bitbake),
		"bbappend":    Static(filetype.Bitbake),
		"bbclass":     Static(filetype.Bitbake),
		"bc":          Static(filetype.Bc),
		"bi":          Dynamic(bas),
		"bib":         Static(filetype.Bib),
		"bicep":       Static(filetype.Bicep),
		"bicepparam":  Static(filetype.Bicep),
		"bl":          Static(filetype.Blank),
		"blade.php":   Static(filetype.Blade),
		"blp":         Static(filetype.Blueprint),
		"bm":          Dynamic(bas),
		"bsdl":        Static(filetype.Bsdl),
		"bst":         Static(filetype.Bst),
		"btm":         Static(filetype.Btm),
		"builder":     Static(filetype.Ruby),
		"bzl":         Static(filetype.Bzl),
		"C":           Static(filetype.Cpp),
		"c":           Static(filetype.C),
		"c++":         Static(filetype.Cpp),
		"cabal":       Static(filetype.Cabal),
		"cairo":       Static(filetype.Cairo),
		"capnp":       Static(filetype.Capnp),
		"cbl":         Static(filetype.Cobol),
		"cc":          Static(filetype.Cpp),
		"ccm":         Static(filetype.Cpp),
		"cdc":         Static(filetype.Cdc),
		"cdl":         Static(filetype.Cdl),
		"cedar":       Static(filetype.Cedar),
		"cfc":         Static(filetype.Cf),
		"cfg":         Dynamic(cfg),
		"cfm":         Static(filetype.Cf),
		"cfml":        Static(filetype.Cf),
		"ch":          Dynamic(change),
		"cha":         Static(filetype.Chill),
		"chai":        Static(filetype.ChaiScript),
		"changes":     Dynamic(changelog),
		"chs":         Static(filetype.Chaskell),
		"cjs":         Static(filetype.JavaScript),
		"cl":          Static(filetype.Lisp),
		"clj":         Static(filetype.Clojure),
		"cljc":        Static(filetype.Clojure),
		"cljd":        Static(filetype.Clojure),
		"cljs":        Static(filetype.Clojure),
		"cls":         Dynamic(cls),
		"cmake":       Static(filetype.CMake),
		"cmd":         Dynamic(cmd),
		"cob":         Static(filetype.Cobol),
		"comp":        Dynamic(comp),
		"conf":        Static(filetype.Conf),
		"cook":        Static(filetype.Cook),
		"cpp":         Static(filetype.Cpp),
		"cppm":        Static(filetype.Cpp),
		"cpy":         Dynamic(cpy),
		"cql":         Static(filetype.Cqlang),
		"cr":          Static(filetype.Crystal),
		"cs":          Static(filetype.CSharp),
		"csh":         Dynamic(csh),
		"csproj":      Static(filetype.Xml),
		"css":         Static(filetype.Css),
		"csv":         Static(filetype.Csv),
		"csx":         Static(filetype.CSharp),
		"cts":         Static(filetype.TypeScript),
		"cu":          Static(filetype.Cuda),
		"cue":         Static(filetype.Cue),
		"cuh":         Static(filetype.Cuda),
		"cwl":         Static(filetype.Cwl),
		"cxx":         Static(filetype.Cpp),
		"cxxm":        Static(filetype.Cpp),
		"cyn":         Static(filetype.Cynpp),
		"cypher":      Static(filetype.Cypher),
		"d":           Dynamic(dtrace),
		"d.ts":        Static(filetype.TypeScript),
		"dart":        Static(filetype.Dart),
		"dat":         Dynamic(dat),
		"db":          bindzone(filetype.Text),
		"dec":         Dynamic(decl),
		"decl":        Dynamic(decl),
		"desktop":     Static(filetype.Desktop),
		"di":          Static(filetype.D),
		"diff":        Static(filetype.Diff),
		"directory":   Static(filetype.Desktop),
		"dj":          Static(filetype.Djot),
		"djot":        Static(filetype.Djot),
		"dockerfile":  Static(filetype.Dockerfile),
		"dot":         Static(filetype.Dot),
		"dpkg-dist":   bak,
		"dpkg-new":    bak,
		"dpkg-old":    bak,
		"dpr":         Static(filetype.Pascal),
		"dsl":         Dynamic(dsl),
		"dtd":         Static(filetype.Dtd),
		"dtrace":      Static(filetype.DTrace),
		"dts":         Static(filetype.Dts),
		"dtsi":        Static(filetype.Dts),
		"dtso":        Static(filetype.Dts),
		"dtx":         Static(filetype.Tex),
		"e":           Dynamic(eiffel),
		"ecd":         Static(filetype.Ecd),
		"edn":         Dynamic(edn),
		"eex":         Static(filetype.EElixir),
		"eiffel":      Static(filetype.Eiffel),
		"ejs":         Static(filetype.EJavaScript),
		"el":          Static(filetype.Lisp),
		"elm":         Static(filetype.Elm),
		"ent":         Dynamic(ent),
		"epp":         Static(filetype.EPuppet),
		"erb":         Static(filetype.ERuby),
		"erl":         Static(filetype.Erlang),
		"es":          Static(filetype.JavaScript),
		"ex":          Dynamic(ex),
		"exs":         Static(filetype.Elixir),
		"f":           Static(filetype.Fortran),
		"f03":         Static(filetype.Fortran),
		"f08":         Static(filetype.Fortran),
		"f77":         Static(filetype.Fortran),
		"f90":         Static(filetype.Fortran),
		"f95":         Static(filetype.Fortran),
		"fish":        Static(filetype.Fish),
		"fnl":         Static(filetype.Fennel),
		"foam":        Dynamic(foam),
		"for":         Static(filetype.Fortran),
		"forth":       Static(filetype.Forth),
		"fpp":         Static(filetype.Fortran),
		"frag":        Static(filetype.Glsl),
		"frm":         Dynamic(frm),
		"fs":          Dynamic(fsharpOrForth),
		"fsh":         Static(filetype.Fsh),
		"fsi":         Static(filetype.FSharp),
		"fsx":         Static(filetype.FSharp),
		"fth":         Static(filetype.Forth),
		"ftn":         Static(filetype.Fortran),
		"fxml":        Static(filetype.Xml),
		"g4":          Static(filetype.Antlr4),
		"gawk":        Static(filetype.Awk),
		"gd":          Static(filetype.GdScript),
		"gdshader":    Static(filetype.GdShader),
		"gdshaderinc": Static(filetype.GdShader),
		"gemspec":     Static(filetype.Ruby),
		"geojson":     Static(filetype.Json),
		"geom":        Static(filetype.Glsl),
		"git":         Dynamic(git),
		"gleam":       Static(filetype.Gleam),
		"glsl":        Static(filetype.Glsl),
		"gnuplot":     Static(filetype.GnuPlot),
		"go":          Static(filetype.Go),
		"gotmpl":      Static(filetype.Gotmpl),
		"gpi":         Static(filetype.GnuPlot),
		"gpr":         Static(filetype.Ada),
		"gql":         Static(filetype.GraphQl),
		"gradle":      Static(filetype.Groovy),
		"graphql":     Static(filetype.GraphQl),
		"graphqls":    Static(filetype.GraphQl),
		"groovy":      Static(filetype.Groovy),
		"gv":          Static(filetype.Dot),
		"gvy":         Static(filetype.Groovy),
		"H":           Static(filetype.Cpp),
		"h":           Dynamic(header),
		"h++":         Static(filetype.Cpp),
		"hack":        Static(filetype.Hack),
		"handlebars":  Static(filetype.Handlebars),
		"har":         Static(filetype.Json),
		"hbs":         Static(filetype.Handlebars),
		"hcl":         Static(filetype.Hcl),
		"heex":        Static(filetype.Heex),
		"hh":          Static(filetype.Cpp),
		"hjson":       Static(filetype.HJson),
		"hlsl":        Static(filetype.Hlsl),
		"hlsli":       Static(filetype.Hlsl),
		"hook":        Dynamic(hook),
		"hpp":         Static(filetype.Cpp),
		"hrl":         Static(filetype.Erlang),
		"hs":          Static(filetype.Haskell),
		"hs-boot":     Static(filetype.Haskell),
		"hsc":         Static(filetype.Haskell),
		"hsig":        Static(filetype.Haskell),
		"htm":         Dynamic(html),
		"html":        Dynamic(html),
		"hw":          Dynamic(hw),
		"hx":          Static(filetype.Haxe),
		"hxsl":        Static(filetype.Haxe),
		"hxx":         Static(filetype.Cpp),
		"i":           Dynamic(progressAsm),
		"idl":         Dynamic(idl),
		"in":          configureIn,
		"inc":         Dynamic(inc),
		"ini":         Static(filetype.ConfIni),
		"inl":         Static(filetype.Cpp),
		"ino":         Static(filetype.Arduino),
		"inp":         Dynamic(inp),
		"install":     Dynamic(install),
		"ipp":         Static(filetype.Cpp),
		"ipynb":       Static(filetype.Json),
		"itcl":        Static(filetype.Tcl),
		"its":         Static(filetype.Dts),
		"ixx":         Static(filetype.Cpp),
		"janet":       Static(filetype.JanetSimple),
		"jav":         Static(filetype.Java),
		"java":        Static(filetype.Java),
		"javascript":  Static(filetype.JavaScript),
		"jl":          Static(filetype.Julia),
		"js":          Static(filetype.JavaScript),
		"jsm":         Static(filetype.JavaScript),
		"json":        Static(filetype.Json),
		"json5":       Static(filetype.Json5),
		"jsonc":       Static(filetype.JsonC),
		"jsonl":       Static(filetype.Json),
		"jsonnet":     Static(filetype.Jsonnet),
		"jsx":         Static(filetype.Jsx),
		"k":           Static(filetype.Kwt),
		"kdl":         Static(filetype.Kdl),
		"ksh":         Static(filetype.Ksh),
		"kt":          Static(filetype.Kotlin),
		"ktm":         Static(filetype.Kotlin),
		"kts":         Static(filetype.Kotlin),
		"kv":          Static(filetype.Kivy),
		"l":           Static(filetype.Lex),
		"lagda":       Static(filetype.Agda),
		"ld":          Static(filetype.Ld),
		"lean":        Static(filetype.Lean),
		"leex":        Static(filetype.EElixir),
		"less":        Static(filetype.Less),
		"lex":         Static(filetype.Lex),
		"lhs":         Static(filetype.LHaskell),
		"lib":         Dynamic(cobolOrFaust),
		"libsonnet":   Static(filetype.Jsonnet),
		"ll":          Static(filetype.Llvm),
		"log":         Dynamic(logFile),
		"lpc":         Dynamic(lpc),
		"lpr":         Static(filetype.Pascal),
		"lsl":         Dynamic(lsl),
		"ltx":         Static(filetype.Tex),
		"lua":         Static(filetype.Lua),
		"luau":        Static(filetype.Luau),
		"lxx":         Static(filetype.Lex),
		"m":           Dynamic(objcOrMatlab),
		"m4":          Dynamic(m4),
		"mak":         Static(filetype.Make),
		"make":        Static(filetype.Make),
		"markdown":    Static(filetype.Markdown),
		"mc":          Dynamic(mc),
		"md":          Static(filetype.Markdown),
		"mdx":         Static(filetype.Mdx),
		"me":          Dynamic(me),
		"mjs":         Static(filetype.JavaScript),
		"mk":          Static(filetype.Make),
		"mkd":         Static(filetype.Markdown),
		"ml":          Static(filetype.OCaml),
		"mli":         Static(filetype.OCaml),
		"mll":         Static(filetype.OCaml),
		"mlt":         Static(filetype.OCaml),
		"mly":         Static(filetype.OCaml),
		"mm":          Dynamic(mm),
		"mms":         Dynamic(mms),
		"mod":         Dynamic(modula),
		"module":      Dynamic(hw),
		"mojo":        Static(filetype.Mojo),
		"mom":         Static(filetype.Nroff),
		"moon":        Static(filetype.MoonScript),
		"mts":         Static(filetype.TypeScript),
		"mustache":    Static(filetype.Mustache),
		"mysql":       Static(filetype.MySql),
		"n1ql":        Static(filetype.N1ql),
		"nb":          Static(filetype.Mma),
		"nim":         Static(filetype.Nim),
		"nimble":      Static(filetype.Nim),
		"nims":        Static(filetype.Nim),
		"ninja":       Static(filetype.Ninja),
		"nix":         Static(filetype.Nix),
		"nroff":       Dynamic(nroff),
		"nu":          Static(filetype.Nu),
		"odin":        Static(filetype.Odin),
		"old":         bak,
		"org":         Static(filetype.Org),
		"orig":        bak,
		"p":           Dynamic(progressPascal),
		"p6":          Static(filetype.Raku),
		"pas":         Static(filetype.Pascal),
		"patch":       Dynamic(patch),
		"pde":         Static(filetype.Arduino),
		"php":         Static(filetype.Php),
		"php3":        Static(filetype.Php),
		"php4":        Static(filetype.Php),
		"php5":        Static(filetype.Php),
		"phpt":        Static(filetype.Php),
		"phtml":       Static(filetype.Php),
		"pkb":         Static(filetype.Plsql),
		"pkg":         Dynamic(hw),
		"pkl":         Static(filetype.Pkl),
		"pks":         Static(filetype.Plsql),
		"pl":          Dynamic(pl),
		"pl6":         Static(filetype.Raku),
		"plist":       Static(filetype.Xml),
		"pls":         Static(filetype.Plsql),
		"plsql":       Static(filetype.Plsql),
		"plt":         Static(filetype.GnuPlot),
		"plx":         Static(filetype.Perl),
		"pm":          Dynamic(pm),
		"pm6":         Static(filetype.Raku),
		"po":          Static(filetype.Po),
		"pod":         Static(filetype.Pod),
		"pony":        Static(filetype.Pony),
		"pot":         Static(filetype.Po),
		"pp":          Dynamic(pp),
		"prg":         Dynamic(prg),
		"prisma":      Static(filetype.Prisma),
		"pro":         proto(filetype.Idlang),
		"proto":       Static(filetype.Proto),
		"ps1":         Static(filetype.Ps1),
		"psd1":        Static(filetype.Ps1),
		"psf":         Dynamic(psf),
		"psgi":        Static(filetype.Perl),
		"psm1":        Static(filetype.Ps1),
		"ptl":         Static(filetype.Python),
		"purs":        Static(filetype.Purescript),
		"pxd":         Static(filetype.Pyrex),
		"py":          Static(filetype.Python),
		"pyi":         Static(filetype.Python),
		"pyw":         Static(filetype.Python),
		"pyx":         Static(filetype.Pyrex),
		"qml":         Static(filetype.Qmljs),
		"qmljs":       Static(filetype.Qmljs),
		"R":           Dynamic(rOrRexx),
		"r":           Dynamic(rOrRexx),
		"rake":        Static(filetype.Ruby),
		"raku":        Static(filetype.Raku),
		"rakumod":     Static(filetype.Raku),
		"rakutest":    Static(filetype.Raku),
		"rb":          Static(filetype.Ruby),
		"rbw":         Static(filetype.Ruby),
		"rc":          Dynamic(rc),
		"rch":         Dynamic(rc),
		"re":          Static(filetype.ReScript),
		"redif":       Dynamic(redif),
		"reg":         Dynamic(reg),
		"rego":        Static(filetype.Rego),
		"rej":         Static(filetype.Diff),
		"res":         Static(filetype.ReScript),
		"resi":        Static(filetype.ReScript),
		"rhtml":       Static(filetype.ERuby),
		"rkt":         Static(filetype.Racket),
		"rktd":        Static(filetype.Racket),
		"rktl":        Static(filetype.Racket),
		"rockspec":    Static(filetype.Lua),
		"roff":        Static(filetype.Nroff),
		"rpmnew":      bak,
		"rpmsave":     bak,
		"rs":          Static(filetype.Rust),
		"rss":         Static(filetype.Xml),
		"rst":         Static(filetype.Rst),
		"ru":          Static(filetype.Ruby),
		"rul":         Dynamic(rul),
		"rules":       Dynamic(rules),
		"run":         Static(filetype.Ampl),
		"S":           Dynamic(asm),
		"s":           Dynamic(asm),
		"sass":        Static(filetype.Sass),
		"sc":          Dynamic(scalaOrSC),
		"scala":       Static(filetype.Scala),
		"scd":         Dynamic(scd),
		"scm":         Static(filetype.Scheme),
		"scpt":        Static(filetype.AppleScript),
		"scss":        Static(filetype.Scss),
		"sed":         Static(filetype.Sed),
		"sgm":         Dynamic(sgml),
		"sgml":        Dynamic(sgml),
		"sh":          shellDialect(filetype.Text),
		"shader":      Static(filetype.GdShader),
		"shtml":       Dynamic(html),
		"sig":         Dynamic(sig),
		"sil":         Dynamic(sil),
		"sky":         Static(filetype.Starlark),
		"sld":         Static(filetype.Scheme),
		"smali":       Static(filetype.Smali),
		"smi":         Dynamic(smi),
		"smil":        Dynamic(smil),
		"sml":         Static(filetype.Sml),
		"sol":         Static(filetype.Solidity),
		"sql":         Static(filetype.Sql),
		"src":         Dynamic(krlSrc),
		"ss":          Static(filetype.Scheme),
		"star":        Static(filetype.Starlark),
		"stm":         Dynamic(html),
		"sty":         Static(filetype.Tex),
		"styl":        Static(filetype.Stylus),
		"sv":          Static(filetype.SystemVerilog),
		"svelte":      Static(filetype.Svelte),
		"svg":         Static(filetype.Xml),
		"svh":         Static(filetype.SystemVerilog),
		"swift":       Static(filetype.Swift),
		"sys":         Dynamic(sysOrRapid),
		"t":           Dynamic(perl),
		"t.html":      Static(filetype.Html),
		"tcc":         Static(filetype.Cpp),
		"tcl":         Static(filetype.Tcl),
		"tesc":        Static(filetype.Glsl),
		"tese":        Static(filetype.Glsl),
		"tex":         Dynamic(tex),
		"tf":          Dynamic(terraform),
		"tfvars":      Static(filetype.Terraform),
		"thrift":      Static(filetype.Thrift),
		"tk":          Static(filetype.Tcl),
		"tm":          Static(filetype.Tcl),
		"tmac":        Static(filetype.Nroff),
		"tmpl":        Static(filetype.Template),
		"toml":        Static(filetype.Toml),
		"tpl":         Static(filetype.Smarty),
		"tpp":         Static(filetype.Cpp),
		"tr":          Static(filetype.Nroff),
		"ts":          Dynamic(typescriptOrXML),
		"tsx":         Static(filetype.Tsx),
		"ttl":         Dynamic(ttl),
		"twig":        Static(filetype.Twig),
		"txt":         Dynamic(txt),
		"typ":         Dynamic(typ),
		"v":           Dynamic(vOrVerilog),
		"vala":        Static(filetype.Vala),
		"vb":          Static(filetype.Vb),
		"vba":         Static(filetype.Vb),
		"vbs":         Static(filetype.Vb),
		"vert":        Static(filetype.Glsl),
		"vh":          Static(filetype.SystemVerilog),
		"vhd":         Static(filetype.Vhdl),
		"vhdl":        Static(filetype.Vhdl),
		"vim":         Static(filetype.Vim),
		"vs":          Static(filetype.Glsl),
		"vue":         Static(filetype.Vue),
		"w":           Dynamic(progressCweb),
		"wast":        Static(filetype.Wat),
		"wat":         Static(filetype.Wat),
		"web":         Dynamic(web),
		"webmanifest": Static(filetype.Json),
		"wgsl":        Static(filetype.Wgsl),
		"wit":         Static(filetype.Wit),
		"wl":          Static(filetype.Mma),
		"wls":         Static(filetype.Mma),
		"wrm":         Static(filetype.Acedb),
		"wsgi":        Static(filetype.Python),
		"xhtml":       Static(filetype.Xhtml),
		"xml":         Dynamic(xml),
		"xpm":         Dynamic(xpm),
		"xsd":         Static(filetype.Xml),
		"xsl":         Static(filetype.Xslt),
		"xslt":        Static(filetype.Xslt),
		"y":           Dynamic(yaccOrRacc),
		"yaml":        Static(filetype.Yaml),
		"yang":        Static(filetype.Yang),
		"yaws":        Static(filetype.Erlang),
		"yml":         Static(filetype.Yaml),
		"yxx":         Static(filetype.Yacc),
		"yy":          Static(filetype.Yacc),
		"zig":         Static(filetype.Zig),
		"zir":         Static(filetype.Zir),
		"zon":         Static(filetype.Zig),
		"zone":        bindzone(filetype.Text),
		"zsh":         Static(filetype.Zsh),
	}
})
