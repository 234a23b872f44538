package filetype

const (
	Text FileType = iota
	A2ps
	A65
	Aap
	Abap
	AbapCds
	Abaqus
	Abc
	Abel
	Abnf
	Acedb
	Actionscript
	Ada
	AdBlockFilters
	Afdko
	Agda
	Ags
	Ahdl
	Aidl
	Aiken
	Algol
	Alloy
	AlsaConf
	Altium
	Aml
	Ampl
	Amusewiki
	Angular
	AnswerSetProgramming
	Ant
	Antlers
	Antlr4
	Apache
	ApacheStyle
	Apex
	ApiBlueprint
	Apkbuild
	Apl
	ApolloGuidanceComputer
	AppleScript
	AptConf
	Arc
	Arch
	Arduino
	Art
	AsciiDoc
	AsciiStl
	Asl
	Asm
	Asn
	Asp
	Aspectj
	AspPerl
	AspVbs
	Aspx
	Asterisk
	AsteriskVoiceMail
	Astro
	Asy
	Atlas
	Ats2
	Augeas
	Authzed
	AutoHotKey
	AutoIt
	Automake
	Autopkgtest
	Ave
	AvroIdl
	Awk
	B
	Ballerina
	Bash
	BashSession
	Basic
	BasicForAndroid
	Bass
	Bat
	Bc
	Bdf
	Be
	BeanCount
	Beef
	Befunge
	Bib
	Bicep
	BicepParams
	Bindzone
	Bison
	Bitbake
	Blade
	Blank
	Blueprint
	BluespecBsv
	Bmax
	Boo
	Boogie
	Bp
	Bpftrace
	Bqn
	Brainfuck
	Brighterscript
	Brightscript
	Bro
	Browserslist
	Bru
	Bsdl
	Bst
	Btm
	Byond
	Bzl
	Bzr
	C
	C3
	Cabal
	CabalConfig
	CabalProject
	Caddy
	Cairo
	Calendar
	Cameligo
	Cangjie
	Capnp
	Carbon
	Catalog
	Cdc
	Cdl
	CdrdaoConf
	Cdrtoc
	Cds
	Cedar
	Ceylon
	Cf
	CfEngine
	Cfg
	Cgdbrc
	Ch
	ChaiScript
	Change
	Changelog
	Charity
	Chaskell
	Chatito
	Checksum
	Chill
	Chordpro
	Chpl
	Chuck
	Cil
	Circom
	Cirru
	Cl
	Clarion
	Clarity
	Clean
	Click
	Clipper
	Clojure
	CloudFirestoreSecurityRules
	Clue
	CMake
	CMakeCache
	CMod
	Cmusrc
	CObjdump
	Cobol
	Coccinelle
	Coco
	Codeowners
	Collada
	Comment
	ComponentPascal
	ConaryRecipe
	Conf
	Config
	ConfIni
	Conll
	Context
	Cook
	Coq
	Corn
	Cpon
	Cpp
	Cqlang
	Creole
	Crm
	Crontab
	Crystal
	Csc
	Csdl
	Csh
	CSharp
	Cson
	CsoundCsd
	CsoundOrc
	CsoundSco
	Csp
	Css
	Csv
	CTerm
	Cucumber
	Cuda
	Cue
	Cupl
	Cuplsim
	Curlrc
	Curry
	Cvs
	Cvsrc
	Cweb
	Cwl
	Cycript
	Cylc
	Cynpp
	Cypher
	D
	D2lang
	Dafny
	Dart
	Daslang
	DataScript
	Dataweave
	Dax
	Dcd
	Dcl
	DebChangelog
	DebControl
	DebCopyright
	DebianPackageControlFile
	DebSources
	Def
	Denizenscript
	DenyHosts
	Dep3Patch
	Desc
	Desktop
	Dhall
	DictConf
	DictdConf
	Diff
	DirColors
	Disassembly
	Diva
	Djot
	DnsMasq
	DObjdump
	DocBookSgml4
	DocBookXml4
	Docbookxml4
	DocBookXml5
	Docbookxml5
	Dockerfile
	Dogescript
	DosBatch
	DosIni
	Dot
	Dotenv
	Doxygen
	Dpatch
	Dracula
	Dsl
	Dtd
	DTrace
	Dts
	Dune
	Dylan
	DylanIntr
	DylanLid
	E
	Eagle
	Earthfile
	Easybuild
	Ebnf
	Ecd
	EcereProjects
	Ecl
	Eclipse
	Ecmarkdown
	Ecr
	Edge
	Edif
	EditorConfig
	EdjeDataCollection
	Edn
	Eds
	EElixir
	EeschemaSchematic
	Eiffel
	Eighth
	EJavaScript
	Elf
	ELinks
	Elisp
	Elixir
	Elm
	ElmFilt
	Elsa
	Elvish
	ElvishTranscript
	Emberscript
	Enforce
	EPuppet
	Eq
	Erlang
	ERuby
	Esdl
	Esmtprc
	Esqlc
	Esterel
	Eterm
	Euphoria
	Euphoria3
	Execline
	Exim
	Expect
	Exports
	Facility
	Factor
	Falcon
	Fan
	Fancy
	Faust
	Fennel
	FetchMail
	Fga
	Fgl
	Fidl
	Figfont
	Filterscript
	Firrtl
	Fish
	Flix
	Fluent
	Foam
	FocExec
	Form
	Forth
	Fortran
	FourD
	FpcMake
	FrameScript
	FreeBasic
	Frege
	Fsh
	FSharp
	FsTab
	Fstar
	Func
	Fusion
	Futhark
	Fvwm
	Fvwm1
	Fvwm2
	Fvwm2M4
	GameMakerLanguage
	Gaml
	Gams
	Gap
	Gaptst
	Gas
	Gdb
	Gdmo
	GdResource
	GdScript
	GdShader
	Gdshader
	Gedcom
	Gel
	GemfileLock
	GemText
	GeneroPer
	GentooEbuild
	GentooEclass
	Gf
	Gift
	Git
	GitAttributes
	GitBlameIgnoreRevs
	GitCommit
	GitConfig
	GitIgnore
	GitOlite
	GitRebase
	GitSendEmail
	Gkrellmrc
	Gleam
	Glsl
	Glyph
	Gn
	Gnash
	GnuPlot
	Go
	Goaccess
	Goctl
	Golo
	GoMod
	GoSum
	Gotmpl
	GoWork
	Gpg
	Grace
	GradleKotlinDsl
	Grads
	GraphModelingLanguage
	GraphQl
	Gren
	Gretl
	Groff
	Groovy
	Groq
	Group
	Grub
	Gsp
	Gstlaunch
	Gtkrc
	Gyp
	Hack
	Haml
	Hamster
	Handlebars
	Haproxy
	Hare
	Haskell
	HaskellPersistent
	Haste
	HastePreProc
	Haxe
	Hb
	Hcl
	Heex
	Helm
	Hercules
	Hex
	HexDump
	Hgcommit
	Hip
	Hiveql
	HJson
	Hlsl
	HlsPlaylist
	Hocon
	Hog
	Hollywood
	Holyc
	Hoon
	HostConf
	Hosts
	HostsAccess
	Html
	HtmlDjango
	HtmlM4
	HtTest
	Http
	Hurl
	Hxml
	Hy
	Hylo
	Hyphy
	Hyprlang
	I3Config
	I7
	IBasic
	Ical
	IceMenu
	Icon
	Idl
	Idlang
	Idris
	Igor
	Ijm
	Imba
	Indent
	Inform
	Initng
	InitTab
	Ink
	Inko
	InstallShield
	Io
	Ioke
	IpFilter
	Ipkg
	Irc
	Isabelle
	IsabelleRoot
	Ispc
	Iss
	Ist
	J
	Jac
	Jai
	Jal
	Jam
	JanetSimple
	JarManifest
	Jasmin
	Java
	JavaCc
	Javadoc
	JavaScript
	JavascriptErb
	JavaScriptGlimmer
	Jcl
	Jess
	JestSnapshot
	Jflex
	JGraph
	Jinja
	JinjaInline
	Jison
	JisonLex
	Jjdescription
	Jolie
	Jovial
	JProperties
	Jq
	Jsdoc
	Json
	Json5
	JsonC
	JsonL
	Jsonld
	Jsonnet
	Jsp
	Jsx
	Jte
	Julia
	JuliaRepl
	Just
	Kak
	Karel
	Kcl
	KConfig
	Kdl
	Kerml
	KicadLegacyLayout
	Kit
	Kitty
	Kivy
	Kix
	Koka
	KolmafiaAsh
	Kos
	Kotlin
	Koto
	Krl
	KScript
	Ksh
	Ksy
	Kusto
	Kwt
	Labview
	Lace
	Lalrpop
	Lambdapi
	LambdaProlog
	Langium
	Larch
	Lark
	Lassoscript
	Latte
	Ld
	Ldapconf
	Ldif
	Lean
	Ledger
	Leex
	Leo
	Less
	Lex
	Lf
	Lfe
	Lftp
	LHaskell
	Libao
	Lidris2
	Ligolang
	Lilo
	Lilypond
	Limbo
	Limits
	LinearProgramming
	LinuxKernelModule
	Liquid
	Liquidsoap
	Lisp
	Litcoffee
	Lite
	LiterateAgda
	LiteStep
	Livebook
	LivecodeScript
	LiveScript
	Llvm
	LogCheck
	LoginAccess
	LoginDefs
	Logtalk
	Lolcode
	Lookml
	Loomscript
	Lotos
	Lout
	Lpc
	Lsl
	Lss
	Lua
	Luadoc
	Luap
	Luau
	Lynx
	Lyrics
	M17ndb
	M3Build
	M3Quake
	M4
	M68k
	Magik
	Mail
	MailAliases
	MailCap
	Make
	Mako
	Mallard
	ManConf
	Map
	Maple
	Markdown
	MarkdownInline
	Markojs
	Mask
	Masm
	Mason
	Master
	Matlab
	MavenPom
	Maxima
	MaxMsp
	Maxscript
	Mbsync
	Mcfunction
	Mdsvex
	Mdx
	Mediawiki
	Mel
	Menhir
	Mermaid
	Meson
	Messages
	Metal
	Mf
	Mgl
	Mgp
	Mib
	Minid
	Minizinc
	MinizincData
	Mint
	Mirah
	MircScript
	Mix
	Mlir
	Mma
	Mmix
	Mmp
	ModConf
	Modsim3
	Modula2
	Modula3
	ModuleManagementSystem
	Mojo
	Monk
	Monkey
	MonkeyC
	Moo
	Moonbit
	MoonScript
	Move
	Mp
	MPlayerConf
	MpMetafun
	Mql4
	Mql5
	Mrxvtrc
	Msidl
	MsMessages
	Msmtp
	Msql
	Mss
	Mtml
	Muf
	Mumps
	Mupad
	Murphi
	Mush
	Mustache
	Muttrc
	Myghty
	MySql
	N1ql
	Named
	Nanorc
	Nasal
	Nasl
	Nasm
	Natural
	Ncf
	Nearley
	Nemerle
	Neomuttlog
	Neomuttrc
	Nesc
	Netlinx
	NetlinxErb
	Netlogo
	Netrc
	NetteObjectNotation
	Nextflow
	Nginx
	Nickel
	Nim
	NimFormatString
	Ninja
	Nit
	Nix
	Njk
	Nl
	Nmodl
	Norg
	Nq
	Nqc
	Nroff
	Nsis
	Ntriples
	Nu
	Numbat
	Numpy
	Nwscript
	Oasv2
	Oasv3
	Oberon
	Obj
	ObjC
	ObjCpp
	Objdump
	Objectscript
	ObjJ
	Obse
	OCaml
	OCamlInterface
	Ocamllex
	Occam
	Octave
	Odin
	Omgrofl
	OmnetppMsg
	OmnetppNed
	OmniMark
	Ondir
	OneCEnterprise
	Ooc
	Opa
	Opal
	Opam
	Openqasm
	Openrc
	OpenRoad
	OpenScad
	OpenstepPropertyList
	OpenVpn
	Opl
	Opts
	Ora
	Org
	Overpassql
	Ox
	Oxygene
	Oz
	P4
	Pact
	PamConf
	PamEnv
	Pan
	Pandoc
	Papp
	Papyrus
	Parrot
	Pascal
	Pasm
	Passwd
	Pawn
	Pbtxt
	Pcbnew
	Pccts
	Pcmk
	Pddl
	Pdf
	PegJs
	Pem
	Pep8
	Perl
	Pf
	PfMain
	Pgn
	Php
	Phpdoc
	PhpOnly
	Piglatin
	Pikchr
	Pike
	Pilrc
	Pine
	PInfo
	Pioasm
	Pir
	Pkl
	PlainTex
	Plantuml
	Pli
	Plm
	Plp
	Plpgsql
	Plsql
	Po
	Pod
	PoeFilter
	Pogoscript
	Poke
	Polar
	Pony
	Portugol
	Postcss
	Postscr
	Pov
	PovIni
	Powerbuilder
	Ppd
	Ppwiz
	Pq
	Praat
	Printf
	Prisma
	Privoxy
	Problog
	Proc
	Procfile
	ProcMail
	Progress
	Proguard
	Prolog
	Promela
	Promql
	PropellerSpin
	Proto
	Protocols
	Prql
	Ps1
	Ps1Xml
	Psf
	Psl
	Psv
	PtcapPrint
	PtcapTerm
	Ptx
	PublicKey
	Pug
	Puppet
	Purebasic
	Purescript
	Pycon
	Pymanifest
	Pyret
	Pyrex
	Python
	PythonTraceback
	Q
	Qb64
	Ql
	Qmake
	QmlDir
	Qmljs
	Qsharp
	QtScript
	Quake
	Quarto
	Quickbms
	R
	Racc
	Racket
	Radiance
	RagelRb
	Raku
	Ralph
	Raml
	Rapid
	Rascript
	Rasi
	RatPoison
	Raw
	Razor
	Rbs
	Rc
	Rcs
	Rdoc
	Re2c
	Readline
	Realbasic
	Reason
	Reasonligo
	Rebol
	RecordJar
	Redcode
	Redif
	Redirects
	RedSystem
	Regex
	Registry
	Rego
	Remind
	Renpy
	Requirements
	ReScript
	Resolv
	Reva
	Rexx
	Rez
	RHelp
	Rib
	Rifleconf
	Ring
	Riot
	Rmd
	Rnc
	Rng
	Rnoweb
	Robot
	Robots
	Roc
	Ron
	Rouge
	RouterOs
	Rpcgen
	Rpgle
	Rpl
	Rrst
	Rst
	Rtf
	Ruby
	Runescript
	Runoff
	Rush
	Rust
	Sage
	Sail
	Salt
	Samba
	Sas
	Sass
	Sather
	Sbt
	Scala
	Scaml
	Scdoc
	Scenic
	Scfg
	Scheme
	Scilab
	Screen
	Scss
	Sd
	Sdc
	Sdl
	Sed
	SelfLang
	SelinuxKernelPolicyLanguage
	Sensors
	Services
	SetSerial
	Sexplib
	Sflog
	Sfv
	Sgml
	SgmlDecl
	Sh
	Shellcheckrc
	Shen
	Sieve
	Sil
	Sile
	Simula
	Sinda
	Singularity
	Sisu
	Skhd
	Skill
	Slang
	Slice
	Slim
	Slint
	SlpConf
	SlpReg
	SlpSpi
	Slrnrc
	Slrnsc
	Sm
	Smali
	Smarty
	Smcl
	Smgllnx
	Smil
	Smith
	Smithy
	Sml
	Snakemake
	Snipmate
	Snippet
	Snobol4
	Solidity
	Solution
	Soong
	Soql
	Sosl
	Sourcepawn
	Soy
	Spajson
	Sparql
	Spec
	SpecMan
	Spice
	SplineFontDatabase
	Sproto
	Spup
	Spyce
	Sqf
	Sql
	Sqlj
	Sqlpl
	Sqr
	Squid
	Squirrel
	Srec
	Srt
	Ssa
	SshConfig
	SshdConfig
	St
	Stan
	Starlark
	Stata
	Ston
	Stp
	Strace
	Structurizr
	Styled
	Stylus
	Sudoers
	Sugarss
	Supercollider
	Superhtml
	Surface
	Surql
	SurvexData
	Svelte
	Svg
	Svn
	Sway
	SwayConfig
	Swift
	SwiftGyb
	Swig
	Sxhkdrc
	Sysctl
	Sysml
	Systemd
	Systemtap
	SystemVerilog
	Tablegen
	Tact
	Tads
	Tags
	Tak
	Tal
	Talon
	TaskData
	TaskEdit
	Tcl
	Tcsh
	Tea
	Teal
	Templ
	Template
	Tera
	Teraterm
	Terminfo
	Terra
	Terraform
	TerraformTemplate
	TerraformVars
	Tex
	TexInfo
	TexMF
	Textgrid
	Textile
	Tf
	Thrift
	Tiasm
	Tidy
	Tiger
	Tilde
	Tiltfile
	TiProgram
	Tla
	Tli
	TlVerilog
	TmProperties
	Tmux
	Todotxt
	Toit
	Toml
	Torrc
	Tpp
	Trace32
	Trasys
	TreeSitterQuery
	Treetop
	Trig
	Trustees
	Tsalt
	Tsql
	Tsscl
	Tssgm
	Tssop
	Tsv
	Tsx
	Turing
	Turtle
	Tutor
	Twig
	TwoDimensionalArray
	Txl
	TypeScript
	TypeScriptGlimmer
	Typespec
	Typoscript
	Typst
	Uc
	UdevConf
	UdevPerm
	UdevRules
	Uil
	Ungrammar
	UnifiedParallelC
	Unison
	Uno
	UntypedPlutusCore
	UpdateDb
	Upstart
	UpstreamDat
	UpstreamInstallLog
	UpstreamLog
	UrlShortcut
	Ursa
	UrWeb
	Usd
	UsServerLog
	Usw2KagtLog
	V
	Vala
	Vb
	Vcl
	Vdf
	Vdmpp
	Vdmrt
	Vdmsl
	Vento
	Vera
	Verilogams
	Vgrindefs
	Vhdl
	Vhs
	Vim
	VimHelp
	Vimhelp
	VimInfo
	Virata
	VirtualContactFile
	Vmasm
	Volt
	Voscm
	Vrl
	Vrml
	Vroom
	Vtl
	Vtt
	Vue
	Vyper
	Wast
	Wat
	WavefrontMaterial
	Wdl
	Web
	Webidl
	WebMacro
	WebOntologyLanguage
	Wget
	Wget2
	Wgsl
	WgslBevy
	Whiley
	Win32MessageFile
	WinBatch
	WindowsRegistryEntries
	Wing
	Wisp
	Wit
	WitcherScript
	Wml
	Wollok
	Wrenlang
	Wsh
	Wsml
	WvDial
	Wxml
	Xbl
	Xbm
	Xc
	Xcompose
	XDefaults
	XF86Conf
	XF86Conf3
	Xf86conf3
	XF86Conf4
	XFontDirectoryIndex
	Xhtml
	Xinetd
	Xmake
	XMath
	Xml
	XmlGenshi
	XmlPropertyList
	XModMap
	Xojo
	Xonsh
	Xpages
	Xpm
	Xpm2
	Xproc
	XQuery
	Xs
	Xsd
	Xslt
	Xten
	Xtend
	Yacc
	Yaml
	Yang
	Yara
	Yasm
	Yuck
	Yul
	Z8a
	Zap
	Zathurarc
	Zephir
	Zig
	Ziggy
	ZiggySchema
	Zil
	Zimbu
	ZimbuTempl
	Zimpl
	Zir
	Zmodel
	Zserio
	Zsh
)

var names = [...]string{
	Text:                        "text",
	A2ps:                        "a2ps",
	A65:                         "a65",
	Aap:                         "aap",
	Abap:                        "abap",
	AbapCds:                     "abap-cds",
	Abaqus:                      "abaqus",
	Abc:                         "abc",
	Abel:                        "abel",
	Abnf:                        "abnf",
	Acedb:                       "acedb",
	Actionscript:                "actionscript",
	Ada:                         "ada",
	AdBlockFilters:              "ad-block-filters",
	Afdko:                       "afdko",
	Agda:                        "agda",
	Ags:                         "ags",
	Ahdl:                        "ahdl",
	Aidl:                        "aidl",
	Aiken:                       "aiken",
	Algol:                       "algol",
	Alloy:                       "alloy",
	AlsaConf:                    "alsaconf",
	Altium:                      "altium",
	Aml:                         "aml",
	Ampl:                        "ampl",
	Amusewiki:                   "amusewiki",
	Angular:                     "htmlangular",
	AnswerSetProgramming:        "answer-set-programming",
	Ant:                         "ant",
	Antlers:                     "antlers",
	Antlr4:                      "antlr4",
	Apache:                      "apache",
	ApacheStyle:                 "apachestyle",
	Apex:                        "apex",
	ApiBlueprint:                "api-blueprint",
	Apkbuild:                    "apkbuild",
	Apl:                         "apl",
	ApolloGuidanceComputer:      "apollo-guidance-computer",
	AppleScript:                 "applescript",
	AptConf:                     "aptconf",
	Arc:                         "arc",
	Arch:                        "arch",
	Arduino:                     "arduino",
	Art:                         "art",
	AsciiDoc:                    "asciidoc",
	AsciiStl:                    "ascii-stl",
	Asl:                         "asl",
	Asm:                         "asm",
	Asn:                         "asn",
	Asp:                         "asp",
	Aspectj:                     "aspectj",
	AspPerl:                     "aspperl",
	AspVbs:                      "aspvbs",
	Aspx:                        "aspx",
	Asterisk:                    "asterisk",
	AsteriskVoiceMail:           "asteriskvm",
	Astro:                       "astro",
	Asy:                         "asy",
	Atlas:                       "atlas",
	Ats2:                        "ats2",
	Augeas:                      "augeas",
	Authzed:                     "authzed",
	AutoHotKey:                  "autohotkey",
	AutoIt:                      "autoit",
	Automake:                    "automake",
	Autopkgtest:                 "autopkgtest",
	Ave:                         "ave",
	AvroIdl:                     "avro-idl",
	Awk:                         "awk",
	B:                           "b",
	Ballerina:                   "ballerina",
	Bash:                        "bash",
	BashSession:                 "bash-session",
	Basic:                       "basic",
	BasicForAndroid:             "basic-for-android",
	Bass:                        "bass",
	Bat:                         "bat",
	Bc:                          "bc",
	Bdf:                         "bdf",
	Be:                          "be",
	BeanCount:                   "beancount",
	Beef:                        "beef",
	Befunge:                     "befunge",
	Bib:                         "bib",
	Bicep:                       "bicep",
	BicepParams:                 "bicep-params",
	Bindzone:                    "bindzone",
	Bison:                       "bison",
	Bitbake:                     "bitbake",
	Blade:                       "blade",
	Blank:                       "blank",
	Blueprint:                   "blueprint",
	BluespecBsv:                 "bluespec-bsv",
	Bmax:                        "bmax",
	Boo:                         "boo",
	Boogie:                      "boogie",
	Bp:                          "bp",
	Bpftrace:                    "bpftrace",
	Bqn:                         "bqn",
	Brainfuck:                   "brainfuck",
	Brighterscript:              "brighterscript",
	Brightscript:                "brightscript",
	Bro:                         "bro",
	Browserslist:                "browserslist",
	Bru:                         "bru",
	Bsdl:                        "bsdl",
	Bst:                         "bst",
	Btm:                         "btm",
	Byond:                       "byond",
	Bzl:                         "bzl",
	Bzr:                         "bzr",
	C:                           "c",
	C3:                          "c3",
	Cabal:                       "cabal",
	CabalConfig:                 "cabalconfig",
	CabalProject:                "cabalproject",
	Caddy:                       "caddy",
	Cairo:                       "cairo",
	Calendar:                    "calendar",
	Cameligo:                    "cameligo",
	Cangjie:                     "cangjie",
	Capnp:                       "capnp",
	Carbon:                      "carbon",
	Catalog:                     "catalog",
	Cdc:                         "cdc",
	Cdl:                         "cdl",
	CdrdaoConf:                  "cdrdaoconf",
	Cdrtoc:                      "cdrtoc",
	Cds:                         "cds",
	Cedar:                       "cedar",
	Ceylon:                      "ceylon",
	Cf:                          "cf",
	CfEngine:                    "cfengine",
	Cfg:                         "cfg",
	Cgdbrc:                      "cgdbrc",
	Ch:                          "ch",
	ChaiScript:                  "chaiscript",
	Change:                      "change",
	Changelog:                   "changelog",
	Charity:                     "charity",
	Chaskell:                    "chaskell",
	Chatito:                     "chatito",
	Checksum:                    "checksum",
	Chill:                       "chill",
	Chordpro:                    "chordpro",
	Chpl:                        "chpl",
	Chuck:                       "chuck",
	Cil:                         "cil",
	Circom:                      "circom",
	Cirru:                       "cirru",
	Cl:                          "cl",
	Clarion:                     "clarion",
	Clarity:                     "clarity",
	Clean:                       "clean",
	Click:                       "click",
	Clipper:                     "clipper",
	Clojure:                     "clojure",
	CloudFirestoreSecurityRules: "cloud-firestore-security-rules",
	Clue:                        "clue",
	CMake:                       "cmake",
	CMakeCache:                  "cmakecache",
	CMod:                        "cmod",
	Cmusrc:                      "cmusrc",
	CObjdump:                    "c-objdump",
	Cobol:                       "cobol",
	Coccinelle:                  "coccinelle",
	Coco:                        "coco",
	Codeowners:                  "codeowners",
	Collada:                     "collada",
	Comment:                     "comment",
	ComponentPascal:             "component-pascal",
	ConaryRecipe:                "conaryrecipe",
	Conf:                        "conf",
	Config:                      "config",
	ConfIni:                     "ini",
	Conll:                       "conll",
	Context:                     "context",
	Cook:                        "cook",
	Coq:                         "coq",
	Corn:                        "corn",
	Cpon:                        "cpon",
	Cpp:                         "cpp",
	Cqlang:                      "cqlang",
	Creole:                      "creole",
	Crm:                         "crm",
	Crontab:                     "crontab",
	Crystal:                     "crystal",
	Csc:                         "csc",
	Csdl:                        "csdl",
	Csh:                         "csh",
	CSharp:                      "csharp",
	Cson:                        "cson",
	CsoundCsd:                   "csound-csd",
	CsoundOrc:                   "csound-orc",
	CsoundSco:                   "csound-sco",
	Csp:                         "csp",
	Css:                         "css",
	Csv:                         "csv",
	CTerm:                       "cterm",
	Cucumber:                    "cucumber",
	Cuda:                        "cuda",
	Cue:                         "cue",
	Cupl:                        "cupl",
	Cuplsim:                     "cuplsim",
	Curlrc:                      "curlrc",
	Curry:                       "curry",
	Cvs:                         "cvs",
	Cvsrc:                       "cvsrc",
	Cweb:                        "cweb",
	Cwl:                         "cwl",
	Cycript:                     "cycript",
	Cylc:                        "cylc",
	Cynpp:                       "cynpp",
	Cypher:                      "cypher",
	D:                           "d",
	D2lang:                      "d2lang",
	Dafny:                       "dafny",
	Dart:                        "dart",
	Daslang:                     "daslang",
	DataScript:                  "datascript",
	Dataweave:                   "dataweave",
	Dax:                         "dax",
	Dcd:                         "dcd",
	Dcl:                         "dcl",
	DebChangelog:                "debchangelog",
	DebControl:                  "debcontrol",
	DebCopyright:                "debcopyright",
	DebianPackageControlFile:    "debian-package-control-file",
	DebSources:                  "debsources",
	Def:                         "def",
	Denizenscript:               "denizenscript",
	DenyHosts:                   "denyhosts",
	Dep3Patch:                   "dep3patch",
	Desc:                        "desc",
	Desktop:                     "desktop",
	Dhall:                       "dhall",
	DictConf:                    "dictconf",
	DictdConf:                   "dictdconf",
	Diff:                        "gitdiff",
	DirColors:                   "dircolors",
	Disassembly:                 "disassembly",
	Diva:                        "diva",
	Djot:                        "djot",
	DnsMasq:                     "dnsmasq",
	DObjdump:                    "d-objdump",
	DocBookSgml4:                "docbk-sgml-4",
	DocBookXml4:                 "docbk-xml-4",
	Docbookxml4:                 "docbookxml4",
	DocBookXml5:                 "docbk-xml-5",
	Docbookxml5:                 "docbookxml5",
	Dockerfile:                  "dockerfile",
	Dogescript:                  "dogescript",
	DosBatch:                    "dosbatch",
	DosIni:                      "dosini",
	Dot:                         "dot",
	Dotenv:                      "dotenv",
	Doxygen:                     "doxygen",
	Dpatch:                      "dpatch",
	Dracula:                     "dracula",
	Dsl:                         "dsl",
	Dtd:                         "dtd",
	DTrace:                      "dtrace",
	Dts:                         "dts",
	Dune:                        "dune",
	Dylan:                       "dylan",
	DylanIntr:                   "dylanintr",
	DylanLid:                    "dylanlid",
	E:                           "e",
	Eagle:                       "eagle",
	Earthfile:                   "earthfile",
	Easybuild:                   "easybuild",
	Ebnf:                        "ebnf",
	Ecd:                         "ecd",
	EcereProjects:               "ecere-projects",
	Ecl:                         "ecl",
	Eclipse:                     "eclipse",
	Ecmarkdown:                  "ecmarkdown",
	Ecr:                         "ecr",
	Edge:                        "edge",
	Edif:                        "edif",
	EditorConfig:                "editorconfig",
	EdjeDataCollection:          "edje-data-collection",
	Edn:                         "edn",
	Eds:                         "eds",
	EElixir:                     "eelixir",
	EeschemaSchematic:           "eeschema-schematic",
	Eiffel:                      "eiffel",
	Eighth:                      "eighth",
	EJavaScript:                 "ejavascript",
	Elf:                         "elf",
	ELinks:                      "elinks",
	Elisp:                       "elisp",
	Elixir:                      "elixir",
	Elm:                         "elm",
	ElmFilt:                     "elmfilt",
	Elsa:                        "elsa",
	Elvish:                      "elvish",
	ElvishTranscript:            "elvish-transcript",
	Emberscript:                 "emberscript",
	Enforce:                     "enforce",
	EPuppet:                     "epuppet",
	Eq:                          "eq",
	Erlang:                      "erlang",
	ERuby:                       "eruby",
	Esdl:                        "esdl",
	Esmtprc:                     "esmtprc",
	Esqlc:                       "esqlc",
	Esterel:                     "esterel",
	Eterm:                       "eterm",
	Euphoria:                    "euphoria",
	Euphoria3:                   "euphoria3",
	Execline:                    "execline",
	Exim:                        "exim",
	Expect:                      "expect",
	Exports:                     "exports",
	Facility:                    "fsd",
	Factor:                      "factor",
	Falcon:                      "falcon",
	Fan:                         "fan",
	Fancy:                       "fancy",
	Faust:                       "faust",
	Fennel:                      "fennel",
	FetchMail:                   "fetchmail",
	Fga:                         "fga",
	Fgl:                         "fgl",
	Fidl:                        "fidl",
	Figfont:                     "figfont",
	Filterscript:                "filterscript",
	Firrtl:                      "firrtl",
	Fish:                        "fish",
	Flix:                        "flix",
	Fluent:                      "fluent",
	Foam:                        "foam",
	FocExec:                     "focexec",
	Form:                        "form",
	Forth:                       "forth",
	Fortran:                     "fortran",
	FourD:                       "4d",
	FpcMake:                     "fpcmake",
	FrameScript:                 "framescript",
	FreeBasic:                   "freebasic",
	Frege:                       "frege",
	Fsh:                         "fsh",
	FSharp:                      "fsharp",
	FsTab:                       "fstab",
	Fstar:                       "fstar",
	Func:                        "func",
	Fusion:                      "fusion",
	Futhark:                     "futhark",
	Fvwm:                        "fvwm",
	Fvwm1:                       "fvwm-1",
	Fvwm2:                       "fvwm2",
	Fvwm2M4:                     "fvwm2m4",
	GameMakerLanguage:           "game-maker-language",
	Gaml:                        "gaml",
	Gams:                        "gams",
	Gap:                         "gap",
	Gaptst:                      "gaptst",
	Gas:                         "gas",
	Gdb:                         "gdb",
	Gdmo:                        "gdmo",
	GdResource:                  "gdresource",
	GdScript:                    "gdscript",
	GdShader:                    "gdshader",
	Gdshader:                    "gdshaderinc",
	Gedcom:                      "gedcom",
	Gel:                         "gel",
	GemfileLock:                 "gemfile-lock",
	GemText:                     "gemtext",
	GeneroPer:                   "genero-per",
	GentooEbuild:                "gentoo-ebuild",
	GentooEclass:                "gentoo-eclass",
	Gf:                          "gf",
	Gift:                        "gift",
	Git:                         "git",
	GitAttributes:               "gitattributes",
	GitBlameIgnoreRevs:          "git-blame-ignore-revs",
	GitCommit:                   "gitcommit",
	GitConfig:                   "gitconfig",
	GitIgnore:                   "gitignore",
	GitOlite:                    "gitolite",
	GitRebase:                   "gitrebase",
	GitSendEmail:                "gitsendemail",
	Gkrellmrc:                   "gkrellmrc",
	Gleam:                       "gleam",
	Glsl:                        "glsl",
	Glyph:                       "glyph",
	Gn:                          "gn",
	Gnash:                       "gnash",
	GnuPlot:                     "gnuplot",
	Go:                          "go",
	Goaccess:                    "goaccess",
	Goctl:                       "goctl",
	Golo:                        "golo",
	GoMod:                       "gomod",
	GoSum:                       "gosum",
	Gotmpl:                      "gotmpl",
	GoWork:                      "gowork",
	Gpg:                         "gpg",
	Grace:                       "grace",
	GradleKotlinDsl:             "gradle-kotlin-dsl",
	Grads:                       "grads",
	GraphModelingLanguage:       "graph-modeling-language",
	GraphQl:                     "graphql",
	Gren:                        "gren",
	Gretl:                       "gretl",
	Groff:                       "groff",
	Groovy:                      "groovy",
	Groq:                        "groq",
	Group:                       "group",
	Grub:                        "grub",
	Gsp:                         "gsp",
	Gstlaunch:                   "gstlaunch",
	Gtkrc:                       "gtkrc",
	Gyp:                         "gyp",
	Hack:                        "hack",
	Haml:                        "haml",
	Hamster:                     "hamster",
	Handlebars:                  "handlebars",
	Haproxy:                     "haproxy",
	Hare:                        "hare",
	Haskell:                     "haskell",
	HaskellPersistent:           "haskellpersistent",
	Haste:                       "haste",
	HastePreProc:                "hastepreproc",
	Haxe:                        "haxe",
	Hb:                          "hb",
	Hcl:                         "hcl",
	Heex:                        "heex",
	Helm:                        "helm",
	Hercules:                    "hercules",
	Hex:                         "hex",
	HexDump:                     "hexdump",
	Hgcommit:                    "hgcommit",
	Hip:                         "hip",
	Hiveql:                      "hiveql",
	HJson:                       "hjson",
	Hlsl:                        "hlsl",
	HlsPlaylist:                 "hlsplaylist",
	Hocon:                       "hocon",
	Hog:                         "hog",
	Hollywood:                   "hollywood",
	Holyc:                       "holyc",
	Hoon:                        "hoon",
	HostConf:                    "hostconf",
	Hosts:                       "hosts",
	HostsAccess:                 "hostsaccess",
	Html:                        "html",
	HtmlDjango:                  "htmldjango",
	HtmlM4:                      "htmlm4",
	HtTest:                      "httest",
	Http:                        "http",
	Hurl:                        "hurl",
	Hxml:                        "hxml",
	Hy:                          "hy",
	Hylo:                        "hylo",
	Hyphy:                       "hyphy",
	Hyprlang:                    "hyprlang",
	I3Config:                    "i3config",
	I7:                          "i7",
	IBasic:                      "ibasic",
	Ical:                        "ical",
	IceMenu:                     "icemenu",
	Icon:                        "icon",
	Idl:                         "idl",
	Idlang:                      "idlang",
	Idris:                       "idris2",
	Igor:                        "igor",
	Ijm:                         "ijm",
	Imba:                        "imba",
	Indent:                      "indent",
	Inform:                      "inform",
	Initng:                      "initng",
	InitTab:                     "inittab",
	Ink:                         "ink",
	Inko:                        "inko",
	InstallShield:               "installshield",
	Io:                          "io",
	Ioke:                        "ioke",
	IpFilter:                    "ipfilter",
	Ipkg:                        "ipkg",
	Irc:                         "irc",
	Isabelle:                    "isabelle",
	IsabelleRoot:                "isabelle-root",
	Ispc:                        "ispc",
	Iss:                         "iss",
	Ist:                         "ist",
	J:                           "j",
	Jac:                         "jac",
	Jai:                         "jai",
	Jal:                         "jal",
	Jam:                         "jam",
	JanetSimple:                 "janet",
	JarManifest:                 "jar-manifest",
	Jasmin:                      "jasmin",
	Java:                        "java",
	JavaCc:                      "javacc",
	Javadoc:                     "javadoc",
	JavaScript:                  "javascript",
	JavascriptErb:               "javascript-erb",
	JavaScriptGlimmer:           "javascript.glimmer",
	Jcl:                         "jcl",
	Jess:                        "jess",
	JestSnapshot:                "jest-snapshot",
	Jflex:                       "jflex",
	JGraph:                      "jgraph",
	Jinja:                       "jinja",
	JinjaInline:                 "jinja_inline",
	Jison:                       "jison",
	JisonLex:                    "jison-lex",
	Jjdescription:               "jjdescription",
	Jolie:                       "jolie",
	Jovial:                      "jovial",
	JProperties:                 "jproperties",
	Jq:                          "jq",
	Jsdoc:                       "jsdoc",
	Json:                        "json",
	Json5:                       "json5",
	JsonC:                       "jsonc",
	JsonL:                       "jsonl",
	Jsonld:                      "jsonld",
	Jsonnet:                     "jsonnet",
	Jsp:                         "jsp",
	Jsx:                         "jsx",
	Jte:                         "jte",
	Julia:                       "julia",
	JuliaRepl:                   "julia-repl",
	Just:                        "just",
	Kak:                         "kak",
	Karel:                       "karel",
	Kcl:                         "kcl",
	KConfig:                     "kconfig",
	Kdl:                         "kdl",
	Kerml:                       "kerml",
	KicadLegacyLayout:           "kicad-legacy-layout",
	Kit:                         "kit",
	Kitty:                       "kitty",
	Kivy:                        "kivy",
	Kix:                         "kix",
	Koka:                        "koka",
	KolmafiaAsh:                 "kolmafia-ash",
	Kos:                         "kos",
	Kotlin:                      "kotlin",
	Koto:                        "koto",
	Krl:                         "krl",
	KScript:                     "kscript",
	Ksh:                         "ksh",
	Ksy:                         "ksy",
	Kusto:                       "kusto",
	Kwt:                         "kwt",
	Labview:                     "labview",
	Lace:                        "lace",
	Lalrpop:                     "lalrpop",
	Lambdapi:                    "lambdapi",
	LambdaProlog:                "lambdaprolog",
	Langium:                     "langium",
	Larch:                       "larch",
	Lark:                        "lark",
	Lassoscript:                 "lassoscript",
	Latte:                       "latte",
	Ld:                          "ld",
	Ldapconf:                    "ldapconf",
	Ldif:                        "ldif",
	Lean:                        "lean",
	Ledger:                      "ledger",
	Leex:                        "leex",
	Leo:                         "leo",
	Less:                        "less",
	Lex:                         "lex",
	Lf:                          "lf",
	Lfe:                         "lfe",
	Lftp:                        "lftp",
	LHaskell:                    "lhaskell",
	Libao:                       "libao",
	Lidris2:                     "lidris2",
	Ligolang:                    "ligolang",
	Lilo:                        "lilo",
	Lilypond:                    "lilypond",
	Limbo:                       "limbo",
	Limits:                      "limits",
	LinearProgramming:           "linear-programming",
	LinuxKernelModule:           "linux-kernel-module",
	Liquid:                      "liquid",
	Liquidsoap:                  "liquidsoap",
	Lisp:                        "lisp",
	Litcoffee:                   "litcoffee",
	Lite:                        "lite",
	LiterateAgda:                "literate-agda",
	LiteStep:                    "litestep",
	Livebook:                    "livebook",
	LivecodeScript:              "livecode-script",
	LiveScript:                  "live-script",
	Llvm:                        "llvm",
	LogCheck:                    "logcheck",
	LoginAccess:                 "loginaccess",
	LoginDefs:                   "logindefs",
	Logtalk:                     "logtalk",
	Lolcode:                     "lolcode",
	Lookml:                      "lookml",
	Loomscript:                  "loomscript",
	Lotos:                       "lotos",
	Lout:                        "lout",
	Lpc:                         "lpc",
	Lsl:                         "lsl",
	Lss:                         "lss",
	Lua:                         "lua",
	Luadoc:                      "luadoc",
	Luap:                        "luap",
	Luau:                        "luau",
	Lynx:                        "lynx",
	Lyrics:                      "lyrics",
	M17ndb:                      "m17ndb",
	M3Build:                     "m3build",
	M3Quake:                     "m3quake",
	M4:                          "m4",
	M68k:                        "m68k",
	Magik:                       "magik",
	Mail:                        "mail",
	MailAliases:                 "mailaliases",
	MailCap:                     "mailcap",
	Make:                        "make",
	Mako:                        "mako",
	Mallard:                     "mallard",
	ManConf:                     "manconf",
	Map:                         "map",
	Maple:                       "maple",
	Markdown:                    "markdown",
	MarkdownInline:              "markdown_inline",
	Markojs:                     "markojs",
	Mask:                        "mask",
	Masm:                        "masm",
	Mason:                       "mason",
	Master:                      "master",
	Matlab:                      "matlab",
	MavenPom:                    "maven-pom",
	Maxima:                      "maxima",
	MaxMsp:                      "max/msp",
	Maxscript:                   "maxscript",
	Mbsync:                      "mbsync",
	Mcfunction:                  "mcfunction",
	Mdsvex:                      "mdsvex",
	Mdx:                         "mdx",
	Mediawiki:                   "mediawiki",
	Mel:                         "mel",
	Menhir:                      "menhir",
	Mermaid:                     "mermaid",
	Meson:                       "meson",
	Messages:                    "messages",
	Metal:                       "metal",
	Mf:                          "mf",
	Mgl:                         "mgl",
	Mgp:                         "mgp",
	Mib:                         "mib",
	Minid:                       "minid",
	Minizinc:                    "minizinc",
	MinizincData:                "minizinc-data",
	Mint:                        "mint",
	Mirah:                       "mirah",
	MircScript:                  "mirc-script",
	Mix:                         "mix",
	Mlir:                        "mlir",
	Mma:                         "mma",
	Mmix:                        "mmix",
	Mmp:                         "mmp",
	ModConf:                     "modconf",
	Modsim3:                     "modsim3",
	Modula2:                     "modula2",
	Modula3:                     "modula3",
	ModuleManagementSystem:      "module-management-system",
	Mojo:                        "mojo",
	Monk:                        "monk",
	Monkey:                      "monkey",
	MonkeyC:                     "monkey-c",
	Moo:                         "moo",
	Moonbit:                     "moonbit",
	MoonScript:                  "moonscript",
	Move:                        "move",
	Mp:                          "mp",
	MPlayerConf:                 "mplayerconf",
	MpMetafun:                   "mp-metafun",
	Mql4:                        "mql4",
	Mql5:                        "mql5",
	Mrxvtrc:                     "mrxvtrc",
	Msidl:                       "msidl",
	MsMessages:                  "msmessages",
	Msmtp:                       "msmtp",
	Msql:                        "msql",
	Mss:                         "mss",
	Mtml:                        "mtml",
	Muf:                         "muf",
	Mumps:                       "mumps",
	Mupad:                       "mupad",
	Murphi:                      "murphi",
	Mush:                        "mush",
	Mustache:                    "mustache",
	Muttrc:                      "muttrc",
	Myghty:                      "myghty",
	MySql:                       "mysql",
	N1ql:                        "n1ql",
	Named:                       "named",
	Nanorc:                      "nanorc",
	Nasal:                       "nasal",
	Nasl:                        "nasl",
	Nasm:                        "nasm",
	Natural:                     "natural",
	Ncf:                         "ncf",
	Nearley:                     "nearley",
	Nemerle:                     "nemerle",
	Neomuttlog:                  "neomuttlog",
	Neomuttrc:                   "neomuttrc",
	Nesc:                        "nesc",
	Netlinx:                     "netlinx",
	NetlinxErb:                  "netlinx-erb",
	Netlogo:                     "netlogo",
	Netrc:                       "netrc",
	NetteObjectNotation:         "nette-object-notation",
	Nextflow:                    "nextflow",
	Nginx:                       "nginx",
	Nickel:                      "nickel",
	Nim:                         "nim",
	NimFormatString:             "nim_format_string",
	Ninja:                       "ninja",
	Nit:                         "nit",
	Nix:                         "nix",
	Njk:                         "njk",
	Nl:                          "nl",
	Nmodl:                       "nmodl",
	Norg:                        "norg",
	Nq:                          "nq",
	Nqc:                         "nqc",
	Nroff:                       "nroff",
	Nsis:                        "nsis",
	Ntriples:                    "ntriples",
	Nu:                          "nu",
	Numbat:                      "numbat",
	Numpy:                       "numpy",
	Nwscript:                    "nwscript",
	Oasv2:                       "oasv2",
	Oasv3:                       "oasv3",
	Oberon:                      "oberon",
	Obj:                         "obj",
	ObjC:                        "objc",
	ObjCpp:                      "objcpp",
	Objdump:                     "objdump",
	Objectscript:                "objectscript",
	ObjJ:                        "obj-j",
	Obse:                        "obse",
	OCaml:                       "ocaml",
	OCamlInterface:              "ocamlinterface",
	Ocamllex:                    "ocamllex",
	Occam:                       "occam",
	Octave:                      "octave",
	Odin:                        "odin",
	Omgrofl:                     "omgrofl",
	OmnetppMsg:                  "omnetpp-msg",
	OmnetppNed:                  "omnetpp-ned",
	OmniMark:                    "omnimark",
	Ondir:                       "ondir",
	OneCEnterprise:              "1c-enterprise",
	Ooc:                         "ooc",
	Opa:                         "opa",
	Opal:                        "opal",
	Opam:                        "opam",
	Openqasm:                    "openqasm",
	Openrc:                      "openrc",
	OpenRoad:                    "openroad",
	OpenScad:                    "openscad",
	OpenstepPropertyList:        "openstep-property-list",
	OpenVpn:                     "openvpn",
	Opl:                         "opl",
	Opts:                        "opts",
	Ora:                         "ora",
	Org:                         "org",
	Overpassql:                  "overpassql",
	Ox:                          "ox",
	Oxygene:                     "oxygene",
	Oz:                          "oz",
	P4:                          "p4",
	Pact:                        "pact",
	PamConf:                     "pamconf",
	PamEnv:                      "pamenv",
	Pan:                         "pan",
	Pandoc:                      "pandoc",
	Papp:                        "papp",
	Papyrus:                     "papyrus",
	Parrot:                      "parrot",
	Pascal:                      "pascal",
	Pasm:                        "pasm",
	Passwd:                      "passwd",
	Pawn:                        "pawn",
	Pbtxt:                       "pbtxt",
	Pcbnew:                      "pcbnew",
	Pccts:                       "pccts",
	Pcmk:                        "pcmk",
	Pddl:                        "pddl",
	Pdf:                         "pdf",
	PegJs:                       "peg-js",
	Pem:                         "pem",
	Pep8:                        "pep8",
	Perl:                        "perl",
	Pf:                          "pf",
	PfMain:                      "pfmain",
	Pgn:                         "pgn",
	Php:                         "php",
	Phpdoc:                      "phpdoc",
	PhpOnly:                     "php_only",
	Piglatin:                    "piglatin",
	Pikchr:                      "pikchr",
	Pike:                        "pike",
	Pilrc:                       "pilrc",
	Pine:                        "pine",
	PInfo:                       "pinfo",
	Pioasm:                      "pioasm",
	Pir:                         "pir",
	Pkl:                         "pkl",
	PlainTex:                    "plaintex",
	Plantuml:                    "plantuml",
	Pli:                         "pli",
	Plm:                         "plm",
	Plp:                         "plp",
	Plpgsql:                     "plpgsql",
	Plsql:                       "plsql",
	Po:                          "po",
	Pod:                         "pod",
	PoeFilter:                   "poefilter",
	Pogoscript:                  "pogoscript",
	Poke:                        "poke",
	Polar:                       "polar",
	Pony:                        "pony",
	Portugol:                    "portugol",
	Postcss:                     "postcss",
	Postscr:                     "postscr",
	Pov:                         "pov",
	PovIni:                      "povini",
	Powerbuilder:                "powerbuilder",
	Ppd:                         "ppd",
	Ppwiz:                       "ppwiz",
	Pq:                          "pq",
	Praat:                       "praat",
	Printf:                      "printf",
	Prisma:                      "prisma",
	Privoxy:                     "privoxy",
	Problog:                     "problog",
	Proc:                        "proc",
	Procfile:                    "procfile",
	ProcMail:                    "procmail",
	Progress:                    "progress",
	Proguard:                    "proguard",
	Prolog:                      "prolog",
	Promela:                     "promela",
	Promql:                      "promql",
	PropellerSpin:               "propeller-spin",
	Proto:                       "proto",
	Protocols:                   "protocols",
	Prql:                        "prql",
	Ps1:                         "ps1",
	Ps1Xml:                      "ps1xml",
	Psf:                         "psf",
	Psl:                         "psl",
	Psv:                         "psv",
	PtcapPrint:                  "ptcap-print",
	PtcapTerm:                   "ptcap-term",
	Ptx:                         "ptx",
	PublicKey:                   "public-key",
	Pug:                         "pug",
	Puppet:                      "puppet",
	Purebasic:                   "purebasic",
	Purescript:                  "purescript",
	Pycon:                       "pycon",
	Pymanifest:                  "pymanifest",
	Pyret:                       "pyret",
	Pyrex:                       "pyrex",
	Python:                      "python",
	PythonTraceback:             "python-traceback",
	Q:                           "q",
	Qb64:                        "qb64",
	Ql:                          "ql",
	Qmake:                       "qmake",
	QmlDir:                      "qmldir",
	Qmljs:                       "qml",
	Qsharp:                      "qsharp",
	QtScript:                    "qt-script",
	Quake:                       "quake",
	Quarto:                      "quarto",
	Quickbms:                    "quickbms",
	R:                           "r",
	Racc:                        "racc",
	Racket:                      "racket",
	Radiance:                    "radiance",
	RagelRb:                     "ragel-rb",
	Raku:                        "raku",
	Ralph:                       "ralph",
	Raml:                        "raml",
	Rapid:                       "rapid",
	Rascript:                    "rascript",
	Rasi:                        "rasi",
	RatPoison:                   "ratpoison",
	Raw:                         "raw",
	Razor:                       "razor",
	Rbs:                         "rbs",
	Rc:                          "rc",
	Rcs:                         "rcs",
	Rdoc:                        "rdoc",
	Re2c:                        "re2c",
	Readline:                    "readline",
	Realbasic:                   "realbasic",
	Reason:                      "reason",
	Reasonligo:                  "reasonligo",
	Rebol:                       "rebol",
	RecordJar:                   "record-jar",
	Redcode:                     "redcode",
	Redif:                       "redif",
	Redirects:                   "redirects",
	RedSystem:                   "red/system",
	Regex:                       "regex",
	Registry:                    "registry",
	Rego:                        "rego",
	Remind:                      "remind",
	Renpy:                       "renpy",
	Requirements:                "requirements",
	ReScript:                    "rescript",
	Resolv:                      "resolv",
	Reva:                        "reva",
	Rexx:                        "rexx",
	Rez:                         "rez",
	RHelp:                       "rhelp",
	Rib:                         "rib",
	Rifleconf:                   "rifleconf",
	Ring:                        "ring",
	Riot:                        "riot",
	Rmd:                         "rmd",
	Rnc:                         "rnc",
	Rng:                         "rng",
	Rnoweb:                      "rnoweb",
	Robot:                       "robot",
	Robots:                      "robots",
	Roc:                         "roc",
	Ron:                         "ron",
	Rouge:                       "rouge",
	RouterOs:                    "routeros",
	Rpcgen:                      "rpcgen",
	Rpgle:                       "rpgle",
	Rpl:                         "rpl",
	Rrst:                        "rrst",
	Rst:                         "rst",
	Rtf:                         "rtf",
	Ruby:                        "ruby",
	Runescript:                  "runescript",
	Runoff:                      "runoff",
	Rush:                        "rush",
	Rust:                        "rust",
	Sage:                        "sage",
	Sail:                        "sail",
	Salt:                        "salt",
	Samba:                       "samba",
	Sas:                         "sas",
	Sass:                        "sass",
	Sather:                      "sather",
	Sbt:                         "sbt",
	Scala:                       "scala",
	Scaml:                       "scaml",
	Scdoc:                       "scdoc",
	Scenic:                      "scenic",
	Scfg:                        "scfg",
	Scheme:                      "scheme",
	Scilab:                      "scilab",
	Screen:                      "screen",
	Scss:                        "scss",
	Sd:                          "sd",
	Sdc:                         "sdc",
	Sdl:                         "sdl",
	Sed:                         "sed",
	SelfLang:                    "self",
	SelinuxKernelPolicyLanguage: "selinux-kernel-policy-language",
	Sensors:                     "sensors",
	Services:                    "services",
	SetSerial:                   "setserial",
	Sexplib:                     "sexplib",
	Sflog:                       "sflog",
	Sfv:                         "sfv",
	Sgml:                        "sgml",
	SgmlDecl:                    "sgmldecl",
	Sh:                          "sh",
	Shellcheckrc:                "shellcheckrc",
	Shen:                        "shen",
	Sieve:                       "sieve",
	Sil:                         "sil",
	Sile:                        "sile",
	Simula:                      "simula",
	Sinda:                       "sinda",
	Singularity:                 "singularity",
	Sisu:                        "sisu",
	Skhd:                        "skhd",
	Skill:                       "skill",
	Slang:                       "shaderslang",
	Slice:                       "slice",
	Slim:                        "slim",
	Slint:                       "slint",
	SlpConf:                     "slpconf",
	SlpReg:                      "slpreg",
	SlpSpi:                      "slpspi",
	Slrnrc:                      "slrnrc",
	Slrnsc:                      "slrnsc",
	Sm:                          "sm",
	Smali:                       "smali",
	Smarty:                      "smarty",
	Smcl:                        "smcl",
	Smgllnx:                     "smgllnx",
	Smil:                        "smil",
	Smith:                       "smith",
	Smithy:                      "smithy",
	Sml:                         "sml",
	Snakemake:                   "snakemake",
	Snipmate:                    "snipmate",
	Snippet:                     "snippet",
	Snobol4:                     "snobol4",
	Solidity:                    "solidity",
	Solution:                    "solution",
	Soong:                       "soong",
	Soql:                        "soql",
	Sosl:                        "sosl",
	Sourcepawn:                  "sourcepawn",
	Soy:                         "soy",
	Spajson:                     "spajson",
	Sparql:                      "sparql",
	Spec:                        "spec",
	SpecMan:                     "specman",
	Spice:                       "spice",
	SplineFontDatabase:          "spline-font-database",
	Sproto:                      "sproto",
	Spup:                        "spup",
	Spyce:                       "spyce",
	Sqf:                         "sqf",
	Sql:                         "sql",
	Sqlj:                        "sqlj",
	Sqlpl:                       "sqlpl",
	Sqr:                         "sqr",
	Squid:                       "squid",
	Squirrel:                    "squirrel",
	Srec:                        "srec",
	Srt:                         "srt",
	Ssa:                         "ssa",
	SshConfig:                   "sshconfig",
	SshdConfig:                  "sshdconfig",
	St:                          "st",
	Stan:                        "stan",
	Starlark:                    "starlark",
	Stata:                       "stata",
	Ston:                        "ston",
	Stp:                         "stp",
	Strace:                      "strace",
	Structurizr:                 "structurizr",
	Styled:                      "styled",
	Stylus:                      "stylus",
	Sudoers:                     "sudoers",
	Sugarss:                     "sugarss",
	Supercollider:               "supercollider",
	Superhtml:                   "superhtml",
	Surface:                     "surface",
	Surql:                       "surql",
	SurvexData:                  "survex-data",
	Svelte:                      "svelte",
	Svg:                         "svg",
	Svn:                         "svn",
	Sway:                        "sway",
	SwayConfig:                  "swayconfig",
	Swift:                       "swift",
	SwiftGyb:                    "swiftgyb",
	Swig:                        "swig",
	Sxhkdrc:                     "sxhkdrc",
	Sysctl:                      "sysctl",
	Sysml:                       "sysml",
	Systemd:                     "systemd",
	Systemtap:                   "systemtap",
	SystemVerilog:               "systemverilog",
	Tablegen:                    "tablegen",
	Tact:                        "tact",
	Tads:                        "tads",
	Tags:                        "tags",
	Tak:                         "tak",
	Tal:                         "tal",
	Talon:                       "talon",
	TaskData:                    "taskdata",
	TaskEdit:                    "taskedit",
	Tcl:                         "tcl",
	Tcsh:                        "tcsh",
	Tea:                         "tea",
	Teal:                        "teal",
	Templ:                       "templ",
	Template:                    "template",
	Tera:                        "tera",
	Teraterm:                    "teraterm",
	Terminfo:                    "terminfo",
	Terra:                       "terra",
	Terraform:                   "terraform",
	TerraformTemplate:           "terraform-template",
	TerraformVars:               "terraform-vars",
	Tex:                         "tex",
	TexInfo:                     "texinfo",
	TexMF:                       "texmf",
	Textgrid:                    "textgrid",
	Textile:                     "textile",
	Tf:                          "tf",
	Thrift:                      "thrift",
	Tiasm:                       "tiasm",
	Tidy:                        "tidy",
	Tiger:                       "tiger",
	Tilde:                       "tilde",
	Tiltfile:                    "tiltfile",
	TiProgram:                   "ti-program",
	Tla:                         "tla",
	Tli:                         "tli",
	TlVerilog:                   "tl-verilog",
	TmProperties:                "tm-properties",
	Tmux:                        "tmux",
	Todotxt:                     "todotxt",
	Toit:                        "toit",
	Toml:                        "toml",
	Torrc:                       "torrc",
	Tpp:                         "tpp",
	Trace32:                     "trace32",
	Trasys:                      "trasys",
	TreeSitterQuery:             "query",
	Treetop:                     "treetop",
	Trig:                        "trig",
	Trustees:                    "trustees",
	Tsalt:                       "tsalt",
	Tsql:                        "tsql",
	Tsscl:                       "tsscl",
	Tssgm:                       "tssgm",
	Tssop:                       "tssop",
	Tsv:                         "tsv",
	Tsx:                         "tsx",
	Turing:                      "turing",
	Turtle:                      "turtle",
	Tutor:                       "tutor",
	Twig:                        "twig",
	TwoDimensionalArray:         "2-dimensional-array",
	Txl:                         "txl",
	TypeScript:                  "typescript",
	TypeScriptGlimmer:           "typescript.glimmer",
	Typespec:                    "typespec",
	Typoscript:                  "typoscript",
	Typst:                       "typst",
	Uc:                          "uc",
	UdevConf:                    "udevconf",
	UdevPerm:                    "udevperm",
	UdevRules:                   "udevrules",
	Uil:                         "uil",
	Ungrammar:                   "ungrammar",
	UnifiedParallelC:            "unified-parallel-c",
	Unison:                      "unison",
	Uno:                         "uno",
	UntypedPlutusCore:           "untyped-plutus-core",
	UpdateDb:                    "updatedb",
	Upstart:                     "upstart",
	UpstreamDat:                 "upstreamdat",
	UpstreamInstallLog:          "upstreaminstalllog",
	UpstreamLog:                 "upstreamlog",
	UrlShortcut:                 "urlshortcut",
	Ursa:                        "ursa",
	UrWeb:                       "ur/web",
	Usd:                         "usd",
	UsServerLog:                 "usserverlog",
	Usw2KagtLog:                 "usw2kagtlog",
	V:                           "v",
	Vala:                        "vala",
	Vb:                          "vb",
	Vcl:                         "vcl",
	Vdf:                         "vdf",
	Vdmpp:                       "vdmpp",
	Vdmrt:                       "vdmrt",
	Vdmsl:                       "vdmsl",
	Vento:                       "vto",
	Vera:                        "vera",
	Verilogams:                  "verilogams",
	Vgrindefs:                   "vgrindefs",
	Vhdl:                        "vhdl",
	Vhs:                         "vhs",
	Vim:                         "vim",
	VimHelp:                     "help",
	Vimhelp:                     "vimhelp",
	VimInfo:                     "viminfo",
	Virata:                      "virata",
	VirtualContactFile:          "virtual-contact-file",
	Vmasm:                       "vmasm",
	Volt:                        "volt",
	Voscm:                       "voscm",
	Vrl:                         "vrl",
	Vrml:                        "vrml",
	Vroom:                       "vroom",
	Vtl:                         "vtl",
	Vtt:                         "vtt",
	Vue:                         "vue",
	Vyper:                       "vyper",
	Wast:                        "wast",
	Wat:                         "wat",
	WavefrontMaterial:           "wavefront-material",
	Wdl:                         "wdl",
	Web:                         "web",
	Webidl:                      "webidl",
	WebMacro:                    "webmacro",
	WebOntologyLanguage:         "web-ontology-language",
	Wget:                        "wget",
	Wget2:                       "wget2",
	Wgsl:                        "wgsl",
	WgslBevy:                    "wgsl_bevy",
	Whiley:                      "whiley",
	Win32MessageFile:            "win32-message-file",
	WinBatch:                    "winbatch",
	WindowsRegistryEntries:      "windows-registry-entries",
	Wing:                        "wing",
	Wisp:                        "wisp",
	Wit:                         "wit",
	WitcherScript:               "witcher-script",
	Wml:                         "wml",
	Wollok:                      "wollok",
	Wrenlang:                    "wrenlang",
	Wsh:                         "wsh",
	Wsml:                        "wsml",
	WvDial:                      "wvdial",
	Wxml:                        "wxml",
	Xbl:                         "xbl",
	Xbm:                         "xbm",
	Xc:                          "xc",
	Xcompose:                    "xcompose",
	XDefaults:                   "xdefaults",
	XF86Conf:                    "xf86conf",
	XF86Conf3:                   "xf86conf-3",
	Xf86conf3:                   "xf86conf3",
	XF86Conf4:                   "xf86conf-4",
	XFontDirectoryIndex:         "x-font-directory-index",
	Xhtml:                       "xhtml",
	Xinetd:                      "xinetd",
	Xmake:                       "xmake",
	XMath:                       "xmath",
	Xml:                         "xml",
	XmlGenshi:                   "xml+genshi",
	XmlPropertyList:             "xml-property-list",
	XModMap:                     "xmodmap",
	Xojo:                        "xojo",
	Xonsh:                       "xonsh",
	Xpages:                      "xpages",
	Xpm:                         "xpm",
	Xpm2:                        "xpm2",
	Xproc:                       "xproc",
	XQuery:                      "xquery",
	Xs:                          "xs",
	Xsd:                         "xsd",
	Xslt:                        "xslt",
	Xten:                        "xten",
	Xtend:                       "xtend",
	Yacc:                        "yacc",
	Yaml:                        "yaml",
	Yang:                        "yang",
	Yara:                        "yara",
	Yasm:                        "yasm",
	Yuck:                        "yuck",
	Yul:                         "yul",
	Z8a:                         "z8a",
	Zap:                         "zap",
	Zathurarc:                   "zathurarc",
	Zephir:                      "zephir",
	Zig:                         "zig",
	Ziggy:                       "ziggy",
	ZiggySchema:                 "ziggy_schema",
	Zil:                         "zil",
	Zimbu:                       "zimbu",
	ZimbuTempl:                  "zimbutempl",
	Zimpl:                       "zimpl",
	Zir:                         "zir",
	Zmodel:                      "zmodel",
	Zserio:                      "zserio",
	Zsh:                         "zsh",
}

var aliases = map[FileType][]string{
	Text:                        {"fundamental", "plain-text", "plaintext"},
	Ada:                         {"ada2005", "ada95"},
	AdBlockFilters:              {"ad-block", "adb", "adblock", "adblock-filter-list"},
	Afdko:                       {"opentype-feature-file"},
	Ags:                         {"ags-script"},
	Altium:                      {"altium-designer"},
	Amusewiki:                   {"emacs-muse", "muse"},
	Angular:                     {"angular"},
	Ant:                         {"ant-build-system"},
	Antlr4:                      {"antlr"},
	Apache:                      {"aconf", "apacheconf"},
	Apkbuild:                    {"abuild", "alpine-abuild"},
	AppleScript:                 {"osascript"},
	Arduino:                     {"processing"},
	AsciiStl:                    {"stl", "stla"},
	Asn:                         {"asn-1"},
	Asp:                         {"classic-asp"},
	Aspx:                        {"asp-net", "aspx-vb"},
	Asy:                         {"asymptote", "ltspice-symbol"},
	Atlas:                       {"actionscript-3", "actionscript3", "angelscript", "as3"},
	Ats2:                        {"ats"},
	AutoHotKey:                  {"ahk"},
	AutoIt:                      {"au3", "autoit3", "autoitscript"},
	B:                           {"b-formal-method"},
	BashSession:                 {"console", "shellsession"},
	BasicForAndroid:             {"b4x"},
	Bdf:                         {"glyph-bitmap-distribution-format"},
	Be:                          {"berry"},
	Bib:                         {"bibtex"},
	Bindzone:                    {"dns-zone"},
	Bitbake:                     {"b3d", "blitz3d", "blitzbasic", "blitzplus", "bplus"},
	Blueprint:                   {"blp"},
	BluespecBsv:                 {"bluespec", "bsv"},
	Bmax:                        {"blitzmax"},
	Brighterscript:              {"bh", "bikeshed", "bluespec-bh", "bluespec-classic"},
	Bro:                         {"zeek"},
	Bst:                         {"bibtex-style", "buildstream"},
	Byond:                       {"dm"},
	Bzl:                         {"bazel"},
	C:                           {"quakec"},
	Cabal:                       {"cabal-config"},
	Caddy:                       {"caddyfile"},
	Cairo:                       {"cairo-zero"},
	Capnp:                       {"cap-n-proto"},
	Cdc:                         {"cadence"},
	Cdrtoc:                      {"world-of-warcraft-addon-data"},
	Cds:                         {"cap-cds"},
	Cf:                          {"cfc", "cfm", "cfml", "coldfusion", "coldfusion-cfc", "coldfusion-html"},
	Chaskell:                    {"c2hs", "c2hs-haskell"},
	Checksum:                    {"checksums", "hash", "hashes", "sum", "sums"},
	Chpl:                        {"chapel"},
	Clarity:                     {"clar"},
	Clipper:                     {"advpl", "foxpro", "xbase"},
	Coccinelle:                  {"smpl"},
	Config:                      {"autoconf", "m4sugar"},
	ConfIni:                     {"confini"},
	Conll:                       {"conll-u", "conll-x"},
	Cook:                        {"cooklang"},
	Coq:                         {"rocq", "rocq-prover"},
	Crontab:                     {"cron", "cron-table"},
	Csc:                         {"gsc"},
	CSharp:                      {"c_sharp", "c-sharp", "cake", "cakescript", "cs"},
	CsoundCsd:                   {"csound-document"},
	CsoundOrc:                   {"csound"},
	CsoundSco:                   {"csound-score"},
	Cucumber:                    {"gherkin"},
	Cue:                         {"cue-sheet"},
	Curlrc:                      {"curl-config"},
	Cwl:                         {"common-workflow-language"},
	D:                           {"dlang"},
	D2lang:                      {"d2"},
	Dcl:                         {"digital-command-language"},
	DebSources:                  {"deb822sources"},
	Diff:                        {"diff", "udiff"},
	Dockerfile:                  {"containerfile"},
	DosBatch:                    {"batch", "batchfile"},
	DosIni:                      {"npm-config", "npmrc"},
	Dot:                         {"graphviz-dot"},
	Dpatch:                      {"darcs-patch"},
	DTrace:                      {"dtrace-script"},
	Dts:                         {"devicetree"},
	Earthfile:                   {"earthly"},
	Ecmarkdown:                  {"ecmarkup"},
	Ecr:                         {"html-ecr"},
	EditorConfig:                {"editor-config"},
	EElixir:                     {"eex"},
	EeschemaSchematic:           {"kicad-schematic"},
	Eighth:                      {"8th"},
	EJavaScript:                 {"ejs"},
	Elisp:                       {"el"},
	ERuby:                       {"embedded_template", "erb", "html-erb", "html+ruby", "rhtml"},
	Esdl:                        {"edgeql"},
	Esqlc:                       {"ec"},
	Facility:                    {"facility"},
	Fan:                         {"fantom"},
	Faust:                       {"dsp"},
	Fgl:                         {"genero-4gl"},
	Figfont:                     {"figlet-font"},
	Fluent:                      {"freemarker", "ftl"},
	Fortran:                     {"filebench-wml", "formatted", "fortran-free-form"},
	FreeBasic:                   {"fb"},
	FSharp:                      {"f", "fsharp_signature"},
	Fvwm2:                       {"fvwm-2"},
	Gas:                         {"gnu-asm", "unix-asm", "unix-assembly"},
	Gdmo:                        {"modelica", "motoko"},
	GdResource:                  {"godot_resource", "godot-resource"},
	GdShader:                    {"shaderlab"},
	GemText:                     {"gemini"},
	Gf:                          {"grammatical-framework"},
	GitAttributes:               {"git-attributes"},
	GitBlameIgnoreRevs:          {"git-revision-list"},
	GitCommit:                   {"commit", "git-commit"},
	GitConfig:                   {"git_config", "git-config", "gitmodules"},
	GitIgnore:                   {"git-ignore", "ignore", "ignore-list"},
	GitRebase:                   {"git_rebase", "git-rebase"},
	GnuPlot:                     {"gp"},
	Go:                          {"golang"},
	GoMod:                       {"go-mod", "go-module", "go.mod"},
	GoSum:                       {"go-checksums", "go-sum", "go-work-sum", "go.sum", "go.work.sum"},
	GoWork:                      {"go-work", "go-workspace", "go.work"},
	Grads:                       {"genie", "gosu"},
	Groovy:                      {"gradle"},
	Gsp:                         {"groovy-server-pages", "java-server-page"},
	Handlebars:                  {"glimmer", "hbs", "htmlbars"},
	HaskellPersistent:           {"haskell_persistent", "haskell-persistent"},
	Haxe:                        {"hx"},
	Hb:                          {"harbour"},
	Hcl:                         {"hashicorp-configuration-language", "opentofu"},
	Heex:                        {"html-eex"},
	Hlsl:                        {"flux"},
	HlsPlaylist:                 {"hls-playlist", "m3u", "m3u-playlist"},
	Hosts:                       {"hosts-file"},
	Html:                        {"html-razor"},
	Hy:                          {"hylang"},
	I7:                          {"inform-7", "inform7"},
	Ical:                        {"icalendar"},
	Idris:                       {"idris"},
	Igor:                        {"igor-pro", "igorpro"},
	Ijm:                         {"imagej-macro"},
	Irc:                         {"irc-log", "irc-logs"},
	Iss:                         {"inno-setup"},
	JanetSimple:                 {"janet_simple"},
	JavaScript:                  {"js", "node"},
	JavaScriptGlimmer:           {"gjs", "glimmer_javascript", "glimmer-js"},
	Jess:                        {"clips"},
	Jinja:                       {"django", "html+django", "html+jinja"},
	JProperties:                 {"java-properties", "properties"},
	Jq:                          {"jsoniq"},
	Json:                        {"geojson", "ipython-notebook", "jupyter-notebook", "oasv2-json", "oasv3-json", "sarif", "topojson"},
	JsonC:                       {"json-with-comments"},
	Jsp:                         {"java-server-pages"},
	Jsx:                         {"javascriptreact"},
	Jte:                         {"java-template-engine"},
	Just:                        {"justfile"},
	Kak:                         {"kakounescript", "kakscript"},
	Kivy:                        {"kvlang"},
	KScript:                     {"kerboscript", "kickstart"},
	Ksy:                         {"kaitai-struct"},
	Kwt:                         {"kframework"},
	Lassoscript:                 {"lasso"},
	Ld:                          {"linker-script", "linkerscript"},
	Lean:                        {"lean-4", "lean4"},
	Less:                        {"less-css"},
	Lex:                         {"flex", "picolisp"},
	LHaskell:                    {"lhs", "literate-haskell"},
	Lisp:                        {"common-lisp", "commonlisp", "cool", "emacs", "emacs-lisp", "newlisp", "opencl"},
	Litcoffee:                   {"literate-coffeescript"},
	LiveScript:                  {"livescript", "ls"},
	M68k:                        {"asm68k", "motorola-68k-assembly"},
	Mail:                        {"e-mail", "email", "eml", "mbox"},
	Make:                        {"bsdmake", "makefile", "microsoft-developer-studio-project"},
	Maple:                       {"jetbrains-mps", "mps"},
	Markdown:                    {"md"},
	Markojs:                     {"marko"},
	MaxMsp:                      {"max", "maxmsp"},
	Mediawiki:                   {"wiki", "wikitext"},
	Mermaid:                     {"mermaid-example"},
	Mma:                         {"mathematica", "wl", "wolfram", "wolfram-lang", "wolfram-language"},
	Modula2:                     {"m2", "macaulay2", "modula-2"},
	Modula3:                     {"modula-3"},
	Moo:                         {"mercury", "moocode"},
	Mss:                         {"carto", "cartocss"},
	Mumps:                       {"m"},
	Nasm:                        {"assembly"},
	NetteObjectNotation:         {"ne-on", "neon"},
	Nginx:                       {"nginx-configuration-file"},
	Nickel:                      {"ncl"},
	Nix:                         {"nixos"},
	Njk:                         {"nunjucks"},
	Nroff:                       {"man", "man-page", "manpage", "mdoc", "roff", "roff-manpage", "troff"},
	Nu:                          {"nu-script", "nush", "nushell", "nushell-script"},
	Oasv2:                       {"openapi-specification-v2"},
	Oasv3:                       {"openapi-specification-v3"},
	Obj:                         {"wavefront-object"},
	ObjC:                        {"obj-c", "obj-c++", "objc++", "objective-c", "objectivec", "objectivec++"},
	Objdump:                     {"c++-objdump", "cpp-objdump"},
	ObjJ:                        {"objective-j", "objectivej", "objj"},
	OCamlInterface:              {"ocaml_interface", "ocaml-interface"},
	Odin:                        {"object-data-instance-notation", "odin-lang", "odinlang"},
	OmnetppMsg:                  {"omnet-msg"},
	OmnetppNed:                  {"omnet-ned"},
	Openrc:                      {"openrc-runscript"},
	Opts:                        {"ackrc", "option-list"},
	Pandoc:                      {"pure-data"},
	Pascal:                      {"delphi", "objectpascal"},
	Pasm:                        {"parrot-assembly"},
	Pbtxt:                       {"protobuf-text-format", "protocol-buffer-text-format", "text-proto", "textproto"},
	Pcbnew:                      {"kicad-layout"},
	Pccts:                       {"g-code"},
	Perl:                        {"al", "cperl"},
	Php:                         {"html-php", "inc"},
	PhpOnly:                     {"php-only"},
	Pikchr:                      {"pic"},
	Pir:                         {"parrot-internal-representation"},
	Pkl:                         {"pickle"},
	Po:                          {"gettext-catalog", "pot"},
	Pod:                         {"pod-6"},
	PoeFilter:                   {"poe_filter"},
	Postscr:                     {"acfm", "adobe-composite-font-metrics", "adobe-font-metrics", "adobe-multiple-font-metrics", "amfm", "postscript"},
	Pov:                         {"pov-ray", "pov-ray-sdl", "povray"},
	Privoxy:                     {"ros-interface", "rosmsg"},
	Progress:                    {"abl", "openedge", "openedge-abl"},
	Proto:                       {"protobuf", "protocol-buffer", "protocol-buffers"},
	Ps1:                         {"posh", "powershell", "pwsh"},
	Pycon:                       {"python-console"},
	Pyrex:                       {"cython"},
	Python:                      {"python3"},
	Qb64:                        {"classic-qbasic", "classic-quickbasic", "qb", "qbasic", "quickbasic"},
	Ql:                          {"codeql"},
	Qmljs:                       {"qmljs"},
	Quarto:                      {"rmarkdown"},
	Radiance:                    {"unity3d-asset"},
	RagelRb:                     {"ragel", "ragel-ruby"},
	Raku:                        {"perl-6", "perl6"},
	Raw:                         {"raw-token-data"},
	Readline:                    {"inputrc", "readline-config"},
	Redirects:                   {"redirect-rules"},
	RedSystem:                   {"red"},
	Regex:                       {"regexp", "regular-expression"},
	Rego:                        {"open-policy-agent"},
	Renpy:                       {"ren-py"},
	Requirements:                {"pip-requirements"},
	Rexx:                        {"arexx"},
	RHelp:                       {"rscript", "splus"},
	Rnoweb:                      {"sweave"},
	Robot:                       {"robotframework"},
	Robots:                      {"robots_txt", "robots-txt"},
	RouterOs:                    {"rascal", "routeros-script"},
	Rpcgen:                      {"directx-3d-file", "logos", "oncrpc", "rpc", "xdr"},
	Rpgle:                       {"ile-rpg", "sqlrpgle"},
	Rst:                         {"restructuredtext"},
	Rtf:                         {"rich-text-format"},
	Ruby:                        {"jruby", "macruby", "rake", "rb", "rbx"},
	Rust:                        {"renderscript", "rs"},
	Salt:                        {"saltstack", "saltstate"},
	SelinuxKernelPolicyLanguage: {"selinux-policy", "sepolicy"},
	Sfv:                         {"simple-file-verification"},
	Sh:                          {"envrc", "shell", "shell-script"},
	Shellcheckrc:                {"shellcheck-config"},
	Slang:                       {"slang", "slash"},
	Smith:                       {"smt"},
	Sml:                         {"standard-ml"},
	Snakemake:                   {"snakefile"},
	Snipmate:                    {"neosnippet", "ultisnip", "ultisnips", "vim-snippet"},
	Snippet:                     {"yas", "yasnippet"},
	Solution:                    {"microsoft-visual-studio-solution"},
	Soy:                         {"closure-templates"},
	Spec:                        {"rpm-spec", "specfile"},
	Spice:                       {"sourcemod"},
	Srt:                         {"srecode-template", "subrip-text"},
	SshConfig:                   {"ssh_config", "ssh-config", "sshd_config"},
	St:                          {"smalltalk", "squeak", "stringtemplate"},
	Starlark:                    {"star"},
	Surface:                     {"sface"},
	Surql:                       {"surrealql"},
	SystemVerilog:               {"sv", "svh", "verilog"},
	Tal:                         {"uxntal"},
	Tcl:                         {"xdc"},
	Teal:                        {"tl", "type-language"},
	Template:                    {"go-template"},
	Tex:                         {"latex"},
	Tla:                         {"tlaplus"},
	TmProperties:                {"textmate-properties"},
	Torrc:                       {"tor-config"},
	Trace32:                     {"t32"},
	TreeSitterQuery:             {"tree-sitter-query", "tsq"},
	Tsv:                         {"tab-seperated-values"},
	Tsx:                         {"typescriptreact"},
	TypeScript:                  {"ts"},
	TypeScriptGlimmer:           {"gerber-image", "glimmer_typescript", "glimmer-ts", "gts", "rs-274x"},
	Typespec:                    {"traveling-salesman-problem", "travelling-salesman-problem", "tsp", "tsplib-data"},
	Typst:                       {"typ"},
	Uc:                          {"unrealscript"},
	UdevRules:                   {"udev"},
	UrWeb:                       {"ur", "urweb"},
	V:                           {"vlang"},
	Vb:                          {"classic-visual-basic", "vb-6", "vb-net", "vb.net", "vb6", "vbnet", "vbscript", "visual-basic", "visual-basic-6", "visual-basic-6-0", "visual-basic-classic", "visual-basic-net"},
	Vdf:                         {"keyvalues", "valve-data-format"},
	Vento:                       {"vento"},
	Vhs:                         {"tape"},
	Vim:                         {"nvim", "vba", "vim-script", "viml", "vimscript", "visual-basic-for-applications"},
	VimHelp:                     {"vim-help-file", "vimdoc"},
	VirtualContactFile:          {"electronic-business-card", "vcard"},
	Vtl:                         {"velocity", "velocity-template-language"},
	Vtt:                         {"webvtt"},
	Wast:                        {"wasm", "webassembly"},
	Wdl:                         {"workflow-description-language"},
	Wget:                        {"wget-config", "wgetrc"},
	Wit:                         {"webassembly-interface-type"},
	Wrenlang:                    {"wren"},
	Xbm:                         {"x-bitmap"},
	XDefaults:                   {"xresources"},
	Xml:                         {"rss", "wsdl"},
	XmlGenshi:                   {"genshi", "xml+kid"},
	Xpm:                         {"x-pixmap"},
	Xslt:                        {"xsl"},
	Xten:                        {"x10"},
	Yaml:                        {"miniyaml", "oasv2-yaml", "oasv3-yaml", "yml"},
	Zserio:                      {"zenscript"},
}
