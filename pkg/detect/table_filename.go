package detect

import (
	"sync"

	"github.com/stackvity/ftdetect/pkg/filetype"
)

// filenameTable maps exact file names to resolvers.
var filenameTable = sync.OnceValue(func() map[string]Resolver {
	return map[string]Resolver{
		".ackrc":            Static(filetype.Conf),
		".babelrc":          Static(filetype.Json),
		".bash_aliases":     shellDialect(filetype.Bash),
		".bash_logout":      shellDialect(filetype.Bash),
		".bash_profile":     shellDialect(filetype.Bash),
		".bashrc":           shellDialect(filetype.Bash),
		".busted":           Static(filetype.Lua),
		".clang-format":     Static(filetype.Yaml),
		".clang-tidy":       Static(filetype.Yaml),
		".clangd":           Static(filetype.Yaml),
		".clisprc":          Static(filetype.Lisp),
		".condarc":          Static(filetype.Yaml),
		".cshrc":            Dynamic(csh),
		".dockerignore":     Static(filetype.GitIgnore),
		".editorconfig":     Static(filetype.EditorConfig),
		".emacs":            Static(filetype.Lisp),
		".env":              Static(filetype.Sh),
		".envrc":            Static(filetype.Sh),
		".erlang":           Static(filetype.Erlang),
		".eslintrc":         Static(filetype.Json),
		".exrc":             Static(filetype.Vim),
		".firebaserc":       Static(filetype.Json),
		".gitattributes":    Static(filetype.GitAttributes),
		".gitconfig":        Static(filetype.GitConfig),
		".gitignore":        Static(filetype.GitIgnore),
		".gitignore_global": Static(filetype.GitIgnore),
		".gitlab-ci.yml":    Static(filetype.Yaml),
		".gitmodules":       Static(filetype.GitConfig),
		".gnus":             Static(filetype.Lisp),
		".gvimrc":           Static(filetype.Vim),
		".helmignore":       Static(filetype.GitIgnore),
		".htaccess":         Static(filetype.Apache),
		".inputrc":          Static(filetype.Readline),
		".irbrc":            Static(filetype.Ruby),
		".jshintrc":         Static(filetype.Json),
		".jsonc":            Static(filetype.JsonC),
		".justfile":         Static(filetype.Just),
		".kshrc":            Static(filetype.Ksh),
		".latexmkrc":        Static(filetype.Perl),
		".lintstagedrc":     Static(filetype.Json),
		".login":            Dynamic(csh),
		".logout":           Dynamic(csh),
		".luacheckrc":       Static(filetype.Lua),
		".luaurc":           Static(filetype.JsonC),
		".node-version":     Static(filetype.Text),
		".npmignore":        Static(filetype.GitIgnore),
		".npmrc":            Static(filetype.DosIni),
		".nvmrc":            Static(filetype.Text),
		".ocamlinit":        Static(filetype.OCaml),
		".perltidyrc":       Static(filetype.Perl),
		".prettierignore":   Static(filetype.GitIgnore),
		".prettierrc":       Static(filetype.Json),
		".profile":          shellDialect(filetype.Text),
		".pryrc":            Static(filetype.Ruby),
		".pypirc":           Static(filetype.DosIni),
		".pythonrc":         Static(filetype.Python),
		".pythonstartup":    Static(filetype.Python),
		".sbclrc":           Static(filetype.Lisp),
		".spacemacs":        Static(filetype.Lisp),
		".ssh/config":       Static(filetype.SshConfig),
		".stylelintrc":      Static(filetype.Json),
		".swcrc":            Static(filetype.Json),
		".tcshrc":           Static(filetype.Tcsh),
		".tmux.conf":        Static(filetype.Tmux),
		".vimrc":            Static(filetype.Vim),
		".viper":            Static(filetype.Lisp),
		".wakatime.cfg":     Static(filetype.DosIni),
		".watchmanconfig":   Static(filetype.Json),
		".Xauthority":       Static(filetype.Text),
		".Xdefaults":        Static(filetype.XDefaults),
		".xinitrc":          Static(filetype.Sh),
		".xprofile":         Static(filetype.Sh),
		".Xresources":       Static(filetype.XDefaults),
		".xsession":         Static(filetype.Sh),
		".yamllint":         Static(filetype.Yaml),
		".zcompdump":        Static(filetype.Zsh),
		".zlogin":           Static(filetype.Zsh),
		".zlogout":          Static(filetype.Zsh),
		".zprofile":         Static(filetype.Zsh),
		".zshenv":           Static(filetype.Zsh),
		".zshrc":            Static(filetype.Zsh),
		"_exrc":             Static(filetype.Vim),
		"_vimrc":            Static(filetype.Vim),
		"APKBUILD":          shellDialect(filetype.Bash),
		"AUTHORS":           Static(filetype.Text),
		"bash.bashrc":       shellDialect(filetype.Bash),
		"bashrc":            shellDialect(filetype.Bash),
		"Brewfile":          Static(filetype.Ruby),
		"BSDmakefile":       Static(filetype.Make),
		"BUILD":             Static(filetype.Bzl),
		"BUILD.bazel":       Static(filetype.Bzl),
		"build.gradle":      Static(filetype.Groovy),
		"Caddyfile":         Static(filetype.Caddy),
		"Capfile":           Static(filetype.Ruby),
		"Cargo.lock":        Static(filetype.Toml),
		"ChangeLog":         Dynamic(changelog),
		"changelog":         Dynamic(changelog),
		"CMakeCache.txt":    Static(filetype.CMakeCache),
		"CMakeLists.txt":    Static(filetype.CMake),
		"COMMIT_EDITMSG":    Static(filetype.GitCommit),
		"composer.lock":     Static(filetype.Json),
		"config.ru":         Static(filetype.Ruby),
		"config.status":     Static(filetype.Sh),
		"configure":         Static(filetype.Sh),
		"configure.ac":      Static(filetype.Config),
		"configure.in":      Static(filetype.Config),
		"constraints.txt":   Static(filetype.Requirements),
		"Containerfile":     Static(filetype.Dockerfile),
		"control":           Dynamic(control),
		"COPYING":           Static(filetype.Text),
		"copyright":         Dynamic(copyright),
		"cpanfile":          Static(filetype.Perl),
		"crontab":           Static(filetype.Crontab),
		"devcontainer.json": Static(filetype.JsonC),
		"Dockerfile":        Static(filetype.Dockerfile),
		"dockerfile":        Static(filetype.Dockerfile),
		"dune":              Static(filetype.OCaml),
		"dune-project":      Static(filetype.OCaml),
		"dune-workspace":    Static(filetype.OCaml),
		"EDIT_DESCRIPTION":  Static(filetype.GitCommit),
		"Fastfile":          Static(filetype.Ruby),
		"flake.lock":        Static(filetype.Json),
		"fstab":             Static(filetype.FsTab),
		"Gemfile":           Static(filetype.Ruby),
		"Gemfile.lock":      Static(filetype.GemfileLock),
		"git-rebase-todo":   Static(filetype.GitRebase),
		"GNUmakefile":       Static(filetype.Make),
		"go.mod":            Static(filetype.GoMod),
		"go.sum":            Static(filetype.GoSum),
		"go.work":           Static(filetype.GoWork),
		"go.work.sum":       Static(filetype.GoSum),
		"group":             Static(filetype.Group),
		"Guardfile":         Static(filetype.Ruby),
		"gvimrc":            Static(filetype.Vim),
		"HEAD":              Dynamic(git),
		"hosts":             Static(filetype.Hosts),
		"httpd.conf":        Static(filetype.Apache),
		"init.vim":          Static(filetype.Vim),
		"inputrc":           Static(filetype.Readline),
		"Jenkinsfile":       Static(filetype.Groovy),
		"jsconfig.json":     Static(filetype.JsonC),
		"Justfile":          Static(filetype.Just),
		"justfile":          Static(filetype.Just),
		"Kbuild":            Static(filetype.Make),
		"latexmkrc":         Static(filetype.Perl),
		"LICENSE":           Static(filetype.Text),
		"Makefile":          Static(filetype.Make),
		"makefile":          Static(filetype.Make),
		"MERGE_MSG":         Static(filetype.GitCommit),
		"meson.build":       Static(filetype.Meson),
		"meson.options":     Static(filetype.Meson),
		"meson_options.txt": Static(filetype.Meson),
		"mix.lock":          Static(filetype.Elixir),
		"mkinitcpio.conf":   Static(filetype.Sh),
		"MODULE.bazel":      Static(filetype.Bzl),
		"mtab":              Static(filetype.FsTab),
		"NEWS":              Dynamic(news),
		"nginx.conf":        Static(filetype.Nginx),
		"NOTES_EDITMSG":     Static(filetype.GitCommit),
		"opam":              Static(filetype.Opam),
		"package.json":      Static(filetype.Json),
		"passwd":            Static(filetype.Passwd),
		"Pipfile":           Static(filetype.Toml),
		"Pipfile.lock":      Static(filetype.Json),
		"pixi.lock":         Static(filetype.Yaml),
		"PKGBUILD":          shellDialect(filetype.Bash),
		"pnpm-lock.yaml":    Static(filetype.Yaml),
		"Podfile":           Static(filetype.Ruby),
		"poetry.lock":       Static(filetype.Toml),
		"pyproject.toml":    Static(filetype.Toml),
		"Rakefile":          Static(filetype.Ruby),
		"rakefile":          Static(filetype.Ruby),
		"README":            Static(filetype.Text),
		"rebar.config":      Static(filetype.Erlang),
		"requirements.txt":  Static(filetype.Requirements),
		"robots.txt":        Static(filetype.Robots),
		"SConscript":        Static(filetype.Python),
		"SConstruct":        Static(filetype.Python),
		"settings.gradle":   Static(filetype.Groovy),
		"Snakefile":         Static(filetype.Snakemake),
		"ssh_config":        Static(filetype.SshConfig),
		"sshd_config":       Static(filetype.SshdConfig),
		"sudoers":           Static(filetype.Sudoers),
		"TAG_EDITMSG":       Static(filetype.GitCommit),
		"Tiltfile":          Static(filetype.Starlark),
		"tmux.conf":         Static(filetype.Tmux),
		"tsconfig.json":     Static(filetype.JsonC),
		"uv.lock":           Static(filetype.Toml),
		"Vagrantfile":       Static(filetype.Ruby),
		"vimrc":             Static(filetype.Vim),
		"WORKSPACE":         Static(filetype.Bzl),
		"WORKSPACE.bzlmod":  Static(filetype.Bzl),
		"XF86Config":        Dynamic(xfree86),
		"xorg.conf":         Dynamic(xfree86),
		"yarn.lock":         Static(filetype.Yaml),
	}
})
