package detect

import "github.com/stackvity/ftdetect/pkg/filetype"

// patternEntries is the declared pattern table. Entries with a negative
// priority run after the extension table.
var patternEntries = []patternEntry{
	{fullPath: true, expr: `.*/queries/.*\.scm$`, resolver: Static(filetype.TreeSitterQuery)},
	{fullPath: true, expr: `.*/etc/Muttrc\.d/.*`, resolver: Static(filetype.Muttrc)},
	{fullPath: true, expr: `.*/\.?mutt/.*muttrc.*`, resolver: Static(filetype.Muttrc)},
	{fullPath: true, expr: `.*/etc/systemd/.*\.conf\.d/.*\.conf$`, resolver: Static(filetype.Systemd)},
	{fullPath: true, expr: `.*/systemd/.*\.(automount|mount|path|service|socket|swap|target|timer)$`, resolver: Static(filetype.Systemd)},
	{fullPath: true, expr: `.*/etc/udev/rules\.d/.*\.rules$`, resolver: Static(filetype.UdevRules)},
	{fullPath: true, expr: `.*/etc/apt/sources\.list\.d/.*\.list$`, resolver: Static(filetype.DebSources)},
	{fullPath: true, expr: `.*/etc/sudoers\.d/.*`, resolver: Static(filetype.Sudoers)},
	{fullPath: true, expr: `.*/etc/modprobe\.d/.*`, resolver: Static(filetype.ModConf)},
	{fullPath: true, expr: `.*/etc/nginx/.*\.conf$`, resolver: Static(filetype.Nginx)},
	{fullPath: true, expr: `.*/nginx/.*\.conf$`, resolver: Static(filetype.Nginx)},
	{fullPath: true, expr: `.*/etc/ssh/ssh_config\.d/.*\.conf$`, resolver: Static(filetype.SshConfig)},
	{fullPath: true, expr: `.*/etc/ssh/sshd_config\.d/.*\.conf$`, resolver: Static(filetype.SshdConfig)},
	{fullPath: true, expr: `.*/\.config/git/.*\.conf$`, resolver: Static(filetype.GitConfig)},
	{fullPath: true, expr: `.*/\.github/workflows/.*\.ya?ml$`, resolver: Static(filetype.Yaml)},
	{fullPath: true, expr: `.*/templates/.*\.tpl$`, resolver: Static(filetype.Helm)},
	{fullPath: true, expr: `.*/debian/patches/.*`, resolver: Dynamic(dep3patch)},
	{fullPath: true, expr: `.*/etc/xinetd\.d/.*`, resolver: Static(filetype.Xinetd)},
	{fullPath: true, expr: `.*/etc/profile\.d/.*\.sh$`, resolver: shellDialect(filetype.Text)},
	{fullPath: true, expr: `.*/etc/cron\.d/.*`, resolver: Static(filetype.Crontab)},
	{fullPath: true, expr: `.*/\.kube/config$`, resolver: Static(filetype.Yaml)},
	{fullPath: true, expr: `.*/\.aws/config$`, resolver: Static(filetype.ConfIni)},
	{fullPath: true, expr: `.*/\.aws/credentials$`, resolver: Static(filetype.ConfIni)},
	{fullPath: true, expr: `.*/containers/.*\.conf$`, resolver: Static(filetype.Toml)},
	{fullPath: true, expr: `.*\.git/modules/.*/config$`, resolver: Static(filetype.GitConfig)},
	{fullPath: true, expr: `.*/i3/config\.d/.*`, resolver: Static(filetype.I3Config)},
	{fullPath: true, expr: `.*/sway/config\.d/.*`, resolver: Static(filetype.SwayConfig)},
	{fullPath: false, expr: `^Dockerfile\..*`, resolver: Static(filetype.Dockerfile)},
	{fullPath: false, expr: `^Containerfile\..*`, resolver: Static(filetype.Dockerfile)},
	{fullPath: false, expr: `.*\.dockerfile$`, resolver: Static(filetype.Dockerfile)},
	{fullPath: false, expr: `^[Mm]akefile.*\.am$`, resolver: Static(filetype.Automake)},
	{fullPath: false, expr: `^\.?[Mm]akefile\..*`, resolver: Static(filetype.Make)},
	{fullPath: false, expr: `^\.env\..*`, resolver: Static(filetype.Sh)},
	{fullPath: false, expr: `^requirements[-_].*\.txt$`, resolver: Static(filetype.Requirements)},
	{fullPath: false, expr: `^requirements\.in$`, resolver: Static(filetype.Requirements)},
	{fullPath: false, expr: `^\.gitlab-ci\..*\.ya?ml$`, resolver: Static(filetype.Yaml)},
	{fullPath: false, expr: `^[Jj]enkinsfile.*`, resolver: Static(filetype.Groovy)},
	{fullPath: false, expr: `^tsconfig\..*\.json$`, resolver: Static(filetype.JsonC)},
	{fullPath: false, expr: `^\.eslintrc\..*\.json$`, resolver: Static(filetype.JsonC)},
	{fullPath: false, expr: `^\.?[Bb]ash[_-]?rc.*`, resolver: shellDialect(filetype.Bash)},
	{fullPath: false, expr: `^\.?zsh(rc|env)\..*`, resolver: Static(filetype.Zsh)},
	{fullPath: false, expr: `^PKGBUILD\..*`, resolver: shellDialect(filetype.Bash)},
	{fullPath: false, expr: `^[Cc]hange[Ll]og.*`, resolver: Dynamic(changelog)},
	{fullPath: false, expr: `^crontab\..*`, resolver: Static(filetype.Crontab)},
	{fullPath: false, expr: `^\.?tmux.*\.conf$`, resolver: Static(filetype.Tmux)},
	{fullPath: false, expr: `.*\.blade\.php$`, resolver: Static(filetype.Blade)},
	{fullPath: false, expr: `.*~$`, resolver: tmp},
	{fullPath: false, expr: `^[Rr][Ee][Aa][Dd][Mm][Ee].*`, priority: -1, resolver: Static(filetype.Text)},
	{fullPath: false, expr: `^[Ll][Ii][Cc][Ee][Nn][Ss][Ee].*`, priority: -1, resolver: Static(filetype.Text)},
	{fullPath: false, expr: `^.*\.[Cc][Ff][Gg]$`, priority: -1, resolver: Dynamic(cfg)},
	{fullPath: false, expr: `.*\.conf$`, priority: -1, resolver: Static(filetype.Conf)},
	{fullPath: false, expr: `^\..*rc$`, priority: -1, resolver: Static(filetype.Conf)},
	{fullPath: true, expr: `.*/etc/.*`, priority: -1, resolver: Static(filetype.Conf)},
	{fullPath: false, expr: `.*\.ya?ml\..*`, priority: -1, resolver: Static(filetype.Yaml)},
	{fullPath: false, expr: `.*\.json\..*`, priority: -1, resolver: Static(filetype.Json)},
	{fullPath: false, expr: `.*\.toml\..*`, priority: -1, resolver: Static(filetype.Toml)},
	{fullPath: false, expr: `.*\.sh\..*`, priority: -1, resolver: shellDialect(filetype.Text)},
	{fullPath: true, expr: `.*/etc/.*\.conf\.d/.*`, priority: -1, resolver: Static(filetype.Conf)},
	{fullPath: true, expr: `.*/\.config/.*`, priority: -1, resolver: Static(filetype.Conf)},
}
