package detect

import (
	"sync"

	"github.com/stackvity/ftdetect/pkg/filetype"
)

// suffixTable maps trailing path components to resolvers. Keys are matched
// component-wise against the slash-separated path.
var suffixTable = sync.OnceValue(func() map[string]Resolver {
	return map[string]Resolver{
		".cargo/config":            Static(filetype.Toml),
		".cargo/credentials":       Static(filetype.Toml),
		".config/git/config":       Static(filetype.GitConfig),
		".git/config":              Static(filetype.GitConfig),
		".git/HEAD":                Dynamic(git),
		".git/info/exclude":        Static(filetype.GitIgnore),
		".ssh/config":              Static(filetype.SshConfig),
		".vscode/extensions.json":  Static(filetype.JsonC),
		".vscode/launch.json":      Static(filetype.JsonC),
		".vscode/settings.json":    Static(filetype.JsonC),
		".vscode/tasks.json":       Static(filetype.JsonC),
		"alacritty/alacritty.toml": Static(filetype.Toml),
		"cargo/config":             Static(filetype.Toml),
		"debian/changelog":         Static(filetype.DebChangelog),
		"debian/control":           Static(filetype.DebControl),
		"debian/copyright":         Static(filetype.DebCopyright),
		"debian/rules":             Static(filetype.Make),
		"etc/apt/sources.list":     Static(filetype.DebSources),
		"etc/bash.bashrc":          shellDialect(filetype.Bash),
		"etc/crontab":              Static(filetype.Crontab),
		"etc/environment":          Static(filetype.Sh),
		"etc/fstab":                Static(filetype.FsTab),
		"etc/group":                Static(filetype.Group),
		"etc/hostname":             Static(filetype.Text),
		"etc/hosts":                Static(filetype.Hosts),
		"etc/locale.conf":          Static(filetype.Sh),
		"etc/nginx/nginx.conf":     Static(filetype.Nginx),
		"etc/os-release":           Static(filetype.Sh),
		"etc/pacman.conf":          Static(filetype.Conf),
		"etc/passwd":               Static(filetype.Passwd),
		"etc/profile":              shellDialect(filetype.Text),
		"etc/resolv.conf":          Static(filetype.Resolv),
		"etc/shadow":               Static(filetype.Passwd),
		"etc/ssh/ssh_config":       Static(filetype.SshConfig),
		"etc/ssh/sshd_config":      Static(filetype.SshdConfig),
		"etc/sudoers":              Static(filetype.Sudoers),
		"etc/ufw/ufw.conf":         Static(filetype.Conf),
		"etc/zlogin":               Static(filetype.Zsh),
		"etc/zlogout":              Static(filetype.Zsh),
		"etc/zprofile":             Static(filetype.Zsh),
		"etc/zshenv":               Static(filetype.Zsh),
		"etc/zshrc":                Static(filetype.Zsh),
		"fish/config.fish":         Static(filetype.Fish),
		"git/attributes":           Static(filetype.GitAttributes),
		"git/config":               Static(filetype.GitConfig),
		"git/ignore":               Static(filetype.GitIgnore),
		"hypr/hyprland.conf":       Static(filetype.Hyprlang),
		"i3/config":                Static(filetype.Sh),
		"kitty/kitty.conf":         Static(filetype.Kitty),
		"mutt/muttrc":              Static(filetype.Muttrc),
		"nvim/init.lua":            Static(filetype.Lua),
		"polybar/config":           Static(filetype.DosIni),
		"rofi/config.rasi":         Static(filetype.Rasi),
		"ssh/ssh_config":           Static(filetype.SshConfig),
		"ssh/sshd_config":          Static(filetype.SshdConfig),
		"sway/config":              Static(filetype.SwayConfig),
		"systemd/user.conf":        Static(filetype.Systemd),
		"waybar/config":            Static(filetype.JsonC),
	}
})
