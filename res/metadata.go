package res

const (
	AppName       = "lapwatch"
	DisplayName   = "Lapwatch"
	AppVersion    = "0.3.0"
	AppVersionTag = "v" + AppVersion
	ConfigFile    = "config.toml"
	GithubURL     = "https://github.com/lapwatch-app/lapwatch"
	IssuesURL     = GithubURL + "/issues"
	Copyright     = "Copyright © 2025–2026 the Lapwatch contributors"
)

var (
	WhatsAdded = `
## Added
* Copy lap times to the clipboard
* Control a running instance from the command line (-start, -lap, -status, ...)
* Custom color themes loaded from the themes folder`

	WhatsFixed = `
## Fixed
* Lap button could be pressed while paused from the system tray menu
* Theme not re-applied after editing the active theme file`
)
