//go:build darwin

package shortcuts

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

var (
	QuitShortcut     *desktop.CustomShortcut = nil // Fyne already adds Cmd+Q
	SettingsShortcut                         = &desktop.CustomShortcut{Modifier: fyne.KeyModifierSuper, KeyName: fyne.KeyComma}
)
