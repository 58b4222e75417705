//go:build !darwin

package shortcuts

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

var (
	QuitShortcut     = &desktop.CustomShortcut{Modifier: fyne.KeyModifierControl, KeyName: fyne.KeyQ}
	SettingsShortcut *desktop.CustomShortcut
)
