package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// colorAliasTheme draws some color names with the colors of others,
// and defers everything else to the current app theme.
type colorAliasTheme struct {
	aliases map[fyne.ThemeColorName]fyne.ThemeColorName
	fixed   map[fyne.ThemeColorName]color.Color
}

// WithColorAliases returns a theme for container.NewThemeOverride in which
// each key color name is drawn with the color of its value.
func WithColorAliases(aliases map[fyne.ThemeColorName]fyne.ThemeColorName) fyne.Theme {
	return &colorAliasTheme{aliases: aliases}
}

// ButtonColorTheme colors a button's background with the named color
// and draws its icon and label in white.
func ButtonColorTheme(buttonColor fyne.ThemeColorName) fyne.Theme {
	return &colorAliasTheme{
		aliases: map[fyne.ThemeColorName]fyne.ThemeColorName{theme.ColorNameButton: buttonColor},
		fixed:   map[fyne.ThemeColorName]color.Color{theme.ColorNameForeground: color.White},
	}
}

var _ fyne.Theme = (*colorAliasTheme)(nil)

func (c *colorAliasTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	if col, ok := c.fixed[n]; ok {
		return col
	}
	if target, ok := c.aliases[n]; ok {
		n = target
	}
	return fyne.CurrentApp().Settings().Theme().Color(n, v)
}

func (*colorAliasTheme) Font(s fyne.TextStyle) fyne.Resource {
	return fyne.CurrentApp().Settings().Theme().Font(s)
}

func (*colorAliasTheme) Icon(s fyne.ThemeIconName) fyne.Resource {
	return fyne.CurrentApp().Settings().Theme().Icon(s)
}

func (*colorAliasTheme) Size(s fyne.ThemeSizeName) float32 {
	return fyne.CurrentApp().Settings().Theme().Size(s)
}
