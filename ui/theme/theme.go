package theme

import (
	"bytes"
	"image/color"
	"log"
	"path/filepath"
	"slices"
	"sync"

	"github.com/lapwatch-app/lapwatch/backend"
	"github.com/lapwatch-app/lapwatch/res"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	ColorNameTimeDisplay       fyne.ThemeColorName = "TimeDisplay"
	ColorNameLapContainer      fyne.ThemeColorName = "LapContainer"
	ColorNameLapItem           fyne.ThemeColorName = "LapItem"
	ColorNameStartButton       fyne.ThemeColorName = "StartButton"
	ColorNamePauseButton       fyne.ThemeColorName = "PauseButton"
	ColorNameLapButton         fyne.ThemeColorName = "LapButton"
	ColorNameResetButton       fyne.ThemeColorName = "ResetButton"
	ColorNameIconButton        fyne.ThemeColorName = "IconButton"
	ColorNameHoveredIconButton fyne.ThemeColorName = "HoveredIconButton"

	SizeNameTimeDisplayText fyne.ThemeSizeName = "timeDisplayText"
	SizeNameSubText         fyne.ThemeSizeName = "subText" // in between Text and Caption
)

var (
	SunIcon  fyne.Resource = theme.NewThemedResource(res.ResSunSvg)
	MoonIcon fyne.Resource = theme.NewThemedResource(res.ResMoonSvg)
	LapIcon  fyne.Resource = theme.NewThemedResource(res.ResFlagSvg)
)

const DefaultAppearance = backend.AppearanceLight

type MyTheme struct {
	config       *backend.ThemeConfig
	themeFileDir string

	mu                  sync.Mutex
	loadedThemeFilename string
	loadedThemeFile     *ThemeFile
	defaultThemeFile    *ThemeFile
}

var _ fyne.Theme = (*MyTheme)(nil)

func NewMyTheme(config *backend.ThemeConfig, themeFileDir string) *MyTheme {
	m := &MyTheme{config: config, themeFileDir: themeFileDir}
	var err error
	if m.defaultThemeFile, err = DecodeThemeFile(bytes.NewReader(res.ResDefaultToml.StaticContent)); err != nil {
		log.Fatalf("Failed to load builtin theme: %v", err.Error())
	}
	return m
}

// ReloadThemeFile drops the cached theme file so it is read again on next use.
func (m *MyTheme) ReloadThemeFile() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadedThemeFile = nil
}

func (m *MyTheme) Color(name fyne.ThemeColorName, systemVariant fyne.ThemeVariant) color.Color {
	variant := m.Variant(systemVariant)
	thFile := m.themeFile()
	if !thFile.SupportsVariant(variant) {
		thFile = m.defaultThemeFile
	}
	colors := thFile.Colors(variant)
	defColors := m.defaultThemeFile.Colors(variant)

	switch name {
	case ColorNameHoveredIconButton:
		if variant == theme.VariantDark {
			return color.White
		}
		return color.Black
	case ColorNameIconButton:
		foreground := colorOrDefault(colors.Foreground, defColors.Foreground, theme.ColorNameForeground, variant)
		if variant == theme.VariantDark {
			return darkenColor(foreground, 0.15)
		}
		return brightenColor(foreground, 0.6)
	}
	return colorOrDefault(colors.lookup(name), defColors.lookup(name), name, variant)
}

func (c *ThemeColors) lookup(name fyne.ThemeColorName) string {
	switch name {
	case ColorNameTimeDisplay:
		return c.TimeDisplay
	case ColorNameLapContainer:
		return c.LapContainer
	case ColorNameLapItem:
		return c.LapItem
	case ColorNameStartButton:
		return c.StartButton
	case ColorNamePauseButton:
		return c.PauseButton
	case ColorNameLapButton:
		return c.LapButton
	case ColorNameResetButton:
		return c.ResetButton
	case theme.ColorNameBackground:
		return c.Background
	case theme.ColorNameButton:
		return c.Button
	case theme.ColorNameDisabled:
		return c.Disabled
	case theme.ColorNameDisabledButton:
		return c.DisabledButton
	case theme.ColorNameError:
		return c.Error
	case theme.ColorNameFocus:
		return c.Focus
	case theme.ColorNameForeground:
		return c.Foreground
	case theme.ColorNameHover:
		return c.Hover
	case theme.ColorNameHyperlink:
		return c.Hyperlink
	case theme.ColorNameInputBackground:
		return c.InputBackground
	case theme.ColorNameInputBorder:
		return c.InputBorder
	case theme.ColorNameMenuBackground:
		return c.MenuBackground
	case theme.ColorNameOverlayBackground:
		return c.OverlayBackground
	case theme.ColorNamePlaceHolder:
		return c.Placeholder
	case theme.ColorNamePressed:
		return c.Pressed
	case theme.ColorNamePrimary:
		return c.Primary
	case theme.ColorNameScrollBar:
		return c.ScrollBar
	case theme.ColorNameSelection:
		return c.Selection
	case theme.ColorNameSeparator:
		return c.Separator
	case theme.ColorNameShadow:
		return c.Shadow
	case theme.ColorNameSuccess:
		return c.Success
	case theme.ColorNameWarning:
		return c.Warning
	}
	return ""
}

func colorOrDefault(colorStr, defColorStr string, name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if c, err := ColorStringToColor(colorStr); err == nil {
		return c
	}
	if c, err := ColorStringToColor(defColorStr); err == nil {
		return c
	}
	return theme.DefaultTheme().Color(name, variant)
}

// load theme file if necessary
func (m *MyTheme) themeFile() *ThemeFile {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadedThemeFile != nil && m.config.ThemeFile == m.loadedThemeFilename {
		return m.loadedThemeFile
	}
	m.loadedThemeFile = m.defaultThemeFile
	if m.config.ThemeFile != "" {
		t, err := ReadThemeFile(filepath.Join(m.themeFileDir, m.config.ThemeFile))
		if err == nil {
			m.loadedThemeFile = t
		} else {
			log.Printf("failed to load theme file %q: %s", m.config.ThemeFile, err.Error())
		}
	}
	m.loadedThemeFilename = m.config.ThemeFile
	return m.loadedThemeFile
}

func (m *MyTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

type ThemeFileInfo struct {
	FileName    string
	DisplayName string
}

// ListThemeFiles returns the valid theme files in the themes dir, sorted by display name
// using the collation rules of the given language.
func (m *MyTheme) ListThemeFiles(lang language.Tag) []ThemeFileInfo {
	files, err := filepath.Glob(filepath.Join(m.themeFileDir, "*.toml"))
	if err != nil {
		log.Printf("Failed to glob theme files: %v", err)
		return nil
	}

	var result []ThemeFileInfo
	for _, filePath := range files {
		cleanPath := filepath.Clean(filePath)
		if themeFile, err := ReadThemeFile(cleanPath); err == nil {
			result = append(result, ThemeFileInfo{
				FileName:    filepath.Base(cleanPath),
				DisplayName: themeFile.LapwatchTheme.Name,
			})
		} else {
			log.Printf("Failed to load theme file: %s, error: %v", cleanPath, err)
		}
	}

	c := collate.New(lang, collate.IgnoreCase)
	slices.SortFunc(result, func(a, b ThemeFileInfo) int {
		return c.CompareString(a.DisplayName, b.DisplayName)
	})
	return result
}

func (m *MyTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m *MyTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case SizeNameTimeDisplayText:
		return 52
	case SizeNameSubText:
		return 13
	}
	return theme.DefaultTheme().Size(name)
}

// Variant resolves the configured appearance to a theme variant.
// Auto follows the given system variant.
func (m *MyTheme) Variant(systemVariant fyne.ThemeVariant) fyne.ThemeVariant {
	switch m.config.Appearance {
	case backend.AppearanceDark:
		return theme.VariantDark
	case backend.AppearanceLight:
		return theme.VariantLight
	case backend.AppearanceAuto:
		return systemVariant
	}
	if DefaultAppearance == backend.AppearanceDark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// ToggleAppearance flips the appearance between Light and Dark.
// From Auto it switches to the opposite of the currently effective variant.
// It returns the new appearance.
func (m *MyTheme) ToggleAppearance(systemVariant fyne.ThemeVariant) string {
	m.config.Appearance = ToggledAppearance(m.config.Appearance, m.Variant(systemVariant))
	return m.config.Appearance
}

func ToggledAppearance(appearance string, effective fyne.ThemeVariant) string {
	switch appearance {
	case backend.AppearanceDark:
		return backend.AppearanceLight
	case backend.AppearanceLight:
		return backend.AppearanceDark
	}
	if effective == theme.VariantDark {
		return backend.AppearanceLight
	}
	return backend.AppearanceDark
}

// ToggleIcon is the icon for the theme toggle button: a sun while dark, a moon while light.
func ToggleIcon(variant fyne.ThemeVariant) fyne.Resource {
	if variant == theme.VariantDark {
		return SunIcon
	}
	return MoonIcon
}

func BlendColors(a, b color.Color, fractionA float64) color.Color {
	ra, ga, ba, aa := a.RGBA()
	rb, gb, bb, ab := b.RGBA()

	fractionB := 1 - fractionA
	rAvg := uint8(float64(ra/257)*fractionA + float64(rb/257)*fractionB)
	gAvg := uint8(float64(ga/257)*fractionA + float64(gb/257)*fractionB)
	bAvg := uint8(float64(ba/257)*fractionA + float64(bb/257)*fractionB)
	aAvg := uint8(float64(aa/257)*fractionA + float64(ab/257)*fractionB)
	return color.RGBA{R: rAvg, G: gAvg, B: bAvg, A: aAvg}
}

func brightenColor(c color.Color, fraction float64) color.Color {
	r, g, b, a := c.RGBA()
	r, g, b = brightenComponent(r, fraction), brightenComponent(g, fraction), brightenComponent(b, fraction)
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

func darkenColor(c color.Color, fraction float64) color.Color {
	r, g, b, a := c.RGBA()
	r, g, b = darkenComponent(r, fraction), darkenComponent(g, fraction), darkenComponent(b, fraction)
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

func brightenComponent(component uint32, fraction float64) uint32 {
	brightened := component + uint32(float64(component)*fraction)
	if brightened > 0xffff {
		brightened = 0xffff
	}
	return brightened
}

func darkenComponent(component uint32, fraction float64) uint32 {
	i := uint32(float64(component) * fraction)
	if i > component {
		return 0
	}
	return component - i
}
