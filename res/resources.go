package res

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

var (
	//go:embed themes/default.toml
	defaultToml []byte
	//go:embed icons/appicon.svg
	appiconSvg []byte
	//go:embed icons/sun.svg
	sunSvg []byte
	//go:embed icons/moon.svg
	moonSvg []byte
	//go:embed icons/flag.svg
	flagSvg []byte
)

var (
	ResDefaultToml = fyne.NewStaticResource("default.toml", defaultToml)
	ResAppiconSvg  = fyne.NewStaticResource("appicon.svg", appiconSvg)
	ResSunSvg      = fyne.NewStaticResource("sun.svg", sunSvg)
	ResMoonSvg     = fyne.NewStaticResource("moon.svg", moonSvg)
	ResFlagSvg     = fyne.NewStaticResource("flag.svg", flagSvg)
)
