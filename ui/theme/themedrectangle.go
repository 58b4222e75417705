package theme

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// ThemedRectangle is a rounded rectangle filled with a named theme color
// that follows theme changes.
type ThemedRectangle struct {
	widget.BaseWidget

	rect *canvas.Rectangle

	ColorName    fyne.ThemeColorName
	CornerRadius float32
}

func NewThemedRectangle(colorName fyne.ThemeColorName, cornerRadius float32) *ThemedRectangle {
	t := &ThemedRectangle{
		ColorName:    colorName,
		CornerRadius: cornerRadius,
		rect:         canvas.NewRectangle(nil),
	}
	t.ExtendBaseWidget(t)
	t.updateColor()
	return t
}

func (t *ThemedRectangle) Refresh() {
	t.updateColor()
	t.BaseWidget.Refresh()
}

func (t *ThemedRectangle) updateColor() {
	th := t.Theme()
	t.rect.FillColor = th.Color(t.ColorName, fyne.CurrentApp().Settings().ThemeVariant())
	t.rect.CornerRadius = t.CornerRadius
}

func (t *ThemedRectangle) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.rect)
}
