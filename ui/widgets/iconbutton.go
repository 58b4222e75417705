package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	myTheme "github.com/lapwatch-app/lapwatch/ui/theme"
)

type IconButtonSize int

const (
	IconButtonSizeNormal IconButtonSize = iota
	IconButtonSizeBigger
)

// IconButton is a borderless button drawn as a single themed icon,
// used for the window's corner controls.
type IconButton struct {
	ttwidget.ToolTipWidget

	IconSize IconButtonSize
	OnTapped func()

	icon    fyne.Resource
	focused bool
	hovered bool

	themed *theme.ThemedResource
	img    *canvas.Image
}

var (
	_ fyne.Tappable     = (*IconButton)(nil)
	_ fyne.Focusable    = (*IconButton)(nil)
	_ desktop.Hoverable = (*IconButton)(nil)
)

func NewIconButton(icon fyne.Resource, onTapped func()) *IconButton {
	i := &IconButton{icon: icon, OnTapped: onTapped}
	i.ExtendBaseWidget(i)
	return i
}

func (i *IconButton) Icon() fyne.Resource {
	return i.icon
}

func (i *IconButton) SetIcon(icon fyne.Resource) {
	i.icon = icon
	if i.img != nil {
		i.themed = theme.NewThemedResource(icon)
		i.img.Resource = i.themed
		i.Refresh()
	}
}

func (i *IconButton) Tapped(*fyne.PointEvent) {
	if i.OnTapped != nil {
		i.OnTapped()
	}
}

func (i *IconButton) FocusGained() {
	i.focused = true
	i.Refresh()
}

func (i *IconButton) FocusLost() {
	i.focused = false
	i.Refresh()
}

func (i *IconButton) TypedKey(e *fyne.KeyEvent) {
	if e.Name == fyne.KeySpace || e.Name == fyne.KeyReturn {
		i.Tapped(nil)
	}
}

func (i *IconButton) TypedRune(rune) {}

func (i *IconButton) MouseIn(e *desktop.MouseEvent) {
	i.ToolTipWidget.MouseIn(e)
	i.hovered = true
	i.Refresh()
}

func (i *IconButton) MouseOut() {
	i.ToolTipWidget.MouseOut()
	i.hovered = false
	i.Refresh()
}

func (i *IconButton) MouseMoved(e *desktop.MouseEvent) {
	i.ToolTipWidget.MouseMoved(e)
}

func (i *IconButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (i *IconButton) MinSize() fyne.Size {
	return i.iconSize()
}

func (i *IconButton) iconSize() fyne.Size {
	if i.IconSize == IconButtonSizeBigger {
		return fyne.NewSquareSize(theme.IconInlineSize() * 1.75)
	}
	return fyne.NewSquareSize(theme.IconInlineSize() * 1.3333)
}

func (i *IconButton) updateColor() {
	switch {
	case i.focused:
		i.themed.ColorName = theme.ColorNamePrimary
	case i.hovered:
		i.themed.ColorName = myTheme.ColorNameHoveredIconButton
	default:
		i.themed.ColorName = myTheme.ColorNameIconButton
	}
}

func (i *IconButton) Refresh() {
	if i.img == nil {
		return
	}
	i.updateColor()
	i.img.SetMinSize(i.iconSize())
	i.img.Refresh()
}

func (i *IconButton) CreateRenderer() fyne.WidgetRenderer {
	if i.img == nil {
		i.themed = theme.NewThemedResource(i.icon)
		i.img = canvas.NewImageFromResource(i.themed)
		i.img.FillMode = canvas.ImageFillContain
		i.img.SetMinSize(i.iconSize())
		i.updateColor()
	}
	return widget.NewSimpleRenderer(container.NewCenter(i.img))
}
