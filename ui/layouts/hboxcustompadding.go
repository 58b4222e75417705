package layouts

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var _ fyne.Layout = (*HboxCustomPadding)(nil)

// HboxCustomPadding is an HBox with adjustable spacing between objects.
// With EqualWidths set, every visible object gets the width of the widest one.
type HboxCustomPadding struct {
	ExtraPad        float32
	DisableThemePad bool
	EqualWidths     bool
}

func (h *HboxCustomPadding) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minSize fyne.Size
	visible := 0
	for _, child := range objects {
		if !child.Visible() {
			continue
		}
		visible++
		childMin := child.MinSize()
		minSize.Height = fyne.Max(childMin.Height, minSize.Height)
		minSize.Width += h.childWidth(objects, childMin.Width)
	}
	if visible > 1 {
		minSize.Width += h.padding() * float32(visible-1)
	}
	return minSize
}

func (h *HboxCustomPadding) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	x := float32(0)
	for _, child := range objects {
		if !child.Visible() {
			continue
		}
		width := h.childWidth(objects, child.MinSize().Width)
		child.Move(fyne.NewPos(x, 0))
		child.Resize(fyne.NewSize(width, size.Height))
		x += width + h.padding()
	}
}

func (h *HboxCustomPadding) childWidth(objects []fyne.CanvasObject, own float32) float32 {
	if !h.EqualWidths {
		return own
	}
	for _, o := range objects {
		if o.Visible() {
			own = fyne.Max(own, o.MinSize().Width)
		}
	}
	return own
}

func (h *HboxCustomPadding) padding() float32 {
	if h.DisableThemePad {
		return h.ExtraPad
	}
	return theme.Padding() + h.ExtraPad
}
