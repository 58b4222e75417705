package layouts

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
)

var _ fyne.Layout = (*VboxCustomPadding)(nil)

// VboxCustomPadding is a VBox with adjustable spacing between objects.
// Vertical spacers share the leftover height.
type VboxCustomPadding struct {
	ExtraPad float32
}

func (*VboxCustomPadding) isSpacer(obj fyne.CanvasObject) bool {
	spacer, ok := obj.(layout.SpacerObject)
	return ok && spacer.ExpandVertical()
}

func (v *VboxCustomPadding) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minSize fyne.Size
	visible := 0
	for _, child := range objects {
		if !child.Visible() || v.isSpacer(child) {
			continue
		}
		visible++
		childMin := child.MinSize()
		minSize.Width = fyne.Max(childMin.Width, minSize.Width)
		minSize.Height += childMin.Height
	}
	if visible > 1 {
		minSize.Height += v.padding() * float32(visible-1)
	}
	return minSize
}

func (v *VboxCustomPadding) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	spacers := 0
	visible := 0
	total := float32(0)
	for _, child := range objects {
		if !child.Visible() {
			continue
		}
		if v.isSpacer(child) {
			spacers++
			continue
		}
		visible++
		total += child.MinSize().Height
	}

	spacerSize := float32(0)
	if spacers > 0 {
		extra := size.Height - total - v.padding()*float32(max(visible-1, 0))
		spacerSize = fyne.Max(0, extra/float32(spacers))
	}

	y := float32(0)
	for _, child := range objects {
		if !child.Visible() {
			continue
		}
		if v.isSpacer(child) {
			y += spacerSize
			continue
		}
		height := child.MinSize().Height
		child.Move(fyne.NewPos(0, y))
		child.Resize(fyne.NewSize(size.Width, height))
		y += height + v.padding()
	}
}

func (v *VboxCustomPadding) padding() float32 {
	return theme.Padding() + v.ExtraPad
}
