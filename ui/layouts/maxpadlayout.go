package layouts

import "fyne.io/fyne/v2"

var _ fyne.Layout = (*MaxPadLayout)(nil)

// MaxPadLayout stacks its objects to fill the container minus fixed insets.
type MaxPadLayout struct {
	PadLeft   float32
	PadRight  float32
	PadTop    float32
	PadBottom float32
}

func NewMaxPadLayout(top, bottom, left, right float32) *MaxPadLayout {
	return &MaxPadLayout{PadTop: top, PadBottom: bottom, PadLeft: left, PadRight: right}
}

func (c *MaxPadLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var inner fyne.Size
	for _, o := range objects {
		if o.Visible() {
			inner = inner.Max(o.MinSize())
		}
	}
	return inner.Add(fyne.NewSize(c.PadLeft+c.PadRight, c.PadTop+c.PadBottom))
}

func (c *MaxPadLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	pos := fyne.NewPos(c.PadLeft, c.PadTop)
	objSize := fyne.NewSize(size.Width-c.PadLeft-c.PadRight, size.Height-c.PadTop-c.PadBottom)
	for _, child := range objects {
		if !child.Visible() {
			continue
		}
		child.Move(pos)
		child.Resize(objSize)
	}
}
