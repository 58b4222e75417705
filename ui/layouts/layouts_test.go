package layouts

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
)

func rect(w, h float32) *canvas.Rectangle {
	r := canvas.NewRectangle(nil)
	r.SetMinSize(fyne.NewSize(w, h))
	return r
}

func TestMaxPadLayout(t *testing.T) {
	l := NewMaxPadLayout(1, 2, 3, 4)
	a, b := rect(10, 20), rect(30, 5)
	if got, want := l.MinSize([]fyne.CanvasObject{a, b}), fyne.NewSize(37, 23); got != want {
		t.Errorf("got min size %v, want %v", got, want)
	}
	l.Layout([]fyne.CanvasObject{a, b}, fyne.NewSize(100, 50))
	if a.Position() != fyne.NewPos(3, 1) || a.Size() != fyne.NewSize(93, 47) {
		t.Errorf("got pos %v size %v", a.Position(), a.Size())
	}
}

func TestHboxCustomPadding_EqualWidths(t *testing.T) {
	test.NewTempApp(t)
	pad := theme.Padding()
	l := &HboxCustomPadding{ExtraPad: 10, EqualWidths: true}
	a, b, hidden := rect(10, 10), rect(40, 20), rect(100, 100)
	hidden.Hide()
	objs := []fyne.CanvasObject{a, hidden, b}

	if got, want := l.MinSize(objs), fyne.NewSize(80+pad+10, 20); got != want {
		t.Errorf("got min size %v, want %v", got, want)
	}
	l.Layout(objs, fyne.NewSize(200, 30))
	if a.Size().Width != 40 || b.Position().X != 40+pad+10 {
		t.Errorf("got a width %v, b x %v", a.Size().Width, b.Position().X)
	}
}

func TestVboxCustomPadding_Spacer(t *testing.T) {
	test.NewTempApp(t)
	pad := theme.Padding()
	l := &VboxCustomPadding{ExtraPad: 5}
	a, b := rect(10, 10), rect(10, 20)
	objs := []fyne.CanvasObject{a, layout.NewSpacer(), b}

	if got, want := l.MinSize(objs), fyne.NewSize(10, 30+pad+5); got != want {
		t.Errorf("got min size %v, want %v", got, want)
	}
	l.Layout(objs, fyne.NewSize(50, 100))
	if b.Position().Y != 80 {
		t.Errorf("got b at y=%v, want bottom-aligned at 80", b.Position().Y)
	}
}
