package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const toastDuration = 2 * time.Second

// ToastOverlay slides short confirmation messages in at the bottom of the window.
// It is stacked above the main content and passes through all input.
type ToastOverlay struct {
	widget.BaseWidget

	currentToast     *toast
	currentToastAnim *fyne.Animation
	dismissTimer     *time.Timer

	container *fyne.Container
}

func NewToastOverlay() *ToastOverlay {
	t := &ToastOverlay{container: container.NewWithoutLayout()}
	t.container.Objects = make([]fyne.CanvasObject, 0, 1)
	t.ExtendBaseWidget(t)
	return t
}

// ShowToast shows message, replacing any toast already on screen.
// isErr selects the error accent color. Must be called on the UI goroutine.
func (t *ToastOverlay) ShowToast(message string, isErr bool) {
	t.cancelPreviousToast()

	t.currentToast = newToast(isErr, message)
	t.container.Objects = append(t.container.Objects, t.currentToast)

	s := t.Size()
	min := t.currentToast.MinSize()
	t.currentToast.Resize(min)
	endPos := t.anchorPos(s, min)
	startPos := fyne.NewPos(endPos.X, s.Height)
	t.currentToastAnim = canvas.NewPositionAnimation(startPos, endPos, 100*time.Millisecond, func(p fyne.Position) {
		if ct := t.currentToast; ct != nil {
			ct.Move(p)
		}
		if p == endPos {
			t.currentToastAnim = nil
		}
	})
	t.currentToastAnim.Curve = fyne.AnimationEaseOut
	t.currentToastAnim.Start()

	shown := t.currentToast
	t.dismissTimer = time.AfterFunc(toastDuration, func() {
		fyne.Do(func() {
			if t.currentToast == shown {
				t.cancelPreviousToast()
				t.Refresh()
			}
		})
	})
	t.Refresh()
}

func (t *ToastOverlay) HasToast() bool {
	return t.currentToast != nil
}

func (t *ToastOverlay) Resize(size fyne.Size) {
	if t.currentToast != nil && t.currentToastAnim == nil {
		t.currentToast.Move(t.anchorPos(size, t.currentToast.MinSize()))
	}
	t.BaseWidget.Resize(size)
}

// bottom center
func (t *ToastOverlay) anchorPos(size, toastSize fyne.Size) fyne.Position {
	pad := theme.Padding()
	return fyne.NewPos((size.Width-toastSize.Width)/2, size.Height-toastSize.Height-pad*2)
}

func (t *ToastOverlay) cancelPreviousToast() {
	if t.currentToast == nil {
		return
	}
	if t.currentToastAnim != nil {
		t.currentToastAnim.Stop()
		t.currentToastAnim = nil
	}
	if t.dismissTimer != nil {
		t.dismissTimer.Stop()
		t.dismissTimer = nil
	}
	t.container.Objects = t.container.Objects[:0]
	t.currentToast = nil
}

func (t *ToastOverlay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.container)
}

type toast struct {
	widget.BaseWidget

	isErr   bool
	message string
}

func newToast(isErr bool, message string) *toast {
	t := &toast{isErr: isErr, message: message}
	t.ExtendBaseWidget(t)
	return t
}

func (t *toast) CreateRenderer() fyne.WidgetRenderer {
	return newToastRenderer(t)
}

// swallow all tap/mouse events because toast is transparent
var (
	_ fyne.Tappable          = (*toast)(nil)
	_ fyne.SecondaryTappable = (*toast)(nil)
	_ desktop.Hoverable      = (*toast)(nil)
	_ desktop.Mouseable      = (*toast)(nil)
)

func (*toast) Tapped(*fyne.PointEvent)          {}
func (*toast) TappedSecondary(*fyne.PointEvent) {}
func (*toast) MouseIn(*desktop.MouseEvent)      {}
func (*toast) MouseOut()                        {}
func (*toast) MouseMoved(*desktop.MouseEvent)   {}
func (*toast) MouseUp(*desktop.MouseEvent)      {}
func (*toast) MouseDown(*desktop.MouseEvent)    {}

type toastRenderer struct {
	container   *fyne.Container
	background  *canvas.Rectangle
	accent      *canvas.Rectangle
	accentColor fyne.ThemeColorName
}

func newToastRenderer(t *toast) *toastRenderer {
	accentColor := theme.ColorNameSuccess
	if t.isErr {
		accentColor = theme.ColorNameError
	}

	background := canvas.NewRectangle(nil)
	accent := canvas.NewRectangle(nil)
	accent.SetMinSize(fyne.NewSize(4, 1))

	pad := theme.Padding()
	r := &toastRenderer{
		background:  background,
		accent:      accent,
		accentColor: accentColor,
		container: container.NewStack(
			background,
			container.New(&layout.CustomPaddedLayout{
				TopPadding:    pad,
				BottomPadding: pad,
				LeftPadding:   2 * pad,
				RightPadding:  2 * pad,
			},
				container.NewBorder(nil, nil, accent, nil, widget.NewLabel(t.message)),
			),
		),
	}
	r.applyTheme()
	return r
}

var _ fyne.WidgetRenderer = (*toastRenderer)(nil)

func (*toastRenderer) Destroy() {}

func (t *toastRenderer) Layout(s fyne.Size) {
	t.container.Layout.Layout(t.container.Objects, s)
}

func (t *toastRenderer) MinSize() fyne.Size {
	return t.container.MinSize()
}

func (t *toastRenderer) Objects() []fyne.CanvasObject {
	return t.container.Objects
}

func (t *toastRenderer) Refresh() {
	t.applyTheme()
	t.background.Refresh()
	t.accent.Refresh()
	canvas.Refresh(t.container)
}

func (t *toastRenderer) applyTheme() {
	th := fyne.CurrentApp().Settings().Theme()
	v := fyne.CurrentApp().Settings().ThemeVariant()

	t.background.FillColor = th.Color(theme.ColorNameOverlayBackground, v)
	t.background.CornerRadius = th.Size(theme.SizeNameInputRadius)
	t.background.StrokeColor = th.Color(theme.ColorNameInputBorder, v)
	t.background.StrokeWidth = th.Size(theme.SizeNameInputBorder) * 2
	t.accent.FillColor = th.Color(t.accentColor, v)
}
