package widgets

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/lapwatch-app/lapwatch/stopwatch"
	"github.com/lapwatch-app/lapwatch/ui/layouts"
	myTheme "github.com/lapwatch-app/lapwatch/ui/theme"
)

// TimeDisplay shows the elapsed time as large MM:SS:CC text on a rounded panel.
type TimeDisplay struct {
	widget.BaseWidget

	text      *canvas.Text
	container *fyne.Container
}

var _ fyne.Widget = (*TimeDisplay)(nil)

func NewTimeDisplay() *TimeDisplay {
	t := &TimeDisplay{
		text: canvas.NewText(stopwatch.FormatTime(0), theme.Color(theme.ColorNameForeground)),
	}
	t.ExtendBaseWidget(t)
	t.text.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	t.text.Alignment = fyne.TextAlignCenter
	t.text.TextSize = theme.Size(myTheme.SizeNameTimeDisplayText)

	bg := myTheme.NewThemedRectangle(myTheme.ColorNameTimeDisplay, theme.Size(theme.SizeNameInputRadius)*2)
	t.container = container.NewStack(bg,
		container.New(layouts.NewMaxPadLayout(24, 24, 16, 16), t.text))
	return t
}

// SetElapsed updates the displayed time. It only redraws when the text changes.
func (t *TimeDisplay) SetElapsed(d time.Duration) {
	s := stopwatch.FormatTime(d)
	if s != t.text.Text {
		t.text.Text = s
		t.text.Refresh()
	}
}

func (t *TimeDisplay) Text() string {
	return t.text.Text
}

func (t *TimeDisplay) Refresh() {
	th := t.Theme()
	v := fyne.CurrentApp().Settings().ThemeVariant()
	t.text.Color = th.Color(theme.ColorNameForeground, v)
	t.text.TextSize = th.Size(myTheme.SizeNameTimeDisplayText)
	t.BaseWidget.Refresh()
}

func (t *TimeDisplay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.container)
}
