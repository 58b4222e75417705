package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/lapwatch-app/lapwatch/stopwatch"
	"github.com/lapwatch-app/lapwatch/ui/layouts"
	myTheme "github.com/lapwatch-app/lapwatch/ui/theme"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// StopwatchControls is the row of Start/Pause, Lap and Reset buttons
// with a caption under each one.
type StopwatchControls struct {
	widget.BaseWidget

	startPause      *ttwidget.Button
	startPauseTheme *container.ThemeOverride
	startPauseLabel *widget.Label
	lap             *ttwidget.Button
	reset           *ttwidget.Button
	container       *fyne.Container

	running bool
}

var _ fyne.Widget = (*StopwatchControls)(nil)

func NewStopwatchControls() *StopwatchControls {
	c := &StopwatchControls{}
	c.ExtendBaseWidget(c)

	c.startPause = ttwidget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {})
	c.startPause.SetToolTip(lang.L("Start") + " / " + lang.L("Pause") + " (Space)")
	c.startPauseTheme = container.NewThemeOverride(c.startPause, myTheme.ButtonColorTheme(myTheme.ColorNameStartButton))
	c.startPauseLabel = widget.NewLabel(lang.L("Start"))

	c.lap = ttwidget.NewButtonWithIcon("", myTheme.LapIcon, func() {})
	c.lap.SetToolTip(lang.L("Lap") + " (L)")
	c.lap.Disable()

	c.reset = ttwidget.NewButtonWithIcon("", theme.MediaReplayIcon(), func() {})
	c.reset.SetToolTip(lang.L("Reset") + " (Ctrl+R)")

	column := func(btn fyne.CanvasObject, label *widget.Label) fyne.CanvasObject {
		label.Alignment = fyne.TextAlignCenter
		return container.NewVBox(btn, label)
	}
	c.container = container.NewCenter(
		container.New(&layouts.HboxCustomPadding{ExtraPad: 12, EqualWidths: true},
			column(c.startPauseTheme, c.startPauseLabel),
			column(container.NewThemeOverride(c.lap, myTheme.ButtonColorTheme(myTheme.ColorNameLapButton)), widget.NewLabel(lang.L("Lap"))),
			column(container.NewThemeOverride(c.reset, myTheme.ButtonColorTheme(myTheme.ColorNameResetButton)), widget.NewLabel(lang.L("Reset"))),
		))
	return c
}

func (c *StopwatchControls) OnStartPause(f func()) {
	c.startPause.OnTapped = f
}

func (c *StopwatchControls) OnLap(f func()) {
	c.lap.OnTapped = f
}

func (c *StopwatchControls) OnReset(f func()) {
	c.reset.OnTapped = f
}

// Update sets the toggle icon, color and caption, and the Lap enabled state,
// from a stopwatch snapshot. Must be called on the Fyne goroutine.
func (c *StopwatchControls) Update(s stopwatch.Snapshot) {
	c.startPauseLabel.SetText(lang.L(stopwatch.ControlLabel(s)))
	if stopwatch.LapEnabled(s) {
		c.lap.Enable()
	} else {
		c.lap.Disable()
	}
	if s.Running() == c.running {
		return
	}
	c.running = s.Running()
	if c.running {
		c.startPause.SetIcon(theme.MediaPauseIcon())
		c.startPauseTheme.Theme = myTheme.ButtonColorTheme(myTheme.ColorNamePauseButton)
	} else {
		c.startPause.SetIcon(theme.MediaPlayIcon())
		c.startPauseTheme.Theme = myTheme.ButtonColorTheme(myTheme.ColorNameStartButton)
	}
	c.startPauseTheme.Refresh()
}

func (c *StopwatchControls) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.container)
}
