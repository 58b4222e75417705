package widgets

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/lapwatch-app/lapwatch/stopwatch"
	"github.com/lapwatch-app/lapwatch/ui/layouts"
	myTheme "github.com/lapwatch-app/lapwatch/ui/theme"

	list "github.com/dweymouth/fyne-advanced-list"
)

// LapList shows recorded laps newest first under a "Lap Times" heading.
type LapList struct {
	widget.BaseWidget

	laps      []stopwatch.Lap // display order
	list      *list.List
	container *fyne.Container
}

var _ fyne.Widget = (*LapList)(nil)

func NewLapList() *LapList {
	l := &LapList{}
	l.ExtendBaseWidget(l)

	l.list = &list.List{
		HideSeparators: true,
		Length:         func() int { return len(l.laps) },
		CreateItem:     func() fyne.CanvasObject { return newLapRow() },
		UpdateItem: func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(l.laps) {
				obj.(*lapRow).Update(l.laps[id])
			}
		},
	}
	l.list.ExtendBaseWidget(l.list)

	heading := widget.NewLabelWithStyle(lang.L("Lap Times"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	bg := myTheme.NewThemedRectangle(myTheme.ColorNameLapContainer, theme.Size(theme.SizeNameInputRadius)*2)
	l.container = container.NewStack(bg,
		container.New(layouts.NewMaxPadLayout(8, 8, 8, 8),
			container.NewBorder(heading, nil, nil, nil, l.list)))
	return l
}

// SetLaps replaces the displayed laps. laps are in capture order.
func (l *LapList) SetLaps(laps []stopwatch.Lap) {
	l.laps = stopwatch.DisplayLaps(laps)
	l.list.Refresh()
	if len(l.laps) > 0 {
		l.list.ScrollTo(0)
	}
}

func (l *LapList) Len() int {
	return len(l.laps)
}

func (l *LapList) MinSize() fyne.Size {
	// room for the heading and a few rows
	return fyne.NewSize(l.container.MinSize().Width, 200)
}

func (l *LapList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.container)
}

type lapRow struct {
	widget.BaseWidget

	number    *widget.Label
	time      *widget.Label
	container *fyne.Container
}

func newLapRow() *lapRow {
	r := &lapRow{
		number: widget.NewLabel(""),
		time:   widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}),
	}
	r.ExtendBaseWidget(r)
	r.container = container.NewStack(
		myTheme.NewThemedRectangle(myTheme.ColorNameLapItem, theme.Size(theme.SizeNameInputRadius)),
		container.NewBorder(nil, nil, r.number, nil, r.time),
	)
	return r
}

func (r *lapRow) Update(lap stopwatch.Lap) {
	r.number.SetText(fmt.Sprintf("%s %d", lang.L("Lap"), lap.Number))
	r.time.SetText(stopwatch.FormatTime(lap.Time))
}

func (r *lapRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.container)
}
