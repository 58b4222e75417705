package dialogs

import (
	"fmt"
	"net/url"

	"github.com/lapwatch-app/lapwatch/res"
	"github.com/lapwatch-app/lapwatch/ui/layouts"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type AboutDialog struct {
	widget.BaseWidget

	OnDismiss func()

	content fyne.CanvasObject
}

func NewAboutDialog(version string) *AboutDialog {
	a := &AboutDialog{}
	a.ExtendBaseWidget(a)

	a.content = container.NewVBox(
		container.NewAppTabs(
			container.NewTabItem(res.DisplayName, a.buildMainTabContainer(version)),
			container.NewTabItem("Credits", a.buildCreditsContainer()),
		),
		widget.NewSeparator(),
		container.NewHBox(
			layout.NewSpacer(),
			widget.NewButton(lang.L("Close"), func() {
				if a.OnDismiss != nil {
					a.OnDismiss()
				}
			}),
		),
	)
	return a
}

func (a *AboutDialog) MinSize() fyne.Size {
	return fyne.NewSize(380, a.BaseWidget.MinSize().Height)
}

func (a *AboutDialog) buildMainTabContainer(version string) fyne.CanvasObject {
	iconImage := canvas.NewImageFromResource(res.ResAppiconSvg)
	iconImage.FillMode = canvas.ImageFillContain
	iconImage.SetMinSize(fyne.NewSize(64, 64))
	title := widget.NewRichTextWithText(res.DisplayName)
	title.Segments[0].(*widget.TextSegment).Style.TextStyle.Bold = true
	title.Segments[0].(*widget.TextSegment).Style.SizeName = theme.SizeNameSubHeadingText
	title.Segments[0].(*widget.TextSegment).Style.Alignment = fyne.TextAlignCenter
	versionLbl := newCenterAlignLabel(fmt.Sprintf("version %s", version))
	copyright := newCenterAlignLabel(res.Copyright)
	ghUrl, _ := url.Parse(res.GithubURL)
	issuesUrl, _ := url.Parse(res.IssuesURL)
	links := container.NewCenter(
		container.New(&layouts.HboxCustomPadding{DisableThemePad: true, ExtraPad: -10},
			widget.NewHyperlink("Github page", ghUrl),
			widget.NewLabel("·"),
			widget.NewHyperlink("Report an issue", issuesUrl)),
	)

	return container.New(layouts.NewMaxPadLayout(10, 10, 0, 0),
		container.NewVBox(iconImage,
			container.New(&layouts.VboxCustomPadding{ExtraPad: -10}, title, versionLbl, copyright, links)))
}

func (a *AboutDialog) buildCreditsContainer() fyne.CanvasObject {
	fyneURL, _ := url.Parse("https://fyne.io")
	goTomlURL, _ := url.Parse("https://github.com/pelletier/go-toml")
	mprisURL, _ := url.Parse("https://github.com/quarckster/go-mpris-server")
	return container.New(&layouts.VboxCustomPadding{ExtraPad: -10},
		widget.NewLabel("Major frameworks and modules used in this application include:"),
		container.NewHBox(widget.NewHyperlink("Fyne toolkit", fyneURL), widget.NewLabel("BSD 3-Clause License")),
		container.NewHBox(widget.NewHyperlink("go-toml", goTomlURL), widget.NewLabel("MIT License")),
		container.NewHBox(widget.NewHyperlink("go-mpris-server", mprisURL), widget.NewLabel("MIT License")),
	)
}

func (a *AboutDialog) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(a.content)
}

func newCenterAlignLabel(text string) *widget.Label {
	lbl := widget.NewLabel(text)
	lbl.Alignment = fyne.TextAlignCenter
	return lbl
}
