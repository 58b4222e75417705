package dialogs

import (
	"slices"
	"strconv"

	"github.com/lapwatch-app/lapwatch/backend"
	"github.com/lapwatch-app/lapwatch/res"
	"github.com/lapwatch-app/lapwatch/ui/theme"
	"github.com/lapwatch-app/lapwatch/ui/widgets"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var boldStyle = widget.RichTextStyle{TextStyle: fyne.TextStyle{Bold: true}}

type SettingsDialog struct {
	widget.BaseWidget

	OnThemeSettingChanged func()
	OnTickIntervalChanged func(ms int)
	OnDismiss             func()

	config     *backend.Config
	themeFiles []theme.ThemeFileInfo

	appearanceSelect   *widget.Select
	themeFileSelect    *widget.Select
	tickEntry          *widgets.TextRestrictedEntry
	restartRequiredLbl *widget.Label
	content            fyne.CanvasObject
}

func NewSettingsDialog(config *backend.Config, themeFiles []theme.ThemeFileInfo) *SettingsDialog {
	s := &SettingsDialog{config: config, themeFiles: themeFiles}
	s.ExtendBaseWidget(s)

	s.restartRequiredLbl = widget.NewLabel(lang.L("Restart required"))
	s.restartRequiredLbl.TextStyle.Italic = true
	s.restartRequiredLbl.Hide()

	tabs := container.NewAppTabs(
		s.createGeneralTab(),
		s.createAppearanceTab(),
		s.createStopwatchTab(),
	)
	s.content = container.NewVBox(tabs, widget.NewSeparator(),
		container.NewHBox(s.restartRequiredLbl, layout.NewSpacer(), widget.NewButton(lang.L("Close"), func() {
			if s.OnDismiss != nil {
				s.OnDismiss()
			}
		})))

	return s
}

func (s *SettingsDialog) createGeneralTab() *container.TabItem {
	languages := []string{lang.L("Auto")}
	for _, tr := range res.TranslationsInfo {
		languages = append(languages, tr.DisplayName)
	}
	languageSelect := widget.NewSelect(languages, nil)
	languageSelect.SetSelectedIndex(0)
	if i := slices.IndexFunc(res.TranslationsInfo, func(t res.TranslationInfo) bool {
		return t.Name == s.config.Application.Language
	}); i >= 0 {
		languageSelect.SetSelectedIndex(i + 1)
	}
	languageSelect.OnChanged = func(_ string) {
		if i := languageSelect.SelectedIndex(); i > 0 {
			s.config.Application.Language = res.TranslationsInfo[i-1].Name
		} else {
			s.config.Application.Language = "auto"
		}
		s.setRestartRequired()
	}

	closeToTray := widget.NewCheckWithData(lang.L("Close to system tray"),
		binding.BindBool(&s.config.Application.CloseToSystemTray))
	if !s.config.Application.EnableSystemTray {
		closeToTray.Disable()
	}
	systemTrayEnable := widget.NewCheck(lang.L("Enable system tray"), func(val bool) {
		s.config.Application.EnableSystemTray = val
		if val {
			closeToTray.Enable()
		} else {
			closeToTray.Disable()
		}
		s.setRestartRequired()
	})
	systemTrayEnable.Checked = s.config.Application.EnableSystemTray

	return container.NewTabItem(lang.L("General"), container.NewVBox(
		container.New(layout.NewFormLayout(), widget.NewLabel(lang.L("Language")), languageSelect),
		systemTrayEnable,
		closeToTray,
	))
}

func (s *SettingsDialog) createAppearanceTab() *container.TabItem {
	appearances := []string{backend.AppearanceLight, backend.AppearanceDark, backend.AppearanceAuto}
	appearanceSelect := widget.NewSelect([]string{lang.L("Light"), lang.L("Dark"), lang.L("Auto")}, nil)
	s.appearanceSelect = appearanceSelect
	appearanceSelect.SetSelectedIndex(max(slices.Index(appearances, s.config.Theme.Appearance), 0))
	appearanceSelect.OnChanged = func(_ string) {
		s.config.Theme.Appearance = appearances[appearanceSelect.SelectedIndex()]
		s.onThemeSettingChanged()
	}

	themeNames := []string{"Default"}
	for _, f := range s.themeFiles {
		themeNames = append(themeNames, f.DisplayName)
	}
	themeFileSelect := widget.NewSelect(themeNames, nil)
	s.themeFileSelect = themeFileSelect
	themeFileSelect.SetSelectedIndex(0)
	if i := slices.IndexFunc(s.themeFiles, func(f theme.ThemeFileInfo) bool {
		return f.FileName == s.config.Theme.ThemeFile
	}); i >= 0 {
		themeFileSelect.SetSelectedIndex(i + 1)
	}
	themeFileSelect.OnChanged = func(_ string) {
		if i := themeFileSelect.SelectedIndex(); i > 0 {
			s.config.Theme.ThemeFile = s.themeFiles[i-1].FileName
		} else {
			s.config.Theme.ThemeFile = ""
		}
		s.onThemeSettingChanged()
	}

	return container.NewTabItem(lang.L("Appearance"), container.NewVBox(
		widget.NewRichText(&widget.TextSegment{Text: lang.L("Theme"), Style: boldStyle}),
		container.New(layout.NewFormLayout(),
			widget.NewLabel(lang.L("Appearance")), appearanceSelect,
			widget.NewLabel(lang.L("Theme")), themeFileSelect,
		),
	))
}

func (s *SettingsDialog) createStopwatchTab() *container.TabItem {
	tickEntry := widgets.NewTextRestrictedEntry(widgets.DigitsOnly(4))
	s.tickEntry = tickEntry
	tickEntry.SetMinCharWidth(4)
	tickEntry.Text = strconv.Itoa(s.config.Stopwatch.TickIntervalMS)
	tickEntry.OnChanged = func(str string) {
		if i, err := strconv.Atoi(str); err == nil && i > 0 && s.OnTickIntervalChanged != nil {
			s.OnTickIntervalChanged(i)
		}
	}
	hint := widget.NewLabel(lang.L("Applies the next time the stopwatch starts"))
	hint.Importance = widget.LowImportance

	return container.NewTabItem(lang.L("Stopwatch"), container.NewVBox(
		container.NewHBox(widget.NewLabel(lang.L("Tick interval (ms)")), tickEntry),
		hint,
	))
}

func (s *SettingsDialog) setRestartRequired() {
	s.restartRequiredLbl.Show()
}

func (s *SettingsDialog) onThemeSettingChanged() {
	if s.OnThemeSettingChanged != nil {
		s.OnThemeSettingChanged()
	}
}

func (s *SettingsDialog) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}
