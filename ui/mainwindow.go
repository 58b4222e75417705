package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/lapwatch-app/lapwatch/backend"
	"github.com/lapwatch-app/lapwatch/res"
	"github.com/lapwatch-app/lapwatch/stopwatch"
	"github.com/lapwatch-app/lapwatch/ui/dialogs"
	"github.com/lapwatch-app/lapwatch/ui/layouts"
	"github.com/lapwatch-app/lapwatch/ui/shortcuts"
	"github.com/lapwatch-app/lapwatch/ui/theme"
	"github.com/lapwatch-app/lapwatch/ui/widgets"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/lang"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	"golang.org/x/text/language"
)

type MainWindow struct {
	Window fyne.Window

	App *backend.App

	theme          *theme.MyTheme
	appVersion     string
	haveSystemTray bool
	trayMenu       *fyne.Menu
	trayStartPause *fyne.MenuItem
	modal          *widget.PopUp

	timeDisplay *widgets.TimeDisplay
	controls    *widgets.StopwatchControls
	lapList     *widgets.LapList
	themeBtn    *widgets.IconButton
	menuBtn     *widgets.IconButton
	menu        *fyne.Menu
	toasts      *ToastOverlay
	container   *fyne.Container
}

func NewMainWindow(fyneApp fyne.App, appName, displayAppName, appVersion string, app *backend.App, size fyne.Size) *MainWindow {
	m := &MainWindow{
		App:        app,
		Window:     fyneApp.NewWindow(displayAppName),
		theme:      theme.NewMyTheme(&app.Config.Theme, app.ThemesDir()),
		appVersion: appVersion,
	}
	fyneApp.Settings().SetTheme(m.theme)

	if app.Config.Application.EnableSystemTray {
		m.SetupSystemTrayMenu(displayAppName, fyneApp)
	}

	m.timeDisplay = widgets.NewTimeDisplay()
	m.controls = widgets.NewStopwatchControls()
	m.controls.OnStartPause(app.StopwatchManager.StartPause)
	m.controls.OnLap(app.StopwatchManager.Lap)
	m.controls.OnReset(app.StopwatchManager.Reset)
	m.lapList = widgets.NewLapList()
	m.lapList.Hide()
	m.toasts = NewToastOverlay()

	m.themeBtn = widgets.NewIconButton(theme.ToggleIcon(m.effectiveVariant()), m.ToggleTheme)
	m.themeBtn.SetToolTip(lang.L("Toggle theme"))
	m.menu = fyne.NewMenu("",
		fyne.NewMenuItem(lang.L("Settings")+"...", m.ShowSettingsDialog),
		fyne.NewMenuItem(lang.L("Copy lap times"), m.CopyLapTimes),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(lang.L("About")+"...", m.ShowAboutDialog),
	)
	m.menuBtn = widgets.NewIconButton(fynetheme.MenuIcon(), m.showMenu)
	m.menuBtn.SetToolTip(lang.L("Menu"))

	title := widget.NewLabelWithStyle(lang.L("Stopwatch"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, title, container.NewHBox(m.themeBtn, m.menuBtn))
	top := container.New(&layouts.VboxCustomPadding{ExtraPad: 8}, header, m.timeDisplay, m.controls)
	m.container = container.New(layouts.NewMaxPadLayout(12, 12, 16, 16),
		container.NewBorder(top, nil, nil, nil, m.lapList))
	m.Window.SetContent(fynetooltip.AddWindowToolTipLayer(
		container.NewStack(m.container, m.toasts), m.Window.Canvas()))
	m.Window.Resize(size)

	sm := app.StopwatchManager
	sm.OnTick(func(time.Duration) {
		// read on the UI thread so a queued tick can't repaint a value a reset already cleared
		fyne.Do(func() { m.timeDisplay.SetElapsed(sm.Snapshot().Elapsed) })
	})
	sm.OnStateChange(func(stopwatch.State) { fyne.Do(m.refreshStopwatch) })
	sm.OnLap(func(stopwatch.Lap) { fyne.Do(m.refreshStopwatch) })
	sm.OnReset(func() { fyne.Do(m.refreshStopwatch) })
	m.refreshStopwatch()

	app.OnToggleTheme = func() { fyne.Do(m.ToggleTheme) }
	app.OnThemeFilesChanged = func() {
		fyne.Do(func() {
			m.theme.ReloadThemeFile()
			m.applyTheme()
		})
	}

	m.addShortcuts()
	return m
}

// RunStartupTasks shows the what's new dialog once after an upgrade.
func (m *MainWindow) RunStartupTasks() {
	if l := m.App.Config.Application.LastLaunchedVersion; m.App.VersionTag() != l {
		if !m.App.IsFirstLaunch() {
			m.ShowWhatsNewDialog()
		}
		m.App.Config.Application.LastLaunchedVersion = m.App.VersionTag()
		m.App.SaveConfigFile()
	}
}

func (m *MainWindow) refreshStopwatch() {
	snap := m.App.StopwatchManager.Snapshot()
	m.timeDisplay.SetElapsed(snap.Elapsed)
	m.controls.Update(snap)
	m.lapList.SetLaps(snap.Laps)
	if len(snap.Laps) > 0 {
		m.lapList.Show()
	} else {
		m.lapList.Hide()
	}
	if m.trayStartPause != nil {
		m.trayStartPause.Label = lang.L(stopwatch.ControlLabel(snap))
		m.trayMenu.Refresh()
	}
}

func (m *MainWindow) effectiveVariant() fyne.ThemeVariant {
	return m.theme.Variant(fyne.CurrentApp().Settings().ThemeVariant())
}

// ToggleTheme flips between the light and dark appearance.
func (m *MainWindow) ToggleTheme() {
	m.theme.ToggleAppearance(fyne.CurrentApp().Settings().ThemeVariant())
	m.applyTheme()
	m.App.SaveConfigFile()
}

func (m *MainWindow) applyTheme() {
	fyne.CurrentApp().Settings().SetTheme(m.theme)
	m.themeBtn.SetIcon(theme.ToggleIcon(m.effectiveVariant()))
}

func (m *MainWindow) CopyLapTimes() {
	laps := m.App.StopwatchManager.Snapshot().Laps
	if len(laps) == 0 {
		m.toasts.ShowToast(lang.L("No laps recorded"), true)
		return
	}
	fyne.CurrentApp().Clipboard().SetContent(stopwatch.LapsText(laps))
	m.toasts.ShowToast(lang.L("Copied lap times"), false)
}

func (m *MainWindow) showMenu() {
	p := widget.NewPopUpMenu(m.menu, m.Window.Canvas())
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(m.menuBtn)
	p.ShowAtPosition(fyne.NewPos(pos.X+m.menuBtn.Size().Width-p.MinSize().Width,
		pos.Y+m.menuBtn.Size().Height))
}

func (m *MainWindow) SetupSystemTrayMenu(appName string, fyneApp fyne.App) {
	if desk, ok := fyneApp.(desktop.App); ok {
		sm := m.App.StopwatchManager
		m.trayStartPause = fyne.NewMenuItem(lang.L("Start"), sm.StartPause)
		m.trayMenu = fyne.NewMenu(appName,
			m.trayStartPause,
			fyne.NewMenuItem(lang.L("Lap"), sm.Lap),
			fyne.NewMenuItem(lang.L("Reset"), sm.Reset),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem(lang.L("Toggle theme"), m.ToggleTheme),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem(lang.L("Show"), m.Window.Show),
			fyne.NewMenuItem(lang.L("Hide"), m.Window.Hide),
		)
		desk.SetSystemTrayMenu(m.trayMenu)
		desk.SetSystemTrayIcon(res.ResAppiconSvg)
		m.haveSystemTray = true
	}
}

func (m *MainWindow) HaveSystemTray() bool {
	return m.haveSystemTray
}

func (m *MainWindow) ShowWhatsNewDialog() {
	dialog.ShowCustom(fmt.Sprintf(lang.L("What's new in %s"), res.AppVersion), lang.L("Close"),
		dialogs.NewWhatsNewDialog(), m.Window)
}

func (m *MainWindow) ShowAboutDialog() {
	dlg := dialogs.NewAboutDialog(m.appVersion)
	pop := widget.NewModalPopUp(dlg, m.Window.Canvas())
	dlg.OnDismiss = func() { m.closeModal(pop) }
	m.showModal(pop)
}

func (m *MainWindow) ShowSettingsDialog() {
	langStr := m.App.Config.Application.Language
	if langStr == "" || langStr == "auto" {
		langStr = lang.SystemLocale().LanguageString()
	}
	tag, err := language.Parse(langStr)
	if err != nil {
		tag = language.English
	}
	dlg := dialogs.NewSettingsDialog(m.App.Config, m.theme.ListThemeFiles(tag))
	dlg.OnThemeSettingChanged = m.applyTheme
	dlg.OnTickIntervalChanged = m.App.StopwatchManager.SetTickInterval
	pop := widget.NewModalPopUp(dlg, m.Window.Canvas())
	dlg.OnDismiss = func() {
		m.closeModal(pop)
		m.App.SaveConfigFile()
	}
	m.showModal(pop)
}

func (m *MainWindow) showModal(pop *widget.PopUp) {
	if m.modal != nil {
		m.modal.Hide()
	}
	m.modal = pop
	pop.Show()
}

func (m *MainWindow) closeModal(pop *widget.PopUp) {
	pop.Hide()
	if m.modal == pop {
		m.modal = nil
	}
}

func (m *MainWindow) addShortcuts() {
	sm := m.App.StopwatchManager
	if shortcuts.SettingsShortcut != nil {
		m.Canvas().AddShortcut(shortcuts.SettingsShortcut, func(_ fyne.Shortcut) {
			m.ShowSettingsDialog()
		})
	}
	if shortcuts.QuitShortcut != nil {
		m.Canvas().AddShortcut(shortcuts.QuitShortcut, func(_ fyne.Shortcut) {
			m.Quit()
		})
	}
	m.Canvas().AddShortcut(&shortcuts.ShortcutReset, func(_ fyne.Shortcut) {
		sm.Reset()
	})
	m.Canvas().AddShortcut(&shortcuts.ShortcutToggleTheme, func(_ fyne.Shortcut) {
		m.ToggleTheme()
	})
	m.Canvas().AddShortcut(&shortcuts.ShortcutCopyLaps, func(_ fyne.Shortcut) {
		m.CopyLapTimes()
	})
	m.Canvas().AddShortcut(&shortcuts.ShortcutCloseWindow, func(_ fyne.Shortcut) {
		if m.App.Config.Application.CloseToSystemTray && m.HaveSystemTray() {
			m.Window.Hide()
		}
	})

	m.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		switch e.Name {
		case fyne.KeyEscape:
			if m.modal != nil {
				m.closeModal(m.modal)
			}
		case fyne.KeySpace:
			sm.StartPause()
		case fyne.KeyL:
			sm.Lap()
		}
	})
}

func (m *MainWindow) Show() {
	m.Window.Show()
}

func (m *MainWindow) Canvas() fyne.Canvas {
	return m.Window.Canvas()
}

func (m *MainWindow) Quit() {
	m.SaveWindowSize()
	fyne.CurrentApp().Quit()
}

func (m *MainWindow) SaveWindowSize() {
	// round sizes to even to avoid Wayland issues with 2x scaling factor
	m.App.Config.Application.WindowHeight = int(math.RoundToEven(float64(m.Window.Canvas().Size().Height)))
	m.App.Config.Application.WindowWidth = int(math.RoundToEven(float64(m.Window.Canvas().Size().Width)))
}
