package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/lapwatch-app/lapwatch/backend"
	"github.com/lapwatch-app/lapwatch/backend/ipc"
	"github.com/lapwatch-app/lapwatch/res"
	"github.com/lapwatch-app/lapwatch/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/lang"
	"golang.org/x/term"
)

func main() {
	flag.Parse()
	if *backend.FlagVersion {
		fmt.Println(res.AppVersion)
		return
	}
	if *backend.FlagHelp {
		flag.PrintDefaults()
		return
	}
	if *backend.FlagStatus {
		printStatus()
		return
	}

	myApp, err := backend.StartupApp(res.AppName, res.DisplayName, res.AppVersionTag)
	if err != nil {
		if errors.Is(err, backend.ErrAnotherInstance) {
			return
		}
		log.Fatalf("fatal startup error: %v", err.Error())
	}

	loadTranslations(myApp.Config.Application.Language)

	if myApp.Config.Application.UIScaleSize == "Smaller" {
		os.Setenv("FYNE_SCALE", "0.85")
	} else if myApp.Config.Application.UIScaleSize == "Larger" {
		os.Setenv("FYNE_SCALE", "1.1")
	}

	fyneApp := app.New()
	fyneApp.SetIcon(res.ResAppiconSvg)

	w := float32(myApp.Config.Application.WindowWidth)
	if w <= 1 {
		w = 420
	}
	h := float32(myApp.Config.Application.WindowHeight)
	if h <= 1 {
		h = 640
	}
	mainWindow := ui.NewMainWindow(fyneApp, res.AppName, res.DisplayName, res.AppVersion, myApp, fyne.NewSize(w, h))
	myApp.OnReactivate = func() { fyne.Do(mainWindow.Show) }
	myApp.OnExit = func() { fyne.Do(mainWindow.Quit) }

	// commands given to the first instance apply to itself
	if err := backend.ApplyCommandLineOptions(localCommander{myApp, mainWindow}); err != nil {
		log.Printf("failed to apply command line options: %v", err)
	}

	go func() {
		// let the window finish mapping before any dialog is laid out over it
		if runtime.GOOS == "linux" {
			time.Sleep(250 * time.Millisecond)
		}
		fyne.Do(mainWindow.RunStartupTasks)
	}()

	mainWindow.Show()
	mainWindow.Window.SetCloseIntercept(func() {
		mainWindow.SaveWindowSize()
		if myApp.Config.Application.CloseToSystemTray &&
			mainWindow.HaveSystemTray() {
			mainWindow.Window.Hide()
		} else {
			fyneApp.Quit()
		}
	})
	fyneApp.Run()

	log.Println("Running shutdown tasks...")
	myApp.Shutdown()
}

func loadTranslations(configured string) {
	if configured != "" && configured != "auto" {
		for _, tr := range res.TranslationsInfo {
			if tr.Name != configured {
				continue
			}
			content, err := res.Translations.ReadFile("translations/" + tr.TranslationFileName)
			if err != nil {
				log.Printf("failed to read translation %s: %v", tr.Name, err)
				break
			}
			// register under the system locale so lookups resolve to the chosen language
			if err := lang.AddTranslationsForLocale(content, lang.SystemLocale()); err != nil {
				log.Printf("failed to load translation %s: %v", tr.Name, err)
				break
			}
			return
		}
	}
	if err := lang.AddTranslationsFS(res.Translations, "translations"); err != nil {
		log.Printf("failed to load translations: %v", err)
	}
}

func printStatus() {
	cli, err := ipc.Connect()
	if err != nil {
		log.Fatalf("no running %s instance: %v", res.DisplayName, err)
	}
	s, err := cli.Status()
	if err != nil {
		log.Fatalf("failed to query status: %v", err)
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("%s %s (%d laps)\n", s.Formatted, s.State, len(s.Laps))
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		log.Fatalf("failed to write status: %v", err)
	}
}

// localCommander applies command line options to this process's own stopwatch.
type localCommander struct {
	app *backend.App
	win *ui.MainWindow
}

var _ backend.StopwatchCommander = localCommander{}

func (l localCommander) Start() error      { l.app.StopwatchManager.Start(); return nil }
func (l localCommander) Pause() error      { l.app.StopwatchManager.Pause(); return nil }
func (l localCommander) StartPause() error { l.app.StopwatchManager.StartPause(); return nil }
func (l localCommander) Lap() error        { l.app.StopwatchManager.Lap(); return nil }
func (l localCommander) Reset() error      { l.app.StopwatchManager.Reset(); return nil }
func (l localCommander) ToggleTheme() error {
	l.win.ToggleTheme()
	return nil
}
