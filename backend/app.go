package backend

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/lapwatch-app/lapwatch/backend/ipc"
	"github.com/lapwatch-app/lapwatch/backend/util"
	"github.com/lapwatch-app/lapwatch/stopwatch"

	"github.com/20after4/configdir"
	"github.com/fsnotify/fsnotify"
)

const (
	configFile  = "config.toml"
	portableDir = "lapwatch_portable"
	themesDir   = "themes"
)

var (
	ErrAnotherInstance = errors.New("another instance is running")
)

var _ ipc.WindowHandler = (*App)(nil)

type App struct {
	Config           *Config
	StopwatchManager *StopwatchManager
	MPRISHandler     *MPRISHandler

	// UI callbacks to be set in main
	OnReactivate        func()
	OnExit              func()
	OnToggleTheme       func()
	OnThemeFilesChanged func()

	appName       string
	appVersionTag string
	configDir     string
	portableMode  bool

	isFirstLaunch bool // set by config file reader
	bgrndCtx      context.Context
	cancel        context.CancelFunc
	ipcListener   net.Listener
	ipcServer     *http.Server

	lastWrittenCfg Config
}

func (a *App) VersionTag() string {
	return a.appVersionTag
}

func StartupApp(appName, displayAppName, appVersionTag string) (*App, error) {
	var confDir string
	portableMode := false
	if p := checkPortablePath(); p != "" {
		confDir = path.Join(p, "config")
		portableMode = true
		ipc.SetSocketDir(p)
	} else {
		confDir = configdir.LocalConfig(appName)
	}
	// ensure config dir exists
	configdir.MakePath(confDir)

	a := &App{
		appName:       appName,
		appVersionTag: appVersionTag,
		configDir:     confDir,
		portableMode:  portableMode,
	}
	a.readConfig()

	if cli, err := ipc.Connect(); err == nil {
		if HaveCommandLineOptions() {
			log.Println("Another instance is running. Forwarding commands...")
			if err := ApplyCommandLineOptions(cli); err != nil {
				log.Printf("failed to forward command: %v", err)
			}
			return nil, ErrAnotherInstance
		}
		if !a.Config.Application.AllowMultiInstance {
			log.Println("Another instance is running. Reactivating it...")
			cli.Show()
			return nil, ErrAnotherInstance
		}
	}

	log.Printf("Starting %s...", appName)
	log.Printf("Using config dir: %s", confDir)

	a.bgrndCtx, a.cancel = context.WithCancel(context.Background())
	a.startConfigWriter(a.bgrndCtx)

	a.StopwatchManager = NewStopwatchManager(
		stopwatch.NewTickerScheduler(a.bgrndCtx), &a.Config.Stopwatch, time.Now)

	if listener, err := ipc.Listen(); err == nil {
		a.ipcListener = listener
		a.ipcServer = ipc.NewServer(a.StopwatchManager, a)
		go a.ipcServer.Serve(listener)
	} else {
		log.Printf("failed to start IPC listener: %v", err)
	}

	// OS media center integration
	a.setupMPRIS(displayAppName)

	configdir.MakePath(a.ThemesDir())
	a.startThemeWatcher(a.ThemesDir())

	return a, nil
}

func (a *App) IsFirstLaunch() bool {
	return a.isFirstLaunch
}

func (a *App) IsPortableMode() bool {
	return a.portableMode
}

func (a *App) ThemesDir() string {
	return filepath.Join(a.configDir, themesDir)
}

func checkPortablePath() string {
	if p, err := os.Executable(); err == nil {
		pdirPath := path.Join(filepath.Dir(p), portableDir)
		if s, err := os.Stat(pdirPath); err == nil && s.IsDir() {
			return pdirPath
		}
	}
	return ""
}

func (a *App) readConfig() {
	cfgPath := a.configFilePath()
	var cfgExists bool
	if _, err := os.Stat(cfgPath); err == nil {
		cfgExists = true
	}
	a.isFirstLaunch = !cfgExists
	cfg, err := ReadConfigFile(cfgPath, a.appVersionTag)
	if err != nil {
		if cfgExists {
			log.Printf("Error reading app config file: %v", err)
		}
		cfg = DefaultConfig(a.appVersionTag)
		if cfgExists {
			backupCfgName := fmt.Sprintf("%s.bak", configFile)
			log.Printf("Config file may be malformed: copying to %s", backupCfgName)
			_ = util.CopyFile(cfgPath, path.Join(a.configDir, backupCfgName))
		}
	}
	a.Config = cfg
}

// notifies the UI when a theme file is added, changed or removed
func (a *App) startThemeWatcher(dir string) {
	themeWatch, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("failed to create theme watcher: %v", err)
		return
	}
	if err := themeWatch.Add(dir); err != nil {
		log.Printf("failed to watch themes dir: %v", err)
		themeWatch.Close()
		return
	}
	go func() {
		defer themeWatch.Close()
		for {
			select {
			case <-a.bgrndCtx.Done():
				return
			case err, ok := <-themeWatch.Errors:
				if !ok {
					return
				}
				log.Printf("theme watcher error: %v", err)
			case e, ok := <-themeWatch.Events:
				if !ok {
					return
				}
				if !strings.EqualFold(filepath.Ext(e.Name), ".toml") || e.Has(fsnotify.Chmod) {
					continue
				}
				if a.OnThemeFilesChanged != nil {
					a.OnThemeFilesChanged()
				}
			}
		}
	}()
}

// periodically save config file so abnormal exit won't lose settings
func (a *App) startConfigWriter(ctx context.Context) {
	tick := time.NewTicker(2 * time.Minute)
	go func() {
		for {
			select {
			case <-ctx.Done():
				tick.Stop()
				return
			case <-tick.C:
				if a.lastWrittenCfg != *a.Config {
					a.SaveConfigFile()
				}
			}
		}
	}()
}

func (a *App) callOnReactivate() {
	if a.OnReactivate != nil {
		a.OnReactivate()
	}
}

// ipc.WindowHandler implementation

func (a *App) Show() {
	a.callOnReactivate()
}

func (a *App) Quit() {
	if a.OnExit != nil {
		a.OnExit()
	}
}

func (a *App) ToggleTheme() {
	if a.OnToggleTheme != nil {
		a.OnToggleTheme()
	}
}

func (a *App) setupMPRIS(mprisAppName string) {
	a.MPRISHandler = NewMPRISHandler(mprisAppName, a.StopwatchManager)
	a.MPRISHandler.OnRaise = func() error { a.callOnReactivate(); return nil }
	a.MPRISHandler.OnQuit = func() error {
		if a.OnExit == nil {
			return errors.New("no quit handler registered")
		}
		go func() {
			time.Sleep(10 * time.Millisecond)
			a.OnExit()
		}()
		return nil
	}
	a.MPRISHandler.Start()
}

func (a *App) Shutdown() {
	a.MPRISHandler.Shutdown()
	a.StopwatchManager.Shutdown()
	a.cancel()
	if a.ipcServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		if err := a.ipcServer.Shutdown(ctx); err != nil {
			log.Printf("failed to shut down IPC server: %v", err)
		}
		cancel()
		ipc.DestroyConn()
	}
	a.SaveConfigFile()
}

func (a *App) SaveConfigFile() {
	if err := a.Config.WriteConfigFile(a.configFilePath()); err != nil {
		log.Printf("failed to save config file: %v", err)
		return
	}
	a.lastWrittenCfg = *a.Config
}

func (a *App) configFilePath() string {
	return path.Join(a.configDir, configFile)
}

func clamp(i, min, max int) int {
	if i < min {
		i = min
	} else if i > max {
		i = max
	}
	return i
}
