package backend

import (
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

const (
	AppearanceLight = "Light"
	AppearanceDark  = "Dark"
	AppearanceAuto  = "Auto"
)

type AppConfig struct {
	WindowWidth         int
	WindowHeight        int
	LastLaunchedVersion string
	EnableSystemTray    bool
	CloseToSystemTray   bool
	AllowMultiInstance  bool
	Language            string

	// Experimental - may be removed in future
	UIScaleSize string
}

type StopwatchConfig struct {
	// Nominal tick period. Each tick adds exactly this much to the elapsed time.
	TickIntervalMS int
}

type ThemeConfig struct {
	ThemeFile  string
	Appearance string
}

type Config struct {
	Application AppConfig
	Stopwatch   StopwatchConfig
	Theme       ThemeConfig
}

func DefaultConfig(appVersionTag string) *Config {
	return &Config{
		Application: AppConfig{
			WindowWidth:         420,
			WindowHeight:        640,
			LastLaunchedVersion: "",
			EnableSystemTray:    true,
			CloseToSystemTray:   false,
			AllowMultiInstance:  false,
			Language:            "auto",
			UIScaleSize:         "Normal",
		},
		Stopwatch: StopwatchConfig{
			TickIntervalMS: 10,
		},
		Theme: ThemeConfig{
			Appearance: AppearanceLight,
		},
	}
}

func ReadConfigFile(filepath, appVersionTag string) (*Config, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := DefaultConfig(appVersionTag)
	if err := toml.NewDecoder(f).Decode(c); err != nil {
		return nil, err
	}

	c.Stopwatch.TickIntervalMS = clamp(c.Stopwatch.TickIntervalMS, 1, 1000)
	switch c.Theme.Appearance {
	case AppearanceLight, AppearanceDark, AppearanceAuto:
	default:
		c.Theme.Appearance = AppearanceLight
	}

	return c, nil
}

var writeLock sync.Mutex

func (c *Config) WriteConfigFile(filepath string) error {
	if !writeLock.TryLock() {
		return nil // another write in progress
	}
	defer writeLock.Unlock()

	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, b, 0644)
}
