package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"strconv"

	"github.com/BurntSushi/toml"
)

const (
	DefaultConfigDir  = "config"
	DefaultConfigFile = "vimgod.toml"
)

// DefaultConfigPath is checked when no config path is given
var DefaultConfigPath = path.Join(DefaultConfigDir, DefaultConfigFile)

// App is the application configuration
type App struct {
	// MaxRows is the viewport height; 0 fits the terminal
	MaxRows int `toml:"max_rows"`

	// InsertMode opens the insert family in every round, not only rounds that ask for it
	InsertMode bool `toml:"insert_mode"`

	Debug  bool    `toml:"debug"`
	Audio  bool    `toml:"audio"`
	Volume float64 `toml:"volume"`

	DBPath string `toml:"db_path"`
	Keymap string `toml:"keymap"`
	Drills string `toml:"drills"`
}

// Default returns the built-in configuration
func Default() *App {
	return &App{
		Audio:  true,
		Volume: 0.5,
		DBPath: "vimgod.db",
	}
}

// Load reads a TOML config file over the defaults
// Unknown keys are logged and ignored
func Load(configPath string) (*App, error) {
	cfg := Default()
	md, err := toml.DecodeFile(configPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("config: unknown key %q in %s", key.String(), configPath)
	}
	cfg.normalize()
	return cfg, nil
}

// LoadAuto loads config with priority: customPath > DefaultConfigPath > defaults
func LoadAuto(customPath string) (*App, error) {
	if customPath != "" {
		return Load(customPath)
	}
	if fileExists(DefaultConfigPath) {
		return Load(DefaultConfigPath)
	}
	return Default(), nil
}

// ApplyEnv overrides fields from VIMGOD_* environment variables
// Malformed values are ignored
func (a *App) ApplyEnv(getenv func(string) string) {
	if v := getenv("VIMGOD_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			a.Audio = b
		}
	}

	// Volume 0-100 converted to 0.0-1.0
	if v := getenv("VIMGOD_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			a.Volume = float64(n) / 100.0
		}
	}

	if v := getenv("VIMGOD_MAX_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			a.MaxRows = n
		}
	}

	if v := getenv("VIMGOD_DB"); v != "" {
		a.DBPath = v
	}
	a.normalize()
}

func (a *App) normalize() {
	a.MaxRows = max(a.MaxRows, 0)
	a.Volume = min(max(a.Volume, 0), 1)
}

// fileExists checks if a file exists and is not a directory
func fileExists(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
