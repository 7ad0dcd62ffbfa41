package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/tabatui/tabata/internal/timer"
)

// Config captures the user-tunable settings for tabata.
type Config struct {
	DurationOn  uint64 // default work interval in seconds
	DurationOff uint64 // default rest interval in seconds
	Cycles      uint32 // default number of on/off pairs
	Theme       string // theme name; empty uses the prefs file or default
	WebListen   string // address the serve command binds to
	WebDir      string // directory of pre-built front-end assets
}

const (
	defaultConfigPath = "~/.config/tabata/config.toml"
	defaultWebListen  = "127.0.0.1:8000"
	defaultWebDir     = "static"
)

// Load locates and parses the tabata config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DurationOn  uint64 `toml:"duration_on"`
		DurationOff uint64 `toml:"duration_off"`
		Cycles      uint32 `toml:"cycles"`
		Theme       string `toml:"theme"`
		WebListen   string `toml:"web_listen"`
		WebDir      string `toml:"web_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.DurationOn > 0 {
		cfg.DurationOn = raw.DurationOn
	}
	if raw.DurationOff > 0 {
		cfg.DurationOff = raw.DurationOff
	}
	if raw.Cycles > 0 {
		cfg.Cycles = raw.Cycles
	}
	cfg.Theme = strings.TrimSpace(raw.Theme)

	if listen := strings.TrimSpace(raw.WebListen); listen != "" {
		cfg.WebListen = listen
	}
	if dir := strings.TrimSpace(raw.WebDir); dir != "" {
		cfg.WebDir = mustExpand(dir)
	}

	return cfg, nil
}

// TimerConfig returns the timer engine configuration held by this config.
func (c Config) TimerConfig() timer.Config {
	return timer.Config{DurationOn: c.DurationOn, DurationOff: c.DurationOff, Cycles: c.Cycles}
}

func defaults() Config {
	base := timer.DefaultConfig()
	return Config{
		DurationOn:  base.DurationOn,
		DurationOff: base.DurationOff,
		Cycles:      base.Cycles,
		WebListen:   defaultWebListen,
		WebDir:      defaultWebDir,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
