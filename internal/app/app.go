// Package app wires configuration, preferences, the timer engine, and the
// terminal UI together.
package app

import (
	"context"
	"fmt"

	"github.com/tabatui/tabata/internal/config"
	"github.com/tabatui/tabata/internal/prefs"
	"github.com/tabatui/tabata/internal/timer"
	"github.com/tabatui/tabata/internal/ui"
)

// Options configure the tabata application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tabata/prefs.toml
	Theme      string // overrides config and prefs when set

	// Flag overrides for the interval settings; zero means "use config".
	On     uint64
	Off    uint64
	Cycles uint32
}

// Run boots the tabata TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if opts.On > 0 {
		cfg.DurationOn = opts.On
	}
	if opts.Off > 0 {
		cfg.DurationOff = opts.Off
	}
	if opts.Cycles > 0 {
		cfg.Cycles = opts.Cycles
	}

	// Theme precedence: flag, then config, then saved preference.
	themeName := opts.Theme
	if themeName == "" {
		themeName = cfg.Theme
	}
	if themeName == "" {
		themeName = prefs.Load(opts.PrefsPath).Theme
	}

	engine := timer.NewWithConfig(cfg.TimerConfig())

	return ui.Run(ui.Options{
		Context:   ctx,
		Engine:    engine,
		ThemeName: themeName,
		PrefsPath: opts.PrefsPath,
	})
}
