package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/SteveIsnthere/drawer-by-steve/internal/drawer"
)

// Config holds the application configuration.
type Config struct {
	Theme string `yaml:"theme"`

	BreakpointPx float64 `yaml:"breakpoint_px"`
	CellWidthPx  float64 `yaml:"cell_width_px"`
	CellHeightPx float64 `yaml:"cell_height_px"`
	PanelWidthPx float64 `yaml:"panel_width_px"`

	OpenControlDelay time.Duration `yaml:"open_control_delay"`
	CloseFallback    time.Duration `yaml:"close_fallback"`

	DismissOffset   float64 `yaml:"dismiss_offset"`
	DismissVelocity float64 `yaml:"dismiss_velocity"`
	Elastic         float64 `yaml:"elastic"`

	LogFile string `yaml:"log_file"`
	Debug   bool   `yaml:"debug"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:            "catppuccin-mocha",
		BreakpointPx:     drawer.DefaultBreakpoint,
		CellWidthPx:      8,
		CellHeightPx:     16,
		PanelWidthPx:     600,
		OpenControlDelay: drawer.DefaultTimings.OpenControlDelay,
		CloseFallback:    drawer.DefaultTimings.CloseFallback,
		DismissOffset:    drawer.DefaultThresholds.Offset,
		DismissVelocity:  drawer.DefaultThresholds.Velocity,
		Elastic:          drawer.DefaultElastic,
	}
}

// Validate reports every setting that would make the drawer misbehave.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("breakpoint_px", c.BreakpointPx)
	positive("cell_width_px", c.CellWidthPx)
	positive("cell_height_px", c.CellHeightPx)
	positive("panel_width_px", c.PanelWidthPx)
	positive("dismiss_offset", c.DismissOffset)
	positive("dismiss_velocity", c.DismissVelocity)
	if c.OpenControlDelay <= 0 {
		errs = append(errs, fmt.Errorf("open_control_delay must be positive, got %s", c.OpenControlDelay))
	}
	if c.CloseFallback <= 0 {
		errs = append(errs, fmt.Errorf("close_fallback must be positive, got %s", c.CloseFallback))
	}
	if c.Elastic < 0 || c.Elastic > 1 {
		errs = append(errs, fmt.Errorf("elastic must be within [0, 1], got %v", c.Elastic))
	}
	return errors.Join(errs...)
}

// Timings returns the controller timers.
func (c Config) Timings() drawer.Timings {
	return drawer.Timings{
		OpenControlDelay: c.OpenControlDelay,
		CloseFallback:    c.CloseFallback,
	}
}

// Thresholds returns the dismiss thresholds.
func (c Config) Thresholds() drawer.Thresholds {
	return drawer.Thresholds{
		Offset:   c.DismissOffset,
		Velocity: c.DismissVelocity,
	}
}
