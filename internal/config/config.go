package config

import (
	"os"
	"strconv"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 30

	// Progress bar, measured from the bottom edge
	ProgressHeight = 14
	ProgressMargin = 20
	ProgressBottom = 36

	TicksPerSecond = 60
)

const envPrefix = "FALLING_CIRCLES_"

// Config is the runtime configuration. Zero Seed means seed from the clock.
type Config struct {
	Width  int
	Height int
	Seed   int64
	File   string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:  WindowWidth,
		Height: WindowHeight,
	}
}

// Load returns Default overridden by FALLING_CIRCLES_WIDTH, _HEIGHT, _SEED
// and _FILE. Unparseable or out of range values are ignored.
func Load() Config {
	cfg := Default()

	if v := os.Getenv(envPrefix + "WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Width = n
		}
	}
	if v := os.Getenv(envPrefix + "HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Height = n
		}
	}
	if v := os.Getenv(envPrefix + "SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	cfg.File = os.Getenv(envPrefix + "FILE")

	return cfg
}
