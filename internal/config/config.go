// Package config loads simulator settings from YAML files, environment
// variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"torus-life/internal/sims/life"
)

// Settings contains all simulator settings.
type Settings struct {
	// Grid fixes the board extent.
	Grid GridSettings `yaml:"grid"`

	// Run bounds the timed simulation.
	Run RunSettings `yaml:"run"`

	// Logging configures operational logging.
	Logging LoggingSettings `yaml:"logging"`

	// UI tunes the graphical front end.
	UI UISettings `yaml:"ui"`
}

// GridSettings sizes the board.
type GridSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RunSettings bounds a run.
type RunSettings struct {
	// MaxTicks is the number of generations a run applies before finishing.
	MaxTicks int `yaml:"max_ticks"`

	// TickDelay is the pause between the end of one tick and the next.
	TickDelay time.Duration `yaml:"tick_delay"`
}

// LoggingSettings configures logging.
type LoggingSettings struct {
	// Level is "debug", "info" (default), "warn" or "error".
	Level string `yaml:"level"`

	// File receives log output. Empty discards it and "-" means stderr.
	File string `yaml:"file"`
}

// UISettings tunes the ebiten window.
type UISettings struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

// Default returns the standard settings.
func Default() *Settings {
	lc := life.DefaultConfig()
	return &Settings{
		Grid:    GridSettings{Width: lc.Width, Height: lc.Height},
		Run:     RunSettings{MaxTicks: lc.MaxTicks, TickDelay: lc.TickDelay},
		Logging: LoggingSettings{Level: "info", File: "-"},
		UI:      UISettings{Scale: 16, TPS: 60},
	}
}

// LoadFromFile loads settings from a YAML file on top of the defaults and
// applies environment overrides.
func LoadFromFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	applyEnvOverrides(s)
	return s, nil
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if err := s.Life().Validate(); err != nil {
		return err
	}
	if s.UI.Scale <= 0 {
		return fmt.Errorf("ui scale must be positive, got %d", s.UI.Scale)
	}
	if s.UI.TPS <= 0 {
		return fmt.Errorf("ui tps must be positive, got %d", s.UI.TPS)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if s.Logging.Level != "" && !validLevels[strings.ToLower(s.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error, or empty for default)", s.Logging.Level)
	}
	return nil
}

// Life converts the grid and run sections into a simulation config.
func (s *Settings) Life() life.Config {
	return life.Config{
		Width:     s.Grid.Width,
		Height:    s.Grid.Height,
		MaxTicks:  s.Run.MaxTicks,
		TickDelay: s.Run.TickDelay,
	}
}

// Bind attaches the settings to the provided FlagSet.
func (s *Settings) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&s.Grid.Width, "width", s.Grid.Width, "grid width in cells")
	fs.IntVar(&s.Grid.Height, "height", s.Grid.Height, "grid height in cells")
	fs.IntVar(&s.Run.MaxTicks, "max-ticks", s.Run.MaxTicks, "generations per run")
	fs.DurationVar(&s.Run.TickDelay, "tick-delay", s.Run.TickDelay, "delay between generations")
	fs.StringVar(&s.Logging.Level, "log-level", s.Logging.Level, "log level: debug, info, warn, error")
	fs.StringVar(&s.Logging.File, "log-file", s.Logging.File, "log destination file (\"-\" for stderr)")
	fs.IntVar(&s.UI.Scale, "scale", s.UI.Scale, "pixel scale multiplier for the gui")
	fs.IntVar(&s.UI.TPS, "tps", s.UI.TPS, "gui frames per second")
}

// Overlay copies into s every value from src whose flag was set explicitly
// on fs, so command-line flags win over file settings.
func (s *Settings) Overlay(src *Settings, fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "width":
			s.Grid.Width = src.Grid.Width
		case "height":
			s.Grid.Height = src.Grid.Height
		case "max-ticks":
			s.Run.MaxTicks = src.Run.MaxTicks
		case "tick-delay":
			s.Run.TickDelay = src.Run.TickDelay
		case "log-level":
			s.Logging.Level = src.Logging.Level
		case "log-file":
			s.Logging.File = src.Logging.File
		case "scale":
			s.UI.Scale = src.UI.Scale
		case "tps":
			s.UI.TPS = src.UI.TPS
		}
	})
}

// applyEnvOverrides applies environment variable overrides to the settings.
func applyEnvOverrides(s *Settings) {
	if v := os.Getenv("LIFE_LOG_LEVEL"); v != "" {
		s.Logging.Level = v
	}
	if v := os.Getenv("LIFE_LOG_FILE"); v != "" {
		s.Logging.File = v
	}
}

// Resolve produces the effective settings: defaults, then the YAML file at
// path when one is given, then the flags explicitly set on fs.
func Resolve(path string, flagged *Settings, fs *pflag.FlagSet) (*Settings, error) {
	s := Default()
	if path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		s = loaded
	} else {
		applyEnvOverrides(s)
	}
	s.Overlay(flagged, fs)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
