// Package config handles skysh configuration loading and management.
package config

import (
	"fmt"
	"math"

	"github.com/Faultbox/skyprobe/pkg/sh"
	"github.com/Faultbox/skyprobe/pkg/sunpos"
)

// Config holds all probe settings.
type Config struct {
	Sky      SkyConfig      `yaml:"sky" toml:"sky"`
	Sun      SunConfig      `yaml:"sun" toml:"sun"`
	Location LocationConfig `yaml:"location" toml:"location"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// SkyConfig holds sky expansion settings.
type SkyConfig struct {
	Turbidity       float64 `yaml:"turbidity" toml:"turbidity"`
	Bands           int     `yaml:"bands" toml:"bands"`
	SuppressRinging bool    `yaml:"suppress_ringing" toml:"suppress_ringing"`
	Scale           float64 `yaml:"scale" toml:"scale"`
}

// SunConfig holds sun disc settings. Theta and Phi (radians) are used when
// no time is given on the command line.
type SunConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Scale   float64 `yaml:"scale" toml:"scale"`
	Theta   float64 `yaml:"theta" toml:"theta"`
	Phi     float64 `yaml:"phi" toml:"phi"`
}

// LocationConfig places the observer for time-based sun positions.
type LocationConfig struct {
	Latitude  float64 `yaml:"latitude" toml:"latitude"`   // degrees north
	Longitude float64 `yaml:"longitude" toml:"longitude"` // degrees east
	Model     string  `yaml:"model" toml:"model"`
}

// OutputConfig holds report settings.
type OutputConfig struct {
	Format  string `yaml:"format" toml:"format"`
	Path    string `yaml:"path" toml:"path"` // empty writes to stdout
	PlotDir string `yaml:"plot_dir" toml:"plot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
	Format  string `yaml:"format" toml:"format"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sky: SkyConfig{
			Turbidity: 3,
			Bands:     3,
			Scale:     1,
		},
		Sun: SunConfig{
			Enabled: true,
			Scale:   1,
			Theta:   math.Pi / 4,
		},
		Location: LocationConfig{
			Model: string(sunpos.ModelSuncalc),
		},
		Output: OutputConfig{
			Format:  "yaml",
			PlotDir: ".",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports the first setting that no command could run with.
func (c *Config) Validate() error {
	switch {
	case c.Sky.Bands < 1 || c.Sky.Bands > sh.MaxBands:
		return fmt.Errorf("sky.bands %d out of range 1..%d", c.Sky.Bands, sh.MaxBands)
	case math.IsNaN(c.Sky.Turbidity) || math.IsInf(c.Sky.Turbidity, 0) || c.Sky.Turbidity <= 0:
		return fmt.Errorf("sky.turbidity must be a positive number, got %v", c.Sky.Turbidity)
	case !(c.Sky.Scale >= 0) || math.IsInf(c.Sky.Scale, 0):
		return fmt.Errorf("sky.scale must be non-negative, got %v", c.Sky.Scale)
	case !(c.Sun.Scale >= 0) || math.IsInf(c.Sun.Scale, 0):
		return fmt.Errorf("sun.scale must be non-negative, got %v", c.Sun.Scale)
	case c.Location.Latitude < -90 || c.Location.Latitude > 90:
		return fmt.Errorf("location.latitude %v out of range -90..90", c.Location.Latitude)
	case c.Location.Longitude < -180 || c.Location.Longitude > 180:
		return fmt.Errorf("location.longitude %v out of range -180..180", c.Location.Longitude)
	}

	switch sunpos.Model(c.Location.Model) {
	case sunpos.ModelSuncalc, sunpos.ModelAnalytic:
	default:
		return fmt.Errorf("unknown location.model %q", c.Location.Model)
	}
	switch c.Output.Format {
	case "yaml", "json", "text":
	default:
		return fmt.Errorf("unknown output.format %q", c.Output.Format)
	}
	return nil
}
