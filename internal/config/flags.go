package config

import (
	"flag"
	"strconv"
)

// Flags holds command-line overrides. Zero values leave the config alone.
type Flags struct {
	Config    string
	Debug     bool
	Bands     int
	Turbidity float64
	Ringing   bool
	NoSun     bool
	Format    string
	Out       string

	// Location overrides, set only by RegisterLocation. Latitude and
	// Longitude are nil unless given, since zero is a valid position.
	Latitude  *float64
	Longitude *float64
	Model     string
}

// Register adds the override flags to a command's flag set.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file (.yaml or .toml)")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.Bands, "bands", 0, "Number of SH bands (1-7)")
	fs.Float64Var(&f.Turbidity, "turbidity", 0, "Atmospheric turbidity")
	fs.BoolVar(&f.Ringing, "ringing", false, "Suppress ringing on the axial terms")
	fs.BoolVar(&f.NoSun, "no-sun", false, "Leave out the sun disc")
	fs.StringVar(&f.Format, "format", "", "Output format: yaml, json or text")
	fs.StringVar(&f.Out, "out", "", "Output file (default stdout)")
}

// RegisterLocation adds the -lat, -lon and -model overrides.
func (f *Flags) RegisterLocation(fs *flag.FlagSet) {
	fs.Func("lat", "Latitude in degrees north", floatFlag(&f.Latitude))
	fs.Func("lon", "Longitude in degrees east", floatFlag(&f.Longitude))
	fs.StringVar(&f.Model, "model", "", "Sun position model: suncalc or analytic")
}

func floatFlag(dst **float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return f.Config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Bands > 0 {
		cfg.Sky.Bands = f.Bands
	}
	if f.Turbidity > 0 {
		cfg.Sky.Turbidity = f.Turbidity
	}
	if f.Ringing {
		cfg.Sky.SuppressRinging = true
	}
	if f.NoSun {
		cfg.Sun.Enabled = false
	}
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
	if f.Out != "" {
		cfg.Output.Path = f.Out
	}
	if f.Latitude != nil {
		cfg.Location.Latitude = *f.Latitude
	}
	if f.Longitude != nil {
		cfg.Location.Longitude = *f.Longitude
	}
	if f.Model != "" {
		cfg.Location.Model = f.Model
	}
}
