package config

import (
	"flag"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Sky.Turbidity != 3 {
		t.Errorf("expected turbidity 3, got %v", cfg.Sky.Turbidity)
	}
	if cfg.Sky.Bands != 3 {
		t.Errorf("expected 3 bands, got %d", cfg.Sky.Bands)
	}
	if cfg.Sky.SuppressRinging {
		t.Error("expected ringing suppression to be off by default")
	}
	if cfg.Sky.Scale != 1 {
		t.Errorf("expected sky scale 1, got %v", cfg.Sky.Scale)
	}

	if !cfg.Sun.Enabled {
		t.Error("expected sun to be enabled by default")
	}
	if cfg.Sun.Theta != math.Pi/4 {
		t.Errorf("expected sun theta pi/4, got %v", cfg.Sun.Theta)
	}

	if cfg.Location.Model != "suncalc" {
		t.Errorf("expected model suncalc, got %s", cfg.Location.Model)
	}

	if cfg.Output.Format != "yaml" {
		t.Errorf("expected output format yaml, got %s", cfg.Output.Format)
	}
	if cfg.Output.Path != "" {
		t.Errorf("expected stdout output, got %s", cfg.Output.Path)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "skysh.yaml")

	yamlContent := `
sky:
  turbidity: 6.5
  bands: 5
  suppress_ringing: true
  scale: 0.001

sun:
  enabled: false
  scale: 0.5

location:
  latitude: 59.33
  longitude: 18.07
  model: analytic

output:
  format: json
  path: "probe.json"

logging:
  level: "debug"
  log_file: "skysh.log"
  format: json
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Sky.Turbidity != 6.5 {
		t.Errorf("expected turbidity 6.5, got %v", cfg.Sky.Turbidity)
	}
	if cfg.Sky.Bands != 5 {
		t.Errorf("expected 5 bands, got %d", cfg.Sky.Bands)
	}
	if !cfg.Sky.SuppressRinging {
		t.Error("expected suppress_ringing to be true")
	}
	if cfg.Sky.Scale != 0.001 {
		t.Errorf("expected sky scale 0.001, got %v", cfg.Sky.Scale)
	}

	if cfg.Sun.Enabled {
		t.Error("expected sun to be disabled")
	}
	// Keys absent from the file keep their defaults.
	if cfg.Sun.Theta != math.Pi/4 {
		t.Errorf("expected default sun theta, got %v", cfg.Sun.Theta)
	}

	if cfg.Location.Latitude != 59.33 || cfg.Location.Longitude != 18.07 {
		t.Errorf("unexpected location %v, %v", cfg.Location.Latitude, cfg.Location.Longitude)
	}
	if cfg.Location.Model != "analytic" {
		t.Errorf("expected model analytic, got %s", cfg.Location.Model)
	}

	if cfg.Output.Format != "json" {
		t.Errorf("expected format json, got %s", cfg.Output.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "skysh.log" {
		t.Errorf("expected log file 'skysh.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromTOMLFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "skysh.toml")

	tomlContent := `
[sky]
turbidity = 4.0
bands = 7

[location]
latitude = -33.9
longitude = 151.2
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Sky.Turbidity != 4 {
		t.Errorf("expected turbidity 4, got %v", cfg.Sky.Turbidity)
	}
	if cfg.Sky.Bands != 7 {
		t.Errorf("expected 7 bands, got %d", cfg.Sky.Bands)
	}
	if cfg.Location.Latitude != -33.9 {
		t.Errorf("expected latitude -33.9, got %v", cfg.Location.Latitude)
	}
	if cfg.Sky.Scale != 1 {
		t.Errorf("expected default sky scale, got %v", cfg.Sky.Scale)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
sky:
  bands: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/skysh.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero bands", func(c *Config) { c.Sky.Bands = 0 }, "sky.bands"},
		{"too many bands", func(c *Config) { c.Sky.Bands = 8 }, "sky.bands"},
		{"negative turbidity", func(c *Config) { c.Sky.Turbidity = -1 }, "sky.turbidity"},
		{"NaN turbidity", func(c *Config) { c.Sky.Turbidity = math.NaN() }, "sky.turbidity"},
		{"negative sky scale", func(c *Config) { c.Sky.Scale = -2 }, "sky.scale"},
		{"NaN sun scale", func(c *Config) { c.Sun.Scale = math.NaN() }, "sun.scale"},
		{"latitude", func(c *Config) { c.Location.Latitude = 91 }, "location.latitude"},
		{"longitude", func(c *Config) { c.Location.Longitude = -181 }, "location.longitude"},
		{"model", func(c *Config) { c.Location.Model = "ephemeris" }, "location.model"},
		{"format", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}

	// Turbidity outside the fitted range is allowed; it extrapolates.
	cfg := Default()
	cfg.Sky.Turbidity = 12
	if err := cfg.Validate(); err != nil {
		t.Errorf("turbidity 12 should be accepted: %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "skysh.toml"), []byte("[sky]\nbands = 2\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path != "./skysh.toml" {
		t.Errorf("expected ./skysh.toml, got %q", path)
	}

	// YAML wins when both exist.
	if err := os.WriteFile(filepath.Join(tmpDir, "skysh.yaml"), []byte("sky:\n  bands: 4\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path != "./skysh.yaml" {
		t.Errorf("expected ./skysh.yaml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		flags  Flags
		verify func(*testing.T, *Config)
	}{
		{
			name:  "debug flag",
			flags: Flags{Debug: true},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name:  "bands and turbidity",
			flags: Flags{Bands: 7, Turbidity: 9},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Sky.Bands != 7 {
					t.Errorf("expected 7 bands, got %d", cfg.Sky.Bands)
				}
				if cfg.Sky.Turbidity != 9 {
					t.Errorf("expected turbidity 9, got %v", cfg.Sky.Turbidity)
				}
			},
		},
		{
			name:  "ringing flag",
			flags: Flags{Ringing: true},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Sky.SuppressRinging {
					t.Error("expected ringing suppression with ringing flag")
				}
			},
		},
		{
			name:  "no-sun flag",
			flags: Flags{NoSun: true},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Sun.Enabled {
					t.Error("expected sun disabled with no-sun flag")
				}
			},
		},
		{
			name:  "output flags",
			flags: Flags{Format: "text", Out: "probe.txt"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.Format != "text" {
					t.Errorf("expected format text, got %s", cfg.Output.Format)
				}
				if cfg.Output.Path != "probe.txt" {
					t.Errorf("expected path probe.txt, got %s", cfg.Output.Path)
				}
			},
		},
		{
			name:  "location flags",
			flags: Flags{Latitude: ptr(-33.9), Longitude: ptr(0.0), Model: "analytic"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Location.Latitude != -33.9 {
					t.Errorf("expected latitude -33.9, got %v", cfg.Location.Latitude)
				}
				if cfg.Location.Longitude != 0 {
					t.Errorf("expected longitude 0, got %v", cfg.Location.Longitude)
				}
				if cfg.Location.Model != "analytic" {
					t.Errorf("expected model analytic, got %s", cfg.Location.Model)
				}
			},
		},
		{
			name:  "no flags",
			flags: Flags{},
			verify: func(t *testing.T, cfg *Config) {
				if *cfg != *Default() {
					t.Errorf("expected defaults untouched, got %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.flags.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "skysh.yaml")

	yamlContent := `
sky:
  turbidity: 5
  bands: 4
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(&Flags{Config: configPath, Bands: 6})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Bands from the flag, not the file.
	if cfg.Sky.Bands != 6 {
		t.Errorf("expected 6 bands from flag, got %d", cfg.Sky.Bands)
	}
	// Turbidity from the file since no flag overrides it.
	if cfg.Sky.Turbidity != 5 {
		t.Errorf("expected turbidity 5 from file, got %v", cfg.Sky.Turbidity)
	}
}

func ptr[T any](v T) *T { return &v }

func TestRegisterLocation(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Register(fs)
	f.RegisterLocation(fs)
	if err := fs.Parse([]string{"-lat", "0", "-model", "suncalc"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Latitude == nil || *f.Latitude != 0 {
		t.Errorf("expected explicit latitude 0, got %v", f.Latitude)
	}
	if f.Longitude != nil {
		t.Errorf("expected longitude unset, got %v", *f.Longitude)
	}
	if f.Model != "suncalc" {
		t.Errorf("expected model suncalc, got %s", f.Model)
	}

	if err := fs.Parse([]string{"-lon", "east"}); err == nil {
		t.Error("expected error for non-numeric longitude")
	}
}

func TestLoadFlagsRepairFileLocation(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "skysh.yaml")
	yamlContent := `
location:
  latitude: 100
  model: moon
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(&Flags{Config: configPath}); err == nil {
		t.Fatal("expected file alone to be rejected")
	}

	cfg, err := Load(&Flags{Config: configPath, Latitude: ptr(45.0), Model: "analytic"})
	if err != nil {
		t.Fatalf("expected flags to override invalid file values: %v", err)
	}
	if cfg.Location.Latitude != 45 || cfg.Location.Model != "analytic" {
		t.Errorf("unexpected location %+v", cfg.Location)
	}
}

func TestLoadRejectsInvalidResult(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "skysh.yaml")
	if err := os.WriteFile(configPath, []byte("sky:\n  bands: 3\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(&Flags{Config: configPath, Bands: 9}); err == nil {
		t.Error("expected error for 9 bands")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	for _, name := range []string{"out/skysh.yaml", "out/skysh.toml"} {
		t.Run(filepath.Ext(name), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			cfg := Default()
			cfg.Sky.Bands = 6
			cfg.Location.Latitude = 48.85
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("failed to save config: %v", err)
			}

			loaded := Default()
			if err := loadFromFile(loaded, path); err != nil {
				t.Fatalf("failed to reload config: %v", err)
			}
			if *loaded != *cfg {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
			}
		})
	}
}
