// skysh computes spherical-harmonic sky lighting coefficients from the
// command line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/skyprobe/internal/config"
	"github.com/Faultbox/skyprobe/internal/logger"
	"github.com/Faultbox/skyprobe/internal/report"
	"github.com/Faultbox/skyprobe/pkg/skysh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]
	defer logger.Sync()

	switch command {
	case "coeffs", "c":
		cmdCoeffs(args)
	case "day":
		cmdDay(args)
	case "plot":
		cmdPlot(args)
	case "sunpos", "sun":
		cmdSunpos(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`skysh - spherical-harmonic sky lighting coefficients

Usage:
  skysh <command> [options]

Commands:
  coeffs   Coefficients for one sun state (-theta/-phi or -time)
  day      Coefficients for every daylight step of a date at a location
  plot     Plot a day of coefficients to a PNG
  sunpos   Print the sun position at a time and place
  config   Print the effective config, or save it with -save

Common options:
  -config <file>   YAML or TOML config file
  -bands <n>       SH bands, 1-7
  -turbidity <t>   Atmospheric turbidity (fitted for 2-10)
  -ringing         Window the axial terms against ringing
  -no-sun          Leave out the sun disc
  -format <f>      yaml, json or text
  -out <file>      Write output to a file instead of stdout
  -debug           Debug logging

Examples:
  skysh coeffs -theta 0.6 -phi 1.2 -bands 4
  skysh coeffs -time 2024-06-21T12:00:00Z -lat 45 -lon 7 -format text
  skysh day -date 2024-06-21 -step 30m -lat 59.3 -lon 18.1 -format json -out day.json
  skysh plot -date 2024-12-21 -lat 45 -channel g
  skysh sunpos -lat 51.5 -lon -0.1`)
}

// command bundles a subcommand's flag set with the config it resolves to.
type command struct {
	fs    *flag.FlagSet
	flags config.Flags
	cfg   *config.Config
}

func newCommand(name string) *command {
	c := &command{fs: flag.NewFlagSet(name, flag.ExitOnError)}
	c.flags.Register(c.fs)
	return c
}

// withLocation adds -lat, -lon and -model overrides.
func (c *command) withLocation() *command {
	c.flags.RegisterLocation(c.fs)
	return c
}

// load parses args, resolves the config and starts logging.
func (c *command) load(args []string) {
	c.fs.Parse(args)

	cfg, err := config.Load(&c.flags)
	if err != nil {
		fatalf("Config error: %v", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.LogFile); err != nil {
		fatalf("Logger error: %v", err)
	}
	logger.Sugar.Debugf("Config: %+v", cfg)
	c.cfg = cfg
}

// probeParams builds probe inputs from the config for one sun direction.
func probeParams(cfg *config.Config, theta, phi float64) skysh.ProbeParams {
	return skysh.ProbeParams{
		Sun: skysh.Sun{
			Theta:     theta,
			Phi:       phi,
			Turbidity: cfg.Sky.Turbidity,
		},
		NumBands:        cfg.Sky.Bands,
		SuppressRinging: cfg.Sky.SuppressRinging,
		SkyScale:        cfg.Sky.Scale,
		IncludeSun:      cfg.Sun.Enabled,
		SunScale:        cfg.Sun.Scale,
	}
}

func warnOutsideDomain(s skysh.Sun) {
	if !skysh.InFitDomain(s.Theta, s.Turbidity) {
		logger.Warn("sun state outside fitted domain, coefficients are extrapolated",
			zap.Float64("theta", s.Theta),
			zap.Float64("turbidity", s.Turbidity),
		)
	}
}

// writeEntries encodes entries to the configured output file, or stdout.
func writeEntries(cfg *config.Config, entries ...report.Entry) error {
	if cfg.Output.Path == "" {
		return report.WriteCoeffs(os.Stdout, cfg.Output.Format, entries...)
	}
	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		return err
	}
	return writeAndClose(f, cfg.Output.Format, entries...)
}

// writeAndClose reports a failed Close as well as a failed write, since
// buffered data may only reach the file on Close.
func writeAndClose(w io.WriteCloser, format string, entries ...report.Entry) error {
	err := report.WriteCoeffs(w, format, entries...)
	if cerr := w.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	return err
}

func fatalf(format string, args ...any) {
	logger.Sync()
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
