package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/skyprobe/internal/logger"
	"github.com/Faultbox/skyprobe/internal/report"
	"github.com/Faultbox/skyprobe/pkg/sunpos"
)

func cmdCoeffs(args []string) {
	c := newCommand("coeffs").withLocation()
	theta := c.fs.Float64("theta", math.NaN(), "Sun zenith angle in radians (default from config)")
	phi := c.fs.Float64("phi", math.NaN(), "Sun azimuth in radians from south, positive west (default from config)")
	at := c.fs.String("time", "", "Place the sun by time (RFC3339) and location instead")
	c.load(args)
	cfg := c.cfg

	sunTheta, sunPhi := cfg.Sun.Theta, cfg.Sun.Phi
	var when time.Time
	if *at != "" {
		var err error
		when, err = time.Parse(time.RFC3339, *at)
		if err != nil {
			fatalf("Error: bad -time: %v", err)
		}
		pos := sunpos.Locate(sunpos.Model(cfg.Location.Model), when, cfg.Location.Latitude, cfg.Location.Longitude)
		if !pos.AboveHorizon() {
			logger.Warn("sun is below the horizon", zap.Time("time", when), zap.Float64("elevation", pos.Elevation()))
		}
		sunTheta, sunPhi = pos.Theta, pos.Phi
	}
	if !math.IsNaN(*theta) {
		sunTheta = *theta
	}
	if !math.IsNaN(*phi) {
		sunPhi = *phi
	}

	params := probeParams(cfg, sunTheta, sunPhi)
	warnOutsideDomain(params.Sun)
	entry, err := report.NewEntry(params)
	if err != nil {
		fatalf("Error: %v", err)
	}
	entry.Time = when

	if err := writeEntries(cfg, entry); err != nil {
		fatalf("Error: %v", err)
	}
}

// sweep runs the day table shared by the day and plot commands.
func sweep(c *command, date string, step time.Duration) []report.Entry {
	cfg := c.cfg
	day := time.Now()
	if date != "" {
		var err error
		day, err = time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			fatalf("Error: bad -date: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	params := report.DayParams{
		Latitude:  cfg.Location.Latitude,
		Longitude: cfg.Location.Longitude,
		Model:     sunpos.Model(cfg.Location.Model),
		Probe:     probeParams(cfg, 0, 0),
		Log:       logger.Named("report"),
	}
	entries, err := report.DayTable(ctx, params, report.DayTimes(day, step))
	if err != nil {
		fatalf("Error: %v", err)
	}
	if len(entries) == 0 {
		logger.Warn("sun never rises on this date", zap.String("date", day.Format("2006-01-02")))
	}
	warnOutsideDomain(params.Probe.Sun)
	return entries
}

func cmdDay(args []string) {
	c := newCommand("day").withLocation()
	date := c.fs.String("date", "", "Date as YYYY-MM-DD in local time (default today)")
	step := c.fs.Duration("step", time.Hour, "Time between probes")
	c.load(args)

	entries := sweep(c, *date, *step)

	if err := writeEntries(c.cfg, entries...); err != nil {
		fatalf("Error: %v", err)
	}
}

func cmdPlot(args []string) {
	c := newCommand("plot").withLocation()
	date := c.fs.String("date", "", "Date as YYYY-MM-DD in local time (default today)")
	step := c.fs.Duration("step", 15*time.Minute, "Time between probes")
	channel := c.fs.String("channel", "g", "Channel to plot: r, g or b")
	maxBands := c.fs.Int("plot-bands", 3, "Plot bands 0..n-1")
	c.load(args)

	ch, err := parseChannel(*channel)
	if err != nil {
		fatalf("Error: %v", err)
	}

	entries := sweep(c, *date, *step)
	if len(entries) == 0 {
		fatalf("Error: nothing to plot")
	}

	path := c.cfg.Output.Path
	if path == "" {
		name := fmt.Sprintf("sky-%s-%s.png", entries[0].Time.Format("2006-01-02"), *channel)
		path = filepath.Join(c.cfg.Output.PlotDir, name)
	}
	if err := report.PlotBands(path, entries, ch, *maxBands); err != nil {
		fatalf("Error: %v", err)
	}
	logger.Info("plot written", zap.String("path", path), zap.Int("entries", len(entries)))
}

func parseChannel(s string) (int, error) {
	switch strings.ToLower(s) {
	case "r", "red":
		return 0, nil
	case "g", "green":
		return 1, nil
	case "b", "blue":
		return 2, nil
	}
	return 0, fmt.Errorf("unknown channel %q", s)
}

func cmdSunpos(args []string) {
	c := newCommand("sunpos").withLocation()
	at := c.fs.String("time", "", "Time as RFC3339 (default now)")
	c.load(args)
	cfg := c.cfg

	t := time.Now()
	if *at != "" {
		var err error
		t, err = time.Parse(time.RFC3339, *at)
		if err != nil {
			fatalf("Error: bad -time: %v", err)
		}
	}

	pos := sunpos.Locate(sunpos.Model(cfg.Location.Model), t, cfg.Location.Latitude, cfg.Location.Longitude)
	dir := pos.Direction()
	fmt.Printf("Time:      %s\n", t.Format(time.RFC3339))
	fmt.Printf("Location:  %.4f, %.4f (%s)\n", cfg.Location.Latitude, cfg.Location.Longitude, cfg.Location.Model)
	fmt.Printf("Theta:     %.6f rad (%.2f deg from zenith)\n", pos.Theta, pos.Theta*180/math.Pi)
	fmt.Printf("Phi:       %.6f rad (%.2f deg from south, west positive)\n", pos.Phi, pos.Phi*180/math.Pi)
	fmt.Printf("Elevation: %.2f deg\n", pos.Elevation()*180/math.Pi)
	fmt.Printf("Direction: (%.4f, %.4f, %.4f)\n", dir.X, dir.Y, dir.Z)
	if !pos.AboveHorizon() {
		fmt.Println("Sun is below the horizon")
	}
}

func cmdConfig(args []string) {
	c := newCommand("config").withLocation()
	save := c.fs.String("save", "", "Write the config to this path (\"user\" for the user config dir)")
	c.load(args)

	switch *save {
	case "":
		data, err := c.cfg.Marshal(false)
		if err != nil {
			fatalf("Error: %v", err)
		}
		os.Stdout.Write(data)
	case "user":
		path, err := c.cfg.Save()
		if err != nil {
			fatalf("Error: %v", err)
		}
		logger.Info("config saved", zap.String("path", path))
	default:
		if err := c.cfg.SaveTo(*save); err != nil {
			fatalf("Error: %v", err)
		}
		logger.Info("config saved", zap.String("path", *save))
	}
}
