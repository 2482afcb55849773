package report

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/skyprobe/pkg/skysh"
	"github.com/Faultbox/skyprobe/pkg/sunpos"
)

// DayParams configures a sweep of probes over many times at one place.
type DayParams struct {
	Latitude  float64 // degrees north
	Longitude float64 // degrees east
	Model     sunpos.Model

	// Probe supplies everything but the sun direction, which each time
	// overrides.
	Probe skysh.ProbeParams

	Workers int
	Log     *zap.Logger
}

// DayTimes returns times from local midnight of day's date, step apart,
// covering 24 hours.
func DayTimes(day time.Time, step time.Duration) []time.Time {
	if step <= 0 {
		return nil
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)
	var times []time.Time
	for t := start; t.Before(end); t = t.Add(step) {
		times = append(times, t)
	}
	return times
}

// DayTable computes a probe for every time with the sun above the horizon.
// Probes run concurrently, each into its own buffers. Entries come back in
// the order of times.
func DayTable(ctx context.Context, p DayParams, times []time.Time) ([]Entry, error) {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	workers := p.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	slots := make([]*Entry, len(times))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, t := range times {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pos := sunpos.Locate(p.Model, t, p.Latitude, p.Longitude)
			if !pos.AboveHorizon() {
				log.Debug("sun below horizon", zap.Time("time", t), zap.Float64("theta", pos.Theta))
				return nil
			}

			params := p.Probe
			params.Sun.Theta, params.Sun.Phi = pos.Theta, pos.Phi
			e, err := NewEntry(params)
			if err != nil {
				return fmt.Errorf("probe at %s: %w", t.Format(time.RFC3339), err)
			}
			e.Time = t
			slots[i] = &e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(slots))
	for _, e := range slots {
		if e != nil {
			entries = append(entries, *e)
		}
	}
	log.Info("day table computed",
		zap.Int("times", len(times)),
		zap.Int("daylight", len(entries)),
	)
	return entries, nil
}
