package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/Faultbox/skyprobe/pkg/sh"
)

var channelNames = [3]string{"red", "green", "blue"}

// PlotBands draws one line per SH coefficient of bands 0..maxBands-1 of the
// chosen channel (0 red, 1 green, 2 blue) against local hour of day, and
// saves the plot as an image at path. The format follows the extension.
func PlotBands(path string, entries []Entry, channel, maxBands int) error {
	if len(entries) == 0 {
		return fmt.Errorf("plot bands: no entries")
	}
	if channel < 0 || channel > 2 {
		return fmt.Errorf("plot bands: channel %d out of range 0..2", channel)
	}
	bands := min(maxBands, entries[0].Coeffs.Bands())
	if bands < 1 {
		return fmt.Errorf("plot bands: nothing to plot for %d bands", maxBands)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sky SH coefficients (%s) on %s", channelNames[channel], entries[0].Time.Format("2006-01-02"))
	p.X.Label.Text = "Hour"
	p.Y.Label.Text = "Coefficient"
	p.Add(plotter.NewGrid())

	for k := 0; k < sh.NumCoeffs(bands); k++ {
		pts := make(plotter.XYs, 0, len(entries))
		for _, e := range entries {
			values := e.Coeffs.Channels()[channel]
			if k >= len(values) {
				continue
			}
			t := e.Time
			hour := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
			pts = append(pts, plotter.XY{X: hour, Y: float64(values[k])})
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plot bands: coefficient %d: %w", k, err)
		}
		line.Color = plotutil.Color(k)
		line.Dashes = plotutil.Dashes(k / 7)
		line.Width = vg.Points(1)
		p.Add(line)

		l, m := sh.LM(k)
		p.Legend.Add(fmt.Sprintf("l=%d m=%d", l, m), line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save band plot: %w", err)
	}
	return nil
}
