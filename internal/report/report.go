// Package report renders probe results for people and pipelines: encoded
// coefficient sets, day sweeps and plots.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sync"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/skyprobe/internal/skyfit"
	"github.com/Faultbox/skyprobe/pkg/preetham"
	"github.com/Faultbox/skyprobe/pkg/sh"
	"github.com/Faultbox/skyprobe/pkg/skysh"
)

// Entry is one probe result together with the inputs that produced it.
type Entry struct {
	Time        time.Time `yaml:"time,omitempty" json:"time,omitzero"`
	Sun         skysh.Sun `yaml:"sun" json:"sun"`
	Bands       int       `yaml:"bands" json:"bands"`
	SunIncluded bool      `yaml:"sun_included" json:"sun_included"`
	InFitDomain bool      `yaml:"in_fit_domain" json:"in_fit_domain"`
	// Sky summarizes the unscaled sky dome.
	Sky    preetham.Stats `yaml:"sky" json:"sky"`
	Coeffs sh.Coeffs      `yaml:"coeffs" json:"coeffs"`
}

// domeSamples is the quadrature the sky statistics are taken over.
var domeSamples = sync.OnceValue(func() []preetham.Sample {
	return skyfit.NewHemisphere(16, 32, 1).Samples()
})

// NewEntry runs a probe and wraps the result.
func NewEntry(p skysh.ProbeParams) (Entry, error) {
	c, err := skysh.Probe(p)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Sun:         p.Sun,
		Bands:       p.NumBands,
		SunIncluded: p.IncludeSun,
		InFitDomain: skysh.InFitDomain(p.Sun.Theta, p.Sun.Turbidity),
		Sky:         preetham.NewSky(p.Sun.Theta, p.Sun.Phi, p.Sun.Turbidity).Stats(domeSamples()),
		Coeffs:      c,
	}, nil
}

// Supported output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatText = "text"
)

// WriteCoeffs encodes entries to w in the given format.
func WriteCoeffs(w io.Writer, format string, entries ...Entry) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatText:
		return writeText(w, entries)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		if !e.Time.IsZero() {
			fmt.Fprintf(tw, "# %s\n", e.Time.Format(time.RFC3339))
		}
		fmt.Fprintf(tw, "# theta=%.4f (%.2f deg) phi=%.4f turbidity=%g bands=%d sun=%t\n",
			e.Sun.Theta, e.Sun.Theta*180/math.Pi, e.Sun.Phi, e.Sun.Turbidity, e.Bands, e.SunIncluded)
		fmt.Fprintf(tw, "# sky luminance min=%.4g avg=%.4g max=%.4g\n",
			e.Sky.LuminanceMin, e.Sky.LuminanceAverage, e.Sky.LuminanceMax)
		if !e.InFitDomain {
			fmt.Fprintln(tw, "# outside fitted domain; values are extrapolated")
		}
		fmt.Fprintln(tw, "l\tm\tr\tg\tb\t")
		for k := 0; k < e.Coeffs.Len(); k++ {
			l, m := sh.LM(k)
			fmt.Fprintf(tw, "%d\t%d\t%.6g\t%.6g\t%.6g\t\n", l, m, e.Coeffs.R[k], e.Coeffs.G[k], e.Coeffs.B[k])
		}
	}
	return tw.Flush()
}
