package skysh

import "github.com/Faultbox/skyprobe/pkg/sh"

// ProbeParams configures a full sky probe.
type ProbeParams struct {
	Sun             Sun     `yaml:"sun" json:"sun"`
	NumBands        int     `yaml:"bands" json:"bands"`
	SuppressRinging bool    `yaml:"suppress_ringing" json:"suppress_ringing"`
	SkyScale        float64 `yaml:"sky_scale" json:"sky_scale"`
	// IncludeSun adds the sun disc on top of the sky.
	IncludeSun bool    `yaml:"include_sun" json:"include_sun"`
	SunScale   float64 `yaml:"sun_scale" json:"sun_scale"`
}

// Probe allocates a coefficient set, fills it with the sky and optionally
// adds the sun disc.
func Probe(p ProbeParams) (sh.Coeffs, error) {
	c, err := SkyCoefficients(p.Sun, p.NumBands, p.SuppressRinging, p.SkyScale)
	if err != nil {
		return sh.Coeffs{}, err
	}
	if p.IncludeSun {
		if err := AddSunDisc(p.Sun, p.NumBands, p.SunScale, c.R, c.G, c.B); err != nil {
			return sh.Coeffs{}, err
		}
	}
	return c, nil
}
