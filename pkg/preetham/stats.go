package preetham

import "math"

// Once the sun sinks this far below the horizon the Perez fit is no longer
// meaningful and Stats reports a fixed night sky instead.
const (
	NightSunTheta  = 1.7308109 // about 9.2 degrees below the horizon
	NightLuminance = 500.0     // cd/m²
)

var nightColor = RGB{13, 21, 38}

// NightAmbient is the ambient color used once the sun is below NightSunTheta,
// scaled to NightLuminance.
func NightAmbient() RGB {
	return nightColor.Scale(NightLuminance / Luminance(nightColor))
}

// Sample is one sky direction with its quadrature weight.
type Sample struct {
	Theta, Phi float64
	Weight     float64
}

// Stats summarizes the sky dome for one sun state.
type Stats struct {
	LuminanceMin     float64 `yaml:"luminance_min" json:"luminance_min"`
	LuminanceMax     float64 `yaml:"luminance_max" json:"luminance_max"`
	LuminanceAverage float64 `yaml:"luminance_average" json:"luminance_average"`
	Ambient          RGB     `yaml:"ambient" json:"ambient"`
	Night            bool    `yaml:"night,omitempty" json:"night,omitempty"`
}

// Stats evaluates the sky at samples and returns the luminance range, the
// weighted average luminance and the weighted average color. Below
// NightSunTheta the fixed night sky is returned instead.
func (s *Sky) Stats(samples []Sample) Stats {
	if s.SunTheta > NightSunTheta {
		return Stats{
			LuminanceMin:     NightLuminance,
			LuminanceMax:     NightLuminance,
			LuminanceAverage: NightLuminance,
			Ambient:          NightAmbient(),
			Night:            true,
		}
	}

	st := Stats{LuminanceMin: math.Inf(1)}
	var weights float64
	for _, d := range samples {
		c := s.Radiance(d.Theta, d.Phi)
		lum := Luminance(c)
		st.LuminanceMin = math.Min(st.LuminanceMin, lum)
		st.LuminanceMax = math.Max(st.LuminanceMax, lum)
		st.LuminanceAverage += d.Weight * lum
		for ch := range c {
			st.Ambient[ch] += d.Weight * c[ch]
		}
		weights += d.Weight
	}
	if weights == 0 {
		return Stats{}
	}
	st.LuminanceAverage /= weights
	st.Ambient = st.Ambient.Scale(1 / weights)
	return st
}
