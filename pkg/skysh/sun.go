package skysh

import (
	smath "github.com/Faultbox/skyprobe/pkg/math"
	"github.com/Faultbox/skyprobe/pkg/preetham"
)

// SunDiscColor returns the sun disc's linear RGB color multiplied by scale.
func SunDiscColor(s Sun, scale float64) preetham.RGB {
	return preetham.SunColor(s.Theta, s.Turbidity).Scale(scale)
}

// AddSunDisc adds the sun disc, projected as a point light at the sun's
// direction, into r, g and b. Existing values are accumulated into, not
// replaced, so calling it twice doubles the sun's contribution.
func AddSunDisc(s Sun, numBands int, scale float64, r, g, b []float32) error {
	if err := checkArgs("add sun disc", numBands, r, g, b); err != nil {
		return err
	}
	if !s.finite() || !smath.Finite(scale) {
		return &PreconditionError{Op: "add sun disc", NumBands: numBands, Err: ErrNonFinite}
	}

	light := PointLight{
		Direction: smath.Spherical{Theta: s.Theta, Phi: s.Phi},
		Color:     SunDiscColor(s, scale),
	}
	addPointLight(light, numBands, r, g, b)
	return nil
}
