package skysh

import (
	"math"

	smath "github.com/Faultbox/skyprobe/pkg/math"
	"github.com/Faultbox/skyprobe/pkg/sh"
)

// Sun describes the sun state both projectors take as input.
type Sun struct {
	// Theta is the sun's polar angle from the zenith, in radians.
	Theta float64 `yaml:"theta" json:"theta"`
	// Phi is the sun's azimuth, in radians.
	Phi float64 `yaml:"phi" json:"phi"`
	// Turbidity describes atmospheric haze; typical values are 2 to 10.
	Turbidity float64 `yaml:"turbidity" json:"turbidity"`
}

func (s Sun) finite() bool {
	return smath.Finite(s.Theta, s.Phi, s.Turbidity)
}

// ComputeSky overwrites r, g and b with the SH expansion of the Preetham sky
// for the given sun. Each buffer must hold exactly numBands² values.
//
// The fitted expansion is evaluated at azimuth 0 and rotated about the
// vertical axis to s.Phi. With suppressRinging set, the axial (m = 0) term of
// each band l >= 1 is windowed by sinc(pi*l/numBands). Every coefficient is
// then multiplied by scale.
func ComputeSky(s Sun, numBands int, suppressRinging bool, scale float64, r, g, b []float32) error {
	if err := checkArgs("compute sky", numBands, r, g, b); err != nil {
		return err
	}
	if !s.finite() || !smath.Finite(scale) {
		return &PreconditionError{Op: "compute sky", NumBands: numBands, Err: ErrNonFinite}
	}

	coeffs := skyExpansion(s.Theta, s.Turbidity, numBands)
	rotateAzimuth(coeffs, s.Phi, numBands)
	if suppressRinging {
		suppressAxialRinging(coeffs, numBands)
	}

	for k, c := range coeffs {
		r[k] = float32(c[0] * scale)
		g[k] = float32(c[1] * scale)
		b[k] = float32(c[2] * scale)
	}
	return nil
}

// SkyCoefficients allocates a coefficient set and fills it with ComputeSky.
func SkyCoefficients(s Sun, numBands int, suppressRinging bool, scale float64) (sh.Coeffs, error) {
	if numBands < 1 || numBands > MaxBands {
		return sh.Coeffs{}, &PreconditionError{Op: "compute sky", NumBands: numBands, Err: ErrInvalidBandCount}
	}
	c := sh.NewCoeffs(numBands)
	if err := ComputeSky(s, numBands, suppressRinging, scale, c.R, c.G, c.B); err != nil {
		return sh.Coeffs{}, err
	}
	return c, nil
}

// skyExpansion contracts the power matrix against the tensor, giving the
// un-rotated expansion in double precision.
func skyExpansion(theta, turbidity float64, numBands int) [][Channels]float64 {
	p := newPowerMatrix(theta, turbidity)
	out := make([][Channels]float64, sh.NumCoeffs(numBands))
	for l := 0; l < numBands; l++ {
		for m := -l; m <= l; m++ {
			out[sh.Index(l, m)] = p.contract(l, l+m)
		}
	}
	return out
}

// rotateAzimuth rotates an expansion about the polar axis by phi. The pair of
// terms (l, m) and (l, -m) transforms as a 2-D rotation by m*phi.
func rotateAzimuth(coeffs [][Channels]float64, phi float64, numBands int) {
	for l := 0; l < numBands; l++ {
		for m := 1; m <= l; m++ {
			kPos := sh.Index(l, m)
			kNeg := sh.Index(l, -m)
			sin, cos := math.Sincos(float64(m) * phi)
			for ch := 0; ch < Channels; ch++ {
				cPos, cNeg := coeffs[kPos][ch], coeffs[kNeg][ch]
				coeffs[kPos][ch] = cPos*cos - cNeg*sin
				coeffs[kNeg][ch] = cNeg*cos + cPos*sin
			}
		}
	}
}

// suppressAxialRinging windows only the m = 0 term of each band.
func suppressAxialRinging(coeffs [][Channels]float64, numBands int) {
	for l := 1; l < numBands; l++ {
		k := sh.Index(l, 0)
		w := smath.Sinc(math.Pi * float64(l) / float64(numBands))
		for ch := 0; ch < Channels; ch++ {
			coeffs[k][ch] *= w
		}
	}
}
