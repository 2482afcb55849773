// Package preetham implements the Preetham daylight model: Perez luminance
// distribution, zenith luminance/chromaticity, and conversion to linear RGB.
//
// Luminance is in cd/m². Angles are radians with theta measured from the
// zenith and gamma the angle between a view direction and the sun.
package preetham

import "math"

// Perez holds the five distribution parameters A..E for one channel.
type Perez [5]float64

// Distribution evaluates F(theta, gamma) =
// (1 + A*exp(B/cos(theta))) * (1 + C*exp(D*gamma) + E*cos²(gamma)).
func (p Perez) Distribution(theta, gamma float64) float64 {
	cosGamma := math.Cos(gamma)
	return (1 + p[0]*math.Exp(p[1]/math.Cos(theta))) *
		(1 + p[2]*math.Exp(p[3]*gamma) + p[4]*cosGamma*cosGamma)
}

// Coefficients holds the Perez parameters for the x and y chromaticity and
// the Y luminance channels.
type Coefficients struct {
	X, Y, Lum Perez
}

// PerezCoefficients returns the distribution parameters for a turbidity.
// Each is linear in turbidity.
func PerezCoefficients(turbidity float64) Coefficients {
	t := turbidity
	return Coefficients{
		X: Perez{
			-0.01925*t - 0.25922,
			-0.06651*t + 0.00081,
			-0.00041*t + 0.21247,
			-0.06409*t - 0.89887,
			-0.00325*t + 0.04517,
		},
		Y: Perez{
			-0.01669*t - 0.26078,
			-0.09495*t + 0.00921,
			-0.00792*t + 0.21023,
			-0.04405*t - 1.65369,
			-0.01092*t + 0.05291,
		},
		Lum: Perez{
			0.17872*t - 1.46303,
			-0.35540*t + 0.42749,
			-0.02266*t + 5.32505,
			0.12064*t - 2.57705,
			-0.06696*t + 0.37027,
		},
	}
}

// XyY is a color as x, y chromaticity and Y luminance.
type XyY struct {
	X, Y, Lum float64
}

// XYZ converts to CIE XYZ.
func (c XyY) XYZ() XYZ {
	return XYZ{
		X: c.X / c.Y * c.Lum,
		Y: c.Lum,
		Z: (1 - c.X - c.Y) / c.Y * c.Lum,
	}
}

// XYZ is a CIE XYZ tristimulus value.
type XYZ struct {
	X, Y, Z float64
}

// RGB converts to linear RGB (sRGB primaries, D65).
func (c XYZ) RGB() RGB {
	return RGB{
		3.240479*c.X - 1.537150*c.Y - 0.498535*c.Z,
		-0.969256*c.X + 1.875992*c.Y + 0.041556*c.Z,
		0.055648*c.X - 0.204043*c.Y + 1.057311*c.Z,
	}
}

// RGB is a linear RGB triple.
type RGB [3]float64

// Scale returns c multiplied by f.
func (c RGB) Scale(f float64) RGB {
	return RGB{c[0] * f, c[1] * f, c[2] * f}
}

// Zenith returns the zenith chromaticity and luminance for a sun at polar
// angle theta. Chromaticity is cubic in theta and quadratic in turbidity; the
// luminance term is converted from kcd/m² to cd/m².
func Zenith(theta, turbidity float64) XyY {
	t, t2, t3 := theta, theta*theta, theta*theta*theta
	tb, tb2 := turbidity, turbidity*turbidity

	x := (0.00165*t3-0.00374*t2+0.00208*t+0.0)*tb2 +
		(-0.02902*t3+0.06377*t2-0.03202*t+0.00394)*tb +
		(0.11693*t3 - 0.21196*t2 + 0.06052*t + 0.25885)

	y := (0.00275*t3-0.00610*t2+0.00316*t+0.0)*tb2 +
		(-0.04214*t3+0.08970*t2-0.04153*t+0.00515)*tb +
		(0.15346*t3 - 0.26756*t2 + 0.06669*t + 0.26688)

	chi := (4.0/9.0 - turbidity/120.0) * (math.Pi - 2.0*theta)
	lum := (4.0453*turbidity-4.9710)*math.Tan(chi) - 0.2155*turbidity + 2.4192

	return XyY{X: x, Y: y, Lum: lum * 1000}
}
