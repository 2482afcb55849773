// Package math provides the angular helpers shared by the projectors and the
// sun position code. Directions are Z-up: theta is the polar angle from +Z and
// phi the azimuth from +X towards +Y.
package math

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Spherical is a direction in polar/azimuth form, in radians.
type Spherical struct {
	Theta float64 `yaml:"theta" json:"theta"`
	Phi   float64 `yaml:"phi" json:"phi"`
}

// FromVec converts a direction vector to spherical angles. The vector does not
// need to be normalized; a zero vector maps to straight up.
func FromVec(v r3.Vec) Spherical {
	n := r3.Norm(v)
	if n < 1e-12 {
		return Spherical{}
	}
	cosTheta := math.Max(-1, math.Min(1, v.Z/n))
	return Spherical{
		Theta: math.Acos(cosTheta),
		Phi:   math.Atan2(v.Y, v.X),
	}
}

// Vec returns the unit vector for s.
func (s Spherical) Vec() r3.Vec {
	sinTheta := math.Sin(s.Theta)
	return r3.Vec{
		X: sinTheta * math.Cos(s.Phi),
		Y: sinTheta * math.Sin(s.Phi),
		Z: math.Cos(s.Theta),
	}
}

// Elevation returns the angle above the horizon.
func (s Spherical) Elevation() float64 {
	return math.Pi/2 - s.Theta
}

// WrapAngle maps phi into [-pi, pi).
func WrapAngle(phi float64) float64 {
	phi = math.Mod(phi+math.Pi, 2*math.Pi)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return phi - math.Pi
}

// Sinc returns sin(x)/x with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if math.Abs(x) < 1e-8 {
		return 1
	}
	return math.Sin(x) / x
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// LerpSpherical interpolates between two directions along the great circle.
// t should be in range [0, 1].
func LerpSpherical(a, b Spherical, t float64) Spherical {
	va, vb := a.Vec(), b.Vec()
	dot := math.Max(-1, math.Min(1, r3.Dot(va, vb)))
	omega := math.Acos(dot)

	// Nearly parallel: a linear blend is accurate and avoids dividing by ~0.
	if omega < 1e-6 {
		return FromVec(r3.Add(va, r3.Scale(t, r3.Sub(vb, va))))
	}

	s := math.Sin(omega)
	wa := math.Sin((1-t)*omega) / s
	wb := math.Sin(t*omega) / s
	return FromVec(r3.Add(r3.Scale(wa, va), r3.Scale(wb, vb)))
}
