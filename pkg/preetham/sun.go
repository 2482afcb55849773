package preetham

import "math"

// SolidAngle is the solid angle of the sun disc seen from the ground, in
// steradians.
const SolidAngle = 0.25 * math.Pi * 1.39 * 1.39 / (150 * 150)

// SunColor returns the linear RGB color of the sun disc for a sun at polar
// angle theta.
//
// The Perez ratio is taken at the sun's own direction: the numerator uses the
// sun's zenith angle in the 1/cos(theta) term with gamma = 0, the denominator
// uses theta = 0 for the first factor and the sun's angle as gamma for the
// second.
func SunColor(theta, turbidity float64) RGB {
	z := Zenith(theta, turbidity)
	c := PerezCoefficients(turbidity)
	cos2 := math.Cos(theta) * math.Cos(theta)

	ratio := func(p Perez) float64 {
		num := (1+p[0]*math.Exp(p[1]/math.Cos(theta)))*(1+p[2]) + p[4]
		den := (1 + p[0]*math.Exp(p[1])) * (1 + p[2]*math.Exp(p[3]*theta) + p[4]*cos2)
		return num / den
	}

	sun := XyY{
		X:   ratio(c.X) * z.X,
		Y:   ratio(c.Y) * z.Y,
		Lum: ratio(c.Lum) * z.Lum,
	}
	return sun.XYZ().RGB()
}

// Luminance returns the Y of a linear RGB color.
func Luminance(c RGB) float64 {
	return 0.212643862*c[0] + 0.715135574*c[1] + 0.0721568465*c[2]
}
