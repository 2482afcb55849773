package preetham

import "math"

// Sky evaluates sky radiance for one sun position and turbidity. Build it once
// per sun state and query many view directions.
type Sky struct {
	SunTheta, SunPhi float64
	Turbidity        float64

	coeffs Coefficients
	// zenith values already divided by F(0, SunTheta)
	zenith                   XyY
	sinSunTheta, cosSunTheta float64
}

// NewSky prepares a sky for the given sun direction and turbidity.
func NewSky(sunTheta, sunPhi, turbidity float64) *Sky {
	c := PerezCoefficients(turbidity)
	z := Zenith(sunTheta, turbidity)
	return &Sky{
		SunTheta:  sunTheta,
		SunPhi:    sunPhi,
		Turbidity: turbidity,
		coeffs:    c,
		zenith: XyY{
			X:   z.X / c.X.Distribution(0, sunTheta),
			Y:   z.Y / c.Y.Distribution(0, sunTheta),
			Lum: z.Lum / c.Lum.Distribution(0, sunTheta),
		},
		sinSunTheta: math.Sin(sunTheta),
		cosSunTheta: math.Cos(sunTheta),
	}
}

// Gamma returns the angle between the view direction and the sun.
func (s *Sky) Gamma(theta, phi float64) float64 {
	cosGamma := s.cosSunTheta*math.Cos(theta) + s.sinSunTheta*math.Sin(theta)*math.Cos(phi-s.SunPhi)
	return math.Acos(math.Max(-1, math.Min(1, cosGamma)))
}

// XyY returns the sky color in the view direction. Directions at or below
// the horizon return the zero value.
func (s *Sky) XyY(theta, phi float64) XyY {
	if theta >= math.Pi/2 {
		return XyY{}
	}
	gamma := s.Gamma(theta, phi)
	return XyY{
		X:   s.zenith.X * s.coeffs.X.Distribution(theta, gamma),
		Y:   s.zenith.Y * s.coeffs.Y.Distribution(theta, gamma),
		Lum: s.zenith.Lum * s.coeffs.Lum.Distribution(theta, gamma),
	}
}

// Radiance returns linear RGB sky radiance in the view direction, zero at or
// below the horizon.
func (s *Sky) Radiance(theta, phi float64) RGB {
	c := s.XyY(theta, phi)
	if c.Y == 0 {
		return RGB{}
	}
	return c.XYZ().RGB()
}
