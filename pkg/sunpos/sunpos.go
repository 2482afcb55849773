// Package sunpos computes where the sun is, in the polar/azimuth convention
// the SH projectors take: Theta from the zenith, Phi measured from south
// with positive values towards west.
package sunpos

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"
	"gonum.org/v1/gonum/spatial/r3"

	smath "github.com/Faultbox/skyprobe/pkg/math"
)

// Position is the sun's direction in the sky.
type Position struct {
	Theta float64 `yaml:"theta" json:"theta"`
	Phi   float64 `yaml:"phi" json:"phi"`
}

// Spherical returns the position as a direction.
func (p Position) Spherical() smath.Spherical {
	return smath.Spherical{Theta: p.Theta, Phi: p.Phi}
}

// Direction returns the unit vector towards the sun in a left-handed frame
// with +X south, +Y west and +Z up.
func (p Position) Direction() r3.Vec {
	return p.Spherical().Vec()
}

// AboveHorizon reports whether the sun is up.
func (p Position) AboveHorizon() bool {
	return p.Theta < math.Pi/2
}

// Elevation returns the sun's altitude above the horizon in radians.
func (p Position) Elevation() float64 {
	return math.Pi/2 - p.Theta
}

// Analytic computes the sun position from an approximate solar time and
// declination. Longitude and latitude are in radians, dayOfYear in [0, 365]
// and hours in [0, 24].
func Analytic(longitude, latitude float64, dayOfYear int, hours float64) Position {
	day := float64(dayOfYear)
	solarTime := hours +
		0.17*math.Sin(4*math.Pi*(day-80)/373) -
		0.129*math.Sin(2*math.Pi*(day-8)/355) -
		12*longitude/math.Pi

	declination := 0.4093 * math.Sin(2*math.Pi*(day-81)/368)
	hourAngle := math.Pi * solarTime / 12

	sinDecl, cosDecl := math.Sincos(declination)
	sinLat, cosLat := math.Sincos(latitude)
	cosHour := math.Cos(hourAngle)

	phi := math.Atan2(-cosDecl*math.Sin(hourAngle), cosLat*sinDecl-sinLat*cosDecl*cosHour)
	theta := math.Pi/2 - math.Asin(sinLat*sinDecl-cosLat*cosDecl*cosHour)
	return Position{Theta: theta, Phi: phi}
}

// At returns the sun position at t for an observer at the given latitude and
// longitude in degrees (north and east positive).
func At(t time.Time, latitude, longitude float64) Position {
	p := suncalc.GetPosition(t, latitude, longitude)
	// suncalc already measures azimuth from south towards west.
	return Position{
		Theta: math.Pi/2 - p.Altitude,
		Phi:   smath.WrapAngle(p.Azimuth),
	}
}

// Model selects how positions are computed from a wall-clock time.
type Model string

// Supported models.
const (
	ModelSuncalc  Model = "suncalc"
	ModelAnalytic Model = "analytic"
)

// Locate computes the position at t with the chosen model. Latitude and
// longitude are in degrees. The analytic model reads t in UTC and applies its
// own longitude correction.
func Locate(model Model, t time.Time, latitude, longitude float64) Position {
	if model == ModelAnalytic {
		u := t.UTC()
		hours := float64(u.Hour()) + float64(u.Minute())/60 + float64(u.Second())/3600
		// The analytic model's longitude term is positive westwards.
		return Analytic(-longitude*math.Pi/180, latitude*math.Pi/180, u.YearDay()-1, hours)
	}
	return At(t, latitude, longitude)
}
