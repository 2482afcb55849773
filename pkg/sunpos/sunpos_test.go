package sunpos

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func deg(d float64) float64 { return d * math.Pi / 180 }

func TestAnalyticEquatorNoon(t *testing.T) {
	p := Analytic(0, 0, 80, 12)
	assert.InDelta(t, 0.03304590557734932, p.Theta, 1e-9)
	assert.True(t, p.AboveHorizon())

	night := Analytic(0, 0, 80, 0)
	assert.False(t, night.AboveHorizon())
	assert.Less(t, night.Elevation(), 0.0)
}

func TestAnalyticMorningEastAfternoonWest(t *testing.T) {
	morning := Analytic(0, deg(45), 79, 8)
	afternoon := Analytic(0, deg(45), 79, 16)
	assert.InDelta(t, -1.2199876423311293, morning.Phi, 1e-9)
	assert.InDelta(t, 1.1655925349061338, afternoon.Phi, 1e-9)
	assert.Less(t, morning.Phi, 0.0, "east is negative")
	assert.Greater(t, afternoon.Phi, 0.0, "west is positive")
}

func TestAnalyticLongitudeShiftsSolarTime(t *testing.T) {
	// 30 degrees east at 10:00 UTC is local solar noon.
	greenwich := Analytic(0, deg(45), 172, 12)
	east := Analytic(-deg(30), deg(45), 172, 10)
	assert.InDelta(t, greenwich.Theta, east.Theta, 1e-12)
	assert.InDelta(t, greenwich.Phi, east.Phi, 1e-12)
}

func TestAtMatchesAnalyticRoughly(t *testing.T) {
	ts := time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC)
	got := At(ts, 45, 0)
	want := Locate(ModelAnalytic, ts, 45, 0)
	// Both models agree on the noon elevation to within a degree.
	assert.InDelta(t, want.Theta, got.Theta, deg(1))
	assert.InDelta(t, deg(45-23.44), got.Theta, deg(1))
}

func TestAtMorningIsEast(t *testing.T) {
	ts := time.Date(2024, time.March, 20, 8, 0, 0, 0, time.UTC)
	p := Locate(ModelSuncalc, ts, 45, 0)
	assert.True(t, p.AboveHorizon())
	assert.Less(t, p.Phi, 0.0)
}

func TestDirection(t *testing.T) {
	zenith := Position{Theta: 0, Phi: 1}.Direction()
	assert.InDelta(t, 1, zenith.Z, 1e-12)

	south := Position{Theta: math.Pi / 2, Phi: 0}.Direction()
	assert.InDelta(t, 1, south.X, 1e-12)
	assert.InDelta(t, 1, r3.Norm(south), 1e-12)
}
