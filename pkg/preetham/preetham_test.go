package preetham

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZenithKnownValues(t *testing.T) {
	z := Zenith(0, 3)
	assert.InDelta(t, 0.27067, z.X, 1e-12)
	assert.InDelta(t, 0.28233, z.Y, 1e-12)
	assert.InDelta(t, 29477.312653639936, z.Lum, 1e-6)

	z = Zenith(1.0, 5)
	assert.InDelta(t, 0.25744, z.X, 1e-12)
	assert.InDelta(t, 0.27062, z.Y, 1e-12)
	assert.InDelta(t, 8896.373884545255, z.Lum, 1e-6)
}

func TestPerezCoefficientsLinearInTurbidity(t *testing.T) {
	a, b, c := PerezCoefficients(2), PerezCoefficients(4), PerezCoefficients(6)
	for i := 0; i < 5; i++ {
		assert.InDelta(t, b.X[i]-a.X[i], c.X[i]-b.X[i], 1e-12)
		assert.InDelta(t, b.Y[i]-a.Y[i], c.Y[i]-b.Y[i], 1e-12)
		assert.InDelta(t, b.Lum[i]-a.Lum[i], c.Lum[i]-b.Lum[i], 1e-12)
	}
}

func TestSkyAtZenithEqualsZenithValue(t *testing.T) {
	for _, sunTheta := range []float64{0.2, 0.8, 1.3} {
		sky := NewSky(sunTheta, 0.4, 4)
		want := Zenith(sunTheta, 4)
		got := sky.XyY(0, 1.7)
		assert.InDelta(t, want.X, got.X, 1e-12)
		assert.InDelta(t, want.Y, got.Y, 1e-12)
		assert.InDelta(t, want.Lum, got.Lum, 1e-6)
	}
}

func TestSkyBelowHorizonIsBlack(t *testing.T) {
	sky := NewSky(0.5, 0, 3)
	assert.Equal(t, RGB{}, sky.Radiance(math.Pi/2, 0))
	assert.Equal(t, RGB{}, sky.Radiance(2.0, 1.0))
}

func TestSkySymmetricAboutSunAzimuth(t *testing.T) {
	sky := NewSky(0.9, 0.6, 3)
	for _, d := range []float64{0.1, 0.7, 2.0} {
		left := sky.Radiance(1.1, 0.6-d)
		right := sky.Radiance(1.1, 0.6+d)
		for ch := 0; ch < 3; ch++ {
			assert.InDelta(t, left[ch], right[ch], 1e-9*math.Abs(left[ch])+1e-9)
		}
	}
}

func TestSkyBrighterTowardsSun(t *testing.T) {
	sky := NewSky(1.0, 0, 3)
	near := Luminance(sky.Radiance(1.0, 0.2))
	far := Luminance(sky.Radiance(1.0, math.Pi))
	assert.Greater(t, near, far)
}

func TestGamma(t *testing.T) {
	sky := NewSky(0.5, 1.0, 3)
	assert.InDelta(t, 0, sky.Gamma(0.5, 1.0), 1e-7)
	assert.InDelta(t, 0.5, sky.Gamma(0, 0), 1e-12)
	assert.InDelta(t, 1.0, sky.Gamma(0.5, 1.0+math.Pi), 1e-12)
}

func TestSunColorKnownValue(t *testing.T) {
	c := SunColor(0.5, 3)
	assert.InDelta(t, 22582.680689418565, c[0], 1e-6)
	assert.InDelta(t, 26842.06749142704, c[1], 1e-6)
	assert.InDelta(t, 36993.57968604146, c[2], 1e-6)
}

func TestSunReddensTowardsHorizon(t *testing.T) {
	prev := 0.0
	for _, theta := range []float64{0.1, 0.5, 1.0, 1.3, 1.5} {
		c := SunColor(theta, 3)
		require.Greater(t, c[2], 0.0)
		ratio := c[0] / c[2]
		assert.Greater(t, ratio, prev, "theta=%v", theta)
		prev = ratio
	}
}

func TestXYZRoundTripWhite(t *testing.T) {
	// D65 white point maps to roughly equal RGB.
	c := XyY{X: 0.3127, Y: 0.3290, Lum: 1}.XYZ().RGB()
	assert.InDelta(t, 1, c[0], 2e-3)
	assert.InDelta(t, 1, c[1], 2e-3)
	assert.InDelta(t, 1, c[2], 2e-3)
	assert.InDelta(t, 1, Luminance(c), 2e-3)
}

func TestSolidAngle(t *testing.T) {
	assert.InDelta(t, 6.7443e-05, SolidAngle, 1e-8)
}

func TestSkyStatsConstantWeights(t *testing.T) {
	sky := NewSky(0.8, 0.3, 3)
	samples := []Sample{
		{Theta: 0.1, Phi: 0, Weight: 1},
		{Theta: 0.8, Phi: 0.3, Weight: 1},
		{Theta: 1.4, Phi: -2.5, Weight: 2},
	}
	st := sky.Stats(samples)
	require.False(t, st.Night)

	var lums []float64
	var ambient RGB
	for _, s := range samples {
		c := sky.Radiance(s.Theta, s.Phi)
		lums = append(lums, Luminance(c))
		for ch := range c {
			ambient[ch] += s.Weight * c[ch] / 4
		}
	}
	assert.InDelta(t, math.Min(lums[0], math.Min(lums[1], lums[2])), st.LuminanceMin, 1e-9)
	assert.InDelta(t, math.Max(lums[0], math.Max(lums[1], lums[2])), st.LuminanceMax, 1e-9)
	assert.InDelta(t, (lums[0]+lums[1]+2*lums[2])/4, st.LuminanceAverage, 1e-6)
	for ch := range ambient {
		assert.InDelta(t, ambient[ch], st.Ambient[ch], 1e-6*math.Abs(ambient[ch])+1e-9)
	}
	// The sample towards the sun is the brightest.
	assert.Equal(t, lums[1], st.LuminanceMax)
	assert.InDelta(t, st.LuminanceAverage, Luminance(st.Ambient), 1e-6*st.LuminanceAverage)
}

func TestSkyStatsNight(t *testing.T) {
	st := NewSky(NightSunTheta+0.01, 0, 3).Stats([]Sample{{Theta: 0.2, Weight: 1}})
	assert.True(t, st.Night)
	assert.Equal(t, NightLuminance, st.LuminanceAverage)
	assert.InDelta(t, NightLuminance, Luminance(st.Ambient), 1e-9)
	// Night ambient keeps the blue tint.
	assert.Greater(t, st.Ambient[2], st.Ambient[0])

	// Just above the cutoff the dome is still evaluated.
	assert.False(t, NewSky(1.5, 0, 3).Stats([]Sample{{Theta: 0.2, Weight: 1}}).Night)
}

func TestSkyStatsNoSamples(t *testing.T) {
	assert.Equal(t, Stats{}, NewSky(0.5, 0, 3).Stats(nil))
}
