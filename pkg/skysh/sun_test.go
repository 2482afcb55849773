package skysh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smath "github.com/Faultbox/skyprobe/pkg/math"
	"github.com/Faultbox/skyprobe/pkg/preetham"
	"github.com/Faultbox/skyprobe/pkg/sh"
)

func TestAddSunDiscMatchesBasis(t *testing.T) {
	s := Sun{Theta: 0.7, Phi: 2.1, Turbidity: 3}
	const scale = 0.25
	c := sh.NewCoeffs(MaxBands)
	require.NoError(t, AddSunDisc(s, MaxBands, scale, c.R, c.G, c.B))

	color := preetham.SunColor(s.Theta, s.Turbidity).Scale(scale)
	for l := 0; l < MaxBands; l++ {
		for m := -l; m <= l; m++ {
			val := sh.Eval(l, m, s.Theta, s.Phi)
			k := sh.Index(l, m)
			assert.Equal(t, float32(color[0]*val), c.R[k], "l=%d m=%d", l, m)
			assert.Equal(t, float32(color[1]*val), c.G[k], "l=%d m=%d", l, m)
			assert.Equal(t, float32(color[2]*val), c.B[k], "l=%d m=%d", l, m)
		}
	}
}

func TestAddSunDiscAccumulates(t *testing.T) {
	s := Sun{Theta: 1.2, Phi: -0.4, Turbidity: 5}
	once := sh.NewCoeffs(4)
	require.NoError(t, AddSunDisc(s, 4, 1, once.R, once.G, once.B))

	twice := sh.NewCoeffs(4)
	require.NoError(t, AddSunDisc(s, 4, 1, twice.R, twice.G, twice.B))
	require.NoError(t, AddSunDisc(s, 4, 1, twice.R, twice.G, twice.B))

	for k := range once.R {
		assert.Equal(t, 2*once.R[k], twice.R[k])
		assert.Equal(t, 2*once.G[k], twice.G[k])
		assert.Equal(t, 2*once.B[k], twice.B[k])
	}
}

func TestAddSunDiscOnTopOfSky(t *testing.T) {
	s := Sun{Theta: 0.5, Phi: 0.8, Turbidity: 3}
	sky := mustSky(t, s, 3, false, 1)
	sun := sh.NewCoeffs(3)
	require.NoError(t, AddSunDisc(s, 3, 1, sun.R, sun.G, sun.B))

	both := sky.Clone()
	require.NoError(t, AddSunDisc(s, 3, 1, both.R, both.G, both.B))
	for k := range sky.R {
		assert.InDelta(t, float64(sky.R[k]+sun.R[k]), float64(both.R[k]), 1e-2)
	}
}

func TestSunOnlyReconstructionPeaksAtSun(t *testing.T) {
	// Sky contribution zeroed: only the delta projection remains.
	s := Sun{Theta: 0.6, Phi: 1.3, Turbidity: 3}
	const numBands = MaxBands
	c := sh.NewCoeffs(numBands)
	require.NoError(t, AddSunDisc(s, numBands, 1, c.R, c.G, c.B))

	// Addition theorem: sum over m of Y(l,m,d)^2 = (2l+1)/(4*pi).
	var peak float64
	for l := 0; l < numBands; l++ {
		peak += float64(2*l+1) / (4 * math.Pi)
	}
	color := SunDiscColor(s, 1)
	at := reconstruct(c.G, s.Theta, s.Phi)
	assert.InDelta(t, color[1]*peak, at, 1e-4*color[1]*peak)

	// Any other direction reconstructs lower.
	for _, dir := range []smath.Spherical{{Theta: 0.6, Phi: 1.3 + math.Pi}, {Theta: 0, Phi: 0}, {Theta: 1.5, Phi: 1.3}} {
		assert.Less(t, reconstruct(c.G, dir.Theta, dir.Phi), at, "dir=%+v", dir)
	}
}

func TestAddSunDiscPreconditions(t *testing.T) {
	r := make([]float32, 4)
	err := AddSunDisc(Sun{Theta: 0.5, Turbidity: 3}, 2, 1, r, r, make([]float32, 3))
	assert.ErrorIs(t, err, ErrBufferLength)

	err = AddSunDisc(Sun{Theta: 0.5, Turbidity: 3}, 0, 1, nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidBandCount)

	err = AddSunDisc(Sun{Theta: 0.5, Turbidity: 3}, 2, math.Inf(1), r, r, r)
	assert.ErrorIs(t, err, ErrNonFinite)
	assert.Equal(t, make([]float32, 4), r)
}

func TestProjectPointLights(t *testing.T) {
	lights := []PointLight{
		{Direction: smath.Spherical{Theta: 0.2, Phi: 0.1}, Color: preetham.RGB{1, 2, 3}},
		{Direction: smath.Spherical{Theta: 1.1, Phi: -2.0}, Color: preetham.RGB{0.5, 0.5, 0.5}},
	}
	all := sh.NewCoeffs(3)
	require.NoError(t, ProjectPointLights(lights, 3, all.R, all.G, all.B))

	sep := sh.NewCoeffs(3)
	for _, light := range lights {
		require.NoError(t, ProjectPointLight(light, 3, sep.R, sep.G, sep.B))
	}
	assert.Equal(t, sep, all)

	bad := append(lights, PointLight{Color: preetham.RGB{math.NaN(), 0, 0}})
	c := sh.NewCoeffs(3)
	assert.ErrorIs(t, ProjectPointLights(bad, 3, c.R, c.G, c.B), ErrNonFinite)
	assert.Equal(t, sh.NewCoeffs(3), c, "no partial writes")
}

func TestProjectPointLightsCap(t *testing.T) {
	lights := make([]PointLight, MaxPointLights+1)
	for i := range lights {
		lights[i] = PointLight{
			Direction: smath.Spherical{Theta: 0.05 * float64(i), Phi: 0.2 * float64(i)},
			Color:     preetham.RGB{1, 1, 1},
		}
	}
	lights[MaxPointLights].Color = preetham.RGB{1000, 1000, 1000}

	capped := sh.NewCoeffs(3)
	require.NoError(t, ProjectPointLights(lights, 3, capped.R, capped.G, capped.B))
	first := sh.NewCoeffs(3)
	require.NoError(t, ProjectPointLights(lights[:MaxPointLights], 3, first.R, first.G, first.B))
	assert.Equal(t, first, capped, "lights past the cap contribute nothing")

	// An invalid light past the cap is never looked at.
	lights[MaxPointLights].Color = preetham.RGB{math.NaN(), 0, 0}
	c := sh.NewCoeffs(3)
	require.NoError(t, ProjectPointLights(lights, 3, c.R, c.G, c.B))
	assert.Equal(t, first, c)
}

func TestProbe(t *testing.T) {
	s := Sun{Theta: 0.9, Phi: 0.2, Turbidity: 4}
	skyOnly, err := Probe(ProbeParams{Sun: s, NumBands: 4, SkyScale: 1})
	require.NoError(t, err)
	assert.Equal(t, mustSky(t, s, 4, false, 1), skyOnly)

	withSun, err := Probe(ProbeParams{Sun: s, NumBands: 4, SkyScale: 1, IncludeSun: true, SunScale: preetham.SolidAngle})
	require.NoError(t, err)
	assert.NotEqual(t, skyOnly, withSun)

	_, err = Probe(ProbeParams{Sun: s, NumBands: 0})
	assert.ErrorIs(t, err, ErrInvalidBandCount)
}
