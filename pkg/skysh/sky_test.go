package skysh

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/skyprobe/pkg/sh"
)

// reconstruct evaluates the expansion of one channel at a direction.
func reconstruct(coeffs []float32, theta, phi float64) float64 {
	var sum float64
	for k, c := range coeffs {
		l, m := sh.LM(k)
		sum += float64(c) * sh.Eval(l, m, theta, phi)
	}
	return sum
}

func mustSky(t *testing.T, s Sun, numBands int, ringing bool, scale float64) sh.Coeffs {
	t.Helper()
	c, err := SkyCoefficients(s, numBands, ringing, scale)
	require.NoError(t, err)
	return c
}

var approx = cmpopts.EquateApprox(1e-5, 1e-2)

func TestTensorShape(t *testing.T) {
	for l := 0; l < MaxBands; l++ {
		assert.Len(t, bands[l], (2*l+1)*bandStride, "band %d", l)
	}
}

func TestTensorNegativeOrdersVanish(t *testing.T) {
	// The fit is taken with the sun at azimuth 0, so sin(m*phi) terms are zero.
	for l := 1; l < MaxBands; l++ {
		for bandIndex := 0; bandIndex < l; bandIndex++ {
			for i := 0; i < ThetaPowers; i++ {
				for j := 0; j < TurbidityPowers; j++ {
					for ch := 0; ch < Channels; ch++ {
						require.Zero(t, TensorAt(l, bandIndex, i, j, ch))
					}
				}
			}
		}
	}
}

func TestComputeSkyEndToEnd(t *testing.T) {
	s := Sun{Theta: 0.5, Phi: 0, Turbidity: 3}
	c := mustSky(t, s, 3, false, 1)
	require.Equal(t, 9, c.Len())

	// Hand contraction of the 14x8 power matrix against the band tables.
	for l := 0; l < 3; l++ {
		for m := -l; m <= l; m++ {
			var want [3]float64
			for i := 0; i < ThetaPowers; i++ {
				for j := 0; j < TurbidityPowers; j++ {
					p := math.Pow(s.Theta, float64(i)) * math.Pow(s.Turbidity, float64(j))
					for ch := 0; ch < Channels; ch++ {
						want[ch] += p * TensorAt(l, l+m, i, j, ch)
					}
				}
			}
			k := sh.Index(l, m)
			got := [3]float64{float64(c.R[k]), float64(c.G[k]), float64(c.B[k])}
			assert.True(t, cmp.Equal(want, got, approx), "l=%d m=%d: %v", l, m, cmp.Diff(want, got))
		}
	}

	// Reference values of the fit at this point.
	assert.InEpsilon(t, 12907.744927268768, c.R[0], 1e-5)
	assert.InEpsilon(t, 17449.19341459517, c.G[0], 1e-5)
	assert.InEpsilon(t, 27531.78636041856, c.B[0], 1e-5)
	assert.InEpsilon(t, -4186.603246783166, c.R[sh.Index(1, 1)], 1e-5)
	assert.InEpsilon(t, 1315.1258687131913, c.R[sh.Index(2, 2)], 1e-5)
}

func TestComputeSkyRotationIdentityAtZero(t *testing.T) {
	s := Sun{Theta: 0.8, Phi: 0, Turbidity: 4.5}
	c := mustSky(t, s, MaxBands, false, 1)

	raw := skyExpansion(s.Theta, s.Turbidity, MaxBands)
	for k := range raw {
		assert.Equal(t, float32(raw[k][0]), c.R[k])
		assert.Equal(t, float32(raw[k][1]), c.G[k])
		assert.Equal(t, float32(raw[k][2]), c.B[k])
	}
}

func TestComputeSkySingleBandIgnoresAzimuth(t *testing.T) {
	base := mustSky(t, Sun{Theta: 0.6, Phi: 0, Turbidity: 3}, 1, false, 1)
	for _, phi := range []float64{0.3, 1.7, -2.2, 5.0} {
		c := mustSky(t, Sun{Theta: 0.6, Phi: phi, Turbidity: 3}, 1, false, 1)
		assert.Equal(t, base, c, "phi=%v", phi)
	}
}

func TestComputeSkyAzimuthPeriodic(t *testing.T) {
	for _, phi := range []float64{0, 0.4, 2.9, -1.3} {
		a := mustSky(t, Sun{Theta: 1.1, Phi: phi, Turbidity: 6}, MaxBands, true, 1)
		b := mustSky(t, Sun{Theta: 1.1, Phi: phi + 2*math.Pi, Turbidity: 6}, MaxBands, true, 1)
		if diff := cmp.Diff(a, b, approx); diff != "" {
			t.Errorf("phi=%v: rotation not 2*pi periodic (-a +b):\n%s", phi, diff)
		}
	}
}

func TestComputeSkyRotationMatchesBasis(t *testing.T) {
	// Rotating the sun by phi0 must rotate the reconstructed sky by phi0.
	const phi0 = 1.2
	a := mustSky(t, Sun{Theta: 0.9, Phi: 0, Turbidity: 3}, 5, false, 1)
	b := mustSky(t, Sun{Theta: 0.9, Phi: phi0, Turbidity: 3}, 5, false, 1)

	for _, dir := range [][2]float64{{0.3, 0.1}, {1.0, 2.0}, {1.4, -0.7}, {2.5, 3.0}} {
		want := reconstruct(a.G, dir[0], dir[1])
		got := reconstruct(b.G, dir[0], dir[1]+phi0)
		assert.InDelta(t, want, got, 1e-3*math.Abs(float64(a.G[0]))+1e-3, "dir=%v", dir)
	}
}

func TestComputeSkyBrightestTowardsSun(t *testing.T) {
	const sunPhi = 2.0
	c := mustSky(t, Sun{Theta: 1.0, Phi: sunPhi, Turbidity: 3}, MaxBands, false, 1)
	towards := reconstruct(c.G, 1.0, sunPhi)
	away := reconstruct(c.G, 1.0, sunPhi+math.Pi)
	assert.Greater(t, towards, away)
}

func TestComputeSkyRingingSuppression(t *testing.T) {
	s := Sun{Theta: 0.7, Phi: 0.9, Turbidity: 3}
	const n = 5
	plain := mustSky(t, s, n, false, 1)
	windowed := mustSky(t, s, n, true, 1)

	assert.Equal(t, plain.R[0], windowed.R[0], "band 0 is never windowed")
	for l := 1; l < n; l++ {
		w := math.Sin(math.Pi*float64(l)/n) / (math.Pi * float64(l) / n)
		for m := -l; m <= l; m++ {
			k := sh.Index(l, m)
			if m != 0 {
				assert.Equal(t, plain.G[k], windowed.G[k], "l=%d m=%d must be untouched", l, m)
				continue
			}
			assert.InDelta(t, float64(plain.G[k])*w, float64(windowed.G[k]), 1e-3*math.Abs(float64(plain.G[k]))+1e-6)
		}
	}

	// The highest band keeps a factor strictly inside (0, 1).
	top := math.Sin(math.Pi*(n-1)/n) / (math.Pi * (n - 1) / n)
	assert.Greater(t, top, 0.0)
	assert.Less(t, top, 1.0)
}

func TestComputeSkyScale(t *testing.T) {
	s := Sun{Theta: 0.4, Phi: 0.3, Turbidity: 2.5}
	one := mustSky(t, s, 4, true, 1)
	half := mustSky(t, s, 4, true, 0.5)
	for k := range one.R {
		assert.InDelta(t, float64(one.B[k])*0.5, float64(half.B[k]), 1e-3*math.Abs(float64(one.B[k]))+1e-6)
	}
}

func TestComputeSkyOverwrites(t *testing.T) {
	s := Sun{Theta: 0.4, Phi: 0.3, Turbidity: 2.5}
	want := mustSky(t, s, 2, false, 1)

	c := sh.NewCoeffs(2)
	for i := range c.R {
		c.R[i], c.G[i], c.B[i] = 99, 99, 99
	}
	require.NoError(t, ComputeSky(s, 2, false, 1, c.R, c.G, c.B))
	assert.Equal(t, want, c)
}

func TestComputeSkyPreconditions(t *testing.T) {
	good := Sun{Theta: 0.5, Turbidity: 3}
	tests := []struct {
		name     string
		sun      Sun
		numBands int
		n        [3]int
		scale    float64
		want     error
	}{
		{"zero bands", good, 0, [3]int{0, 0, 0}, 1, ErrInvalidBandCount},
		{"too many bands", good, 8, [3]int{64, 64, 64}, 1, ErrInvalidBandCount},
		{"short red", good, 3, [3]int{8, 9, 9}, 1, ErrBufferLength},
		{"long blue", good, 3, [3]int{9, 9, 16}, 1, ErrBufferLength},
		{"nan theta", Sun{Theta: math.NaN(), Turbidity: 3}, 3, [3]int{9, 9, 9}, 1, ErrNonFinite},
		{"inf turbidity", Sun{Theta: 0.5, Turbidity: math.Inf(1)}, 3, [3]int{9, 9, 9}, 1, ErrNonFinite},
		{"nan scale", good, 3, [3]int{9, 9, 9}, math.NaN(), ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := make([]float32, tt.n[0])
			g := make([]float32, tt.n[1])
			b := make([]float32, tt.n[2])
			for i := range r {
				r[i] = 7
			}
			err := ComputeSky(tt.sun, tt.numBands, false, tt.scale, r, g, b)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var pe *PreconditionError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "compute sky", pe.Op)

			for i := range r {
				assert.Equal(t, float32(7), r[i], "no partial writes")
			}
		})
	}
}

func TestPreconditionErrorMessage(t *testing.T) {
	err := ComputeSky(Sun{}, 2, false, 1, make([]float32, 3), make([]float32, 4), make([]float32, 4))
	assert.EqualError(t, err, "compute sky: coefficient buffer length mismatch: r=3 g=4 b=4 (want 4)")

	_, err = SkyCoefficients(Sun{}, 9, false, 1)
	assert.EqualError(t, err, "compute sky: band count out of range: 9 (want 1..7)")
}

func TestInFitDomain(t *testing.T) {
	assert.True(t, InFitDomain(0.5, 3))
	assert.True(t, InFitDomain(FitThetaMax, FitTurbidityMax))
	assert.False(t, InFitDomain(0.5, 1.2))
	assert.False(t, InFitDomain(1.7, 3))
}

func TestOutOfDomainTurbidityExtrapolates(t *testing.T) {
	c, err := SkyCoefficients(Sun{Theta: 0.5, Turbidity: 14}, 3, false, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, c.Len())
}
