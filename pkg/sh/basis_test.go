package sh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"
)

func TestFactorials(t *testing.T) {
	tests := []struct {
		n          int
		fact, dfac int
	}{
		{-1, 1, 1},
		{0, 1, 1},
		{1, 1, 1},
		{2, 2, 2},
		{5, 120, 15},
		{6, 720, 48},
		{11, 39916800, 10395},
		{12, 479001600, 46080},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.fact, Factorial(tt.n), "Factorial(%d)", tt.n)
		assert.Equal(t, tt.dfac, DoubleFactorial(tt.n), "DoubleFactorial(%d)", tt.n)
	}
}

func TestLegendreClosedForms(t *testing.T) {
	for _, x := range []float64{-1, -0.7, -0.2, 0, 0.3, 0.9, 1} {
		s := math.Sqrt(1 - x*x)
		assert.InDelta(t, 1.0, Legendre(x, 0, 0), 1e-12)
		assert.InDelta(t, x, Legendre(x, 1, 0), 1e-12)
		assert.InDelta(t, -s, Legendre(x, 1, 1), 1e-12)
		assert.InDelta(t, 0.5*(3*x*x-1), Legendre(x, 2, 0), 1e-12)
		assert.InDelta(t, -3*x*s, Legendre(x, 2, 1), 1e-12)
		assert.InDelta(t, 3*(1-x*x), Legendre(x, 2, 2), 1e-12)
		assert.InDelta(t, 0.5*(5*x*x*x-3*x), Legendre(x, 3, 0), 1e-12)
		assert.InDelta(t, -15*s*s*s, Legendre(x, 3, 3), 1e-12)
	}
}

func TestIterativeLegendreMatchesRecursion(t *testing.T) {
	for _, x := range []float64{-1, -0.83, -0.5, 0, 0.12, 0.5, 0.99, 1} {
		for l := 0; l < MaxBands; l++ {
			for m := 0; m <= l; m++ {
				require.Equal(t, Legendre(x, l, m), legendre(x, l, m), "x=%v l=%d m=%d", x, l, m)
			}
		}
	}
}

func TestKLowOrders(t *testing.T) {
	assert.InDelta(t, 0.5/math.Sqrt(math.Pi), K(0, 0), 1e-12)
	assert.InDelta(t, math.Sqrt(3/(4*math.Pi)), K(1, 0), 1e-12)
	assert.InDelta(t, math.Sqrt(3/(8*math.Pi)), K(1, 1), 1e-12)
}

func TestEvalKnownValues(t *testing.T) {
	theta, phi := 0.7, 1.1
	x, y, z := math.Sin(theta)*math.Cos(phi), math.Sin(theta)*math.Sin(phi), math.Cos(theta)
	c1 := math.Sqrt(3 / (4 * math.Pi))

	assert.InDelta(t, 0.5/math.Sqrt(math.Pi), Eval(0, 0, theta, phi), 1e-12)
	assert.InDelta(t, c1*z, Eval(1, 0, theta, phi), 1e-12)
	// Condon-Shortley phase carries through P(x, 1, 1).
	assert.InDelta(t, -c1*x, Eval(1, 1, theta, phi), 1e-12)
	assert.InDelta(t, -c1*y, Eval(1, -1, theta, phi), 1e-12)
}

func TestEvalOrthonormal(t *testing.T) {
	const nMu, nPhi = 16, 32
	mu := make([]float64, nMu)
	wMu := make([]float64, nMu)
	quad.Legendre{}.FixedLocations(mu, wMu, -1, 1)

	n := NumCoeffs(4)
	gram := make([][]float64, n)
	for i := range gram {
		gram[i] = make([]float64, n)
	}
	y := make([]float64, n)
	for a := range mu {
		theta := math.Acos(mu[a])
		for b := 0; b < nPhi; b++ {
			phi := 2 * math.Pi * (float64(b) + 0.5) / nPhi
			w := wMu[a] * 2 * math.Pi / nPhi
			for k := range y {
				l, m := LM(k)
				y[k] = Eval(l, m, theta, phi)
			}
			for i := range y {
				for j := range y {
					gram[i][j] += w * y[i] * y[j]
				}
			}
		}
	}
	for i := range gram {
		for j := range gram[i] {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, gram[i][j], 1e-9, "gram[%d][%d]", i, j)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	k := 0
	for l := 0; l < MaxBands; l++ {
		for m := -l; m <= l; m++ {
			require.Equal(t, k, Index(l, m))
			gl, gm := LM(k)
			require.Equal(t, l, gl)
			require.Equal(t, m, gm)
			k++
		}
	}
	assert.Equal(t, NumCoeffs(MaxBands), k)
}
