package skyfit

import (
	"bytes"
	"context"
	"go/parser"
	"go/token"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Faultbox/skyprobe/pkg/preetham"
	"github.com/Faultbox/skyprobe/pkg/sh"
	"github.com/Faultbox/skyprobe/pkg/skysh"
)

func smallOptions() Options {
	return Options{
		ThetaNodes:     ThetaPowers,
		TurbidityNodes: TurbidityPowers,
		ThetaMin:       0,
		ThetaMax:       math.Pi / 2,
		TurbidityMin:   2,
		TurbidityMax:   10,
		MuNodes:        16,
		PhiSamples:     32,
		Workers:        4,
	}
}

func TestShapeMatchesSkysh(t *testing.T) {
	assert.Equal(t, skysh.ThetaPowers, ThetaPowers)
	assert.Equal(t, skysh.TurbidityPowers, TurbidityPowers)
	assert.Equal(t, skysh.Channels, Channels)
}

func TestOptionsValidate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())
	require.NoError(t, smallOptions().Validate())

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"too few theta nodes", func(o *Options) { o.ThetaNodes = ThetaPowers - 1 }},
		{"too few turbidity nodes", func(o *Options) { o.TurbidityNodes = 3 }},
		{"empty theta range", func(o *Options) { o.ThetaMax = o.ThetaMin }},
		{"inverted turbidity range", func(o *Options) { o.TurbidityMin, o.TurbidityMax = 10, 2 }},
		{"no azimuth samples", func(o *Options) { o.PhiSamples = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.mutate(&o)
			assert.Error(t, o.Validate())
		})
	}
}

func TestChebyshevNodesInsideRange(t *testing.T) {
	nodes := chebyshevNodes(16, 2, 10)
	require.Len(t, nodes, 16)
	for i, x := range nodes {
		assert.Greater(t, x, 2.0)
		assert.Less(t, x, 10.0)
		if i > 0 {
			assert.Less(t, x, nodes[i-1], "nodes run from hi to lo")
		}
	}
}

func TestAffineMonomialsReproduceSeries(t *testing.T) {
	const n, lo, hi = 8, 2.0, 10.0
	m := affineMonomials(n, lo, hi)
	coeffs := []float64{1.5, -0.25, 3, 0.75, -2, 0.5, 0.125, -1}

	for _, x := range []float64{2, 3.3, 6, 9.9} {
		u := (2*x - lo - hi) / (hi - lo)
		var want float64
		for i, c := range coeffs {
			want += c * math.Cos(float64(i)*math.Acos(u))
		}
		var got float64
		for q := 0; q < n; q++ {
			var a float64
			for i, c := range coeffs {
				a += c * m.At(i, q)
			}
			got += a * math.Pow(x, float64(q))
		}
		assert.InDelta(t, want, got, 1e-9, "x=%v", x)
	}
}

func TestHemisphereProjectsConstant(t *testing.T) {
	h := NewHemisphere(8, 16, 3)
	require.Equal(t, 128, h.Len())

	got := h.ProjectFunc(func(theta, phi float64) preetham.RGB { return preetham.RGB{1, 2, 0} })
	require.Len(t, got, 9)

	assert.InDelta(t, math.Sqrt(math.Pi), got[0][0], 1e-12)
	assert.InDelta(t, 2*math.Sqrt(math.Pi), got[0][1], 1e-12)
	assert.InDelta(t, 0, got[0][2], 1e-12)
	assert.InDelta(t, math.Sqrt(3*math.Pi)/2, got[sh.Index(1, 0)][0], 1e-12)
	for _, k := range []int{sh.Index(1, -1), sh.Index(1, 1), sh.Index(2, -2), sh.Index(2, 1)} {
		assert.InDelta(t, 0, got[k][0], 1e-12, "k=%d", k)
	}
}

func TestHemisphereSamples(t *testing.T) {
	h := NewHemisphere(8, 16, 1)
	samples := h.Samples()
	require.Len(t, samples, h.Len())

	var total float64
	for _, s := range samples {
		assert.Less(t, s.Theta, math.Pi/2)
		assert.GreaterOrEqual(t, s.Phi, -math.Pi)
		assert.Less(t, s.Phi, math.Pi)
		total += s.Weight
	}
	assert.InDelta(t, 2*math.Pi, total, 1e-12, "weights cover the hemisphere")
}

func TestFitInterpolatesAtNodes(t *testing.T) {
	opts := smallOptions()
	table, err := Fit(context.Background(), opts, nil)
	require.NoError(t, err)

	hemi := NewHemisphere(opts.MuNodes, opts.PhiSamples, sh.MaxBands)
	thetas := chebyshevNodes(opts.ThetaNodes, opts.ThetaMin, opts.ThetaMax)
	turbidities := chebyshevNodes(opts.TurbidityNodes, opts.TurbidityMin, opts.TurbidityMax)
	// Expanding the series into raw-variable monomials cancels terms near 1e11,
	// which leaves a relative floor around 1e-7.
	for _, s := range [][2]int{{0, 0}, {3, 2}, {13, 7}} {
		assert.Less(t, table.Residual(hemi, thetas[s[0]], turbidities[s[1]]), 1e-6)
	}
}

func TestChebyshevSeriesInterpolatesAtNodes(t *testing.T) {
	opts := smallOptions()
	hemi := NewHemisphere(8, 16, 2)
	thetas := chebyshevNodes(opts.ThetaNodes, opts.ThetaMin, opts.ThetaMax)
	turbidities := chebyshevNodes(opts.TurbidityNodes, opts.TurbidityMin, opts.TurbidityMax)

	// Band 0 and the axial band 1 term of the green channel.
	for _, k := range []int{sh.Index(0, 0), sh.Index(1, 0)} {
		y := mat.NewDense(len(thetas), len(turbidities), nil)
		for a, theta := range thetas {
			for b, turbidity := range turbidities {
				y.Set(a, b, hemi.Project(preetham.NewSky(theta, 0, turbidity))[k][1])
			}
		}

		var cheb mat.Dense
		cheb.Product(chebyshevWeights(ThetaPowers, opts.ThetaNodes), y, chebyshevWeights(TurbidityPowers, opts.TurbidityNodes).T())

		scale := mat.Norm(y, math.Inf(1))
		for a := range thetas {
			for b := range turbidities {
				var got float64
				for i := 0; i < ThetaPowers; i++ {
					ti := math.Cos(float64(i) * math.Pi * (float64(a) + 0.5) / float64(len(thetas)))
					for j := 0; j < TurbidityPowers; j++ {
						tj := math.Cos(float64(j) * math.Pi * (float64(b) + 0.5) / float64(len(turbidities)))
						got += cheb.At(i, j) * ti * tj
					}
				}
				assert.InDelta(t, y.At(a, b), got, 1e-12*scale, "k=%d node=(%d,%d)", k, a, b)
			}
		}
	}
}

func TestFitLeavesNegativeOrdersZero(t *testing.T) {
	table, err := Fit(context.Background(), smallOptions(), nil)
	require.NoError(t, err)
	for l := 1; l < sh.MaxBands; l++ {
		for bandIndex := 0; bandIndex < l; bandIndex++ {
			assert.Equal(t, [Channels]float64{}, table.Eval(l, bandIndex-l, 0.7, 4))
		}
	}
}

func TestFitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Fit(ctx, smallOptions(), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWriteGo(t *testing.T) {
	table, err := Fit(context.Background(), smallOptions(), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGo(&buf, "skysh", table))
	src := buf.String()

	assert.True(t, strings.HasPrefix(src, "// Code generated by skyfit. DO NOT EDIT.\n"))
	f, err := parser.ParseFile(token.NewFileSet(), "tensor_data.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "skysh", f.Name.Name)
	for l := 0; l < sh.MaxBands; l++ {
		assert.Contains(t, src, "var band"+strconv.Itoa(l)+" = [")
	}

	// The first row of band0 holds theta^0 for every turbidity power.
	lines := strings.Split(src, "\n")
	var row []string
	for i, line := range lines {
		if strings.TrimSpace(line) == "// m=0 theta^0" {
			row = append(strings.Split(strings.TrimSpace(lines[i+1]), ", "), strings.Split(strings.TrimSpace(lines[i+2]), ", ")...)
			break
		}
	}
	require.Len(t, row, TurbidityPowers*Channels)
	for n, field := range row {
		v, err := strconv.ParseFloat(strings.TrimSuffix(field, ","), 64)
		require.NoError(t, err)
		assert.Equal(t, table.At(0, 0, 0, n/Channels, n%Channels), v)
	}
}

func TestDefaultFit(t *testing.T) {
	if testing.Short() {
		t.Skip("full-resolution fit")
	}
	opts := DefaultOptions()
	table, err := Fit(context.Background(), opts, nil)
	require.NoError(t, err)

	states := [][2]float64{{0.3, 2.5}, {0.9, 4}, {1.2, 7}, {1.5, 9.5}, {0.05, 6}, {0.7, 3}}

	t.Run("close to direct projection", func(t *testing.T) {
		hemi := NewHemisphere(opts.MuNodes, opts.PhiSamples, sh.MaxBands)
		for _, s := range states {
			assert.Less(t, table.Residual(hemi, s[0], s[1]), 0.03, "theta=%v T=%v", s[0], s[1])
		}
	})

	t.Run("checked-in tables are current", func(t *testing.T) {
		for _, s := range states {
			got, err := skysh.SkyCoefficients(skysh.Sun{Theta: s[0], Turbidity: s[1]}, sh.MaxBands, false, 1)
			require.NoError(t, err)
			norm := table.Eval(0, 0, s[0], s[1])
			tol := 1e-5 * math.Max(norm[0], math.Max(norm[1], norm[2]))
			for k := 0; k < got.Len(); k++ {
				l, m := sh.LM(k)
				want := table.Eval(l, m, s[0], s[1])
				assert.InDelta(t, want[0], float64(got.R[k]), tol, "k=%d", k)
				assert.InDelta(t, want[1], float64(got.G[k]), tol, "k=%d", k)
				assert.InDelta(t, want[2], float64(got.B[k]), tol, "k=%d", k)
			}
		}
	})
}
