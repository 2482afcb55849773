// Package skyfit regresses the Preetham sky's SH expansion onto polynomials in
// sun zenith angle and turbidity. Its output is the coefficient table compiled
// into pkg/skysh.
package skyfit

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/Faultbox/skyprobe/pkg/preetham"
	"github.com/Faultbox/skyprobe/pkg/sh"
)

// Table shape. These mirror the constants pkg/skysh compiles against.
const (
	ThetaPowers     = 14
	TurbidityPowers = 8
	Channels        = 3

	bandStride = ThetaPowers * TurbidityPowers * Channels
)

// Options controls the sampling and quadrature of a fit.
type Options struct {
	// Sun states are sampled on a Chebyshev grid of ThetaNodes x TurbidityNodes.
	ThetaNodes     int
	TurbidityNodes int

	ThetaMin, ThetaMax         float64
	TurbidityMin, TurbidityMax float64

	// Hemisphere quadrature resolution.
	MuNodes    int
	PhiSamples int

	// Workers bounds concurrent sky projections.
	Workers int
}

// DefaultOptions returns the settings the checked-in tables were built with.
func DefaultOptions() Options {
	return Options{
		ThetaNodes:     28,
		TurbidityNodes: 16,
		ThetaMin:       0,
		ThetaMax:       math.Pi / 2,
		TurbidityMin:   2,
		TurbidityMax:   10,
		MuNodes:        64,
		PhiSamples:     128,
		Workers:        runtime.NumCPU(),
	}
}

// Validate checks that the options describe a solvable fit.
func (o Options) Validate() error {
	switch {
	case o.ThetaNodes < ThetaPowers:
		return fmt.Errorf("theta nodes %d below polynomial order %d", o.ThetaNodes, ThetaPowers)
	case o.TurbidityNodes < TurbidityPowers:
		return fmt.Errorf("turbidity nodes %d below polynomial order %d", o.TurbidityNodes, TurbidityPowers)
	case !(o.ThetaMin < o.ThetaMax):
		return fmt.Errorf("empty theta range [%g, %g]", o.ThetaMin, o.ThetaMax)
	case !(o.TurbidityMin < o.TurbidityMax):
		return fmt.Errorf("empty turbidity range [%g, %g]", o.TurbidityMin, o.TurbidityMax)
	case o.MuNodes < 1 || o.PhiSamples < 1:
		return fmt.Errorf("quadrature needs at least one sample, got %dx%d", o.MuNodes, o.PhiSamples)
	}
	return nil
}

// Table holds fitted coefficients in the layout pkg/skysh expects:
// Bands[l] is [2l+1][ThetaPowers][TurbidityPowers][Channels].
type Table struct {
	Options Options
	Bands   [sh.MaxBands][]float64
}

func newTable(opts Options) *Table {
	t := &Table{Options: opts}
	for l := range t.Bands {
		t.Bands[l] = make([]float64, (2*l+1)*bandStride)
	}
	return t
}

func offset(bandIndex, i, j, ch int) int {
	return ((bandIndex*ThetaPowers+i)*TurbidityPowers+j)*Channels + ch
}

// At returns the coefficient of theta^i * turbidity^j for SH term
// (l, bandIndex-l) in one channel.
func (t *Table) At(l, bandIndex, i, j, ch int) float64 {
	return t.Bands[l][offset(bandIndex, i, j, ch)]
}

// Eval evaluates the fitted polynomial for SH term (l, m) at one sun state.
func (t *Table) Eval(l, m int, theta, turbidity float64) [Channels]float64 {
	var out [Channels]float64
	bandIndex := l + m
	thetaPow := 1.0
	for i := 0; i < ThetaPowers; i++ {
		turbPow := 1.0
		for j := 0; j < TurbidityPowers; j++ {
			for ch := range out {
				out[ch] += thetaPow * turbPow * t.At(l, bandIndex, i, j, ch)
			}
			turbPow *= turbidity
		}
		thetaPow *= theta
	}
	return out
}

// Fit samples the sky over the Chebyshev grid, projects each sample onto the
// SH basis and converts the resulting Chebyshev series to monomials in raw
// theta and turbidity. Terms with m < 0 are left zero: the un-rotated sky is
// symmetric about azimuth 0.
func Fit(ctx context.Context, opts Options, log *zap.Logger) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	thetas := chebyshevNodes(opts.ThetaNodes, opts.ThetaMin, opts.ThetaMax)
	turbidities := chebyshevNodes(opts.TurbidityNodes, opts.TurbidityMin, opts.TurbidityMax)
	hemi := NewHemisphere(opts.MuNodes, opts.PhiSamples, sh.MaxBands)

	log.Info("sampling sky",
		zap.Int("sunStates", len(thetas)*len(turbidities)),
		zap.Int("directions", hemi.Len()),
		zap.Int("workers", opts.Workers),
	)

	// samples[a][b][k] is the projection for sun state (thetas[a], turbidities[b]).
	samples := make([][][][3]float64, len(thetas))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for a, theta := range thetas {
		g.Go(func() error {
			row := make([][][3]float64, len(turbidities))
			for b, turbidity := range turbidities {
				if err := gctx.Err(); err != nil {
					return err
				}
				row[b] = hemi.Project(preetham.NewSky(theta, 0, turbidity))
			}
			samples[a] = row
			log.Debug("sampled theta row", zap.Int("row", a), zap.Float64("theta", theta))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sample sky: %w", err)
	}

	wt := chebyshevWeights(ThetaPowers, opts.ThetaNodes)
	wu := chebyshevWeights(TurbidityPowers, opts.TurbidityNodes)
	mt := affineMonomials(ThetaPowers, opts.ThetaMin, opts.ThetaMax)
	mu := affineMonomials(TurbidityPowers, opts.TurbidityMin, opts.TurbidityMax)

	t := newTable(opts)
	y := mat.NewDense(opts.ThetaNodes, opts.TurbidityNodes, nil)
	var cheb, mono mat.Dense
	for k := 0; k < sh.NumCoeffs(sh.MaxBands); k++ {
		l, m := sh.LM(k)
		if m < 0 {
			continue
		}
		for ch := 0; ch < Channels; ch++ {
			for a := range thetas {
				for b := range turbidities {
					y.Set(a, b, samples[a][b][k][ch])
				}
			}
			cheb.Product(wt, y, wu.T())
			mono.Product(mt.T(), &cheb, mu)
			for i := 0; i < ThetaPowers; i++ {
				for j := 0; j < TurbidityPowers; j++ {
					t.Bands[l][offset(l+m, i, j, ch)] = mono.At(i, j)
				}
			}
		}
	}
	log.Info("fit complete", zap.Int("terms", sh.NumCoeffs(sh.MaxBands)))
	return t, nil
}

// Residual returns the worst deviation of the fit from a direct projection at
// one sun state, relative to the largest band-0 channel there.
func (t *Table) Residual(hemi *Hemisphere, theta, turbidity float64) float64 {
	ref := hemi.Project(preetham.NewSky(theta, 0, turbidity))
	norm := math.Max(math.Abs(ref[0][0]), math.Max(math.Abs(ref[0][1]), math.Abs(ref[0][2])))
	var worst float64
	for k := range ref {
		l, m := sh.LM(k)
		got := t.Eval(l, m, theta, turbidity)
		for ch := range got {
			worst = math.Max(worst, math.Abs(got[ch]-ref[k][ch]))
		}
	}
	return worst / norm
}

// chebyshevNodes returns the n Chebyshev-Gauss nodes mapped onto [lo, hi].
func chebyshevNodes(n int, lo, hi float64) []float64 {
	nodes := make([]float64, n)
	for k := range nodes {
		nodes[k] = 0.5*(lo+hi) + 0.5*(hi-lo)*math.Cos(math.Pi*(float64(k)+0.5)/float64(n))
	}
	return nodes
}

// chebyshevWeights returns the discrete Chebyshev transform truncated to
// order terms: row i maps node samples to the coefficient of T_i.
func chebyshevWeights(order, n int) *mat.Dense {
	w := mat.NewDense(order, n, nil)
	for i := 0; i < order; i++ {
		for k := 0; k < n; k++ {
			x := math.Cos(math.Pi * (float64(k) + 0.5) / float64(n))
			v := 2 / float64(n) * math.Cos(float64(i)*math.Acos(x))
			if i == 0 {
				v *= 0.5
			}
			w.Set(i, k, v)
		}
	}
	return w
}

// chebyshevMonomials returns the power-basis coefficients of T_0..T_{n-1}:
// entry (i, p) is the coefficient of x^p in T_i(x).
func chebyshevMonomials(n int) *mat.Dense {
	t := mat.NewDense(n, n, nil)
	t.Set(0, 0, 1)
	if n > 1 {
		t.Set(1, 1, 1)
	}
	for i := 2; i < n; i++ {
		for p := 0; p < n; p++ {
			v := -t.At(i-2, p)
			if p > 0 {
				v += 2 * t.At(i-1, p-1)
			}
			t.Set(i, p, v)
		}
	}
	return t
}

// affineMonomials returns M with T_i(u(x)) = sum_q M[i][q] x^q, where u maps
// [lo, hi] onto [-1, 1].
func affineMonomials(n int, lo, hi float64) *mat.Dense {
	a := 2 / (hi - lo)
	b := -(hi + lo) / (hi - lo)
	t := chebyshevMonomials(n)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for p := 0; p < n; p++ {
			c := t.At(i, p)
			if c == 0 {
				continue
			}
			for q := 0; q <= p; q++ {
				v := c * float64(combin.Binomial(p, q)) * math.Pow(a, float64(q)) * math.Pow(b, float64(p-q))
				m.Set(i, q, m.At(i, q)+v)
			}
		}
	}
	return m
}
