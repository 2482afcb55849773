package skyfit

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/Faultbox/skyprobe/pkg/preetham"
	"github.com/Faultbox/skyprobe/pkg/sh"
)

// Hemisphere is a fixed quadrature over the upper hemisphere used to project
// radiance functions onto the SH basis. Gauss-Legendre nodes in cos(theta)
// are crossed with evenly spaced azimuth samples centered in their cells.
type Hemisphere struct {
	NumBands int

	theta, phi, weights []float64
	// weighted[k][d] is Y_k(dir d) times the solid-angle weight of d.
	weighted [][]float64
}

// NewHemisphere builds a quadrature with muNodes polar and phiSamples
// azimuthal samples for bands 0..numBands-1.
func NewHemisphere(muNodes, phiSamples, numBands int) *Hemisphere {
	mu := make([]float64, muNodes)
	w := make([]float64, muNodes)
	quad.Legendre{}.FixedLocations(mu, w, 0, 1)

	n := muNodes * phiSamples
	h := &Hemisphere{
		NumBands: numBands,
		theta:    make([]float64, 0, n),
		phi:      make([]float64, 0, n),
		weights:  make([]float64, 0, n),
	}
	dphi := 2 * math.Pi / float64(phiSamples)
	for i := range mu {
		theta := math.Acos(mu[i])
		for k := 0; k < phiSamples; k++ {
			h.theta = append(h.theta, theta)
			h.phi = append(h.phi, dphi*(float64(k)+0.5)-math.Pi)
			h.weights = append(h.weights, w[i]*dphi)
		}
	}

	h.weighted = make([][]float64, sh.NumCoeffs(numBands))
	for k := range h.weighted {
		l, m := sh.LM(k)
		row := make([]float64, n)
		for d := range row {
			row[d] = sh.Eval(l, m, h.theta[d], h.phi[d]) * h.weights[d]
		}
		h.weighted[k] = row
	}
	return h
}

// Len returns the number of quadrature directions.
func (h *Hemisphere) Len() int { return len(h.theta) }

// Samples returns the quadrature directions with their solid-angle weights.
func (h *Hemisphere) Samples() []preetham.Sample {
	out := make([]preetham.Sample, len(h.theta))
	for d := range out {
		out[d] = preetham.Sample{Theta: h.theta[d], Phi: h.phi[d], Weight: h.weights[d]}
	}
	return out
}

// ProjectFunc integrates f against every basis function.
func (h *Hemisphere) ProjectFunc(f func(theta, phi float64) preetham.RGB) [][3]float64 {
	var channels [3][]float64
	for ch := range channels {
		channels[ch] = make([]float64, len(h.theta))
	}
	for d := range h.theta {
		c := f(h.theta[d], h.phi[d])
		channels[0][d], channels[1][d], channels[2][d] = c[0], c[1], c[2]
	}

	out := make([][3]float64, len(h.weighted))
	for k, row := range h.weighted {
		for ch := range channels {
			out[k][ch] = floats.Dot(row, channels[ch])
		}
	}
	return out
}

// Project integrates the sky radiance against every basis function.
func (h *Hemisphere) Project(sky *preetham.Sky) [][3]float64 {
	return h.ProjectFunc(sky.Radiance)
}
