// Package skysh computes spherical-harmonic lighting coefficients for an
// outdoor sky: the Preetham sky dome through a precomputed polynomial fit,
// and the sun disc projected analytically as a point light.
//
// All entry points are pure functions over caller-owned buffers. Calls on
// independent buffers may run in parallel; callers must serialize calls that
// share an output buffer.
package skysh

//go:generate go run ../../cmd/skyfit -out tensor_data.go

import "github.com/Faultbox/skyprobe/pkg/sh"

// Shape of the polynomial coefficient tensor.
const (
	MaxBands        = sh.MaxBands
	ThetaPowers     = 14
	TurbidityPowers = 8
	Channels        = 3

	bandStride = ThetaPowers * TurbidityPowers * Channels
)

// bands indexes the generated tables by band l. Each table is laid out
// [2l+1][ThetaPowers][TurbidityPowers][Channels].
var bands = [MaxBands][]float64{
	band0[:], band1[:], band2[:], band3[:], band4[:], band5[:], band6[:],
}

// tensorOffset returns the position of one coefficient inside a band table.
func tensorOffset(bandIndex, i, j, ch int) int {
	return ((bandIndex*ThetaPowers+i)*TurbidityPowers+j)*Channels + ch
}

// TensorAt returns the coefficient of theta^i * turbidity^j contributing to
// SH term (l, m = bandIndex-l) for one color channel.
func TensorAt(l, bandIndex, i, j, ch int) float64 {
	return bands[l][tensorOffset(bandIndex, i, j, ch)]
}

// InFitDomain reports whether (theta, turbidity) lies inside the region the
// tables were regressed over. Outside it the polynomials extrapolate.
func InFitDomain(theta, turbidity float64) bool {
	return theta >= FitThetaMin && theta <= FitThetaMax &&
		turbidity >= FitTurbidityMin && turbidity <= FitTurbidityMax
}

// powerMatrix is P[i][j] = theta^i * turbidity^j.
type powerMatrix [ThetaPowers][TurbidityPowers]float64

func newPowerMatrix(theta, turbidity float64) *powerMatrix {
	var thetaPow [ThetaPowers]float64
	var turbPow [TurbidityPowers]float64
	thetaPow[0], turbPow[0] = 1, 1
	for i := 1; i < ThetaPowers; i++ {
		thetaPow[i] = thetaPow[i-1] * theta
	}
	for j := 1; j < TurbidityPowers; j++ {
		turbPow[j] = turbPow[j-1] * turbidity
	}

	var p powerMatrix
	for i := range p {
		for j := range p[i] {
			p[i][j] = thetaPow[i] * turbPow[j]
		}
	}
	return &p
}

// contract dots the power matrix against the tensor block for (l, bandIndex).
func (p *powerMatrix) contract(l, bandIndex int) [Channels]float64 {
	table := bands[l]
	var out [Channels]float64
	for i := 0; i < ThetaPowers; i++ {
		for j := 0; j < TurbidityPowers; j++ {
			off := tensorOffset(bandIndex, i, j, 0)
			pw := p[i][j]
			out[0] += pw * table[off]
			out[1] += pw * table[off+1]
			out[2] += pw * table[off+2]
		}
	}
	return out
}
