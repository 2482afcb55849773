package sh

import "math"

// Coeffs is a per-channel SH coefficient set. Each channel holds
// NumCoeffs(bands) values.
type Coeffs struct {
	R []float32 `yaml:"r" json:"r"`
	G []float32 `yaml:"g" json:"g"`
	B []float32 `yaml:"b" json:"b"`
}

// NewCoeffs allocates zeroed buffers for numBands bands.
func NewCoeffs(numBands int) Coeffs {
	n := NumCoeffs(numBands)
	return Coeffs{
		R: make([]float32, n),
		G: make([]float32, n),
		B: make([]float32, n),
	}
}

// Len returns the number of coefficients per channel.
func (c Coeffs) Len() int {
	return len(c.R)
}

// Bands returns the band count implied by the buffer length, or 0 when the
// length is not a perfect square.
func (c Coeffs) Bands() int {
	n := len(c.R)
	b := int(math.Sqrt(float64(n)))
	for b*b > n {
		b--
	}
	for (b+1)*(b+1) <= n {
		b++
	}
	if b*b != n {
		return 0
	}
	return b
}

// Channels returns the three channel slices in R, G, B order.
func (c Coeffs) Channels() [3][]float32 {
	return [3][]float32{c.R, c.G, c.B}
}

// Clone returns a deep copy.
func (c Coeffs) Clone() Coeffs {
	return Coeffs{
		R: append([]float32(nil), c.R...),
		G: append([]float32(nil), c.G...),
		B: append([]float32(nil), c.B...),
	}
}

// Reset zeroes every coefficient in place.
func (c Coeffs) Reset() {
	for _, ch := range c.Channels() {
		clear(ch)
	}
}

// Scale multiplies every coefficient by f in place.
func (c Coeffs) Scale(f float32) {
	for _, ch := range c.Channels() {
		for i := range ch {
			ch[i] *= f
		}
	}
}

// Add accumulates o into c. Both sets must have the same length.
func (c Coeffs) Add(o Coeffs) {
	for i := range c.R {
		c.R[i] += o.R[i]
		c.G[i] += o.G[i]
		c.B[i] += o.B[i]
	}
}

// Interleaved returns the coefficients as a flat slice for GPU upload.
// Format: [r0, g0, b0, r1, g1, b1, ...]
func (c Coeffs) Interleaved() []float32 {
	result := make([]float32, len(c.R)*3)
	for i := range c.R {
		result[i*3+0] = c.R[i]
		result[i*3+1] = c.G[i]
		result[i*3+2] = c.B[i]
	}
	return result
}
