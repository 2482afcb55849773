package sh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCoeffs(t *testing.T) {
	c := NewCoeffs(3)
	assert.Equal(t, 9, c.Len())
	assert.Equal(t, 3, c.Bands())
	assert.Len(t, c.G, 9)
	assert.Len(t, c.B, 9)
}

func TestBandsRejectsNonSquare(t *testing.T) {
	c := Coeffs{R: make([]float32, 5), G: make([]float32, 5), B: make([]float32, 5)}
	assert.Equal(t, 0, c.Bands())
}

func TestCoeffsArithmetic(t *testing.T) {
	c := NewCoeffs(1)
	c.R[0], c.G[0], c.B[0] = 1, 2, 3

	d := c.Clone()
	d.Scale(2)
	assert.Equal(t, []float32{1}, c.R, "clone must not alias")
	assert.Equal(t, []float32{6}, d.B)

	c.Add(d)
	assert.Equal(t, []float32{3}, c.R)
	assert.Equal(t, []float32{6}, c.G)
	assert.Equal(t, []float32{9}, c.B)

	c.Reset()
	assert.Equal(t, []float32{0}, c.R)
}

func TestInterleaved(t *testing.T) {
	c := NewCoeffs(2)
	for i := range c.R {
		c.R[i] = float32(i)
		c.G[i] = float32(10 + i)
		c.B[i] = float32(20 + i)
	}
	flat := c.Interleaved()
	assert.Len(t, flat, 12)
	assert.Equal(t, []float32{1, 11, 21}, flat[3:6])
}
