// Package sh evaluates the real spherical harmonic basis shared by the sky and
// sun projectors.
//
// Coefficients for band l and order m (-l <= m <= l) live at index
// k = l*(l+1) + m. Orders m > 0 carry the cos(m*phi) terms and orders m < 0
// the sin(|m|*phi) terms. Every producer of coefficients in this module agrees
// with Eval, so their outputs can be summed.
package sh

import "math"

// MaxBands is the highest band count any projector supports.
const MaxBands = 7

// Index returns the flat coefficient index of (l, m).
func Index(l, m int) int {
	return l*(l+1) + m
}

// LM is the inverse of Index.
func LM(k int) (l, m int) {
	l = int(math.Sqrt(float64(k)))
	for l*l > k {
		l--
	}
	for (l+1)*(l+1) <= k {
		l++
	}
	return l, k - l*(l+1)
}

// NumCoeffs returns the number of coefficients per channel for numBands bands.
func NumCoeffs(numBands int) int {
	return numBands * numBands
}

// DoubleFactorial returns n!!. Both 0 and -1 yield 1.
func DoubleFactorial(n int) int {
	if n == 0 || n == -1 {
		return 1
	}
	result := n
	for n -= 2; n > 0; n -= 2 {
		result *= n
	}
	return result
}

// Factorial returns n!. Both 0 and -1 yield 1.
func Factorial(n int) int {
	if n == 0 || n == -1 {
		return 1
	}
	result := n
	for n--; n > 0; n-- {
		result *= n
	}
	return result
}

// legendreMM is P(x, m, m) = (-1)^m (2m-1)!! (1-x^2)^(m/2).
func legendreMM(x float64, m int) float64 {
	sign := 1.0
	if m%2 == 1 {
		sign = -1.0
	}
	return sign * float64(DoubleFactorial(2*m-1)) * math.Pow(math.Sqrt(1-x*x), float64(m))
}

// Legendre evaluates the associated Legendre polynomial P(x, l, m) for
// -1 <= x <= 1 and l >= m >= 0 with the textbook three-term recursion.
// It is the reference for the iterative evaluation used by Eval.
func Legendre(x float64, l, m int) float64 {
	if l == m {
		return legendreMM(x, m)
	}
	if l == m+1 {
		return x * float64(2*m+1) * Legendre(x, m, m)
	}
	return (x*float64(2*l-1)*Legendre(x, l-1, m) - float64(l+m-1)*Legendre(x, l-2, m)) / float64(l-m)
}

// legendre runs the same recurrence upwards from P(m, m). The operations and
// their order match Legendre, so results are bit-identical.
func legendre(x float64, l, m int) float64 {
	pmm := legendreMM(x, m)
	if l == m {
		return pmm
	}
	pm1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pm1
	}
	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (x*float64(2*ll-1)*pm1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm, pm1 = pm1, pll
	}
	return pll
}

// K returns the normalization constant sqrt((2l+1)(l-m)! / (4*pi*(l+m)!)).
func K(l, m int) float64 {
	return math.Sqrt((float64(2*l+1) * float64(Factorial(l-m))) / (4 * math.Pi * float64(Factorial(l+m))))
}

// Eval returns the real SH basis function Y(l, m) at polar angle theta
// (0 = up) and azimuth phi.
func Eval(l, m int, theta, phi float64) float64 {
	x := math.Cos(theta)
	switch {
	case m == 0:
		return K(l, 0) * legendre(x, l, 0)
	case m > 0:
		return math.Sqrt2 * K(l, m) * math.Cos(float64(m)*phi) * legendre(x, l, m)
	default:
		return math.Sqrt2 * K(l, -m) * math.Sin(float64(-m)*phi) * legendre(x, l, -m)
	}
}
