package math

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSphericalRoundTrip(t *testing.T) {
	tests := []Spherical{
		{Theta: 0.3, Phi: 0},
		{Theta: 1.2, Phi: 2.5},
		{Theta: math.Pi / 2, Phi: -1.0},
		{Theta: 2.8, Phi: 3.0},
	}
	for _, s := range tests {
		got := FromVec(s.Vec())
		if math.Abs(got.Theta-s.Theta) > 1e-12 || math.Abs(got.Phi-s.Phi) > 1e-12 {
			t.Errorf("round trip of %+v gave %+v", s, got)
		}
	}
}

func TestVecIsUnit(t *testing.T) {
	v := Spherical{Theta: 0.9, Phi: 4.1}.Vec()
	if n := r3.Norm(v); math.Abs(n-1) > 1e-12 {
		t.Errorf("expected unit vector, got norm %v", n)
	}
}

func TestFromVecZero(t *testing.T) {
	if s := FromVec(r3.Vec{}); s.Theta != 0 || s.Phi != 0 {
		t.Errorf("zero vector should map to zenith, got %+v", s)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{2 * math.Pi, 0},
		{-3 * math.Pi / 2, math.Pi / 2},
		{math.Pi, -math.Pi},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapAngle(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestSinc(t *testing.T) {
	if Sinc(0) != 1 {
		t.Errorf("Sinc(0) should be 1, got %v", Sinc(0))
	}
	if math.Abs(Sinc(math.Pi)) > 1e-15 {
		t.Errorf("Sinc(pi) should be ~0, got %v", Sinc(math.Pi))
	}
	want := math.Sin(0.5) / 0.5
	if math.Abs(Sinc(0.5)-want) > 1e-15 {
		t.Errorf("Sinc(0.5): expected %v, got %v", want, Sinc(0.5))
	}
}

func TestFinite(t *testing.T) {
	if !Finite(1, 2, 3) {
		t.Error("expected finite values to pass")
	}
	if Finite(1, math.NaN()) {
		t.Error("NaN should be rejected")
	}
	if Finite(math.Inf(-1)) {
		t.Error("-Inf should be rejected")
	}
}

func TestLerpSpherical(t *testing.T) {
	a := Spherical{Theta: 0, Phi: 0}
	b := Spherical{Theta: math.Pi / 2, Phi: 0}

	// Endpoints
	if got := LerpSpherical(a, b, 0); math.Abs(got.Theta) > 1e-9 {
		t.Errorf("t=0 should return a, got %+v", got)
	}
	if got := LerpSpherical(a, b, 1); math.Abs(got.Theta-math.Pi/2) > 1e-9 {
		t.Errorf("t=1 should return b, got %+v", got)
	}

	// Halfway along a 90 degree arc is 45 degrees
	if got := LerpSpherical(a, b, 0.5); math.Abs(got.Theta-math.Pi/4) > 1e-9 {
		t.Errorf("t=0.5: expected theta ~%v, got %v", math.Pi/4, got.Theta)
	}
}
