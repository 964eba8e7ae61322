package calc

import (
	"math"
	"testing"
)

func almostEq(x, y, eps float64) bool {
	return math.Abs(x-y) < eps
}

func TestDerivLinear(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := make([]float64, len(xs))
	for i := range xs {
		ys[i] = 3*xs[i] - 2
	}

	dys := Deriv(xs, ys, nil)
	for i := range dys {
		if !almostEq(dys[i], 3, 1e-10) {
			t.Errorf("derivative of 3x - 2 at x = %g is %g, want 3",
				xs[i], dys[i])
		}
	}
}

func TestDerivQuadratic(t *testing.T) {
	n := 101
	xs, ys := make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) / float64(n-1)
		ys[i] = xs[i] * xs[i]
	}

	dys := Deriv(xs, ys, make([]float64, n))
	for i := range dys {
		if !almostEq(dys[i], 2*xs[i], 1e-8) {
			t.Errorf("derivative of x^2 at x = %g is %g, want %g",
				xs[i], dys[i], 2*xs[i])
		}
	}
}

func TestDerivPanics(t *testing.T) {
	table := []struct {
		xs, ys, out []float64
	}{
		{[]float64{0, 1, 2}, []float64{0, 1}, nil},
		{[]float64{0, 1}, []float64{0, 1}, nil},
		{[]float64{0, 1, 2}, []float64{0, 1, 2}, []float64{0}},
	}
	for i, line := range table {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%d) Deriv accepted invalid slice lengths", i+1)
				}
			}()
			Deriv(line.xs, line.ys, line.out)
		}()
	}
}
