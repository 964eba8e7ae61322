package path

import (
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/AnhaaD/myphysicslab/math/calc"
	"github.com/AnhaaD/myphysicslab/math/rand"
)

// RandomPoints returns n points drawn uniformly at random along p's
// parameter domain, advancing gen once per point. This is how randomized
// initial conditions are placed on a track: t = start + f*(finish - start)
// with f a NextFloat draw, so the same seed always produces the same
// placements.
func RandomPoints(gen *rand.Generator, p Path, n int) []Point {
	start, finish := p.StartT(), p.FinishT()
	pts := make([]Point, n)
	for i := range pts {
		t := start + gen.NextFloat()*(finish-start)
		pts[i].X, pts[i].Y = p.Evaluate(t)
	}
	return pts
}

// ShuffledPoints spaces n points evenly along p and returns them in an
// order drawn from gen.RandomInts(n), advancing gen exactly n times. On a
// closed loop the finish parameter is skipped, since it lands on the same
// point as the start.
func ShuffledPoints(gen *rand.Generator, p Path, n int) []Point {
	ts := spacedParams(p, n)
	pts := make([]Point, n)
	for i, j := range gen.RandomInts(n) {
		pts[i].X, pts[i].Y = p.Evaluate(ts[j])
	}
	return pts
}

func spacedParams(p Path, n int) []float64 {
	start, span := p.StartT(), p.FinishT()-p.StartT()
	ts := make([]float64, n)
	for i := range ts {
		switch {
		case p.IsClosedLoop():
			ts[i] = start + span*float64(i)/float64(n)
		case n == 1:
			ts[i] = start
		default:
			ts[i] = start + span*float64(i)/float64(n-1)
		}
	}
	return ts
}

// Length computes the arc length of p by sampling it at the given number of
// uniformly spaced parameters, differentiating the coordinates numerically,
// and integrating the speed sqrt(x'^2 + y'^2) with the trapezoid rule. The
// sample count trades accuracy for time; a few thousand samples gives about
// six digits on smooth paths.
func Length(p Path, samples int) float64 {
	if samples < 3 {
		panic("Length requires at least three samples.")
	}

	start, span := p.StartT(), p.FinishT()-p.StartT()
	ts := make([]float64, samples)
	xs := make([]float64, samples)
	ys := make([]float64, samples)
	for i := range ts {
		ts[i] = start + span*float64(i)/float64(samples-1)
		xs[i], ys[i] = p.Evaluate(ts[i])
	}

	dx := calc.Deriv(ts, xs, nil)
	dy := calc.Deriv(ts, ys, nil)
	speed := make([]float64, samples)
	for i := range speed {
		speed[i] = math.Hypot(dx[i], dy[i])
	}

	return integrate.Trapezoidal(ts, speed)
}
