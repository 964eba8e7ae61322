/*package path defines the parametric path contract that randomized initial
conditions are sampled against, along with a minimal concrete shape.

A path is a pure function of a scalar parameter: Evaluate(t) returns the
(x, y) point at t for t within [StartT(), FinishT()]. Paths hold nothing but
immutable shape parameters, so they are safe to share between goroutines.
The simulation's track geometry and constraint machinery live elsewhere and
only rely on this surface.
*/
package path

// Path is a parametric curve over a fixed parameter domain.
type Path interface {
	// Evaluate returns the point at parameter t. Behavior outside
	// [StartT(), FinishT()] is shape-defined; the closed-form shapes
	// here extend naturally.
	Evaluate(t float64) (x, y float64)
	// StartT returns the lower bound of the parameter domain.
	StartT() float64
	// FinishT returns the upper bound of the parameter domain.
	FinishT() float64
	// IsClosedLoop reports whether the curve's endpoints meet, i.e.
	// Evaluate(StartT()) and Evaluate(FinishT()) are the same point.
	IsClosedLoop() bool
}

// Point is a position on a path.
type Point struct {
	X, Y float64
}
