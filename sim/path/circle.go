package path

import (
	"math"
)

const (
	circleStartT  = -3 * math.Pi / 2
	circleFinishT = math.Pi / 2
)

// Circle is a circular path of a given radius centered on the origin,
// traversed counterclockwise starting from the top of the circle. Its
// parameter domain spans one full revolution, [-3*pi/2, pi/2].
type Circle struct {
	radius float64
}

// NewCircle returns a circular path with the given radius. Panics if the
// radius is not positive.
func NewCircle(radius float64) *Circle {
	if radius <= 0 {
		panic("Circle radius must be positive.")
	}
	return &Circle{radius: radius}
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 { return c.radius }

// Evaluate returns the point (r cos t, r sin t).
func (c *Circle) Evaluate(t float64) (x, y float64) {
	return c.radius * math.Cos(t), c.radius * math.Sin(t)
}

func (c *Circle) StartT() float64  { return circleStartT }
func (c *Circle) FinishT() float64 { return circleFinishT }

// IsClosedLoop always returns true: the domain spans exactly one
// revolution.
func (c *Circle) IsClosedLoop() bool { return true }
