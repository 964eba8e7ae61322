/*package calc provides the small calculus routines the simulation code
needs.*/
package calc

// Deriv computes the second-order numerical derivative of a sequence of
// (x, y) points and writes it to out, which it also returns. A nil out
// allocates a fresh slice. The points do not need to be uniformly spaced,
// but at least three are required for the one-sided edge stencils.
func Deriv(xs, ys, out []float64) []float64 {
	n := len(xs)
	if len(ys) != n {
		panic("Length of ys and xs are not the same.")
	}
	if n < 3 {
		panic("Deriv requires at least three points.")
	}
	if out == nil {
		out = make([]float64, n)
	} else if len(out) != n {
		panic("Length of out and xs are not the same.")
	}

	for i := 1; i < n-1; i++ {
		out[i] = (ys[i+1] - ys[i-1]) / (xs[i+1] - xs[i-1])
	}
	out[0] = (-3*ys[0] + 4*ys[1] - ys[2]) / (xs[2] - xs[0])
	out[n-1] = -(-3*ys[n-1] + 4*ys[n-2] - ys[n-3]) / (xs[n-1] - xs[n-3])

	return out
}
