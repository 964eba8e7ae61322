package rand

import (
	"github.com/pkg/errors"
)

// RandomInts returns a uniformly random permutation of the integers
// 0, 1, ..., n-1, advancing the generator exactly n times.
//
// The permutation is built by selection without replacement: at each step
// one draw of NextRange(remaining) picks the k-th index, in original order,
// among those not yet placed. The per-step scan makes this O(n^2), but the
// draw sequence is part of the generator's cross-language contract, so a
// faster in-place shuffle cannot be substituted for it.
//
// n = 0 returns an empty slice. Panics with ErrInvalidRange if n < 0.
func (gen *Generator) RandomInts(n int) []int {
	if n < 0 {
		panic(errors.Wrapf(ErrInvalidRange, "RandomInts(%d)", n))
	}
	perm := make([]int, n)
	placed := make([]bool, n)
	for i := 0; i < n; i++ {
		k := gen.NextRange(n - i)
		j := 0
		for idx := 0; idx < n; idx++ {
			if placed[idx] {
				continue
			}
			if j == k {
				perm[i] = idx
				placed[idx] = true
				break
			}
			j++
		}
	}
	return perm
}
