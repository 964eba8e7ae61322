package rand

import (
	"github.com/pkg/errors"
)

// The generator constants. Together with m = 2^32 they satisfy the
// Hull-Dobell conditions, so the recurrence visits every value in [0, m)
// exactly once per period regardless of the starting seed.
const (
	modulus    uint64 = 1 << 32
	multiplier uint64 = 1664525
	increment  uint64 = 1013904223
)

// maxExact is the largest magnitude at which every integer is still exactly
// representable as an IEEE-754 double. Implementations of this generator in
// languages without 64-bit integers run the recurrence in doubles, so every
// intermediate value has to stay below this bound.
const maxExact uint64 = 1 << 53

// lcg is a linear congruential generator, seed' = (seed*a + c) mod m. The
// exported Generator binds the package constants; the parameters are kept
// explicit here so that period-level properties can be checked on small
// moduli.
type lcg struct {
	m, a, c uint64
	seed    uint64
}

func newLCG(m, a, c, seed uint64) lcg {
	if !intermediatesExact(m, a, c) {
		panic(errors.Errorf(
			"lcg constants m=%d a=%d c=%d overflow the exact double "+
				"range: (m-1)*a + c >= 2^53", m, a, c,
		))
	}
	if !hullDobell(m, a, c) {
		panic(errors.Errorf(
			"lcg constants m=%d a=%d c=%d do not satisfy the "+
				"Hull-Dobell full-period conditions", m, a, c,
		))
	}
	if seed >= m {
		panic(errors.Errorf("lcg seeded with %d >= m = %d", seed, m))
	}
	return lcg{m: m, a: a, c: c, seed: seed}
}

// advance is the sole state transition: it steps the recurrence once and
// returns the new seed. The reduction is written as r - (r/m)*m rather than
// r % m to mirror the floor-based form that double-arithmetic
// implementations of this generator must use; on uint64 the two are
// identical and both exact.
func (g *lcg) advance() uint64 {
	r := g.seed*g.a + g.c
	g.seed = r - (r/g.m)*g.m
	if g.seed >= g.m {
		panic(errors.Errorf("lcg seed %d escaped [0, %d)", g.seed, g.m))
	}
	return g.seed
}

// intermediatesExact reports whether the worst-case intermediate of the
// recurrence, (m-1)*a + c, stays within the exact double range. The
// comparison is arranged as a division so that it cannot itself overflow
// uint64.
func intermediatesExact(m, a, c uint64) bool {
	if m == 0 || a == 0 {
		return false
	}
	if c >= maxExact {
		return false
	}
	return m-1 <= (maxExact-1-c)/a
}

// hullDobell reports whether (m, a, c) satisfy the Hull-Dobell theorem:
// gcd(c, m) = 1, a-1 is divisible by every prime factor of m, and by 4 if
// m is. Generators that satisfy it have period exactly m.
func hullDobell(m, a, c uint64) bool {
	if m == 0 || a == 0 || c == 0 {
		return false
	}
	if gcd(c, m) != 1 {
		return false
	}
	n, b := m, a-1
	for p := uint64(2); p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		if b%p != 0 {
			return false
		}
		for n%p == 0 {
			n /= p
		}
	}
	if n > 1 && b%n != 0 {
		return false
	}
	if m%4 == 0 && b%4 != 0 {
		return false
	}
	return true
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
