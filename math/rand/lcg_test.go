package rand

import (
	"testing"
)

func TestHullDobell(t *testing.T) {
	table := []struct {
		m, a, c uint64
		ok      bool
	}{
		{1 << 32, 1664525, 1013904223, true},
		{1 << 16, 1664525, 1013904223, true},
		{1 << 32, 1664525, 2, false},       // gcd(c, m) != 1
		{1 << 32, 1664526, 1013904223, false}, // a-1 not divisible by 2
		{1 << 32, 1664527, 1013904223, false}, // a-1 not divisible by 4
		{100, 21, 13, true},
		{100, 22, 13, false},
	}
	for i, line := range table {
		if got := hullDobell(line.m, line.a, line.c); got != line.ok {
			t.Errorf("%d) hullDobell(%d, %d, %d) = %v, want %v",
				i+1, line.m, line.a, line.c, got, line.ok)
		}
	}
}

func TestIntermediatesExact(t *testing.T) {
	table := []struct {
		m, a, c uint64
		ok      bool
	}{
		// (2^32-1)*1664525 + 1013904223 ~ 3.57e15 < 2^53 ~ 9.01e15.
		{1 << 32, 1664525, 1013904223, true},
		// Knuth's 64-bit MMIX constants blow far past 2^53.
		{1 << 32, 0x5851f42d4c957f2d & (1<<32 - 1), 0x14057b7e, false},
		{1 << 53, 2, 1, false},
		{1 << 20, 1 << 34, 1, false},
	}
	for i, line := range table {
		if got := intermediatesExact(line.m, line.a, line.c); got != line.ok {
			t.Errorf("%d) intermediatesExact(%d, %d, %d) = %v, want %v",
				i+1, line.m, line.a, line.c, got, line.ok)
		}
	}
}

// TestFullPeriod checks the full-period guarantee on a reduced modulus with
// the production multiplier and increment. Walking all 2^32 states of the
// real generator would take too long for a unit test, but Hull-Dobell holds
// for the same (a, c) at m = 2^16, so the structural property carries over.
func TestFullPeriod(t *testing.T) {
	const m = 1 << 16
	for _, start := range []uint64{0, 1, 7, m - 1} {
		g := newLCG(m, multiplier, increment, start)
		period := 0
		for i := 1; i <= m; i++ {
			if g.advance() == start {
				period = i
				break
			}
		}
		if period != m {
			t.Errorf("generator from seed %d has period %d, want %d",
				start, period, m)
		}
	}
}

func TestAdvanceStaysInRange(t *testing.T) {
	g := newLCG(modulus, multiplier, increment, 0)
	for i := 0; i < 100000; i++ {
		if x := g.advance(); x >= modulus {
			t.Errorf("draw %d: advance() = %d escaped [0, 2^32)", i+1, x)
			break
		}
	}
}

func TestNewLCGRejectsBadConstants(t *testing.T) {
	table := []struct {
		m, a, c, seed uint64
	}{
		{1 << 32, 1664525, 2, 0},          // Hull-Dobell violation
		{1 << 53, 1 << 10, 1, 0},          // intermediate overflow
		{1 << 32, 1664525, 1013904223, 1 << 32}, // seed out of range
	}
	for i, line := range table {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%d) newLCG(%d, %d, %d, %d) did not panic",
						i+1, line.m, line.a, line.c, line.seed)
				}
			}()
			newLCG(line.m, line.a, line.c, line.seed)
		}()
	}
}
