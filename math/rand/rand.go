/*package rand provides the deterministic pseudo random number generator that
drives reproducible randomized behavior in the simulation code, e.g.
randomized initial conditions and shuffles.

The generator is a linear congruential generator with m = 2^32, a = 1664525,
and c = 1013904223. It is deliberately boring: two generators constructed
with the same seed produce bit-identical sequences under the same sequence of
calls, and so does any correct reimplementation in another language, as long
as it follows the exact formulas used here. Every derived draw is defined in
terms of a single state-advancing primitive to keep that property.

Here are some usage examples.

	// Reproducible stream.
	gen := New(1337)
	f := gen.NextFloat()
	i := gen.NextRange(10)
	perm := gen.RandomInts(52)

	// Non-reproducible stream seeded from the wall clock.
	gen2 := NewTimeSeed()

It is not a cryptographic generator and must never be used as one.

Each Generator is owned by a single logical stream of draws. Nothing here
locks: concurrent calls on one Generator from multiple goroutines must be
serialized by the caller, or use one Generator per goroutine.
*/
package rand

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSeed is returned by SetSeed for seeds that are negative,
	// >= the modulus, or not integral.
	ErrInvalidSeed = errors.New("seed must be an integer in [0, 2^32)")
	// ErrInvalidRange is the panic value for draws with a non-positive
	// bound. A bad bound is a defect in the caller, not an input error,
	// so it is treated the way math/rand.Intn treats it.
	ErrInvalidRange = errors.New("range bound must be positive")
)

// Clock supplies the integer used to seed non-reproducible generators. It
// is a parameter rather than a direct time.Now call so that tests can pin
// it.
type Clock func() int64

// Generator is a deterministic random number generator. The zero value is
// not usable; construct with New, NewTimeSeed, or NewClockSeed.
type Generator struct {
	lcg lcg
}

// New returns a generator seeded with the given value. The seed is
// normalized before use: its absolute value is floored to an integer and
// reduced mod 2^32. Callers that need reproducibility should construct
// every stream through this function.
func New(seed float64) *Generator {
	seed = math.Floor(math.Abs(seed))
	if math.IsNaN(seed) || math.IsInf(seed, 0) {
		seed = 0
	}
	seed = math.Mod(seed, float64(modulus))
	return &Generator{lcg: newLCG(modulus, multiplier, increment, uint64(seed))}
}

// NewTimeSeed returns a generator seeded from the wall clock. The resulting
// stream is not reproducible.
func NewTimeSeed() *Generator {
	return NewClockSeed(func() int64 { return time.Now().UnixNano() })
}

// NewClockSeed returns a generator seeded from the given clock.
func NewClockSeed(clock Clock) *Generator {
	t := clock()
	if t < 0 {
		t = -t
	}
	return &Generator{lcg: newLCG(modulus, multiplier, increment, uint64(t)%modulus)}
}

// Modulus returns the generator's modulus, 2^32.
func (gen *Generator) Modulus() uint64 { return gen.lcg.m }

// Seed returns the current seed without advancing the generator.
func (gen *Generator) Seed() uint64 { return gen.lcg.seed }

// SetSeed overwrites the generator's state. Unlike construction, which
// normalizes, SetSeed is strict: seeds that are negative, >= 2^32, or not
// integral are rejected with ErrInvalidSeed and the state is left
// untouched. Draws after a successful SetSeed continue deterministically
// from the new seed.
func (gen *Generator) SetSeed(seed float64) error {
	if math.IsNaN(seed) || math.IsInf(seed, 0) || math.Floor(seed) != seed {
		return errors.Wrapf(ErrInvalidSeed, "seed %v is not an integer", seed)
	}
	if seed < 0 || seed >= float64(gen.lcg.m) {
		return errors.Wrapf(ErrInvalidSeed, "seed %v is outside [0, %d)",
			seed, gen.lcg.m)
	}
	gen.lcg.seed = uint64(seed)
	return nil
}

// NextInt advances the generator once and returns the new seed, an integer
// in [0, 2^32). Every other draw is built out of this primitive.
func (gen *Generator) NextInt() uint64 {
	return gen.lcg.advance()
}

// NextFloat advances the generator once and returns the draw scaled onto
// [0, 1]. The interval is closed: a raw draw of m-1 maps to exactly 1.0.
// That is the historical contract of this generator and downstream
// reproducibility depends on it, so it must not be "fixed" to a half-open
// interval.
func (gen *Generator) NextFloat() float64 {
	return float64(gen.lcg.advance()) / float64(gen.lcg.m-1)
}

// NextRange advances the generator once and returns an integer uniformly at
// random in [0, n). The draw is scaled through a full-range float division
// rather than reduced mod n, because the low-order bits of an LCG are much
// weaker than its high-order bits. Panics with ErrInvalidRange if n <= 0.
func (gen *Generator) NextRange(n int) int {
	if n <= 0 {
		panic(errors.Wrapf(ErrInvalidRange, "NextRange(%d)", n))
	}
	f := float64(gen.lcg.advance()) / float64(gen.lcg.m)
	return int(math.Floor(f * float64(n)))
}

// Uniform advances the generator once and returns a float uniformly at
// random within the range [low, high].
func (gen *Generator) Uniform(low, high float64) float64 {
	if low == 0.0 && high == 1.0 {
		return gen.NextFloat()
	}
	return low + gen.NextFloat()*(high-low)
}

// UniformAt writes floats generated uniformly at random in the range
// [low, high] to every element of a target slice, advancing the generator
// once per element.
func (gen *Generator) UniformAt(low, high float64, target []float64) {
	for i := range target {
		target[i] = gen.NextFloat()
	}
	if low == 0.0 && high == 1.0 {
		return
	}
	for i := range target {
		target[i] = target[i]*(high-low) + low
	}
}

// UniformInt returns an integer uniformly at random within the range
// [low, high). Panics with ErrInvalidRange if the range is empty.
func (gen *Generator) UniformInt(low, high int) int {
	return low + gen.NextRange(high-low)
}
