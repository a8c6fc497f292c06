// Package rng provides the injectable random source used by every component
// that draws random numbers.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source is the subset of a random generator the layout code needs.
type Source interface {
	// Intn returns a value in [0, n). n <= 0 returns 0.
	Intn(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// Rand is a seeded PCG generator.
type Rand struct {
	r *rand.Rand
}

// New returns a generator seeded with seed. A zero seed draws one from the
// clock.
func New(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.IntN(n)
}

func (g *Rand) Float64() float64 {
	return g.r.Float64()
}

// Range returns a uniform value in [lo, hi). Inverted bounds are swapped.
func Range(src Source, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + src.Float64()*(hi-lo)
}

// Pick returns a uniformly chosen element of items, or the zero value when
// items is empty.
func Pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[src.Intn(len(items))]
}

// Scripted replays fixed sequences and wraps around when exhausted. Ints are
// reduced modulo n so any script stays in range.
type Scripted struct {
	Ints   []int
	Floats []float64

	intPos   int
	floatPos int
}

func (s *Scripted) Intn(n int) int {
	if n <= 0 || len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.intPos%len(s.Ints)]
	s.intPos++
	if v < 0 {
		v = -v
	}
	return v % n
}

func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.floatPos%len(s.Floats)]
	s.floatPos++
	if v < 0 || v >= 1 {
		return 0
	}
	return v
}
