// Package prng provides a small deterministic pseudo-random source.
//
// Mulberry32 keeps a single 32-bit state. Every call adds the odd constant
// 0x6D2B79F5, then mixes the state through two xorshift/multiply rounds:
//
//	t = (s ^ s>>15) * (s | 1)
//	t ^= t + (t ^ t>>7) * (t | 61)
//	out = (t ^ t>>14) / 2^32
//
// Two sources created with the same seed yield identical sequences on every
// platform. For seed 42 the first three values are 0.6011037519201636,
// 0.44829055899754167 and 0.8524657934904099.
package prng

// Source yields floats in [0,1). Every function that needs randomness takes a
// Source explicitly; there is no package-level generator.
type Source interface {
	Next() float64
}

const (
	increment = 0x6D2B79F5
	scale     = 1 << 32
)

// Mulberry32 is the mulberry32 generator. It is not safe for concurrent use;
// give each caller its own instance.
type Mulberry32 struct {
	state uint32
}

// New creates a generator seeded with seed.
func New(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Next advances the state and returns a value in [0,1).
func (m *Mulberry32) Next() float64 {
	m.state += increment
	t := m.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / scale
}

// Intn returns a uniform index in [0,n) drawn from src. It returns 0 when n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Next() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
