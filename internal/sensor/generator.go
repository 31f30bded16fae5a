package sensor

import "math/rand"

// Generator produces random scan data. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with a fixed seed so runs can be replayed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Float returns a value in [lo, hi).
func (g *Generator) Float(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// Int returns a value in [lo, hi). It returns lo when the range is empty.
func (g *Generator) Int(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo)
}

// Readings returns n readings drawn from [lo, hi).
func (g *Generator) Readings(n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Float(lo, hi)
	}
	return out
}
