package deck

import "math/rand/v2"

// RNG abstracts random number generation so draws are deterministic in tests.
type RNG interface {
	// Intn returns a non-negative random int in [0, n). n must be > 0.
	Intn(n int) int
}

// StdRNG delegates to math/rand/v2 (auto-seeded).
type StdRNG struct{}

func (StdRNG) Intn(n int) int { return rand.IntN(n) }

// SeededRNG returns an RNG with a fixed seed for reproducible sessions.
func SeededRNG(seed uint64) RNG {
	return pcgRNG{rand.New(rand.NewPCG(seed, seed))}
}

type pcgRNG struct {
	r *rand.Rand
}

func (p pcgRNG) Intn(n int) int { return p.r.IntN(n) }
