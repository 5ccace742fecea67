package core

import "math/rand"

// Sampler draws uniform random numbers for Monte Carlo estimation. Every
// goroutine in the render pool owns its own Sampler so no RNG state is
// shared across threads.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler builds a Sampler seeded deterministically from seed, so a
// render is reproducible given the same seed and worker partitioning.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Get1D returns a uniform sample in [0, 1).
func (s *Sampler) Get1D() Scalar { return s.rng.Float64() }

// Get2D returns a pair of independent uniform samples in [0, 1).
func (s *Sampler) Get2D() Vec2 { return Vec2{X: s.rng.Float64(), Y: s.rng.Float64()} }
