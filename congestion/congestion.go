// Package congestion assigns each router a scalar multiplier in
// [MinMultiplier, MaxMultiplier] that scales the cost of every link touching
// it. Sampling is memoryless: no correlation across routers or across calls.
package congestion

import (
	"math/rand"
	"sync"

	"routesim/topology"
)

// Multiplier bounds. Base weights are positive, so any multiplier within
// these bounds keeps effective weights nonnegative.
const (
	MinMultiplier = 0.5
	MaxMultiplier = 2.0
)

// Sampler produces one congestion multiplier per call.
type Sampler interface {
	Sample() float64
}

// UniformSampler draws independently from U[MinMultiplier, MaxMultiplier].
// It owns a seeded source so simulation runs are reproducible.
type UniformSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewUniformSampler returns a sampler seeded with seed.
func NewUniformSampler(seed int64) *UniformSampler {
	return &UniformSampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample draws one multiplier.
func (s *UniformSampler) Sample() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MinMultiplier + s.rng.Float64()*(MaxMultiplier-MinMultiplier)
}

// FixedSampler always returns its own value. Used to disable randomness,
// e.g. pinning every multiplier to 1.0 so effective weights equal base
// weights.
type FixedSampler float64

// Sample returns the fixed value.
func (s FixedSampler) Sample() float64 { return float64(s) }

// Resample overwrites every router's congestion multiplier with a fresh,
// independent draw from s. It has no return value; consumers observe the
// effect through subsequent effective-weight queries.
func Resample(net *topology.Network, s Sampler) {
	for _, id := range net.RouterIDs() {
		net.SetCongestion(id, s.Sample())
	}
}
