package bandit

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler is the source of all randomness used by a Simulator: the
// uniform first action, ε-greedy exploration coin flips, and the
// normally distributed true action values and rewards.
//
// Each Simulator should own its Sampler. Sharing a Sampler between
// Simulators correlates their draws.
type Sampler interface {
	// Float64 returns a uniform sample in [0, 1)
	Float64() float64

	// Intn returns a uniform sample in [0, n)
	Intn(n int) int

	// Normal returns a sample from a normal distribution with the
	// argument mean and standard deviation
	Normal(mean, std float64) float64
}

// sampler implements Sampler using a single seeded source
type sampler struct {
	rng    *rand.Rand
	normal distuv.Normal // Standard normal on the shared source
}

// NewSampler returns a new Sampler seeded with seed. Two Samplers
// created with the same seed produce the same sequence of samples.
func NewSampler(seed uint64) Sampler {
	source := rand.NewSource(seed)
	return &sampler{
		rng:    rand.New(source),
		normal: distuv.Normal{Mu: 0, Sigma: 1, Src: source},
	}
}

// Float64 returns a uniform sample in [0, 1)
func (s *sampler) Float64() float64 {
	return s.rng.Float64()
}

// Intn returns a uniform sample in [0, n)
func (s *sampler) Intn(n int) int {
	return s.rng.Intn(n)
}

// Normal returns a sample from N(mean, std²)
func (s *sampler) Normal(mean, std float64) float64 {
	return mean + std*s.normal.Rand()
}
