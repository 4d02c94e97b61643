package bandit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

// scriptedSampler returns scripted samples until each script runs out,
// after which it draws from fallback. Normal samples are scripted as
// standardized noise: mean + std*noise.
type scriptedSampler struct {
	uniforms []float64
	ints     []int
	noise    []float64
	fallback Sampler
}

func (s *scriptedSampler) Float64() float64 {
	if len(s.uniforms) == 0 {
		return s.fallback.Float64()
	}
	u := s.uniforms[0]
	s.uniforms = s.uniforms[1:]
	return u
}

func (s *scriptedSampler) Intn(n int) int {
	if len(s.ints) == 0 {
		return s.fallback.Intn(n)
	}
	i := s.ints[0]
	s.ints = s.ints[1:]
	return i
}

func (s *scriptedSampler) Normal(mean, std float64) float64 {
	if len(s.noise) == 0 {
		return s.fallback.Normal(mean, std)
	}
	z := s.noise[0]
	s.noise = s.noise[1:]
	return mean + std*z
}

func TestSamplerSeeded(t *testing.T) {
	a, b := NewSampler(42), NewSampler(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(7), b.Intn(7))
		assert.Equal(t, a.Normal(1, 2), b.Normal(1, 2))
	}
}

func TestSamplerRanges(t *testing.T) {
	s := NewSampler(7)

	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		u := s.Float64()
		assert.True(t, u >= 0 && u < 1, "uniform sample %v out of [0, 1)", u)

		k := s.Intn(5)
		assert.True(t, k >= 0 && k < 5, "integer sample %v out of [0, 5)", k)

		sum += s.Normal(3, 1)
	}

	// Standard error of the mean is 1/sqrt(n) < 0.01
	assert.InDelta(t, 3.0, sum/n, 0.05)
}

func TestSamplerNormalStream(t *testing.T) {
	s := NewSampler(3)
	ref := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		mean, std := float64(i%7)-3, 0.5+float64(i%3)
		assert.Equal(t, mean+std*ref.NormFloat64(), s.Normal(mean, std))
	}
}
