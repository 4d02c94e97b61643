package floatutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestArgMax(t *testing.T) {
	tests := []struct {
		values []float64
		want   int
	}{
		{nil, -1},
		{[]float64{3}, 0},
		{[]float64{1, 3, 2}, 1},
		{[]float64{2, 2, 2}, 0},
		{[]float64{-1, 5, 0, 5}, 1},
		{[]float64{math.Inf(-1), -1e300}, 1},
		{[]float64{0, math.NaN(), 1}, 2},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, ArgMax(test.values), "values %v",
			test.values)
	}
}

func TestSoftmax(t *testing.T) {
	h := []float64{0.5, -1, 2, 0}

	var denom float64
	for _, v := range h {
		denom += math.Exp(v)
	}
	want := make([]float64, len(h))
	for i, v := range h {
		want[i] = math.Exp(v) / denom
	}

	got := Softmax(nil, h)
	assert.InDeltaSlice(t, want, got, 1e-15)
	assert.InDelta(t, 1.0, floats.Sum(got), 1e-15)

	// dst of the correct length is reused
	dst := make([]float64, len(h))
	out := Softmax(dst, h)
	assert.Equal(t, &dst[0], &out[0])

	// Uniform for equal preferences
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25},
		Softmax(nil, []float64{3, 3, 3, 3}))

	// Large preferences do not overflow
	big := Softmax(nil, []float64{1000, 1000})
	assert.Equal(t, []float64{0.5, 0.5}, big)
}
