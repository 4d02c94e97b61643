// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ArgMax returns the index of the maximum value in values. If multiple
// equal maximum values exist, the index of the first one is returned,
// so that action selection never depends on the tie-breaking rule of
// some numeric library. An empty slice returns -1.
//
// NaN values never compare greater than any other value and so are
// never selected unless they are the first element.
func ArgMax(values []float64) int {
	if len(values) == 0 {
		return -1
	}

	max, idx := values[0], 0
	for i, value := range values {
		if value > max {
			max = value
			idx = i
		}
	}
	return idx
}

// Softmax computes the softmax distribution of h and stores it in dst,
// which is returned. If dst is nil or of the wrong length, a new slice
// is allocated.
//
// The maximum of h is subtracted before exponentiating. This gives the
// same distribution as exp(h[i]) / Σ exp(h[j]) without overflowing for
// large preferences.
func Softmax(dst, h []float64) []float64 {
	if len(dst) != len(h) {
		dst = make([]float64, len(h))
	}
	if len(h) == 0 {
		return dst
	}

	max := floats.Max(h)
	for i, value := range h {
		dst[i] = math.Exp(value - max)
	}
	floats.Scale(1/floats.Sum(dst), dst)

	return dst
}
