// Package testutil is the shared test vocabulary: deterministic source
// signals for feeding renders and filters, and tolerance assertions for
// comparing the buffers that come back.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine renders amplitude*sin(2*pi*freqHz*t) at the given
// sample rate. Reference tones for filter, envelope and mix tests.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise renders uniform white noise in [-amplitude, amplitude]
// from a fixed seed, so broadband test inputs reproduce exactly.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// Impulse is a unit spike at pos in an otherwise silent buffer; the
// zero-phase filter tests use it to check that transients stay put. An
// out-of-range pos leaves the buffer silent.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if 0 <= pos && pos < length {
		out[pos] = 1
	}
	return out
}

// DC is a constant-valued buffer, the simplest possible event sound.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones is DC at unit level, handy for reading gain curves: whatever a
// Shape multiplies into it is the curve itself.
func Ones(n int) []float64 {
	return DC(1, n)
}
