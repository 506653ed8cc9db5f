package envelope

import "math"

// FadeIn ramps the head of the buffer from 0 to 1 over Duration seconds,
// raised to Curve (0 means linear; the master chain uses 2 for a squared
// fade). Gain is 0 at the first sample of the window and 1 at its last,
// monotonically non-decreasing in between. The window clamps to the buffer.
type FadeIn struct {
	Duration float64
	Curve    float64
}

// Apply multiplies the fade into buf in place.
func (e FadeIn) Apply(buf []float64, sampleRate float64) {
	n := phaseSamples(e.Duration, sampleRate, len(buf))
	curve := e.Curve
	if curve == 0 {
		curve = 1
	}
	for i := 0; i < n; i++ {
		buf[i] *= math.Pow(ramp(0, 1, n, i), curve)
	}
}

// FadeOut mirrors FadeIn over the buffer tail: gain 1 at the window start,
// 0 at the final sample.
type FadeOut struct {
	Duration float64
	Curve    float64
}

// Apply multiplies the fade into buf in place.
func (e FadeOut) Apply(buf []float64, sampleRate float64) {
	total := len(buf)
	n := phaseSamples(e.Duration, sampleRate, total)
	curve := e.Curve
	if curve == 0 {
		curve = 1
	}
	start := total - n
	for i := 0; i < n; i++ {
		buf[start+i] *= math.Pow(ramp(1, 0, n, i), curve)
	}
}
