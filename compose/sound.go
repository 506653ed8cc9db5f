package compose

// Sound renders a mono signal of the requested length. osc.Tone,
// noise.Texture and Clip all satisfy it.
type Sound interface {
	Render(samples int, sampleRate float64) ([]float64, error)
}

// Shape multiplies a gain curve into a buffer in place. Every type in
// dsp/envelope satisfies it.
type Shape interface {
	Apply(buf []float64, sampleRate float64)
}
