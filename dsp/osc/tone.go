package osc

import (
	"fmt"
	"math"
)

// Harmonic is one partial of an additive tone: a frequency multiplier and
// its amplitude relative to the fundamental.
type Harmonic struct {
	Mult float64
	Amp  float64
}

// Vibrato describes sinusoidal frequency modulation. The zero value
// disables it.
type Vibrato struct {
	RateHz float64
	Depth  float64 // fraction of the carrier frequency
}

func (v Vibrato) enabled() bool {
	return v.Depth != 0 && v.RateHz != 0
}

// Tone is an additively synthesized voice: a fundamental frequency, a set
// of harmonics, optional ensemble detune, and optional vibrato.
type Tone struct {
	Frequency float64
	Harmonics []Harmonic
	Detune    float64 // detune fraction for the ensemble voices; 0 disables
	Vibrato   Vibrato
}

// Render produces the tone over the given number of samples.
//
// The phase is accumulated from the instantaneous frequency
// (phase += 2*pi*f(t)/sampleRate) so vibrato never introduces phase
// discontinuities. With detune enabled, three voices at f*(1-d), f and
// f*(1+d) are summed and scaled by 1/3 to preserve the overall level.
func (tn Tone) Render(samples int, sampleRate float64) ([]float64, error) {
	if err := tn.validate(samples, sampleRate); err != nil {
		return nil, err
	}

	harmonics := tn.Harmonics
	if len(harmonics) == 0 {
		harmonics = []Harmonic{{Mult: 1, Amp: 1}}
	}

	out := make([]float64, samples)

	if tn.Detune > 0 {
		for _, d := range []float64{-tn.Detune, 0, tn.Detune} {
			tn.renderVoice(out, tn.Frequency*(1+d), harmonics, sampleRate, 1.0/3.0)
		}
		return out, nil
	}

	tn.renderVoice(out, tn.Frequency, harmonics, sampleRate, 1)
	return out, nil
}

func (tn Tone) renderVoice(out []float64, freq float64, harmonics []Harmonic, sampleRate, scale float64) {
	step := 2 * math.Pi / sampleRate
	vib := tn.Vibrato

	phase := 0.0
	for i := range out {
		f := freq
		if vib.enabled() {
			t := float64(i) / sampleRate
			f *= 1 + vib.Depth*math.Sin(2*math.Pi*vib.RateHz*t)
		}
		phase += step * f

		var v float64
		for _, h := range harmonics {
			v += h.Amp * math.Sin(h.Mult*phase)
		}
		out[i] += scale * v
	}
}

func (tn Tone) validate(samples int, sampleRate float64) error {
	if samples <= 0 {
		return fmt.Errorf("tone sample count must be > 0: %d", samples)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("tone sample rate must be > 0: %v", sampleRate)
	}
	if tn.Frequency <= 0 {
		return fmt.Errorf("tone frequency must be > 0: %v", tn.Frequency)
	}
	if tn.Detune < 0 {
		return fmt.Errorf("tone detune must be >= 0: %v", tn.Detune)
	}
	if tn.Vibrato.Depth < 0 || tn.Vibrato.Depth >= 1 {
		return fmt.Errorf("vibrato depth must be in [0, 1): %v", tn.Vibrato.Depth)
	}
	for i, h := range tn.Harmonics {
		if h.Mult <= 0 {
			return fmt.Errorf("harmonic %d multiplier must be > 0: %v", i, h.Mult)
		}
	}
	return nil
}
