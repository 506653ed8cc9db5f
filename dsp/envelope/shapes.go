package envelope

import "math"

// AttackRelease is a flat envelope with linear onset and offset ramps.
// The release ramp is anchored to the buffer tail.
type AttackRelease struct {
	Attack  float64
	Release float64
}

// Apply multiplies the envelope into buf in place.
func (e AttackRelease) Apply(buf []float64, sampleRate float64) {
	total := len(buf)
	if total == 0 || sampleRate <= 0 {
		return
	}

	attackN := phaseSamples(e.Attack, sampleRate, total)
	for i := 0; i < attackN; i++ {
		buf[i] *= ramp(0, 1, attackN, i)
	}

	releaseN := phaseSamples(e.Release, sampleRate, total)
	start := total - releaseN
	for i := 0; i < releaseN; i++ {
		buf[start+i] *= ramp(1, 0, releaseN, i)
	}
}

// Percussive is a soft-attack, exponentially decaying gain
// (1-e^(-attack*t)) * e^(-decay*t), the chime and ding shape.
type Percussive struct {
	AttackRate float64 // 1/s, larger is sharper
	DecayRate  float64 // 1/s
}

// Apply multiplies the envelope into buf in place.
func (e Percussive) Apply(buf []float64, sampleRate float64) {
	if sampleRate <= 0 {
		return
	}
	for i := range buf {
		t := float64(i) / sampleRate
		buf[i] *= (1 - math.Exp(-e.AttackRate*t)) * math.Exp(-e.DecayRate*t)
	}
}

// ExpDecay is a bare exponential decay e^(-rate*t), the crackle shape.
type ExpDecay struct {
	Rate float64 // 1/s
}

// Apply multiplies the envelope into buf in place.
func (e ExpDecay) Apply(buf []float64, sampleRate float64) {
	if sampleRate <= 0 {
		return
	}
	for i := range buf {
		buf[i] *= math.Exp(-e.Rate * float64(i) / sampleRate)
	}
}

// Burst is a half-sine window with superimposed exponential decay,
// the rustle shape: e^(-decay*t) * sin(pi*i/(n-1)).
type Burst struct {
	Decay float64 // 1/s
}

// Apply multiplies the envelope into buf in place.
func (e Burst) Apply(buf []float64, sampleRate float64) {
	n := len(buf)
	if n == 0 || sampleRate <= 0 {
		return
	}
	for i := range buf {
		t := float64(i) / sampleRate
		buf[i] *= math.Exp(-e.Decay*t) * math.Sin(math.Pi*ramp(0, 1, n, i))
	}
}

// Swell is a slow sinusoidal gain oscillation around a base level:
// base + depth*sin(2*pi*rate*t). Breathing pads and wind beds use it.
type Swell struct {
	Base   float64
	Depth  float64
	RateHz float64
}

// Apply multiplies the envelope into buf in place.
func (e Swell) Apply(buf []float64, sampleRate float64) {
	if sampleRate <= 0 {
		return
	}
	w := 2 * math.Pi * e.RateHz
	for i := range buf {
		t := float64(i) / sampleRate
		buf[i] *= e.Base + e.Depth*math.Sin(w*t)
	}
}
