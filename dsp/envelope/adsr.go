package envelope

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ADSR is a classic attack/decay/sustain/release gain curve.
//
// Phase sample counts truncate (floor of duration*rate) and are each
// clamped to the buffer length. Phases are written over a base gain of 1
// in order, so a later phase overwrites an earlier one where they overlap.
// Two deliberate edge policies:
//
//   - the release ramp is always anchored to the buffer tail, even when
//     attack and decay have already overrun it;
//   - the sustain plateau is silently skipped when it does not fit.
//
// For Sustain in [0,1] every gain stays in [0,1].
type ADSR struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
	Curve   float64 // exponent on the release ramp; 0 means linear
}

// Apply multiplies the ADSR gain curve into buf in place.
func (e ADSR) Apply(buf []float64, sampleRate float64) {
	total := len(buf)
	if total == 0 || sampleRate <= 0 {
		return
	}

	attackN := phaseSamples(e.Attack, sampleRate, total)
	decayN := phaseSamples(e.Decay, sampleRate, total)
	releaseN := phaseSamples(e.Release, sampleRate, total)

	curve := e.Curve
	if curve == 0 {
		curve = 1
	}

	env := make([]float64, total)
	for i := range env {
		env[i] = 1
	}

	for i := 0; i < attackN; i++ {
		env[i] = ramp(0, 1, attackN, i)
	}

	if end := attackN + decayN; decayN > 0 && end <= total {
		for i := 0; i < decayN; i++ {
			env[attackN+i] = ramp(1, e.Sustain, decayN, i)
		}
	}

	sustainN := total - attackN - decayN - releaseN
	if sustainN < 0 {
		sustainN = 0
	}
	sustainStart := attackN + decayN
	if sustainN > 0 && sustainStart+sustainN <= total {
		for i := 0; i < sustainN; i++ {
			env[sustainStart+i] = e.Sustain
		}
	}

	if releaseN > 0 {
		start := total - releaseN
		for i := 0; i < releaseN; i++ {
			env[start+i] = math.Pow(ramp(e.Sustain, 0, releaseN, i), curve)
		}
	}

	vecmath.MulBlockInPlace(buf, env)
}
