// Package osc renders additively synthesized tones: stacked sinusoidal
// harmonics with optional ensemble detune and vibrato, evaluated with a
// phase accumulator so frequency modulation stays phase-continuous.
package osc
