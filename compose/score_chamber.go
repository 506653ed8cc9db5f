package compose

import (
	"github.com/cwbudde/algo-ambient/dsp/envelope"
	"github.com/cwbudde/algo-ambient/dsp/osc"
)

// ChamberLayers builds the chamber score: a staggered string-pad chord,
// a legato melody, sparse bass and two distant bells, all rendered by the
// oscillator bank with soft envelopes.
func ChamberLayers() []Layer {
	return []Layer{
		chamberPad(),
		chamberMelody(),
		chamberBass(),
		chamberBells(),
	}
}

func chamberPad() Layer {
	// C major add9 voicing, voices entering 100 ms apart.
	voices := []struct {
		start float64
		note  string
		gain  float64
	}{
		{0.0, "C3", 0.10},
		{0.1, "E3", 0.09},
		{0.2, "G3", 0.09},
		{0.3, "D4", 0.08},
		{0.4, "C4", 0.085},
	}

	events := make([]Event, 0, len(voices))
	for _, v := range voices {
		events = append(events, Event{
			Start: v.start,
			Gain:  v.gain,
			Sound: &osc.Tone{
				Frequency: MustNote(v.note),
				Harmonics: stringHarmonics,
				Detune:    0.004,
				Vibrato:   osc.Vibrato{RateHz: 5, Depth: 0.002},
			},
			Env: envelope.AttackRelease{Attack: 1.5, Release: 2},
		})
	}

	return Layer{Name: "pad", Events: events}
}

func chamberMelody() Layer {
	notes := []struct {
		start float64
		note  string
		dur   float64
		gain  float64
	}{
		{0.5, "G4", 2.5, 0.10},
		{2.5, "A4", 2.0, 0.09},
		{4.0, "C5", 3.0, 0.11},
		{6.5, "B4", 2.0, 0.085},
		{8.0, "A4", 2.0, 0.08},
		{9.5, "G4", 2.5, 0.09},
	}

	events := make([]Event, 0, len(notes))
	for _, n := range notes {
		events = append(events, Event{
			Start:    n.start,
			Duration: n.dur,
			Gain:     n.gain,
			Sound:    &osc.Tone{Frequency: MustNote(n.note), Harmonics: softHarmonics},
			Env:      envelope.ADSR{Attack: 0.02, Decay: 0.3, Sustain: 0.6, Release: 0.8},
		})
	}

	return Layer{Name: "melody", Events: events}
}

func chamberBass() Layer {
	notes := []struct {
		start float64
		note  string
		dur   float64
	}{
		{0, "C2", 5},
		{5, "C2", 4},
		{9, "G2", 3},
	}

	events := make([]Event, 0, len(notes))
	for _, n := range notes {
		events = append(events, Event{
			Start:    n.start,
			Duration: n.dur,
			Gain:     0.08,
			Sound:    &osc.Tone{Frequency: MustNote(n.note), Harmonics: padHarmonics},
			Env:      envelope.ADSR{Attack: 0.05, Decay: 0.4, Sustain: 0.7, Release: 1},
		})
	}

	return Layer{Name: "bass", Events: events}
}

func chamberBells() Layer {
	bell := envelope.Percussive{AttackRate: 8, DecayRate: 1.2}
	return Layer{
		Name: "bells",
		Events: []Event{
			{Start: 2, Duration: 2, Gain: 0.05, Env: bell,
				Sound: &osc.Tone{Frequency: MustNote("C5"), Harmonics: chimeHarmonics}},
			{Start: 7, Duration: 2, Gain: 0.045, Env: bell,
				Sound: &osc.Tone{Frequency: MustNote("G5"), Harmonics: chimeHarmonics}},
		},
	}
}
