package compose

import (
	"fmt"

	"github.com/cwbudde/algo-ambient/dsp/envelope"
	"github.com/cwbudde/algo-ambient/dsp/osc"
)

// sampledNote is one scheduled clip: start, note name, duration, velocity
// and its per-call ADSR.
type sampledNote struct {
	start float64
	note  string
	dur   float64
	vel   float64
	env   envelope.ADSR
}

// SampledLayers builds the sampled-instrument score: a piano layer played
// from the sample set (melody, bass notes, high sparkle) over a detuned
// synthesized pad. The squared release on every ADSR softens the clip
// tails the way a felted piano would.
func SampledLayers(samples *SampleSet) ([]Layer, error) {
	if samples == nil || samples.Len() == 0 {
		return nil, fmt.Errorf("sampled score needs a non-empty sample set")
	}

	notes := []sampledNote{
		// Melody: coming home.
		{0.5, "G4", 2.0, 0.85, envelope.ADSR{Attack: 0.01, Decay: 0.3, Sustain: 0.6, Release: 0.8, Curve: 2}},
		{3.0, "A4", 1.8, 0.80, envelope.ADSR{Attack: 0.01, Decay: 0.3, Sustain: 0.6, Release: 0.8, Curve: 2}},
		{5.0, "C5", 2.5, 0.95, envelope.ADSR{Attack: 0.01, Decay: 0.3, Sustain: 0.6, Release: 0.8, Curve: 2}},
		{7.5, "B4", 1.5, 0.75, envelope.ADSR{Attack: 0.01, Decay: 0.3, Sustain: 0.6, Release: 0.8, Curve: 2}},
		{9.2, "A4", 1.3, 0.70, envelope.ADSR{Attack: 0.01, Decay: 0.3, Sustain: 0.6, Release: 0.8, Curve: 2}},
		{10.8, "G4", 1.2, 0.80, envelope.ADSR{Attack: 0.01, Decay: 0.3, Sustain: 0.6, Release: 0.8, Curve: 2}},

		// Low notes for warmth.
		{0.0, "C3", 4.0, 0.40, envelope.ADSR{Attack: 0.02, Decay: 0.5, Sustain: 0.5, Release: 1.5, Curve: 2}},
		{4.0, "E3", 3.5, 0.35, envelope.ADSR{Attack: 0.02, Decay: 0.5, Sustain: 0.5, Release: 1.5, Curve: 2}},
		{8.0, "C3", 4.0, 0.40, envelope.ADSR{Attack: 0.02, Decay: 0.5, Sustain: 0.5, Release: 1.5, Curve: 2}},

		// Gentle sparkle.
		{2.0, "E4", 1.5, 0.25, envelope.ADSR{Attack: 0.05, Decay: 0.3, Sustain: 0.4, Release: 0.6, Curve: 2}},
		{6.5, "D4", 1.5, 0.25, envelope.ADSR{Attack: 0.05, Decay: 0.3, Sustain: 0.4, Release: 0.6, Curve: 2}},
	}

	events := make([]Event, 0, len(notes))
	for _, n := range notes {
		clip, err := samples.Clip(n.note)
		if err != nil {
			return nil, fmt.Errorf("sampled note %s: %w", n.note, err)
		}
		events = append(events, Event{
			Start:    n.start,
			Duration: n.dur,
			Gain:     n.vel,
			Sound:    clip,
			Env:      n.env,
		})
	}

	piano := Layer{Name: "piano", Events: events}
	return []Layer{piano, sampledPad()}, nil
}

// sampledPad sits well under the piano: the 0.12 pad level spreads across
// the three notes (and each tone's detune voices), 0.04 per note.
func sampledPad() Layer {
	events := make([]Event, 0, 3)
	for _, note := range []string{"C3", "E3", "G3"} {
		events = append(events, Event{
			Gain: 0.04,
			Sound: &osc.Tone{
				Frequency: MustNote(note),
				Harmonics: []osc.Harmonic{{Mult: 1, Amp: 1}, {Mult: 2, Amp: 0.4}, {Mult: 3, Amp: 0.15}},
				Detune:    0.004,
				Vibrato:   osc.Vibrato{RateHz: 4.5, Depth: 0.003},
			},
		})
	}

	return Layer{
		Name:   "pad",
		Events: events,
		Post: []Shape{
			envelope.FadeIn{Duration: 2, Curve: 2},
			envelope.FadeOut{Duration: 2.5, Curve: 2},
		},
	}
}
