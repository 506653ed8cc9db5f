package compose

import (
	"math/rand"

	"github.com/cwbudde/algo-ambient/dsp/envelope"
	"github.com/cwbudde/algo-ambient/dsp/noise"
	"github.com/cwbudde/algo-ambient/dsp/osc"
)

// The warm autumn score: four layers laid out for the default 12-second
// frame. Schedules are data; shorter renders truncate trailing events and
// longer ones leave silence at the tail.

// scoreLength is the frame the literal schedules below were written for.
const scoreLength = 12.0

var (
	padHarmonics    = []osc.Harmonic{{Mult: 1, Amp: 0.4}, {Mult: 2, Amp: 0.25}, {Mult: 3, Amp: 0.1}}
	softHarmonics   = []osc.Harmonic{{Mult: 1, Amp: 1}, {Mult: 2, Amp: 0.3}, {Mult: 3, Amp: 0.1}}
	chimeHarmonics  = []osc.Harmonic{{Mult: 1, Amp: 1}, {Mult: 2, Amp: 0.5}, {Mult: 3, Amp: 0.2}, {Mult: 4, Amp: 0.1}}
	stringHarmonics = []osc.Harmonic{{Mult: 1, Amp: 1}, {Mult: 2, Amp: 0.35}, {Mult: 3, Amp: 0.15}}
)

// WarmLayers builds the warm score. The seed drives all stochastic
// placement (rustle jitter, crackle positions) and the noise textures, so
// a fixed seed reproduces the track exactly.
func WarmLayers(seed int64) []Layer {
	return []Layer{
		warmBass(),
		warmMelody(),
		warmAtmosphere(seed),
		warmChimes(),
	}
}

func warmBass() Layer {
	events := make([]Event, 0, 5)

	// Root and fifth, stacked warm harmonics.
	for _, note := range []string{"C2", "G2"} {
		events = append(events, Event{
			Gain:  1,
			Sound: &osc.Tone{Frequency: MustNote(note), Harmonics: padHarmonics},
		})
	}

	// Body tones filling the 200-400 Hz region.
	for _, note := range []string{"C3", "G3", "C4"} {
		events = append(events, Event{
			Gain:  0.15,
			Sound: &osc.Tone{Frequency: MustNote(note)},
		})
	}

	return Layer{
		Name:   "bass",
		Events: events,
		Post: []Shape{
			envelope.Swell{Base: 0.85, Depth: 0.15, RateHz: 0.05},
			envelope.FadeIn{Duration: 2},
		},
		Peak: 0.75,
	}
}

func warmMelody() Layer {
	notes := []struct {
		start float64
		note  string
		dur   float64
	}{
		{0.5, "C5", 1.5},
		{2.5, "D5", 1.5},
		{5.0, "E5", 1.5},
		{7.5, "G5", 1.5},
		{10.0, "C5", 1.8},
	}

	events := make([]Event, 0, len(notes))
	for _, n := range notes {
		events = append(events, Event{
			Start:    n.start,
			Duration: n.dur,
			Gain:     0.12,
			Sound:    &osc.Tone{Frequency: MustNote(n.note), Harmonics: softHarmonics},
			Env:      envelope.AttackRelease{Attack: 0.1, Release: 0.5},
		})
	}

	return Layer{Name: "melody", Events: events, Peak: 0.7}
}

func warmAtmosphere(seed int64) Layer {
	rng := rand.New(rand.NewSource(seed))
	events := make([]Event, 0, 26)

	// Wind bed underneath everything, breathing via the texture's own swell.
	events = append(events, Event{
		Gain:  0.08,
		Sound: noise.Wind(rng.Int63()),
	})

	// Leaves rustling, roughly every 1.5 s with jitter.
	for i := 0; i < 8; i++ {
		events = append(events, Event{
			Start:    float64(i)*1.5 + rng.Float64(),
			Duration: 0.8,
			Gain:     0.03,
			Sound:    noise.Rustle(rng.Int63()),
			Env:      envelope.Burst{Decay: 4},
		})
	}

	// Room-tone hum, slowly swelling.
	hum := envelope.Swell{Base: 1, Depth: 0.3, RateHz: 0.05}
	events = append(events,
		Event{Gain: 0.05, Sound: &osc.Tone{Frequency: 120}, Env: hum},
		Event{Gain: 0.03, Sound: &osc.Tone{Frequency: 180}, Env: hum},
	)

	// Sparse fire crackles anywhere in the frame.
	for i := 0; i < 15; i++ {
		events = append(events, Event{
			Start:    rng.Float64() * scoreLength,
			Duration: 0.15,
			Gain:     0.04,
			Sound:    noise.Crackle(rng.Int63()),
			Env:      envelope.ExpDecay{Rate: 30},
		})
	}

	return Layer{Name: "atmosphere", Events: events, Peak: 0.8}
}

func warmChimes() Layer {
	chimes := []struct {
		start float64
		note  string
		dur   float64
	}{
		{1.5, "C5", 1.2},
		{3.5, "E5", 1.0},
		{6.0, "G5", 1.2},
		{8.5, "A5", 1.0},
		{10.5, "C5", 1.5},
	}

	bell := envelope.Percussive{AttackRate: 8, DecayRate: 1.2}
	events := make([]Event, 0, len(chimes)+6)
	for _, c := range chimes {
		events = append(events, Event{
			Start:    c.start,
			Duration: c.dur,
			Gain:     0.06,
			Sound:    &osc.Tone{Frequency: MustNote(c.note), Harmonics: chimeHarmonics},
			Env:      bell,
		})
	}

	// Low dings at the anchor points, doubled an octave below for warmth.
	dings := []struct {
		start float64
		note  string
	}{
		{0.2, "C4"},
		{5.5, "G3"},
		{11.0, "C4"},
	}
	for _, d := range dings {
		freq := MustNote(d.note)
		events = append(events,
			Event{Start: d.start, Duration: 2, Gain: 0.05, Env: bell,
				Sound: &osc.Tone{Frequency: freq, Harmonics: chimeHarmonics}},
			Event{Start: d.start, Duration: 2, Gain: 0.025, Env: bell,
				Sound: &osc.Tone{Frequency: freq / 2, Harmonics: chimeHarmonics}},
		)
	}

	return Layer{Name: "chimes", Events: events, Peak: 0.6}
}
