package render

import (
	"fmt"

	"github.com/cwbudde/algo-ambient/compose"
	"github.com/cwbudde/algo-ambient/dsp/core"
	"github.com/cwbudde/algo-ambient/dsp/dynamics"
	"github.com/cwbudde/algo-ambient/dsp/envelope"
	"github.com/cwbudde/algo-ambient/dsp/filter"
	"github.com/cwbudde/algo-ambient/dsp/osc"
	"github.com/cwbudde/algo-ambient/mix"
	"github.com/cwbudde/algo-vecmath"
)

// Blend lays an externally rendered instrument take over a warm synthesized
// pad. The instrument buffer must already be mono at the working sample
// rate; a shorter take is zero-padded, a longer one truncated. The
// instrument is band-limited (60 Hz to 3 kHz), tamed by a deep compressor
// and faded in; the pad breathes under it; the blended bus runs two gentle
// compression stages, long squared fades and peak normalization.
func Blend(instrument []float64, opts ...Option) ([]float64, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(instrument) == 0 {
		return nil, fmt.Errorf("blend instrument buffer is empty")
	}

	total := cfg.Samples()
	inst := make([]float64, total)
	copy(inst, instrument)

	if err := filter.ZeroPhase(inst, filter.LP(3000, 4), cfg.SampleRate); err != nil {
		return nil, fmt.Errorf("instrument low-pass: %w", err)
	}
	if err := filter.ZeroPhase(inst, filter.HP(60, 2), cfg.SampleRate); err != nil {
		return nil, fmt.Errorf("instrument high-pass: %w", err)
	}
	instComp, err := dynamics.NewCompressor(dynamics.StageFromDB(-25, 5))
	if err != nil {
		return nil, err
	}
	instComp.ProcessBlock(inst)
	envelope.FadeIn{Duration: 2, Curve: 2}.Apply(inst, cfg.SampleRate)

	pad, err := blendPad().Render(cfg.RenderConfig)
	if err != nil {
		return nil, err
	}
	if err := filter.ZeroPhase(pad, filter.LP(500, 4), cfg.SampleRate); err != nil {
		return nil, fmt.Errorf("pad low-pass: %w", err)
	}

	// Level offsets before summing: the pad carries the bed, the
	// instrument sits just inside it.
	vecmath.ScaleBlockInPlace(pad, core.DBToLinear(4))
	vecmath.ScaleBlockInPlace(inst, core.DBToLinear(-3))
	vecmath.AddBlockInPlace(pad, inst)

	bus := mix.Master{
		SampleRate: cfg.SampleRate,
		Stages: []dynamics.Stage{
			dynamics.StageFromDB(-18, 4),
			dynamics.StageFromDB(-12, 2),
		},
		FadeIn:     envelope.FadeIn{Duration: 2.5, Curve: 2},
		FadeOut:    envelope.FadeOut{Duration: 2.5, Curve: 2},
		TargetPeak: 0.85,
	}
	return bus.Mixdown(
		map[string][]float64{"blend": pad},
		[]mix.Entry{{Name: "blend", Weight: 1}},
	)
}

// blendPad is the root-position C major bed under a blended take: five
// stacked voices thinning out as they rise, breathing on a very slow swell.
func blendPad() compose.Layer {
	notes := []string{"C2", "G2", "C3", "E3", "G3"}
	events := make([]compose.Event, 0, len(notes))
	for i, note := range notes {
		events = append(events, compose.Event{
			Gain: 0.15 / float64(i+1),
			Sound: &osc.Tone{
				Frequency: compose.MustNote(note),
				Harmonics: []osc.Harmonic{{Mult: 1, Amp: 1}, {Mult: 2, Amp: 0.3}},
			},
		})
	}

	return compose.Layer{
		Name:   "pad",
		Events: events,
		Post:   []compose.Shape{envelope.Swell{Base: 0.7, Depth: 0.3, RateHz: 0.04}},
	}
}
