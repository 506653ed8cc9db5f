package compose

import (
	"fmt"

	"github.com/cwbudde/algo-ambient/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Event is one scheduled occurrence in a layer: a sound rendered at Start
// seconds for Duration seconds, shaped by Env and scaled by Gain, then
// accumulated additively into the layer buffer. Duration <= 0 means
// "to the end of the layer". Events are immutable once scheduled.
type Event struct {
	Start    float64
	Duration float64
	Gain     float64
	Sound    Sound
	Env      Shape
}

// Layer is a named, fixed-length composition target: a literal schedule
// of events plus whole-layer post shapes (breathing swells, layer fades).
// A positive Peak normalizes the finished layer to that peak level.
type Layer struct {
	Name   string
	Events []Event
	Post   []Shape
	Peak   float64
}

// Render composes the layer into a fresh buffer of cfg's length.
//
// Each event renders into a scratch buffer, gets its envelope and gain,
// and is added at its start offset. Accumulation never overwrites, so
// overlapping events form chords and legato tails. An event running past
// the buffer end is truncated silently; one starting past the end
// contributes nothing. Both are scheduling policies, not errors.
func (l Layer) Render(cfg core.RenderConfig) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("layer %q: %w", l.Name, err)
	}

	total := cfg.Samples()
	out := make([]float64, total)

	for i, ev := range l.Events {
		if err := l.renderEvent(out, ev, cfg); err != nil {
			return nil, fmt.Errorf("layer %q event %d: %w", l.Name, i, err)
		}
	}

	for _, shape := range l.Post {
		shape.Apply(out, cfg.SampleRate)
	}

	if l.Peak > 0 {
		if err := l.normalize(out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (l Layer) renderEvent(out []float64, ev Event, cfg core.RenderConfig) error {
	if ev.Sound == nil {
		return fmt.Errorf("event has no sound")
	}
	if ev.Start < 0 {
		return fmt.Errorf("event start must be >= 0: %v", ev.Start)
	}
	if ev.Gain < 0 {
		return fmt.Errorf("event gain must be >= 0: %v", ev.Gain)
	}

	start := int(ev.Start * cfg.SampleRate)
	if start >= len(out) {
		return nil
	}

	// The scratch buffer spans the full event duration so length-anchored
	// envelopes (release ramps, burst windows) keep their place even when
	// the event overruns the layer; only the copy is clipped.
	full := len(out) - start
	if ev.Duration > 0 {
		full = int(ev.Duration * cfg.SampleRate)
	}
	if full <= 0 {
		return nil
	}

	scratch, err := ev.Sound.Render(full, cfg.SampleRate)
	if err != nil {
		return err
	}
	if ev.Env != nil {
		ev.Env.Apply(scratch, cfg.SampleRate)
	}

	n := full
	if avail := len(out) - start; n > avail {
		n = avail
	}
	core.AddScaled(out[start:], scratch[:n], ev.Gain)
	return nil
}

func (l Layer) normalize(buf []float64) error {
	peak := vecmath.MaxAbs(buf)
	if peak == 0 {
		return fmt.Errorf("layer %q is silent, cannot normalize", l.Name)
	}
	vecmath.ScaleBlockInPlace(buf, l.Peak/peak)
	return nil
}
