package mix

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ambient/dsp/dynamics"
	"github.com/cwbudde/algo-ambient/dsp/envelope"
	"github.com/cwbudde/algo-ambient/dsp/filter"
	"github.com/cwbudde/algo-vecmath"
)

// ErrSilentBuffer is returned when normalization meets an all-zero buffer.
var ErrSilentBuffer = errors.New("buffer is silent, cannot normalize")

// Master is the mixdown chain: weighted layer sum, gentle spectral shaping,
// cascaded compression, tanh saturation, edge fades, and peak normalization
// as the final stage. Normalizing last keeps the target peak exact no
// matter what the nonlinearities did before it.
type Master struct {
	SampleRate float64
	Shape      *filter.Spec
	Stages     []dynamics.Stage
	Drive      float64
	FadeIn     envelope.FadeIn
	FadeOut    envelope.FadeOut
	TargetPeak float64
}

// DefaultMaster returns the house mastering chain: 5 kHz order-2 low-pass,
// a single gentle compression stage, drive 2 saturation, squared 2-second
// fades and a 0.85 target peak.
func DefaultMaster(sampleRate float64) Master {
	lp := filter.LP(5000, 2)
	return Master{
		SampleRate: sampleRate,
		Shape:      &lp,
		Stages:     []dynamics.Stage{{Threshold: 0.3, Ratio: 2.5}},
		Drive:      2,
		FadeIn:     envelope.FadeIn{Duration: 2, Curve: 2},
		FadeOut:    envelope.FadeOut{Duration: 2, Curve: 2},
		TargetPeak: 0.85,
	}
}

// Validate reports the first configuration error.
func (m Master) Validate() error {
	if m.SampleRate <= 0 {
		return fmt.Errorf("master sample rate must be > 0: %v", m.SampleRate)
	}
	if m.Shape != nil {
		if err := m.Shape.Validate(m.SampleRate); err != nil {
			return fmt.Errorf("master shape: %w", err)
		}
	}
	for i, s := range m.Stages {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("master stage %d: %w", i, err)
		}
	}
	if m.Drive != 0 {
		if err := (dynamics.Saturator{Drive: m.Drive}).Validate(); err != nil {
			return fmt.Errorf("master: %w", err)
		}
	}
	if m.TargetPeak <= 0 || m.TargetPeak >= 1 {
		return fmt.Errorf("master target peak must be in (0, 1): %v", m.TargetPeak)
	}
	return nil
}

// Mixdown runs the full chain over the planned layers and returns the
// finished track.
func (m Master) Mixdown(layers map[string][]float64, plan []Entry) ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	out, err := WeightedSum(layers, plan, m.SampleRate)
	if err != nil {
		return nil, err
	}

	if m.Shape != nil {
		if err := filter.ZeroPhase(out, *m.Shape, m.SampleRate); err != nil {
			return nil, fmt.Errorf("master shape: %w", err)
		}
	}

	if len(m.Stages) > 0 {
		comp, err := dynamics.NewCompressor(m.Stages...)
		if err != nil {
			return nil, fmt.Errorf("master: %w", err)
		}
		comp.ProcessBlock(out)
	}

	if m.Drive != 0 {
		dynamics.Saturator{Drive: m.Drive}.ProcessBlock(out)
	}

	if m.FadeIn.Duration > 0 {
		m.FadeIn.Apply(out, m.SampleRate)
	}
	if m.FadeOut.Duration > 0 {
		m.FadeOut.Apply(out, m.SampleRate)
	}

	if err := Normalize(out, m.TargetPeak); err != nil {
		return nil, err
	}
	return out, nil
}

// Normalize scales buf in place so its peak magnitude equals targetPeak.
// Normalizing an already-normalized buffer changes nothing beyond float
// rounding. A silent buffer returns ErrSilentBuffer; scaling silence to a
// peak is undefined and must never yield NaN output.
func Normalize(buf []float64, targetPeak float64) error {
	if targetPeak <= 0 || targetPeak >= 1 {
		return fmt.Errorf("target peak must be in (0, 1): %v", targetPeak)
	}
	peak := vecmath.MaxAbs(buf)
	if peak == 0 {
		return ErrSilentBuffer
	}
	vecmath.ScaleBlockInPlace(buf, targetPeak/peak)
	return nil
}
