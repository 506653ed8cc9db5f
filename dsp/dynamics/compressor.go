package dynamics

import (
	"fmt"

	"github.com/cwbudde/algo-ambient/dsp/core"
)

// Stage is one static compression stage: samples whose magnitude exceeds
// Threshold are pulled toward it by Ratio, sign preserved. The transfer
// is memoryless, so the result is fully deterministic and order-stable.
type Stage struct {
	Threshold float64
	Ratio     float64
}

// StageFromDB builds a stage from a threshold in dBFS.
func StageFromDB(thresholdDB, ratio float64) Stage {
	return Stage{Threshold: core.DBToLinear(thresholdDB), Ratio: ratio}
}

// Validate reports the first invalid stage parameter.
func (s Stage) Validate() error {
	if s.Threshold <= 0 || s.Threshold >= 1 {
		return fmt.Errorf("compressor threshold must be in (0, 1): %v", s.Threshold)
	}
	if s.Ratio < 1 {
		return fmt.Errorf("compressor ratio must be >= 1: %v", s.Ratio)
	}
	return nil
}

func (s Stage) process(x float64) float64 {
	if x > s.Threshold {
		return s.Threshold + (x-s.Threshold)/s.Ratio
	}
	if x < -s.Threshold {
		return -(s.Threshold + (-x-s.Threshold)/s.Ratio)
	}
	return x
}

// Compressor cascades static compression stages. Running an aggressive
// low-threshold stage into a gentler high-threshold one approximates a
// smooth knee without per-sample state.
type Compressor struct {
	stages []Stage
}

// NewCompressor builds a cascade from the given stages, validating each.
func NewCompressor(stages ...Stage) (*Compressor, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("compressor needs at least one stage")
	}
	for i, s := range stages {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
	}
	return &Compressor{stages: append([]Stage(nil), stages...)}, nil
}

// ProcessSample runs one sample through all stages in order.
func (c *Compressor) ProcessSample(x float64) float64 {
	for _, s := range c.stages {
		x = s.process(x)
	}
	return x
}

// ProcessBlock compresses a block in place.
func (c *Compressor) ProcessBlock(buf []float64) {
	for _, s := range c.stages {
		for i, x := range buf {
			buf[i] = s.process(x)
		}
	}
}

// NumStages returns the number of cascaded stages.
func (c *Compressor) NumStages() int {
	return len(c.stages)
}
