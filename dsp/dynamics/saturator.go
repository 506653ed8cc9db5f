package dynamics

import (
	"fmt"
	"math"
)

// Saturator applies tanh soft clipping: tanh(x*Drive)/Drive. Low-level
// signals pass through nearly unchanged while peaks round off softly below
// 1/Drive. The master chain runs it after compression as the final
// nonlinearity before fades and normalization.
type Saturator struct {
	Drive float64
}

// Validate reports an invalid drive setting.
func (s Saturator) Validate() error {
	if s.Drive <= 0 {
		return fmt.Errorf("saturator drive must be > 0: %v", s.Drive)
	}
	return nil
}

// ProcessSample saturates one sample.
func (s Saturator) ProcessSample(x float64) float64 {
	return math.Tanh(x*s.Drive) / s.Drive
}

// ProcessBlock saturates a block in place.
func (s Saturator) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = math.Tanh(x*s.Drive) / s.Drive
	}
}
