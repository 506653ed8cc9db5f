package mix

import (
	"fmt"

	"github.com/cwbudde/algo-ambient/dsp/filter"
	"github.com/cwbudde/algo-vecmath"
)

// Entry is one layer's slot in a mix plan: the layer name it pulls from,
// its linear weight, and an optional zero-phase pre-filter applied before
// summation. Weights need not sum to one; the master normalizes at the
// end of the chain.
type Entry struct {
	Name      string
	Weight    float64
	PreFilter *filter.Spec
}

// WarmPlan returns the mix plan for the warm score. The bass layer is the
// tonal foundation and passes unfiltered; everything above it is
// high-passed at 200 Hz so the low end stays uncluttered.
func WarmPlan() []Entry {
	hp := filter.HP(200, 6)
	return []Entry{
		{Name: "bass", Weight: 0.70},
		{Name: "melody", Weight: 0.25, PreFilter: &hp},
		{Name: "atmosphere", Weight: 0.20, PreFilter: &hp},
		{Name: "chimes", Weight: 0.15, PreFilter: &hp},
	}
}

// WeightedSum pre-filters and sums the planned layers into a fresh buffer.
// Pre-filtering happens in place on the caller's layer buffers; layers are
// consumed by mixing, not shared.
func WeightedSum(layers map[string][]float64, plan []Entry, sampleRate float64) ([]float64, error) {
	if len(plan) == 0 {
		return nil, fmt.Errorf("mix plan is empty")
	}

	length := -1
	for _, e := range plan {
		buf, ok := layers[e.Name]
		if !ok {
			return nil, fmt.Errorf("mix plan references unknown layer %q", e.Name)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("mix weight for %q must be >= 0: %v", e.Name, e.Weight)
		}
		if length < 0 {
			length = len(buf)
		} else if len(buf) != length {
			return nil, fmt.Errorf("layer %q length %d does not match %d", e.Name, len(buf), length)
		}
	}
	if length == 0 {
		return nil, fmt.Errorf("mix layers are empty")
	}

	out := make([]float64, length)
	scaled := make([]float64, length)
	for _, e := range plan {
		buf := layers[e.Name]
		if e.PreFilter != nil {
			if err := filter.ZeroPhase(buf, *e.PreFilter, sampleRate); err != nil {
				return nil, fmt.Errorf("pre-filter for %q: %w", e.Name, err)
			}
		}
		vecmath.ScaleBlock(scaled, buf, e.Weight)
		vecmath.AddBlockInPlace(out, scaled)
	}

	return out, nil
}
