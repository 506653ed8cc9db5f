package mix

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ambient/dsp/filter"
	"github.com/cwbudde/algo-ambient/internal/testutil"
)

// testRate keeps the default master's 5 kHz shape inside Nyquist.
const testRate = 22050

func TestWeightedSumConstants(t *testing.T) {
	layers := map[string][]float64{
		"a": testutil.DC(1, 64),
		"b": testutil.DC(-1, 64),
	}
	plan := []Entry{
		{Name: "a", Weight: 0.6},
		{Name: "b", Weight: 0.4},
	}

	out, err := WeightedSum(layers, plan, testRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, testutil.DC(0.2, 64), 1e-12)
}

func TestWeightedSumPreFilter(t *testing.T) {
	// A 50 Hz tone under a 400 Hz high-pass should nearly vanish; the
	// unfiltered copy must stay put.
	tone := testutil.DeterministicSine(50, testRate, 1, 4*testRate)
	layers := map[string][]float64{
		"filtered": append([]float64(nil), tone...),
		"plain":    append([]float64(nil), tone...),
	}
	hp := filter.HP(400, 6)
	plan := []Entry{{Name: "filtered", Weight: 1, PreFilter: &hp}}

	out, err := WeightedSum(layers, plan, testRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mid := out[len(out)/4 : 3*len(out)/4]
	for i, v := range mid {
		if math.Abs(v) > 1e-3 {
			t.Fatalf("index %d: stopband leakage %v", i, v)
		}
	}

	plain, err := WeightedSum(layers, []Entry{{Name: "plain", Weight: 1}}, testRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, plain, tone, 1e-12)
}

func TestWeightedSumErrors(t *testing.T) {
	layers := map[string][]float64{
		"a": testutil.DC(1, 16),
		"b": testutil.DC(1, 8),
	}

	if _, err := WeightedSum(layers, nil, testRate); err == nil {
		t.Fatalf("expected error for empty plan")
	}
	if _, err := WeightedSum(layers, []Entry{{Name: "missing", Weight: 1}}, testRate); err == nil {
		t.Fatalf("expected error for unknown layer")
	}
	if _, err := WeightedSum(layers, []Entry{{Name: "a", Weight: -1}}, testRate); err == nil {
		t.Fatalf("expected error for negative weight")
	}
	plan := []Entry{{Name: "a", Weight: 1}, {Name: "b", Weight: 1}}
	if _, err := WeightedSum(layers, plan, testRate); err == nil {
		t.Fatalf("expected error for mismatched lengths")
	}

	bad := filter.HP(-10, 2)
	layers["b"] = testutil.DC(1, 16)
	if _, err := WeightedSum(layers, []Entry{{Name: "a", Weight: 1, PreFilter: &bad}}, testRate); err == nil {
		t.Fatalf("expected error for invalid pre-filter")
	}
}

func TestWarmPlanShape(t *testing.T) {
	plan := WarmPlan()
	if len(plan) != 4 {
		t.Fatalf("entry count: got %d, want 4", len(plan))
	}
	if plan[0].Name != "bass" || plan[0].PreFilter != nil {
		t.Fatalf("bass must lead the plan unfiltered: %+v", plan[0])
	}
	for _, e := range plan[1:] {
		if e.PreFilter == nil || e.PreFilter.Kind != filter.Highpass || e.PreFilter.Cutoff != 200 {
			t.Fatalf("entry %q: want 200 Hz high-pass, got %+v", e.Name, e.PreFilter)
		}
	}
}
