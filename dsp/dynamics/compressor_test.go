package dynamics

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ambient/dsp/core"
	"github.com/cwbudde/algo-ambient/internal/testutil"
)

func TestCompressorReferencePoint(t *testing.T) {
	// A 0.5-amplitude peak through threshold 0.3, ratio 2 lands at
	// 0.3 + (0.5-0.3)/2 = 0.4.
	c, err := NewCompressor(Stage{Threshold: 0.3, Ratio: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buf := testutil.DeterministicSine(440, 44100, 0.5, 8192)
	c.ProcessBlock(buf)

	peak := 0.0
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if math.Abs(peak-0.4) > 1e-3 {
		t.Fatalf("compressed peak: got %v, want 0.4", peak)
	}
}

func TestCompressorIdentityBelowThreshold(t *testing.T) {
	c, err := NewCompressor(Stage{Threshold: 0.5, Ratio: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, x := range []float64{-0.49, -0.1, 0, 0.2, 0.5} {
		if got := c.ProcessSample(x); got != x {
			t.Fatalf("input %v: got %v, want identity", x, got)
		}
	}
}

func TestCompressorSilenceInSilenceOut(t *testing.T) {
	c, err := NewCompressor(Stage{Threshold: 0.3, Ratio: 2.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buf := make([]float64, 1024)
	c.ProcessBlock(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("index %d: got %v, want 0", i, v)
		}
	}
}

func TestCompressorPreservesSign(t *testing.T) {
	c, err := NewCompressor(Stage{Threshold: 0.3, Ratio: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := c.ProcessSample(-0.5); math.Abs(got+0.4) > 1e-15 {
		t.Fatalf("got %v, want -0.4", got)
	}
}

func TestCompressorCascadeOrder(t *testing.T) {
	aggressive := Stage{Threshold: 0.2, Ratio: 4}
	gentle := Stage{Threshold: 0.4, Ratio: 2}

	c, err := NewCompressor(aggressive, gentle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := gentle.process(aggressive.process(0.9))
	if got := c.ProcessSample(0.9); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if c.NumStages() != 2 {
		t.Fatalf("stages: got %d, want 2", c.NumStages())
	}
}

func TestStageFromDB(t *testing.T) {
	s := StageFromDB(-18, 4)
	if want := core.DBToLinear(-18); math.Abs(s.Threshold-want) > 1e-15 {
		t.Fatalf("threshold: got %v, want %v", s.Threshold, want)
	}
	if s.Ratio != 4 {
		t.Fatalf("ratio: got %v, want 4", s.Ratio)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewCompressorValidation(t *testing.T) {
	if _, err := NewCompressor(); err == nil {
		t.Fatalf("expected error for empty stage list")
	}
	if _, err := NewCompressor(Stage{Threshold: 0, Ratio: 2}); err == nil {
		t.Fatalf("expected error for zero threshold")
	}
	if _, err := NewCompressor(Stage{Threshold: 1.5, Ratio: 2}); err == nil {
		t.Fatalf("expected error for threshold above full scale")
	}
	if _, err := NewCompressor(Stage{Threshold: 0.3, Ratio: 0.5}); err == nil {
		t.Fatalf("expected error for expanding ratio")
	}
}
