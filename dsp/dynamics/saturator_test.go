package dynamics

import (
	"math"
	"testing"
)

func TestSaturatorIdentityAtZero(t *testing.T) {
	s := Saturator{Drive: 2}
	if got := s.ProcessSample(0); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestSaturatorNearLinearAtLowLevel(t *testing.T) {
	s := Saturator{Drive: 2}
	x := 0.01
	if got := s.ProcessSample(x); math.Abs(got-x) > 1e-5 {
		t.Fatalf("got %v, want ~%v", got, x)
	}
}

func TestSaturatorBoundsOutput(t *testing.T) {
	s := Saturator{Drive: 2}
	bound := 1 / s.Drive

	for _, x := range []float64{1, 5, 100, -100} {
		got := s.ProcessSample(x)
		if math.Abs(got) >= bound {
			t.Fatalf("input %v: got %v, want |y| < %v", x, got, bound)
		}
	}
}

func TestSaturatorProcessBlockMatchesPerSample(t *testing.T) {
	s := Saturator{Drive: 2}
	buf := []float64{-1.2, -0.3, 0, 0.3, 1.2}

	want := make([]float64, len(buf))
	for i, x := range buf {
		want[i] = s.ProcessSample(x)
	}

	s.ProcessBlock(buf)
	for i := range buf {
		if buf[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestSaturatorValidate(t *testing.T) {
	if err := (Saturator{Drive: 2}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Saturator{}).Validate(); err == nil {
		t.Fatalf("expected error for zero drive")
	}
}
