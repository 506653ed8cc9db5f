package compose

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ambient/internal/testutil"
)

func TestClipRenderPassThrough(t *testing.T) {
	data := []float64{0.1, 0.2, 0.3, 0.4}
	clip := &Clip{Data: data}

	out, err := clip.Render(6, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{0.1, 0.2, 0.3, 0.4, 0, 0}
	testutil.RequireSliceNearlyEqual(t, out, want, 0)

	out, err = clip.Render(2, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, data[:2], 0)
}

func TestClipRenderPitchShift(t *testing.T) {
	// A full cycle of a slow sine; shifting up an octave halves the period.
	const n = 200
	data := testutil.DeterministicSine(0.5, 100, 1, n)

	clip := &Clip{Data: data, Semitones: 12}
	out, err := clip.Render(n/2, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < n/2-1; i++ {
		if math.Abs(out[i]-data[2*i]) > 1e-12 {
			t.Fatalf("index %d: got %v, want %v", i, out[i], data[2*i])
		}
	}
}

func TestClipRenderErrors(t *testing.T) {
	clip := &Clip{Data: []float64{1}}
	if _, err := clip.Render(0, 100); err == nil {
		t.Fatalf("expected error for zero samples")
	}

	empty := &Clip{}
	if _, err := empty.Render(10, 100); err == nil {
		t.Fatalf("expected error for empty clip")
	}
}

func TestSampleSetExactHit(t *testing.T) {
	set := NewSampleSet()
	data := []float64{0.5, -0.5}
	if err := set.Add("C4", data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clip, err := set.Clip("C4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clip.Semitones != 0 {
		t.Fatalf("exact hit must not shift: got %v semitones", clip.Semitones)
	}
	testutil.RequireSliceNearlyEqual(t, clip.Data, data, 0)
}

func TestSampleSetNearestNeighbor(t *testing.T) {
	set := NewSampleSet()
	if err := set.Add("C4", []float64{1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := set.Add("C5", []float64{2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// D4 is 2 semitones from C4, 10 from C5.
	clip, err := set.Clip("D4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clip.Semitones != 2 {
		t.Fatalf("shift: got %v, want 2", clip.Semitones)
	}
	if clip.Data[0] != 1 {
		t.Fatalf("neighbor: got data %v, want the C4 clip", clip.Data)
	}

	// B4 is 1 semitone below C5.
	clip, err = set.Clip("B4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clip.Semitones != -1 {
		t.Fatalf("shift: got %v, want -1", clip.Semitones)
	}
}

func TestSampleSetErrors(t *testing.T) {
	set := NewSampleSet()
	if _, err := set.Clip("C4"); err == nil {
		t.Fatalf("expected error for empty set")
	}
	if err := set.Add("H4", []float64{1}); err == nil {
		t.Fatalf("expected error for bad note name")
	}
	if err := set.Add("C4", nil); err == nil {
		t.Fatalf("expected error for empty data")
	}
	if err := set.Add("C4", []float64{1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := set.Clip("X2"); err == nil {
		t.Fatalf("expected error for bad note lookup")
	}
	if set.Len() != 1 {
		t.Fatalf("len: got %d, want 1", set.Len())
	}
}
