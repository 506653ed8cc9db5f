package interp

import (
	"testing"

	"github.com/cwbudde/algo-ambient/internal/testutil"
)

func TestLinear(t *testing.T) {
	if got := Linear(0, 2, 0.25); got != 0.5 {
		t.Fatalf("got %v, want 0.5", got)
	}
	if got := Linear(1, 1, 0.7); got != 1 {
		t.Fatalf("got %v, want 1", got)
	}
}

func TestHermite4PassesThroughEndpoints(t *testing.T) {
	if got := Hermite4(0, -1, 2, 3, 4); got != 2 {
		t.Fatalf("t=0: got %v, want 2", got)
	}
	if got := Hermite4(1, -1, 2, 3, 4); got != 3 {
		t.Fatalf("t=1: got %v, want 3", got)
	}
}

func TestResampleLinearIdentity(t *testing.T) {
	src := []float64{0, 1, 2, 3, 4, 5}
	got := ResampleLinear(src, 1)
	testutil.RequireSliceNearlyEqual(t, got, src, 1e-15)
}

func TestResampleLinearHalfRate(t *testing.T) {
	src := []float64{0, 1, 2, 3}
	got := ResampleLinear(src, 0.5)
	want := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestResampleLinearDoubleRate(t *testing.T) {
	src := []float64{0, 1, 2, 3}
	got := ResampleLinear(src, 2)
	want := []float64{0, 2}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestResampleLinearDegenerate(t *testing.T) {
	if got := ResampleLinear(nil, 1); got != nil {
		t.Fatalf("nil input: got %v, want nil", got)
	}
	if got := ResampleLinear([]float64{1}, 0); got != nil {
		t.Fatalf("zero ratio: got %v, want nil", got)
	}
}
