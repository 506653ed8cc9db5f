package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Fatalf("got %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
	if got := Clamp(0.5, 1, 0); got != 0.5 {
		t.Fatalf("swapped bounds: got %v, want 0.5", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-9) {
		t.Fatalf("expected nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-9) {
		t.Fatalf("expected not nearly equal")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatalf("zero comparison with default epsilon failed")
	}
}

func TestDBConversions(t *testing.T) {
	if got := DBToLinear(0); got != 1 {
		t.Fatalf("0 dB: got %v, want 1", got)
	}
	if got := DBToLinear(-20); !NearlyEqual(got, 0.1, 1e-12) {
		t.Fatalf("-20 dB: got %v, want 0.1", got)
	}
	if got := LinearToDB(1); got != 0 {
		t.Fatalf("unity: got %v, want 0", got)
	}
	if got := LinearToDB(0); !math.IsInf(got, -1) {
		t.Fatalf("zero: got %v, want -Inf", got)
	}
	if got := LinearToDB(-1); !math.IsNaN(got) {
		t.Fatalf("negative: got %v, want NaN", got)
	}
}
