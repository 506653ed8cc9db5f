package envelope

import (
	"testing"

	"github.com/cwbudde/algo-ambient/internal/testutil"
)

func TestFadeInBoundaries(t *testing.T) {
	buf := testutil.Ones(100)
	FadeIn{Duration: 0.5, Curve: 2}.Apply(buf, rate)

	if buf[0] != 0 {
		t.Fatalf("first sample: got %v, want 0", buf[0])
	}
	if buf[49] != 1 {
		t.Fatalf("window end: got %v, want 1", buf[49])
	}
	if buf[50] != 1 {
		t.Fatalf("past window: got %v, want 1", buf[50])
	}

	for i := 1; i < 50; i++ {
		if buf[i] < buf[i-1] {
			t.Fatalf("fade-in not monotone at %d: %v < %v", i, buf[i], buf[i-1])
		}
	}
}

func TestFadeOutBoundaries(t *testing.T) {
	buf := testutil.Ones(100)
	FadeOut{Duration: 0.5, Curve: 2}.Apply(buf, rate)

	if buf[49] != 1 {
		t.Fatalf("before window: got %v, want 1", buf[49])
	}
	if buf[50] != 1 {
		t.Fatalf("window start: got %v, want 1", buf[50])
	}
	if buf[99] != 0 {
		t.Fatalf("last sample: got %v, want 0", buf[99])
	}

	for i := 51; i < 100; i++ {
		if buf[i] > buf[i-1] {
			t.Fatalf("fade-out not monotone at %d: %v > %v", i, buf[i], buf[i-1])
		}
	}
}

func TestFadeWindowClampsToBuffer(t *testing.T) {
	buf := testutil.Ones(10)
	FadeIn{Duration: 5}.Apply(buf, rate)

	if buf[0] != 0 {
		t.Fatalf("first sample: got %v, want 0", buf[0])
	}
	if buf[9] != 1 {
		t.Fatalf("last sample: got %v, want 1", buf[9])
	}
}

func TestFadeDefaultCurveIsLinear(t *testing.T) {
	buf := testutil.Ones(11)
	FadeIn{Duration: 0.11}.Apply(buf, rate)

	if got := buf[5]; got != 0.5 {
		t.Fatalf("midpoint: got %v, want 0.5", got)
	}
}
