package core

import "testing"

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 4, 16)

	got := EnsureLen(buf, 8)
	if len(got) != 8 {
		t.Fatalf("length: got %d, want 8", len(got))
	}
	if &got[0] != &buf[0] {
		t.Fatalf("expected capacity reuse, got reallocation")
	}

	got = EnsureLen(buf, 32)
	if len(got) != 32 {
		t.Fatalf("length: got %d, want 32", len(got))
	}

	got = EnsureLen(buf, 0)
	if len(got) != 0 {
		t.Fatalf("length: got %d, want 0", len(got))
	}
}

func TestAddScaled(t *testing.T) {
	dst := []float64{1, 1, 1, 1}
	src := []float64{1, 2, 3}

	n := AddScaled(dst, src, 0.5)
	if n != 3 {
		t.Fatalf("accumulated count: got %d, want 3", n)
	}

	want := []float64{1.5, 2, 2.5, 1}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestAddScaledTruncatesToDst(t *testing.T) {
	dst := []float64{0, 0}
	src := []float64{1, 1, 1, 1}

	if n := AddScaled(dst, src, 1); n != 2 {
		t.Fatalf("accumulated count: got %d, want 2", n)
	}
}

func TestZeroAndCopyInto(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("index %d: got %v, want 0", i, v)
		}
	}

	if n := CopyInto(buf, []float64{5, 6}); n != 2 {
		t.Fatalf("copied count: got %d, want 2", n)
	}
	if buf[0] != 5 || buf[1] != 6 || buf[2] != 0 {
		t.Fatalf("unexpected buffer after copy: %v", buf)
	}
}
