package testutil

import "testing"

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 256)
	b := DeterministicNoise(42, 1.0, 256)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 1.0
		}
		if v != want {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}
}

func TestDC(t *testing.T) {
	sig := DC(0.25, 4)
	for i, v := range sig {
		if v != 0.25 {
			t.Fatalf("index %d: got %v, want 0.25", i, v)
		}
	}
}
