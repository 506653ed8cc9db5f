package wavio

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-ambient/internal/testutil"
)

func TestToInt16Clips(t *testing.T) {
	in := []float64{0, 0.5, 1, -1, 1.5, -2}
	got := ToInt16(in)
	want := []int{0, 16384, 32767, -32767, 32767, -32767}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestInt16Roundtrip(t *testing.T) {
	in := testutil.DeterministicSine(440, 8000, 0.8, 256)
	out := FromInt16(ToInt16(in))
	testutil.RequireSliceNearlyEqual(t, out, in, 1.0/32767)
}

func TestWriteReadMonoRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	in := testutil.DeterministicSine(440, 8000, 0.8, 8000)

	if err := WriteMono(path, in, 8000); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, rate, err := ReadMono(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rate != 8000 {
		t.Fatalf("sample rate: got %d, want 8000", rate)
	}
	if len(out) != len(in) {
		t.Fatalf("length: got %d, want %d", len(out), len(in))
	}
	for i := range in {
		if math.Abs(out[i]-in[i]) > 1e-3 {
			t.Fatalf("index %d: got %v, want %v", i, out[i], in[i])
		}
	}
}

func TestWriteMonoErrors(t *testing.T) {
	dir := t.TempDir()
	if err := WriteMono(filepath.Join(dir, "empty.wav"), nil, 8000); err == nil {
		t.Fatalf("expected error for empty samples")
	}
	if err := WriteMono(filepath.Join(dir, "rate.wav"), testutil.Ones(16), 0); err == nil {
		t.Fatalf("expected error for zero sample rate")
	}
	if err := WriteMono(filepath.Join(dir, "missing", "x.wav"), testutil.Ones(16), 8000); err == nil {
		t.Fatalf("expected error for unwritable path")
	}
}

func TestReadMonoErrors(t *testing.T) {
	if _, _, err := ReadMono(filepath.Join(t.TempDir(), "nope.wav")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
