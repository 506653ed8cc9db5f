package filter

import "testing"

func TestSpecValidate(t *testing.T) {
	const rate = 44100.0

	valid := []Spec{
		LP(5000, 2),
		HP(200, 6),
		BP(500, 3000, 3),
		LP(22049, 1),
	}
	for _, s := range valid {
		if err := s.Validate(rate); err != nil {
			t.Fatalf("%+v: unexpected error: %v", s, err)
		}
	}

	invalid := []Spec{
		LP(0, 2),            // zero cutoff
		LP(-100, 2),         // negative cutoff
		LP(22050, 2),        // at Nyquist
		LP(30000, 2),        // above Nyquist
		LP(1000, 0),         // zero order
		LP(1000, 7),         // order above cap
		BP(3000, 500, 3),    // inverted band
		BP(500, 500, 3),     // empty band
		BP(500, 22050, 3),   // upper at Nyquist
	}
	for _, s := range invalid {
		if err := s.Validate(rate); err == nil {
			t.Fatalf("%+v: expected error, got nil", s)
		}
	}

	if err := LP(1000, 2).Validate(0); err == nil {
		t.Fatalf("expected error for zero sample rate")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Lowpass:  "lowpass",
		Highpass: "highpass",
		Bandpass: "bandpass",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}
