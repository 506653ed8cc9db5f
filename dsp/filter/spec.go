package filter

import "fmt"

// Kind selects the filter response shape.
type Kind int

const (
	Lowpass Kind = iota
	Highpass
	Bandpass
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const maxOrder = 6

// Spec describes a Butterworth filter: response kind, cutoff (and upper
// band edge for bandpass) in Hz, and order. Orders are deliberately capped
// low; the renderer wants gentle roll-offs, not brick walls.
type Spec struct {
	Kind   Kind
	Cutoff float64
	Upper  float64 // bandpass only: upper band edge
	Order  int
}

// LP returns a lowpass spec.
func LP(cutoff float64, order int) Spec {
	return Spec{Kind: Lowpass, Cutoff: cutoff, Order: order}
}

// HP returns a highpass spec.
func HP(cutoff float64, order int) Spec {
	return Spec{Kind: Highpass, Cutoff: cutoff, Order: order}
}

// BP returns a bandpass spec with the given band edges.
func BP(low, high float64, order int) Spec {
	return Spec{Kind: Bandpass, Cutoff: low, Upper: high, Order: order}
}

// Validate reports the first configuration error for the given sample rate.
// Cutoffs must lie strictly inside (0, Nyquist).
func (s Spec) Validate(sampleRate float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %v", sampleRate)
	}
	if s.Order < 1 || s.Order > maxOrder {
		return fmt.Errorf("filter order must be in [1, %d]: %d", maxOrder, s.Order)
	}

	nyquist := sampleRate / 2
	if s.Cutoff <= 0 || s.Cutoff >= nyquist {
		return fmt.Errorf("%s cutoff must be in (0, %v): %v", s.Kind, nyquist, s.Cutoff)
	}
	if s.Kind == Bandpass {
		if s.Upper <= s.Cutoff || s.Upper >= nyquist {
			return fmt.Errorf("bandpass upper edge must be in (%v, %v): %v", s.Cutoff, nyquist, s.Upper)
		}
	}
	return nil
}
