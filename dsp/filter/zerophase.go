package filter

import "github.com/cwbudde/algo-ambient/dsp/filter/biquad"

// ZeroPhase filters buf in place with the cascade for spec, running it
// forward and then backward so the net phase shift is zero. Buffer length
// is preserved and transients keep their position; the price is the usual
// forward-backward doubling of the effective order.
func ZeroPhase(buf []float64, spec Spec, sampleRate float64) error {
	coeffs, err := Butterworth(spec, sampleRate)
	if err != nil {
		return err
	}
	if len(buf) == 0 {
		return nil
	}

	chain := biquad.NewChain(coeffs)
	chain.ProcessBlock(buf)

	reverse(buf)
	chain.Reset()
	chain.ProcessBlock(buf)
	reverse(buf)

	return nil
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
