package interp

// Linear interpolates between a and b at frac in [0,1].
func Linear(a, b, frac float64) float64 {
	return a + frac*(b-a)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// ResampleLinear reads src at the fractional rate ratio (output sample i maps
// to source position i*ratio) using linear interpolation. A ratio above 1
// shortens the signal and raises its pitch; below 1 lengthens and lowers it.
// Returns nil for empty input or ratio <= 0.
func ResampleLinear(src []float64, ratio float64) []float64 {
	if len(src) == 0 || ratio <= 0 {
		return nil
	}

	outLen := int(float64(len(src)) / ratio)
	if outLen < 1 {
		outLen = 1
	}

	out := make([]float64, outLen)
	last := len(src) - 1
	for i := range out {
		pos := float64(i) * ratio
		idx := int(pos)
		if idx >= last {
			out[i] = src[last]
			continue
		}
		out[i] = Linear(src[idx], src[idx+1], pos-float64(idx))
	}
	return out
}
