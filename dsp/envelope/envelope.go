package envelope

// ramp returns the i-th of n inclusive samples interpolating from -> to.
// A one-sample ramp yields the start value, matching inclusive-endpoint
// linear spacing.
func ramp(from, to float64, n, i int) float64 {
	if n <= 1 {
		return from
	}
	return from + (to-from)*float64(i)/float64(n-1)
}

// phaseSamples truncates a phase duration to a sample count clamped to total.
func phaseSamples(duration, sampleRate float64, total int) int {
	if duration <= 0 {
		return 0
	}
	n := int(duration * sampleRate)
	if n > total {
		return total
	}
	return n
}
