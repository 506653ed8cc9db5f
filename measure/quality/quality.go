package quality

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Config parameterizes an analysis run.
type Config struct {
	SampleRate float64
}

// Thresholds for the pass/fail gates. Tuned for short ambient tracks: a
// warm low register, no harsh transients, consonant spectral peaks, a
// moving melody and a reasonably full spectrum.
const (
	minWarmBassShare = 0.25
	minWarmMidShare  = 0.15
	maxHighMidShare  = 0.20
	maxHighShare     = 0.10
	minWarmSum       = 0.45

	maxHarshRatio  = 0.01
	harshStdFactor = 4
	minSmoothScore = 0.5
	smoothScoreEps = 1e-4
	minConsonance  = 0.30
	ratioTolerance = 0.1

	minCrestDB = 3
	maxCrestDB = 12
	minRMS     = 0.08

	melodyWindowSec = 0.25
	minPitchHz      = 200
	maxPitchHz      = 2000
	pitchChangeHz   = 20
	minPitchChanges = 3
	minPitchStdHz   = 50

	fullnessBandHz   = 50
	fullnessCeilHz   = 2000
	minActiveShare   = 0.30
	minActiveBands   = 10
	bandActiveFactor = 0.5
)

// consonantRatios are the intervals counted as consonant: unison, octave,
// fifth, major third, fourth, minor third.
var consonantRatios = []float64{1, 2, 1.5, 1.25, 1.33, 1.2}

// Validate reports the first invalid configuration value.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %v", c.SampleRate)
	}
	return nil
}

// Analyze measures a finished track against the quality gate. The whole
// signal feeds one FFT for the spectral sections, a second round trip
// recovers the analytic envelope for smoothness, and melodic movement
// uses short hopping windows on top.
func Analyze(signal []float64, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if len(signal) == 0 {
		return Report{}, fmt.Errorf("signal is empty")
	}
	if vecmath.MaxAbs(signal) == 0 {
		return Report{}, fmt.Errorf("signal is silent")
	}

	spectrum, binWidth, err := magnitudeSpectrum(signal, cfg.SampleRate)
	if err != nil {
		return Report{}, err
	}

	var r Report
	r.Warmth = analyzeWarmth(spectrum, binWidth)
	r.Smoothness, err = analyzeSmoothness(signal)
	if err != nil {
		return Report{}, err
	}
	r.Consonance = analyzeConsonance(spectrum, binWidth)
	r.Dynamics = analyzeDynamics(signal)
	r.Melody, err = analyzeMelody(signal, cfg.SampleRate)
	if err != nil {
		return Report{}, err
	}
	r.Fullness = analyzeFullness(spectrum, binWidth)
	return r, nil
}

// magnitudeSpectrum returns the positive-frequency magnitude spectrum of
// the zero-padded signal and the width of one bin in Hz.
func magnitudeSpectrum(signal []float64, sampleRate float64) ([]float64, float64, error) {
	fftSize := nextPow2(len(signal))

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, 0, fmt.Errorf("fft forward: %w", err)
	}

	mags := make([]float64, fftSize/2+1)
	for i := range mags {
		mags[i] = cmplxAbs(out[i])
	}
	return mags, sampleRate / float64(fftSize), nil
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// bandEnergy sums magnitudes over [low, high] Hz, both edges inclusive.
func bandEnergy(spectrum []float64, binWidth, low, high float64) float64 {
	sum := 0.0
	for i, m := range spectrum {
		f := float64(i) * binWidth
		if f >= low && f <= high {
			sum += m
		}
	}
	return sum
}

// analyzeWarmth measures each band's magnitude share of the six bands
// combined, so content outside 20 Hz - 12 kHz never skews the balance.
func analyzeWarmth(spectrum []float64, binWidth float64) Warmth {
	w := Warmth{
		SubBass:  bandEnergy(spectrum, binWidth, 20, 80),
		WarmBass: bandEnergy(spectrum, binWidth, 80, 250),
		WarmMid:  bandEnergy(spectrum, binWidth, 250, 500),
		Mid:      bandEnergy(spectrum, binWidth, 500, 2000),
		HighMid:  bandEnergy(spectrum, binWidth, 2000, 6000),
		High:     bandEnergy(spectrum, binWidth, 6000, 12000),
	}
	total := w.SubBass + w.WarmBass + w.WarmMid + w.Mid + w.HighMid + w.High
	if total == 0 {
		return Warmth{}
	}
	w.SubBass /= total
	w.WarmBass /= total
	w.WarmMid /= total
	w.Mid /= total
	w.HighMid /= total
	w.High /= total
	w.Passed = w.WarmBass > minWarmBassShare &&
		w.WarmMid > minWarmMidShare &&
		w.HighMid < maxHighMidShare &&
		w.High < maxHighShare &&
		w.WarmBass+w.WarmMid > minWarmSum
	return w
}

// analyticEnvelope returns the magnitude of the analytic signal: forward
// FFT, keep DC and Nyquist, double the positive bins, zero the negative
// half, inverse FFT.
func analyticEnvelope(signal []float64) ([]float64, error) {
	fftSize := nextPow2(len(signal))
	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fft plan: %w", err)
	}
	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, in); err != nil {
		return nil, fmt.Errorf("fft forward: %w", err)
	}

	half := fftSize / 2
	for i := 1; i < half; i++ {
		spec[i] *= 2
	}
	for i := half + 1; i < fftSize; i++ {
		spec[i] = 0
	}

	analytic := make([]complex128, fftSize)
	if err := plan.Inverse(analytic, spec); err != nil {
		return nil, fmt.Errorf("fft inverse: %w", err)
	}

	env := make([]float64, len(signal))
	for i := range env {
		env[i] = cmplxAbs(analytic[i])
	}
	return env, nil
}

// analyzeSmoothness differentiates the analytic amplitude envelope. A
// step is harsh when it exceeds four standard deviations of all steps,
// and the score relates step spread to mean step size, so jumps
// concentrated at a few gates or clicks drag it down even when they are
// too rare to move the harsh ratio.
func analyzeSmoothness(signal []float64) (Smoothness, error) {
	if len(signal) < 2 {
		return Smoothness{Score: 1, Passed: true}, nil
	}
	env, err := analyticEnvelope(signal)
	if err != nil {
		return Smoothness{}, err
	}

	diff := make([]float64, len(env)-1)
	mean := 0.0
	meanAbs := 0.0
	for i := range diff {
		d := env[i+1] - env[i]
		diff[i] = d
		mean += d
		meanAbs += math.Abs(d)
	}
	mean /= float64(len(diff))
	meanAbs /= float64(len(diff))

	variance := 0.0
	for _, d := range diff {
		variance += (d - mean) * (d - mean)
	}
	std := math.Sqrt(variance / float64(len(diff)))

	harsh := 0
	threshold := harshStdFactor * std
	for _, d := range diff {
		if math.Abs(d) > threshold {
			harsh++
		}
	}

	s := Smoothness{
		HarshRatio: float64(harsh) / float64(len(diff)),
		Score:      1 - std/(meanAbs+smoothScoreEps),
	}
	s.Passed = s.HarshRatio < maxHarshRatio && s.Score > minSmoothScore
	return s, nil
}

// analyzeConsonance picks the strongest spectral peaks between 50 Hz and
// 5 kHz and measures how many peak pairs sit near a consonant interval,
// counting doubled intervals too.
func analyzeConsonance(spectrum []float64, binWidth float64) Consonance {
	peaks := spectralPeaks(spectrum, binWidth, 50, 5000, 10)
	c := Consonance{PeakCount: len(peaks)}
	if len(peaks) < 2 {
		return c
	}

	pairs := 0
	consonant := 0
	for i := 0; i < len(peaks); i++ {
		for j := i + 1; j < len(peaks); j++ {
			lo, hi := peaks[i], peaks[j]
			if lo > hi {
				lo, hi = hi, lo
			}
			ratio := hi / lo
			pairs++
			if isConsonant(ratio) {
				consonant++
			}
		}
	}

	c.Ratio = float64(consonant) / float64(pairs)
	c.Passed = c.Ratio > minConsonance
	return c
}

func isConsonant(ratio float64) bool {
	for _, want := range consonantRatios {
		if math.Abs(ratio-want) < ratioTolerance || math.Abs(ratio-2*want) < ratioTolerance {
			return true
		}
	}
	return false
}

// spectralPeaks returns the frequencies of up to maxPeaks local maxima in
// [low, high] Hz, strongest first, keeping only peaks above twice the mean
// in-band magnitude. Candidates within 5 % of an already-selected peak are
// folded into it; leakage sidelobes must not count as separate partials.
func spectralPeaks(spectrum []float64, binWidth, low, high float64, maxPeaks int) []float64 {
	loBin := int(math.Ceil(low / binWidth))
	hiBin := int(high / binWidth)
	if hiBin >= len(spectrum) {
		hiBin = len(spectrum) - 1
	}
	if loBin < 1 {
		loBin = 1
	}
	if hiBin-loBin < 2 {
		return nil
	}

	mean := 0.0
	for i := loBin; i <= hiBin; i++ {
		mean += spectrum[i]
	}
	mean /= float64(hiBin - loBin + 1)
	floor := 2 * mean

	type peak struct {
		freq float64
		mag  float64
	}
	var found []peak
	for i := loBin + 1; i < hiBin; i++ {
		if spectrum[i] > floor && spectrum[i] > spectrum[i-1] && spectrum[i] >= spectrum[i+1] {
			found = append(found, peak{freq: float64(i) * binWidth, mag: spectrum[i]})
		}
	}

	// Selection sort by magnitude; peak counts are tiny.
	freqs := make([]float64, 0, maxPeaks)
	for len(found) > 0 && len(freqs) < maxPeaks {
		best := 0
		for i, p := range found {
			if p.mag > found[best].mag {
				best = i
			}
		}
		f := found[best].freq
		freqs = append(freqs, f)

		kept := found[:0]
		for _, p := range found {
			if math.Abs(p.freq-f) > 0.05*f {
				kept = append(kept, p)
			}
		}
		found = kept
	}
	return freqs
}

func analyzeDynamics(signal []float64) Dynamics {
	peak := vecmath.MaxAbs(signal)
	sum := 0.0
	for _, v := range signal {
		sum += v * v
	}
	rms := math.Sqrt(sum / float64(len(signal)))

	d := Dynamics{RMS: rms}
	if rms > 0 {
		d.CrestDB = 20 * math.Log10(peak/rms)
	}
	d.Passed = d.CrestDB > minCrestDB && d.CrestDB < maxCrestDB && d.RMS > minRMS
	return d
}

// analyzeMelody tracks the dominant 200-2000 Hz pitch over 0.25 s windows
// hopping at half a window and measures how much it moves.
func analyzeMelody(signal []float64, sampleRate float64) (Melody, error) {
	window := int(melodyWindowSec * sampleRate)
	if window < 2 {
		return Melody{}, fmt.Errorf("sample rate too low for melody analysis: %v", sampleRate)
	}
	hop := window / 2

	fftSize := nextPow2(window)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Melody{}, fmt.Errorf("fft plan: %w", err)
	}
	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)
	binWidth := sampleRate / float64(fftSize)

	var pitches []float64
	for start := 0; start+window <= len(signal); start += hop {
		for i := 0; i < fftSize; i++ {
			if i < window {
				in[i] = complex(signal[start+i], 0)
			} else {
				in[i] = 0
			}
		}
		if err := plan.Forward(out, in); err != nil {
			return Melody{}, fmt.Errorf("fft forward: %w", err)
		}

		loBin := int(math.Ceil(minPitchHz / binWidth))
		hiBin := int(maxPitchHz / binWidth)
		if hiBin > fftSize/2 {
			hiBin = fftSize / 2
		}
		best := loBin
		bestMag := 0.0
		for i := loBin; i <= hiBin; i++ {
			if m := cmplxAbs(out[i]); m > bestMag {
				bestMag = m
				best = i
			}
		}
		if bestMag > 0 {
			pitches = append(pitches, float64(best)*binWidth)
		}
	}

	m := Melody{Windows: len(pitches)}
	if len(pitches) < 2 {
		return m, nil
	}

	for i := 1; i < len(pitches); i++ {
		if math.Abs(pitches[i]-pitches[i-1]) > pitchChangeHz {
			m.Changes++
		}
	}

	mean := 0.0
	for _, p := range pitches {
		mean += p
	}
	mean /= float64(len(pitches))
	variance := 0.0
	for _, p := range pitches {
		variance += (p - mean) * (p - mean)
	}
	m.StdDevHz = math.Sqrt(variance / float64(len(pitches)))

	m.Passed = m.Changes > minPitchChanges && m.StdDevHz > minPitchStdHz
	return m, nil
}

// analyzeFullness splits 50 Hz - 2 kHz into 50 Hz bands and counts bands
// whose magnitude sum clears half the mean bin magnitude of the whole
// spectrum.
func analyzeFullness(spectrum []float64, binWidth float64) Fullness {
	mean := 0.0
	for _, m := range spectrum {
		mean += m
	}
	mean /= float64(len(spectrum))
	floor := mean * bandActiveFactor

	total := int(fullnessCeilHz/fullnessBandHz) - 1
	active := 0
	for b := 1; b <= total; b++ {
		low := float64(b) * fullnessBandHz
		if bandEnergy(spectrum, binWidth, low, low+fullnessBandHz) > floor {
			active++
		}
	}

	f := Fullness{ActiveBands: active, TotalBands: total}
	f.Passed = float64(active)/float64(total) > minActiveShare && active > minActiveBands
	return f
}
