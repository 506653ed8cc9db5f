package quality

// Warmth is the spectral balance section: each perceptual band's share
// of the six bands' combined magnitude, with the warm-register
// thresholds applied.
type Warmth struct {
	SubBass  float64 // 20-80 Hz
	WarmBass float64 // 80-250 Hz
	WarmMid  float64 // 250-500 Hz
	Mid      float64 // 500-2000 Hz
	HighMid  float64 // 2000-6000 Hz
	High     float64 // 6000-12000 Hz
	Passed   bool
}

// Smoothness reports harsh jumps in the analytic amplitude envelope:
// the share of envelope steps beyond four standard deviations, and a
// regularity score of the step distribution (1 is perfectly gentle).
type Smoothness struct {
	HarshRatio float64
	Score      float64
	Passed     bool
}

// Consonance reports the share of prominent spectral peak pairs whose
// frequency ratio lands near a consonant interval.
type Consonance struct {
	PeakCount int
	Ratio     float64
	Passed    bool
}

// Dynamics reports crest factor and RMS level.
type Dynamics struct {
	CrestDB float64
	RMS     float64
	Passed  bool
}

// Melody reports movement of the dominant 200-2000 Hz pitch across
// short analysis windows.
type Melody struct {
	Windows  int
	Changes  int
	StdDevHz float64
	Passed   bool
}

// Fullness reports how many 50 Hz bands below 2 kHz carry energy.
type Fullness struct {
	ActiveBands int
	TotalBands  int
	Passed      bool
}

// Report is the full quality gate result.
type Report struct {
	Warmth     Warmth
	Smoothness Smoothness
	Consonance Consonance
	Dynamics   Dynamics
	Melody     Melody
	Fullness   Fullness
}

// Pass reports whether every section passed.
func (r Report) Pass() bool {
	return r.Warmth.Passed &&
		r.Smoothness.Passed &&
		r.Consonance.Passed &&
		r.Dynamics.Passed &&
		r.Melody.Passed &&
		r.Fullness.Passed
}
