package compose

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ambient/dsp/interp"
)

// Clip is a sampled sound, already mono and at the working sample rate.
// A non-zero Semitones pitch-shifts the material by linear-interpolation
// resampling (factor 2^(semitones/12)); the render is then truncated or
// zero-padded to the requested length.
type Clip struct {
	Data      []float64
	Semitones float64
}

// Render satisfies Sound.
func (c *Clip) Render(samples int, sampleRate float64) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("clip sample count must be > 0: %d", samples)
	}
	if len(c.Data) == 0 {
		return nil, fmt.Errorf("clip has no sample data")
	}

	data := c.Data
	if c.Semitones != 0 {
		data = interp.ResampleLinear(data, math.Pow(2, c.Semitones/12))
	}

	out := make([]float64, samples)
	copy(out, data)
	return out, nil
}

// SampleSet stores instrument clips by note name and resolves requests,
// pitch-shifting the nearest stored neighbor when the exact note is
// missing.
type SampleSet struct {
	notes map[string][]float64
	nums  map[string]int
}

// NewSampleSet returns an empty sample store.
func NewSampleSet() *SampleSet {
	return &SampleSet{
		notes: make(map[string][]float64),
		nums:  make(map[string]int),
	}
}

// Add stores a clip under a note name. The data is kept by reference;
// callers hand over ownership.
func (s *SampleSet) Add(note string, data []float64) error {
	n, err := noteNumber(note)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("sample %q has no data", note)
	}
	s.notes[note] = data
	s.nums[note] = n
	return nil
}

// Len returns the number of stored clips.
func (s *SampleSet) Len() int {
	return len(s.notes)
}

// Clip resolves a note to a playable clip. An exact hit plays as stored;
// otherwise the nearest stored note is pitch-shifted to the target.
func (s *SampleSet) Clip(note string) (*Clip, error) {
	target, err := noteNumber(note)
	if err != nil {
		return nil, err
	}
	if len(s.notes) == 0 {
		return nil, fmt.Errorf("sample set is empty")
	}

	if data, ok := s.notes[note]; ok {
		return &Clip{Data: data}, nil
	}

	bestName := ""
	bestDist := math.MaxInt32
	for name, num := range s.nums {
		dist := num - target
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist || (dist == bestDist && name < bestName) {
			bestDist = dist
			bestName = name
		}
	}

	return &Clip{
		Data:      s.notes[bestName],
		Semitones: float64(target - s.nums[bestName]),
	}, nil
}
