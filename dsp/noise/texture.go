package noise

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-ambient/dsp/envelope"
	"github.com/cwbudde/algo-ambient/dsp/filter"
)

// Texture is a seeded, band-limited noise source. The raw signal is
// Gaussian white noise from an explicitly seeded generator, shaped by one
// or more zero-phase filters and optionally modulated by a slow swell.
// Identical seeds produce byte-identical renders.
type Texture struct {
	Seed    int64
	Filters []filter.Spec
	Mod     *envelope.Swell
}

// Wind is the low whooshing bed: lowpass 800 Hz then highpass 100 Hz,
// breathing at 0.15 Hz.
func Wind(seed int64) Texture {
	return Texture{
		Seed: seed,
		Filters: []filter.Spec{
			filter.LP(800, 4),
			filter.HP(100, 2),
		},
		Mod: &envelope.Swell{Base: 0.3, Depth: 0.2, RateHz: 0.15},
	}
}

// Rustle is the crinkly burst texture: highpass 2 kHz.
func Rustle(seed int64) Texture {
	return Texture{
		Seed:    seed,
		Filters: []filter.Spec{filter.HP(2000, 3)},
	}
}

// Crackle is the short fire-crackle texture: bandpass 500-3000 Hz.
func Crackle(seed int64) Texture {
	return Texture{
		Seed:    seed,
		Filters: []filter.Spec{filter.BP(500, 3000, 3)},
	}
}

// Render produces the filtered texture over the given number of samples.
// Textures are band-limited by definition; an empty filter list is a
// configuration error, not silence-by-accident.
func (tx Texture) Render(samples int, sampleRate float64) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise sample count must be > 0: %d", samples)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("noise sample rate must be > 0: %v", sampleRate)
	}
	if len(tx.Filters) == 0 {
		return nil, fmt.Errorf("noise texture needs at least one filter spec")
	}
	for _, spec := range tx.Filters {
		if err := spec.Validate(sampleRate); err != nil {
			return nil, err
		}
	}

	rng := rand.New(rand.NewSource(tx.Seed))
	out := make([]float64, samples)
	for i := range out {
		out[i] = rng.NormFloat64()
	}

	for _, spec := range tx.Filters {
		if err := filter.ZeroPhase(out, spec, sampleRate); err != nil {
			return nil, err
		}
	}

	if tx.Mod != nil {
		tx.Mod.Apply(out, sampleRate)
	}

	return out, nil
}
