// Package quality measures a finished track against the ambient quality
// gate: spectral warmth, envelope smoothness, peak consonance, dynamics,
// melodic movement and spectral fullness, each with its own pass flag.
package quality
