// Package render orchestrates the full pipeline: score to layers, layers
// to mix, mix to finished track. All configuration is validated before the
// first sample renders; layer rendering fans out across goroutines and
// joins at the mixer. Presets cover the shipped scores (warm, chamber,
// sampled) and the blend variant for external instrument takes.
package render
