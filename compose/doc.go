// Package compose schedules sounds onto fixed-length layer buffers.
//
// A Layer owns a literal schedule of Events; rendering accumulates each
// event additively at its start offset, so overlapping notes form chords
// instead of replacing each other. The package also carries the literal
// scores (warm, chamber, sampled) as data, note-name lookup, and sampled
// clips resolved from the nearest stored note and pitch-shifted by
// linear-interpolation resampling.
package compose
