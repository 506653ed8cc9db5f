// Package mix combines rendered layer buffers into the finished track.
//
// A mix plan assigns each layer a weight and an optional zero-phase
// pre-filter; Master then runs the weighted sum through spectral shaping,
// cascaded compression, tanh saturation, edge fades and, last of all,
// peak normalization. Mixing works purely on in-memory buffers.
package mix
