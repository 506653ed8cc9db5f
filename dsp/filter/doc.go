// Package filter provides Butterworth filter design and zero-phase
// (forward-backward) application for offline rendering.
//
// Orders are capped at 6: the renderer aims for warmth, and gentle
// roll-offs avoid the ringing that steep cutoffs introduce.
package filter
