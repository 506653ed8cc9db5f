// Package envelope provides time-varying gain curves applied in place to
// sample buffers: ADSR, attack/release, percussive and decay shapes for
// scheduled events, swells for slow layer breathing, and the squared
// fades used by the master chain.
//
// All shapes multiply gains into an existing buffer; none allocates the
// signal itself. Phase durations truncate to sample counts and clamp to
// the buffer, so overrunning phases degrade silently instead of failing.
package envelope
