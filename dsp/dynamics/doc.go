// Package dynamics provides the static dynamic-range tools of the master
// chain: cascaded per-sample compression stages and a tanh saturator.
//
// Everything here is memoryless. Offline rendering does not need attack
// or release ballistics, and static transfers keep renders deterministic.
package dynamics
