// Package biquad implements second-order IIR filter sections and cascades
// using the Direct Form II Transposed structure.
//
// A Section processes one biquad; a Chain cascades several sections for
// higher-order filters. Coefficients are normalized so a0 = 1.
package biquad
