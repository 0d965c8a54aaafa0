// Package onepole implements a one-pole IIR filter whose state is stored in
// block-floating-point form: a Q0.15 mantissa plus a scaling exponent. The
// extra exponent keeps the recursion accurate when the state decays far
// below one LSB of Q0.15, which a plain 16-bit state cannot represent; a
// low-pass tail therefore drains smoothly instead of freezing at the
// quantization floor.
//
// The coefficient is a single pole position alpha = exp(-2*pi*f0), derived
// from a pitch-indexed lookup table by [DeriveAlpha]. [DeriveVario] unpacks
// a single Q0.16 shape control into a filter selection: the top bit picks
// low-pass or high-pass, the remaining bits set the cutoff. The mode is
// resolved once at derivation time and dispatched by a switch in the block
// call, so the per-sample loops stay branch-free.
package onepole
