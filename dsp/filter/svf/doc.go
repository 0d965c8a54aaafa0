// Package svf implements the two-pole state-variable filter that underlies
// every resonant filter and shelving EQ band in this module.
//
// The topology is the trapezoidal-integration (zero-delay-feedback) SVF
// described in Simper, "Solving the continuous SVF equations using
// trapezoidal integration" (cytomic.com/files/dsp/SvfLinearTrapOptimised2.pdf),
// reduced to fixed point: coefficients are derived once per control update
// by [Derive] (or the shelf designers) and the block kernels then run a
// fixed sequence of fractional multiply-accumulate steps per sample over
// two Q0.15 integrator states.
//
// Coefficient derivation and block processing are deliberately separate:
// the caller owns both the [Coefficients] and the [State] and sequences
// control-rate derivation strictly before the audio-rate block call.
// Stability requires g > 0 and 0 <= k < 2, which the lookup tables
// guarantee by construction; the kernels never check.
package svf
