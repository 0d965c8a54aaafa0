// Package fixed defines the fixed-point number formats and arithmetic
// contract shared by every filter in this module.
//
// All audio samples and most coefficients are [Q15] (signed Q0.15
// fractions); control parameters are [Q16] (unsigned Q0.16); phase
// increments and other wide values are [Q32]. A handful of filter
// coefficients carry three integer bits of headroom and are documented as
// Q3.12 at their declaration; they share the Q15 storage type.
//
// Intermediate products are accumulated on int64 at an explicit power-of-two
// scale chosen per formula; stored results go through [SatRoundAcc], which
// models a hardware accumulator store: round to nearest, saturate to 16
// bits. Narrowing shifts truncate (arithmetic shift, rounding toward
// negative infinity), an acceptable bias for audio use.
//
// There are no error returns anywhere in this package: every operation is
// total over its representable inputs.
package fixed
