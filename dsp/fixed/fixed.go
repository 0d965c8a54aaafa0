package fixed

import "math/bits"

// Q15 is a signed Q0.15 fraction in [-1, 1). It is the sample format of
// every audio buffer and the storage format of most filter coefficients.
type Q15 int16

// Q16 is an unsigned Q0.16 fraction in [0, 1), used for control-rate
// parameters (resonance, shape, rate).
type Q16 uint16

// Q32 is an unsigned Q0.32 fraction in [0, 1), used for normalized
// frequencies and phase increments.
type Q32 uint32

// Q15 limits.
const (
	MaxQ15 Q15 = 32767
	MinQ15 Q15 = -32768
)

// BlockLen is the fixed audio block length shared by the whole library.
// Block-processing calls expect buffers of exactly this many samples.
const BlockLen = 32

// SatQ15 clamps a 32-bit value to the representable Q0.15 range.
func SatQ15(v int32) Q15 {
	if v > int32(MaxQ15) {
		return MaxQ15
	}
	if v < int32(MinQ15) {
		return MinQ15
	}
	return Q15(v)
}

// MulQ15 multiplies two Q0.15 fractions, rounding the Q0.30 product to
// nearest and saturating. This models the hardware fractional multiply
// followed by a rounded accumulator store.
func MulQ15(a, b Q15) Q15 {
	return SatQ15(int32((int64(a)*int64(b) + 1<<14) >> 15))
}

// AddSatQ15 adds two Q0.15 fractions with saturation.
func AddSatQ15(a, b Q15) Q15 {
	return SatQ15(int32(a) + int32(b))
}

// OneMinus approximates 1-x for an unsigned Q0.16 fraction by bitwise
// complement. The result is low by exactly one part in 65536; the
// coefficient formulas tolerate this bias and depend on it staying put.
func OneMinus(x Q16) Q16 {
	return ^x
}

// Q16ToQ15 converts an unsigned Q0.16 fraction to signed Q0.15, halving
// the resolution.
func Q16ToQ15(x Q16) Q15 {
	return Q15(x >> 1)
}

// Q15ToQ16 converts a non-negative Q0.15 fraction to unsigned Q0.16.
// Negative inputs wrap; callers pass values in [0, 1).
func Q15ToQ16(x Q15) Q16 {
	return Q16(uint16(x) << 1)
}

// Div computes the fractional quotient num/den as Q0.15, truncating toward
// zero. It models a hardware fractional divide: defined for den > 0 and
// |num| < den, a documented caller precondition that every coefficient
// formula in this module satisfies by construction.
func Div(num, den int16) Q15 {
	return Q15((int32(num) << 15) / int32(den))
}

// Lerp crossfades between y1 and y2 by the Q0.15 weight x:
// y1 + x*(y2 - y1), accumulated wide and rounded once on the way out.
func Lerp(y1, y2, x Q15) Q15 {
	acc := int64(y1)<<16 - (int64(y1)*int64(x))<<1 + (int64(y2)*int64(x))<<1
	return SatRoundAcc(acc)
}

// SatRoundAcc stores the high word of a wide accumulator: acc is a value
// scaled by 2^16 relative to the result; the result is rounded to nearest
// and saturated to 16 bits.
func SatRoundAcc(acc int64) Q15 {
	v := (acc + 1<<15) >> 16
	if v > int64(MaxQ15) {
		return MaxQ15
	}
	if v < int64(MinQ15) {
		return MinQ15
	}
	return Q15(v)
}

// NormShift returns the number of redundant sign-extension bits in a 16-bit
// value: the largest left shift that keeps the value representable. It is
// 15 for 0 and -1 (the hardware bit-scan convention, which also caps the
// block-floating-point shift at 15).
func NormShift(h int16) int {
	u := uint16(h)
	if h < 0 {
		u = ^u
	}
	if u == 0 {
		return 15
	}
	return bits.LeadingZeros16(u) - 1
}

// Normalize renormalizes a wide accumulator into block-floating-point form:
// a Q0.15 mantissa occupying maximum precision and a scaling exponent
// (always <= 0) such that the true value is mantissa * 2^scaling.
//
// The shift count is measured on the accumulator's 16-bit high word only
// and capped at 15 bits per call, matching the hardware normalizer. The
// low accumulator bits shifted up by the normalization are what preserve
// relative precision for values far below one LSB of Q0.15.
func Normalize(acc int64) (Q15, int8) {
	h := acc >> 16
	if h > int64(MaxQ15) || h < int64(MinQ15) {
		// Magnitude at or above one: nothing to normalize.
		return SatRoundAcc(acc), 0
	}
	n := NormShift(int16(h))
	return SatRoundAcc(acc << uint(n)), int8(-n)
}
