package lut

import "github.com/cwbudde/algo-fxdsp/dsp/fixed"

// Table257 is an immutable interpolation table covering the full unsigned
// 16-bit control domain with 256 segments. Entry i sits at index i<<8; the
// extra 257th entry closes the last segment.
type Table257 [257]int16

// Interp looks up index in the table with linear interpolation between the
// two bounding entries. At a segment boundary (low byte zero) the table
// entry is returned exactly. The interpolation term truncates toward
// negative infinity.
func (t *Table257) Interp(index uint16) int16 {
	slot := index >> 8
	frac := int32(index & 0xFF)
	a := int32(t[slot])
	b := int32(t[slot+1])
	return int16(a + ((b-a)*frac)>>8)
}

// SVFG returns the state-variable filter coefficient g = tan(pi*f/fs) for
// a pitch index on the note scale, as a Q3.12 value. The table clamps at
// g ~ 1.83 so derived filters stay stable across the whole domain.
func SVFG(index uint16) fixed.Q15 {
	return fixed.Q15(noteToSVFG.Interp(index))
}

// OnePoleAlpha returns the one-pole decay coefficient
// alpha = exp(-2*pi*f0) for a pitch index on the note scale, as Q0.15.
// The table clamps at both ends of the musical range, keeping alpha
// strictly inside (0, 1).
func OnePoleAlpha(index uint16) fixed.Q15 {
	return fixed.Q15(noteToOnePoleAlpha.Interp(index))
}

// RateToFreq converts a normalized LFO rate control to a per-sample phase
// increment in Q0.15 along an exponential sweep of the usable LFO range.
func RateToFreq(rate fixed.Q16) fixed.Q15 {
	return fixed.Q15(lfoRateToFreq.Interp(uint16(rate)))
}
