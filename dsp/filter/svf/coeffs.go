package svf

import (
	"github.com/cwbudde/algo-fxdsp/dsp/fixed"
	"github.com/cwbudde/algo-fxdsp/dsp/lut"
)

// Coefficients holds one derived SVF parameter set. A1 and A2 are Q0.15;
// G and K carry three integer bits of headroom (Q3.12). A set is immutable
// for the duration of a processing block and may be shared by any number
// of filter instances (states).
type Coefficients struct {
	A1, A2 fixed.Q15 // Q0.15
	G, K   fixed.Q15 // Q3.12
}

// Derive computes the SVF coefficient set for a corner frequency given as
// a note (half-cent pitch scale, non-negative) and a resonance control in
// (0, 1). Resonance near one is maximum resonance (k near zero), resonance
// near zero is maximum damping (k near two).
func Derive(note int16, resonance fixed.Q16) Coefficients {
	g := lut.SVFG(uint16(note) << 1)

	// k = 2*(1 - resonance): complement approximates 1-x, the shift folds
	// the Q0.16 -> Q3.12 narrowing and the doubling into one step.
	k := fixed.Q15(fixed.OneMinus(resonance) >> 3)

	// denom = (g + k)*g + 1 in Q3.12, product rounded on the accumulator.
	gk := int64(k) + int64(g)
	acc := (gk * int64(g)) << 4 // Q6.24 -> accumulator scale 2^28
	denom := int32(fixed.SatRoundAcc(acc)) + 4096
	if denom > int32(fixed.MaxQ15) {
		denom = int32(fixed.MaxQ15)
	}

	return Coefficients{
		A1: fixed.Div(4095, int16(denom)),
		A2: fixed.Div(int16(g), int16(denom)),
		G:  g,
		K:  k,
	}
}
