package svf

import "github.com/cwbudde/algo-fxdsp/dsp/fixed"

// State holds the two integrator registers of one filter instance. Each
// independent signal path (voice, channel, cascade stage) owns exactly one
// State; it persists across blocks and is mutated only by the block
// kernels. The zero value is silence.
type State struct {
	s0, s1 fixed.Q15
}

// Reset clears the integrators to silence.
func (s *State) Reset() {
	s.s0, s.s1 = 0, 0
}

// The kernels below share one update structure per sample x:
//
//	v1  = a1*s0 - a2*s1 + a2*x
//	s0' = 2*v1 - s0
//	v2  = s1 + g*v1
//	s1' = 2*v2 - s1
//
// v1 is rounded to Q0.15 before it feeds the g multiply; the state updates
// use the full accumulator so no precision is lost in the feedback path.
// The v2 path runs at Q3.28 accumulator scale to give g its integer
// headroom. Every stored value is rounded to nearest and saturated.

// ProcessLowpassBlock filters buf in place with the low-pass output tap
// (y = v2).
func (c *Coefficients) ProcessLowpassBlock(s *State, buf []fixed.Q15) {
	a1, a2, g := int64(c.A1), int64(c.A2), int64(c.G)
	s0, s1 := int64(s.s0), int64(s.s1)

	for i, x := range buf {
		acc := (a1*s0 - a2*s1 + a2*int64(x)) << 1 // Q31
		v1 := fixed.SatRoundAcc(acc)
		s0n := fixed.SatRoundAcc((acc - s0<<15) << 1)

		acc2 := (int64(v1)*g)<<1 + s1<<13 // Q3.28
		buf[i] = fixed.SatRoundAcc(acc2 << 3)
		s1n := fixed.SatRoundAcc((acc2 - s1<<12) << 4)

		s0, s1 = int64(s0n), int64(s1n)
	}

	s.s0, s.s1 = fixed.Q15(s0), fixed.Q15(s1)
}

// ProcessBandpassBlock filters buf in place with the band-pass output tap
// (y = v1).
func (c *Coefficients) ProcessBandpassBlock(s *State, buf []fixed.Q15) {
	a1, a2, g := int64(c.A1), int64(c.A2), int64(c.G)
	s0, s1 := int64(s.s0), int64(s.s1)

	for i, x := range buf {
		acc := (a1*s0 - a2*s1 + a2*int64(x)) << 1 // Q31
		v1 := fixed.SatRoundAcc(acc)
		buf[i] = v1
		s0n := fixed.SatRoundAcc((acc - s0<<15) << 1)

		acc2 := (int64(v1)*g)<<1 + s1<<13 // Q3.28
		s1n := fixed.SatRoundAcc((acc2 - s1<<12) << 4)

		s0, s1 = int64(s0n), int64(s1n)
	}

	s.s0, s.s1 = fixed.Q15(s0), fixed.Q15(s1)
}

// ProcessHighpassBlock filters buf in place with the high-pass output tap
// (y = x - k*v1 - v2). The output sum runs in the Q3.12 domain, so the
// tap survives the transient overshoot a high-pass step response produces.
func (c *Coefficients) ProcessHighpassBlock(s *State, buf []fixed.Q15) {
	a1, a2, g, k := int64(c.A1), int64(c.A2), int64(c.G), int64(c.K)
	s0, s1 := int64(s.s0), int64(s.s1)

	for i, x := range buf {
		xi := int64(x)
		acc := (a1*s0 - a2*s1 + a2*xi) << 1 // Q31
		v1 := fixed.SatRoundAcc(acc)
		s0n := fixed.SatRoundAcc((acc - s0<<15) << 1)

		acc2 := (int64(v1)*g)<<1 + s1<<13 // Q3.28
		v2 := fixed.SatRoundAcc(acc2)     // Q3.12
		s1n := fixed.SatRoundAcc((acc2 - s1<<12) << 4)

		accY := xi<<13 - int64(v2)<<16 - (int64(v1)*k)<<1 // Q3.28
		buf[i] = fixed.SatRoundAcc(accY << 3)

		s0, s1 = int64(s0n), int64(s1n)
	}

	s.s0, s.s1 = fixed.Q15(s0), fixed.Q15(s1)
}
