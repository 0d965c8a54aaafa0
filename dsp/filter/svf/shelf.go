package svf

import "github.com/cwbudde/algo-fxdsp/dsp/fixed"

// ShelfCoefficients holds the six-coefficient shelving variant of the SVF.
// A1, A2 and C2 (= g*a2) define the filter core; M0..M2 are the
// gain-dependent mix weights of the output sum
//
//	y = m0*x + m1*v1 + m2*v2
//
// and are stored at half scale, with the kernel doubling the output. The
// shelf corners are fixed design constants; only the gain is parameterized.
type ShelfCoefficients struct {
	A1, A2, C2 fixed.Q15
	M0, M1, M2 fixed.Q15 // halved mix weights
}

// DeriveBassShelf computes the low-shelf coefficient set for a bass gain
// control in Q0.15. Zero gain is an exact pass-through (a property the
// tone control depends on); positive gain boosts, negative gain cuts, up
// to about +/-6 dB at full scale.
func DeriveBassShelf(bass fixed.Q15) ShelfCoefficients {
	gain := fixed.MulQ15(bass, 13573) // sqrt(2)-1 full scale
	return ShelfCoefficients{
		A1: 30977, A2: 883, C2: 25,
		M0: 16384,
		M1: gain,
		M2: fixed.MulQ15(gain, gain)>>1 + gain,
	}
}

// DeriveTrebleShelf computes the high-shelf coefficient set for a treble
// gain control in Q0.15. Zero gain is an exact pass-through.
func DeriveTrebleShelf(treble fixed.Q15) ShelfCoefficients {
	gain := fixed.MulQ15(treble, 9598) + 23170 // A/sqrt(2), neutral at 1/sqrt(2)
	gg := fixed.MulQ15(gain, gain)
	return ShelfCoefficients{
		A1: 25062, A2: 3595, C2: 516,
		M0: gg,
		M1: (fixed.MulQ15(23170, gain) - gg) << 1,
		M2: 16384 - gg,
	}
}

// ProcessBlock filters buf in place with the shelf output sum. Unlike the
// low/band/high kernels, v2 is computed entirely in Q0.15 via
// v2 = c2*x + s1 - c2*s1 + a2*s0; the shelf corners sit low enough that g
// needs no integer headroom.
func (c *ShelfCoefficients) ProcessBlock(s *State, buf []fixed.Q15) {
	a1, a2, c2 := int64(c.A1), int64(c.A2), int64(c.C2)
	m0, m1, m2 := int64(c.M0), int64(c.M1), int64(c.M2)
	s0, s1 := int64(s.s0), int64(s.s1)

	for i, x := range buf {
		xi := int64(x)
		acc := (a1*s0 - a2*s1 + a2*xi) << 1 // Q31
		v1 := fixed.SatRoundAcc(acc)
		s0n := fixed.SatRoundAcc((acc - s0<<15) << 1)

		accB := (c2*xi)<<1 + s1<<16 - (c2*s1)<<1 + (a2*s0)<<1 // Q31
		v2 := fixed.SatRoundAcc(accB)
		s1n := fixed.SatRoundAcc((accB - s1<<15) << 1)

		accY := (int64(v1)*m1 + int64(v2)*m2 + xi*m0) << 1 // Q31, halved weights
		buf[i] = fixed.SatRoundAcc(accY << 1)

		s0, s1 = int64(s0n), int64(s1n)
	}

	s.s0, s.s1 = fixed.Q15(s0), fixed.Q15(s1)
}
