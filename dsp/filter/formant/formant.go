package formant

import (
	"github.com/cwbudde/algo-fxdsp/dsp/fixed"
	"github.com/cwbudde/algo-fxdsp/dsp/filter/svf"
)

// Filter bank dimensions.
const (
	Stages = 4
	Vowels = 5
)

// Coefficients holds the derived SVF coefficients of all four stages.
type Coefficients [Stages]svf.Coefficients

// State holds the four stage states. The zero value is silence.
type State struct {
	stages [Stages]svf.State
}

// Reset clears all stage states.
func (s *State) Reset() {
	for i := range s.stages {
		s.stages[i].Reset()
	}
}

// Derive computes the per-stage coefficients for a played note and a
// vowel shape. The shape's top two bits select the preset segment, the
// remaining bits blend linearly between the segment's endpoint vowels.
// Stage corners wrap on the half-cent note scale by construction.
func Derive(note int16, shape fixed.Q16) Coefficients {
	vowel := uint16(shape) >> 14
	frac := fixed.Q16ToQ15(shape << 2)

	var c Coefficients
	for stage := 0; stage < Stages; stage++ {
		freq := fixed.Lerp(
			fixed.Q15(freqPresets[vowel][stage]),
			fixed.Q15(freqPresets[vowel+1][stage]),
			frac)
		res := fixed.Lerp(
			resonancePresets[vowel][stage],
			resonancePresets[vowel+1][stage],
			frac)
		c[stage] = svf.Derive(note+int16(freq), fixed.Q15ToQ16(res))
	}
	return c
}

// ProcessBlock filters buf in place through all four low-pass stages in
// series.
func (c *Coefficients) ProcessBlock(s *State, buf []fixed.Q15) {
	for stage := 0; stage < Stages; stage++ {
		c[stage].ProcessLowpassBlock(&s.stages[stage], buf)
	}
}
