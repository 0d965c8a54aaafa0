package cascade

import (
	"github.com/cwbudde/algo-fxdsp/dsp/fixed"
	"github.com/cwbudde/algo-fxdsp/dsp/filter/svf"
)

// Stages is the number of two-pole sections.
const Stages = 2

// The Butterworth damping pair for a four-pole response, expressed as
// the Q0.16 resonance values the coefficient derivation expects.
const (
	resonanceStage0 fixed.Q16 = 4989
	resonanceStage1 fixed.Q16 = 40456
)

// Coefficients holds the derived coefficients of both stages.
type Coefficients [Stages]svf.Coefficients

// State holds both stage states. The zero value is silence.
type State struct {
	stages [Stages]svf.State
}

// Reset clears both stage states.
func (s *State) Reset() {
	for i := range s.stages {
		s.stages[i].Reset()
	}
}

// Derive computes both stage coefficients for a corner note on the
// half-cent scale.
func Derive(note int16) Coefficients {
	return Coefficients{
		svf.Derive(note, resonanceStage0),
		svf.Derive(note, resonanceStage1),
	}
}

// ProcessBlock filters buf in place through both high-pass stages.
func (c *Coefficients) ProcessBlock(s *State, buf []fixed.Q15) {
	c[0].ProcessHighpassBlock(&s.stages[0], buf)
	c[1].ProcessHighpassBlock(&s.stages[1], buf)
}
