package tone

import (
	"github.com/cwbudde/algo-fxdsp/dsp/fixed"
	"github.com/cwbudde/algo-fxdsp/dsp/filter/svf"
)

// Params holds the two band gains. Zero gain on a band makes that band a
// steady-state pass-through.
type Params struct {
	Bass   fixed.Q15
	Treble fixed.Q15
}

// State holds the four shelf filter states: two bands times two stereo
// channels. The zero value is silence.
type State struct {
	bassLeft    svf.State
	bassRight   svf.State
	trebleLeft  svf.State
	trebleRight svf.State
}

// Reset clears all four band states.
func (s *State) Reset() {
	s.bassLeft.Reset()
	s.bassRight.Reset()
	s.trebleLeft.Reset()
	s.trebleRight.Reset()
}

// Process filters one stereo block in place: the treble shelf runs first
// over both channels, then the bass shelf. Coefficients are derived once
// per band and shared by both channels.
func Process(p Params, s *State, left, right []fixed.Q15) {
	treble := svf.DeriveTrebleShelf(p.Treble)
	treble.ProcessBlock(&s.trebleLeft, left)
	treble.ProcessBlock(&s.trebleRight, right)

	bass := svf.DeriveBassShelf(p.Bass)
	bass.ProcessBlock(&s.bassLeft, left)
	bass.ProcessBlock(&s.bassRight, right)
}
