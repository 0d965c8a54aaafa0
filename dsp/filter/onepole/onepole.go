package onepole

import (
	"github.com/cwbudde/algo-fxdsp/dsp/fixed"
	"github.com/cwbudde/algo-fxdsp/dsp/lut"
)

// Mode selects the filter response. It is fixed at coefficient time;
// the kernels dispatch on it once per block, never per sample.
type Mode uint8

// Filter responses.
const (
	Lowpass Mode = iota
	Highpass
)

// Filter bundles the derived pole coefficient with the response mode.
// Like svf.Coefficients it is a value type: derive once per control
// update, share freely across channels.
type Filter struct {
	Alpha fixed.Q15
	Mode  Mode
}

// DeriveAlpha computes the pole coefficient alpha = exp(-2*pi*f0) for a
// cutoff note on the half-cent MIDI scale.
func DeriveAlpha(note uint16) fixed.Q15 {
	return lut.OnePoleAlpha(note)
}

// DeriveVario unpacks a Q0.16 shape control into a complete filter: the
// top bit selects high-pass, the low 15 bits set the cutoff note. Shape 0
// is the darkest low-pass, 0xFFFF the brightest high-pass.
func DeriveVario(shape fixed.Q16) Filter {
	return Filter{
		Alpha: DeriveAlpha(uint16(shape) << 1),
		Mode:  Mode(shape >> 15),
	}
}

// State is the block-floating-point filter state: the true value is
// value * 2^scaling with scaling <= 0. One State per signal path; the
// zero value is silence.
type State struct {
	value   fixed.Q15
	scaling int8
}

// Reset clears the state to silence.
func (s *State) Reset() {
	s.value, s.scaling = 0, 0
}

// Level returns the state decoded back to plain Q0.15, rounded to
// nearest. Sub-LSB values decode to zero or one LSB; the full precision
// stays in the mantissa/exponent pair.
func (s *State) Level() fixed.Q15 {
	return fixed.SatRoundAcc((int64(s.value) << 16) >> uint(-s.scaling))
}

// ProcessSample filters a single sample.
func (f Filter) ProcessSample(s *State, x fixed.Q15) fixed.Q15 {
	var buf [1]fixed.Q15
	buf[0] = x
	f.ProcessBlock(s, buf[:])
	return buf[0]
}

// ProcessBlock filters buf in place.
func (f Filter) ProcessBlock(s *State, buf []fixed.Q15) {
	switch f.Mode {
	case Highpass:
		highpassBlock(int64(f.Alpha), s, buf)
	default:
		lowpassBlock(int64(f.Alpha), s, buf)
	}
}

// ProcessStereoBlock filters a stereo pair with one coefficient and two
// independent states.
func (f Filter) ProcessStereoBlock(left, right *State, bufL, bufR []fixed.Q15) {
	f.ProcessBlock(left, bufL)
	f.ProcessBlock(right, bufR)
}

// The kernels run the recursion on the wide accumulator: the stored state
// is de-normalized by its exponent, updated, then renormalized so the
// mantissa always carries maximum precision. Renormalization measures the
// accumulator high word only and shifts at most 15 bits per sample, the
// same cap fixed.Normalize applies.

// lowpassBlock computes s' = a*s + (1-a)*x, y = s', in place.
func lowpassBlock(alpha int64, s *State, buf []fixed.Q15) {
	v, sc := int64(s.value), s.scaling

	for i, x := range buf {
		acc := ((v * alpha) << 1) >> uint(-sc) // de-normalized a*s
		acc += int64(x)<<16 - (int64(x)*alpha)<<1
		buf[i] = fixed.SatRoundAcc(acc)
		m, nsc := fixed.Normalize(acc)
		v, sc = int64(m), nsc
	}

	s.value, s.scaling = fixed.Q15(v), sc
}

// highpassBlock computes y = a*(x - s), s' = x - y, in place. The state
// update uses the full accumulator value of y, not its rounded store.
func highpassBlock(alpha int64, s *State, buf []fixed.Q15) {
	v, sc := int64(s.value), s.scaling

	for i, x := range buf {
		acc := ((-(v * alpha)) << 1) >> uint(-sc) // de-normalized -a*s
		acc += (int64(x) * alpha) << 1
		buf[i] = fixed.SatRoundAcc(acc)
		acc = int64(x)<<16 - acc
		m, nsc := fixed.Normalize(acc)
		v, sc = int64(m), nsc
	}

	s.value, s.scaling = fixed.Q15(v), sc
}
