// Package cascade implements a four-pole Butterworth high-pass as two
// state-variable filter stages in series. The stage resonances are the
// fixed Butterworth damping pair, so the composite response is maximally
// flat; both corners track a single note. Oscillator stacks use it to
// strip the sub-fundamental rumble that detuned saw clusters accumulate.
package cascade
