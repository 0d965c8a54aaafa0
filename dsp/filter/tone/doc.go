// Package tone implements a two-band stereo tone control built from two
// shelving filter passes: a high shelf near 1 kHz (treble) followed by a
// low shelf near 200 Hz (bass). Each band derives its coefficients once per
// block from a single Q0.15 gain knob and shares them across both stereo
// channels; the four filter states stay independent.
package tone
