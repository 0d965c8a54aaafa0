// Package formant implements a vowel formant filter: four resonant
// low-pass stages in series, each tuned to one formant of a vowel. A
// single Q0.16 shape control morphs continuously across five vowel
// presets (A, E, I, O, U); the per-stage corner pitch and resonance are
// linearly interpolated between the two neighboring presets and the
// corners track the played note.
package formant
