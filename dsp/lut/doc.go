// Package lut implements the interpolated lookup tables that replace
// runtime transcendental functions in the coefficient formulas.
//
// A [Table257] maps the full 16-bit control domain onto 256 linear
// segments: the high byte of the index selects a segment, the low byte
// interpolates within it. The last entries of every table repeat the same
// value, so indices near the top of the domain clamp to the table's design
// limit without any branch logic.
//
// The table values themselves are precomputed offline from the
// transcendental design formulas (tan pre-warping, exponential decay,
// pitch-to-frequency); cmd/tablegen regenerates them.
package lut
