package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-fxdsp/dsp/fixed"
)

// DC generates a constant-valued signal.
func DC(value fixed.Q15, length int) []fixed.Q15 {
	out := make([]fixed.Q15, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Impulse generates a single-sample impulse of the given amplitude at pos.
func Impulse(length, pos int, amplitude fixed.Q15) []fixed.Q15 {
	out := make([]fixed.Q15, length)
	if pos >= 0 && pos < length {
		out[pos] = amplitude
	}
	return out
}

// AlternatingSign generates a full-rate alternating signal (+a, -a, +a, ...),
// the highest frequency representable at the sample rate.
func AlternatingSign(amplitude fixed.Q15, length int) []fixed.Q15 {
	out := make([]fixed.Q15, length)
	for i := range out {
		if i&1 == 0 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out
}

// DeterministicNoise generates uniform noise with a fixed seed for
// reproducibility. Samples lie in [-amplitude, amplitude].
func DeterministicNoise(seed int64, amplitude fixed.Q15, length int) []fixed.Q15 {
	out := make([]fixed.Q15, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = fixed.Q15(rng.Int31n(2*int32(amplitude)+1) - int32(amplitude))
	}
	return out
}

// PeakAbs returns the largest absolute sample value in buf.
func PeakAbs(buf []fixed.Q15) fixed.Q15 {
	var peak int32
	for _, v := range buf {
		a := int32(v)
		if a < 0 {
			a = -a
		}
		if a > peak {
			peak = a
		}
	}
	if peak > int32(fixed.MaxQ15) {
		peak = int32(fixed.MaxQ15)
	}
	return fixed.Q15(peak)
}

// ToFloat converts a fixed-point buffer to float64 in [-1, 1) for
// spectral analysis.
func ToFloat(buf []fixed.Q15) []float64 {
	out := make([]float64, len(buf))
	for i, v := range buf {
		out[i] = float64(v) / 32768
	}
	return out
}
