package lut

import (
	"math"

	"github.com/cwbudde/algo-fxdsp/dsp/fixed"
)

// SampleRate is the design sample rate all tables are computed for.
const SampleRate = 48000

// noteToFreq holds the normalized frequency of every 16th note step in
// Q0.32, a memory/accuracy trade-off resolved by interpolating the 4-bit
// note remainder in NoteToFreq. Built once at startup from the equal
// temperament formula; the top of the grid clamps at the Nyquist limit.
var noteToFreq [2049]fixed.Q32

func init() {
	for i := range noteToFreq {
		// Note scale: (semitones*100 + cents) * 2, A4 = 440 Hz at 13800.
		note := float64(i * 16)
		freq := 440 * math.Exp2((note-13800)/2400) / SampleRate
		if freq > 0.5 {
			freq = 0.5
		}
		noteToFreq[i] = fixed.Q32(math.Round(freq * (1 << 32)))
	}
}

// NoteToFreq converts a note in half-cent resolution to a normalized
// frequency (cycles per sample) in Q0.32. The note must be non-negative;
// the table grid has 16 half-cent spacing and the 4-bit remainder is
// interpolated linearly.
func NoteToFreq(note int16) fixed.Q32 {
	frac := uint64(note & 0xF)
	slot := int(note >> 4)
	lo := uint64(noteToFreq[slot])
	hi := uint64(noteToFreq[slot+1])
	return fixed.Q32((lo*(16-frac) + hi*frac) >> 4)
}
