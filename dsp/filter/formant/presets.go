package formant

import "github.com/cwbudde/algo-fxdsp/dsp/fixed"

// Vowel presets, one row per vowel, one column per filter stage. Freq
// entries are pitch offsets in half-cents added to the played note;
// resonance entries are Q0.15 and doubled to Q0.16 when fed to the
// coefficient derivation. A shape sweep crosses the four segments
// between adjacent rows.
var (
	freqPresets = [Vowels][Stages]int16{
		{15647, 17236, 19944, 21248},
		{14021, 19096, 20065, 20854},
		{12321, 19498, 20656, 21248},
		{14014, 15787, 20025, 20757},
		{12610, 17328, 19772, 20886},
	}

	resonancePresets = [Vowels][Stages]fixed.Q15{
		{30798, 31248, 31694, 31684},
		{29609, 31880, 31731, 31554},
		{27566, 31978, 31894, 31684},
		{29603, 30455, 31719, 31519},
		{27992, 31288, 31639, 31565},
	}
)
