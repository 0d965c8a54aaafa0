package onepole

import (
	"testing"

	"github.com/cwbudde/algo-fxdsp/dsp/fixed"
	"github.com/cwbudde/algo-fxdsp/internal/testutil"
)

func TestDeriveAlphaMonotonicNonIncreasing(t *testing.T) {
	prev := DeriveAlpha(0)
	if prev != 32733 {
		t.Fatalf("alpha at note 0: got %d, want 32733", prev)
	}
	for note := 1; note <= 0xFFFF; note++ {
		a := DeriveAlpha(uint16(note))
		if a > prev {
			t.Fatalf("alpha increased at note %d: %d -> %d", note, prev, a)
		}
		prev = a
	}
	if prev != 1416 {
		t.Fatalf("alpha at note 0xFFFF: got %d, want 1416", prev)
	}
}

func TestDeriveVario(t *testing.T) {
	cases := []struct {
		shape fixed.Q16
		mode  Mode
		alpha fixed.Q15
	}{
		{0x0000, Lowpass, 32733},  // darkest low-pass
		{0x7FFF, Lowpass, 1416},   // brightest low-pass
		{0x8000, Highpass, 32733}, // darkest high-pass
		{0xFFFF, Highpass, 1416},  // brightest high-pass
	}
	for _, tc := range cases {
		f := DeriveVario(tc.shape)
		if f.Mode != tc.mode {
			t.Errorf("shape %#04x: mode got %d, want %d", tc.shape, f.Mode, tc.mode)
		}
		if f.Alpha != tc.alpha {
			t.Errorf("shape %#04x: alpha got %d, want %d", tc.shape, f.Alpha, tc.alpha)
		}
	}
}

func TestLevelDecodesScaledState(t *testing.T) {
	s := State{value: 16384, scaling: -3}
	if got := s.Level(); got != 2048 {
		t.Fatalf("Level: got %d, want 2048", got)
	}
	s = State{value: 16384, scaling: 0}
	if got := s.Level(); got != 16384 {
		t.Fatalf("Level: got %d, want 16384", got)
	}
	s = State{}
	if got := s.Level(); got != 0 {
		t.Fatalf("Level of zero state: got %d, want 0", got)
	}
}

func TestLowpassStepSettlesExactly(t *testing.T) {
	f := Filter{Alpha: DeriveAlpha(0xC000), Mode: Lowpass}
	var s State

	var last fixed.Q15
	for block := 0; block < 50; block++ {
		buf := testutil.DC(16384, fixed.BlockLen)
		f.ProcessBlock(&s, buf)
		last = buf[len(buf)-1]
	}
	if last != 16384 {
		t.Fatalf("step response did not settle on the input: got %d", last)
	}

	// At the fixed point the state passes through unchanged.
	out := f.ProcessSample(&s, 16384)
	if out != 16384 {
		t.Fatalf("settled filter drifted: got %d", out)
	}
}

func TestHighpassRejectsDC(t *testing.T) {
	f := Filter{Alpha: DeriveAlpha(0x8000), Mode: Highpass}
	var s State

	var buf []fixed.Q15
	for block := 0; block < 50; block++ {
		buf = testutil.DC(16384, fixed.BlockLen)
		f.ProcessBlock(&s, buf)
	}
	if peak := testutil.PeakAbs(buf); peak != 0 {
		t.Fatalf("DC leaked through high-pass: peak %d", peak)
	}
}

// The stored mantissa must stay normalized: at most one redundant sign bit
// after any update, except for an exact zero or a shift capped at 15 bits.
func TestStateStaysNormalized(t *testing.T) {
	f := Filter{Alpha: DeriveAlpha(0x4000), Mode: Lowpass}
	var s State

	in := testutil.DeterministicNoise(7, 24000, 64*fixed.BlockLen)
	for off := 0; off < len(in); off += fixed.BlockLen {
		buf := in[off : off+fixed.BlockLen]
		f.ProcessBlock(&s, buf)

		if s.value == 0 || s.scaling == -15 {
			continue
		}
		if n := fixed.NormShift(int16(s.value)); n > 1 {
			t.Fatalf("block %d: mantissa %d has %d redundant sign bits (scaling %d)",
				off/fixed.BlockLen, s.value, n, s.scaling)
		}
		if s.scaling > 0 {
			t.Fatalf("block %d: positive scaling %d", off/fixed.BlockLen, s.scaling)
		}
	}
}

// A dark low-pass fed an impulse keeps draining long after its output has
// fallen below one LSB: the scaling exponent extends the state well under
// the Q0.15 quantization floor instead of letting it freeze.
func TestLowpassSubLSBTail(t *testing.T) {
	f := Filter{Alpha: DeriveAlpha(0), Mode: Lowpass} // alpha 32733, very slow
	var s State

	buf := testutil.Impulse(fixed.BlockLen, 0, 16384)
	f.ProcessBlock(&s, buf)

	decode := func() float64 {
		m := float64(s.value)
		for i := s.scaling; i < 0; i++ {
			m /= 2
		}
		return m
	}

	prev := decode()
	sawSubLSB := false
	for block := 0; block < 200; block++ {
		tail := make([]fixed.Q15, fixed.BlockLen)
		f.ProcessBlock(&s, tail)

		cur := decode()
		if cur <= 0 || cur >= prev {
			t.Fatalf("block %d: state stopped decaying: %v -> %v", block, prev, cur)
		}
		prev = cur
		if s.scaling < 0 {
			sawSubLSB = true
		}
	}
	if !sawSubLSB {
		t.Fatal("state never entered the sub-LSB range")
	}
}

func TestProcessStereoBlockIndependentStates(t *testing.T) {
	f := DeriveVario(0x3000)
	var l, r State

	bufL := testutil.DC(8192, fixed.BlockLen)
	bufR := make([]fixed.Q15, fixed.BlockLen)
	f.ProcessStereoBlock(&l, &r, bufL, bufR)

	if l == r {
		t.Fatal("stereo states should diverge for different inputs")
	}
	if peak := testutil.PeakAbs(bufR); peak != 0 {
		t.Fatalf("silent channel produced output: peak %d", peak)
	}
}

func TestResetClearsState(t *testing.T) {
	f := Filter{Alpha: DeriveAlpha(0x2000), Mode: Lowpass}
	var s State
	f.ProcessBlock(&s, testutil.DC(10000, fixed.BlockLen))
	if s == (State{}) {
		t.Fatal("state unchanged by processing")
	}
	s.Reset()
	if s != (State{}) {
		t.Fatalf("Reset left state %+v", s)
	}
}

func BenchmarkProcessLowpassBlock(b *testing.B) {
	f := Filter{Alpha: DeriveAlpha(0x8000), Mode: Lowpass}
	var s State
	buf := testutil.DeterministicNoise(3, 20000, fixed.BlockLen)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f.ProcessBlock(&s, buf)
	}
}
