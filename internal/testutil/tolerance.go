package testutil

import (
	"testing"

	"github.com/cwbudde/algo-fxdsp/dsp/fixed"
)

// RequireEqual fails the test when got differs from want.
func RequireEqual(t testing.TB, got, want fixed.Q15, msg string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", msg, got, want)
	}
}

// RequireWithinLSB fails the test when got differs from want by more than
// lsb quantization steps.
func RequireWithinLSB(t testing.TB, got, want fixed.Q15, lsb int, msg string) {
	t.Helper()
	diff := int(got) - int(want)
	if diff < 0 {
		diff = -diff
	}
	if diff > lsb {
		t.Fatalf("%s: got %d, want %d (|diff| %d > %d LSB)", msg, got, want, diff, lsb)
	}
}

// RequireAllWithinLSB applies RequireWithinLSB to every sample of a buffer.
func RequireAllWithinLSB(t testing.TB, got, want []fixed.Q15, lsb int, msg string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length mismatch: got %d, want %d", msg, len(got), len(want))
	}
	for i := range got {
		diff := int(got[i]) - int(want[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > lsb {
			t.Fatalf("%s: sample %d: got %d, want %d (|diff| %d > %d LSB)",
				msg, i, got[i], want[i], diff, lsb)
		}
	}
}
