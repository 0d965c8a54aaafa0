package response

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fxdsp/dsp/filter/svf"
	"github.com/cwbudde/algo-fxdsp/dsp/fixed"
)

func TestNewValidatesOptions(t *testing.T) {
	if _, err := New(WithFFTSize(100)); !errors.Is(err, ErrInvalidFFTSize) {
		t.Errorf("non-power-of-two size: got %v, want ErrInvalidFFTSize", err)
	}
	if _, err := New(WithFFTSize(32)); !errors.Is(err, ErrInvalidFFTSize) {
		t.Errorf("undersized fft: got %v, want ErrInvalidFFTSize", err)
	}
	if _, err := New(WithSampleRate(0)); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("zero sample rate: got %v, want ErrInvalidSampleRate", err)
	}
	a, err := New(WithFFTSize(1024), WithSampleRate(48000))
	if err != nil {
		t.Fatalf("valid options rejected: %v", err)
	}
	if a.FFTSize() != 1024 || a.SampleRate() != 48000 {
		t.Fatalf("options not applied: size %d rate %g", a.FFTSize(), a.SampleRate())
	}
}

func TestIdentityProcessorIsFlat(t *testing.T) {
	a, err := New(WithFFTSize(256))
	if err != nil {
		t.Fatal(err)
	}

	ir := a.ImpulseResponse(func(buf []fixed.Q15) {})
	if ir[0] != 1 {
		t.Fatalf("identity impulse response starts at %g, want 1", ir[0])
	}
	for i, v := range ir[1:] {
		if v != 0 {
			t.Fatalf("identity impulse response nonzero at sample %d: %g", i+1, v)
		}
	}

	mag, err := a.MagnitudeSpectrum(ir)
	if err != nil {
		t.Fatal(err)
	}
	if len(mag) != 129 {
		t.Fatalf("spectrum length %d, want 129", len(mag))
	}
	for i, m := range mag {
		if math.Abs(m-1) > 1e-9 {
			t.Fatalf("identity spectrum not flat at bin %d: %g", i, m)
		}
	}
}

// The band-pass peak must land where the bilinear transform puts the
// corner: f = atan(g)/pi * sampleRate, with g read back from the derived
// coefficient in Q3.12.
func TestBandpassPeakFrequency(t *testing.T) {
	c := svf.Derive(22528, 0xF000)
	var s svf.State

	a, err := New()
	if err != nil {
		t.Fatal(err)
	}
	mag, err := a.Measure(func(buf []fixed.Q15) {
		c.ProcessBandpassBlock(&s, buf)
	})
	if err != nil {
		t.Fatal(err)
	}

	g := float64(c.G) / 4096
	want := math.Atan(g) / math.Pi * a.SampleRate()
	got := a.PeakFrequency(mag)

	tol := 5 * a.BinWidth()
	if want*0.05 > tol {
		tol = want * 0.05
	}
	if math.Abs(got-want) > tol {
		t.Fatalf("band-pass peak at %.1f Hz, want %.1f Hz (tol %.1f)", got, want, tol)
	}
}

func TestLowpassUnityGainAtDC(t *testing.T) {
	c := svf.Derive(22528, 0x8000)
	var s svf.State

	a, err := New(WithFFTSize(2048))
	if err != nil {
		t.Fatal(err)
	}
	mag, err := a.Measure(func(buf []fixed.Q15) {
		c.ProcessLowpassBlock(&s, buf)
	})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(mag[0]-1) > 0.05 {
		t.Fatalf("low-pass DC gain %g, want ~1", mag[0])
	}
}

func TestMagnitudeToDB(t *testing.T) {
	db := MagnitudeToDB([]float64{1, 10, 0})
	if math.Abs(db[0]) > 1e-9 {
		t.Errorf("0 dB point: got %g", db[0])
	}
	if math.Abs(db[1]-20) > 1e-9 {
		t.Errorf("20 dB point: got %g", db[1])
	}
	if db[2] != -120 {
		t.Errorf("silence floor: got %g, want -120", db[2])
	}
}
