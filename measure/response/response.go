package response

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fxdsp/dsp/fixed"
)

// Errors returned by analyzer construction.
var (
	ErrInvalidFFTSize    = errors.New("response: fft size must be a power of two >= 64")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
)

const (
	defaultFFTSize    = 4096
	defaultSampleRate = 48000.0
	minFFTSize        = 64
)

// impulseAmplitude is the excitation level: half scale keeps headroom for
// resonant overshoot, and responses are normalized back to unit gain.
const impulseAmplitude = 16384

// BlockProcessor filters one block of samples in place. Every filter in
// this module satisfies it through a closure over coefficients and state.
type BlockProcessor func(buf []fixed.Q15)

// Option configures an Analyzer.
type Option func(*config) error

type config struct {
	fftSize    int
	sampleRate float64
}

func defaultConfig() config {
	return config{
		fftSize:    defaultFFTSize,
		sampleRate: defaultSampleRate,
	}
}

// WithFFTSize sets the FFT length, which is also the number of impulse
// response samples collected. Must be a power of two, at least 64.
func WithFFTSize(n int) Option {
	return func(cfg *config) error {
		if n < minFFTSize || n&(n-1) != 0 {
			return fmt.Errorf("%w: %d", ErrInvalidFFTSize, n)
		}
		cfg.fftSize = n
		return nil
	}
}

// WithSampleRate sets the sample rate used to map bins to frequencies.
func WithSampleRate(rate float64) Option {
	return func(cfg *config) error {
		if rate <= 0 {
			return fmt.Errorf("%w: %g", ErrInvalidSampleRate, rate)
		}
		cfg.sampleRate = rate
		return nil
	}
}

// Analyzer measures filter frequency responses. It is reusable across
// filters; the FFT plan is built once at construction.
type Analyzer struct {
	fftSize    int
	sampleRate float64
	plan       *algofft.Plan[complex128]
}

// New creates an analyzer with the given options.
func New(opts ...Option) (*Analyzer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	plan, err := algofft.NewPlan64(cfg.fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: creating fft plan: %w", err)
	}

	return &Analyzer{
		fftSize:    cfg.fftSize,
		sampleRate: cfg.sampleRate,
		plan:       plan,
	}, nil
}

// SampleRate returns the configured sample rate.
func (a *Analyzer) SampleRate() float64 { return a.sampleRate }

// FFTSize returns the configured FFT length.
func (a *Analyzer) FFTSize() int { return a.fftSize }

// BinWidth returns the frequency resolution in Hz.
func (a *Analyzer) BinWidth() float64 {
	return a.sampleRate / float64(a.fftSize)
}

// ImpulseResponse drives proc block by block with a half-scale impulse
// followed by silence and returns the collected response, normalized so a
// unit-gain filter yields a unit impulse response.
func (a *Analyzer) ImpulseResponse(proc BlockProcessor) []float64 {
	buf := make([]fixed.Q15, fixed.BlockLen)
	out := make([]float64, 0, a.fftSize)

	first := true
	for len(out) < a.fftSize {
		for i := range buf {
			buf[i] = 0
		}
		if first {
			buf[0] = impulseAmplitude
			first = false
		}
		proc(buf)
		for _, v := range buf {
			if len(out) == a.fftSize {
				break
			}
			out = append(out, float64(v)/impulseAmplitude)
		}
	}
	return out
}

// MagnitudeSpectrum computes |H(f)| for the non-negative frequency bins
// of an impulse response. Input longer than the FFT size is truncated,
// shorter input is zero padded.
func (a *Analyzer) MagnitudeSpectrum(ir []float64) ([]float64, error) {
	in := make([]complex128, a.fftSize)
	n := len(ir)
	if n > a.fftSize {
		n = a.fftSize
	}
	for i := 0; i < n; i++ {
		in[i] = complex(ir[i], 0)
	}

	out := make([]complex128, a.fftSize)
	if err := a.plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward fft: %w", err)
	}

	half := a.fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for i := 0; i < half; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// Measure is the one-shot path: impulse response plus magnitude spectrum.
func (a *Analyzer) Measure(proc BlockProcessor) ([]float64, error) {
	return a.MagnitudeSpectrum(a.ImpulseResponse(proc))
}

// PeakFrequency returns the frequency of the largest magnitude bin.
func (a *Analyzer) PeakFrequency(mag []float64) float64 {
	peak := 0
	for i, m := range mag {
		if m > mag[peak] {
			peak = i
		}
	}
	return float64(peak) * a.BinWidth()
}

// MagnitudeToDB converts linear magnitudes to decibels, floored at
// -120 dB so silent bins stay finite.
func MagnitudeToDB(mag []float64) []float64 {
	out := make([]float64, len(mag))
	for i, m := range mag {
		if m < 1e-6 {
			out[i] = -120
			continue
		}
		out[i] = magnitudeToDB(m)
	}
	return out
}
