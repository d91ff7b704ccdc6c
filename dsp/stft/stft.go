package stft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

const (
	defaultFFTSize = 2048
	defaultHopSize = 512

	// Positions whose squared-window sum falls below this are left
	// unnormalized during overlap-add synthesis.
	synthesisFloor = 1e-15
)

// Config holds STFT analysis parameters.
//
// Zero fields are replaced by defaults: FFTSize 2048, HopSize 512,
// WinLength = FFTSize, centered framing. The zero Window value is the
// Hann window; rectangular analysis uses window.TypeRectangular.
type Config struct {
	FFTSize   int
	HopSize   int
	WinLength int
	Window    window.Type

	// NoCenter selects left-aligned framing instead of the default
	// centered framing with reflect padding of FFTSize/2 per side.
	NoCenter bool
}

// Transform computes forward and inverse short-time Fourier transforms
// with a reusable FFT plan and window.
//
// A Transform is not safe for concurrent use; create one per goroutine.
// Independent Transforms never share state.
type Transform struct {
	cfg  Config
	plan *algofft.Plan[complex128]

	// Analysis/synthesis window of length FFTSize: the WinLength window
	// centered in the frame, zero elsewhere.
	win []float64

	frame  []float64
	inBuf  []complex128
	outBuf []complex128
}

// New creates a Transform for the given configuration.
func New(cfg Config) (*Transform, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("stft: create fft plan: %w", err)
	}

	win := window.Generate(cfg.Window, cfg.WinLength, window.WithPeriodic())

	padded := make([]float64, cfg.FFTSize)
	copy(padded[(cfg.FFTSize-cfg.WinLength)/2:], win)

	return &Transform{
		cfg:    cfg,
		plan:   plan,
		win:    padded,
		frame:  make([]float64, cfg.FFTSize),
		inBuf:  make([]complex128, cfg.FFTSize),
		outBuf: make([]complex128, cfg.FFTSize),
	}, nil
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.FFTSize == 0 {
		cfg.FFTSize = defaultFFTSize
	}

	if cfg.HopSize == 0 {
		cfg.HopSize = defaultHopSize
	}

	if cfg.WinLength == 0 {
		cfg.WinLength = cfg.FFTSize
	}

	if cfg.FFTSize < 0 {
		return cfg, fmt.Errorf("%w: %d", ErrInvalidFFTSize, cfg.FFTSize)
	}

	if cfg.HopSize < 0 {
		return cfg, fmt.Errorf("%w: %d", ErrInvalidHopSize, cfg.HopSize)
	}

	if cfg.WinLength < 0 || cfg.WinLength > cfg.FFTSize {
		return cfg, fmt.Errorf("%w: %d > %d", ErrWindowTooLong, cfg.WinLength, cfg.FFTSize)
	}

	return cfg, nil
}

// FFTSize returns the FFT size in samples.
func (t *Transform) FFTSize() int {
	return t.cfg.FFTSize
}

// HopSize returns the hop between frame starts in samples.
func (t *Transform) HopSize() int {
	return t.cfg.HopSize
}

// Bins returns the number of one-sided frequency bins, FFTSize/2 + 1.
func (t *Transform) Bins() int {
	return t.cfg.FFTSize/2 + 1
}

// NumFrames returns the frame count produced for a signal of the given
// length, or 0 if the signal is too short.
func (t *Transform) NumFrames(signalLen int) int {
	if signalLen <= 0 {
		return 0
	}

	framedLen := signalLen
	if !t.cfg.NoCenter {
		framedLen += 2 * (t.cfg.FFTSize / 2)
	}

	if framedLen < t.cfg.FFTSize {
		return 0
	}

	return 1 + (framedLen-t.cfg.FFTSize)/t.cfg.HopSize
}

// Process computes the complex spectrogram of signal.
//
// The result is time-major: result[t][f] is bin f of frame t, with
// len(result) frames and Bins() bins per frame.
func (t *Transform) Process(signal []float64) ([][]complex128, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}

	framed := signal
	if !t.cfg.NoCenter {
		framed = reflectPad(signal, t.cfg.FFTSize/2)
	}

	if len(framed) < t.cfg.FFTSize {
		return nil, fmt.Errorf("%w: %d < %d", ErrShortSignal, len(framed), t.cfg.FFTSize)
	}

	numFrames := 1 + (len(framed)-t.cfg.FFTSize)/t.cfg.HopSize
	bins := t.Bins()

	result := make([][]complex128, numFrames)
	for i := range result {
		start := i * t.cfg.HopSize

		copy(t.frame, framed[start:start+t.cfg.FFTSize])
		if err := window.ApplyCoefficientsInPlace(t.frame, t.win); err != nil {
			return nil, err
		}

		for j, v := range t.frame {
			t.inBuf[j] = complex(v, 0)
		}

		if err := t.plan.Forward(t.outBuf, t.inBuf); err != nil {
			return nil, fmt.Errorf("stft: forward fft: %w", err)
		}

		row := make([]complex128, bins)
		copy(row, t.outBuf[:bins])
		result[i] = row
	}

	return result, nil
}

// Inverse reconstructs a time-domain signal from a time-major complex
// spectrogram produced by [Transform.Process].
//
// Each one-sided frame is mirrored to its conjugate-symmetric full
// spectrum, inverse-transformed, multiplied by the synthesis window, and
// overlap-added. The accumulated signal is divided by the summed squared
// window to remove amplitude modulation. In centered mode the FFTSize/2
// padding is trimmed from both ends, yielding HopSize*(frames-1) samples.
func (t *Transform) Inverse(spec [][]complex128) ([]float64, error) {
	bins, err := validateSpectrogram(spec)
	if err != nil {
		return nil, err
	}

	if bins != t.Bins() {
		return nil, fmt.Errorf("%w: %d bins, want %d", ErrShapeMismatch, bins, t.Bins())
	}

	fftSize := t.cfg.FFTSize
	hop := t.cfg.HopSize
	numFrames := len(spec)

	outLen := fftSize + hop*(numFrames-1)
	acc := make([]float64, outLen)
	winSq := make([]float64, outLen)

	for i, row := range spec {
		for j := range t.inBuf {
			t.inBuf[j] = 0
		}

		copy(t.inBuf[:bins], row)
		for k := 1; k < bins-1; k++ {
			t.inBuf[fftSize-k] = conj(row[k])
		}

		if err := t.plan.Inverse(t.outBuf, t.inBuf); err != nil {
			return nil, fmt.Errorf("stft: inverse fft: %w", err)
		}

		start := i * hop
		for j := 0; j < fftSize; j++ {
			w := t.win[j]
			acc[start+j] += real(t.outBuf[j]) * w
			winSq[start+j] += w * w
		}
	}

	for i := range acc {
		if winSq[i] > synthesisFloor {
			acc[i] /= winSq[i]
		}
	}

	if t.cfg.NoCenter {
		return acc, nil
	}

	pad := fftSize / 2

	return acc[pad : outLen-pad], nil
}

// Compute is a one-shot STFT for a signal with the given configuration.
func Compute(signal []float64, cfg Config) ([][]complex128, error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}

	return t.Process(signal)
}

// Invert is a one-shot inverse STFT. The FFT size is inferred from the
// spectrogram bin count as 2*(bins-1) when cfg.FFTSize is zero.
func Invert(spec [][]complex128, cfg Config) ([]float64, error) {
	bins, err := validateSpectrogram(spec)
	if err != nil {
		return nil, err
	}

	if cfg.FFTSize == 0 {
		cfg.FFTSize = 2 * (bins - 1)
	}

	t, err := New(cfg)
	if err != nil {
		return nil, err
	}

	return t.Inverse(spec)
}

func validateSpectrogram(spec [][]complex128) (bins int, err error) {
	if len(spec) == 0 {
		return 0, ErrEmptySpectrogram
	}

	bins = len(spec[0])
	if bins < 2 {
		return 0, fmt.Errorf("%w: %d bins", ErrEmptySpectrogram, bins)
	}

	for i, row := range spec {
		if len(row) != bins {
			return 0, fmt.Errorf("%w: row %d has %d bins, want %d", ErrRaggedSpectrogram, i, len(row), bins)
		}
	}

	return bins, nil
}

func conj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}

// reflectPad extends signal by pad samples on each side, mirroring around
// the first and last sample without repeating the edge. Signals shorter
// than pad+1 bounce repeatedly between the edges; a single-sample signal
// pads with its own value.
func reflectPad(signal []float64, pad int) []float64 {
	n := len(signal)
	out := make([]float64, n+2*pad)
	copy(out[pad:], signal)

	for i := 1; i <= pad; i++ {
		out[pad-i] = signal[reflectIndex(i, n)]
		out[pad+n-1+i] = signal[n-1-reflectIndex(i, n)]
	}

	return out
}

func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}

	period := 2 * (n - 1)
	i %= period
	if i >= n {
		i = period - i
	}

	return i
}
