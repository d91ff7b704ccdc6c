package stft

import "errors"

// Errors returned by transform construction and processing.
var (
	ErrInvalidFFTSize    = errors.New("stft: fft size must be > 0")
	ErrInvalidHopSize    = errors.New("stft: hop size must be > 0")
	ErrWindowTooLong     = errors.New("stft: window length exceeds fft size")
	ErrEmptySignal       = errors.New("stft: empty signal")
	ErrShortSignal       = errors.New("stft: signal shorter than one frame")
	ErrEmptySpectrogram  = errors.New("stft: empty spectrogram")
	ErrRaggedSpectrogram = errors.New("stft: spectrogram rows must have equal length")
	ErrShapeMismatch     = errors.New("stft: spectrogram bin count does not match transform")
)
