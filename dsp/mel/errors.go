package mel

import "errors"

// Errors returned by filterbank and spectrogram construction.
var (
	ErrInvalidSampleRate = errors.New("mel: sample rate must be > 0")
	ErrInvalidFFTSize    = errors.New("mel: fft size must be > 0")
	ErrInvalidBandCount  = errors.New("mel: band count must be > 0")
	ErrInvalidFreqRange  = errors.New("mel: frequency range must satisfy 0 <= fmin < fmax")
)
