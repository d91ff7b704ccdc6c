// Package mel builds mel-scale filterbanks and computes mel spectrograms.
//
// The mel scale is a perceptually motivated frequency scale, denser at low
// frequencies. This package uses the HTK formula
//
//	mel = 2595 * log10(1 + hz/700)
//
// and projects STFT power spectra onto triangular filters whose center
// frequencies are evenly spaced in mel between a lower and upper bound.
// Each filter is normalized to unit area so energy stays comparable across
// bands of uneven bandwidth.
//
// [Spectrogram] output is in decibels relative to the matrix maximum of the
// call, so the loudest mel bin is always 0 dB. This per-call adaptive
// reference differs from the fixed-reference converters in dsp/scale.
package mel
