// Package stft provides the short-time Fourier transform and its inverse.
//
// A [Transform] frames a time-domain signal into overlapping windowed
// segments, applies a forward FFT per frame, and returns a time-major
// complex spectrogram of shape (frames, bins) with bins = FFTSize/2 + 1
// covering 0 Hz to Nyquist. [Transform.Inverse] reconstructs the signal by
// mirroring each one-sided frame back to a conjugate-symmetric full
// spectrum, applying the synthesis window after a normalized inverse FFT,
// and overlap-adding with squared-window-sum normalization.
//
// By default framing is centered: the signal is reflect-padded by
// FFTSize/2 on both ends, so frame t is centered on sample t*HopSize and
// the frame count is 1 + len(signal)/HopSize. With Config.NoCenter the
// frames are left-aligned and the count is 1 + (len(signal)-FFTSize)/HopSize.
//
// The stft/istft composition reconstructs the input within floating-point
// tolerance over the region covered by whole hops; it is not a perfect
// inverse after nonlinear edits such as magnitude-only processing.
package stft
