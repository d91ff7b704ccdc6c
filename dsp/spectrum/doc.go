// Package spectrum provides bin-level helpers over complex spectrum data.
//
// The package intentionally does not implement FFT itself. It operates on
// complex bins produced by an FFT backend and extracts magnitude, power,
// and phase representations using SIMD-backed kernels.
package spectrum
