package stft

import (
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
)

// Magphase splits a time-major complex spectrogram into magnitude and
// unit-modulus phase so that magnitude[t][f] * phase[t][f] reconstructs the
// input. Where the magnitude is exactly zero the phase is 1+0i by
// convention, so the product identity still holds.
func Magphase(spec [][]complex128) (magnitude [][]float64, phase [][]complex128, err error) {
	bins, err := validateSpectrogram(spec)
	if err != nil {
		return nil, nil, err
	}

	magnitude = make([][]float64, len(spec))
	phase = make([][]complex128, len(spec))

	for i, row := range spec {
		mag := make([]float64, bins)
		spectrum.MagnitudeInto(mag, row)

		ph := make([]complex128, bins)
		for j, c := range row {
			if mag[j] == 0 {
				ph[j] = 1
				continue
			}

			ph[j] = c / complex(mag[j], 0)
		}

		magnitude[i] = mag
		phase[i] = ph
	}

	return magnitude, phase, nil
}
