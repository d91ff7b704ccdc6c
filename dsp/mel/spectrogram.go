package mel

import (
	"github.com/cwbudde/algo-spectral/dsp/scale"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/stft"
)

// refFloor keeps the adaptive dB reference finite for silent input.
const refFloor = 1e-10

// SpectrogramConfig holds mel spectrogram parameters.
//
// Zero fields take defaults: SampleRate 16000, FFTSize 2048, HopSize 512,
// NumMels 128, FMin 0, FMax = SampleRate/2.
type SpectrogramConfig struct {
	SampleRate float64
	FFTSize    int
	HopSize    int
	NumMels    int
	FMin       float64
	FMax       float64
}

// Spectrogram computes a mel spectrogram in decibels, shaped (frames,
// NumMels) time-major.
//
// The signal is analyzed with a centered Hann STFT, the per-frame power
// spectrum is projected onto the mel filterbank, and the result is
// converted to dB with the matrix maximum of this call as the 0 dB
// reference.
func Spectrogram(signal []float64, cfg SpectrogramConfig) ([][]float64, error) {
	fbCfg, err := normalizeFilterbankConfig(FilterbankConfig{
		SampleRate: cfg.SampleRate,
		FFTSize:    cfg.FFTSize,
		NumMels:    cfg.NumMels,
		FMin:       cfg.FMin,
		FMax:       cfg.FMax,
	})
	if err != nil {
		return nil, err
	}

	filters, err := Filterbank(fbCfg)
	if err != nil {
		return nil, err
	}

	spec, err := stft.Compute(signal, stft.Config{
		FFTSize: fbCfg.FFTSize,
		HopSize: cfg.HopSize,
	})
	if err != nil {
		return nil, err
	}

	melPower := make([][]float64, len(spec))
	ref := 0.0

	power := make([]float64, fbCfg.FFTSize/2+1)
	for t, row := range spec {
		spectrum.PowerInto(power, row)

		bands := make([]float64, fbCfg.NumMels)
		for m, filter := range filters {
			sum := 0.0
			for k, w := range filter {
				if w != 0 {
					sum += w * power[k]
				}
			}

			bands[m] = sum
			if sum > ref {
				ref = sum
			}
		}

		melPower[t] = bands
	}

	if ref < refFloor {
		ref = refFloor
	}

	return scale.PowerToDBMatrix(melPower, ref)
}
