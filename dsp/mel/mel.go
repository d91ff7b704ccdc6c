package mel

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

const (
	defaultSampleRate = 16000.0
	defaultFFTSize    = 2048
	defaultNumMels    = 128
)

// HzToMel converts a frequency in Hz to mel (HTK formula).
func HzToMel(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

// MelToHz converts a mel value back to Hz (HTK formula).
func MelToHz(mel float64) float64 {
	return 700 * (math.Pow(10, mel/2595) - 1)
}

// FilterbankConfig holds mel filterbank parameters.
//
// Zero fields take defaults: SampleRate 16000, FFTSize 2048, NumMels 128,
// FMin 0, FMax = SampleRate/2. An FMax above Nyquist is clamped to Nyquist.
type FilterbankConfig struct {
	SampleRate float64
	FFTSize    int
	NumMels    int
	FMin       float64
	FMax       float64
}

func normalizeFilterbankConfig(cfg FilterbankConfig) (FilterbankConfig, error) {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = defaultSampleRate
	}

	if cfg.FFTSize == 0 {
		cfg.FFTSize = defaultFFTSize
	}

	if cfg.NumMels == 0 {
		cfg.NumMels = defaultNumMels
	}

	if cfg.SampleRate < 0 {
		return cfg, fmt.Errorf("%w: %g", ErrInvalidSampleRate, cfg.SampleRate)
	}

	if cfg.FFTSize < 0 {
		return cfg, fmt.Errorf("%w: %d", ErrInvalidFFTSize, cfg.FFTSize)
	}

	if cfg.NumMels < 0 {
		return cfg, fmt.Errorf("%w: %d", ErrInvalidBandCount, cfg.NumMels)
	}

	nyquist := cfg.SampleRate / 2
	if cfg.FMax == 0 {
		cfg.FMax = nyquist
	}

	cfg.FMax = core.Clamp(cfg.FMax, 0, nyquist)

	if cfg.FMin < 0 || cfg.FMin >= cfg.FMax {
		return cfg, fmt.Errorf("%w: [%g, %g]", ErrInvalidFreqRange, cfg.FMin, cfg.FMax)
	}

	return cfg, nil
}

// Filterbank builds a (NumMels, FFTSize/2+1) matrix of triangular filters
// with centers evenly spaced on the mel scale between FMin and FMax. Each
// filter is normalized to unit area (scaled by 2 over its bandwidth in Hz).
func Filterbank(cfg FilterbankConfig) ([][]float64, error) {
	cfg, err := normalizeFilterbankConfig(cfg)
	if err != nil {
		return nil, err
	}

	bins := cfg.FFTSize/2 + 1
	edges := bandEdgesHz(cfg.NumMels, cfg.FMin, cfg.FMax)

	weights := make([][]float64, cfg.NumMels)
	for m := range weights {
		left := edges[m]
		center := edges[m+1]
		right := edges[m+2]

		// Unit-area normalization.
		norm := 2 / (right - left)

		row := make([]float64, bins)
		for k := range row {
			f := float64(k) * cfg.SampleRate / float64(cfg.FFTSize)

			lower := (f - left) / (center - left)
			upper := (right - f) / (right - center)

			w := math.Min(lower, upper)
			if w > 0 {
				row[k] = w * norm
			}
		}

		weights[m] = row
	}

	return weights, nil
}

// FrequenciesHz returns the numMels filter center frequencies evenly spaced
// on the mel scale between fMin and fMax.
func FrequenciesHz(numMels int, fMin, fMax float64) ([]float64, error) {
	if numMels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBandCount, numMels)
	}

	if fMin < 0 || fMin >= fMax {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidFreqRange, fMin, fMax)
	}

	edges := bandEdgesHz(numMels, fMin, fMax)

	return edges[1 : numMels+1], nil
}

// bandEdgesHz returns numMels+2 frequencies evenly spaced in mel between
// fMin and fMax: the left edge, center, and right edge of each triangle.
func bandEdgesHz(numMels int, fMin, fMax float64) []float64 {
	melMin := HzToMel(fMin)
	melMax := HzToMel(fMax)

	edges := make([]float64, numMels+2)
	for i := range edges {
		m := melMin + (melMax-melMin)*float64(i)/float64(numMels+1)
		edges[i] = MelToHz(m)
	}

	return edges
}
