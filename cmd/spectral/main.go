// Command spectral runs an analysis/resynthesis round trip over a WAV
// file (or a generated test tone): STFT, magnitude/phase split, a short
// dB summary of the magnitudes, inverse STFT, and the reconstruction
// error against the input.
//
// Usage:
//
//	spectral -in audio.wav -out recon.wav
//	spectral -sine 440 -rate 16000
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-spectral/dsp/scale"
	"github.com/cwbudde/algo-spectral/dsp/signal"
	"github.com/cwbudde/algo-spectral/dsp/stft"
	"github.com/cwbudde/algo-spectral/internal/audiofile"
)

func main() {
	in := flag.String("in", "", "input WAV file")
	out := flag.String("out", "", "write the reconstructed signal to this WAV file")
	sine := flag.Float64("sine", 440, "test tone frequency in Hz, used when -in is not given")
	rate := flag.Int("rate", 16000, "sample rate for the generated test tone")
	seconds := flag.Float64("seconds", 1, "duration of the generated test tone")
	fftSize := flag.Int("fft", 2048, "FFT size in samples")
	hop := flag.Int("hop", 512, "hop between frames in samples")
	flag.Parse()

	if err := run(*in, *out, *sine, *rate, *seconds, *fftSize, *hop); err != nil {
		fmt.Fprintln(os.Stderr, "spectral:", err)
		os.Exit(1)
	}
}

func run(in, out string, sine float64, rate int, seconds float64, fftSize, hop int) error {
	samples, sampleRate, err := loadOrGenerate(in, sine, rate, seconds)
	if err != nil {
		return err
	}

	transform, err := stft.New(stft.Config{FFTSize: fftSize, HopSize: hop})
	if err != nil {
		return err
	}

	spec, err := transform.Process(samples)
	if err != nil {
		return err
	}

	magnitude, _, err := stft.Magphase(spec)
	if err != nil {
		return err
	}

	fmt.Printf("input: %d samples at %d Hz\n", len(samples), sampleRate)
	fmt.Printf("spectrogram: %d frames x %d bins\n", len(spec), transform.Bins())

	if err := printMagnitudeStats(magnitude); err != nil {
		return err
	}

	recon, err := transform.Inverse(spec)
	if err != nil {
		return err
	}

	fmt.Printf("reconstruction error: %.3g relative RMS over %d samples\n",
		relativeRMS(recon, samples[:len(recon)]), len(recon))

	if out == "" {
		return nil
	}

	if err := audiofile.SaveWAV(out, recon, sampleRate); err != nil {
		return err
	}

	fmt.Println("wrote", out)

	return nil
}

func loadOrGenerate(in string, sine float64, rate int, seconds float64) ([]float64, int, error) {
	if in != "" {
		return audiofile.LoadWAV(in)
	}

	gen := signal.NewGenerator(float64(rate))

	samples, err := gen.Sine(sine, 1, int(seconds*float64(rate)))
	if err != nil {
		return nil, 0, err
	}

	return samples, rate, nil
}

// printMagnitudeStats reports the spread of the magnitude spectrogram in
// decibels relative to its own peak.
func printMagnitudeStats(magnitude [][]float64) error {
	peak := 0.0
	for _, row := range magnitude {
		for _, v := range row {
			if v > peak {
				peak = v
			}
		}
	}

	if peak == 0 {
		peak = 1
	}

	db, err := scale.AmplitudeToDBMatrix(magnitude, peak)
	if err != nil {
		return err
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range db {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	fmt.Printf("magnitude: %.1f dB .. %.1f dB relative to peak\n", lo, hi)

	return nil
}

func relativeRMS(got, want []float64) float64 {
	var num, den float64
	for i := range got {
		d := got[i] - want[i]
		num += d * d
		den += want[i] * want[i]
	}

	if den == 0 {
		return math.Sqrt(num / float64(len(got)))
	}

	return math.Sqrt(num / den)
}
