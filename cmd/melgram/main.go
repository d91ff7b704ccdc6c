// Command melgram renders a mel spectrogram of a WAV file (or a generated
// test tone) and optionally writes it out as a grayscale PNG.
//
// Usage:
//
//	melgram -in audio.wav -png out.png
//	melgram -sine 440 -rate 16000 -mels 64
//
// Frames run along the X axis, mel bands along the Y axis with the lowest
// band at the bottom.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/mel"
	"github.com/cwbudde/algo-spectral/dsp/signal"
	"github.com/cwbudde/algo-spectral/internal/audiofile"
)

func main() {
	in := flag.String("in", "", "input WAV file")
	sine := flag.Float64("sine", 440, "test tone frequency in Hz, used when -in is not given")
	rate := flag.Int("rate", 16000, "sample rate for the generated test tone")
	seconds := flag.Float64("seconds", 1, "duration of the generated test tone")
	fftSize := flag.Int("fft", 2048, "FFT size in samples")
	hop := flag.Int("hop", 512, "hop between frames in samples")
	mels := flag.Int("mels", 128, "number of mel bands")
	fMin := flag.Float64("fmin", 0, "lowest filter frequency in Hz")
	fMax := flag.Float64("fmax", 0, "highest filter frequency in Hz (0 = Nyquist)")
	pngPath := flag.String("png", "", "write the spectrogram to this PNG file")
	flag.Parse()

	if err := run(*in, *sine, *rate, *seconds, *fftSize, *hop, *mels, *fMin, *fMax, *pngPath); err != nil {
		fmt.Fprintln(os.Stderr, "melgram:", err)
		os.Exit(1)
	}
}

func run(in string, sine float64, rate int, seconds float64, fftSize, hop, mels int, fMin, fMax float64, pngPath string) error {
	samples, sampleRate, err := loadOrGenerate(in, sine, rate, seconds)
	if err != nil {
		return err
	}

	out, err := mel.Spectrogram(samples, mel.SpectrogramConfig{
		SampleRate: float64(sampleRate),
		FFTSize:    fftSize,
		HopSize:    hop,
		NumMels:    mels,
		FMin:       fMin,
		FMax:       fMax,
	})
	if err != nil {
		return err
	}

	lo, hi := matrixRange(out)
	fmt.Printf("mel spectrogram: %d frames x %d bands\n", len(out), len(out[0]))
	fmt.Printf("range: %.1f dB .. %.1f dB\n", lo, hi)

	if pngPath == "" {
		return nil
	}

	if err := writePNG(pngPath, out, lo, hi); err != nil {
		return err
	}

	fmt.Println("wrote", pngPath)

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

func matrixRange(m [][]float64) (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)

	for _, row := range m {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	return lo, hi
}

func writePNG(path string, m [][]float64, lo, hi float64) error {
	frames := len(m)
	bands := len(m[0])

	img := image.NewGray(image.Rect(0, 0, frames, bands))

	span := hi - lo
	if span <= 0 {
		span = 1
	}

	for x := 0; x < frames; x++ {
		for y := 0; y < bands; y++ {
			v := core.Clamp((m[x][y]-lo)/span, 0, 1)
			img.SetGray(x, bands-y-1, color.Gray{Y: uint8(255 * v)})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
