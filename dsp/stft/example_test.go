package stft_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/stft"
)

func ExampleCompute() {
	signal := make([]float64, 4096)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 16000)
	}

	spec, _ := stft.Compute(signal, stft.Config{FFTSize: 1024, HopSize: 256})
	fmt.Println(len(spec), len(spec[0]))
	// Output:
	// 17 513
}

func ExampleTransform_Inverse() {
	signal := make([]float64, 4096)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 16000)
	}

	tr, _ := stft.New(stft.Config{FFTSize: 1024, HopSize: 256})
	spec, _ := tr.Process(signal)
	recon, _ := tr.Inverse(spec)
	fmt.Println(len(recon))
	// Output:
	// 4096
}

func ExampleMagphase() {
	spec := [][]complex128{{3 + 4i, 0}}
	mag, phase, _ := stft.Magphase(spec)
	fmt.Printf("%.1f %.1f%+.1fi %.0f\n", mag[0][0], real(phase[0][0]), imag(phase[0][0]), real(phase[0][1]))
	// Output:
	// 5.0 0.6+0.8i 1
}
