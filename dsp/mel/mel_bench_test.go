package mel

import (
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func BenchmarkFilterbank(b *testing.B) {
	cfg := FilterbankConfig{SampleRate: 16000, FFTSize: 2048, NumMels: 128}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := Filterbank(cfg); err != nil {
			b.Fatalf("Filterbank error: %v", err)
		}
	}
}

func BenchmarkSpectrogram(b *testing.B) {
	signal := testutil.DeterministicNoise(1, 1, 16000)
	cfg := SpectrogramConfig{SampleRate: 16000, NumMels: 128}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Spectrogram(signal, cfg); err != nil {
			b.Fatalf("Spectrogram error: %v", err)
		}
	}
}
