package stft

import (
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func BenchmarkProcess(b *testing.B) {
	signal := testutil.DeterministicNoise(1, 1, 16000)

	tr, err := New(Config{FFTSize: 2048, HopSize: 512})
	if err != nil {
		b.Fatalf("New error: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := tr.Process(signal); err != nil {
			b.Fatalf("Process error: %v", err)
		}
	}
}

func BenchmarkInverse(b *testing.B) {
	signal := testutil.DeterministicNoise(1, 1, 16000)

	tr, err := New(Config{FFTSize: 2048, HopSize: 512})
	if err != nil {
		b.Fatalf("New error: %v", err)
	}

	spec, err := tr.Process(signal)
	if err != nil {
		b.Fatalf("Process error: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := tr.Inverse(spec); err != nil {
			b.Fatalf("Inverse error: %v", err)
		}
	}
}
