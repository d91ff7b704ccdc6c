package signal

import (
	"math"
	"testing"
)

func TestSine(t *testing.T) {
	g := NewGenerator(16000)

	out, err := g.Sine(4000, 1, 8)
	if err != nil {
		t.Fatalf("Sine error: %v", err)
	}

	// 4 kHz at 16 kHz: period of 4 samples, 0 1 0 -1 ...
	want := []float64{0, 1, 0, -1, 0, 1, 0, -1}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}

	if _, err := g.Sine(440, 1, 0); err == nil {
		t.Fatalf("expected error for zero length")
	}

	if _, err := NewGenerator(0).Sine(440, 1, 8); err == nil {
		t.Fatalf("expected error for zero sample rate")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	a, err := NewGenerator(16000, WithSeed(7)).WhiteNoise(0.5, 128)
	if err != nil {
		t.Fatalf("WhiteNoise error: %v", err)
	}

	b, err := NewGenerator(16000, WithSeed(7)).WhiteNoise(0.5, 128)
	if err != nil {
		t.Fatalf("WhiteNoise error: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed must produce identical noise")
		}
		if math.Abs(a[i]) > 0.5 {
			t.Fatalf("noise sample %v exceeds amplitude", a[i])
		}
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{0.1, -0.4, 0.2}, 1)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}

	if math.Abs(out[1]-(-1)) > 1e-12 {
		t.Fatalf("peak not normalized: %v", out)
	}

	silent, err := Normalize([]float64{0, 0}, 1)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}

	if silent[0] != 0 || silent[1] != 0 {
		t.Fatalf("silence must stay silent: %v", silent)
	}

	if _, err := Normalize(nil, 1); err == nil {
		t.Fatalf("expected error for empty input")
	}
}
