package window

import (
	"math"
	"testing"
)

func TestGenerateHannSymmetric(t *testing.T) {
	coeffs := Generate(TypeHann, 5)
	want := []float64{0, 0.5, 1, 0.5, 0}

	if len(coeffs) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(coeffs), len(want))
	}

	for i := range want {
		if math.Abs(coeffs[i]-want[i]) > 1e-12 {
			t.Fatalf("coeffs[%d] = %v, want %v", i, coeffs[i], want[i])
		}
	}
}

func TestGenerateHannPeriodic(t *testing.T) {
	coeffs := Generate(TypeHann, 8, WithPeriodic())

	if coeffs[0] != 0 {
		t.Fatalf("periodic Hann must start at 0, got %v", coeffs[0])
	}

	if math.Abs(coeffs[4]-1) > 1e-12 {
		t.Fatalf("periodic Hann midpoint = %v, want 1", coeffs[4])
	}

	// Periodic form: w[n] == w[N-n] for n in 1..N-1.
	for n := 1; n < len(coeffs); n++ {
		if math.Abs(coeffs[n]-coeffs[len(coeffs)-n]) > 1e-12 {
			t.Fatalf("periodic symmetry violated at %d", n)
		}
	}
}

func TestGenerateRectangular(t *testing.T) {
	coeffs := Generate(TypeRectangular, 4)
	for i, c := range coeffs {
		if c != 1 {
			t.Fatalf("rectangular coeffs[%d] = %v, want 1", i, c)
		}
	}
}

func TestCosineFamilyMidpoints(t *testing.T) {
	// Symmetric cosine-sum windows reach their published peak at the center.
	cases := []struct {
		typ  Type
		peak float64
	}{
		{TypeHann, 1},
		{TypeHamming, 1},
		{TypeBlackman, 1},
		{TypeBlackmanHarris, 1},
		{TypeFlatTop, 1},
	}

	for _, tc := range cases {
		coeffs := Generate(tc.typ, 129)
		if math.Abs(coeffs[64]-tc.peak) > 1e-7 {
			t.Fatalf("type %d midpoint = %v, want %v", tc.typ, coeffs[64], tc.peak)
		}
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if Generate(TypeHann, 0) != nil {
		t.Fatalf("expected nil for zero length")
	}

	if _, err := Hann(-3); err == nil {
		t.Fatalf("expected error for negative size")
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{0.5, 0.5, 0.5}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients error: %v", err)
	}

	want := []float64{0.5, 1, 1.5}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}

	if samples[0] != 1 {
		t.Fatalf("input must not be mutated")
	}

	if _, err := ApplyCoefficients(samples, coeffs[:2]); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestApplyInPlace(t *testing.T) {
	buf := []float64{1, 1, 1, 1}
	Apply(TypeHann, buf)

	if buf[0] != 0 || math.Abs(buf[1]-0.75) > 1e-12 {
		t.Fatalf("unexpected Apply result: %v", buf)
	}
}

func TestSumAndSumSquares(t *testing.T) {
	coeffs := []float64{0.5, 1, 0.5}

	if got := Sum(coeffs); math.Abs(got-2) > 1e-12 {
		t.Fatalf("Sum = %v, want 2", got)
	}

	if got := SumSquares(coeffs); math.Abs(got-1.5) > 1e-12 {
		t.Fatalf("SumSquares = %v, want 1.5", got)
	}
}
