package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 3})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if math.Abs(d-0.5) > 1e-12 {
		t.Fatalf("MaxAbsDiff = %v, want 0.5", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestRelativeRMSError(t *testing.T) {
	ref := []float64{1, 1, 1, 1}
	got := []float64{1.1, 0.9, 1.1, 0.9}

	e, err := RelativeRMSError(got, ref)
	if err != nil {
		t.Fatalf("RelativeRMSError error: %v", err)
	}
	if math.Abs(e-0.1) > 1e-12 {
		t.Fatalf("RelativeRMSError = %v, want 0.1", e)
	}

	if _, err := RelativeRMSError(ref, []float64{0, 0, 0, 0}); err == nil {
		t.Fatalf("expected error for silent reference")
	}
}

func TestDeterministicSignals(t *testing.T) {
	a := DeterministicSine(440, 16000, 1, 64)
	b := DeterministicSine(440, 16000, 1, 64)
	RequireSliceNearlyEqual(t, a, b, 0)
	RequireFinite(t, a)

	n1 := DeterministicNoise(7, 0.5, 64)
	n2 := DeterministicNoise(7, 0.5, 64)
	RequireSliceNearlyEqual(t, n1, n2, 0)

	imp := Impulse(8, 3)
	if imp[3] != 1 {
		t.Fatalf("impulse position incorrect: %v", imp)
	}
}
