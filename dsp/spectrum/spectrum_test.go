package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudePowerPhase(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 {
		t.Fatalf("Power[0]=%f want=25", pow[0])
	}

	if math.Abs(pow[1]-2) > 1e-12 {
		t.Fatalf("Power[1]=%f want=2", pow[1])
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}
}

func TestEmptyInput(t *testing.T) {
	if Magnitude(nil) != nil || Power(nil) != nil || Phase(nil) != nil {
		t.Fatalf("expected nil outputs for empty input")
	}
}

func TestIntoVariants(t *testing.T) {
	bins := []complex128{1 + 0i, 0 + 2i}

	dst := make([]float64, 2)
	MagnitudeInto(dst, bins)
	if math.Abs(dst[0]-1) > 1e-12 || math.Abs(dst[1]-2) > 1e-12 {
		t.Fatalf("unexpected MagnitudeInto output: %v", dst)
	}

	PowerInto(dst, bins)
	if math.Abs(dst[0]-1) > 1e-12 || math.Abs(dst[1]-4) > 1e-12 {
		t.Fatalf("unexpected PowerInto output: %v", dst)
	}

	// Mismatched destination length is a no-op.
	short := make([]float64, 1)
	MagnitudeInto(short, bins)
	if short[0] != 0 {
		t.Fatalf("mismatched dst must be left untouched")
	}
}
