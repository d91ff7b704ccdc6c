// Package scale converts spectrogram data between power, amplitude, and
// decibel representations.
//
// All conversions are pure and elementwise. The forward conversions floor
// their input at 1e-10 before taking the logarithm, so silent bins map to a
// finite dB value instead of -Inf. Above that floor each dB pair inverts
// exactly:
//
//	DBToPower(PowerToDB(p, ref), ref) == p         for p > 1e-10
//	DBToAmplitude(AmplitudeToDB(a, ref), ref) == a for a > 1e-10
package scale

import "math"

// amin is the power/amplitude floor applied before the logarithm.
// It matches the floor used by common spectrogram tooling so dB output is
// comparable across implementations.
const amin = 1e-10

// PowerToDB converts power values to decibels: 10*log10(max(p, 1e-10)/ref).
func PowerToDB(power []float64, ref float64) ([]float64, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	out := make([]float64, len(power))
	refDB := 10 * math.Log10(ref)
	for i, p := range power {
		out[i] = 10*math.Log10(math.Max(p, amin)) - refDB
	}

	return out, nil
}

// DBToPower converts decibel values back to power: ref * 10^(db/10).
func DBToPower(db []float64, ref float64) ([]float64, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	out := make([]float64, len(db))
	for i, v := range db {
		out[i] = ref * math.Pow(10, v/10)
	}

	return out, nil
}

// AmplitudeToDB converts amplitude values to decibels:
// 20*log10(max(a, 1e-10)/ref). Equivalent to PowerToDB on squared input
// with squared ref.
func AmplitudeToDB(amplitude []float64, ref float64) ([]float64, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	out := make([]float64, len(amplitude))
	refDB := 20 * math.Log10(ref)
	for i, a := range amplitude {
		out[i] = 20*math.Log10(math.Max(a, amin)) - refDB
	}

	return out, nil
}

// DBToAmplitude converts decibel values back to amplitude: ref * 10^(db/20).
func DBToAmplitude(db []float64, ref float64) ([]float64, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	out := make([]float64, len(db))
	for i, v := range db {
		out[i] = ref * math.Pow(10, v/20)
	}

	return out, nil
}

// PowerToDBMatrix applies [PowerToDB] rowwise to a (T, F) matrix.
func PowerToDBMatrix(power [][]float64, ref float64) ([][]float64, error) {
	return applyMatrix(power, ref, PowerToDB)
}

// DBToPowerMatrix applies [DBToPower] rowwise to a (T, F) matrix.
func DBToPowerMatrix(db [][]float64, ref float64) ([][]float64, error) {
	return applyMatrix(db, ref, DBToPower)
}

// AmplitudeToDBMatrix applies [AmplitudeToDB] rowwise to a (T, F) matrix.
func AmplitudeToDBMatrix(amplitude [][]float64, ref float64) ([][]float64, error) {
	return applyMatrix(amplitude, ref, AmplitudeToDB)
}

// DBToAmplitudeMatrix applies [DBToAmplitude] rowwise to a (T, F) matrix.
func DBToAmplitudeMatrix(db [][]float64, ref float64) ([][]float64, error) {
	return applyMatrix(db, ref, DBToAmplitude)
}

func applyMatrix(in [][]float64, ref float64, fn func([]float64, float64) ([]float64, error)) ([][]float64, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	out := make([][]float64, len(in))
	for i, row := range in {
		converted, err := fn(row, ref)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}

	return out, nil
}
