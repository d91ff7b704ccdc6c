// Package audiofile loads and saves WAV files for the command-line tools.
//
// The transform packages operate on plain sample slices and never touch the
// filesystem; this package is the boundary that turns files into those
// slices and back.
package audiofile

import (
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// LoadWAV decodes a WAV file into a mono float64 sample slice.
// Multi-channel files are mixed down by averaging. Returns the samples and
// the file sample rate in Hz.
func LoadWAV(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("audiofile: open %s: %w", path, err)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("audiofile: decode %s: %w", path, err)
	}
	defer stream.Close()

	gain := decodeGain(format.Precision)
	out := make([]float64, 0, stream.Len())
	buf := make([][2]float64, 512)

	for {
		n, ok := stream.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, gain*(buf[i][0]+buf[i][1])/2)
		}

		if !ok {
			break
		}
	}

	if err := stream.Err(); err != nil {
		return nil, 0, fmt.Errorf("audiofile: read %s: %w", path, err)
	}

	return out, int(format.SampleRate), nil
}

// decodeGain undoes the level mismatch in beep's wav decoder: 16- and
// 24-bit samples are normalized by the full unsigned range (2^bits - 1)
// on decode but scaled by the signed maximum (2^(bits-1) - 1) on encode,
// leaving decoded audio at roughly half level. 8-bit decode and encode
// agree, so no correction there.
func decodeGain(precision int) float64 {
	switch precision {
	case 2:
		return 65535.0 / 32767.0
	case 3:
		return float64(1<<24-1) / float64(1<<23-1)
	default:
		return 1
	}
}

// SaveWAV writes mono float64 samples as a 16-bit WAV file.
func SaveWAV(path string, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("audiofile: sample rate must be > 0: %d", sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audiofile: create %s: %w", path, err)
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 1,
		Precision:   2,
	}

	if err := wav.Encode(f, &sliceStreamer{samples: samples}, format); err != nil {
		f.Close()
		return fmt.Errorf("audiofile: encode %s: %w", path, err)
	}

	return f.Close()
}

// sliceStreamer adapts a mono sample slice as a beep.Streamer.
type sliceStreamer struct {
	samples []float64
	pos     int
}

func (s *sliceStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}

	for n < len(samples) && s.pos < len(s.samples) {
		v := s.samples[s.pos]
		samples[n][0] = v
		samples[n][1] = v
		n++
		s.pos++
	}

	return n, true
}

func (s *sliceStreamer) Err() error {
	return nil
}
