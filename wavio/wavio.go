// Package wavio is the boundary between buffers and disk: 16-bit mono PCM
// WAV in and out. No other package touches files.
package wavio

import (
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
)

const fullScale = 32767

// ToInt16 quantizes float samples to 16-bit PCM codes. Values beyond the
// rails clip hard at ±32767; this is the only place clipping is legal.
func ToInt16(samples []float64) []int {
	out := make([]int, len(samples))
	for i, v := range samples {
		scaled := math.Round(v * fullScale)
		if scaled > fullScale {
			scaled = fullScale
		} else if scaled < -fullScale {
			scaled = -fullScale
		}
		out[i] = int(scaled)
	}
	return out
}

// FromInt16 converts 16-bit PCM codes back to floats in [-1, 1].
func FromInt16(data []int) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v) / fullScale
	}
	return out
}

// WriteMono writes samples as a 16-bit mono PCM WAV file. Samples are
// quantized through ToInt16, so out-of-range values clip rather than wrap.
func WriteMono(path string, samples []float64, sampleRate int) error {
	if len(samples) == 0 {
		return fmt.Errorf("no samples to write")
	}
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %d", sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	defer enc.Close()

	codes := ToInt16(samples)
	data := make([]float32, len(codes))
	for i, v := range codes {
		data[i] = float32(v) / fullScale
	}
	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: 1,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
	return enc.Write(buf)
}

// ReadMono decodes a PCM WAV file to mono float samples and the file's
// sample rate. Multi-channel files average down to mono; the decoder
// already normalizes samples to [-1, 1].
func ReadMono(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("not a valid WAV file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	if buf == nil || len(buf.Data) == 0 {
		return nil, 0, fmt.Errorf("no audio data in %s", path)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}
	depth := buf.SourceBitDepth
	if depth <= 0 {
		depth = int(dec.BitDepth)
	}
	if depth <= 1 {
		return nil, 0, fmt.Errorf("unsupported bit depth %d in %s", depth, path)
	}

	frames := len(buf.Data) / channels
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c])
		}
		out[i] = sum / float64(channels)
	}

	return out, buf.Format.SampleRate, nil
}
